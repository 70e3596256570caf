package overlay

import "fmt"

// Effects performs the side effects of an overlay transition. Mount runs
// synchronously when Opening is entered; the release methods run in
// ReleaseFocus, UnlockScroll, Unmount order when Closing settles.
type Effects interface {
	Mount() error
	Unmount()
	EngageFocus()
	ReleaseFocus()
	LockScroll()
	UnlockScroll()
}

// Ticket identifies a pending settle of a transitional state. Tickets issued
// before the latest transition are stale and settle as no-ops.
type Ticket struct {
	gen    uint64
	Target State
}

// Valid reports whether the ticket refers to a transition at all.
func (t Ticket) Valid() bool {
	return t.gen != 0
}

// OverlayHost is what the shell needs from an overlay implementation.
type OverlayHost interface {
	State() State
	Open() (Ticket, error)
	Close() Ticket
	CloseNow()
	Settle(Ticket) (Ticket, error)
}

// Machine is the open/close lifecycle for one overlay panel bound to one trigger.
//
//	Closed -> Opening -> Open -> Closing -> Closed
//
// Invalid requests are no-ops. An Open issued while Closing is remembered and
// applied once Closing settles, so a burst of toggles converges on the last one.
type Machine struct {
	state    State
	gen      uint64
	wantOpen bool
	effects  Effects

	// OnChange, if set, observes every state change.
	OnChange func(from, to State)
	// LastErr holds the most recent mount failure; cleared by a successful Open.
	LastErr error
}

// Ensure Machine implements OverlayHost.
var _ OverlayHost = (*Machine)(nil)

// NewMachine creates a closed machine driving effects.
func NewMachine(effects Effects) *Machine {
	return &Machine{state: Closed, effects: effects}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Open starts opening from Closed. The portal is mounted before anything else is
// engaged; if mounting fails the machine falls back to Closed and the error
// (wrapping ErrMountFailed) is returned so the caller can retry later.
func (m *Machine) Open() (Ticket, error) {
	switch m.state {
	case Closed:
	case Closing:
		m.wantOpen = true
		return Ticket{}, nil
	default:
		return Ticket{}, nil
	}

	m.set(Opening)
	if err := m.effects.Mount(); err != nil {
		m.LastErr = err
		m.gen++
		m.set(Closed)
		return Ticket{}, fmt.Errorf("open overlay: %w", err)
	}
	m.LastErr = nil
	m.effects.EngageFocus()
	m.effects.LockScroll()
	m.gen++
	return Ticket{gen: m.gen, Target: Open}, nil
}

// Close starts closing from Open or Opening. Closing from Opening invalidates
// the pending open ticket.
func (m *Machine) Close() Ticket {
	switch m.state {
	case Open, Opening:
		m.wantOpen = false
		m.gen++
		m.set(Closing)
		return Ticket{gen: m.gen, Target: Closed}
	case Closing:
		m.wantOpen = false
	}
	return Ticket{}
}

// CloseNow closes and tears down synchronously. A transition already Closing
// is finished here and any open deferred behind it is dropped; the pending
// settle then arrives stale.
func (m *Machine) CloseNow() {
	switch m.state {
	case Open, Opening:
		_, _ = m.Settle(m.Close())
	case Closing:
		m.wantOpen = false
		m.gen++
		_, _ = m.Settle(Ticket{gen: m.gen, Target: Closed})
	}
}

// Settle completes the transition t was issued for. If an Open was requested
// during Closing it is started here and its ticket returned.
func (m *Machine) Settle(t Ticket) (Ticket, error) {
	if !t.Valid() || t.gen != m.gen {
		return Ticket{}, nil
	}
	switch {
	case m.state == Opening && t.Target == Open:
		m.set(Open)
	case m.state == Closing && t.Target == Closed:
		m.effects.ReleaseFocus()
		m.effects.UnlockScroll()
		m.effects.Unmount()
		m.set(Closed)
		if m.wantOpen {
			m.wantOpen = false
			return m.Open()
		}
	}
	return Ticket{}, nil
}

func (m *Machine) set(to State) {
	from := m.state
	m.state = to
	if m.OnChange != nil && from != to {
		m.OnChange(from, to)
	}
}
