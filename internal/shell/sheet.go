package shell

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"vmlsite/internal/overlay"
)

// sheet drives the slide-in menu: it owns the overlay.Machine and performs its
// effects against the model's portal host, focus and main viewport.
type sheet struct {
	m          *Model
	machine    *overlay.Machine
	trap       overlay.FocusTrap
	lock       *overlay.ScrollLock
	transition time.Duration

	openSpan  oteltrace.Span
	closeSpan oteltrace.Span
}

var _ overlay.Effects = (*sheet)(nil)

func newSheet(m *Model, transition time.Duration) *sheet {
	s := &sheet{
		m:          m,
		lock:       overlay.NewScrollLock(viewportScroller{m}),
		transition: transition,
	}
	s.trap.Landmark = IDMain
	s.trap.OnChange = func(from, to string) {
		m.log.Debug("menu focus", zap.String("from", from), zap.String("to", to))
	}
	s.machine = overlay.NewMachine(s)
	s.machine.OnChange = s.observe
	return s
}

// State returns the menu's overlay state.
func (s *sheet) State() overlay.State {
	return s.machine.State()
}

// Open starts opening the menu. A mount failure leaves the menu closed and is
// reported as a MountFailedMsg.
func (s *sheet) Open() tea.Cmd {
	t, err := s.machine.Open()
	if err != nil {
		return func() tea.Msg { return MountFailedMsg{Err: err} }
	}
	return s.schedule(t)
}

// Close starts closing the menu.
func (s *sheet) Close() tea.Cmd {
	return s.schedule(s.machine.Close())
}

// CloseNow closes and tears down without a transition.
func (s *sheet) CloseNow() {
	s.machine.CloseNow()
}

// Settle completes a transition. Deferred opens are started here.
func (s *sheet) Settle(t overlay.Ticket) tea.Cmd {
	next, err := s.machine.Settle(t)
	if err != nil {
		return func() tea.Msg { return MountFailedMsg{Err: err} }
	}
	return s.schedule(next)
}

// Refresh re-renders the mounted panel after focus, size or content changes.
func (s *sheet) Refresh() {
	if !s.State().Visible() {
		return
	}
	if err := s.m.host.Mount(s.m.ID, s.m.panelLayer()); err != nil {
		s.m.log.Warn("refresh menu", zap.Error(err))
	}
}

// Reorder updates the trap's panel order while engaged, keeping focus if its
// element survived.
func (s *sheet) Reorder(order []string) {
	if !s.trap.Engaged() {
		return
	}
	s.trap.Engage(order, "")
	s.trap.Release(nil)
}

func (s *sheet) schedule(t overlay.Ticket) tea.Cmd {
	if !t.Valid() {
		return nil
	}
	msg := settleMsg{owner: s.m.ID, ticket: t}
	if s.transition <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(s.transition, func(time.Time) tea.Msg { return msg })
}

// Mount implements overlay.Effects.
func (s *sheet) Mount() error {
	return s.m.host.Mount(s.m.ID, s.m.panelLayer())
}

// Unmount implements overlay.Effects.
func (s *sheet) Unmount() {
	s.m.host.Unmount(s.m.ID)
}

// EngageFocus implements overlay.Effects.
func (s *sheet) EngageFocus() {
	s.trap.Engage(s.m.panelOrder(), s.m.focus.Current)
}

// ReleaseFocus implements overlay.Effects.
func (s *sheet) ReleaseFocus() {
	r, ok := s.trap.Release(s.m.focus.Contains)
	if !ok {
		return
	}
	if r.Fallback {
		s.m.log.Debug("focus target lost", zap.String("landmark", r.Target))
	}
	s.m.focus.SetFocus(r.Target)
}

// LockScroll implements overlay.Effects.
func (s *sheet) LockScroll() {
	s.lock.Engage()
}

// UnlockScroll implements overlay.Effects.
func (s *sheet) UnlockScroll() {
	s.lock.Release()
}

func (s *sheet) observe(from, to overlay.State) {
	s.m.log.Debug("menu transition", zap.Stringer("from", from), zap.Stringer("to", to))
	switch to {
	case overlay.Opening:
		_, s.openSpan = s.m.tracer.Start(s.m.ctx, "overlay.open",
			oteltrace.WithAttributes(attribute.String("shell.id", s.m.ID)))
	case overlay.Open:
		s.endOpen(nil)
	case overlay.Closing:
		s.endOpen(errors.New("superseded by close"))
		_, s.closeSpan = s.m.tracer.Start(s.m.ctx, "overlay.close",
			oteltrace.WithAttributes(attribute.String("shell.id", s.m.ID)))
	case overlay.Closed:
		if err := s.machine.LastErr; err != nil && from == overlay.Opening {
			s.m.log.Warn("menu mount failed", zap.Error(err))
			s.endOpen(err)
		}
		if s.closeSpan != nil {
			s.closeSpan.End()
			s.closeSpan = nil
		}
	}
}

func (s *sheet) endOpen(err error) {
	if s.openSpan == nil {
		return
	}
	if err != nil {
		s.openSpan.SetStatus(codes.Error, err.Error())
	}
	s.openSpan.End()
	s.openSpan = nil
}

// viewportScroller exposes the main viewport to the scroll lock.
type viewportScroller struct {
	m *Model
}

func (v viewportScroller) YOffset() int { return v.m.viewport.YOffset }

func (v viewportScroller) SetYOffset(n int) { v.m.viewport.SetYOffset(n) }
