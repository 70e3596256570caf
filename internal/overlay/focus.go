package overlay

// FocusTrap confines focus rotation to the panel's focusable IDs while engaged
// and remembers where focus came from. Order[0] is the boundary element.
type FocusTrap struct {
	Ring
	Landmark string // Fallback restore target when the trigger is gone

	restore string
	refs    int
}

// Restore describes where focus goes when the trap releases.
type Restore struct {
	Target   string
	Fallback bool // the trigger was gone; Target is the landmark
}

// Engage claims focus for order, remembering restore as the element to return
// to. Nested engages only refresh Order; the first restore target wins.
func (f *FocusTrap) Engage(order []string, restore string) {
	f.Order = append([]string(nil), order...)
	f.refs++
	if f.refs > 1 {
		if !f.Contains(f.Current) {
			f.Move(f.boundary())
		}
		return
	}
	f.restore = restore
	f.Move(f.boundary())
}

// Engaged reports whether the trap currently owns focus.
func (f *FocusTrap) Engaged() bool {
	return f.refs > 0
}

// Release drops one engage. When the last one is dropped focus ownership ends
// and the restore target is returned; present reports whether an ID is still
// focusable in the page.
func (f *FocusTrap) Release(present func(id string) bool) (Restore, bool) {
	if f.refs == 0 {
		return Restore{}, false
	}
	f.refs--
	if f.refs > 0 {
		return Restore{}, false
	}
	r := Restore{Target: f.restore}
	if f.restore == "" || (present != nil && !present(f.restore)) {
		r = Restore{Target: f.Landmark, Fallback: true}
	}
	f.restore = ""
	f.Order = nil
	f.Current = ""
	return r, true
}

// Focus moves focus to id. IDs outside the panel are redirected to the
// boundary element.
func (f *FocusTrap) Focus(id string) string {
	if !f.Contains(id) {
		id = f.boundary()
	}
	f.Move(id)
	return f.Current
}

func (f *FocusTrap) boundary() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.Order[0]
}
