package overlay

// Ring is a wrap-around tab order with one current element. FocusTrap uses it
// for the panel; the shell uses it for the page chrome.
type Ring struct {
	Current  string   // ID of the focused element
	Order    []string // Tab order
	OnChange func(from, to string)
}

// Next advances focus, wrapping from last to first.
// Returns the new current ID.
func (r *Ring) Next() string {
	if len(r.Order) == 0 {
		return ""
	}
	r.Move(r.Order[(r.index()+1)%len(r.Order)])
	return r.Current
}

// Prev moves focus back, wrapping from first to last.
func (r *Ring) Prev() string {
	if len(r.Order) == 0 {
		return ""
	}
	i := r.index() - 1
	if i < 0 {
		i = len(r.Order) - 1
	}
	r.Move(r.Order[i])
	return r.Current
}

// Contains reports whether id is in the tab order.
func (r *Ring) Contains(id string) bool {
	return r.indexOf(id) >= 0
}

// Move sets the current element without checking the order and notifies
// OnChange if it changed.
func (r *Ring) Move(to string) {
	from := r.Current
	r.Current = to
	if r.OnChange != nil && from != to {
		r.OnChange(from, to)
	}
}

func (r *Ring) index() int {
	return r.indexOf(r.Current)
}

func (r *Ring) indexOf(id string) int {
	for i, o := range r.Order {
		if o == id {
			return i
		}
	}
	return -1
}
