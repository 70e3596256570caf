package shell

import "vmlsite/internal/overlay"

// Focus IDs of the page chrome. Indexed IDs are built with navID and linkID.
const (
	IDBrand   = "brand"
	IDTrigger = "trigger"
	IDMain    = "main"
	IDClose   = "close"
)

// focusRing tracks focus across the page chrome while the menu is closed. Its
// Order is rebuilt whenever the breakpoint or page changes.
type focusRing struct {
	overlay.Ring
}

// SetFocus sets focus to id.
// Returns true if the ID exists in order.
func (f *focusRing) SetFocus(id string) bool {
	if !f.Contains(id) {
		return false
	}
	f.Move(id)
	return true
}

// Reset replaces the order. Focus stays put if its element survived, otherwise
// it moves to fallback.
func (f *focusRing) Reset(order []string, fallback string) {
	f.Order = order
	if f.Current != "" && f.Contains(f.Current) {
		return
	}
	f.Move(fallback)
}
