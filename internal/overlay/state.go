package overlay

// State is the lifecycle state of an overlay panel.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Opening:
		return "Opening"
	case Open:
		return "Open"
	case Closing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// Visible reports whether the panel is mounted (Opening, Open or Closing).
func (s State) Visible() bool {
	return s != Closed
}

// Active reports whether the panel is Open or on its way there.
func (s State) Active() bool {
	return s == Opening || s == Open
}
