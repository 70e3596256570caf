package shell

// Breakpoint splits widths into compact (menu trigger) and wide (inline links).
type Breakpoint struct {
	CompactBelow int
}

// IsCompact reports whether width is below the threshold.
func (b Breakpoint) IsCompact(width int) bool {
	return width < b.CompactBelow
}
