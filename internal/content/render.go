package content

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Renderer turns page markdown into styled terminal text. The underlying
// glamour renderer is rebuilt only when the wrap width changes.
type Renderer struct {
	Style string // glamour standard style name ("dark", "light", "notty", ...)

	width int
	tr    *glamour.TermRenderer
}

// NewRenderer creates a renderer for a glamour standard style.
func NewRenderer(style string) *Renderer {
	if style == "" {
		style = "dark"
	}
	return &Renderer{Style: style}
}

// Render renders md wrapped to width cells.
func (r *Renderer) Render(md string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	if r.tr == nil || r.width != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.Style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("markdown renderer: %w", err)
		}
		r.tr = tr
		r.width = width
	}
	out, err := r.tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
