// Package termsize reads terminal dimensions so the first frame can be laid out
// before Bubble Tea delivers its first resize message.
package termsize

import (
	"os"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Of returns the size of the terminal behind f.
func Of(f *os.File) (Size, error) {
	ws, err := pty.GetsizeFull(f)
	if err != nil {
		return Size{}, err
	}
	return Size{Rows: ws.Rows, Cols: ws.Cols}, nil
}

// OrDefault returns the size of f, or fallback when f is not a terminal or
// reports a zero size.
func OrDefault(f *os.File, fallback Size) Size {
	s, err := Of(f)
	if err != nil || s.Cols == 0 || s.Rows == 0 {
		return fallback
	}
	return s
}
