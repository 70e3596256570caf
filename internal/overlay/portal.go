package overlay

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	// ErrMountFailed is returned when there is no live portal host to mount into.
	ErrMountFailed = errors.New("overlay: portal mount failed")
	// ErrPortalBusy is returned when another owner holds the portal.
	ErrPortalBusy = errors.New("overlay: portal claimed by another owner")
)

// Layer is the content mounted into the portal, positioned in cells relative to
// the top-left of the frame.
type Layer struct {
	Content string
	X, Y    int
	Scrim   bool // dim everything underneath
}

// Size returns the layer's width and height in cells.
func (l Layer) Size() (w, h int) {
	if l.Content == "" {
		return 0, 0
	}
	lines := strings.Split(l.Content, "\n")
	for _, ln := range lines {
		if n := ansi.StringWidth(ln); n > w {
			w = n
		}
	}
	return w, len(lines)
}

// Contains reports whether cell (x, y) lies inside the layer.
func (l Layer) Contains(x, y int) bool {
	w, h := l.Size()
	return x >= l.X && x < l.X+w && y >= l.Y && y < l.Y+h
}

// PortalHost is the page-wide layer overlay content is mounted into, drawn
// above the whole frame so nothing in the normal layout can clip it. At most
// one owner holds it at a time.
type PortalHost struct {
	mu     sync.Mutex
	owner  string
	layer  Layer
	closed bool
}

var (
	hostMu   sync.Mutex
	host     *PortalHost
	hostRefs int
)

// AcquireHost returns the page's portal host, creating it for the first shell.
// Every call must be paired with ReleaseHost.
func AcquireHost() *PortalHost {
	hostMu.Lock()
	defer hostMu.Unlock()
	if host == nil {
		host = &PortalHost{}
	}
	hostRefs++
	return host
}

// ReleaseHost drops one shell's claim and tears the host down with the last.
func ReleaseHost() {
	hostMu.Lock()
	defer hostMu.Unlock()
	if hostRefs == 0 {
		return
	}
	hostRefs--
	if hostRefs == 0 && host != nil {
		host.teardown()
		host = nil
	}
}

// CurrentHost returns the live host, or nil if no shell holds one.
func CurrentHost() *PortalHost {
	hostMu.Lock()
	defer hostMu.Unlock()
	return host
}

// Mount places l into the portal on behalf of owner. Re-mounting by the same
// owner replaces the layer.
func (h *PortalHost) Mount(owner string, l Layer) error {
	if h == nil {
		return fmt.Errorf("%w: no portal host", ErrMountFailed)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return fmt.Errorf("%w: portal host torn down", ErrMountFailed)
	}
	if h.owner != "" && h.owner != owner {
		return errors.Join(ErrMountFailed, ErrPortalBusy)
	}
	h.owner = owner
	h.layer = l
	return nil
}

// Unmount removes owner's layer. Other owners' layers are left alone.
func (h *PortalHost) Unmount(owner string) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.owner != owner {
		return
	}
	h.owner = ""
	h.layer = Layer{}
}

// Mounted returns the mounted layer, if any.
func (h *PortalHost) Mounted() (Layer, bool) {
	if h == nil {
		return Layer{}, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.layer, h.owner != ""
}

// Owner returns the ID of the current owner, or "".
func (h *PortalHost) Owner() string {
	if h == nil {
		return ""
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.owner
}

func (h *PortalHost) teardown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.owner = ""
	h.layer = Layer{}
}

var scrimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true)

// Compose draws the mounted layer over base, a frame of width x height cells.
// With nothing mounted base is returned padded to height.
func (h *PortalHost) Compose(base string, width, height int) string {
	lines := splitLinesN(base, height)
	l, ok := h.Mounted()
	if !ok {
		return strings.Join(lines, "\n")
	}
	if l.Scrim {
		for i, ln := range lines {
			lines[i] = scrimStyle.Render(ansi.Strip(ln))
		}
	}
	fgW, _ := l.Size()
	if fgW > width-l.X {
		fgW = width - l.X
	}
	drawAt(lines, strings.Split(l.Content, "\n"), width, l.X, l.Y, fgW)
	return strings.Join(lines, "\n")
}

func splitLinesN(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if n <= 0 {
		return lines
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines[:n]
}

func drawAt(bg []string, fg []string, w, x, y, fgW int) {
	if fgW <= 0 {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	for i := 0; i < len(fg) && y+i < len(bg); i++ {
		row := bg[y+i]
		if n := ansi.StringWidth(row); n < x {
			row += strings.Repeat(" ", x-n)
		}
		left := ansi.Cut(row, 0, x)
		right := ansi.Cut(row, x+fgW, w)

		line := fg[i]
		if n := ansi.StringWidth(line); n < fgW {
			line += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			line = ansi.Cut(line, 0, fgW)
		}
		bg[y+i] = left + line + right
	}
}
