package shell

import (
	"strings"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"vmlsite/internal/content"
)

// keyMsg creates a tea.KeyMsg for testing.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func size(w int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: 40}
}

func embeddedSite(t *testing.T) *content.Site {
	t.Helper()
	s, err := content.Load(content.Embedded())
	require.NoError(t, err)
	return s
}

// longSite has a home page tall enough to scroll.
func longSite(t *testing.T) *content.Site {
	t.Helper()
	var page strings.Builder
	page.WriteString("# Home\n\n")
	for i := 0; i < 120; i++ {
		page.WriteString("Paragraph line.\n\n")
	}
	fsys := fstest.MapFS{
		"site.yaml": {Data: []byte(`
brand: VideoML
nav:
  - {label: Spec, href: /specs}
  - {label: Player, href: /player}
  - {label: Docs, href: /docs}
pages:
  - {path: /, file: index.md}
  - {path: /specs, file: specs.md}
  - {path: /player, file: player.md}
  - {path: /docs, file: docs.md}
`)},
		"index.md":  {Data: []byte(page.String())},
		"specs.md":  {Data: []byte("# Spec\n")},
		"player.md": {Data: []byte("# Player\n")},
		"docs.md":   {Data: []byte("# Docs\n")},
	}
	s, err := content.Load(fsys)
	require.NoError(t, err)
	return s
}

// newTestShell creates a mounted shell with a 768-cell breakpoint and no
// transition delay, so settle commands fire immediately.
func newTestShell(t *testing.T, width int, opts ...func(*Options)) *Model {
	t.Helper()
	o := Options{
		Site:         embeddedSite(t),
		CompactBelow: 768,
		PanelWidth:   30,
		Width:        width,
		Height:       40,
		Renderer:     content.NewRenderer("notty"),
	}
	for _, f := range opts {
		f(&o)
	}
	m := New(o)
	m.Init()
	t.Cleanup(m.Unmount)
	return m
}

// drain runs cmd and returns the messages it produced, flattening batches.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// run feeds msg to m, then every message the resulting commands produce,
// until the loop goes quiet. Returns every message delivered.
func run(m *Model, msg tea.Msg) []tea.Msg {
	var seen []tea.Msg
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		seen = append(seen, next)
		queue = append(queue, drain(m.Update(next))...)
	}
	return seen
}

// inlineLabels reads the navigation labels off the rendered header.
func inlineLabels(m *Model) []string {
	line := ansi.Strip(m.renderHeader())
	var out []string
	for _, z := range m.headerZones() {
		if _, ok := parseID(z.id, "nav:"); ok {
			out = append(out, line[z.x0:z.x1])
		}
	}
	return out
}

// panelLabels reads the navigation labels off the mounted menu panel.
func panelLabels(t *testing.T, m *Model) []string {
	t.Helper()
	layer, ok := m.host.Mounted()
	require.True(t, ok, "menu panel not mounted")
	lines := strings.Split(ansi.Strip(layer.Content), "\n")
	var out []string
	for i := range m.nav {
		out = append(out, strings.Trim(lines[panelFirstItem+i], "│ ›"))
	}
	return out
}
