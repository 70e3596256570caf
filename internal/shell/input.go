package shell

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func navID(i int) string   { return "nav:" + strconv.Itoa(i) }
func sheetID(i int) string { return "sheet:" + strconv.Itoa(i) }
func linkID(i int) string  { return "link:" + strconv.Itoa(i) }

// parseID splits an indexed focus ID like "nav:2".
func parseID(id, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	return i, err == nil
}

// handleMenuKey routes keys while the menu is visible. Focus cannot leave the
// panel; unbound keys are swallowed.
func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if cmd := m.keys.Lookup(s, ScopeMenu); cmd != nil {
		return cmd
	}
	switch s {
	case "esc":
		return m.sheet.Close()
	case "tab", "down", "j":
		m.sheet.trap.Next()
	case "shift+tab", "up", "k":
		m.sheet.trap.Prev()
	case "enter", " ":
		return m.activate(m.sheet.trap.Current)
	}
	return nil
}

func (m *Model) handlePageKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if cmd := m.keys.Lookup(s, ScopePage); cmd != nil {
		return cmd
	}
	switch s {
	case "tab":
		m.focus.Next()
		return nil
	case "shift+tab":
		m.focus.Prev()
		return nil
	case "enter":
		return m.activate(m.focus.Current)
	case " ":
		if m.focus.Current != IDMain {
			return m.activate(m.focus.Current)
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// handleMenuMouse closes on a press outside the panel and activates the row
// pressed inside it. Wheel events are swallowed while the page is locked.
func (m *Model) handleMenuMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	layer, ok := m.host.Mounted()
	if !ok || !layer.Contains(msg.X, msg.Y) {
		return m.sheet.Close()
	}
	id, ok := m.panelRowID(msg.Y - layer.Y)
	if !ok {
		return nil
	}
	m.sheet.trap.Focus(id)
	return m.activate(id)
}

func (m *Model) handlePageMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
		for _, z := range m.headerZones() {
			if msg.X >= z.x0 && msg.X < z.x1 {
				m.focus.SetFocus(z.id)
				return m.activate(z.id)
			}
		}
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// activate performs the action of a focusable element.
func (m *Model) activate(id string) tea.Cmd {
	switch id {
	case IDBrand:
		return m.navigate("/")
	case IDTrigger:
		return m.openMenu()
	case IDClose:
		return m.sheet.Close()
	case IDMain, "":
		return nil
	}
	if i, ok := parseID(id, "nav:"); ok && i < len(m.nav) {
		return m.navigate(m.nav[i].Href)
	}
	if i, ok := parseID(id, "sheet:"); ok && i < len(m.nav) {
		return m.navigate(m.nav[i].Href)
	}
	if i, ok := parseID(id, "link:"); ok {
		if p, found := m.router.Page(); found && i < len(p.Links) {
			return m.navigate(p.Links[i].Href)
		}
	}
	return nil
}
