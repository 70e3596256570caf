package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"vmlsite/internal/content"
	"vmlsite/internal/overlay"
)

const (
	headerHeight = 2 // header line + rule
	triggerLabel = "[ Menu ]"
	closeLabel   = "[x]"
	externalMark = " ↗"

	// Panel rows below the top border: title, blank, then one per entry.
	panelTitleRow  = 1
	panelFirstItem = 3
)

// zone is a clickable span of the header line.
type zone struct {
	id     string
	x0, x1 int
}

// View renders the full frame, with the menu composed on top while visible.
func (m *Model) View() string {
	rule := Styles.Separator.Render(strings.Repeat("─", max(m.width, 0)))
	frame := strings.Join([]string{
		m.renderHeader(),
		rule,
		m.viewport.View(),
		rule,
		m.renderFooter(),
		m.helpView(),
	}, "\n")
	if m.sheet.State().Visible() {
		return m.host.Compose(frame, m.width, m.height)
	}
	return frame
}

func (m *Model) brand() string {
	if m.site == nil || m.site.Manifest == nil {
		return ""
	}
	return m.site.Manifest.Brand
}

func navLabel(e content.NavEntry) string {
	if e.External {
		return e.Label + externalMark
	}
	return e.Label
}

// headerZones lays out the header: brand on the left, then either the inline
// entries or the trigger pinned to the right edge.
func (m *Model) headerZones() []zone {
	brand := zone{id: IDBrand, x0: 1, x1: 1 + ansi.StringWidth(m.brand())}
	zones := []zone{brand}
	if m.compact {
		w := ansi.StringWidth(triggerLabel)
		x0 := max(m.width-1-w, brand.x1+1)
		return append(zones, zone{id: IDTrigger, x0: x0, x1: x0 + w})
	}
	x := brand.x1 + 3
	for i, e := range m.nav {
		w := ansi.StringWidth(navLabel(e))
		zones = append(zones, zone{id: navID(i), x0: x, x1: x + w})
		x += w + 2
	}
	return zones
}

func (m *Model) renderHeader() string {
	active := content.ActiveIndex(m.nav, m.router.Current())
	var b strings.Builder
	cursor := 0
	for _, z := range m.headerZones() {
		b.WriteString(strings.Repeat(" ", z.x0-cursor))
		cursor = z.x1
		b.WriteString(m.renderZone(z, active))
	}
	return ansi.Truncate(b.String(), m.width, "…")
}

func (m *Model) renderZone(z zone, active int) string {
	focused := m.focus.Current == z.id && !m.sheet.trap.Engaged()
	switch z.id {
	case IDBrand:
		if focused {
			return Styles.Focused.Render(m.brand())
		}
		return Styles.Brand.Render(m.brand())
	case IDTrigger:
		if focused || m.sheet.State().Visible() {
			return Styles.Focused.Render(triggerLabel)
		}
		return Styles.Trigger.Render(triggerLabel)
	}
	i, _ := parseID(z.id, "nav:")
	return entryStyle(focused, i == active).Render(navLabel(m.nav[i]))
}

func entryStyle(focused, active bool) lipgloss.Style {
	switch {
	case focused:
		return Styles.Focused
	case active:
		return Styles.NavActive
	}
	return Styles.NavLink
}

// refreshMain re-fills the viewport: the rendered page and its links.
func (m *Model) refreshMain() {
	var b strings.Builder
	b.WriteString(m.body)
	if p, ok := m.router.Page(); ok && len(p.Links) > 0 {
		b.WriteString("\n")
		for i, l := range p.Links {
			style := Styles.Link
			if m.focus.Current == linkID(i) {
				style = Styles.Focused
			}
			b.WriteString("  " + style.Render(navLabel(l)) + "\n")
		}
	}
	m.viewport.SetContent(b.String())
}

func (m *Model) renderFooter() string {
	text := ""
	if m.site != nil && m.site.Manifest != nil {
		text = m.site.Manifest.Footer
	}
	left := " " + Styles.Footer.Render(text)
	if m.status == "" {
		return ansi.Truncate(left, m.width, "…")
	}
	style := Styles.StatusErr
	if m.statusOK {
		style = Styles.Status
	}
	right := style.Render(m.status) + " "
	gap := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return ansi.Truncate(" "+right, m.width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) helpView() string {
	scope := ScopePage
	if m.sheet.State().Visible() {
		scope = ScopeMenu
	}
	m.help.Width = m.width
	return " " + m.help.View(NewKeyMap(m.keys, scope))
}

func (m *Model) footerHeight() int {
	return 2 + lipgloss.Height(m.helpView())
}

// renderPanel draws the menu: title row with the close control, then every
// navigation entry in the same order as the inline header.
func (m *Model) renderPanel() string {
	inner := min(m.panelWidth, m.width) - 4
	if inner < 8 {
		inner = 8
	}
	focused := m.sheet.trap.Current
	active := content.ActiveIndex(m.nav, m.router.Current())

	closeStyle := Styles.NavLink
	if focused == IDClose {
		closeStyle = Styles.Focused
	}
	gap := max(inner-ansi.StringWidth(m.brand())-ansi.StringWidth(closeLabel), 1)
	lines := []string{
		Styles.Brand.Render(m.brand()) + strings.Repeat(" ", gap) + closeStyle.Render(closeLabel),
		"",
	}
	for i, e := range m.nav {
		prefix := "  "
		if focused == sheetID(i) {
			prefix = "› "
		}
		lines = append(lines, prefix+entryStyle(focused == sheetID(i), i == active).Render(navLabel(e)))
	}
	height := max(m.height-2, len(lines))
	return Styles.Panel.Width(inner + 2).Height(height).Render(strings.Join(lines, "\n"))
}

// panelLayer positions the panel against the right edge, full height.
func (m *Model) panelLayer() overlay.Layer {
	l := overlay.Layer{Content: m.renderPanel(), Scrim: true}
	w, _ := l.Size()
	l.X = max(m.width-w, 0)
	return l
}

// panelRowID maps a row inside the panel to the control drawn there.
func (m *Model) panelRowID(row int) (string, bool) {
	if row == panelTitleRow {
		return IDClose, true
	}
	if i := row - panelFirstItem; i >= 0 && i < len(m.nav) {
		return sheetID(i), true
	}
	return "", false
}
