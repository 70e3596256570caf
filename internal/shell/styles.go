package shell

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the shell
const (
	ColorAccent    = "86"  // Cyan/green - brand, active entry
	ColorHighlight = "205" // Magenta - focus ring, panel border
	ColorDanger    = "196" // Red - navigation errors
	ColorMuted     = "241" // Gray - separators, hints
	ColorText      = "252" // Light gray - normal text
)

// Styles contains the shell's shared style definitions.
var Styles = struct {
	Brand     lipgloss.Style // Site brand in header and panel title
	NavLink   lipgloss.Style // Inline and panel navigation entries
	NavActive lipgloss.Style // Entry matching the current page
	Focused   lipgloss.Style // Any focused control
	Trigger   lipgloss.Style // Menu trigger in the compact header
	Panel     lipgloss.Style // Slide-in menu panel
	Separator lipgloss.Style // Rules between header, main and footer
	Footer    lipgloss.Style // Footer text
	Status    lipgloss.Style // Navigation status
	StatusErr lipgloss.Style // Navigation error
	Link      lipgloss.Style // Page links below the content
	External  lipgloss.Style // External marker after a link label
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
}{
	Brand: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	NavLink: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	NavActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true).
		Underline(true),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Reverse(true),
	Trigger: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Separator: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	StatusErr: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Underline(true),
	External: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	HelpDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
