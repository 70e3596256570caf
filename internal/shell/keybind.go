package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Scope selects which bindings apply: the page chrome or the open menu.
type Scope int

const (
	ScopePage Scope = iota
	ScopeMenu
)

// KeybindRegistry maps single keys to commands and help descriptions.
// Keys use tea.KeyMsg.String() notation, except space which is "space".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	scopes       map[string][]Scope // nil/empty = applies to every scope
	order        []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		scopes:       make(map[string][]Scope),
	}
}

// Bind registers a key to a command in every scope.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForScope(seq, cmd, desc, nil)
}

// BindWithDescForScope registers a key limited to scopes. A nil cmd records a
// help hint for a key the shell handles itself.
func (r *KeybindRegistry) BindWithDescForScope(seq string, cmd tea.Cmd, desc string, scopes []Scope) {
	n := normalizeSeq(seq)
	if _, ok := r.bindings[n]; !ok {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(scopes) > 0 {
		r.scopes[n] = scopes
	} else {
		delete(r.scopes, n)
	}
}

// Lookup returns the command for a key in scope, or nil if not bound there.
func (r *KeybindRegistry) Lookup(seq string, scope Scope) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesTo(n, scope) {
		return nil
	}
	return r.bindings[n]
}

// Hints returns described bindings for scope in registration order.
func (r *KeybindRegistry) Hints(scope Scope) []key.Binding {
	var out []key.Binding
	for _, seq := range r.order {
		desc, ok := r.descriptions[seq]
		if !ok || !r.appliesTo(seq, scope) {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(seq), key.WithHelp(seq, desc)))
	}
	return out
}

func (r *KeybindRegistry) appliesTo(seq string, scope Scope) bool {
	scopes, ok := r.scopes[seq]
	if !ok || len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to registry notation.
func normalizeSeq(seq string) string {
	if seq == " " {
		return "space"
	}
	return strings.TrimSpace(seq)
}

// DefaultKeybinds returns the shell's bindings. Focus movement, activation and
// Esc are handled by the model; they are registered here only for help.
func DefaultKeybinds() *KeybindRegistry {
	page := []Scope{ScopePage}
	menu := []Scope{ScopeMenu}
	r := NewKeybindRegistry()
	r.BindWithDescForScope("tab", nil, "next", nil)
	r.BindWithDescForScope("enter", nil, "open", nil)
	r.BindWithDescForScope("esc", nil, "close", menu)
	r.BindWithDescForScope("m", func() tea.Msg { return OpenMenuMsg{} }, "menu", page)
	r.BindWithDescForScope("b", func() tea.Msg { return BackMsg{} }, "back", page)
	r.BindWithDescForScope("backspace", func() tea.Msg { return BackMsg{} }, "", page)
	r.BindWithDescForScope("?", func() tea.Msg { return ToggleHelpMsg{} }, "help", page)
	r.BindWithDescForScope("q", tea.Quit, "quit", page)
	r.Bind("ctrl+c", tea.Quit)
	return r
}

// KeyMap implements help.KeyMap over a registry scope.
type KeyMap struct {
	registry *KeybindRegistry
	scope    Scope
}

// NewKeyMap creates a KeyMap for registry limited to scope.
func NewKeyMap(registry *KeybindRegistry, scope Scope) help.KeyMap {
	return &KeyMap{registry: registry, scope: scope}
}

// ShortHelp returns the scope's bindings in registration order.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Hints(km.scope)
}

// FullHelp returns the scope's bindings as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	b := km.ShortHelp()
	if len(b) == 0 {
		return nil
	}
	return [][]key.Binding{b}
}
