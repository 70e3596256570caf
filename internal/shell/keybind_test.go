package shell

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_ScopedLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForScope("q", tea.Quit, "quit", []Scope{ScopePage})
	reg.Bind("ctrl+c", tea.Quit)

	if reg.Lookup("q", ScopePage) == nil {
		t.Error("expected q bound on the page")
	}
	if reg.Lookup("q", ScopeMenu) != nil {
		t.Error("expected q unbound in the menu")
	}
	if reg.Lookup("ctrl+c", ScopeMenu) == nil {
		t.Error("expected ctrl+c bound everywhere")
	}
	if reg.Lookup("unknown", ScopePage) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_SpaceNormalized(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("space", tea.Quit)
	if reg.Lookup(" ", ScopePage) == nil {
		t.Error("expected tea's \" \" to match space")
	}
}

func TestKeybindRegistry_HintsOrder(t *testing.T) {
	reg := DefaultKeybinds()
	var page []string
	for _, b := range reg.Hints(ScopePage) {
		page = append(page, b.Help().Key)
	}
	want := []string{"tab", "enter", "m", "b", "?", "q"}
	if len(page) != len(want) {
		t.Fatalf("page hints: got %v, want %v", page, want)
	}
	for i := range want {
		if page[i] != want[i] {
			t.Errorf("hint %d: got %q, want %q", i, page[i], want[i])
		}
	}

	var menu []string
	for _, b := range reg.Hints(ScopeMenu) {
		menu = append(menu, b.Help().Key)
	}
	if len(menu) != 3 || menu[2] != "esc" {
		t.Errorf("menu hints: got %v", menu)
	}
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := NewKeyMap(DefaultKeybinds(), ScopeMenu)
	full := km.FullHelp()
	if len(full) != 1 || len(full[0]) != len(km.ShortHelp()) {
		t.Errorf("FullHelp: got %v", full)
	}
	if NewKeyMap(nil, ScopePage).ShortHelp() != nil {
		t.Error("nil registry should have no hints")
	}
}

func TestBreakpoint_IsCompact(t *testing.T) {
	b := Breakpoint{CompactBelow: 768}
	cases := map[int]bool{0: true, 360: true, 767: true, 768: false, 1280: false}
	for w, want := range cases {
		if got := b.IsCompact(w); got != want {
			t.Errorf("IsCompact(%d) = %v, want %v", w, got, want)
		}
	}
}
