package shell

import "testing"

func TestFocusRing_NextPrevWrap(t *testing.T) {
	f := &focusRing{}
	f.Order = []string{"a", "b", "c"}
	f.Current = "a"
	if got := f.Next(); got != "b" {
		t.Errorf("Next: got %q, want b", got)
	}
	f.Next()
	if got := f.Next(); got != "a" {
		t.Errorf("Next wrap: got %q, want a", got)
	}
	if got := f.Prev(); got != "c" {
		t.Errorf("Prev wrap: got %q, want c", got)
	}
}

func TestFocusRing_Empty(t *testing.T) {
	f := &focusRing{}
	if got := f.Next(); got != "" {
		t.Errorf("Next on empty: got %q", got)
	}
	if f.SetFocus("x") {
		t.Error("SetFocus on empty order should fail")
	}
}

func TestFocusRing_ResetKeepsSurvivor(t *testing.T) {
	var changes int
	f := &focusRing{}
	f.Order = []string{"brand", "nav:0", "main"}
	f.Current = "nav:0"
	f.OnChange = func(from, to string) { changes++ }

	f.Reset([]string{"brand", "nav:0", "nav:1", "main"}, IDMain)
	if f.Current != "nav:0" || changes != 0 {
		t.Errorf("survivor: current=%q changes=%d", f.Current, changes)
	}

	f.Reset([]string{"brand", IDTrigger, "main"}, IDMain)
	if f.Current != IDMain || changes != 1 {
		t.Errorf("fallback: current=%q changes=%d", f.Current, changes)
	}
}
