package content

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer("notty")
	out, err := r.Render("# Hello\n\nSome *body* text.", 40)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Hello") || !strings.Contains(plain, "body") {
		t.Errorf("Render: missing text in %q", plain)
	}

	first := r.tr
	if _, err := r.Render("again", 40); err != nil {
		t.Fatal(err)
	}
	if r.tr != first {
		t.Error("Render: renderer rebuilt for unchanged width")
	}
	if _, err := r.Render("again", 60); err != nil {
		t.Fatal(err)
	}
	if r.tr == first {
		t.Error("Render: renderer not rebuilt for new width")
	}
}
