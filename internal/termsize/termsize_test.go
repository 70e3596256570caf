package termsize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creack/pty"
)

func TestOf_ReadsPTYSize(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 132}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}
	got, err := Of(tty)
	if err != nil {
		t.Fatalf("Of: %v", err)
	}
	if got != (Size{Rows: 30, Cols: 132}) {
		t.Errorf("Of: got %+v", got)
	}
}

func TestOrDefault_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	fallback := Size{Rows: 24, Cols: 80}
	if got := OrDefault(f, fallback); got != fallback {
		t.Errorf("OrDefault: got %+v, want fallback", got)
	}
}
