package content

import (
	"io"
	"testing"

	"github.com/pkg/browser"
)

func TestSystemOpener_QuietLauncher(t *testing.T) {
	if browser.Stdout != io.Discard || browser.Stderr != io.Discard {
		t.Error("browser launcher output must not reach the terminal")
	}
}
