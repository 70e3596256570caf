package content

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

func init() {
	// The terminal belongs to the TUI; keep launcher chatter off it.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// SystemOpener opens url in the platform's default browser.
func SystemOpener(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
