package shell

import (
	"vmlsite/internal/content"
	"vmlsite/internal/overlay"
)

// settleMsg completes an overlay transition once its visual step is over.
type settleMsg struct {
	owner  string
	ticket overlay.Ticket
}

// MountFailedMsg reports that the menu could not be mounted. The menu stays
// closed and the next open retries.
type MountFailedMsg struct {
	Err error
}

// ContentReloadedMsg is sent by the content watcher after pages change on disk.
type ContentReloadedMsg struct {
	Site *content.Site
	Err  error
}

// NavigatedMsg is emitted after every navigation request, successful or not.
type NavigatedMsg struct {
	Result content.Result
	Err    error
}

// BackMsg asks the shell to return to the previous page.
type BackMsg struct{}

// OpenMenuMsg asks the shell to open the menu (compact widths only).
type OpenMenuMsg struct{}

// ToggleHelpMsg switches the footer between short and full help.
type ToggleHelpMsg struct{}
