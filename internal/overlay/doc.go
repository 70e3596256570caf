// Package overlay provides the modal overlay primitive used by the site shell.
//
// The pieces are toolkit independent:
//   - Machine: open/close lifecycle for one panel bound to one trigger
//   - FocusTrap: confines focus rotation to the panel while it is open
//   - ScrollLock: freezes the page scroll offset, reference counted
//   - PortalHost: page-wide compositing layer the panel is mounted into
//
// Machine drives the other three through the Effects interface. A Bubble Tea
// adapter lives in package shell.
package overlay
