// Package shell is the site's persistent terminal chrome, built on Bubble Tea.
//
// Core pieces:
//   - Model: header, scrollable main region and footer around the current page
//   - Breakpoint: decides between inline navigation and the menu trigger
//   - sheet: Bubble Tea adapter driving an overlay.Machine for the slide-in menu
//   - focusRing: tab order of the page chrome while the menu is closed
//   - KeybindRegistry: global key bindings and the footer help
//
// Below the breakpoint the header shows a single Menu trigger; the menu panel is
// mounted into the page-wide overlay.PortalHost and lists the same entries as
// the inline header.
package shell
