// Package content is the page layer the site shell embeds: the site manifest
// (navigation entries, page list, footer), the markdown pages themselves, the
// router that tracks the current path, and an optional directory watcher for
// live reloads while editing pages.
package content
