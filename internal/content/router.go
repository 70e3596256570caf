package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when navigating to a path the site has no page for.
var ErrNotFound = errors.New("page not found")

// Opener hands an external URL to something outside the shell (a browser).
type Opener func(url string) error

// Result describes a completed navigation.
type Result struct {
	Href     string
	Path     string // current path after navigating
	External bool   // href was handed to the Opener; Path is unchanged
}

// Router tracks the current path and resolves navigation requests against a Site.
type Router struct {
	site    *Site
	current string
	history History
	open    Opener
}

// NewRouter creates a router positioned at start, or at "/" if start is unknown.
func NewRouter(site *Site, start string, open Opener) *Router {
	r := &Router{site: site, current: "/", open: open}
	if _, ok := site.Page(start); ok {
		r.current = CleanPath(start)
	}
	return r
}

// Current returns the current path.
func (r *Router) Current() string {
	return r.current
}

// Page returns the page at the current path.
func (r *Router) Page() (*Page, bool) {
	return r.site.Page(r.current)
}

// Site returns the site the router resolves against.
func (r *Router) Site() *Site {
	return r.site
}

// Navigate resolves href. Site paths become the current page (the previous one
// is pushed onto history); external hrefs go to the Opener. Unknown paths
// leave the router where it is and return an error wrapping ErrNotFound.
func (r *Router) Navigate(href string) (Result, error) {
	resolved, external, err := ResolveHref(href)
	if err != nil {
		return Result{Href: href, Path: r.current}, fmt.Errorf("navigate: %w", err)
	}
	if external {
		if r.open == nil {
			return Result{Href: resolved, Path: r.current, External: true}, fmt.Errorf("navigate: no opener for %s", resolved)
		}
		if err := r.open(resolved); err != nil {
			return Result{Href: resolved, Path: r.current, External: true}, fmt.Errorf("open %s: %w", resolved, err)
		}
		return Result{Href: resolved, Path: r.current, External: true}, nil
	}

	path := CleanPath(resolved)
	if _, ok := r.site.Page(path); !ok {
		err := fmt.Errorf("%w: %s", ErrNotFound, path)
		if s := r.site.Suggest(path); s != "" {
			err = fmt.Errorf("%w (did you mean %s?)", err, s)
		}
		return Result{Href: resolved, Path: r.current}, err
	}
	if path != r.current {
		r.history.Push(r.current)
		r.current = path
	}
	return Result{Href: resolved, Path: path}, nil
}

// Back returns to the previous page. Returns false when there is no history.
func (r *Router) Back() (string, bool) {
	for {
		prev, ok := r.history.Pop()
		if !ok {
			return r.current, false
		}
		if _, exists := r.site.Page(prev); exists {
			r.current = prev
			return prev, true
		}
	}
}

// CanGoBack reports whether Back would move.
func (r *Router) CanGoBack() bool {
	return r.history.Len() > 0
}

// SetSite swaps in a reloaded site. If the current page no longer exists the
// router falls back to "/".
func (r *Router) SetSite(site *Site) {
	r.site = site
	if _, ok := site.Page(r.current); !ok {
		r.current = "/"
	}
}

// Active returns the index of the entry matching the current path, or -1. An
// entry matches its own path and every path below it; "/" only matches itself.
func (r *Router) Active(entries []NavEntry) int {
	return ActiveIndex(entries, r.current)
}

// ActiveIndex is Active for an explicit path.
func ActiveIndex(entries []NavEntry, current string) int {
	best, bestLen := -1, -1
	for i, e := range entries {
		if e.External {
			continue
		}
		href := CleanPath(e.Href)
		match := current == href || (href != "/" && strings.HasPrefix(current, href+"/"))
		if match && len(href) > bestLen {
			best, bestLen = i, len(href)
		}
	}
	return best
}
