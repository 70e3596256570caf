package content

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Page is one loaded page: its markdown source and the links it offers.
type Page struct {
	Path   string
	Title  string
	Source string
	Links  []NavEntry
}

// Site is a loaded manifest plus its pages, keyed by path.
type Site struct {
	Manifest *Manifest
	pages    map[string]*Page
	order    []string
}

// Load reads the manifest and every page it lists from fsys.
func Load(fsys fs.FS) (*Site, error) {
	m, err := LoadManifest(fsys)
	if err != nil {
		return nil, err
	}
	s := &Site{Manifest: m, pages: make(map[string]*Page, len(m.Pages))}
	for _, spec := range m.Pages {
		src, err := fs.ReadFile(fsys, spec.File)
		if err != nil {
			return nil, fmt.Errorf("load page %s: %w", spec.Path, err)
		}
		s.pages[spec.Path] = &Page{
			Path:   spec.Path,
			Title:  spec.Title,
			Source: string(src),
			Links:  spec.Links,
		}
		s.order = append(s.order, spec.Path)
	}
	return s, nil
}

// Page returns the page at path.
func (s *Site) Page(path string) (*Page, bool) {
	p, ok := s.pages[CleanPath(path)]
	return p, ok
}

// Paths returns page paths in manifest order.
func (s *Site) Paths() []string {
	return append([]string(nil), s.order...)
}

// Nav returns a copy of the navigation entries in manifest order.
func (s *Site) Nav() []NavEntry {
	return append([]NavEntry(nil), s.Manifest.Nav...)
}

// Suggest returns the known path closest to path by edit distance, or "" if
// nothing is reasonably close.
func (s *Site) Suggest(path string) string {
	path = CleanPath(path)
	best, bestDist := "", -1
	for _, p := range s.order {
		d := levenshtein.ComputeDistance(path, p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	if bestDist < 0 || bestDist > len(path)/2+1 {
		return ""
	}
	return best
}

// CleanPath normalizes a site path: leading slash, no trailing slash, no query
// or fragment.
func CleanPath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = "/" + strings.Trim(p, "/")
	return p
}
