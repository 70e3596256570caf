package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed site
var embedded embed.FS

// ManifestFile is the manifest's name at the root of a site directory.
const ManifestFile = "site.yaml"

// Embedded returns the site compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "site")
	if err != nil {
		panic(err) // embed directive guarantees the directory
	}
	return sub
}

// NavEntry is one navigation destination. The same ordered entries back both
// the inline header links and the overlay panel.
type NavEntry struct {
	Label    string `yaml:"label"`
	Href     string `yaml:"href"`
	External bool   `yaml:"external"`
}

// PageSpec declares one page of the site.
type PageSpec struct {
	Path  string     `yaml:"path"`
	Title string     `yaml:"title"`
	File  string     `yaml:"file"`
	Links []NavEntry `yaml:"links"`
}

// Manifest describes the site: metadata, navigation and pages.
type Manifest struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	SiteURL     string     `yaml:"site_url"`
	Brand       string     `yaml:"brand"`
	Footer      string     `yaml:"footer"`
	Nav         []NavEntry `yaml:"nav"`
	Pages       []PageSpec `yaml:"pages"`
}

// ErrInvalidManifest wraps every manifest validation failure.
var ErrInvalidManifest = errors.New("invalid site manifest")

// LoadManifest reads and validates site.yaml from fsys. Link shorthands are
// resolved and External is set from the resolved href.
func LoadManifest(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.resolve(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) resolve() error {
	if len(m.Nav) == 0 {
		return fmt.Errorf("%w: no nav entries", ErrInvalidManifest)
	}
	if m.Brand == "" {
		m.Brand = m.Title
	}
	if err := resolveEntries(m.Nav); err != nil {
		return fmt.Errorf("%w: nav: %v", ErrInvalidManifest, err)
	}
	seen := make(map[string]bool, len(m.Pages))
	for i := range m.Pages {
		p := &m.Pages[i]
		if p.Path == "" || p.File == "" {
			return fmt.Errorf("%w: page %d needs path and file", ErrInvalidManifest, i)
		}
		p.Path = CleanPath(p.Path)
		if seen[p.Path] {
			return fmt.Errorf("%w: duplicate page %s", ErrInvalidManifest, p.Path)
		}
		seen[p.Path] = true
		if err := resolveEntries(p.Links); err != nil {
			return fmt.Errorf("%w: page %s: %v", ErrInvalidManifest, p.Path, err)
		}
	}
	return nil
}

func resolveEntries(entries []NavEntry) error {
	for i := range entries {
		e := &entries[i]
		if e.Label == "" {
			return fmt.Errorf("entry %d has no label", i)
		}
		href, external, err := ResolveHref(e.Href)
		if err != nil {
			return err
		}
		e.Href = href
		e.External = e.External || external
	}
	return nil
}
