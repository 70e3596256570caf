package content

import (
	"errors"
	"fmt"
	"strings"
)

const githubOrg = "VideoML"

// Repos maps short repository keys to their GitHub repository names.
var Repos = map[string]string{
	"site":          "videoml-org",
	"specification": "specification",
	"player":        "player",
	"stdlib":        "stdlib",
	"toolchain":     "toolchain",
	"cli":           "cli",
}

// NPMPackages maps package keys to their npm registry pages.
var NPMPackages = map[string]string{
	"player":    "https://www.npmjs.com/package/@videoml/player",
	"stdlib":    "https://www.npmjs.com/package/@videoml/stdlib",
	"toolchain": "https://www.npmjs.com/package/@videoml/toolchain",
	"cli":       "https://www.npmjs.com/package/@videoml/cli",
}

// NPMOrgURL is the npm organization page.
const NPMOrgURL = "https://www.npmjs.com/org/videoml"

// ErrUnknownRepo is returned for repository or package keys not listed above.
var ErrUnknownRepo = errors.New("unknown repository")

func repoBaseURL(repo string) (string, error) {
	name, ok := Repos[repo]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRepo, repo)
	}
	return "https://github.com/" + githubOrg + "/" + name, nil
}

// RepoURL returns the GitHub URL of a repository.
func RepoURL(repo string) (string, error) {
	return repoBaseURL(repo)
}

// BlobURL returns the GitHub URL of a file on main.
func BlobURL(repo, path string) (string, error) {
	base, err := repoBaseURL(repo)
	if err != nil {
		return "", err
	}
	return base + "/blob/main/" + strings.TrimLeft(path, "/"), nil
}

// TreeURL returns the GitHub URL of a directory on main, or the root tree when
// path is empty.
func TreeURL(repo, path string) (string, error) {
	base, err := repoBaseURL(repo)
	if err != nil {
		return "", err
	}
	clean := strings.TrimLeft(path, "/")
	if clean == "" {
		return base + "/tree/main", nil
	}
	return base + "/tree/main/" + clean, nil
}

// ResolveHref expands manifest shorthands into real hrefs:
//
//	github:player            -> repository URL
//	github:player/src/x.ts   -> blob URL
//	github:player/src/       -> tree URL
//	npm:player               -> npm package page
//	npm:                     -> npm organization page
//
// Site paths ("/docs") are returned unchanged and reported as internal.
func ResolveHref(href string) (resolved string, external bool, err error) {
	switch {
	case strings.HasPrefix(href, "github:"):
		rest := strings.TrimPrefix(href, "github:")
		repo, path, _ := strings.Cut(rest, "/")
		switch {
		case path == "":
			resolved, err = RepoURL(repo)
		case strings.HasSuffix(path, "/"):
			resolved, err = TreeURL(repo, strings.TrimSuffix(path, "/"))
		default:
			resolved, err = BlobURL(repo, path)
		}
		return resolved, true, err
	case strings.HasPrefix(href, "npm:"):
		pkg := strings.TrimPrefix(href, "npm:")
		if pkg == "" {
			return NPMOrgURL, true, nil
		}
		u, ok := NPMPackages[pkg]
		if !ok {
			return "", true, fmt.Errorf("%w: npm package %q", ErrUnknownRepo, pkg)
		}
		return u, true, nil
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return href, true, nil
	case strings.HasPrefix(href, "/"):
		return href, false, nil
	}
	return "", false, fmt.Errorf("unsupported href %q", href)
}
