package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T, open Opener) *Router {
	t.Helper()
	s, err := Load(Embedded())
	require.NoError(t, err)
	return NewRouter(s, "/", open)
}

func TestRouter_NavigateAndBack(t *testing.T) {
	r := testRouter(t, nil)
	res, err := r.Navigate("/docs")
	require.NoError(t, err)
	assert.Equal(t, "/docs", res.Path)
	_, err = r.Navigate("/docs/cli/")
	require.NoError(t, err)
	assert.Equal(t, "/docs/cli", r.Current())

	prev, ok := r.Back()
	assert.True(t, ok)
	assert.Equal(t, "/docs", prev)
	prev, _ = r.Back()
	assert.Equal(t, "/", prev)
	_, ok = r.Back()
	assert.False(t, ok)
	assert.False(t, r.CanGoBack())
}

func TestRouter_NavigateSamePathKeepsHistory(t *testing.T) {
	r := testRouter(t, nil)
	_, _ = r.Navigate("/")
	assert.False(t, r.CanGoBack())
}

func TestRouter_NotFound(t *testing.T) {
	r := testRouter(t, nil)
	_, err := r.Navigate("/doc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "did you mean /docs?")
	assert.Equal(t, "/", r.Current(), "failed navigation stays put")
}

func TestRouter_External(t *testing.T) {
	var opened []string
	r := testRouter(t, func(u string) error {
		opened = append(opened, u)
		return nil
	})
	res, err := r.Navigate("github:player")
	require.NoError(t, err)
	assert.True(t, res.External)
	assert.Equal(t, "/", r.Current())
	assert.Equal(t, []string{"https://github.com/VideoML/player"}, opened)

	failing := testRouter(t, func(string) error { return errors.New("no browser") })
	_, err = failing.Navigate("https://videoml.org")
	assert.ErrorContains(t, err, "no browser")

	none := testRouter(t, nil)
	_, err = none.Navigate("npm:")
	assert.Error(t, err)
}

func TestRouter_Active(t *testing.T) {
	r := testRouter(t, nil)
	nav := r.Site().Nav()
	assert.Equal(t, -1, r.Active(nav), "home has no nav entry")
	_, _ = r.Navigate("/docs/stdlib")
	assert.Equal(t, "Docs", nav[r.Active(nav)].Label)
	_, _ = r.Navigate("/specs")
	assert.Equal(t, "Spec", nav[r.Active(nav)].Label)

	entries := []NavEntry{{Label: "Home", Href: "/"}, {Label: "Docs", Href: "/docs"}, {Label: "CLI", Href: "/docs/cli"}}
	assert.Equal(t, 2, ActiveIndex(entries, "/docs/cli"), "longest match wins")
	assert.Equal(t, -1, ActiveIndex(entries, "/docsx"))
	assert.Equal(t, 0, ActiveIndex(entries, "/"))
}

func TestRouter_SetSiteFallsBackHome(t *testing.T) {
	r := testRouter(t, nil)
	_, _ = r.Navigate("/player")
	s, err := Load(Embedded())
	require.NoError(t, err)
	delete(s.pages, "/player")
	r.SetSite(s)
	assert.Equal(t, "/", r.Current())
}

func TestNewRouter_UnknownStart(t *testing.T) {
	s, _ := Load(Embedded())
	r := NewRouter(s, "/nowhere", nil)
	assert.Equal(t, "/", r.Current())
	r = NewRouter(s, "docs/", nil)
	assert.Equal(t, "/docs", r.Current())
	page, ok := r.Page()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(page.Source, "# VideoML Standard"))
}
