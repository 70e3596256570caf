package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortalHost_SingletonLifecycle(t *testing.T) {
	a := AcquireHost()
	b := AcquireHost()
	require.Same(t, a, b, "shells must share one host")

	ReleaseHost()
	assert.Same(t, a, CurrentHost(), "host lives while a shell remains")
	ReleaseHost()
	assert.Nil(t, CurrentHost())

	err := a.Mount("shell-1", Layer{Content: "x"})
	assert.ErrorIs(t, err, ErrMountFailed, "torn-down host refuses mounts")

	c := AcquireHost()
	assert.NotSame(t, a, c, "a fresh host is created for the next shell")
	ReleaseHost()
	ReleaseHost()
	assert.Nil(t, CurrentHost(), "extra releases are ignored")
}

func TestPortalHost_SingleOwner(t *testing.T) {
	h := &PortalHost{}
	require.NoError(t, h.Mount("a", Layer{Content: "panel"}))
	err := h.Mount("b", Layer{Content: "other"})
	assert.ErrorIs(t, err, ErrPortalBusy)
	assert.ErrorIs(t, err, ErrMountFailed)

	h.Unmount("b")
	assert.Equal(t, "a", h.Owner(), "non-owner unmount is ignored")
	h.Unmount("a")
	_, ok := h.Mounted()
	assert.False(t, ok)
	require.NoError(t, h.Mount("b", Layer{Content: "other"}))
}

func TestPortalHost_NilHost(t *testing.T) {
	var h *PortalHost
	assert.ErrorIs(t, h.Mount("a", Layer{}), ErrMountFailed)
	h.Unmount("a")
	assert.Equal(t, "", h.Owner())
}

func TestPortalHost_Compose(t *testing.T) {
	h := &PortalHost{}
	base := "aaaaaaaa\nbbbbbbbb\ncccccccc"
	assert.Equal(t, base+"\n", h.Compose(base, 8, 4), "nothing mounted pads to height")

	require.NoError(t, h.Mount("a", Layer{Content: "XX\nYY", X: 5, Y: 1}))
	out := strings.Split(h.Compose(base, 8, 3), "\n")
	require.Len(t, out, 3)
	assert.Equal(t, "aaaaaaaa", out[0])
	assert.Equal(t, "bbbbbXXb", out[1])
	assert.Equal(t, "cccccYYc", out[2])

	h.Unmount("a")
	assert.Equal(t, base, h.Compose(base, 8, 3), "unmount leaves no residue")
}

func TestPortalHost_ComposeScrim(t *testing.T) {
	h := &PortalHost{}
	require.NoError(t, h.Mount("a", Layer{Content: "P", X: 0, Y: 0, Scrim: true}))
	out := strings.Split(h.Compose("hello\nworld", 5, 2), "\n")
	assert.Equal(t, "Pello", ansi.Strip(out[0]))
	assert.Equal(t, "world", ansi.Strip(out[1]))
}

func TestLayer_Contains(t *testing.T) {
	l := Layer{Content: "abc\nde", X: 10, Y: 2}
	w, hgt := l.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, hgt)
	assert.True(t, l.Contains(10, 2))
	assert.True(t, l.Contains(12, 3))
	assert.False(t, l.Contains(13, 2))
	assert.False(t, l.Contains(9, 2))
	assert.False(t, l.Contains(10, 4))
}
