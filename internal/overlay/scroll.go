package overlay

// Scroller is a scrollable region with a vertical offset.
type Scroller interface {
	YOffset() int
	SetYOffset(int)
}

// ScrollLock freezes a Scroller's offset. Engages are reference counted: the
// offset is captured by the first engage and restored by the matching last
// release.
type ScrollLock struct {
	target Scroller
	saved  int
	refs   int
}

// NewScrollLock returns a lock over target.
func NewScrollLock(target Scroller) *ScrollLock {
	return &ScrollLock{target: target}
}

// Engage locks the offset, capturing it if this is the outermost engage.
func (l *ScrollLock) Engage() {
	if l.refs == 0 && l.target != nil {
		l.saved = l.target.YOffset()
	}
	l.refs++
}

// Release drops one engage; the last one restores the captured offset.
// Releasing an unlocked lock does nothing.
func (l *ScrollLock) Release() {
	if l.refs == 0 {
		return
	}
	l.refs--
	if l.refs == 0 && l.target != nil {
		l.target.SetYOffset(l.saved)
	}
}

// Hold re-applies the frozen offset. Call it after anything that may have
// moved the region (resize, content reload) while locked.
func (l *ScrollLock) Hold() {
	if l.refs > 0 && l.target != nil && l.target.YOffset() != l.saved {
		l.target.SetYOffset(l.saved)
	}
}

// Locked reports whether at least one engage is outstanding.
func (l *ScrollLock) Locked() bool {
	return l.refs > 0
}

// Saved returns the captured offset.
func (l *ScrollLock) Saved() int {
	return l.saved
}

// Rebase replaces the captured offset while locked, for when the frozen region
// was swapped out underneath the lock (a page change). No-op when unlocked.
func (l *ScrollLock) Rebase(offset int) {
	if l.refs == 0 {
		return
	}
	l.saved = offset
	l.Hold()
}
