package orion

import (
	"sync"

	"github.com/oliverbestmann/xenon/glimpse"
)

// ContextLock guards the native graphics context of a window. Drawing and
// presenting a frame and resizing the back buffer both hold the lock, so a
// render thread driven by the display never uses the context while the main
// thread resizes it.
type ContextLock struct {
	mu        sync.Mutex
	presenter glimpse.Presenter
}

// NewContextLock returns a lock for the given presenter. A nil presenter is
// allowed for windows without a native graphics context.
func NewContextLock(presenter glimpse.Presenter) *ContextLock {
	return &ContextLock{presenter: presenter}
}

// Do runs fn while holding the lock with the context made current.
func (l *ContextLock) Do(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.presenter != nil {
		l.presenter.MakeCurrent()
		defer l.presenter.DetachCurrent()
	}

	fn()
}

// Render draws and presents one frame. It is safe to call from a render
// thread other than the one running the loop.
func (l *ContextLock) Render(draw func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.presenter == nil {
		return draw()
	}

	l.presenter.MakeCurrent()
	defer l.presenter.DetachCurrent()

	if err := draw(); err != nil {
		return err
	}

	l.presenter.Present()
	return nil
}
