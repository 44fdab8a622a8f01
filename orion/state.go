package orion

import (
	"slices"
	"sync"
)

//go:generate go tool stringer -type=WindowState,LoopState -output=state_string.go

// WindowState is the lifecycle state of a GameWindow.
type WindowState uint8

const (
	WindowUninitialized WindowState = iota
	WindowCreated
	WindowRunning
	WindowResizing
	WindowFullscreenTransition
	WindowClosed
)

// LoopState is the lifecycle state of a Loop.
type LoopState uint8

const (
	LoopNotStarted LoopState = iota
	LoopInitializing
	LoopRunning
	LoopExiting
	LoopStopped
)

// handlers is a list of callbacks that can be removed again.
type handlers[T any] struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func(T)
}

func (h *handlers[T]) add(fn func(T)) (remove func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.fns == nil {
		h.fns = map[int]func(T){}
	}

	id := h.nextID
	h.nextID++
	h.fns[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.fns, id)
	}
}

// emit calls all handlers in registration order. Handlers may add or remove
// handlers while being called.
func (h *handlers[T]) emit(value T) {
	h.mu.Lock()
	ids := make([]int, 0, len(h.fns))
	for id := range h.fns {
		ids = append(ids, id)
	}
	fns := h.fns
	h.mu.Unlock()

	slices.Sort(ids)

	for _, id := range ids {
		h.mu.Lock()
		fn, ok := fns[id]
		h.mu.Unlock()

		if ok {
			fn(value)
		}
	}
}
