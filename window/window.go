// Package window is the resize event source the canvas widget listens to.
package window

import "sync"

type listener struct {
	id      int
	fn      func()
	removed bool // guarded by Window.mu
}

// Window tracks the viewport size, in terminal cells, and notifies
// resize listeners.
type Window struct {
	mu        sync.Mutex
	cols      int
	rows      int
	listeners []*listener
	nextID    int
}

// New creates a window with the given initial size.
func New(cols, rows int) *Window {
	return &Window{cols: cols, rows: rows}
}

// Size returns the last recorded viewport size.
func (w *Window) Size() (cols, rows int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cols, w.rows
}

// AddResizeListener registers fn and returns its remover.
func (w *Window) AddResizeListener(fn func()) func() {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.listeners = append(w.listeners, &listener{id: id, fn: fn})
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { w.remove(id) })
	}
}

func (w *Window) remove(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, l := range w.listeners {
		if l.id == id {
			l.removed = true
			w.listeners = append(w.listeners[:i:i], w.listeners[i+1:]...)
			return
		}
	}
}

// Listeners reports how many resize listeners are registered.
func (w *Window) Listeners() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

// Resize records the new size and runs every listener, in registration
// order, on the caller's goroutine. A listener removed by an earlier one
// during the same dispatch is skipped.
func (w *Window) Resize(cols, rows int) {
	w.mu.Lock()
	w.cols, w.rows = cols, rows
	ls := make([]*listener, len(w.listeners))
	copy(ls, w.listeners)
	w.mu.Unlock()

	for _, l := range ls {
		w.mu.Lock()
		removed := l.removed
		w.mu.Unlock()
		if removed {
			continue
		}
		l.fn()
	}
}
