// Package canvas implements the japmic canvas widget: a black drawing
// surface with a "japmic" label, sized from shared state and kept in step
// with the viewport through resize events.
package canvas

import (
	"image/color"
	"sync"

	"japmic/store"
)

const (
	label     = "japmic"
	labelSize = 48
	labelTop  = 20
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// SizeStore is the shared canvas-size state the widget reads and updates.
type SizeStore interface {
	CanvasSize() store.CanvasSize
	SetCanvasSize(store.CanvasSize)
	Subscribe(func(store.CanvasSize)) (unsubscribe func())
}

// ResizeSource delivers viewport resize events.
type ResizeSource interface {
	AddResizeListener(func()) (remove func())
}

// Widget draws into an Element's surface. Redraws are fully determined by
// the current canvas size and background, so they can be repeated freely.
type Widget struct {
	background Mode
	sizes      SizeStore
	resizes    ResizeSource
	element    Element

	mu           sync.Mutex
	mounted      bool
	unsubscribe  func()
	removeResize func()
}

// New creates an unmounted widget. background is fixed for its lifetime.
func New(background Mode, sizes SizeStore, resizes ResizeSource, el Element) *Widget {
	return &Widget{
		background: background,
		sizes:      sizes,
		resizes:    resizes,
		element:    el,
	}
}

// Background returns the mode the widget was created with.
func (w *Widget) Background() Mode {
	return w.background
}

// Mounted reports whether the widget is between Mount and Close.
func (w *Widget) Mounted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mounted
}

// Mount draws the current state, starts following canvas size changes and
// resize events, and reports the element's measured size once.
// Mounting an already mounted widget does nothing.
func (w *Widget) Mount() {
	w.mu.Lock()
	if w.mounted {
		w.mu.Unlock()
		return
	}
	w.mounted = true
	w.unsubscribe = w.sizes.Subscribe(w.onSizeChange)
	w.mu.Unlock()

	w.Redraw()

	remove := w.resizes.AddResizeListener(w.handleResize)
	w.mu.Lock()
	w.removeResize = remove
	w.mu.Unlock()

	w.handleResize()
}

// Close stops listening for size changes and resize events. It is safe to
// call more than once.
func (w *Widget) Close() error {
	w.mu.Lock()
	unsubscribe, removeResize := w.unsubscribe, w.removeResize
	w.unsubscribe, w.removeResize = nil, nil
	w.mounted = false
	w.mu.Unlock()

	if removeResize != nil {
		removeResize()
	}
	if unsubscribe != nil {
		unsubscribe()
	}
	return nil
}

// Redraw repaints the surface from the current canvas size.
func (w *Widget) Redraw() {
	w.draw(w.sizes.CanvasSize())
}

func (w *Widget) onSizeChange(size store.CanvasSize) {
	if !w.Mounted() {
		return
	}
	w.draw(size)
}

func (w *Widget) draw(size store.CanvasSize) {
	surface, ok := w.element.Context()
	if !ok {
		return
	}
	w.applySize(surface, size)
	w.drawLabel(surface, size)
}

// applySize resizes the surface, which clears it, and fills it black.
func (w *Widget) applySize(s Surface, size store.CanvasSize) {
	s.SetSize(size.Width, size.Height)
	s.FillRect(0, 0, float64(size.Width), float64(size.Height), black)
}

func (w *Widget) drawLabel(s Surface, size store.CanvasSize) {
	style := TextStyle{Size: labelSize, Align: AlignCenter}
	x := float64(size.Width) / 2

	switch w.background {
	case ModeJapmic:
		style.Color = black
		style.Baseline = BaselineTop
		s.FillText(label, x, labelTop, style)
	case ModeIPhone:
		style.Color = white
		style.Baseline = BaselineMiddle
		s.FillText(label, x, float64(size.Height)/2, style)
	}
}

// handleResize measures the element and writes its size back to the store.
// An unmounted widget never writes.
func (w *Widget) handleResize() {
	if !w.Mounted() {
		return
	}
	width, height := w.element.DisplaySize()
	w.sizes.SetCanvasSize(store.CanvasSize{Width: width, Height: height})
}
