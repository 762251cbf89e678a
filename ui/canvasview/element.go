package canvasview

import "japmic/ui/canvas"

// termElement is the canvas as laid out in the terminal: a block of cells,
// each standing for cellWidth x cellHeight pixels.
type termElement struct {
	cols, rows            int
	cellWidth, cellHeight int
	attached              bool
	surface               canvas.Surface
}

// DisplaySize is the viewport's size in pixels.
func (e *termElement) DisplaySize() (int, int) {
	return e.cols * e.cellWidth, e.rows * e.cellHeight
}

// Context is unavailable until the terminal has reported its size.
func (e *termElement) Context() (canvas.Surface, bool) {
	if !e.attached || e.surface == nil {
		return nil, false
	}
	return e.surface, true
}

func (e *termElement) layout(cols, rows int) {
	e.cols, e.rows = max(cols, 0), max(rows, 0)
	e.attached = true
}
