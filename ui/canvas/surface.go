package canvas

import "image/color"

// Align is the horizontal anchor of a text run relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Baseline is the vertical anchor of a text run relative to its y coordinate.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineTop
	BaselineMiddle
)

// TextStyle describes how FillText lays out and paints a label.
type TextStyle struct {
	Size     float64 // pixels
	Color    color.Color
	Align    Align
	Baseline Baseline
}

// Surface is a 2D drawing context.
//
// SetSize always discards the previous content, even when the dimensions
// are unchanged.
type Surface interface {
	SetSize(width, height int)
	Size() (width, height int)
	FillRect(x, y, w, h float64, c color.Color)
	FillText(s string, x, y float64, style TextStyle)
}

// Element is the rendered drawing element: something with a measured
// on-screen size that may or may not have a drawing context yet.
type Element interface {
	// DisplaySize is the element's displayed size in pixels.
	DisplaySize() (width, height int)
	// Context returns false while the element is not attached.
	Context() (Surface, bool)
}
