package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// RasterSurface is a Surface backed by a software gg.Context.
// A zero width or height leaves it empty and drawing becomes a no-op.
type RasterSurface struct {
	mu         sync.Mutex
	width      int
	height     int
	dc         *gg.Context
	font       *text.FontSource
	faces      map[float64]text.Face
	generation uint64
}

var _ Surface = (*RasterSurface)(nil)

// NewRasterSurface creates an empty surface that draws labels in Go Regular.
func NewRasterSurface() (*RasterSurface, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &RasterSurface{
		font:  src,
		faces: make(map[float64]text.Face),
	}, nil
}

// SetSize reallocates the raster and clears it.
func (r *RasterSurface) SetSize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generation++

	r.width, r.height = max(width, 0), max(height, 0)
	if r.width == 0 || r.height == 0 {
		if r.dc != nil {
			_ = r.dc.Close()
			r.dc = nil
		}
		return
	}
	if r.dc == nil {
		r.dc = gg.NewContext(r.width, r.height)
		return
	}
	if err := r.dc.Resize(r.width, r.height); err != nil {
		log.Printf("canvas: resize raster: %v", err)
	}
	r.dc.Clear()
}

// Size returns the raster's pixel dimensions.
func (r *RasterSurface) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// FillRect paints a solid rectangle.
func (r *RasterSurface) FillRect(x, y, w, h float64, c color.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dc == nil {
		return
	}
	r.generation++

	if x <= 0 && y <= 0 && x+w >= float64(r.width) && y+h >= float64(r.height) {
		r.dc.ClearWithColor(gg.FromColor(c))
		return
	}
	r.dc.SetColor(c)
	r.dc.DrawRectangle(x, y, w, h)
	if err := r.dc.Fill(); err != nil {
		log.Printf("canvas: fill rect: %v", err)
	}
}

// FillText paints s anchored at (x, y) according to style.
func (r *RasterSurface) FillText(s string, x, y float64, style TextStyle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dc == nil || s == "" {
		return
	}
	r.generation++

	face := r.face(style.Size)
	m := face.Metrics()

	if style.Align == AlignCenter {
		x -= face.Advance(s) / 2
	}
	switch style.Baseline {
	case BaselineTop:
		y += m.Ascent
	case BaselineMiddle:
		y += (m.Ascent - m.Descent) / 2
	}

	r.dc.SetFont(face)
	r.dc.SetColor(style.Color)
	r.dc.DrawString(s, x, y)
}

func (r *RasterSurface) face(size float64) text.Face {
	f, ok := r.faces[size]
	if !ok {
		f = r.font.Face(size)
		r.faces[size] = f
	}
	return f
}

// Image returns a copy of the current raster.
func (r *RasterSurface) Image() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dc == nil {
		return image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	}
	if err := r.dc.FlushGPU(); err != nil {
		log.Printf("canvas: flush raster: %v", err)
	}
	src := r.dc.Image()
	if img, ok := src.(*image.RGBA); ok {
		return img
	}
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img
}

// Generation changes every time the raster is modified.
func (r *RasterSurface) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

// Close releases the raster and the font.
func (r *RasterSurface) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dc != nil {
		_ = r.dc.Close()
		r.dc = nil
	}
	return r.font.Close()
}
