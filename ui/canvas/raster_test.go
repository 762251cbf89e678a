package canvas

import (
	"errors"
	"image"
	"testing"

	"japmic/store"
	"japmic/window"
)

func newRaster(t *testing.T) *RasterSurface {
	t.Helper()
	r, err := NewRasterSurface()
	if err != nil {
		t.Fatalf("NewRasterSurface: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func isBlack(img *image.RGBA, x, y int) bool {
	c := img.RGBAAt(x, y)
	return c.R == 0 && c.G == 0 && c.B == 0 && c.A == 0xff
}

func TestRasterSizeMatchesCanvasSize(t *testing.T) {
	r := newRaster(t)
	el := &fakeElement{width: 400, height: 300, surface: r}
	wd := New(ModeJapmic, store.NewDefault(), window.New(80, 24), el)
	wd.Mount()
	defer wd.Close()

	img := r.Image()
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 300 {
		t.Fatalf("raster is %v, want 400x300", img.Bounds())
	}
	// Black label on black fill: every pixel stays black.
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			if !isBlack(img, x, y) {
				t.Fatalf("pixel (%d, %d) = %v, want opaque black", x, y, img.RGBAAt(x, y))
			}
		}
	}
}

func TestRasterIPhoneLabelIsWhiteNearCenter(t *testing.T) {
	r := newRaster(t)
	el := &fakeElement{width: 400, height: 300, surface: r}
	wd := New(ModeIPhone, store.NewDefault(), window.New(80, 24), el)
	wd.Mount()
	defer wd.Close()

	img := r.Image()
	for _, p := range []image.Point{{0, 0}, {399, 0}, {0, 299}, {399, 299}} {
		if !isBlack(img, p.X, p.Y) {
			t.Errorf("corner %v is not black", p)
		}
	}

	var minX, minY, maxX, maxY = 400, 300, -1, -1
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			if img.RGBAAt(x, y).R > 0x80 {
				minX, maxX = min(minX, x), max(maxX, x)
				minY, maxY = min(minY, y), max(maxY, y)
			}
		}
	}
	if maxX < 0 {
		t.Fatal("no label pixels drawn")
	}
	if cx := (minX + maxX) / 2; cx < 185 || cx > 215 {
		t.Errorf("label centered at x=%d, want near 200", cx)
	}
	if cy := (minY + maxY) / 2; cy < 125 || cy > 175 {
		t.Errorf("label centered at y=%d, want near 150", cy)
	}
}

func TestRasterSetSizeClears(t *testing.T) {
	r := newRaster(t)
	r.SetSize(10, 10)
	r.FillRect(0, 0, 10, 10, white)
	r.SetSize(10, 10)

	img := r.Image()
	if c := img.RGBAAt(5, 5); c.A != 0 {
		t.Fatalf("pixel after SetSize = %v, want transparent", c)
	}
}

func TestRasterZeroSize(t *testing.T) {
	r := newRaster(t)
	r.SetSize(0, 50)
	r.FillRect(0, 0, 0, 50, black)
	r.FillText("japmic", 0, 25, TextStyle{Size: 48, Color: white})

	if w, h := r.Size(); w != 0 || h != 50 {
		t.Fatalf("Size() = %dx%d", w, h)
	}
	if img := r.Image(); !img.Bounds().Empty() {
		t.Fatalf("Image() bounds = %v, want empty", img.Bounds())
	}
}

func TestRasterGenerationAdvances(t *testing.T) {
	r := newRaster(t)
	g := r.Generation()
	r.SetSize(4, 4)
	r.FillRect(0, 0, 4, 4, black)
	if r.Generation() <= g {
		t.Fatal("generation did not advance")
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"japmic", "iphone"} {
		m, err := ParseMode(s)
		if err != nil || string(m) != s {
			t.Errorf("ParseMode(%q) = %q, %v", s, m, err)
		}
	}
	if _, err := ParseMode("nerd"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(nerd) err = %v, want ErrUnknownMode", err)
	}
	if ModeJapmic.Other() != ModeIPhone || ModeIPhone.Other() != ModeJapmic {
		t.Error("Other() does not swap modes")
	}
}

func TestRasterImageIsACopy(t *testing.T) {
	r := newRaster(t)
	r.SetSize(4, 4)
	r.FillRect(0, 0, 4, 4, black)

	img := r.Image()
	img.Set(1, 1, white)

	if !isBlack(r.Image(), 1, 1) {
		t.Fatal("writing to Image() changed the surface")
	}
}
