package canvasview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/charmbracelet/lipgloss"
)

// upperHalf paints the top pixel in the foreground and the bottom pixel in
// the background, so one cell shows two raster rows.
const upperHalf = "▀"

type cellKey struct {
	top, bottom color.RGBA
}

// raster is the drawing surface as seen by the terminal renderer.
type raster interface {
	Image() *image.RGBA
	Generation() uint64
}

// rasterView turns the widget's raster into terminal cells.
type rasterView struct {
	// --- Caching ---
	cachedGrid       [][]string
	cachedGeneration uint64
	cachedCols       int
	cachedRows       int
	cells            map[cellKey]string
	// ---------------
}

func newRasterView() *rasterView {
	return &rasterView{cells: make(map[cellKey]string)}
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func (v *rasterView) cell(top, bottom color.RGBA) string {
	k := cellKey{top, bottom}
	s, ok := v.cells[k]
	if !ok {
		s = lipgloss.NewStyle().
			Foreground(hex(top)).
			Background(hex(bottom)).
			Render(upperHalf)
		v.cells[k] = s
	}
	return s
}

// blankGrid fills a cols x rows grid with spaces
func blankGrid(cols, rows int) [][]string {
	grid := make([][]string, rows)
	for i := range grid {
		grid[i] = make([]string, cols)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}
	return grid
}

// render scales the raster to the viewport and returns it as terminal text.
// The grid is reused until the raster generation or viewport changes.
func (v *rasterView) render(src raster, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	generation := src.Generation()
	if v.cachedGrid == nil || v.cachedGeneration != generation || v.cachedCols != cols || v.cachedRows != rows {
		grid := blankGrid(cols, rows)

		if img := src.Image(); !img.Bounds().Empty() {
			scaled := transform.Resize(img, cols, rows*2, transform.Linear)
			for y := 0; y < rows; y++ {
				for x := 0; x < cols; x++ {
					grid[y][x] = v.cell(scaled.RGBAAt(x, 2*y), scaled.RGBAAt(x, 2*y+1))
				}
			}
		}

		v.cachedGrid = grid
		v.cachedGeneration = generation
		v.cachedCols, v.cachedRows = cols, rows
	}

	var b strings.Builder
	for i, row := range v.cachedGrid {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Join(row, ""))
	}
	return b.String()
}
