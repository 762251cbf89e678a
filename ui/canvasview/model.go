// Package canvasview hosts the canvas widget in a terminal. Terminal
// resizes become window resize events, and the widget's raster is painted
// with half-block cells.
package canvasview

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"japmic/store"
	"japmic/ui/canvas"
	"japmic/ui/footer"
	"japmic/ui/header"
	"japmic/window"
)

const (
	headerHeight = 1
	footerHeight = 1
)

// Config sets up a Model.
type Config struct {
	Background canvas.Mode
	CellWidth  int // pixels per terminal column
	CellHeight int // pixels per terminal row
}

// Model is the root bubbletea model.
type Model struct {
	width  int // Terminal width
	height int // Terminal height

	store   *store.Store
	window  *window.Window
	surface *canvas.RasterSurface
	element *termElement
	widget  *canvas.Widget
	view    *rasterView

	headerModel header.Model
	footerModel footer.Model
}

// New builds the model and mounts the widget. Nothing is drawn until the
// terminal reports its size.
func New(cfg Config) (Model, error) {
	if cfg.CellWidth <= 0 || cfg.CellHeight <= 0 {
		return Model{}, fmt.Errorf("cell size must be positive, got %dx%d", cfg.CellWidth, cfg.CellHeight)
	}

	surface, err := canvas.NewRasterSurface()
	if err != nil {
		return Model{}, fmt.Errorf("create surface: %w", err)
	}

	m := Model{
		store:   store.NewDefault(),
		window:  window.New(0, 0),
		surface: surface,
		element: &termElement{
			cellWidth:  cfg.CellWidth,
			cellHeight: cfg.CellHeight,
			surface:    surface,
		},
		view:        newRasterView(),
		headerModel: header.New(),
		footerModel: footer.New(cfg.CellWidth, cfg.CellHeight),
	}
	m.mount(cfg.Background)
	return m, nil
}

func (m *Model) mount(mode canvas.Mode) {
	m.widget = canvas.New(mode, m.store, m.window, m.element)
	m.widget.Mount()
	m.headerModel.SetMode(mode)
	log.Printf("canvas: mounted background=%s", mode)
}

// remount replaces the widget with one using the other background.
func (m *Model) remount() {
	prev := m.widget.Background()
	if err := m.widget.Close(); err != nil {
		log.Printf("canvas: unmount: %v", err)
	}
	log.Printf("canvas: unmounted background=%s", prev)
	m.mount(prev.Other())
}

// Background returns the mounted widget's mode.
func (m Model) Background() canvas.Mode {
	return m.widget.Background()
}

// CanvasSize returns the shared canvas size.
func (m Model) CanvasSize() store.CanvasSize {
	return m.store.CanvasSize()
}

// Close unmounts the widget and frees the raster.
func (m Model) Close() error {
	if err := m.widget.Close(); err != nil {
		return err
	}
	return m.surface.Close()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		headerCmd tea.Cmd
		footerCmd tea.Cmd
		cmds      []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// --- Layout ---
		canvasHeight := max(m.height-headerHeight-footerHeight, 0)

		headerMsg := tea.WindowSizeMsg{Width: m.width, Height: headerHeight}
		m.headerModel, headerCmd = m.headerModel.Update(headerMsg)

		footerMsg := tea.WindowSizeMsg{Width: m.width, Height: footerHeight}
		m.footerModel, footerCmd = m.footerModel.Update(footerMsg)

		m.element.layout(m.width, canvasHeight)
		m.window.Resize(m.width, canvasHeight)

		cmds = append(cmds, headerCmd, footerCmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "b":
			m.remount()
		}
	}

	m.footerModel.SetCanvasSize(m.store.CanvasSize())
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	canvasView := m.view.render(m.surface, m.element.cols, m.element.rows)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerModel.View(),
		canvasView,
		m.footerModel.View(),
	)
}
