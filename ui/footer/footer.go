package footer

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"japmic/store"
)

// Model holds the footer's state
type Model struct {
	width      int
	cellWidth  int
	cellHeight int
	size       store.CanvasSize
}

// New creates a new footer model
func New(cellWidth, cellHeight int) Model {
	return Model{
		width:      80, // Default
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetCanvasSize lets the parent model report the shared canvas size
func (m *Model) SetCanvasSize(size store.CanvasSize) {
	m.size = size
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Padding(0, 1)

	footerLeft := footerStyle.Render(fmt.Sprintf(
		"Canvas: %dx%d px | Cell: %dx%d px",
		m.size.Width, m.size.Height, m.cellWidth, m.cellHeight,
	))

	footerHelp := "Background: b | Quit: q"

	footerRight := footerStyle.Width(max(m.width-lipgloss.Width(footerLeft)-1, 0)).
		Align(lipgloss.Right).
		Render(footerHelp)

	return lipgloss.JoinHorizontal(lipgloss.Left, footerLeft, footerRight)
}
