package header

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"japmic/ui/canvas"
)

// Model holds the header's state
type Model struct {
	width int
	mode  canvas.Mode
	style lipgloss.Style
}

// New creates a new header model
func New() Model {
	return Model{
		width: 80, // default
		style: lipgloss.NewStyle().
			Padding(0, 1).                     // Left/Right padding
			Background(lipgloss.Color("63")).  // A nice blue
			Foreground(lipgloss.Color("255")), // White text
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetMode records the background of the mounted widget
func (m *Model) SetMode(mode canvas.Mode) {
	m.mode = mode
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	title := "japmic"
	if m.mode != "" {
		title = fmt.Sprintf("japmic · background: %s", m.mode)
	}
	return m.style.Width(m.width).Render(title)
}
