package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AUSP59/QuantumSimX/internal/circuit"
)

// Model is a read-only scrollable view over one circuit's diagram. It
// carries no edit state — cursor position, gate placement, undo — since
// this viewer never mutates the circuit it was given.
type Model struct {
	title    string
	viewport viewport.Model
	ready    bool
	content  string
}

// New returns a Model ready to render c under the given title (usually
// the source file name).
func New(title string, c *circuit.Circuit) Model {
	return Model{title: title, content: RenderDiagram(c)}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return titleStyle.Render(m.title) + "\n" + m.viewport.View()
}

// Run starts the bubbletea program; blocks until the user quits.
func Run(title string, c *circuit.Circuit) error {
	p := tea.NewProgram(New(title, c))
	_, err := p.Run()
	return err
}
