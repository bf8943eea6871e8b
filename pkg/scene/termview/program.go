package termview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/panelgrid/panelgrid/pkg/scene"
	"github.com/panelgrid/panelgrid/pkg/scene/memory"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for interactive scene preview. The cursor
// walks the scene's interactive boxes in creation order; enter delivers a
// click through the backend.
type Model struct {
	backend *memory.Backend
	title   string
	cursor  int
}

// NewModel creates a preview model over b.
func NewModel(b *memory.Backend, title string) Model {
	return Model{backend: b, title: title}
}

// NewProgram creates a bubbletea program running the preview model.
func NewProgram(b *memory.Backend, title string) *tea.Program {
	return tea.NewProgram(NewModel(b, title))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		targets := m.targets()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l", "down", "j":
			if m.cursor < len(targets)-1 {
				m.cursor++
			}
		case "enter", " ":
			if m.cursor < len(targets) {
				m.backend.Click(targets[m.cursor])
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	var focused *scene.Node
	if targets := m.targets(); len(targets) > 0 {
		if m.cursor >= len(targets) {
			m.cursor = len(targets) - 1
		}
		focused = targets[m.cursor]
	}
	b.WriteString(RenderFocused(m.backend, focused))

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("←/→ choose  ⏎ click  q quit"))
	b.WriteString("\n")
	return b.String()
}

// targets returns the clickable boxes in creation order.
func (m Model) targets() []*scene.Node {
	var out []*scene.Node
	for _, n := range m.backend.Nodes() {
		if n.Interactive() {
			out = append(out, n)
		}
	}
	return out
}
