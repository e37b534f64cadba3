package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ancare/internal/ui/theme"
)

// PromptSubmitMsg carries the confirmed value and the purpose the prompt was
// opened for.
type PromptSubmitMsg struct {
	Purpose string
	Value   string
}

type PromptCancelMsg struct{}

var promptStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Peach).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(0, 1)

// Prompt is a single line input overlay.
type Prompt struct {
	input   textinput.Model
	title   string
	purpose string
	visible bool
	width   int
}

func NewPrompt() Prompt {
	ti := textinput.New()
	ti.CharLimit = 256
	return Prompt{input: ti}
}

func (p Prompt) Visible() bool { return p.visible }

func (p Prompt) Purpose() string { return p.purpose }

// Open shows the prompt with an empty input and returns the focus command.
func (p *Prompt) Open(purpose, title, placeholder string) tea.Cmd {
	p.visible = true
	p.purpose = purpose
	p.title = title
	p.input.Placeholder = placeholder
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Prompt) SetWidth(w int) { p.width = w }

func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PromptCancelMsg{} }
		case "enter":
			submit := PromptSubmitMsg{Purpose: p.purpose, Value: strings.TrimSpace(p.input.Value())}
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return submit }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Prompt) View() string {
	if !p.visible {
		return ""
	}
	w := p.width
	if w < 20 {
		w = 56
	}
	body := theme.Title.Render(p.title) + "\n> " + p.input.View() + "\n" + theme.Muted.Render("enter to confirm, esc to cancel")
	return promptStyle.Width(w - 2).Render(body)
}
