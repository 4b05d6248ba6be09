package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lualink/lua-object/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxHistory bounds how many evaluations the view keeps.
const maxHistory = 50

type entry struct {
	input  string
	output string
	err    error
}

type replModel struct {
	rt      *engine.Runtime
	input   textinput.Model
	history []entry
	past    []string
	cursor  int
}

func newReplModel(rt *engine.Runtime) *replModel {
	ti := textinput.New()
	ti.Prompt = "lua> "
	ti.Placeholder = "return 1 + 1"
	ti.Width = 60
	ti.Focus()

	return &replModel{rt: rt, input: ti}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			code := strings.TrimSpace(m.input.Value())
			if code != "" {
				m.eval(code)
				m.input.SetValue("")
			}
			return m, nil

		case "up":
			if m.cursor > 0 {
				m.cursor--
				m.input.SetValue(m.past[m.cursor])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.cursor < len(m.past)-1 {
				m.cursor++
				m.input.SetValue(m.past[m.cursor])
				m.input.CursorEnd()
			} else {
				m.cursor = len(m.past)
				m.input.SetValue("")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) eval(code string) {
	e := entry{input: code}

	h, err := m.rt.Eval(code)
	if err != nil {
		e.err = err
	} else {
		e.output = describe(m.rt, h)
	}

	m.history = append(m.history, e)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.past = append(m.past, code)
	m.cursor = len(m.past)
}

func (m *replModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Lua Object Inspector"))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(promptStyle.Render("lua> "))
		b.WriteString(e.input)
		b.WriteString("\n")
		if e.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("  %v", e.err)))
		} else {
			b.WriteString(resultStyle.Render("  " + e.output))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"%d handles • enter eval • ↑/↓ history • esc quit", m.rt.HandleCount())))

	return b.String()
}

func runInteractive(cfg *engine.Config) error {
	rt := engine.New(cfg)
	defer rt.Close()

	p := tea.NewProgram(newReplModel(rt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
