package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/conwrite"
	"github.com/wippyai/conwrite/stream"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	streamStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type writePath struct {
	tier   string
	target stream.Standard
}

func (p writePath) write(text string) (int, error) {
	if p.tier == "raw" {
		return rawWrite(p.target, text)
	}
	return conwrite.Write(p.target, text)
}

var paths = []writePath{
	{"bridge", stream.Stdout},
	{"bridge", stream.Stderr},
	{"raw", stream.Stdout},
	{"raw", stream.Stderr},
}

type modelState int

const (
	stateSelectPath modelState = iota
	stateInputText
	stateShowResult
)

type interactiveModel struct {
	err      error
	input    textinput.Model
	result   string
	selected int
	state    modelState
}

type writeResultMsg struct {
	err   error
	units int
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "text to write"
	ti.Prompt = "text: "
	ti.Width = 40
	return &interactiveModel{input: ti, state: stateSelectPath}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputText {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectPath && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectPath && m.selected < len(paths)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectPath:
				m.input.SetValue("")
				m.input.Focus()
				m.state = stateInputText

			case stateInputText:
				m.input.Blur()
				return m, m.performWrite

			case stateShowResult:
				m.state = stateSelectPath
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputText:
				m.input.Blur()
				m.state = stateSelectPath
			case stateShowResult:
				m.state = stateSelectPath
				m.result = ""
				m.err = nil
			}
		}

	case writeResultMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.result = fmt.Sprintf("%d units written", msg.units)
		}
		m.state = stateShowResult
	}

	if m.state == stateInputText {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) performWrite() tea.Msg {
	text := m.input.Value() + "\n"
	n, err := paths[m.selected].write(text)
	return writeResultMsg{units: n, err: err}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("conwrite"))
	b.WriteString(" standard stream writer\n\n")

	switch m.state {
	case stateSelectPath:
		b.WriteString("Select a write path:\n\n")
		for i, p := range paths {
			line := pathStyle.Render(p.tier) + " tier -> " + streamStyle.Render(p.target.String())
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + p.tier + " tier -> " + p.target.String()))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputText:
		p := paths[m.selected]
		b.WriteString(fmt.Sprintf("Writing via %s tier to %s\n\n",
			pathStyle.Render(p.tier), streamStyle.Render(p.target.String())))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter write • esc back"))

	case stateShowResult:
		p := paths[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s tier write to %s:\n\n",
			pathStyle.Render(p.tier), streamStyle.Render(p.target.String())))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
