package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	onStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	focusDelimiter = iota
	focusJSON
	focusCount
)

type playgroundModel struct {
	err      error
	result   string
	inputs   []textinput.Model
	focusIdx int
	mapLike  bool
}

func newPlaygroundModel(delimiter string, mapLike bool) *playgroundModel {
	delim := textinput.New()
	delim.Prompt = ""
	delim.SetValue(delimiter)
	delim.CharLimit = 16
	delim.Width = 16

	src := textinput.New()
	src.Prompt = ""
	src.SetValue(`{"id": 42, "name": "Stereo Madness", "stars": null}`)
	src.Width = 72
	src.Focus()

	m := &playgroundModel{
		inputs:   []textinput.Model{delim, src},
		focusIdx: focusJSON,
		mapLike:  mapLike,
	}
	m.recompute()
	return m
}

func (m *playgroundModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			if msg.String() == "tab" {
				m.focusIdx = (m.focusIdx + 1) % focusCount
			} else {
				m.focusIdx = (m.focusIdx + focusCount - 1) % focusCount
			}
			for i := range m.inputs {
				if i == m.focusIdx {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, nil
		case "ctrl+t":
			m.mapLike = !m.mapLike
			m.recompute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	m.recompute()
	return m, cmd
}

func (m *playgroundModel) recompute() {
	m.result, m.err = encodeJSON(
		strings.NewReader(m.inputs[focusJSON].Value()),
		m.inputs[focusDelimiter].Value(),
		m.mapLike,
		0,
	)
}

func (m *playgroundModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("idxenc playground"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("delimiter "))
	b.WriteString(m.inputs[focusDelimiter].View())
	b.WriteString("   ")
	b.WriteString(labelStyle.Render("map-like "))
	if m.mapLike {
		b.WriteString(onStyle.Render("on"))
	} else {
		b.WriteString(offStyle.Render("off"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("json "))
	b.WriteString(m.inputs[focusJSON].View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
	} else {
		b.WriteString(resultStyle.Render(m.result))
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("tab: switch field • ctrl+t: toggle map-like • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive(delimiter string, mapLike bool) error {
	p := tea.NewProgram(newPlaygroundModel(delimiter, mapLike))
	_, err := p.Run()
	return err
}
