package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/punycode"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type convMode int

const (
	modeEncode convMode = iota
	modeDecode
)

func (m convMode) String() string {
	if m == modeEncode {
		return "encode"
	}
	return "decode"
}

type interactiveModel struct {
	err    error
	input  textinput.Model
	result string
	mode   convMode
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type text to transcode"
	ti.Focus()
	ti.CharLimit = 256
	return &interactiveModel{
		input: ti,
		mode:  modeEncode,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			if m.mode == modeEncode {
				m.mode = modeDecode
			} else {
				m.mode = modeEncode
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.transcode()
	return m, cmd
}

func (m *interactiveModel) transcode() {
	text := m.input.Value()
	if text == "" {
		m.result = ""
		m.err = nil
		return
	}

	var err error
	if m.mode == modeEncode {
		m.result, err = punycode.EncodeString(text, nil)
	} else {
		m.result, err = punycode.DecodeString(text, nil)
	}
	m.err = err
}

func (m *interactiveModel) View() string {
	s := titleStyle.Render("punyconv") + "\n\n"
	s += modeStyle.Render("mode: "+m.mode.String()) + "\n\n"
	s += m.input.View() + "\n\n"

	switch {
	case m.err != nil:
		s += errorStyle.Render(m.err.Error()) + "\n"
	case m.result != "":
		s += resultStyle.Render(m.result) + "\n"
	}

	s += "\n" + helpStyle.Render("tab: switch mode • esc: quit")
	return s
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
