package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/fixseq/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
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

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	seq      string
	result   string
	argNames []string
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

func newInteractiveModel(seq string) *interactiveModel {
	return &interactiveModel{seq: seq, state: stateSelectOp}
}

type resultMsg struct {
	err    error
	result string
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
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(operations)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				m.state = stateInputArgs
				return m, textinput.Blink

			case stateInputArgs:
				return m, m.run

			case stateShowResult:
				m.reset()
			}
			return m, nil

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			if m.state != stateSelectOp {
				m.reset()
			}
			return m, nil
		}

	case resultMsg:
		if len(m.inputs) > 0 {
			m.seq = m.inputs[0].Value()
		}
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) reset() {
	m.state = stateSelectOp
	m.inputs = nil
	m.argNames = nil
	m.result = ""
	m.err = nil
}

func (m *interactiveModel) prepareInputs() {
	op := operations[m.selected]
	m.argNames = strings.Fields(op.args)

	seq := textinput.New()
	seq.Prompt = "seq: "
	seq.Placeholder = "1,2,3,4"
	seq.SetValue(m.seq)
	seq.Width = 40
	seq.Focus()
	m.inputs = []textinput.Model{seq}

	for _, name := range m.argNames {
		ti := textinput.New()
		ti.Prompt = name + ": "
		ti.Placeholder = "0"
		ti.Width = 10
		m.inputs = append(m.inputs, ti)
	}
	m.focusIdx = 0
}

func (m *interactiveModel) run() tea.Msg {
	op := operations[m.selected]
	p, err := readParams(m.argNames, m.inputs[1:])
	if err != nil {
		return resultMsg{err: err}
	}
	out, err := apply(op.name, m.inputs[0].Value(), p)
	return resultMsg{result: out, err: err}
}

func readParams(names []string, inputs []textinput.Model) (params, error) {
	var p params
	for i, name := range names {
		text := strings.TrimSpace(inputs[i].Value())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return p, errors.ParseFailed("parameter "+name, err)
		}
		switch name {
		case "m":
			p.m = v
		case "n":
			p.n = v
		case "h":
			p.h = v
		case "w":
			p.w = v
		}
	}
	return p, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Reshape"))
	b.WriteString(" ")
	b.WriteString(m.seq)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range operations {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + op.name))
			} else {
				b.WriteString("  " + funcStyle.Render(op.name))
			}
			if op.args != "" {
				b.WriteString(" " + typeStyle.Render(op.args))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputArgs:
		op := operations[m.selected]
		b.WriteString(fmt.Sprintf("%s: %s\n\n", funcStyle.Render(op.name), op.about))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		op := operations[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", funcStyle.Render(op.name)))
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

func runInteractive(seq string) error {
	p := tea.NewProgram(newInteractiveModel(seq), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
