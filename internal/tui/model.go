package tui

import (
	"fmt"
	"strconv"
	"strings"

	"glimpse-cli/internal/app"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type historyLine struct {
	text  string
	isErr bool
}

// Model is the interactive evaluator: tab cycles through the registered
// functions, enter evaluates the typed inputs against the selection.
type Model struct {
	evaluator *app.Evaluator
	precision int

	functions []*app.Function
	selected  int

	input   textinput.Model
	history []historyLine
	theme   Theme

	width  int
	height int
}

func New(ev *app.Evaluator, cfg app.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "space-separated inputs, e.g. 2.0"
	ti.Focus()
	ti.CharLimit = 256
	ti.Prompt = "> "

	m := &Model{
		evaluator: ev,
		precision: cfg.Precision,
		functions: app.Functions(),
		theme:     NewTheme(),
		input:     ti,
	}
	for i, f := range m.functions {
		if f.Name == cfg.DefaultFunction {
			m.selected = i
			break
		}
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Selected() *app.Function {
	return m.functions[m.selected]
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(m.functions)
			return m, nil
		case "shift+tab":
			m.selected = (m.selected - 1 + len(m.functions)) % len(m.functions)
			return m, nil
		case "enter":
			m.evaluate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) evaluate() {
	f := m.Selected()
	in, err := parseInputs(m.input.Value(), f.NIn())
	if err != nil {
		m.history = append(m.history, historyLine{text: err.Error(), isErr: true})
		return
	}
	out, err := m.evaluator.Eval(f.Name, in)
	if err != nil {
		m.history = append(m.history, historyLine{text: err.Error(), isErr: true})
		return
	}
	m.history = append(m.history, historyLine{text: app.FormatCall(f.Name, in, out, m.precision)})
	m.input.SetValue("")
}

func parseInputs(s string, want int) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) != want {
		return nil, fmt.Errorf("need %d input(s), got %d", want, len(fields))
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q", f)
		}
		out[i] = v
	}
	return out, nil
}

func (m *Model) View() string {
	t := m.theme
	f := m.Selected()

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Title.Render("glimpse"),
		"  ",
		t.Badge.Render(f.Name+"("+strings.Join(f.In, ", ")+")"),
		"  ",
		t.Footer.Render("-> "+strings.Join(f.Out, ", ")),
	)

	maxLines := m.height - 9
	if maxLines < 1 {
		maxLines = 1
	}
	start := 0
	if len(m.history) > maxLines {
		start = len(m.history) - maxLines
	}
	var lines []string
	for _, h := range m.history[start:] {
		if h.isErr {
			lines = append(lines, t.ErrLine.Render(h.text))
		} else {
			lines = append(lines, t.Result.Render(h.text))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, t.Footer.Render("no evaluations yet"))
	}
	pane := t.Pane.Width(max(m.width-2, 20)).Render(strings.Join(lines, "\n"))

	inputBox := t.InputBox.Width(max(m.width-2, 20)).Render(m.input.View())
	footer := t.Footer.Render("tab: next function · enter: evaluate · esc: quit")

	return strings.Join([]string{header, pane, inputBox, footer}, "\n")
}
