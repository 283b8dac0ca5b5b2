package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"employee-tracker/internal/render"
)

// Terminal asks questions with a short-lived bubbletea program per
// question: an arrow-key list for choices and a text input for answers.
type Terminal struct {
	in    io.Reader
	out   io.Writer
	theme render.Theme
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:    in,
		out:   out,
		theme: render.NewTheme(out),
	}
}

func (t *Terminal) Ask(field Field) (string, error) {
	final, err := t.run(newInputModel(field, t.theme))
	if err != nil {
		return "", err
	}

	result := final.(inputModel)
	if result.aborted {
		return "", ErrAborted
	}
	return result.answer, nil
}

func (t *Terminal) Select(question string, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("%s: nothing to choose from", question)
	}

	final, err := t.run(newSelectModel(question, labels, t.theme))
	if err != nil {
		return 0, err
	}

	result := final.(selectModel)
	if result.aborted {
		return 0, ErrAborted
	}
	return result.cursor, nil
}

func (t *Terminal) run(model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

type inputModel struct {
	field    Field
	input    textinput.Model
	theme    render.Theme
	rejected string
	answer   string
	done     bool
	aborted  bool
}

func newInputModel(field Field, theme render.Theme) inputModel {
	input := textinput.New()
	input.Prompt = ""
	input.TextStyle = theme.Answer
	input.Focus()

	return inputModel{
		field: field,
		input: input,
		theme: theme,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			answer := strings.TrimSpace(m.input.Value())
			if rejected := m.field.Check(answer); rejected != nil {
				m.rejected = rejected.Error()
				return m, nil
			}
			m.answer = answer
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	question := m.theme.Question.Render("?") + " " + m.field.Question + " "
	if m.done {
		return question + m.theme.Answer.Render(m.answer) + "\n"
	}
	if m.aborted {
		return question + "\n"
	}

	view := question + m.input.View() + "\n"
	if m.rejected != "" {
		view += m.theme.Error.Render(">> "+m.rejected) + "\n"
	}
	return view
}

type selectModel struct {
	question string
	labels   []string
	theme    render.Theme
	cursor   int
	done     bool
	aborted  bool
}

func newSelectModel(question string, labels []string, theme render.Theme) selectModel {
	return selectModel{
		question: question,
		labels:   labels,
		theme:    theme,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "ctrl+d", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		m.cursor = (m.cursor - 1 + len(m.labels)) % len(m.labels)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(m.labels)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.labels) - 1
	default:
		if r := key.Runes; len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
			if index := int(r[0] - '1'); index < len(m.labels) {
				m.cursor = index
			}
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	question := m.theme.Question.Render("?") + " " + m.question
	if m.done {
		return question + " " + m.theme.Answer.Render(m.labels[m.cursor]) + "\n"
	}
	if m.aborted {
		return question + "\n"
	}

	var b strings.Builder
	b.WriteString(question + " " + m.theme.Hint.Render("(use arrow keys)") + "\n")
	for i, label := range m.labels {
		if i == m.cursor {
			b.WriteString(m.theme.Selected.Render("> "+label) + "\n")
			continue
		}
		b.WriteString("  " + label + "\n")
	}
	return b.String()
}
