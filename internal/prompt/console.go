package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"employee-tracker/internal/render"
)

// Console asks questions one line at a time. Choices are numbered and may
// be answered with the number or the exact label.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	theme render.Theme
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		theme: render.NewTheme(out),
	}
}

func (c *Console) Ask(field Field) (string, error) {
	for {
		fmt.Fprintf(c.out, "%s %s ", c.theme.Question.Render("?"), field.Question)

		reply, err := c.in.ReadString('\n')
		if err != nil && reply == "" {
			fmt.Fprintln(c.out)
			if errors.Is(err, io.EOF) {
				return "", ErrAborted
			}
			return "", fmt.Errorf("read answer: %w", err)
		}

		reply = strings.TrimSpace(reply)
		if rejected := field.Check(reply); rejected != nil {
			fmt.Fprintf(c.out, "%s\n", c.theme.Error.Render(">> "+rejected.Error()))
			continue
		}
		return reply, nil
	}
}

func (c *Console) Select(question string, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("%s: nothing to choose from", question)
	}

	fmt.Fprintf(c.out, "%s %s\n", c.theme.Question.Render("?"), question)
	for i, label := range labels {
		fmt.Fprintf(c.out, "  %s %s\n", c.theme.Hint.Render(strconv.Itoa(i+1)+")"), label)
	}

	reply, err := c.Ask(Field{
		Question: fmt.Sprintf("Enter choice [1-%d]:", len(labels)),
		Validate: func(answer string) error {
			if _, ok := matchChoice(labels, answer); !ok {
				return Rejection(fmt.Sprintf("Please enter a number between 1 and %d", len(labels)))
			}
			return nil
		},
	})
	if err != nil {
		return 0, err
	}

	index, _ := matchChoice(labels, reply)
	return index, nil
}

func matchChoice(labels []string, answer string) (int, bool) {
	for i, label := range labels {
		if answer == label {
			return i, true
		}
	}

	number, err := strconv.Atoi(answer)
	if err != nil || number < 1 || number > len(labels) {
		return 0, false
	}
	return number - 1, true
}
