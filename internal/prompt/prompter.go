// Package prompt asks the operator questions, either line by line or
// through a small bubbletea program when attached to a terminal.
package prompt

import (
	"errors"
	"fmt"
)

// ErrAborted means the operator closed input or cancelled the question.
var ErrAborted = errors.New("prompt aborted")

type Prompter interface {
	// Ask repeats the question until the trimmed answer passes the field's
	// validator.
	Ask(field Field) (string, error)
	// Select returns the index of the chosen label.
	Select(question string, labels []string) (int, error)
}

// Option pairs a label shown to the operator with the value it stands for.
type Option[T any] struct {
	Label string
	Value T
}

// Choose asks the operator to pick one of options and returns its value.
func Choose[T any](p Prompter, question string, options []Option[T]) (T, error) {
	var zero T
	if len(options) == 0 {
		return zero, fmt.Errorf("%s: nothing to choose from", question)
	}

	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = option.Label
	}

	index, err := p.Select(question, labels)
	if err != nil {
		return zero, err
	}
	if index < 0 || index >= len(options) {
		return zero, fmt.Errorf("%s: selection %d out of range", question, index)
	}
	return options[index].Value, nil
}
