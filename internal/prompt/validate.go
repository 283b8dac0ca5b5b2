package prompt

import (
	"math"
	"strconv"
	"strings"
)

// Rejection is the message shown next to an answer that failed validation.
type Rejection string

func (r Rejection) Error() string {
	return string(r)
}

// Validator inspects a trimmed answer and returns a Rejection when the
// operator has to try again.
type Validator func(answer string) error

// Field is one question put to the operator.
type Field struct {
	Question string
	Validate Validator
}

// Check applies the field's validator, if any.
func (f Field) Check(answer string) error {
	if f.Validate == nil {
		return nil
	}
	return f.Validate(answer)
}

// NonEmpty rejects blank answers with "<label> cannot be empty".
func NonEmpty(label string) Validator {
	return func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return Rejection(label + " cannot be empty")
		}
		return nil
	}
}

// maxAmount is the first value a decimal(12,2) column cannot hold.
const maxAmount = 1e10

// PositiveNumber rejects answers that are not amounts above zero with at
// most two fractional digits.
func PositiveNumber(label string) Validator {
	return func(answer string) error {
		if _, ok := parsePositive(answer); !ok {
			return Rejection("Please enter a valid " + label)
		}
		return nil
	}
}

// ParsePositive converts an answer accepted by PositiveNumber.
func ParsePositive(answer string) (float64, error) {
	value, ok := parsePositive(answer)
	if !ok {
		return 0, Rejection("not a positive number: " + strconv.Quote(answer))
	}
	return value, nil
}

func parsePositive(answer string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 || value >= maxAmount {
		return 0, false
	}
	if _, frac, ok := strings.Cut(strconv.FormatFloat(value, 'f', -1, 64), "."); ok && len(frac) > 2 {
		return 0, false
	}
	return value, true
}
