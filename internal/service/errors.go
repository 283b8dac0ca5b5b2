package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"employee-tracker/internal/apperror"
)

func normalizeRequiredString(raw string, field string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", apperror.Newf(apperror.CodeValidation, "%s cannot be empty", field)
	}
	return value, nil
}

func validateSalary(salary float64) error {
	if math.IsNaN(salary) || math.IsInf(salary, 0) || salary <= 0 || salary >= 1e10 {
		return apperror.New(apperror.CodeValidation, "salary must be a positive number")
	}
	if _, frac, ok := strings.Cut(strconv.FormatFloat(salary, 'f', -1, 64), "."); ok && len(frac) > 2 {
		return apperror.New(apperror.CodeValidation, "salary has more than two decimal places")
	}
	return nil
}

func mapDatabaseError(err error, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
		case "23503":
			return apperror.New(apperror.CodeValidation, "invalid foreign key reference")
		case "23502", "23514":
			return apperror.Newf(apperror.CodeValidation, "rejected by the store: %s", pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", action, err)
}
