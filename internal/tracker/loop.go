// Package tracker runs the menu loop: pick an action, run it, report, and
// come back to the menu until the operator exits.
package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/prompt"
	"employee-tracker/internal/render"
	"employee-tracker/internal/service"
)

type Loop struct {
	store   service.Manager
	prompt  prompt.Prompter
	printer *render.Printer
	logger  zerolog.Logger
}

// New builds a loop that owns store: it is closed when the loop ends.
func New(store service.Manager, prompter prompt.Prompter, printer *render.Printer, logger zerolog.Logger) *Loop {
	return &Loop{
		store:   store,
		prompt:  prompter,
		printer: printer,
		logger:  logger,
	}
}

// Run shows the menu until the operator picks Exit or input ends. Failed
// actions are logged and never end the loop.
func (l *Loop) Run(ctx context.Context) error {
	l.printer.Banner("EMPLOYEE TRACKER")

	for {
		action, err := l.choose()
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return l.exit()
			}
			l.logger.Error().Err(err).Msg("Error with main menu")
			if closeErr := l.store.Close(); closeErr != nil {
				l.logger.Error().Err(closeErr).Msg("Error closing database")
			}
			return fmt.Errorf("main menu: %w", err)
		}

		if action == Exit {
			return l.exit()
		}

		if err := l.dispatch(ctx, action); err != nil {
			l.report(action, err)
		}
	}
}

func (l *Loop) choose() (Action, error) {
	options := make([]prompt.Option[Action], len(Menu))
	for i, action := range Menu {
		options[i] = prompt.Option[Action]{Label: action.String(), Value: action}
	}
	return prompt.Choose(l.prompt, "What would you like to do?", options)
}

func (l *Loop) dispatch(ctx context.Context, action Action) error {
	switch action {
	case ViewDepartments:
		return l.viewDepartments(ctx)
	case ViewRoles:
		return l.viewRoles(ctx)
	case ViewEmployees:
		return l.viewEmployees(ctx)
	case AddDepartment:
		return l.addDepartment(ctx)
	case AddRole:
		return l.addRole(ctx)
	case AddEmployee:
		return l.addEmployee(ctx)
	case UpdateEmployeeRole:
		return l.updateEmployeeRole(ctx)
	case Exit:
		return nil
	}
	return fmt.Errorf("unhandled menu action %v", action)
}

func (l *Loop) report(action Action, err error) {
	if errors.Is(err, prompt.ErrAborted) {
		l.printer.Warn("%s cancelled", action)
		return
	}

	l.logger.Error().
		Err(err).
		Str("action", action.String()).
		Str("code", string(apperror.GetCode(err))).
		Msg(action.failure())
	l.printer.Error("%s: %v", action.failure(), err)
}

func (l *Loop) exit() error {
	l.printer.Notice("Goodbye!")
	if err := l.store.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
