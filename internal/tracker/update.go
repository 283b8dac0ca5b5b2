package tracker

import (
	"context"

	"employee-tracker/internal/models"
	"employee-tracker/internal/prompt"
)

func (l *Loop) updateEmployeeRole(ctx context.Context) error {
	employees, err := l.store.AllEmployees(ctx)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		l.printer.Warn("No employees found to update")
		return nil
	}

	roles, err := l.store.AllRoles(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		l.printer.Warn("No roles found to assign")
		return nil
	}

	options := make([]prompt.Option[uint], 0, len(employees))
	for _, e := range employees {
		options = append(options, prompt.Option[uint]{Label: e.FullName(), Value: e.ID})
	}
	employeeID, err := prompt.Choose(l.prompt, "Which employee's role do you want to update?", options)
	if err != nil {
		return err
	}

	roleID, err := prompt.Choose(l.prompt, "What is the new role?", roleOptions(roles))
	if err != nil {
		return err
	}

	if err := l.store.UpdateEmployeeRole(ctx, employeeID, roleID); err != nil {
		return err
	}

	l.printer.Success("Employee role updated successfully")
	return nil
}

func roleOptions(roles []models.Role) []prompt.Option[uint] {
	options := make([]prompt.Option[uint], 0, len(roles))
	for _, r := range roles {
		options = append(options, prompt.Option[uint]{Label: r.Title, Value: r.ID})
	}
	return options
}
