package tracker

import (
	"context"

	"employee-tracker/internal/render"
)

func (l *Loop) viewDepartments(ctx context.Context) error {
	departments, err := l.store.ListDepartments(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{render.ID(d.ID), d.Name})
	}
	l.printer.Table([]string{"id", "name"}, rows)
	return nil
}

func (l *Loop) viewRoles(ctx context.Context) error {
	roles, err := l.store.ListRoles(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{render.ID(r.ID), r.Title, r.Department, render.Money(r.Salary)})
	}
	l.printer.Table([]string{"id", "title", "department", "salary"}, rows)
	return nil
}

func (l *Loop) viewEmployees(ctx context.Context) error {
	employees, err := l.store.ListEmployees(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			render.ID(e.ID),
			e.FirstName,
			e.LastName,
			render.Text(e.Title),
			render.Text(e.Department),
			render.OptionalMoney(e.Salary),
			render.Text(e.Manager),
		})
	}
	l.printer.Table([]string{"id", "first_name", "last_name", "title", "department", "salary", "manager"}, rows)
	return nil
}
