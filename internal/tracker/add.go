package tracker

import (
	"context"

	"employee-tracker/internal/prompt"
	"employee-tracker/internal/render"
	"employee-tracker/internal/service"
)

func (l *Loop) addDepartment(ctx context.Context) error {
	name, err := l.prompt.Ask(departmentNameField)
	if err != nil {
		return err
	}

	department, err := l.store.CreateDepartment(ctx, service.CreateDepartmentInput{Name: name})
	if err != nil {
		return err
	}

	l.printer.Success("Added %s to departments", department.Name)
	return nil
}

func (l *Loop) addRole(ctx context.Context) error {
	departments, err := l.store.AllDepartments(ctx)
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		l.printer.Warn("You need to add a department first")
		return nil
	}

	title, err := l.prompt.Ask(roleTitleField)
	if err != nil {
		return err
	}

	answer, err := l.prompt.Ask(roleSalaryField)
	if err != nil {
		return err
	}
	salary, err := prompt.ParsePositive(answer)
	if err != nil {
		return err
	}

	options := make([]prompt.Option[uint], 0, len(departments))
	for _, d := range departments {
		options = append(options, prompt.Option[uint]{Label: d.Name, Value: d.ID})
	}
	departmentID, err := prompt.Choose(l.prompt, "Which department does this role belong to?", options)
	if err != nil {
		return err
	}

	role, err := l.store.CreateRole(ctx, service.CreateRoleInput{
		Title:        title,
		Salary:       salary,
		DepartmentID: departmentID,
	})
	if err != nil {
		return err
	}

	l.printer.Success("Added role %s with salary %s", role.Title, render.Money(role.Salary))
	return nil
}

func (l *Loop) addEmployee(ctx context.Context) error {
	roles, err := l.store.AllRoles(ctx)
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		l.printer.Warn("You need to add a role first")
		return nil
	}

	employees, err := l.store.AllEmployees(ctx)
	if err != nil {
		return err
	}

	firstName, err := l.prompt.Ask(firstNameField)
	if err != nil {
		return err
	}
	lastName, err := l.prompt.Ask(lastNameField)
	if err != nil {
		return err
	}

	roleID, err := prompt.Choose(l.prompt, "What is the employee's role?", roleOptions(roles))
	if err != nil {
		return err
	}

	managers := make([]prompt.Option[*uint], 0, len(employees)+1)
	managers = append(managers, prompt.Option[*uint]{Label: "None", Value: nil})
	for _, e := range employees {
		id := e.ID
		managers = append(managers, prompt.Option[*uint]{Label: e.FullName(), Value: &id})
	}
	managerID, err := prompt.Choose(l.prompt, "Who is the employee's manager?", managers)
	if err != nil {
		return err
	}

	employee, err := l.store.CreateEmployee(ctx, service.CreateEmployeeInput{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    roleID,
		ManagerID: managerID,
	})
	if err != nil {
		return err
	}

	l.printer.Success("Added employee %s", employee.FullName())
	return nil
}
