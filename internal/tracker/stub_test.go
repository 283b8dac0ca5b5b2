package tracker

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"employee-tracker/internal/models"
	"employee-tracker/internal/prompt"
	"employee-tracker/internal/render"
	"employee-tracker/internal/service"
)

type stubStore struct {
	listDepartmentsFn    func(ctx context.Context) ([]service.DepartmentRow, error)
	listRolesFn          func(ctx context.Context) ([]service.RoleRow, error)
	listEmployeesFn      func(ctx context.Context) ([]service.EmployeeRow, error)
	allDepartmentsFn     func(ctx context.Context) ([]models.Department, error)
	allRolesFn           func(ctx context.Context) ([]models.Role, error)
	allEmployeesFn       func(ctx context.Context) ([]models.Employee, error)
	createDepartmentFn   func(ctx context.Context, input service.CreateDepartmentInput) (models.Department, error)
	createRoleFn         func(ctx context.Context, input service.CreateRoleInput) (models.Role, error)
	createEmployeeFn     func(ctx context.Context, input service.CreateEmployeeInput) (models.Employee, error)
	updateEmployeeRoleFn func(ctx context.Context, employeeID uint, roleID uint) error

	closeCalls int
}

func (s *stubStore) ListDepartments(ctx context.Context) ([]service.DepartmentRow, error) {
	if s.listDepartmentsFn == nil {
		return nil, nil
	}
	return s.listDepartmentsFn(ctx)
}

func (s *stubStore) ListRoles(ctx context.Context) ([]service.RoleRow, error) {
	if s.listRolesFn == nil {
		return nil, nil
	}
	return s.listRolesFn(ctx)
}

func (s *stubStore) ListEmployees(ctx context.Context) ([]service.EmployeeRow, error) {
	if s.listEmployeesFn == nil {
		return nil, nil
	}
	return s.listEmployeesFn(ctx)
}

func (s *stubStore) AllDepartments(ctx context.Context) ([]models.Department, error) {
	if s.allDepartmentsFn == nil {
		return nil, nil
	}
	return s.allDepartmentsFn(ctx)
}

func (s *stubStore) AllRoles(ctx context.Context) ([]models.Role, error) {
	if s.allRolesFn == nil {
		return nil, nil
	}
	return s.allRolesFn(ctx)
}

func (s *stubStore) AllEmployees(ctx context.Context) ([]models.Employee, error) {
	if s.allEmployeesFn == nil {
		return nil, nil
	}
	return s.allEmployeesFn(ctx)
}

func (s *stubStore) CreateDepartment(ctx context.Context, input service.CreateDepartmentInput) (models.Department, error) {
	if s.createDepartmentFn == nil {
		return models.Department{Name: input.Name}, nil
	}
	return s.createDepartmentFn(ctx, input)
}

func (s *stubStore) CreateRole(ctx context.Context, input service.CreateRoleInput) (models.Role, error) {
	if s.createRoleFn == nil {
		return models.Role{Title: input.Title, Salary: input.Salary, DepartmentID: input.DepartmentID}, nil
	}
	return s.createRoleFn(ctx, input)
}

func (s *stubStore) CreateEmployee(ctx context.Context, input service.CreateEmployeeInput) (models.Employee, error) {
	if s.createEmployeeFn == nil {
		return models.Employee{FirstName: input.FirstName, LastName: input.LastName, RoleID: input.RoleID, ManagerID: input.ManagerID}, nil
	}
	return s.createEmployeeFn(ctx, input)
}

func (s *stubStore) UpdateEmployeeRole(ctx context.Context, employeeID uint, roleID uint) error {
	if s.updateEmployeeRoleFn == nil {
		return nil
	}
	return s.updateEmployeeRoleFn(ctx, employeeID, roleID)
}

func (s *stubStore) Close() error {
	s.closeCalls++
	return nil
}

// session runs a loop over a scripted operator. Each line of script is one
// answer; menu entries and choices may be given by label.
type session struct {
	out  bytes.Buffer
	logs bytes.Buffer
	err  error
}

func runSession(t *testing.T, store service.Manager, script ...string) *session {
	t.Helper()

	s := &session{}
	input := strings.NewReader(strings.Join(script, "\n") + "\n")
	logger := zerolog.New(&s.logs)

	loop := New(store, prompt.NewConsole(input, &s.out), render.NewPrinter(&s.out), logger)
	s.err = loop.Run(context.Background())
	return s
}

func zeroLogger() zerolog.Logger {
	return zerolog.Nop()
}
