package service

import (
	"context"

	"employee-tracker/internal/models"
)

type CreateDepartmentInput struct {
	Name string
}

type CreateRoleInput struct {
	Title        string
	Salary       float64
	DepartmentID uint
}

type CreateEmployeeInput struct {
	FirstName string
	LastName  string
	RoleID    uint
	ManagerID *uint
}

// DepartmentRow is one line of the department listing.
type DepartmentRow struct {
	ID   uint
	Name string
}

// RoleRow is one line of the role listing, joined to its department.
type RoleRow struct {
	ID         uint
	Title      string
	Department string
	Salary     float64
}

// EmployeeRow is one line of the employee listing. The joined columns are
// nil when the referenced row is missing.
type EmployeeRow struct {
	ID         uint
	FirstName  string
	LastName   string
	Title      *string
	Department *string
	Salary     *float64
	Manager    *string
}

// Manager is everything the interaction loop asks of the store.
type Manager interface {
	ListDepartments(ctx context.Context) ([]DepartmentRow, error)
	ListRoles(ctx context.Context) ([]RoleRow, error)
	ListEmployees(ctx context.Context) ([]EmployeeRow, error)

	AllDepartments(ctx context.Context) ([]models.Department, error)
	AllRoles(ctx context.Context) ([]models.Role, error)
	AllEmployees(ctx context.Context) ([]models.Employee, error)

	CreateDepartment(ctx context.Context, input CreateDepartmentInput) (models.Department, error)
	CreateRole(ctx context.Context, input CreateRoleInput) (models.Role, error)
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (models.Employee, error)
	UpdateEmployeeRole(ctx context.Context, employeeID uint, roleID uint) error

	Close() error
}
