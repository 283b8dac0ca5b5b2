package service

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"employee-tracker/internal/apperror"
	"employee-tracker/internal/models"
)

// The manager name is built with || so a missing manager yields NULL
// rather than a lone space.
const listEmployeesQuery = `SELECT e.id, e.first_name, e.last_name,
       r.title, d.name AS department, r.salary,
       m.first_name || ' ' || m.last_name AS manager
FROM employee e
LEFT JOIN role r ON e.role_id = r.id
LEFT JOIN department d ON r.department_id = d.id
LEFT JOIN employee m ON e.manager_id = m.id
ORDER BY e.id`

func (s *Store) ListEmployees(ctx context.Context) ([]EmployeeRow, error) {
	rows := []EmployeeRow{}
	if err := s.db.WithContext(ctx).Raw(listEmployeesQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return rows, nil
}

func (s *Store) AllEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	return employees, nil
}

func (s *Store) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (models.Employee, error) {
	firstName, err := normalizeRequiredString(input.FirstName, "first name")
	if err != nil {
		return models.Employee{}, err
	}

	lastName, err := normalizeRequiredString(input.LastName, "last name")
	if err != nil {
		return models.Employee{}, err
	}

	employee := models.Employee{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    input.RoleID,
		ManagerID: input.ManagerID,
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&employee).Error; err != nil {
		return models.Employee{}, mapDatabaseError(err, "insert employee")
	}

	return employee, nil
}

// UpdateEmployeeRole points the employee at a new role. No other column
// is written.
func (s *Store) UpdateEmployeeRole(ctx context.Context, employeeID uint, roleID uint) error {
	result := s.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Update("role_id", roleID)
	if result.Error != nil {
		return mapDatabaseError(result.Error, "update employee role")
	}
	if result.RowsAffected == 0 {
		return apperror.Newf(apperror.CodeNotFound, "employee %d not found", employeeID)
	}
	return nil
}
