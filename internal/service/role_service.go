package service

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"employee-tracker/internal/models"
)

const listRolesQuery = `SELECT r.id, r.title, d.name AS department, r.salary
FROM role r
JOIN department d ON r.department_id = d.id
ORDER BY r.id`

func (s *Store) ListRoles(ctx context.Context) ([]RoleRow, error) {
	rows := []RoleRow{}
	if err := s.db.WithContext(ctx).Raw(listRolesQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return rows, nil
}

func (s *Store) AllRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.WithContext(ctx).Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	return roles, nil
}

func (s *Store) CreateRole(ctx context.Context, input CreateRoleInput) (models.Role, error) {
	title, err := normalizeRequiredString(input.Title, "role title")
	if err != nil {
		return models.Role{}, err
	}
	if err := validateSalary(input.Salary); err != nil {
		return models.Role{}, err
	}

	role := models.Role{
		Title:        title,
		Salary:       input.Salary,
		DepartmentID: input.DepartmentID,
	}

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&role).Error; err != nil {
		return models.Role{}, mapDatabaseError(err, "insert role")
	}

	return role, nil
}
