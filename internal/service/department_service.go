package service

import (
	"context"
	"fmt"

	"employee-tracker/internal/models"
)

func (s *Store) ListDepartments(ctx context.Context) ([]DepartmentRow, error) {
	rows := []DepartmentRow{}
	if err := s.db.WithContext(ctx).
		Raw("SELECT id, name FROM department ORDER BY id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return rows, nil
}

func (s *Store) AllDepartments(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	if err := s.db.WithContext(ctx).Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("load departments: %w", err)
	}
	return departments, nil
}

func (s *Store) CreateDepartment(ctx context.Context, input CreateDepartmentInput) (models.Department, error) {
	name, err := normalizeRequiredString(input.Name, "department name")
	if err != nil {
		return models.Department{}, err
	}

	department := models.Department{Name: name}
	if err := s.db.WithContext(ctx).Create(&department).Error; err != nil {
		return models.Department{}, mapDatabaseError(err, "insert department")
	}

	return department, nil
}
