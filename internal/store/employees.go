package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type EmployeeStore struct {
	db *gorm.DB
}

func (s *EmployeeStore) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee

	if err := s.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, translate("employee", err)
	}

	return employees, nil
}

func (s *EmployeeStore) Get(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee

	if err := s.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, translate("employee", err)
	}

	return &employee, nil
}

func (s *EmployeeStore) Create(ctx context.Context, employee *models.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}

	return translate("employee", s.db.WithContext(ctx).Create(employee).Error)
}

func (s *EmployeeStore) Update(ctx context.Context, id uint, fields *models.Employee) (*models.Employee, error) {
	if err := validateEmployee(fields); err != nil {
		return nil, err
	}

	employee, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	employee.Name = fields.Name
	employee.Email = fields.Email
	employee.Phone = fields.Phone
	employee.Post = fields.Post

	if err := s.db.WithContext(ctx).Save(employee).Error; err != nil {
		return nil, translate("employee", err)
	}

	return employee, nil
}

func (s *EmployeeStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Employee{}, id)

	if result.Error != nil {
		return translate("employee", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("employee: %w", ErrNotFound)
	}

	return nil
}

func validateEmployee(employee *models.Employee) error {
	return firstError(
		required("employee", "name", employee.Name),
		required("employee", "email", employee.Email),
		maxLen("employee", "name", employee.Name, 50),
		maxLen("employee", "email", employee.Email, 50),
		maxLen("employee", "phone", employee.Phone, 50),
		maxLen("employee", "post", employee.Post, 50),
	)
}
