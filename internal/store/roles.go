package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type RoleStore struct {
	db *gorm.DB
}

func (s *RoleStore) List(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role

	if err := s.db.WithContext(ctx).Find(&roles).Error; err != nil {
		return nil, translate("role", err)
	}

	return roles, nil
}

func (s *RoleStore) Get(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role

	if err := s.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, translate("role", err)
	}

	return &role, nil
}

func (s *RoleStore) Create(ctx context.Context, role *models.Role) error {
	if err := validateRole(role); err != nil {
		return err
	}

	return translate("role", s.db.WithContext(ctx).Create(role).Error)
}

func (s *RoleStore) Update(ctx context.Context, id uint, fields *models.Role) (*models.Role, error) {
	if err := validateRole(fields); err != nil {
		return nil, err
	}

	role, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	role.Name = fields.Name
	role.Description = fields.Description

	if err := s.db.WithContext(ctx).Save(role).Error; err != nil {
		return nil, translate("role", err)
	}

	return role, nil
}

func (s *RoleStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Role{}, id)

	if result.Error != nil {
		return translate("role", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("role: %w", ErrNotFound)
	}

	return nil
}

func validateRole(role *models.Role) error {
	return firstError(
		required("role", "name", role.Name),
		maxLen("role", "name", role.Name, 255),
	)
}
