package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type CategoryStore struct {
	db *gorm.DB
}

func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, translate("category", err)
	}

	return categories, nil
}

func (s *CategoryStore) Get(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category

	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate("category", err)
	}

	return &category, nil
}

func (s *CategoryStore) Create(ctx context.Context, category *models.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}

	return translate("category", s.db.WithContext(ctx).Create(category).Error)
}

func (s *CategoryStore) Update(ctx context.Context, id uint, fields *models.Category) (*models.Category, error) {
	if err := validateCategory(fields); err != nil {
		return nil, err
	}

	category, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	category.Name = fields.Name
	category.Description = fields.Description

	if err := s.db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, translate("category", err)
	}

	return category, nil
}

func (s *CategoryStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Category{}, id)

	if result.Error != nil {
		return translate("category", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("category: %w", ErrNotFound)
	}

	return nil
}

func validateCategory(category *models.Category) error {
	return firstError(
		required("category", "name", category.Name),
		maxLen("category", "name", category.Name, 255),
	)
}
