package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type IngredientCategoryStore struct {
	db *gorm.DB
}

func (s *IngredientCategoryStore) List(ctx context.Context) ([]models.IngredientCategory, error) {
	var categories []models.IngredientCategory

	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, translate("ingredient category", err)
	}

	return categories, nil
}

func (s *IngredientCategoryStore) Get(ctx context.Context, id uint) (*models.IngredientCategory, error) {
	var category models.IngredientCategory

	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate("ingredient category", err)
	}

	return &category, nil
}

func (s *IngredientCategoryStore) Create(ctx context.Context, category *models.IngredientCategory) error {
	if err := validateIngredientCategory(category); err != nil {
		return err
	}

	return translate("ingredient category", s.db.WithContext(ctx).Create(category).Error)
}

func (s *IngredientCategoryStore) Update(ctx context.Context, id uint, fields *models.IngredientCategory) (*models.IngredientCategory, error) {
	if err := validateIngredientCategory(fields); err != nil {
		return nil, err
	}

	category, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	category.Name = fields.Name
	category.Description = fields.Description

	if err := s.db.WithContext(ctx).Save(category).Error; err != nil {
		return nil, translate("ingredient category", err)
	}

	return category, nil
}

func (s *IngredientCategoryStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.IngredientCategory{}, id)

	if result.Error != nil {
		return translate("ingredient category", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("ingredient category: %w", ErrNotFound)
	}

	return nil
}

func validateIngredientCategory(category *models.IngredientCategory) error {
	return firstError(
		required("ingredient category", "name", category.Name),
		maxLen("ingredient category", "name", category.Name, 255),
	)
}

type IngredientStore struct {
	db *gorm.DB
}

func (s *IngredientStore) List(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient

	if err := s.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		return nil, translate("ingredient", err)
	}

	return ingredients, nil
}

func (s *IngredientStore) ListByCategory(ctx context.Context, categoryID uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient

	if err := s.db.WithContext(ctx).Where("category_id = ?", categoryID).Find(&ingredients).Error; err != nil {
		return nil, translate("ingredient", err)
	}

	return ingredients, nil
}

func (s *IngredientStore) Get(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient

	if err := s.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		return nil, translate("ingredient", err)
	}

	return &ingredient, nil
}

func (s *IngredientStore) Create(ctx context.Context, ingredient *models.Ingredient) error {
	if err := validateIngredient(ingredient); err != nil {
		return err
	}

	return translate("ingredient", s.db.WithContext(ctx).Create(ingredient).Error)
}

func (s *IngredientStore) Update(ctx context.Context, id uint, fields *models.Ingredient) (*models.Ingredient, error) {
	if err := validateIngredient(fields); err != nil {
		return nil, err
	}

	ingredient, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	ingredient.Name = fields.Name
	ingredient.CategoryID = fields.CategoryID

	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, translate("ingredient", err)
	}

	return ingredient, nil
}

func (s *IngredientStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Ingredient{}, id)

	if result.Error != nil {
		return translate("ingredient", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("ingredient: %w", ErrNotFound)
	}

	return nil
}

func validateIngredient(ingredient *models.Ingredient) error {
	return firstError(
		required("ingredient", "name", ingredient.Name),
		requiredID("ingredient", "category_id", ingredient.CategoryID),
		maxLen("ingredient", "name", ingredient.Name, 255),
	)
}

type UnitStore struct {
	db *gorm.DB
}

func (s *UnitStore) List(ctx context.Context) ([]models.Unit, error) {
	var units []models.Unit

	if err := s.db.WithContext(ctx).Find(&units).Error; err != nil {
		return nil, translate("unit", err)
	}

	return units, nil
}

func (s *UnitStore) Get(ctx context.Context, id uint) (*models.Unit, error) {
	var unit models.Unit

	if err := s.db.WithContext(ctx).First(&unit, id).Error; err != nil {
		return nil, translate("unit", err)
	}

	return &unit, nil
}

func (s *UnitStore) Create(ctx context.Context, unit *models.Unit) error {
	if err := validateUnit(unit); err != nil {
		return err
	}

	return translate("unit", s.db.WithContext(ctx).Create(unit).Error)
}

func (s *UnitStore) Update(ctx context.Context, id uint, fields *models.Unit) (*models.Unit, error) {
	if err := validateUnit(fields); err != nil {
		return nil, err
	}

	unit, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	unit.Name = fields.Name

	if err := s.db.WithContext(ctx).Save(unit).Error; err != nil {
		return nil, translate("unit", err)
	}

	return unit, nil
}

func (s *UnitStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Unit{}, id)

	if result.Error != nil {
		return translate("unit", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("unit: %w", ErrNotFound)
	}

	return nil
}

func validateUnit(unit *models.Unit) error {
	return firstError(
		required("unit", "name", unit.Name),
		maxLen("unit", "name", unit.Name, 255),
	)
}

type RecipeIngredientStore struct {
	db *gorm.DB
}

func (s *RecipeIngredientStore) List(ctx context.Context) ([]models.RecipeIngredient, error) {
	var links []models.RecipeIngredient

	if err := s.db.WithContext(ctx).Find(&links).Error; err != nil {
		return nil, translate("recipe ingredient", err)
	}

	return links, nil
}

func (s *RecipeIngredientStore) ListByRecipe(ctx context.Context, recipeID uint) ([]models.RecipeIngredient, error) {
	var links []models.RecipeIngredient

	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&links).Error; err != nil {
		return nil, translate("recipe ingredient", err)
	}

	return links, nil
}

func (s *RecipeIngredientStore) Get(ctx context.Context, id uint) (*models.RecipeIngredient, error) {
	var link models.RecipeIngredient

	if err := s.db.WithContext(ctx).First(&link, id).Error; err != nil {
		return nil, translate("recipe ingredient", err)
	}

	return &link, nil
}

func (s *RecipeIngredientStore) Create(ctx context.Context, link *models.RecipeIngredient) error {
	if err := validateRecipeIngredient(link); err != nil {
		return err
	}

	return translate("recipe ingredient", s.db.WithContext(ctx).Create(link).Error)
}

func (s *RecipeIngredientStore) Update(ctx context.Context, id uint, fields *models.RecipeIngredient) (*models.RecipeIngredient, error) {
	if err := validateRecipeIngredient(fields); err != nil {
		return nil, err
	}

	link, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	link.RecipeID = fields.RecipeID
	link.IngredientID = fields.IngredientID
	link.Quantity = fields.Quantity
	link.UnitID = fields.UnitID

	if err := s.db.WithContext(ctx).Save(link).Error; err != nil {
		return nil, translate("recipe ingredient", err)
	}

	return link, nil
}

func (s *RecipeIngredientStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.RecipeIngredient{}, id)

	if result.Error != nil {
		return translate("recipe ingredient", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("recipe ingredient: %w", ErrNotFound)
	}

	return nil
}

func validateRecipeIngredient(link *models.RecipeIngredient) error {
	return firstError(
		requiredID("recipe ingredient", "recipe_id", link.RecipeID),
		requiredID("recipe ingredient", "ingredient_id", link.IngredientID),
		required("recipe ingredient", "quantity", link.Quantity),
		requiredID("recipe ingredient", "unit_id", link.UnitID),
		maxLen("recipe ingredient", "quantity", link.Quantity, 50),
	)
}
