package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type RecipeStore struct {
	db *gorm.DB
}

func (s *RecipeStore) List(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe

	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, translate("recipe", err)
	}

	return recipes, nil
}

func (s *RecipeStore) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe

	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, translate("recipe", err)
	}

	return &recipe, nil
}

func (s *RecipeStore) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := validateRecipe(recipe); err != nil {
		return err
	}

	return translate("recipe", s.db.WithContext(ctx).Create(recipe).Error)
}

func (s *RecipeStore) Update(ctx context.Context, id uint, fields *models.Recipe) (*models.Recipe, error) {
	if err := validateRecipe(fields); err != nil {
		return nil, err
	}

	recipe, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	recipe.Name = fields.Name
	recipe.Description = fields.Description
	recipe.Instructions = fields.Instructions
	recipe.Difficulty = fields.Difficulty
	recipe.PreparationTime = fields.PreparationTime
	recipe.IsPublic = fields.IsPublic

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, translate("recipe", err)
	}

	return recipe, nil
}

func (s *RecipeStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Recipe{}, id)

	if result.Error != nil {
		return translate("recipe", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("recipe: %w", ErrNotFound)
	}

	return nil
}

func validateRecipe(recipe *models.Recipe) error {
	return firstError(
		required("recipe", "name", recipe.Name),
		maxLen("recipe", "name", recipe.Name, 255),
		maxLen("recipe", "difficulty", recipe.Difficulty, 50),
		nonNegative("recipe", "preparation_time", recipe.PreparationTime),
	)
}

type RecipeCategoryStore struct {
	db *gorm.DB
}

func (s *RecipeCategoryStore) List(ctx context.Context) ([]models.RecipeCategory, error) {
	var links []models.RecipeCategory

	if err := s.db.WithContext(ctx).Find(&links).Error; err != nil {
		return nil, translate("recipe category", err)
	}

	return links, nil
}

func (s *RecipeCategoryStore) ListByRecipe(ctx context.Context, recipeID uint) ([]models.RecipeCategory, error) {
	var links []models.RecipeCategory

	if err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&links).Error; err != nil {
		return nil, translate("recipe category", err)
	}

	return links, nil
}

func (s *RecipeCategoryStore) Get(ctx context.Context, id uint) (*models.RecipeCategory, error) {
	var link models.RecipeCategory

	if err := s.db.WithContext(ctx).First(&link, id).Error; err != nil {
		return nil, translate("recipe category", err)
	}

	return &link, nil
}

func (s *RecipeCategoryStore) Create(ctx context.Context, link *models.RecipeCategory) error {
	if err := validateRecipeCategory(link); err != nil {
		return err
	}

	return translate("recipe category", s.db.WithContext(ctx).Create(link).Error)
}

func (s *RecipeCategoryStore) Update(ctx context.Context, id uint, fields *models.RecipeCategory) (*models.RecipeCategory, error) {
	if err := validateRecipeCategory(fields); err != nil {
		return nil, err
	}

	link, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	link.RecipeID = fields.RecipeID
	link.CategoryID = fields.CategoryID

	if err := s.db.WithContext(ctx).Save(link).Error; err != nil {
		return nil, translate("recipe category", err)
	}

	return link, nil
}

func (s *RecipeCategoryStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.RecipeCategory{}, id)

	if result.Error != nil {
		return translate("recipe category", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("recipe category: %w", ErrNotFound)
	}

	return nil
}

func validateRecipeCategory(link *models.RecipeCategory) error {
	return firstError(
		requiredID("recipe category", "recipe_id", link.RecipeID),
		requiredID("recipe category", "category_id", link.CategoryID),
	)
}

type UserRecipeStore struct {
	db *gorm.DB
}

func (s *UserRecipeStore) List(ctx context.Context) ([]models.UserRecipe, error) {
	var links []models.UserRecipe

	if err := s.db.WithContext(ctx).Find(&links).Error; err != nil {
		return nil, translate("user recipe", err)
	}

	return links, nil
}

func (s *UserRecipeStore) ListByUser(ctx context.Context, userID uint) ([]models.UserRecipe, error) {
	var links []models.UserRecipe

	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&links).Error; err != nil {
		return nil, translate("user recipe", err)
	}

	return links, nil
}

func (s *UserRecipeStore) Get(ctx context.Context, id uint) (*models.UserRecipe, error) {
	var link models.UserRecipe

	if err := s.db.WithContext(ctx).First(&link, id).Error; err != nil {
		return nil, translate("user recipe", err)
	}

	return &link, nil
}

func (s *UserRecipeStore) Create(ctx context.Context, link *models.UserRecipe) error {
	if err := validateUserRecipe(link); err != nil {
		return err
	}

	return translate("user recipe", s.db.WithContext(ctx).Create(link).Error)
}

func (s *UserRecipeStore) Update(ctx context.Context, id uint, fields *models.UserRecipe) (*models.UserRecipe, error) {
	if err := validateUserRecipe(fields); err != nil {
		return nil, err
	}

	link, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	link.UserID = fields.UserID
	link.RecipeID = fields.RecipeID
	link.IsOwner = fields.IsOwner

	if err := s.db.WithContext(ctx).Save(link).Error; err != nil {
		return nil, translate("user recipe", err)
	}

	return link, nil
}

func (s *UserRecipeStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.UserRecipe{}, id)

	if result.Error != nil {
		return translate("user recipe", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("user recipe: %w", ErrNotFound)
	}

	return nil
}

func validateUserRecipe(link *models.UserRecipe) error {
	return firstError(
		requiredID("user recipe", "user_id", link.UserID),
		requiredID("user recipe", "recipe_id", link.RecipeID),
	)
}
