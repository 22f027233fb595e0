package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type PlanStore struct {
	db *gorm.DB
}

func (s *PlanStore) List(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan

	if err := s.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, translate("plan", err)
	}

	return plans, nil
}

func (s *PlanStore) ListByUser(ctx context.Context, userID uint) ([]models.Plan, error) {
	var plans []models.Plan

	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&plans).Error; err != nil {
		return nil, translate("plan", err)
	}

	return plans, nil
}

func (s *PlanStore) Get(ctx context.Context, id uint) (*models.Plan, error) {
	var plan models.Plan

	if err := s.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, translate("plan", err)
	}

	return &plan, nil
}

func (s *PlanStore) Create(ctx context.Context, plan *models.Plan) error {
	if err := validatePlan(plan); err != nil {
		return err
	}

	return translate("plan", s.db.WithContext(ctx).Create(plan).Error)
}

func (s *PlanStore) Update(ctx context.Context, id uint, fields *models.Plan) (*models.Plan, error) {
	if err := validatePlan(fields); err != nil {
		return nil, err
	}

	plan, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	plan.UserID = fields.UserID
	plan.StartDate = fields.StartDate
	plan.EndDate = fields.EndDate
	plan.PlanType = fields.PlanType

	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, translate("plan", err)
	}

	return plan, nil
}

func (s *PlanStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Plan{}, id)

	if result.Error != nil {
		return translate("plan", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("plan: %w", ErrNotFound)
	}

	return nil
}

func validatePlan(plan *models.Plan) error {
	return firstError(
		requiredID("plan", "user_id", plan.UserID),
		maxLen("plan", "plan_type", plan.PlanType, 50),
	)
}

type MenuStore struct {
	db *gorm.DB
}

func (s *MenuStore) List(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu

	if err := s.db.WithContext(ctx).Find(&menus).Error; err != nil {
		return nil, translate("menu", err)
	}

	return menus, nil
}

func (s *MenuStore) ListByPlan(ctx context.Context, planID uint) ([]models.Menu, error) {
	var menus []models.Menu

	if err := s.db.WithContext(ctx).Where("plan_id = ?", planID).Find(&menus).Error; err != nil {
		return nil, translate("menu", err)
	}

	return menus, nil
}

func (s *MenuStore) Get(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu

	if err := s.db.WithContext(ctx).First(&menu, id).Error; err != nil {
		return nil, translate("menu", err)
	}

	return &menu, nil
}

func (s *MenuStore) Create(ctx context.Context, menu *models.Menu) error {
	if err := validateMenu(menu); err != nil {
		return err
	}

	return translate("menu", s.db.WithContext(ctx).Create(menu).Error)
}

func (s *MenuStore) Update(ctx context.Context, id uint, fields *models.Menu) (*models.Menu, error) {
	if err := validateMenu(fields); err != nil {
		return nil, err
	}

	menu, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	menu.PlanID = fields.PlanID
	menu.Name = fields.Name

	if err := s.db.WithContext(ctx).Save(menu).Error; err != nil {
		return nil, translate("menu", err)
	}

	return menu, nil
}

func (s *MenuStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Menu{}, id)

	if result.Error != nil {
		return translate("menu", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("menu: %w", ErrNotFound)
	}

	return nil
}

func validateMenu(menu *models.Menu) error {
	return firstError(
		requiredID("menu", "plan_id", menu.PlanID),
		required("menu", "name", menu.Name),
		maxLen("menu", "name", menu.Name, 255),
	)
}

type MenuRecipeStore struct {
	db *gorm.DB
}

func (s *MenuRecipeStore) List(ctx context.Context) ([]models.MenuRecipe, error) {
	var links []models.MenuRecipe

	if err := s.db.WithContext(ctx).Find(&links).Error; err != nil {
		return nil, translate("menu recipe", err)
	}

	return links, nil
}

func (s *MenuRecipeStore) ListByMenu(ctx context.Context, menuID uint) ([]models.MenuRecipe, error) {
	var links []models.MenuRecipe

	if err := s.db.WithContext(ctx).Where("menu_id = ?", menuID).Find(&links).Error; err != nil {
		return nil, translate("menu recipe", err)
	}

	return links, nil
}

func (s *MenuRecipeStore) Get(ctx context.Context, id uint) (*models.MenuRecipe, error) {
	var link models.MenuRecipe

	if err := s.db.WithContext(ctx).First(&link, id).Error; err != nil {
		return nil, translate("menu recipe", err)
	}

	return &link, nil
}

func (s *MenuRecipeStore) Create(ctx context.Context, link *models.MenuRecipe) error {
	if err := validateMenuRecipe(link); err != nil {
		return err
	}

	return translate("menu recipe", s.db.WithContext(ctx).Create(link).Error)
}

func (s *MenuRecipeStore) Update(ctx context.Context, id uint, fields *models.MenuRecipe) (*models.MenuRecipe, error) {
	if err := validateMenuRecipe(fields); err != nil {
		return nil, err
	}

	link, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	link.MenuID = fields.MenuID
	link.RecipeID = fields.RecipeID

	if err := s.db.WithContext(ctx).Save(link).Error; err != nil {
		return nil, translate("menu recipe", err)
	}

	return link, nil
}

func (s *MenuRecipeStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.MenuRecipe{}, id)

	if result.Error != nil {
		return translate("menu recipe", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("menu recipe: %w", ErrNotFound)
	}

	return nil
}

func validateMenuRecipe(link *models.MenuRecipe) error {
	return firstError(
		requiredID("menu recipe", "menu_id", link.MenuID),
		requiredID("menu recipe", "recipe_id", link.RecipeID),
	)
}
