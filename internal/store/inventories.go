package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type InventoryStore struct {
	db *gorm.DB
}

func (s *InventoryStore) List(ctx context.Context) ([]models.Inventory, error) {
	var inventories []models.Inventory

	if err := s.db.WithContext(ctx).Find(&inventories).Error; err != nil {
		return nil, translate("inventory", err)
	}

	return inventories, nil
}

func (s *InventoryStore) ListByUser(ctx context.Context, userID uint) ([]models.Inventory, error) {
	var inventories []models.Inventory

	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&inventories).Error; err != nil {
		return nil, translate("inventory", err)
	}

	return inventories, nil
}

func (s *InventoryStore) Get(ctx context.Context, id uint) (*models.Inventory, error) {
	var inventory models.Inventory

	if err := s.db.WithContext(ctx).First(&inventory, id).Error; err != nil {
		return nil, translate("inventory", err)
	}

	return &inventory, nil
}

func (s *InventoryStore) Create(ctx context.Context, inventory *models.Inventory) error {
	if err := validateInventory(inventory); err != nil {
		return err
	}

	return translate("inventory", s.db.WithContext(ctx).Create(inventory).Error)
}

func (s *InventoryStore) Update(ctx context.Context, id uint, fields *models.Inventory) (*models.Inventory, error) {
	if err := validateInventory(fields); err != nil {
		return nil, err
	}

	inventory, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	inventory.UserID = fields.UserID
	inventory.IngredientID = fields.IngredientID
	inventory.Quantity = fields.Quantity
	inventory.UnitID = fields.UnitID
	inventory.ExpirationDate = fields.ExpirationDate

	if err := s.db.WithContext(ctx).Save(inventory).Error; err != nil {
		return nil, translate("inventory", err)
	}

	return inventory, nil
}

func (s *InventoryStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Inventory{}, id)

	if result.Error != nil {
		return translate("inventory", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("inventory: %w", ErrNotFound)
	}

	return nil
}

func validateInventory(inventory *models.Inventory) error {
	return firstError(
		requiredID("inventory", "user_id", inventory.UserID),
		requiredID("inventory", "ingredient_id", inventory.IngredientID),
		required("inventory", "quantity", inventory.Quantity),
		requiredID("inventory", "unit_id", inventory.UnitID),
		maxLen("inventory", "quantity", inventory.Quantity, 50),
	)
}
