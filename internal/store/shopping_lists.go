package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type ShoppingListStore struct {
	db *gorm.DB
}

func (s *ShoppingListStore) List(ctx context.Context) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList

	if err := s.db.WithContext(ctx).Find(&lists).Error; err != nil {
		return nil, translate("shopping list", err)
	}

	return lists, nil
}

func (s *ShoppingListStore) ListByUser(ctx context.Context, userID uint) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList

	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&lists).Error; err != nil {
		return nil, translate("shopping list", err)
	}

	return lists, nil
}

func (s *ShoppingListStore) Get(ctx context.Context, id uint) (*models.ShoppingList, error) {
	var list models.ShoppingList

	if err := s.db.WithContext(ctx).First(&list, id).Error; err != nil {
		return nil, translate("shopping list", err)
	}

	return &list, nil
}

func (s *ShoppingListStore) Create(ctx context.Context, list *models.ShoppingList) error {
	if err := validateShoppingList(list); err != nil {
		return err
	}

	return translate("shopping list", s.db.WithContext(ctx).Create(list).Error)
}

func (s *ShoppingListStore) Update(ctx context.Context, id uint, fields *models.ShoppingList) (*models.ShoppingList, error) {
	if err := validateShoppingList(fields); err != nil {
		return nil, err
	}

	list, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	list.UserID = fields.UserID
	list.IsCompleted = fields.IsCompleted

	if err := s.db.WithContext(ctx).Save(list).Error; err != nil {
		return nil, translate("shopping list", err)
	}

	return list, nil
}

func (s *ShoppingListStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.ShoppingList{}, id)

	if result.Error != nil {
		return translate("shopping list", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("shopping list: %w", ErrNotFound)
	}

	return nil
}

func validateShoppingList(list *models.ShoppingList) error {
	return requiredID("shopping list", "user_id", list.UserID)
}

type ShoppingListItemStore struct {
	db *gorm.DB
}

func (s *ShoppingListItemStore) List(ctx context.Context) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem

	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, translate("shopping list item", err)
	}

	return items, nil
}

func (s *ShoppingListItemStore) ListByList(ctx context.Context, listID uint) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem

	if err := s.db.WithContext(ctx).Where("list_id = ?", listID).Find(&items).Error; err != nil {
		return nil, translate("shopping list item", err)
	}

	return items, nil
}

func (s *ShoppingListItemStore) Get(ctx context.Context, id uint) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem

	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate("shopping list item", err)
	}

	return &item, nil
}

func (s *ShoppingListItemStore) Create(ctx context.Context, item *models.ShoppingListItem) error {
	if err := validateShoppingListItem(item); err != nil {
		return err
	}

	return translate("shopping list item", s.db.WithContext(ctx).Create(item).Error)
}

func (s *ShoppingListItemStore) Update(ctx context.Context, id uint, fields *models.ShoppingListItem) (*models.ShoppingListItem, error) {
	if err := validateShoppingListItem(fields); err != nil {
		return nil, err
	}

	item, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	item.ListID = fields.ListID
	item.IngredientID = fields.IngredientID
	item.Quantity = fields.Quantity
	item.UnitID = fields.UnitID
	item.Status = fields.Status

	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, translate("shopping list item", err)
	}

	return item, nil
}

func (s *ShoppingListItemStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.ShoppingListItem{}, id)

	if result.Error != nil {
		return translate("shopping list item", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("shopping list item: %w", ErrNotFound)
	}

	return nil
}

func validateShoppingListItem(item *models.ShoppingListItem) error {
	return firstError(
		requiredID("shopping list item", "list_id", item.ListID),
		requiredID("shopping list item", "ingredient_id", item.IngredientID),
		required("shopping list item", "quantity", item.Quantity),
		requiredID("shopping list item", "unit_id", item.UnitID),
		maxLen("shopping list item", "quantity", item.Quantity, 50),
		maxLen("shopping list item", "status", item.Status, 50),
	)
}
