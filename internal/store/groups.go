package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type GroupStore struct {
	db *gorm.DB
}

func (s *GroupStore) List(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group

	if err := s.db.WithContext(ctx).Find(&groups).Error; err != nil {
		return nil, translate("group", err)
	}

	return groups, nil
}

func (s *GroupStore) Get(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group

	if err := s.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, translate("group", err)
	}

	return &group, nil
}

func (s *GroupStore) Create(ctx context.Context, group *models.Group) error {
	if err := validateGroup(group); err != nil {
		return err
	}

	return translate("group", s.db.WithContext(ctx).Create(group).Error)
}

func (s *GroupStore) Update(ctx context.Context, id uint, fields *models.Group) (*models.Group, error) {
	if err := validateGroup(fields); err != nil {
		return nil, err
	}

	group, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	group.Name = fields.Name
	group.Description = fields.Description

	if err := s.db.WithContext(ctx).Save(group).Error; err != nil {
		return nil, translate("group", err)
	}

	return group, nil
}

func (s *GroupStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Group{}, id)

	if result.Error != nil {
		return translate("group", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("group: %w", ErrNotFound)
	}

	return nil
}

func validateGroup(group *models.Group) error {
	return firstError(
		required("group", "name", group.Name),
		maxLen("group", "name", group.Name, 255),
	)
}

type UserGroupStore struct {
	db *gorm.DB
}

func (s *UserGroupStore) List(ctx context.Context) ([]models.UserGroup, error) {
	var memberships []models.UserGroup

	if err := s.db.WithContext(ctx).Find(&memberships).Error; err != nil {
		return nil, translate("user group", err)
	}

	return memberships, nil
}

func (s *UserGroupStore) ListByUser(ctx context.Context, userID uint) ([]models.UserGroup, error) {
	var memberships []models.UserGroup

	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&memberships).Error; err != nil {
		return nil, translate("user group", err)
	}

	return memberships, nil
}

func (s *UserGroupStore) ListByGroup(ctx context.Context, groupID uint) ([]models.UserGroup, error) {
	var memberships []models.UserGroup

	if err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Find(&memberships).Error; err != nil {
		return nil, translate("user group", err)
	}

	return memberships, nil
}

func (s *UserGroupStore) Get(ctx context.Context, id uint) (*models.UserGroup, error) {
	var membership models.UserGroup

	if err := s.db.WithContext(ctx).First(&membership, id).Error; err != nil {
		return nil, translate("user group", err)
	}

	return &membership, nil
}

func (s *UserGroupStore) Create(ctx context.Context, membership *models.UserGroup) error {
	if err := validateUserGroup(membership); err != nil {
		return err
	}

	return translate("user group", s.db.WithContext(ctx).Create(membership).Error)
}

func (s *UserGroupStore) Update(ctx context.Context, id uint, fields *models.UserGroup) (*models.UserGroup, error) {
	if err := validateUserGroup(fields); err != nil {
		return nil, err
	}

	membership, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	membership.UserID = fields.UserID
	membership.GroupID = fields.GroupID

	if err := s.db.WithContext(ctx).Save(membership).Error; err != nil {
		return nil, translate("user group", err)
	}

	return membership, nil
}

func (s *UserGroupStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.UserGroup{}, id)

	if result.Error != nil {
		return translate("user group", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("user group: %w", ErrNotFound)
	}

	return nil
}

func validateUserGroup(membership *models.UserGroup) error {
	return firstError(
		requiredID("user group", "user_id", membership.UserID),
		requiredID("user group", "group_id", membership.GroupID),
	)
}
