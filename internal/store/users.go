package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type UserStore struct {
	db *gorm.DB
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	var users []models.User

	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, translate("user", err)
	}

	return users, nil
}

func (s *UserStore) ListByRole(ctx context.Context, roleID uint) ([]models.User, error) {
	var users []models.User

	if err := s.db.WithContext(ctx).Where("role_id = ?", roleID).Find(&users).Error; err != nil {
		return nil, translate("user", err)
	}

	return users, nil
}

func (s *UserStore) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate("user", err)
	}

	return &user, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate("user", err)
	}

	return &user, nil
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if err := validateUser(user); err != nil {
		return err
	}

	return translate("user", s.db.WithContext(ctx).Create(user).Error)
}

func (s *UserStore) Update(ctx context.Context, id uint, fields *models.User) (*models.User, error) {
	if err := validateUser(fields); err != nil {
		return nil, err
	}

	user, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	user.Name = fields.Name
	user.Email = fields.Email
	user.Password = fields.Password
	user.ProfilePhoto = fields.ProfilePhoto
	user.AccountType = fields.AccountType
	user.RoleID = fields.RoleID

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, translate("user", err)
	}

	return user, nil
}

func (s *UserStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.User{}, id)

	if result.Error != nil {
		return translate("user", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("user: %w", ErrNotFound)
	}

	return nil
}

func validateUser(user *models.User) error {
	return firstError(
		required("user", "name", user.Name),
		required("user", "email", user.Email),
		required("user", "password", user.Password),
		requiredID("user", "role_id", user.RoleID),
		maxLen("user", "name", user.Name, 255),
		maxLen("user", "email", user.Email, 255),
		maxLen("user", "password", user.Password, 255),
		maxLen("user", "profile_photo", user.ProfilePhoto, 255),
		maxLen("user", "account_type", user.AccountType, 255),
	)
}
