package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mealbase-dev/mealbase/internal/models"
)

type NotificationStore struct {
	db *gorm.DB
}

func (s *NotificationStore) List(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification

	if err := s.db.WithContext(ctx).Find(&notifications).Error; err != nil {
		return nil, translate("notification", err)
	}

	return notifications, nil
}

func (s *NotificationStore) ListByUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	var notifications []models.Notification

	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&notifications).Error; err != nil {
		return nil, translate("notification", err)
	}

	return notifications, nil
}

func (s *NotificationStore) Get(ctx context.Context, id uint) (*models.Notification, error) {
	var notification models.Notification

	if err := s.db.WithContext(ctx).First(&notification, id).Error; err != nil {
		return nil, translate("notification", err)
	}

	return &notification, nil
}

func (s *NotificationStore) Create(ctx context.Context, notification *models.Notification) error {
	if err := validateNotification(notification); err != nil {
		return err
	}

	return translate("notification", s.db.WithContext(ctx).Create(notification).Error)
}

func (s *NotificationStore) Update(ctx context.Context, id uint, fields *models.Notification) (*models.Notification, error) {
	if err := validateNotification(fields); err != nil {
		return nil, err
	}

	notification, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	notification.UserID = fields.UserID
	notification.Message = fields.Message
	notification.SentAt = fields.SentAt

	if err := s.db.WithContext(ctx).Save(notification).Error; err != nil {
		return nil, translate("notification", err)
	}

	return notification, nil
}

func (s *NotificationStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Notification{}, id)

	if result.Error != nil {
		return translate("notification", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("notification: %w", ErrNotFound)
	}

	return nil
}

func validateNotification(notification *models.Notification) error {
	return firstError(
		requiredID("notification", "user_id", notification.UserID),
		required("notification", "message", notification.Message),
	)
}
