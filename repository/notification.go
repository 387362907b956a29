package repository

import (
	"context"

	"laundryhub-backend/models"

	"gorm.io/gorm"
)

type NotificationLogRepository interface {
	Create(ctx context.Context, entry *models.NotificationLog) error
}

type GormNotificationLogRepository struct {
	db *gorm.DB
}

func NewNotificationLogRepository(db *gorm.DB) *GormNotificationLogRepository {
	return &GormNotificationLogRepository{db: db}
}

func (r *GormNotificationLogRepository) Create(ctx context.Context, entry *models.NotificationLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return persistErr("log notification", "Failed to log notification", err)
	}
	return nil
}
