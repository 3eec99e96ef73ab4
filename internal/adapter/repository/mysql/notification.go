package mysql

import (
	"context"

	"gorm.io/gorm"

	notificationDomain "puda-approval-backend/internal/domain/notification"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notificationDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint64) ([]notificationDomain.Notification, error) {
	var out []notificationDomain.Notification
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uint64) error {
	res := r.db.WithContext(ctx).
		Model(&notificationDomain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notificationDomain.ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id, userID uint64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&notificationDomain.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notificationDomain.ErrNotFound
	}
	return nil
}
