package gormstore

import (
	"context"

	notificationDomain "loan-ledger/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notificationDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByLoanID(ctx context.Context, loanID string) ([]notificationDomain.Notification, error) {
	var out []notificationDomain.Notification
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("sent_date DESC, id DESC").
		Find(&out).Error
	return out, err
}
