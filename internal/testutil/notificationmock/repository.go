package notificationmock

import (
	"context"

	domain "puda-approval-backend/internal/domain/notification"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, n *domain.Notification) error
	ListByUserFn func(ctx context.Context, userID uint64) ([]domain.Notification, error)
	MarkReadFn   func(ctx context.Context, id, userID uint64) error
	DeleteFn     func(ctx context.Context, id, userID uint64) error
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) ListByUser(ctx context.Context, userID uint64) ([]domain.Notification, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) MarkRead(ctx context.Context, id, userID uint64) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, id, userID)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id, userID uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, userID)
	}
	return nil
}
