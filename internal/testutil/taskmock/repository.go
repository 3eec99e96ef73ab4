package taskmock

import (
	"context"

	requestDomain "puda-approval-backend/internal/domain/request"
	domain "puda-approval-backend/internal/domain/task"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, t *domain.Task) error
	ListByAssigneeFn  func(ctx context.Context, assigneeID uint64, status string) ([]domain.Task, error)
	CompletePendingFn func(ctx context.Context, rt requestDomain.Type, requestID uint64, tt domain.Type) (int64, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListByAssignee(ctx context.Context, assigneeID uint64, status string) ([]domain.Task, error) {
	if m.ListByAssigneeFn != nil {
		return m.ListByAssigneeFn(ctx, assigneeID, status)
	}
	return nil, nil
}

func (m *Repo) CompletePending(ctx context.Context, rt requestDomain.Type, requestID uint64, tt domain.Type) (int64, error) {
	if m.CompletePendingFn != nil {
		return m.CompletePendingFn(ctx, rt, requestID, tt)
	}
	return 0, nil
}
