package task

import (
	"context"

	"puda-approval-backend/internal/domain/request"
)

type Repository interface {
	Create(ctx context.Context, t *Task) error

	// status filters when non-empty.
	ListByAssignee(ctx context.Context, assigneeID uint64, status string) ([]Task, error)

	// CompletePending marks every pending task of the given type for a
	// request completed. Idempotent; returns the number of rows touched.
	CompletePending(ctx context.Context, rt request.Type, requestID uint64, tt Type) (int64, error)
}
