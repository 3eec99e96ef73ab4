package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error

	// Newest first.
	ListByUser(ctx context.Context, userID uint64) ([]Notification, error)

	// Both are scoped by userID so recipients can only touch their own rows.
	MarkRead(ctx context.Context, id, userID uint64) error
	Delete(ctx context.Context, id, userID uint64) error
}
