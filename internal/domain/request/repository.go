package request

import "context"

type Repository interface {
	Create(ctx context.Context, r *Request) error

	// Lookup by public request_code
	GetByCode(ctx context.Context, t Type, code string) (*Request, error)

	// Lookup by numeric id; the ForUpdate variant locks the row for the
	// duration of the surrounding transaction.
	GetByID(ctx context.Context, t Type, id uint64) (*Request, error)
	GetByIDForUpdate(ctx context.Context, t Type, id uint64) (*Request, error)

	Save(ctx context.Context, r *Request) error
}
