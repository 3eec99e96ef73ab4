package usermock

import (
	"context"

	domain "puda-approval-backend/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, u *domain.User) error
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.User, error)
	ListByRoleFn func(ctx context.Context, role domain.Role) ([]domain.User, error)
	ListFn       func(ctx context.Context) ([]domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if m.ListByRoleFn != nil {
		return m.ListByRoleFn(ctx, role)
	}
	return nil, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
