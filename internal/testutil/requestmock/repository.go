package requestmock

import (
	"context"

	domain "puda-approval-backend/internal/domain/request"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn           func(ctx context.Context, r *domain.Request) error
	GetByCodeFn        func(ctx context.Context, t domain.Type, code string) (*domain.Request, error)
	GetByIDFn          func(ctx context.Context, t domain.Type, id uint64) (*domain.Request, error)
	GetByIDForUpdateFn func(ctx context.Context, t domain.Type, id uint64) (*domain.Request, error)
	SaveFn             func(ctx context.Context, r *domain.Request) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByCode(ctx context.Context, t domain.Type, code string) (*domain.Request, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, t, code)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, t domain.Type, id uint64) (*domain.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, t, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, t domain.Type, id uint64) (*domain.Request, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, t, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, r *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
