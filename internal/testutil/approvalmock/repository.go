package approvalmock

import (
	"context"

	domain "puda-approval-backend/internal/domain/approval"
	requestDomain "puda-approval-backend/internal/domain/request"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn              func(ctx context.Context, rec *domain.Record) error
	GetPendingFn          func(ctx context.Context, t requestDomain.Type, requestID uint64, cycle int) (*domain.Record, error)
	DecideIfPendingFn     func(ctx context.Context, id uint64, d domain.Decision) (bool, error)
	ListApprovedInCycleFn func(ctx context.Context, t requestDomain.Type, requestID uint64, cycle int) ([]domain.Record, error)
	ListByRequestFn       func(ctx context.Context, t requestDomain.Type, requestID uint64) ([]domain.Record, error)
	CloseCycleFn          func(ctx context.Context, t requestDomain.Type, requestID uint64, cycle int) error
}

func (m *Repo) Create(ctx context.Context, rec *domain.Record) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, rec)
	}
	return nil
}

func (m *Repo) GetPending(ctx context.Context, t requestDomain.Type, requestID uint64, cycle int) (*domain.Record, error) {
	if m.GetPendingFn != nil {
		return m.GetPendingFn(ctx, t, requestID, cycle)
	}
	return nil, context.Canceled
}

func (m *Repo) DecideIfPending(ctx context.Context, id uint64, d domain.Decision) (bool, error) {
	if m.DecideIfPendingFn != nil {
		return m.DecideIfPendingFn(ctx, id, d)
	}
	return true, nil
}

func (m *Repo) ListApprovedInCycle(ctx context.Context, t requestDomain.Type, requestID uint64, cycle int) ([]domain.Record, error) {
	if m.ListApprovedInCycleFn != nil {
		return m.ListApprovedInCycleFn(ctx, t, requestID, cycle)
	}
	return nil, nil
}

func (m *Repo) ListByRequest(ctx context.Context, t requestDomain.Type, requestID uint64) ([]domain.Record, error) {
	if m.ListByRequestFn != nil {
		return m.ListByRequestFn(ctx, t, requestID)
	}
	return nil, nil
}

func (m *Repo) CloseCycle(ctx context.Context, t requestDomain.Type, requestID uint64, cycle int) error {
	if m.CloseCycleFn != nil {
		return m.CloseCycleFn(ctx, t, requestID, cycle)
	}
	return nil
}
