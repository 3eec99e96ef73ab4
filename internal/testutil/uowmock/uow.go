package uowmock

import (
	"context"
	"errors"

	"puda-approval-backend/internal/domain/request"
	"puda-approval-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinRequestTxFn func(ctx context.Context, t request.Type, requestID uint64, fn func(r uow.Repos, req *request.Request) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinRequestTx(ctx context.Context, t request.Type, requestID uint64, fn func(r uow.Repos, req *request.Request) error) error {
	if m.WithinRequestTxFn != nil {
		return m.WithinRequestTxFn(ctx, t, requestID, fn)
	}
	return errUnimplemented
}
