package uow

import (
	"context"

	"puda-approval-backend/internal/domain/approval"
	"puda-approval-backend/internal/domain/notification"
	"puda-approval-backend/internal/domain/request"
	"puda-approval-backend/internal/domain/task"
	"puda-approval-backend/internal/domain/user"
)

type Repos struct {
	Requests      request.Repository
	Approvals     approval.Repository
	Tasks         task.Repository
	Notifications notification.Repository
	Users         user.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the request row first, then pass it in
	WithinRequestTx(ctx context.Context, t request.Type, requestID uint64, fn func(r Repos, req *request.Request) error) error
}
