package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	requestDomain "puda-approval-backend/internal/domain/request"
	"puda-approval-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Requests:      &RequestRepository{db: tx},
		Approvals:     &ApprovalRepository{db: tx},
		Tasks:         &TaskRepository{db: tx},
		Notifications: &NotificationRepository{db: tx},
		Users:         &UserRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(u.repos(tx))
	})
}

func (u *GormUoW) WithinRequestTx(ctx context.Context, t requestDomain.Type, requestID uint64, fn func(r uow.Repos, req *requestDomain.Request) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		// lock the request row up-front to prevent races
		req, err := r.Requests.GetByIDForUpdate(ctx, t, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return requestDomain.ErrNotFound
			}
			return err
		}
		return fn(r, req)
	})
}
