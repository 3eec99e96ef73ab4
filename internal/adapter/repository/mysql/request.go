package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	requestDomain "puda-approval-backend/internal/domain/request"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, req *requestDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestRepository) Save(ctx context.Context, req *requestDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *RequestRepository) GetByCode(ctx context.Context, t requestDomain.Type, code string) (*requestDomain.Request, error) {
	var out requestDomain.Request
	res := r.db.WithContext(ctx).
		Where("request_type = ? AND request_code = ?", t, code).
		First(&out)
	return &out, res.Error
}

func (r *RequestRepository) GetByID(ctx context.Context, t requestDomain.Type, id uint64) (*requestDomain.Request, error) {
	var out requestDomain.Request
	res := r.db.WithContext(ctx).
		Where("request_type = ? AND id = ?", t, id).
		First(&out)
	return &out, res.Error
}

// GetByIDForUpdate locks the row until the surrounding tx ends.
func (r *RequestRepository) GetByIDForUpdate(ctx context.Context, t requestDomain.Type, id uint64) (*requestDomain.Request, error) {
	var out requestDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_type = ? AND id = ?", t, id).
		First(&out)
	return &out, res.Error
}
