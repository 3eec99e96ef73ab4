package mysql

import (
	"context"

	"gorm.io/gorm"

	userDomain "puda-approval-backend/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *UserRepository) ListByRole(ctx context.Context, role userDomain.Role) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Where("role = ?", role).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}
