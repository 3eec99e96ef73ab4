package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	List(ctx context.Context) ([]User, error)
}
