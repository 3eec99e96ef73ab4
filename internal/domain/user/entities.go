package user

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

// Role is the closed set of approval roles. Stage tables bind each stage to
// exactly one of these.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleManager         Role = "manager"
	RoleCommitteeMember Role = "committee_member"
	RoleFinance         Role = "finance"
	// Requesters hold no approval stage.
	RoleAnalyst Role = "analyst"
)

type User struct {
	ID    uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Name  string `gorm:"column:name;type:varchar(128);not null"`
	Email string `gorm:"column:email;type:varchar(255);uniqueIndex"`
	Role  Role   `gorm:"column:role;type:varchar(32);not null;index"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "users" }
