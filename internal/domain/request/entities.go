package request

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("request not found")
	ErrInvalidState = errors.New("request is not in a submittable state")
	ErrUnknownType  = errors.New("unknown request type")
)

// Type discriminates the request families that flow through the approval
// pipeline. The stage tables are keyed by it; anything else is rejected
// up-front instead of falling through to a string lookup at decision time.
type Type string

const (
	TypeInvestment  Type = "investment"
	TypeCashRequest Type = "cash_request"
)

func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeInvestment, TypeCashRequest:
		return t, nil
	}
	return "", ErrUnknownType
}

// Statuses that are not role-qualified decision strings. Decision strings
// ("Manager approved", "Finance rejected") are rendered by the workflow
// package and stored here verbatim.
const (
	StatusDraft            = "draft"
	StatusOpportunity      = "opportunity"
	StatusNew              = "new"
	StatusChangesRequested = "changes_requested"
	StatusApproved         = "approved"
)

// Table: requests
type Request struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	RequestCode string `gorm:"column:request_code;type:char(32);not null;uniqueIndex:ux_requests_code_active"`
	Type        Type   `gorm:"column:request_type;type:varchar(16);not null;index"`
	RequesterID uint64 `gorm:"column:requester_id;not null;index"`

	// Descriptive fields; opaque to the workflow engine, echoed back in
	// notification summaries.
	Title        string  `gorm:"column:title;type:varchar(255);not null"`
	TargetEntity string  `gorm:"column:target_entity;type:varchar(255)"`
	Amount       float64 `gorm:"column:amount;type:decimal(18,2)"`

	Status               string `gorm:"column:status;type:varchar(64);not null;default:'draft'"`
	CurrentApprovalStage int    `gorm:"column:current_approval_stage;not null;default:0"`
	// Starts at 1, only ever increases (resubmission after changes requested).
	CurrentApprovalCycle int `gorm:"column:current_approval_cycle;not null;default:1"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Request) TableName() string { return "requests" }
