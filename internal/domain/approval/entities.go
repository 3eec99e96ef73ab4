package approval

import (
	"errors"
	"time"

	"puda-approval-backend/internal/domain/request"
)

var (
	// ErrNotFound: the request has no pending approval in its current cycle.
	ErrNotFound = errors.New("no pending approval found")
	// ErrUnauthorized: the approver's role does not match the stage role.
	ErrUnauthorized = errors.New("approver role does not match stage role")
	// ErrConflict: the pending record was decided by someone else first.
	// Callers should re-read before retrying.
	ErrConflict = errors.New("approval already decided")
)

// Outcome is the machine-readable decision state. The human-readable Status
// string ("Manager approved") is rendered once by the workflow package;
// queries never parse it.
type Outcome string

const (
	OutcomePending          Outcome = "pending"
	OutcomeApproved         Outcome = "approved"
	OutcomeRejected         Outcome = "rejected"
	OutcomeChangesRequested Outcome = "changes_requested"
)

// Table: approvals. One row per stage attempt per cycle. Rows are created
// by the engine when a stage opens, mutated exactly once when an approver
// decides, and never deleted; resubmission flips is_current_cycle to false
// en masse, keeping the full audit trail.
type Record struct {
	ID          uint64       `gorm:"column:id;primaryKey;autoIncrement"`
	RequestType request.Type `gorm:"column:request_type;type:varchar(16);not null;index:idx_approvals_request"`
	RequestID   uint64       `gorm:"column:request_id;not null;index:idx_approvals_request"`
	Stage       int          `gorm:"column:stage;not null"`
	// Null until claimed by a decision.
	ApproverID *uint64 `gorm:"column:approver_id"`
	Outcome    Outcome `gorm:"column:outcome;type:varchar(32);not null;default:'pending';index"`
	// Display text: "pending", "changes_requested", or a rendered
	// role-qualified decision string.
	Status         string     `gorm:"column:status;type:varchar(64);not null;default:'pending'"`
	Comments       string     `gorm:"column:comments;type:text"`
	ApprovedAt     *time.Time `gorm:"column:approved_at"`
	ApprovalCycle  int        `gorm:"column:approval_cycle;not null"`
	IsCurrentCycle bool       `gorm:"column:is_current_cycle;not null;default:true"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Record) TableName() string { return "approvals" }

// Decision carries the one-shot claim+decide mutation applied to a pending
// record.
type Decision struct {
	ApproverID uint64
	Outcome    Outcome
	Status     string
	Comments   string
	DecidedAt  time.Time
}
