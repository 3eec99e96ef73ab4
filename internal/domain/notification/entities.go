package notification

import (
	"encoding/json"
	"errors"
	"time"

	"puda-approval-backend/internal/domain/request"
)

var ErrNotFound = errors.New("notification not found")

type Type string

const (
	TypeHigherStageAction Type = "higher_stage_action"
	TypeRequestApproved   Type = "request_approved"
	TypeRequestRejected   Type = "request_rejected"
	TypeChangesRequested  Type = "changes_requested"
	TypeSLABreach         Type = "sla_breach"
)

// Table: notifications. One-way messages; only the read flag mutates, and
// the recipient may delete their own rows.
type Notification struct {
	ID          uint64       `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      uint64       `gorm:"column:user_id;not null;index"`
	Title       string       `gorm:"column:title;type:varchar(255);not null"`
	Message     string       `gorm:"column:message;type:text;not null"`
	Type        Type         `gorm:"column:type;type:varchar(32);not null"`
	RelatedType request.Type `gorm:"column:related_type;type:varchar(16)"`
	RelatedID   uint64       `gorm:"column:related_id"`
	Read        bool         `gorm:"column:is_read;not null;default:false"`
	// JSON payload; shape depends on Type (see the *Meta structs).
	Metadata []byte `gorm:"column:metadata;type:json"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Notification) TableName() string { return "notifications" }

// RequestSummary is the client-facing snapshot attached to reversal notices.
type RequestSummary struct {
	Target string       `json:"target"`
	Amount float64      `json:"amount"`
	Type   request.Type `json:"type"`
}

// HigherStageActionMeta rides on TypeHigherStageAction: a later stage
// reversed a decision this recipient had already approved.
type HigherStageActionMeta struct {
	PreviousStage int            `json:"previous_stage"`
	Action        string         `json:"action"`
	Comments      string         `json:"comments,omitempty"`
	Summary       RequestSummary `json:"request_summary"`
}

// SLABreachMeta rides on TypeSLABreach.
type SLABreachMeta struct {
	TaskID  uint64    `json:"task_id"`
	DueDate time.Time `json:"due_date"`
}

func (n *Notification) SetMetadata(m any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	n.Metadata = b
	return nil
}

// HigherStageActionMeta decodes the metadata payload; ok is false when the
// notification is of a different type or carries no payload.
func (n *Notification) HigherStageActionMeta() (HigherStageActionMeta, bool) {
	var m HigherStageActionMeta
	if n.Type != TypeHigherStageAction || len(n.Metadata) == 0 {
		return m, false
	}
	if err := json.Unmarshal(n.Metadata, &m); err != nil {
		return m, false
	}
	return m, true
}
