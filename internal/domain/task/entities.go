package task

import (
	"errors"
	"time"

	"puda-approval-backend/internal/domain/request"
)

var ErrNotFound = errors.New("task not found")

type Type string

const (
	TypeApproval         Type = "approval"
	TypeChangesRequested Type = "changes_requested"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Table: tasks. One work item per eligible assignee per stage entry. The
// engine does not enforce single-claim exclusivity here; the first decision
// wins and the rest are marked completed in bulk.
type Task struct {
	ID          uint64       `gorm:"column:id;primaryKey;autoIncrement"`
	AssigneeID  uint64       `gorm:"column:assignee_id;not null;index:idx_tasks_assignee_status"`
	RequestType request.Type `gorm:"column:request_type;type:varchar(16);not null;index:idx_tasks_request"`
	RequestID   uint64       `gorm:"column:request_id;not null;index:idx_tasks_request"`
	TaskType    Type         `gorm:"column:task_type;type:varchar(32);not null"`
	Title       string       `gorm:"column:title;type:varchar(255);not null"`
	Description string       `gorm:"column:description;type:text"`
	Status      string       `gorm:"column:status;type:varchar(16);not null;default:'pending';index:idx_tasks_assignee_status"`
	// Informational SLA deadline; nothing enforces it.
	DueDate     *time.Time `gorm:"column:due_date"`
	CompletedAt *time.Time `gorm:"column:completed_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Task) TableName() string { return "tasks" }
