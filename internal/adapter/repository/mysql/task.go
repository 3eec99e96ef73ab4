package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	requestDomain "puda-approval-backend/internal/domain/request"
	taskDomain "puda-approval-backend/internal/domain/task"
)

type TaskRepository struct{ db *gorm.DB }

func NewTaskRepository(db *gorm.DB) *TaskRepository { return &TaskRepository{db: db} }

func (r *TaskRepository) Create(ctx context.Context, t *taskDomain.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, assigneeID uint64, status string) ([]taskDomain.Task, error) {
	var out []taskDomain.Task
	q := r.db.WithContext(ctx).Where("assignee_id = ?", assigneeID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

// CompletePending closes every still-open task of the given type for a
// request in one statement. Safe to repeat; re-running matches zero rows.
func (r *TaskRepository) CompletePending(ctx context.Context, rt requestDomain.Type, requestID uint64, tt taskDomain.Type) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&taskDomain.Task{}).
		Where("request_type = ? AND request_id = ? AND task_type = ? AND status = ?",
			rt, requestID, tt, taskDomain.StatusPending).
		Updates(map[string]any{
			"status":       taskDomain.StatusCompleted,
			"completed_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}
