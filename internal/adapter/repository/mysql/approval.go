package mysql

import (
	"context"

	"gorm.io/gorm"

	approvalDomain "puda-approval-backend/internal/domain/approval"
	requestDomain "puda-approval-backend/internal/domain/request"
)

type ApprovalRepository struct{ db *gorm.DB }

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository { return &ApprovalRepository{db: db} }

func (r *ApprovalRepository) Create(ctx context.Context, rec *approvalDomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ApprovalRepository) GetPending(ctx context.Context, t requestDomain.Type, requestID uint64, cycle int) (*approvalDomain.Record, error) {
	var out approvalDomain.Record
	res := r.db.WithContext(ctx).
		Where("request_type = ? AND request_id = ? AND approval_cycle = ? AND outcome = ? AND is_current_cycle = ?",
			t, requestID, cycle, approvalDomain.OutcomePending, true).
		First(&out)
	return &out, res.Error
}

// DecideIfPending is the optimistic claim: the WHERE clause only matches a
// still-pending row, so a lost race shows up as zero rows affected rather
// than a silent overwrite.
func (r *ApprovalRepository) DecideIfPending(ctx context.Context, id uint64, d approvalDomain.Decision) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&approvalDomain.Record{}).
		Where("id = ? AND outcome = ?", id, approvalDomain.OutcomePending).
		Updates(map[string]any{
			"approver_id": d.ApproverID,
			"outcome":     d.Outcome,
			"status":      d.Status,
			"comments":    d.Comments,
			"approved_at": d.DecidedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *ApprovalRepository) ListApprovedInCycle(ctx context.Context, t requestDomain.Type, requestID uint64, cycle int) ([]approvalDomain.Record, error) {
	var out []approvalDomain.Record
	res := r.db.WithContext(ctx).
		Where("request_type = ? AND request_id = ? AND approval_cycle = ? AND outcome = ?",
			t, requestID, cycle, approvalDomain.OutcomeApproved).
		Order("stage ASC").
		Find(&out)
	return out, res.Error
}

func (r *ApprovalRepository) ListByRequest(ctx context.Context, t requestDomain.Type, requestID uint64) ([]approvalDomain.Record, error) {
	var out []approvalDomain.Record
	res := r.db.WithContext(ctx).
		Where("request_type = ? AND request_id = ?", t, requestID).
		Order("approval_cycle ASC, stage ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ApprovalRepository) CloseCycle(ctx context.Context, t requestDomain.Type, requestID uint64, cycle int) error {
	return r.db.WithContext(ctx).
		Model(&approvalDomain.Record{}).
		Where("request_type = ? AND request_id = ? AND approval_cycle = ?", t, requestID, cycle).
		Update("is_current_cycle", false).Error
}
