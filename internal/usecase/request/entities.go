package request

import (
	"time"

	domainRequest "puda-approval-backend/internal/domain/request"
)

type CreateInput struct {
	Type         domainRequest.Type
	RequesterID  uint64
	Title        string
	TargetEntity string
	Amount       float64
}

type RequestDTO struct {
	RequestCode          string    `json:"request_code"`
	Type                 string    `json:"request_type"`
	RequesterID          uint64    `json:"requester_id"`
	Title                string    `json:"title"`
	TargetEntity         string    `json:"target_entity,omitempty"`
	Amount               float64   `json:"amount"`
	Status               string    `json:"status"`
	CurrentApprovalStage int       `json:"current_approval_stage"`
	CurrentApprovalCycle int       `json:"current_approval_cycle"`
	CreatedAt            time.Time `json:"created_at"`
}
