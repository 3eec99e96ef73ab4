package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	approvalDomain "puda-approval-backend/internal/domain/approval"
	requestDomain "puda-approval-backend/internal/domain/request"
	"puda-approval-backend/internal/usecase/workflow"
)

type ApprovalHandler struct {
	engine    *workflow.Engine
	requests  requestDomain.Repository
	approvals approvalDomain.Repository
}

func NewApprovalHandler(engine *workflow.Engine, requests requestDomain.Repository, approvals approvalDomain.Repository) *ApprovalHandler {
	return &ApprovalHandler{engine: engine, requests: requests, approvals: approvals}
}

type decisionReq struct {
	ApproverID uint64 `json:"approver_id" validate:"required"`
	Action     string `json:"action"      validate:"required,oneof=approve reject changes_requested"`
	Comments   string `json:"comments"    validate:"max=2000"`
}

// Decide records one approver's decision on the pending stage.
func (h *ApprovalHandler) Decide(c echo.Context) error {
	t, code, err := pathRequestRef(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	target, err := h.requests.GetByCode(c.Request().Context(), t, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: requestDomain.ErrNotFound.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "lookup failed"})
	}

	rec, err := h.engine.ProcessApproval(c.Request().Context(), workflow.ProcessInput{
		RequestType: t,
		RequestID:   target.ID,
		ApproverID:  req.ApproverID,
		Action:      workflow.Action(req.Action),
		Comments:    req.Comments,
	})
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// History returns the full ledger, all cycles, for audit display.
func (h *ApprovalHandler) History(c echo.Context) error {
	t, code, err := pathRequestRef(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	target, err := h.requests.GetByCode(c.Request().Context(), t, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: requestDomain.ErrNotFound.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "lookup failed"})
	}
	records, err := h.approvals.ListByRequest(c.Request().Context(), t, target.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "lookup failed"})
	}
	return c.JSON(http.StatusOK, records)
}
