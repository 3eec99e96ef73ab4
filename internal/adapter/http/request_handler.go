package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	requestDomain "puda-approval-backend/internal/domain/request"
	requestUC "puda-approval-backend/internal/usecase/request"
	"puda-approval-backend/internal/usecase/workflow"
)

type RequestHandler struct {
	uc       *requestUC.Usecase
	engine   *workflow.Engine
	requests requestDomain.Repository
}

func NewRequestHandler(uc *requestUC.Usecase, engine *workflow.Engine, requests requestDomain.Repository) *RequestHandler {
	return &RequestHandler{uc: uc, engine: engine, requests: requests}
}

type createRequestReq struct {
	Type         string  `json:"request_type"  validate:"required,oneof=investment cash_request"`
	RequesterID  uint64  `json:"requester_id"  validate:"required"`
	Title        string  `json:"title"         validate:"required,max=255"`
	TargetEntity string  `json:"target_entity" validate:"max=255"`
	Amount       float64 `json:"amount"        validate:"gte=0,dec2"`
}

func (h *RequestHandler) Create(c echo.Context) error {
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), requestUC.CreateInput{
		Type:         requestDomain.Type(req.Type),
		RequesterID:  req.RequesterID,
		Title:        req.Title,
		TargetEntity: req.TargetEntity,
		Amount:       req.Amount,
	})
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RequestHandler) Get(c echo.Context) error {
	t, code, err := pathRequestRef(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	dto, err := h.uc.Get(c.Request().Context(), t, code)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

// Submit starts the approval workflow. For a request sitting in
// changes_requested it starts the next approval cycle.
func (h *RequestHandler) Submit(c echo.Context) error {
	t, code, err := pathRequestRef(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	req, err := h.resolve(c, t, code)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	rec, err := h.engine.StartApprovalWorkflow(c.Request().Context(), t, req.ID)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// AdminReview is the investment-only stage-0 entry point.
func (h *RequestHandler) AdminReview(c echo.Context) error {
	code := c.Param("request_code")
	if !reHex32.MatchString(code) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_code"})
	}
	req, err := h.resolve(c, requestDomain.TypeInvestment, code)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	rec, err := h.engine.StartAdminReview(c.Request().Context(), req.ID)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *RequestHandler) resolve(c echo.Context, t requestDomain.Type, code string) (*requestDomain.Request, error) {
	req, err := h.requests.GetByCode(c.Request().Context(), t, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requestDomain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func pathRequestRef(c echo.Context) (requestDomain.Type, string, error) {
	t, err := requestDomain.ParseType(c.Param("request_type"))
	if err != nil {
		return "", "", err
	}
	code := c.Param("request_code")
	if !reHex32.MatchString(code) {
		return "", "", errors.New("invalid request_code")
	}
	return t, code, nil
}
