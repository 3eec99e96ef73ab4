package request

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainRequest "puda-approval-backend/internal/domain/request"
	"puda-approval-backend/pkg/id"
)

type Usecase struct{ repo domainRequest.Repository }

func NewUsecase(r domainRequest.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RequestDTO, error) {
	if _, err := domainRequest.ParseType(string(in.Type)); err != nil {
		return nil, err
	}
	if in.Title == "" || in.RequesterID == 0 {
		return nil, errors.New("invalid input")
	}

	r := &domainRequest.Request{
		RequestCode:          id.NewID32(),
		Type:                 in.Type,
		RequesterID:          in.RequesterID,
		Title:                in.Title,
		TargetEntity:         in.TargetEntity,
		Amount:               in.Amount,
		Status:               domainRequest.StatusDraft,
		CurrentApprovalStage: 0,
		CurrentApprovalCycle: 1,
	}
	if err := u.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toDTO(r), nil
}

func (u *Usecase) Get(ctx context.Context, t domainRequest.Type, code string) (*RequestDTO, error) {
	r, err := u.repo.GetByCode(ctx, t, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRequest.ErrNotFound
		}
		return nil, err
	}
	return toDTO(r), nil
}

func toDTO(r *domainRequest.Request) *RequestDTO {
	return &RequestDTO{
		RequestCode:          r.RequestCode,
		Type:                 string(r.Type),
		RequesterID:          r.RequesterID,
		Title:                r.Title,
		TargetEntity:         r.TargetEntity,
		Amount:               r.Amount,
		Status:               r.Status,
		CurrentApprovalStage: r.CurrentApprovalStage,
		CurrentApprovalCycle: r.CurrentApprovalCycle,
		CreatedAt:            r.CreatedAt,
	}
}
