package workflow

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"puda-approval-backend/internal/domain/approval"
	"puda-approval-backend/internal/domain/notification"
	"puda-approval-backend/internal/domain/request"
	"puda-approval-backend/internal/domain/task"
	"puda-approval-backend/internal/domain/user"
)

// Notifier turns workflow events into per-recipient notifications. Every
// method is best-effort: a decision already committed to the ledger is the
// authoritative fact, so persistence failures here are logged and dropped,
// never propagated.
type Notifier struct {
	notifs notification.Repository
	log    zerolog.Logger
}

func NewNotifier(notifs notification.Repository, log zerolog.Logger) *Notifier {
	return &Notifier{notifs: notifs, log: log}
}

// RequestApproved tells the requester the final stage signed off.
func (n *Notifier) RequestApproved(ctx context.Context, req *request.Request) {
	note := &notification.Notification{
		UserID:      req.RequesterID,
		Title:       "Request approved",
		Message:     fmt.Sprintf("Your %s %q has been approved at every stage.", typeLabel(req.Type), req.Title),
		Type:        notification.TypeRequestApproved,
		RelatedType: req.Type,
		RelatedID:   req.ID,
	}
	n.create(ctx, note)
}

// DecisionToRequester tells the requester their request was rejected or sent
// back for changes, and by whom.
func (n *Notifier) DecisionToRequester(ctx context.Context, req *request.Request, action Action, by user.Role, comments string) {
	note := &notification.Notification{
		UserID:      req.RequesterID,
		RelatedType: req.Type,
		RelatedID:   req.ID,
	}
	switch action {
	case ActionReject:
		note.Type = notification.TypeRequestRejected
		note.Title = "Request rejected"
		note.Message = fmt.Sprintf("%s rejected your %s %q.", RoleName(by), typeLabel(req.Type), req.Title)
	case ActionChangesRequested:
		note.Type = notification.TypeChangesRequested
		note.Title = "Changes requested"
		note.Message = fmt.Sprintf("%s requested changes to your %s %q.", RoleName(by), typeLabel(req.Type), req.Title)
	default:
		return
	}
	if comments != "" {
		note.Message += " Comments: " + comments
	}
	n.create(ctx, note)
}

// HigherStageAction tells every previous approver of the current cycle that
// a later stage reversed the decision they had already signed off on.
func (n *Notifier) HigherStageAction(ctx context.Context, req *request.Request, prior []approval.Record, action Action, by user.Role, comments string) {
	verb := "rejected"
	if action == ActionChangesRequested {
		verb = "sent back for changes"
	}
	for _, rec := range prior {
		if rec.ApproverID == nil {
			continue
		}
		note := &notification.Notification{
			UserID:      *rec.ApproverID,
			Title:       "Approval superseded",
			Message:     fmt.Sprintf("The %s %q, which you approved at stage %d, was %s by %s.", typeLabel(req.Type), req.Title, rec.Stage, verb, RoleName(by)),
			Type:        notification.TypeHigherStageAction,
			RelatedType: req.Type,
			RelatedID:   req.ID,
		}
		meta := notification.HigherStageActionMeta{
			PreviousStage: rec.Stage,
			Action:        string(action),
			Comments:      comments,
			Summary: notification.RequestSummary{
				Target: req.TargetEntity,
				Amount: req.Amount,
				Type:   req.Type,
			},
		}
		if err := note.SetMetadata(meta); err != nil {
			n.log.Warn().Err(err).Msg("notifier: metadata encode failed")
		}
		n.create(ctx, note)
	}
}

// SLABreach tells an assignee their review task is past due. Invoked by an
// external scanner; the engine itself never enforces SLAs.
func (n *Notifier) SLABreach(ctx context.Context, req *request.Request, t *task.Task) {
	if t.DueDate == nil {
		return
	}
	note := &notification.Notification{
		UserID:      t.AssigneeID,
		Title:       "Review overdue",
		Message:     fmt.Sprintf("Your review of %s %q was due %s.", typeLabel(req.Type), req.Title, t.DueDate.Format("2006-01-02 15:04 MST")),
		Type:        notification.TypeSLABreach,
		RelatedType: req.Type,
		RelatedID:   req.ID,
	}
	meta := notification.SLABreachMeta{TaskID: t.ID, DueDate: *t.DueDate}
	if err := note.SetMetadata(meta); err != nil {
		n.log.Warn().Err(err).Msg("notifier: metadata encode failed")
	}
	n.create(ctx, note)
}

func (n *Notifier) create(ctx context.Context, note *notification.Notification) {
	if err := n.notifs.Create(ctx, note); err != nil {
		n.log.Warn().
			Err(err).
			Uint64("user_id", note.UserID).
			Str("type", string(note.Type)).
			Msg("notifier: notification dropped")
	}
}

func typeLabel(t request.Type) string {
	switch t {
	case request.TypeInvestment:
		return "investment request"
	case request.TypeCashRequest:
		return "cash request"
	}
	return "request"
}
