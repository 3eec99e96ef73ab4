package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"puda-approval-backend/internal/domain/approval"
	"puda-approval-backend/internal/domain/request"
	"puda-approval-backend/internal/domain/task"
	"puda-approval-backend/internal/domain/uow"
	"puda-approval-backend/internal/domain/user"
)

// Engine drives a request through its fixed stage sequence. Each operation
// commits the authoritative ledger/request mutation in one transaction, then
// fans out task and notification side effects best-effort: those are derived
// views and must never roll back a recorded decision.
type Engine struct {
	uow      uow.UnitOfWork
	tasks    task.Repository
	users    user.Repository
	notifier *Notifier
	log      zerolog.Logger
}

func NewEngine(tx uow.UnitOfWork, tasks task.Repository, users user.Repository, notifier *Notifier, log zerolog.Logger) *Engine {
	return &Engine{uow: tx, tasks: tasks, users: users, notifier: notifier, log: log}
}

type ProcessInput struct {
	RequestType request.Type
	RequestID   uint64
	ApproverID  uint64
	Action      Action
	Comments    string
}

// stageOpening records "stage n opened for this request" so that review
// tasks can be created after the transaction commits.
type stageOpening struct {
	stage int
	def   Stage
}

type priorNotice struct {
	records  []approval.Record
	action   Action
	by       user.Role
	comments string
}

// sideEffects is everything deferred to after commit.
type sideEffects struct {
	req           request.Request // snapshot of the mutated request
	completeTasks []task.Type
	openings      []stageOpening
	changesTask   bool
	tellRequester Action // zero value = no requester notice
	decidedBy     user.Role
	comments      string
	prior         *priorNotice
	approved      bool
}

// StartApprovalWorkflow opens stage 0 for a request sitting in draft. A
// request in changes_requested or a rejected status is a resubmission and
// starts a fresh approval cycle: the finished cycle's records are frozen
// (is_current_cycle=false), the cycle counter increments, dangling tasks
// from the old cycle are completed, and stage 0 of the new cycle opens.
// Any other status is an invalid state; that is also what stops a double
// submit from violating the single-pending invariant.
func (e *Engine) StartApprovalWorkflow(ctx context.Context, t request.Type, requestID uint64) (*approval.Record, error) {
	var (
		rec *approval.Record
		fx  sideEffects
	)
	err := e.uow.WithinRequestTx(ctx, t, requestID, func(r uow.Repos, req *request.Request) error {
		switch {
		case req.Status == request.StatusDraft:
			// first submission of the current cycle
		case req.Status == request.StatusChangesRequested || IsRejectedStatus(req.Status):
			// Freezing the cycle also retires the stage-0 record a rejection
			// reopened, so the new cycle's frontier is unambiguous.
			if err := r.Approvals.CloseCycle(ctx, t, req.ID, req.CurrentApprovalCycle); err != nil {
				return err
			}
			req.CurrentApprovalCycle++
			fx.completeTasks = append(fx.completeTasks, task.TypeChangesRequested, task.TypeApproval)
		default:
			return fmt.Errorf("%w: status %q", request.ErrInvalidState, req.Status)
		}

		var err error
		rec, err = e.openStage(ctx, r, req, 0, &fx)
		if err != nil {
			return err
		}
		req.Status = submittedStatus(t)
		req.CurrentApprovalStage = 0
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}
		fx.req = *req
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.apply(ctx, &fx)
	return rec, nil
}

// StartAdminReview is the investment-only stage-0 entry point.
func (e *Engine) StartAdminReview(ctx context.Context, requestID uint64) (*approval.Record, error) {
	return e.StartApprovalWorkflow(ctx, request.TypeInvestment, requestID)
}

// ProcessApproval records one approver's decision on the single pending
// current-cycle record. The claim is a conditional update on the pending
// status: whoever loses the race gets ErrConflict and should re-read.
func (e *Engine) ProcessApproval(ctx context.Context, in ProcessInput) (*approval.Record, error) {
	if _, err := ParseAction(string(in.Action)); err != nil {
		return nil, err
	}

	var (
		rec *approval.Record
		fx  sideEffects
	)
	err := e.uow.WithinRequestTx(ctx, in.RequestType, in.RequestID, func(r uow.Repos, req *request.Request) error {
		pending, err := r.Approvals.GetPending(ctx, in.RequestType, req.ID, req.CurrentApprovalCycle)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return approval.ErrNotFound
			}
			return err
		}

		st, ok := stageAt(in.RequestType, pending.Stage)
		if !ok {
			return fmt.Errorf("workflow: pending record at unknown stage %d for %s", pending.Stage, in.RequestType)
		}

		approver, err := r.Users.GetByID(ctx, in.ApproverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrNotFound
			}
			return err
		}
		if approver.Role != st.Role {
			return fmt.Errorf("%w: need %s, got %s", approval.ErrUnauthorized, st.Role, approver.Role)
		}

		now := time.Now().UTC()
		d := approval.Decision{ApproverID: in.ApproverID, Comments: in.Comments, DecidedAt: now}
		switch in.Action {
		case ActionApprove:
			d.Outcome = approval.OutcomeApproved
			d.Status = Decision{Role: st.Role, Outcome: approval.OutcomeApproved}.Render()
		case ActionReject:
			d.Outcome = approval.OutcomeRejected
			d.Status = Decision{Role: st.Role, Outcome: approval.OutcomeRejected}.Render()
		case ActionChangesRequested:
			d.Outcome = approval.OutcomeChangesRequested
			d.Status = string(approval.OutcomeChangesRequested)
		}

		claimed, err := r.Approvals.DecideIfPending(ctx, pending.ID, d)
		if err != nil {
			return err
		}
		if !claimed {
			return approval.ErrConflict
		}
		pending.ApproverID = &d.ApproverID
		pending.Outcome = d.Outcome
		pending.Status = d.Status
		pending.Comments = d.Comments
		pending.ApprovedAt = &now
		rec = pending

		fx.completeTasks = append(fx.completeTasks, task.TypeApproval)
		fx.decidedBy = st.Role
		fx.comments = in.Comments

		switch in.Action {
		case ActionApprove:
			// A stage-0 admin sign-off makes the request externally "new"
			// rather than surfacing the raw decision string.
			if st.Role == user.RoleAdmin && pending.Stage == 0 {
				req.Status = request.StatusNew
			} else {
				req.Status = d.Status
			}
			if err := e.advance(ctx, r, req, pending.Stage, &fx); err != nil {
				return err
			}
		case ActionReject:
			req.Status = d.Status
			if err := e.noticePreviousApprovers(ctx, r, req, pending.Stage, in.Action, st.Role, in.Comments, &fx); err != nil {
				return err
			}
			// Back to the top of the sequence, same cycle: the requester
			// revises and the first stage re-reviews.
			req.CurrentApprovalStage = 0
			if _, err := e.openStage(ctx, r, req, 0, &fx); err != nil {
				return err
			}
			fx.tellRequester = ActionReject
			if err := r.Requests.Save(ctx, req); err != nil {
				return err
			}
		case ActionChangesRequested:
			req.Status = request.StatusChangesRequested
			if err := e.noticePreviousApprovers(ctx, r, req, pending.Stage, in.Action, st.Role, in.Comments, &fx); err != nil {
				return err
			}
			fx.changesTask = true
			fx.tellRequester = ActionChangesRequested
			if err := r.Requests.Save(ctx, req); err != nil {
				return err
			}
		}
		fx.req = *req
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.apply(ctx, &fx)
	return rec, nil
}

// advance is the moveToNextStage transition: open stage n+1 in the same
// cycle. When n was the last stage it lands the single terminal success.
// Calling it past the end of the table only re-asserts the approved status;
// it never opens another record.
func (e *Engine) advance(ctx context.Context, r uow.Repos, req *request.Request, currentStage int, fx *sideEffects) error {
	next := currentStage + 1
	if _, ok := stageAt(req.Type, next); !ok {
		req.Status = request.StatusApproved
		fx.approved = true
		return r.Requests.Save(ctx, req)
	}
	req.CurrentApprovalStage = next
	if _, err := e.openStage(ctx, r, req, next, fx); err != nil {
		return err
	}
	return r.Requests.Save(ctx, req)
}

// openStage creates the pending ledger row inside the transaction and defers
// task creation to after commit.
func (e *Engine) openStage(ctx context.Context, r uow.Repos, req *request.Request, stage int, fx *sideEffects) (*approval.Record, error) {
	def, ok := stageAt(req.Type, stage)
	if !ok {
		return nil, fmt.Errorf("workflow: no stage %d for %s", stage, req.Type)
	}
	rec := &approval.Record{
		RequestType:    req.Type,
		RequestID:      req.ID,
		Stage:          stage,
		Outcome:        approval.OutcomePending,
		Status:         string(approval.OutcomePending),
		ApprovalCycle:  req.CurrentApprovalCycle,
		IsCurrentCycle: true,
	}
	if err := r.Approvals.Create(ctx, rec); err != nil {
		return nil, err
	}
	fx.openings = append(fx.openings, stageOpening{stage: stage, def: def})
	return rec, nil
}

// noticePreviousApprovers collects the current cycle's already-approved
// records for post-commit fan-out. Stage 0 reversals invalidate nothing
// above them, so nothing is collected there.
func (e *Engine) noticePreviousApprovers(ctx context.Context, r uow.Repos, req *request.Request, stage int, action Action, by user.Role, comments string, fx *sideEffects) error {
	if stage == 0 {
		return nil
	}
	prior, err := r.Approvals.ListApprovedInCycle(ctx, req.Type, req.ID, req.CurrentApprovalCycle)
	if err != nil {
		return err
	}
	fx.prior = &priorNotice{records: prior, action: action, by: by, comments: comments}
	return nil
}

// apply runs the deferred side effects. Everything here is best-effort:
// failures are logged and the committed decision stands.
func (e *Engine) apply(ctx context.Context, fx *sideEffects) {
	req := &fx.req

	for _, tt := range fx.completeTasks {
		if _, err := e.tasks.CompletePending(ctx, req.Type, req.ID, tt); err != nil {
			e.log.Warn().Err(err).
				Str("request_type", string(req.Type)).Uint64("request_id", req.ID).
				Str("task_type", string(tt)).Msg("engine: task completion failed")
		}
	}

	for _, o := range fx.openings {
		e.createStageTasks(ctx, req, o)
	}

	if fx.changesTask {
		e.createChangesTask(ctx, req)
	}

	if fx.prior != nil {
		e.notifier.HigherStageAction(ctx, req, fx.prior.records, fx.prior.action, fx.prior.by, fx.prior.comments)
	}
	if fx.tellRequester != "" {
		e.notifier.DecisionToRequester(ctx, req, fx.tellRequester, fx.decidedBy, fx.comments)
	}
	if fx.approved {
		e.notifier.RequestApproved(ctx, req)
	}
}

// createStageTasks fans out one review task per holder of the stage role.
// Zero holders is a staffing problem, not an engine fault: the ledger row
// stays pending and nobody is auto-skipped.
func (e *Engine) createStageTasks(ctx context.Context, req *request.Request, o stageOpening) {
	holders, err := e.users.ListByRole(ctx, o.def.Role)
	if err != nil {
		e.log.Warn().Err(err).Str("role", string(o.def.Role)).Msg("engine: role holder lookup failed")
		return
	}
	if len(holders) == 0 {
		e.log.Info().
			Str("role", string(o.def.Role)).Int("stage", o.stage).
			Str("request_type", string(req.Type)).Uint64("request_id", req.ID).
			Msg("engine: no role holders, stage left pending")
		return
	}
	due := time.Now().UTC().Add(o.def.SLA)
	for _, h := range holders {
		t := &task.Task{
			AssigneeID:  h.ID,
			RequestType: req.Type,
			RequestID:   req.ID,
			TaskType:    task.TypeApproval,
			Title:       fmt.Sprintf("Review %s %q", typeLabel(req.Type), req.Title),
			Description: fmt.Sprintf("Stage %d (%s) review of %s %q.", o.stage, RoleName(o.def.Role), typeLabel(req.Type), req.Title),
			Status:      task.StatusPending,
			DueDate:     &due,
		}
		if err := e.tasks.Create(ctx, t); err != nil {
			e.log.Warn().Err(err).Uint64("assignee_id", h.ID).Msg("engine: task creation failed")
		}
	}
}

// createChangesTask hands the request back to its requester as a work item.
func (e *Engine) createChangesTask(ctx context.Context, req *request.Request) {
	due := time.Now().UTC().Add(changesTaskSLA)
	t := &task.Task{
		AssigneeID:  req.RequesterID,
		RequestType: req.Type,
		RequestID:   req.ID,
		TaskType:    task.TypeChangesRequested,
		Title:       fmt.Sprintf("Revise %s %q", typeLabel(req.Type), req.Title),
		Description: "An approver requested changes. Revise and resubmit to start a new approval cycle.",
		Status:      task.StatusPending,
		DueDate:     &due,
	}
	if err := e.tasks.Create(ctx, t); err != nil {
		e.log.Warn().Err(err).Uint64("assignee_id", req.RequesterID).Msg("engine: changes task creation failed")
	}
}

// changesTaskSLA is the revision window handed to requesters.
const changesTaskSLA = 72 * time.Hour

// submittedStatus is the review-eligible status a submit lands in:
// investments sit as an "opportunity" until the stage-0 admin turns them
// "new"; cash requests have no admin gate and go straight to "new".
func submittedStatus(t request.Type) string {
	if t == request.TypeInvestment {
		return request.StatusOpportunity
	}
	return request.StatusNew
}
