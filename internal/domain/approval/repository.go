package approval

import (
	"context"

	"puda-approval-backend/internal/domain/request"
)

type Repository interface {
	// Create a new ledger row (the engine opens one per stage per cycle)
	Create(ctx context.Context, rec *Record) error

	// The single pending, current-cycle record for a request: the frontier
	// of the stage sequence.
	GetPending(ctx context.Context, t request.Type, requestID uint64, cycle int) (*Record, error)

	// DecideIfPending applies d to the record iff it is still pending.
	// Returns false when the record was already decided (lost the race).
	DecideIfPending(ctx context.Context, id uint64, d Decision) (bool, error)

	// Approved records of the given cycle, i.e. the "previous approvers" to
	// notify when a later stage reverses the outcome.
	ListApprovedInCycle(ctx context.Context, t request.Type, requestID uint64, cycle int) ([]Record, error)

	// Full ledger history, all cycles, oldest first.
	ListByRequest(ctx context.Context, t request.Type, requestID uint64) ([]Record, error)

	// CloseCycle flips is_current_cycle=false for every record of the cycle.
	// Run before incrementing the request's cycle on resubmission.
	CloseCycle(ctx context.Context, t request.Type, requestID uint64, cycle int) error
}
