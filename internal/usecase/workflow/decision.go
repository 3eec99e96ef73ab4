package workflow

import (
	"errors"

	"puda-approval-backend/internal/domain/approval"
	"puda-approval-backend/internal/domain/user"
)

var ErrUnknownAction = errors.New("unknown approval action")

// Action is what an approver can do with a pending stage.
type Action string

const (
	ActionApprove          Action = "approve"
	ActionReject           Action = "reject"
	ActionChangesRequested Action = "changes_requested"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionApprove, ActionReject, ActionChangesRequested:
		return a, nil
	}
	return "", ErrUnknownAction
}

// roleNames is the single role → display-name table. Both the rendered
// decision strings and notification texts go through it, so the two
// vocabularies cannot drift apart.
var roleNames = map[user.Role]string{
	user.RoleAdmin:           "Admin",
	user.RoleManager:         "Manager",
	user.RoleCommitteeMember: "Committee",
	user.RoleFinance:         "Finance",
	user.RoleAnalyst:         "Analyst",
}

// RoleName returns the human-readable name for a role, falling back to the
// raw identifier for anything unmapped.
func RoleName(r user.Role) string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return string(r)
}

// Decision tags a role with an outcome. Render is the only place the
// human-readable status strings ("Manager approved", "Finance rejected")
// are produced.
type Decision struct {
	Role    user.Role
	Outcome approval.Outcome
}

func (d Decision) Render() string {
	return RoleName(d.Role) + " " + string(d.Outcome)
}

// IsRejectedStatus reports whether s is one of the rendered rejection
// statuses. Requests carry the rendered string as their status, so this is
// how callers recognize a rejected request without a separate state column.
func IsRejectedStatus(s string) bool {
	for role := range roleNames {
		if s == (Decision{Role: role, Outcome: approval.OutcomeRejected}).Render() {
			return true
		}
	}
	return false
}
