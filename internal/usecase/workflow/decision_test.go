package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puda-approval-backend/internal/domain/approval"
	"puda-approval-backend/internal/domain/user"
)

func TestParseAction(t *testing.T) {
	for _, s := range []string{"approve", "reject", "changes_requested"} {
		a, err := ParseAction(s)
		require.NoError(t, err)
		assert.Equal(t, Action(s), a)
	}

	_, err := ParseAction("defer")
	assert.ErrorIs(t, err, ErrUnknownAction)
	_, err = ParseAction("")
	assert.ErrorIs(t, err, ErrUnknownAction)
	_, err = ParseAction("Approve")
	assert.ErrorIs(t, err, ErrUnknownAction, "actions are case-sensitive")
}

func TestDecisionRender(t *testing.T) {
	cases := []struct {
		role    user.Role
		outcome approval.Outcome
		want    string
	}{
		{user.RoleAdmin, approval.OutcomeApproved, "Admin approved"},
		{user.RoleManager, approval.OutcomeApproved, "Manager approved"},
		{user.RoleManager, approval.OutcomeRejected, "Manager rejected"},
		{user.RoleCommitteeMember, approval.OutcomeApproved, "Committee approved"},
		{user.RoleFinance, approval.OutcomeRejected, "Finance rejected"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Decision{Role: c.role, Outcome: c.outcome}.Render())
	}
}

func TestRoleName_UnmappedFallsBack(t *testing.T) {
	assert.Equal(t, "auditor", RoleName(user.Role("auditor")))
}

func TestIsRejectedStatus(t *testing.T) {
	assert.True(t, IsRejectedStatus("Manager rejected"))
	assert.True(t, IsRejectedStatus("Finance rejected"))
	assert.False(t, IsRejectedStatus("Manager approved"))
	assert.False(t, IsRejectedStatus("rejected"))
	assert.False(t, IsRejectedStatus(""))
}
