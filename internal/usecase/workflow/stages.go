package workflow

import (
	"fmt"
	"time"

	"puda-approval-backend/internal/domain/request"
	"puda-approval-backend/internal/domain/user"
)

// Stage is one ordered step of a request type's approval sequence: who must
// sign off and how long they get before the task's due date passes.
type Stage struct {
	Role user.Role
	SLA  time.Duration
}

// Fixed per-type sequences. Not user-configurable; a new request type means
// a new entry here and nothing else.
var stageTables = map[request.Type][]Stage{
	request.TypeInvestment: {
		{Role: user.RoleAdmin, SLA: 24 * time.Hour},
		{Role: user.RoleManager, SLA: 48 * time.Hour},
		{Role: user.RoleCommitteeMember, SLA: 72 * time.Hour},
		{Role: user.RoleFinance, SLA: 48 * time.Hour},
	},
	request.TypeCashRequest: {
		{Role: user.RoleManager, SLA: 48 * time.Hour},
		{Role: user.RoleFinance, SLA: 48 * time.Hour},
	},
}

func init() {
	if err := validateStageTables(); err != nil {
		panic(err)
	}
}

func validateStageTables() error {
	for t, stages := range stageTables {
		if len(stages) == 0 {
			return fmt.Errorf("workflow: empty stage table for %q", t)
		}
		for i, s := range stages {
			if _, ok := roleNames[s.Role]; !ok {
				return fmt.Errorf("workflow: %q stage %d has unknown role %q", t, i, s.Role)
			}
			if s.SLA <= 0 {
				return fmt.Errorf("workflow: %q stage %d has non-positive SLA", t, i)
			}
		}
	}
	return nil
}

// Stages returns the full sequence for a request type.
func Stages(t request.Type) []Stage { return stageTables[t] }

// stageAt returns stage n, or ok=false when n is past the end of the table
// (i.e. the previous stage was the last one).
func stageAt(t request.Type, n int) (Stage, bool) {
	stages := stageTables[t]
	if n < 0 || n >= len(stages) {
		return Stage{}, false
	}
	return stages[n], true
}
