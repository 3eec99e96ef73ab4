package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	requestDomain "puda-approval-backend/internal/domain/request"
	taskDomain "puda-approval-backend/internal/domain/task"
	"puda-approval-backend/internal/testutil/taskmock"
)

func TestListTasks_FiltersByAssigneeAndStatus(t *testing.T) {
	e := newEchoWithValidator()

	var gotAssignee uint64
	var gotStatus string
	tasks := &taskmock.Repo{
		ListByAssigneeFn: func(_ context.Context, assigneeID uint64, status string) ([]taskDomain.Task, error) {
			gotAssignee, gotStatus = assigneeID, status
			return []taskDomain.Task{
				{ID: 1, AssigneeID: assigneeID, RequestType: requestDomain.TypeInvestment, RequestID: 100, TaskType: taskDomain.TypeApproval, Status: taskDomain.StatusPending},
			}, nil
		},
	}
	h := NewTaskHandler(tasks)

	req := httptest.NewRequest(stdhttp.MethodGet, "/tasks?assignee_id=2&status=pending", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotAssignee != 2 || gotStatus != taskDomain.StatusPending {
		t.Fatalf("filter passthrough: assignee=%d status=%q", gotAssignee, gotStatus)
	}

	var out []taskDomain.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
}

func TestListTasks_BadQuery(t *testing.T) {
	e := newEchoWithValidator()
	h := NewTaskHandler(&taskmock.Repo{})

	for _, q := range []string{
		"",                             // assignee_id missing
		"?assignee_id=0",               // zero
		"?assignee_id=abc",             // not a number
		"?assignee_id=2&status=failed", // unknown status
	} {
		req := httptest.NewRequest(stdhttp.MethodGet, "/tasks"+q, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := h.List(c); err != nil {
			t.Fatalf("List error: %v", err)
		}
		if rec.Code != stdhttp.StatusBadRequest {
			t.Fatalf("status for %q = %d, want 400", q, rec.Code)
		}
	}
}
