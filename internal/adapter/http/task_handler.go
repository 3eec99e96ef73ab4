package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	taskDomain "puda-approval-backend/internal/domain/task"
)

// TaskHandler is a thin read surface over the task board; tasks are created
// and completed by the workflow engine, never directly by callers.
type TaskHandler struct {
	tasks taskDomain.Repository
}

func NewTaskHandler(tasks taskDomain.Repository) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) List(c echo.Context) error {
	assigneeID, err := strconv.ParseUint(c.QueryParam("assignee_id"), 10, 64)
	if err != nil || assigneeID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid assignee_id"})
	}
	status := c.QueryParam("status")
	switch status {
	case "", taskDomain.StatusPending, taskDomain.StatusCompleted:
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status filter"})
	}
	out, err := h.tasks.ListByAssignee(c.Request().Context(), assigneeID, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "lookup failed"})
	}
	return c.JSON(http.StatusOK, out)
}
