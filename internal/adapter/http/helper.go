package http

import (
	"errors"
	"net/http"
	"strings"

	"puda-approval-backend/internal/domain/approval"
	"puda-approval-backend/internal/domain/notification"
	"puda-approval-backend/internal/domain/request"
	"puda-approval-backend/internal/domain/user"
	"puda-approval-backend/internal/usecase/workflow"
)

// ---- helpers ----

var errInvalidNotificationRef = errors.New("missing or invalid notification id / user_id")

// errorStatus maps domain errors → HTTP codes. Conflict is distinct so
// callers know to re-read and retry instead of double-applying.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, request.ErrNotFound),
		errors.Is(err, approval.ErrNotFound),
		errors.Is(err, notification.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, approval.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, approval.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, request.ErrInvalidState),
		errors.Is(err, workflow.ErrUnknownAction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, request.ErrUnknownType):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
