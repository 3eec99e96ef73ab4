package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	notificationDomain "puda-approval-backend/internal/domain/notification"
)

type NotificationHandler struct {
	notifs notificationDomain.Repository
}

func NewNotificationHandler(notifs notificationDomain.Repository) *NotificationHandler {
	return &NotificationHandler{notifs: notifs}
}

func (h *NotificationHandler) List(c echo.Context) error {
	userID, err := strconv.ParseUint(c.QueryParam("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid user_id"})
	}
	out, err := h.notifs.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "lookup failed"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, userID, err := notificationRef(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if err := h.notifs.MarkRead(c.Request().Context(), id, userID); err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	id, userID, err := notificationRef(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if err := h.notifs.Delete(c.Request().Context(), id, userID); err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func notificationRef(c echo.Context) (id, userID uint64, err error) {
	id, err = strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, 0, errInvalidNotificationRef
	}
	userID, err = strconv.ParseUint(c.QueryParam("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return 0, 0, errInvalidNotificationRef
	}
	return id, userID, nil
}
