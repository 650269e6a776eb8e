package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/task-notifier/internal/api/respond"
	"github.com/aliskhannn/task-notifier/internal/middlewares"
	"github.com/aliskhannn/task-notifier/internal/model"
	notifsvc "github.com/aliskhannn/task-notifier/internal/service/notification"
)

// notificationService is the part of the service layer the HTTP handlers use.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	CreateNotification(ctx context.Context, userID string, taskID *int64, message, subject string, topic model.Topic) (model.Notification, error)
	GetAllNotifications(ctx context.Context, userID string) ([]model.Notification, error)
	MarkAsRead(ctx context.Context, id int64) error
}

// subscriber upgrades a request to a real-time connection for userID.
type subscriber interface {
	Serve(w http.ResponseWriter, r *http.Request, userID string) error
}

// Handler serves the notification endpoints.
type Handler struct {
	service   notificationService
	hub       subscriber
	validator *validator.Validate
}

func NewHandler(s notificationService, hub subscriber, v *validator.Validate) *Handler {
	return &Handler{service: s, hub: hub, validator: v}
}

// CreateRequest is the body of POST /api/notifications.
// Task notifications and reminders must reference a task.
type CreateRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	TaskID  *int64 `json:"task_id" validate:"omitempty,gt=0"`
	Subject string `json:"subject" validate:"max=255"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=general-notification task-notification reminder"`
}

// Create stores a notification and publishes it. When only publishing fails
// the stored record is returned with 202 Accepted.
func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	topic, err := model.ParseTopic(req.Type)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	if topic != model.TopicGeneral && req.TaskID == nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("task_id is required for %s", topic))
		return
	}

	n, err := h.service.CreateNotification(c.Request.Context(), req.UserID, req.TaskID, req.Message, req.Subject, topic)
	switch {
	case err == nil:
		respond.Created(c.Writer, n)
	case errors.Is(err, notifsvc.ErrNotPublished):
		zlog.Logger.Error().Err(err).Int64("id", n.ID).Msg("notification stored without delivery")
		respond.Accepted(c.Writer, n)
	case errors.Is(err, notifsvc.ErrMissingUserID), errors.Is(err, model.ErrUnknownTopic):
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	default:
		zlog.Logger.Error().Err(err).Str("user_id", req.UserID).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

// GetAll returns the caller's notifications.
func (h *Handler) GetAll(c *ginext.Context) {
	userID := middlewares.UserID(c)

	notifications, err := h.service.GetAllNotifications(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to get notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// MarkAsRead flags a notification as read. Unknown ids succeed.
func (h *Handler) MarkAsRead(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		zlog.Logger.Warn().Str("id", idStr).Msg("invalid notification id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id); err != nil {
		zlog.Logger.Error().Err(err).Int64("id", id).Msg("failed to mark notification as read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification marked as read")
}

// Subscribe upgrades the request to a WebSocket that receives the caller's events.
func (h *Handler) Subscribe(c *ginext.Context) {
	userID := middlewares.UserID(c)

	// the upgrader has already written an HTTP error on failure
	if err := h.hub.Serve(c.Writer, c.Request, userID); err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", userID).Msg("failed to open websocket")
	}
}
