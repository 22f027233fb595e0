package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealbase-dev/mealbase/internal/models"
	"github.com/mealbase-dev/mealbase/internal/store"
)

type NotificationsHandler struct {
	store *store.Store
}

func NewNotificationsHandler(st *store.Store) *NotificationsHandler {
	return &NotificationsHandler{store: st}
}

type NotificationRequest struct {
	UserID  uint      `json:"user_id" binding:"required"`
	Message string    `json:"message" binding:"required"`
	SentAt  time.Time `json:"sent_at"`
}

func (r *NotificationRequest) model() *models.Notification {
	sentAt := r.SentAt

	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	return &models.Notification{
		UserID:  r.UserID,
		Message: r.Message,
		SentAt:  sentAt,
	}
}

func (h *NotificationsHandler) List(ctx *gin.Context) {
	notifications, err := h.store.Notifications.List(ctx.Request.Context())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notifications)
}

func (h *NotificationsHandler) Get(ctx *gin.Context) {
	id, ok := idParam(ctx, "notification_id")

	if !ok {
		return
	}

	notification, err := h.store.Notifications.Get(ctx.Request.Context(), id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notification)
}

func (h *NotificationsHandler) Create(ctx *gin.Context) {
	var body NotificationRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	notification := body.model()

	if err := h.store.Notifications.Create(ctx.Request.Context(), notification); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, notification)
}

func (h *NotificationsHandler) Update(ctx *gin.Context) {
	id, ok := idParam(ctx, "notification_id")

	if !ok {
		return
	}

	var body NotificationRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	notification, err := h.store.Notifications.Update(ctx.Request.Context(), id, body.model())

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notification)
}

func (h *NotificationsHandler) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx, "notification_id")

	if !ok {
		return
	}

	if err := h.store.Notifications.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
