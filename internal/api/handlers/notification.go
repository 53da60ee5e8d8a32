package handlers

import (
	"strconv"

	"property-portal-backend/internal/auth"
	"property-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationHandler handles HTTP requests for the notification feed
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListNotifications handles GET /notifications
// @Summary List the caller team's notifications
// @Tags notifications
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} SuccessResponse "Notifications"
// @Failure 400 {object} ErrorResponse "Caller has no team"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	teamID, ok := auth.GetTeamID(c)
	if !ok {
		respondBadRequest(c, "caller has no team")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		respondBadRequest(c, "invalid page")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 {
		respondBadRequest(c, "invalid page_size")
		return
	}

	list, err := h.notificationService.ListByTeam(teamID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, list)
}

// MarkRead handles POST /notifications/:id/read
// @Summary Mark a notification as read
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} SuccessResponse "Notification marked read"
// @Failure 400 {object} ErrorResponse "Invalid notification ID"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid notification ID")
		return
	}

	if err := h.notificationService.MarkRead(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"read": true})
}
