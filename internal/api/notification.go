package api

import (
	n "campus-events/internal/notification"
	"campus-events/internal/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationHandlers struct {
	service *n.NotificationService
	hub     *ws.Hub
}

func NewNotificationHandlers(db *gorm.DB, hub *ws.Hub) *NotificationHandlers {
	return &NotificationHandlers{
		service: n.NewNotificationService(db),
		hub:     hub,
	}
}

type NotificationCreateInput struct {
	Title   string `json:"title" binding:"required" example:"Maintenance window"`
	Message string `json:"message" binding:"required" example:"The portal is down tonight 2-3 AM"`
	Type    string `json:"type" example:"warning"`
	UserID  *uint  `json:"user_id"`
}

type MessageResponse struct {
	Message string `json:"message" example:"All notifications marked as read"`
}

type SystemEventInput struct {
	Event   string `json:"event" binding:"required" example:"server_restart"`
	Payload string `json:"payload" example:"back in 5 minutes"`
}

// ListNotificationsHandler retrieves notifications for the caller
// @Summary List my notifications
// @Description Returns the caller's notifications plus campus-wide ones
// @Tags Notifications
// @Produce json
// @Security Bearer
// @Success 200 {array} campus.Notification
// @Router /api/v1/notifications [get]
func (h *NotificationHandlers) ListNotificationsHandler(c *gin.Context) {
	skip, limit := paginationParams(c)

	notifications, err := h.service.GetUserNotifications(c.GetUint("user_id"), skip, limit)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	c.JSON(200, notifications)
}

// MarkAllReadHandler marks every notification of the caller as read
// @Summary Mark all notifications as read
// @Tags Notifications
// @Produce json
// @Security Bearer
// @Success 200 {object} MessageResponse
// @Router /api/v1/notifications/read-all [post]
func (h *NotificationHandlers) MarkAllReadHandler(c *gin.Context) {
	if err := h.service.MarkAllRead(c.GetUint("user_id")); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(200, gin.H{"message": "All notifications marked as read"})
}

// SendNotificationHandler persists and delivers a notification (superuser only)
// @Summary Send a notification
// @Description Persist a notification and deliver it to the target user's live connections, or to everyone when no target is set
// @Tags Notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body NotificationCreateInput true "Notification"
// @Success 200 {object} campus.Notification
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Persistence failed"
// @Router /api/v1/notifications/send [post]
func (h *NotificationHandlers) SendNotificationHandler(c *gin.Context) {
	var input NotificationCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	notif, err := h.hub.SendNotification(input.Title, input.Message, input.Type, input.UserID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to send notification"})
		return
	}

	c.JSON(200, notif)
}

// BroadcastSystemEventHandler pushes an ephemeral signal to all connections (superuser only)
// @Summary Broadcast a system event
// @Description Delivery only, nothing is persisted; offline users never see it
// @Tags Notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body SystemEventInput true "System event"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/v1/notifications/broadcast [post]
func (h *NotificationHandlers) BroadcastSystemEventHandler(c *gin.Context) {
	var input SystemEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := h.hub.BroadcastSystemEvent(gin.H{
		"type":    "system",
		"event":   input.Event,
		"payload": input.Payload,
	}); err != nil {
		c.JSON(500, gin.H{"error": "Failed to broadcast"})
		return
	}

	c.JSON(200, gin.H{"message": "Broadcast sent"})
}
