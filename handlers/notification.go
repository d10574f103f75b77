package handlers

import (
	"net/http"
	"strconv"

	"horselink/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes in-app notifications.
type NotificationHandler struct {
	Service notification.NotificationService
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := c.Param("userId")
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	notifications, err := h.Service.ListNotifications(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID := c.Param("id")
	if err := h.Service.MarkRead(c.Request.Context(), notificationID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": notificationID, "read": true})
}
