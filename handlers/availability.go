package handlers

import (
	"net/http"

	"horselink/models"
	"horselink/services/booking"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the day-availability engine.
type AvailabilityHandler struct {
	Engine booking.SchedulingEngine
}

// GetDayAvailability returns the slot grid for one provider, date and
// service. The customer's location is optional; without it slots are
// returned without travel-time filtering.
func (h *AvailabilityHandler) GetDayAvailability(c *gin.Context) {
	var input struct {
		ProviderID string           `json:"providerId" binding:"required"`
		Date       string           `json:"date" binding:"required"`
		ServiceID  string           `json:"serviceId" binding:"required"`
		Location   *models.GeoPoint `json:"location"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slots, err := h.Engine.GetDayAvailability(c.Request.Context(), input.ProviderID, input.Date, input.ServiceID, input.Location)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  input.Date,
		"slots": slots,
	})
}
