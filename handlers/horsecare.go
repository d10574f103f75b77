package handlers

import (
	"net/http"
	"time"

	horseRepo "horselink/database/repository/horse"
	"horselink/models"
	"horselink/services/horsecare"

	"github.com/gin-gonic/gin"
)

// HorseCareHandler exposes due-for-service reminders and recurrence
// configuration.
type HorseCareHandler struct {
	DueService horsecare.DueForServiceService
	HorseRepo  horseRepo.HorseRepository
}

// ListDueForService returns the customer's horses that are due or coming
// due for a recurring service, most overdue first.
func (h *HorseCareHandler) ListDueForService(c *gin.Context) {
	customerID := c.Param("customerId")

	results, err := h.DueService.ListDueForService(c.Request.Context(), customerID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	if results == nil {
		results = []models.DueForServiceResult{}
	}
	c.JSON(http.StatusOK, gin.H{"dueForService": results})
}

// UpsertIntervalOverride sets a horse-level or customer-level recurrence
// override. An explicit null intervalWeeks disables recurrence at that tier.
func (h *HorseCareHandler) UpsertIntervalOverride(c *gin.Context) {
	var input models.IntervalOverride
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.ServiceID == "" || input.CustomerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId and customerId are required"})
		return
	}

	if err := h.HorseRepo.UpsertOverride(c.Request.Context(), &input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// ListCareServices returns the service catalogue with default recurrence
// cadences.
func (h *HorseCareHandler) ListCareServices(c *gin.Context) {
	services, err := h.HorseRepo.ListCareServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}
