package handlers

import (
	"net/http"

	providerRepo "horselink/database/repository/provider"
	"horselink/models"
	"horselink/services/booking"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes provider profiles and opening hours.
type ProviderHandler struct {
	Repo providerRepo.ProviderRepository
}

func (h *ProviderHandler) GetProvider(c *gin.Context) {
	providerID := c.Param("id")

	provider, err := h.Repo.GetProviderByID(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, err)
		return
	}
	if provider == nil {
		respondError(c, booking.NewDomainError(booking.CodeNotFound, "provider not found"))
		return
	}
	c.JSON(http.StatusOK, provider)
}

// UpdateWeeklyHours replaces the provider's weekly opening hours. Keys are
// lowercase weekday names.
func (h *ProviderHandler) UpdateWeeklyHours(c *gin.Context) {
	providerID := c.Param("id")
	var input struct {
		WeeklyHours map[string]models.DayHours `json:"weeklyHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Repo.UpdateWeeklyHours(c.Request.Context(), providerID, input.WeeklyHours); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": providerID, "weeklyHours": input.WeeklyHours})
}
