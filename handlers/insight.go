package handlers

import (
	"net/http"

	"horselink/services/intelligence"

	"github.com/gin-gonic/gin"
)

// InsightHandler exposes AI care insights derived from service history.
type InsightHandler struct {
	Service intelligence.InsightService
}

func (h *InsightHandler) GetCareInsight(c *gin.Context) {
	horseID := c.Param("horseId")

	insight, err := h.Service.GetCareInsight(c.Request.Context(), horseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insight)
}
