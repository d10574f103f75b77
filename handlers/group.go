package handlers

import (
	"net/http"
	"time"

	"horselink/models"
	"horselink/services/group"

	"github.com/gin-gonic/gin"
)

// GroupBookingHandler exposes group booking requests: creation, joining by
// invite code, participant removal and provider matching.
type GroupBookingHandler struct {
	Service group.GroupBookingService
}

func (h *GroupBookingHandler) CreateRequest(c *gin.Context) {
	var input struct {
		CreatorID       string    `json:"creatorId" binding:"required"`
		CreatorHorseID  string    `json:"creatorHorseId" binding:"required"`
		CreatorHorse    string    `json:"creatorHorseName"`
		ServiceID       string    `json:"serviceId" binding:"required"`
		LocationName    string    `json:"locationName"`
		MaxParticipants int       `json:"maxParticipants" binding:"required"`
		JoinDeadline    time.Time `json:"joinDeadline" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	request, err := h.Service.CreateRequest(c.Request.Context(), group.CreateRequestInput{
		CreatorID:       input.CreatorID,
		CreatorHorseID:  input.CreatorHorseID,
		CreatorHorse:    input.CreatorHorse,
		ServiceID:       input.ServiceID,
		LocationName:    input.LocationName,
		MaxParticipants: input.MaxParticipants,
		JoinDeadline:    input.JoinDeadline,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *GroupBookingHandler) JoinByInviteCode(c *gin.Context) {
	inviteCode := c.Param("code")
	var input struct {
		UserID    string `json:"userId" binding:"required"`
		HorseID   string `json:"horseId" binding:"required"`
		HorseName string `json:"horseName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	request, err := h.Service.JoinByInviteCode(c.Request.Context(), inviteCode, models.GroupParticipant{
		UserID:    input.UserID,
		HorseID:   input.HorseID,
		HorseName: input.HorseName,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *GroupBookingHandler) RemoveParticipant(c *gin.Context) {
	requestID := c.Param("id")
	targetUserID := c.Param("userId")
	actorID := c.GetHeader("X-Actor-ID")
	if actorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Actor-ID header is required"})
		return
	}

	request, err := h.Service.RemoveParticipant(c.Request.Context(), requestID, targetUserID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *GroupBookingHandler) UpdateStatus(c *gin.Context) {
	requestID := c.Param("id")
	var input struct {
		Status  string `json:"status" binding:"required"`
		ActorID string `json:"actorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	request, err := h.Service.UpdateRequestStatus(c.Request.Context(), requestID, input.ActorID, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

// MatchRequest books every joined participant back to back for one provider
// visit. The response reports partial failures alongside created bookings.
func (h *GroupBookingHandler) MatchRequest(c *gin.Context) {
	requestID := c.Param("id")
	var input struct {
		ProviderID             string `json:"providerId" binding:"required"`
		ServiceID              string `json:"serviceId" binding:"required"`
		BookingDate            string `json:"bookingDate" binding:"required"`
		StartTime              string `json:"startTime" binding:"required"`
		ServiceDurationMinutes int    `json:"serviceDurationMinutes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.MatchRequest(c.Request.Context(), group.MatchRequestInput{
		GroupBookingRequestID:  requestID,
		ProviderID:             input.ProviderID,
		ServiceID:              input.ServiceID,
		BookingDate:            input.BookingDate,
		StartTime:              input.StartTime,
		ServiceDurationMinutes: input.ServiceDurationMinutes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
