package handlers

import (
	"net/http"

	"horselink/models"
	"horselink/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking creation, lifecycle transitions and
// payment recording.
type BookingHandler struct {
	Lifecycle booking.LifecycleService
}

// CreateBooking persists a new booking. Customer-initiated bookings start
// pending; providers entering a manual booking may pass status confirmed.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.ProviderID == "" || input.CustomerID == "" || input.Date == "" || input.StartTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "providerId, customerId, date and startTime are required"})
		return
	}

	if err := h.Lifecycle.CreateBooking(c.Request.Context(), &input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, input)
}

// TransitionStatus applies a lifecycle transition on behalf of an actor.
func (h *BookingHandler) TransitionStatus(c *gin.Context) {
	bookingID := c.Param("id")
	var input struct {
		Status              string `json:"status" binding:"required"`
		ActorID             string `json:"actorId" binding:"required"`
		ActorRole           string `json:"actorRole" binding:"required"`
		CancellationMessage string `json:"cancellationMessage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.ActorRole != models.RoleProvider && input.ActorRole != models.RoleCustomer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "actorRole must be provider or customer"})
		return
	}

	err := h.Lifecycle.TransitionStatus(c.Request.Context(), booking.TransitionInput{
		BookingID:           bookingID,
		NewStatus:           input.Status,
		ActorID:             input.ActorID,
		ActorRole:           input.ActorRole,
		CancellationMessage: input.CancellationMessage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": bookingID, "status": input.Status})
}

// RecordPayment notes a received payment against a booking and fans out
// the payment event.
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	bookingID := c.Param("id")
	var input struct {
		Amount   float64 `json:"amount" binding:"required"`
		Currency string  `json:"currency" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Lifecycle.RecordPayment(c.Request.Context(), bookingID, input.Amount, input.Currency); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": bookingID, "amountPaid": input.Amount, "currency": input.Currency})
}
