package handlers

import (
	"net/http"

	"horselink/services/booking"
	"horselink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusForCode maps domain error codes to HTTP statuses. Anything not
// listed is an internal error.
var statusForCode = map[string]int{
	booking.CodeNotFound:                http.StatusNotFound,
	booking.CodeGroupBookingNotFound:    http.StatusNotFound,
	booking.CodeNoData:                  http.StatusUnprocessableEntity,
	booking.CodeUnauthorized:            http.StatusForbidden,
	booking.CodeInvalidStatusTransition: http.StatusConflict,
	booking.CodeGroupNotOpen:            http.StatusConflict,
	booking.CodeGroupFull:               http.StatusConflict,
	booking.CodeJoinDeadlinePassed:      http.StatusConflict,
	booking.CodeAlreadyJoined:           http.StatusConflict,
	booking.CodeNoActiveParticipants:    http.StatusConflict,
}

// respondError writes a domain error with its mapped status, or a generic
// 500 for infrastructure failures.
func respondError(c *gin.Context, err error) {
	if de, ok := booking.AsDomainError(err); ok {
		status, known := statusForCode[de.Code]
		if !known {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": de.Message, "code": de.Code})
		return
	}
	utils.GetLogger().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
