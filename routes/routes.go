package routes

import (
	"horselink/handlers"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers wired in main.
type HandlerBundle struct {
	Availability  *handlers.AvailabilityHandler
	Booking       *handlers.BookingHandler
	Group         *handlers.GroupBookingHandler
	HorseCare     *handlers.HorseCareHandler
	Notifications *handlers.NotificationHandler
	Insight       *handlers.InsightHandler
	Provider      *handlers.ProviderHandler
}

// RegisterBookingRoutes registers the availability and booking lifecycle
// endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("/availability", hb.Availability.GetDayAvailability)
		api.POST("", hb.Booking.CreateBooking)
		api.PATCH("/:id/status", hb.Booking.TransitionStatus)
		api.POST("/:id/payment", hb.Booking.RecordPayment)
	}
}

// RegisterGroupRoutes registers group booking request endpoints.
func RegisterGroupRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/group-bookings")
	{
		api.POST("", hb.Group.CreateRequest)
		api.POST("/join/:code", hb.Group.JoinByInviteCode)
		api.DELETE("/:id/participants/:userId", hb.Group.RemoveParticipant)
		api.PATCH("/:id/status", hb.Group.UpdateStatus)
		api.POST("/:id/match", hb.Group.MatchRequest)
	}
}

// RegisterHorseCareRoutes registers due-for-service and recurrence
// configuration endpoints.
func RegisterHorseCareRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/horsecare")
	{
		api.GET("/due/:customerId", hb.HorseCare.ListDueForService)
		api.PUT("/intervals", hb.HorseCare.UpsertIntervalOverride)
		api.GET("/services", hb.HorseCare.ListCareServices)
		api.GET("/insight/:horseId", hb.Insight.GetCareInsight)
	}
}

// RegisterProviderRoutes registers provider profile endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("/:id", hb.Provider.GetProvider)
		api.PUT("/:id/hours", hb.Provider.UpdateWeeklyHours)
	}
}

// RegisterNotificationRoutes registers in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.GET("/user/:userId", hb.Notifications.ListNotifications)
		api.PATCH("/:id/read", hb.Notifications.MarkRead)
	}
}
