package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/utils"
)

// RegisterBookingRoutes sets up the slot-selection session endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.PUT("/session/:sessionID/day", hb.Booking.SelectDay)
		bookingGroup.PUT("/session/:sessionID/slot", hb.Booking.SelectSlot)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterDoctorRoutes registers public doctor display endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("/:id", hb.Doctor.GetDoctor)
		api.GET("/:id/schedule", hb.Doctor.GetSchedule)
	}
}

// RegisterSuggestionRoutes registers the shared city autocomplete endpoints.
func RegisterSuggestionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/suggestions")
	{
		api.GET("/cities", hb.Suggestion.SuggestCities)
		api.DELETE("/cities", hb.Suggestion.ClearCities)
	}
}

// RegisterMessagingRoutes registers the websocket messaging bridge.
func RegisterMessagingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	ws := r.Group("/ws")
	{
		ws.Use(middleware.JWTAuthMiddleware())
		ws.GET("/messages/:conversationID", hb.Messages.ServeConversation)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterSuggestionRoutes(r, hb)
	RegisterMessagingRoutes(r, hb)
	RegisterHealthRoute(r)
}
