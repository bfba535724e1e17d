package routes

import (
	"net/http"
	"time"

	"travelogue/handlers"
	"travelogue/middleware"
	"travelogue/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterTripRoutes registers the trip catalog endpoints. Reads are public,
// writes require an admin account.
func RegisterTripRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/trips")
	{
		api.GET("", hb.Trips.ListTrips)
		api.GET("/featured", hb.Trips.FeaturedTrips)
		api.GET("/popular", hb.Trips.PopularTrips)
		api.GET("/tags", hb.Trips.Tags)
		api.GET("/:id", hb.Trips.GetTrip)
		api.GET("/:id/similar", hb.Trips.SimilarTrips)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		admin.POST("", hb.Trips.CreateTrip)
		admin.PUT("/:id", hb.Trips.UpdateTrip)
		admin.DELETE("/:id", hb.Trips.DeleteTrip)
	}
}

// RegisterBookingRoutes registers the booking engine endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Bookings.CreateBooking)
		api.GET("", hb.Bookings.ListBookings)
		api.GET("/:id", hb.Bookings.GetBooking)
		api.PATCH("/:id/cancel", hb.Bookings.CancelBooking)
	}
}

// RegisterReviewRoutes registers trip review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("", hb.Reviews.RecentReviews)
		api.POST("", hb.Reviews.CreateReview)
		api.GET("/:id", hb.Reviews.ListTripReviews)
		api.POST("/:id/helpful", hb.Reviews.MarkHelpful)
	}
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.Me)
		api.PUT("/profile", hb.Auth.UpdateProfile)
		api.POST("/favorites/:tripId", hb.Auth.ToggleFavorite)
	}
}

// RegisterPaymentRoutes registers the Stripe payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/create-payment-intent", hb.Payments.CreatePaymentIntent)
		api.POST("/confirm-payment", hb.Payments.ConfirmPayment)
		api.POST("/webhook", hb.Payments.Webhook)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Travelogue API is running",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterTripRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
