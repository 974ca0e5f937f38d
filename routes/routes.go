package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trimly/handlers"
	"trimly/middleware"
	"trimly/utils"
)

// RegisterPublicRoutes registers the customer-facing endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/availability", hb.GetAvailabilityHandler)
		api.GET("/available-dates", hb.GetAvailableDatesHandler)
		api.GET("/barbers", hb.ListBarbersHandler)

		api.POST("/booking/session", hb.StartSessionHandler)
		api.POST("/booking/confirm", hb.ConfirmBookingHandler)
		api.DELETE("/booking/session/:sessionID", hb.CancelSessionHandler)
	}
}

// RegisterAdminRoutes registers the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.GET("/shifts", hb.ListShiftsHandler)
		admin.POST("/shifts", hb.CreateShiftHandler)
		admin.PATCH("/shifts/:id", hb.UpdateShiftHandler)
		admin.DELETE("/shifts/:id", hb.DeleteShiftHandler)

		admin.GET("/leaves", hb.ListLeavesHandler)
		admin.POST("/leaves", hb.CreateLeaveHandler)
		admin.PATCH("/leaves/:id/status", hb.UpdateLeaveStatusHandler)

		admin.GET("/appointments", hb.ListAppointmentsHandler)
		admin.DELETE("/appointments/:id", hb.DeleteAppointmentHandler)

		admin.POST("/barbers", hb.CreateBarberHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.MetricsMiddleware())

	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
