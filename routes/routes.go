package routes

import (
	"net/http"
	"time"

	"sweetdots/handlers"
	"sweetdots/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the staff access gate endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", handlers.LoginHandler)
		api.POST("/logout", middleware.StaffAuthMiddleware(), handlers.LogoutHandler)
	}
}

// RegisterScheduleRoutes registers the schedule view endpoints.
func RegisterScheduleRoutes(r *gin.Engine, sh *handlers.ScheduleHandler) {
	api := r.Group("/api")
	{
		api.Use(middleware.StaffAuthMiddleware())
		api.GET("/weeks", sh.GetWeeksHandler)
		api.GET("/schedule", sh.GetScheduleHandler)
		api.GET("/schedule/employees/:name", sh.GetEmployeeHandler)
	}
}

// RegisterPayrollRoutes registers the pay-period and estimator endpoints.
func RegisterPayrollRoutes(r *gin.Engine, ph *handlers.PayrollHandler) {
	api := r.Group("/api/payperiod")
	{
		api.Use(middleware.StaffAuthMiddleware())
		api.GET("", ph.GetPayPeriodHandler)
		api.POST("/estimate", ph.EstimatePayHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Sweet Dots"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sh *handlers.ScheduleHandler, ph *handlers.PayrollHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterScheduleRoutes(r, sh)
	RegisterPayrollRoutes(r, ph)
}
