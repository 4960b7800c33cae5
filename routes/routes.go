package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"carhire-api/config"
	"carhire-api/controllers"
	"carhire-api/middleware"
	"carhire-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, media *services.MediaService, emailService *services.EmailService, log *zap.Logger) {
	// Controllers
	registrationController := controllers.NewRegistrationController(db, media, emailService, log)
	vehicleController := controllers.NewVehicleController(db)
	authController := controllers.NewAuthController(db, cfg.JWTSecret)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":               "pong",
			"status":                "healthy",
			"media_upload_failures": media.FailureCount(),
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Public booking surface
	v1.GET("/vehicles/available", vehicleController.GetAvailableVehicles)
	v1.PATCH("/vehicles/:id/status", vehicleController.UpdateVehicleStatus)
	v1.POST("/registrations", middleware.RateLimit(10, 5), registrationController.SubmitRegistration)

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Back-office routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		vehicles := admin.Group("/vehicles")
		{
			vehicles.GET("/", vehicleController.GetVehicles)
			vehicles.POST("/", vehicleController.CreateVehicle)
			vehicles.PUT("/:id", vehicleController.UpdateVehicle)
			vehicles.DELETE("/:id", vehicleController.DeleteVehicle)
		}

		admin.GET("/registrations", registrationController.GetRegistrations)
	}
}

// SetupCORS allows the booking form's origin to call the API.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
