package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"carhire-api/config"
	"carhire-api/database"
	"carhire-api/jobs"
	"carhire-api/logger"
	"carhire-api/routes"
	"carhire-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog := logger.New("carhire-api")
	defer zlog.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed admin account and development fleet
	if err := database.SeedData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Media host client, built once from credentials and injected everywhere
	storeClient, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		log.Fatal("Failed to create media host client:", err)
	}

	mediaService := services.NewMediaService(storeClient, cfg.StorageBucket, cfg.StoragePublicURL, zlog)
	emailService := services.NewEmailService(cfg)

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Request logging middleware
	router.Use(gin.Logger())

	// Recovery middleware
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, mediaService, emailService, zlog)

	// Release lapsed bookings in the background
	expiryJob := jobs.NewRentalExpiryJob(db, time.Hour, zlog)
	expiryJob.Start()
	defer expiryJob.Stop()

	// Start server
	log.Printf("Starting CarHire API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
