package main

import (
	"log"

	"github.com/foodbridge/food-donation-api/internal/config"
	"github.com/foodbridge/food-donation-api/internal/constants"
	"github.com/foodbridge/food-donation-api/internal/database"
	"github.com/foodbridge/food-donation-api/internal/handlers"
	"github.com/foodbridge/food-donation-api/internal/middleware"
	"github.com/foodbridge/food-donation-api/internal/repository"
	"github.com/foodbridge/food-donation-api/internal/services"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	donorRepo := repository.NewDonorRepository(db)
	ngoRepo := repository.NewNGORepository(db)
	donationRepo := repository.NewDonationRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, donorRepo, ngoRepo)
	donationService := services.NewDonationService(donationRepo, ngoRepo)
	requestService := services.NewRequestService(requestRepo)
	reportService := services.NewReportService(reportRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	ngoHandler := handlers.NewNGOHandler(authService)
	donationHandler := handlers.NewDonationHandler(donationService)
	requestHandler := handlers.NewRequestHandler(requestService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Food Donation API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// NGO directory (any authenticated user)
		api.GET("/ngos", middleware.RequireAuth(), ngoHandler.ListNGOs)

		// Donation routes (protected)
		donations := api.Group("/donations")
		donations.Use(middleware.RequireAuth())
		{
			donations.POST("", middleware.RequireDonor(), donationHandler.CreateDonation)
			donations.GET("", middleware.RequireDonor(), donationHandler.ListDonorDonations)
			donations.GET("/available", middleware.RequireNGO(), donationHandler.ListAvailableDonations)
			donations.POST("/:id/claim", middleware.RequireNGO(), donationHandler.ClaimDonation)
		}

		// Request routes (protected)
		requests := api.Group("/requests")
		requests.Use(middleware.RequireAuth())
		{
			requests.POST("", middleware.RequireNGO(), requestHandler.CreateRequest)
			requests.GET("", middleware.RequireNGO(), requestHandler.ListNGORequests)
			requests.GET("/open", middleware.RequireDonor(), requestHandler.ListOpenRequests)
			requests.POST("/:id/fulfill", middleware.RequireDonor(), requestHandler.FulfillRequest)
		}

		// Reporting routes (protected, read-only)
		reports := api.Group("/reports")
		reports.Use(middleware.RequireAuth())
		{
			reports.GET("/food-types", reportHandler.FoodTypeStats)
			reports.GET("/trends", reportHandler.MonthlyTrends)
			reports.GET("/ngo-distribution", reportHandler.NGODistribution)
			reports.GET("/top-donors", reportHandler.TopDonors)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
