package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "camera-rental-backend/internal/api/http"
	"camera-rental-backend/internal/config"
	"camera-rental-backend/internal/jobs"
	"camera-rental-backend/internal/logger"
	"camera-rental-backend/internal/repository/postgres"
	"camera-rental-backend/internal/scheduler"
	"camera-rental-backend/internal/security"
	"camera-rental-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present; environment overrides the YAML file
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Camera Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "static_dir", cfg.Server.StaticDir)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TokenExpiryHours)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.Enabled {
		emailSvc = service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
		logger.Info("Email notifications enabled", "from", cfg.Email.FromEmail)
	} else {
		logger.Info("Email notifications disabled")
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	cameraSvc := service.NewCameraService(store.CameraRepository, store.RentalRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.CameraRepository, emailSvc, cfg.Email.OpsEmail)
	userSvc := service.NewUserService(store.UserRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)

	// Initialize HTTP handlers and router
	handlers := api.NewHandlers(authSvc, cameraSvc, rentalSvc, userSvc, customerSvc)
	router := api.NewRouter(handlers, tokenManager, cfg.Server.StaticDir)

	// Start background scheduler alongside the HTTP server
	jobRunner := jobs.NewJobRunner(store.RentalRepository, emailSvc, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
