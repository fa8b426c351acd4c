package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"care-shift-api/config"
	"care-shift-api/internal/app"
	"care-shift-api/internal/database"
	"care-shift-api/internal/eligibility"
	"care-shift-api/internal/events"
	"care-shift-api/internal/scheduler"
	"care-shift-api/internal/server"
	"care-shift-api/internal/services"
	"care-shift-api/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
)

// @title           Care Shift API
// @version         1.0
// @description     Job posting lifecycle and compliance engine for care-facility shift staffing.

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	validate := validator.New()

	repos := postgres.NewRepositories(dbPool)
	txManager := postgres.NewTxManager(dbPool)
	publisher := events.NewRedisPublisher(redisClient, cfg.Redis.Channel)
	eligibilitySvc := eligibility.NewRedisService(redisClient)

	jobService := services.NewJobService(repos, txManager, eligibilitySvc, publisher, cfg.Policy.MinHourlyWage)
	applicationService := services.NewApplicationService(repos, txManager, eligibilitySvc, publisher)
	coordinator := services.NewCoordinator(applicationService, repos.Applications, repos.WorkDates)

	application := &app.Application{
		Config:             cfg,
		DBPool:             dbPool,
		RedisClient:        redisClient,
		Validator:          validate,
		Repos:              repos,
		TxManager:          txManager,
		Publisher:          publisher,
		JobService:         jobService,
		ApplicationService: applicationService,
		Coordinator:        coordinator,
	}

	// --- Background Sweeps ---
	sweeper, err := scheduler.NewSweeper(cfg.Scheduler, jobService)
	if err != nil {
		log.Fatalf("Failed to set up background sweeps: %v", err)
	}
	sweeper.Start()

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server and sweeps...")

	sweeper.Stop()

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
