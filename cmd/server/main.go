package main

import (
	"context"
	"fmt"
	"os"

	"complaintdesk-backend/config"
	"complaintdesk-backend/handlers"
	"complaintdesk-backend/notify"
	"complaintdesk-backend/repository"
	"complaintdesk-backend/service"
	"complaintdesk-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env file from project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			logger.Warn().Msg("no .env file found, using environment variables")
		}
	}

	cfg := config.Load()

	// Initialize database connection
	db, err := initPostgres(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize Postgres")
	}
	defer db.Close()
	logger.Info().Msg("Postgres connection established")

	// Initialize attachment storage
	fileStorage, err := storage.NewStorage(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	if ms, ok := fileStorage.(*storage.MinioStorage); ok {
		if err := ms.EnsureBucket(context.Background()); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure attachment bucket")
		}
	}
	logger.Info().Str("type", string(cfg.StorageType)).Str("bucket", cfg.StorageBucket).Msg("storage initialized")

	// Initialize notification dispatch
	notifier, err := notify.NewNotifier(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize notifier")
	}

	// Initialize repository and service
	complaintRepo := repository.NewComplaintRepository(db)

	complaintService := service.NewComplaintService(
		service.WithComplaintStore(complaintRepo),
		service.WithStorage(fileStorage),
		service.WithNotifier(notifier),
		service.WithLogger(logger),
	)

	complaintHandler := handlers.NewComplaintHandler(complaintService)

	// Setup Gin router
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", complaintHandler.Home)
	r.GET("/submit", complaintHandler.ShowSubmitForm)
	r.POST("/submit", complaintHandler.SubmitComplaint)
	r.GET("/dashboard", complaintHandler.StudentDashboard)
	r.GET("/admin", complaintHandler.AdminDashboard)
	r.GET("/get_complaints", complaintHandler.GetComplaints)
	r.POST("/assign_complaint", complaintHandler.AssignComplaint)
	r.POST("/update_status", complaintHandler.UpdateStatus)

	// Serve attachments directly when running on local storage
	if ls, ok := fileStorage.(*storage.LocalStorage); ok {
		r.Static(storage.LocalURLPrefix, ls.BasePath())
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info().Int("port", cfg.Port).Msg("server starting")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

func initPostgres(connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return pool, nil
}
