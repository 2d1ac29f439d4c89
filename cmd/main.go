package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acm-club/esports-backend/config"
	"github.com/acm-club/esports-backend/db"
	"github.com/acm-club/esports-backend/handlers"
	"github.com/acm-club/esports-backend/notifications"
	"github.com/acm-club/esports-backend/repositories"
	api "github.com/acm-club/esports-backend/routes"
	"github.com/acm-club/esports-backend/services"
	"github.com/acm-club/esports-backend/storage"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	// Logo uploads are optional: without R2 credentials the endpoint answers
	// 503 instead of failing startup.
	var uploader storage.FileUploader
	if cfg.R2AccountID != "" {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("R2 credentials not set, team logo uploads disabled")
	}

	hub := notifications.NewHub()
	go hub.Run()
	logger.Info("notification hub started")

	memberRepo := repositories.NewPostgresMemberRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	invitationRepo := repositories.NewPostgresInvitationRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	applicationRepo := repositories.NewPostgresApplicationRepository(dbConn)

	authService := services.NewAuthService(memberRepo)
	memberService := services.NewMemberService(memberRepo)
	teamService := services.NewTeamService(dbConn, teamRepo, memberRepo, uploader)
	inviteService := services.NewInviteService(dbConn, invitationRepo, teamRepo, memberRepo, hub)
	applicationService := services.NewApplicationService(applicationRepo, tournamentRepo)
	adminService := services.NewAdminService(memberRepo, teamRepo, tournamentRepo)
	dashboardService := services.NewDashboardService(memberRepo, teamRepo, tournamentRepo, applicationRepo, invitationRepo)
	logger.Info("services initialized")

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	memberHandler := handlers.NewMemberHandler(memberService)
	teamHandler := handlers.NewTeamHandler(teamService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	adminHandler := handlers.NewAdminHandler(adminService, dashboardService)
	webSocketHandler := handlers.NewWebSocketHandler(hub)

	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	api.SetupRoutes(
		router,
		authHandler,
		memberHandler,
		teamHandler,
		inviteHandler,
		applicationHandler,
		adminHandler,
		webSocketHandler,
		[]byte(cfg.JWTSecretKey),
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}
