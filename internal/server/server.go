package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fzambone/event-attendance/config"
	"github.com/fzambone/event-attendance/internal/handlers"
	"github.com/fzambone/event-attendance/internal/middleware"
	"github.com/fzambone/event-attendance/internal/repository"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	setupLogger(cfg)

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}
	slog.Info("connected to postgres", "database", cfg.DBName)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(slog.Default()))

	setupRoutes(r, db, cfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	slog.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	eventRepo := repository.NewEventRepository(db)
	confirmationRepo := repository.NewConfirmationRepository(db)

	eventHandler := handlers.NewEventHandler(eventRepo)
	confirmationHandler := handlers.NewConfirmationHandler(eventRepo, confirmationRepo)
	authHandler := handlers.NewAuthHandler(cfg)
	adminHandler := handlers.NewAdminHandler(eventRepo)

	api := r.Group("/api")
	{
		// Reads and RSVP submission are public: the confirmation link is
		// shared with attendees who never log in.
		api.GET("/confirm", confirmationHandler.GetConfirmations)
		api.POST("/confirm", confirmationHandler.CreateConfirmation)

		api.POST("/admin/login", authHandler.Login)
		api.POST("/admin/logout", authHandler.Logout)

		protected := api.Group("", middleware.RequireSession(cfg.SessionSecret))
		{
			protected.PUT("/confirm", confirmationHandler.UpdateConfirmation)
			protected.DELETE("/confirm", confirmationHandler.DeleteConfirmation)
			protected.POST("/events", eventHandler.CreateEvent)
			protected.DELETE("/events", eventHandler.DeleteEvent)
		}
	}

	r.GET(middleware.LoginPath, middleware.RedirectToLanding(cfg.SessionSecret), adminHandler.LoginPage)
	r.GET(middleware.LandingPath, middleware.RedirectToLogin(cfg.SessionSecret), adminHandler.AttendancePage)
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
