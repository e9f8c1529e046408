// Command server runs the task/user management HTTP API.
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

	"github.com/karolbystrek/Todo-Rails-Elite/internal/api"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/api/middleware"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/config"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/platform/logger"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/platform/postgres"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/service"
	"github.com/karolbystrek/Todo-Rails-Elite/internal/service/auth"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server.LogLevel)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := runMigrations(db); err != nil {
		return err
	}
	log.Info("database migrations applied")

	taskStore := postgres.NewTaskStore(db, log)
	userStore := postgres.NewUserStore(db, log)

	hasher := auth.NewBcryptHasher(0)
	jwtService := auth.NewJWTService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenLifetimeMinutes)*time.Minute,
	)

	taskService := service.NewTaskService(taskStore, log)
	userService := service.NewUserService(userStore, hasher, log)

	router := api.NewRouter(
		api.NewAuthHandler(userService, jwtService, hasher),
		api.NewTaskHandler(taskService),
		api.NewUserHandler(userService),
		middleware.NewAuthenticator(jwtService),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
