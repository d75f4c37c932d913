package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/k1zexxx/java-filmorate/internal/api"
	"github.com/k1zexxx/java-filmorate/internal/config"
	"github.com/k1zexxx/java-filmorate/internal/service"
	"github.com/k1zexxx/java-filmorate/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	// --- Инициализация хранилищ и индексов ---
	filmStore := store.NewInMemoryFilmStore()
	userStore := store.NewInMemoryUserStore()
	likes := store.NewRelationIndex()
	friendships := store.NewRelationIndex()
	validator := service.NewValidator()

	filmService := service.NewFilmService(filmStore, userStore, likes, validator, logger)
	userService := service.NewUserService(userStore, friendships, validator, logger)

	// --- Настройка HTTP сервера ---
	filmHandler := api.NewFilmHandler(filmService, logger)
	userHandler := api.NewUserHandler(userService, logger)
	router := api.NewRouter(filmHandler, userHandler, api.NewMiddleware(logger))

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", slog.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server ListenAndServe() failed", slog.String("error", err.Error()))
		}
	}()

	// Ожидание сигнала для graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}
}
