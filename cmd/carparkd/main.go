package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"carpark-finder/config"
	"carpark-finder/internal/api"
	"carpark-finder/internal/finder"
	"carpark-finder/internal/form"
	"carpark-finder/internal/session"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "carpark-web ", log.LstdFlags)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Printf("failed to load .env: %v", err)
	}

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded from %s; backend at %s", configPath, cfg.Backend.BaseURL)

	// Lookups started through the session API end with the server.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := finder.NewClient(&cfg.Backend)
	sessions := session.NewRegistry(cfg.Server.SessionTTL, func() *form.Controller {
		return form.New(client)
	})
	defer sessions.Close()

	handler := api.NewHandler(ctx, client, sessions)
	router, err := api.NewRouter(&cfg.Server, handler)
	if err != nil {
		logger.Fatalf("failed to build router: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Printf("HTTP server Shutdown: %v", err)
	}
	cancel()

	logger.Println("Server gracefully stopped")
}
