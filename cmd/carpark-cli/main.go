package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"carpark-finder/config"
	"carpark-finder/internal/finder"
	"carpark-finder/internal/form"
	"carpark-finder/internal/tui"
)

func main() {
	logger := log.New(os.Stderr, "carpark-cli ", log.LstdFlags)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Printf("failed to load .env: %v", err)
	}

	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = "./config/config.yaml"
	}
	configPath := flag.String("config", defaultPath, "path to the YAML configuration file")
	backendURL := flag.String("backend", "", "carpark backend base URL (overrides configuration)")
	flag.Parse()

	if *backendURL != "" {
		os.Setenv("CARPARK_BACKEND_URL", *backendURL)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", *configPath, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctrl := form.New(finder.NewClient(&cfg.Backend))
	defer ctrl.Close()

	app := tui.NewApp(tui.NewSurveyDriver(), ctrl, os.Stdout)
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatalf("carpark-cli: %v", err)
	}
}
