package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"wb-squad-stats/internal/config"
	"wb-squad-stats/internal/logging"
	"wb-squad-stats/internal/runner"
)

const appVersion = "dev"

var envFiles = []string{".env", "../.env"}

func main() {
	if os.Getenv("SKIP_COLLECTOR_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	loadEnvFile()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "wb-squad-stats",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := runner.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("collector setup failed", "error", err)
		return 1
	}
	if err := r.Run(ctx); err != nil {
		logger.Error("collector failed", "error", err)
		return 1
	}
	return 0
}

// loadEnvFile loads the first .env file found; real environment variables win.
func loadEnvFile() {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}
