package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"brewhaus.com/app/internal/backend"
	"brewhaus.com/app/internal/config"
	web "brewhaus.com/app/internal/http"
)

func main() {
	// .env is a dev convenience; the real deployment sets the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config_load_failed", slog.Any("err", err))
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Logging.Level),
	}))
	slog.SetDefault(log)

	client := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Logger:  log,
	})

	r := web.NewRouter(cfg, log, client)

	log.Info("server_starting",
		slog.String("addr", cfg.Server.Addr),
		slog.String("environment", cfg.Server.Environment),
		slog.String("backend", cfg.Backend.BaseURL),
	)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Error("server_stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
