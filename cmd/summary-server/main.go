// Command summary-server runs the summary-kit HTTP API.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/cecil-the-coder/summary-kit/pkg/backend"
	"github.com/cecil-the-coder/summary-kit/pkg/backend/handlers"
	"github.com/cecil-the-coder/summary-kit/pkg/config"
	"github.com/cecil-the-coder/summary-kit/pkg/dispatch"
	"github.com/cecil-the-coder/summary-kit/pkg/manager"
	"github.com/cecil-the-coder/summary-kit/pkg/providers/groq"
	"github.com/cecil-the-coder/summary-kit/pkg/validate"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	// .env is optional and only used for local development
	_ = godotenv.Load()

	logger := newLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading configuration")
	}
	logger = newLogger(cfg.LogLevel)

	keys := manager.NewKeyHolder(cfg.Groq.APIKey)
	var mgrOpts []manager.Option
	if cfg.Groq.BaseURL != "" {
		mgrOpts = append(mgrOpts, manager.WithGroqOptions(groq.WithBaseURL(cfg.Groq.BaseURL)))
	}
	mgr := manager.New(keys, cfg.Ollama.BaseURL, mgrOpts...)

	dispatcher := dispatch.New(mgr, validate.Limits{
		MinWords: cfg.Validation.MinWords,
		MaxWords: cfg.Validation.MaxWords,
	}, dispatch.WithDefaultLength(cfg.Summary.DefaultMaxLengthWords))

	h := handlers.New(mgr, dispatcher, version)
	srv := backend.New(backend.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, h, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
