package main

import (
	"os"

	"github.com/google/uuid"

	"github.com/noah-isme/toko-kasir/internal/app"
	"github.com/noah-isme/toko-kasir/internal/common"
	"github.com/noah-isme/toko-kasir/internal/config"
	"github.com/noah-isme/toko-kasir/internal/obs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().
		Str("env", cfg.AppEnv).
		Str("run_id", uuid.NewString()).
		Logger()

	runner := &app.Runner{Config: cfg, Log: logger}
	status := runner.Run(os.Args[1:])

	// Success and failure are both communicated through the output file; the
	// process terminates normally either way.
	if status == common.StatusCompleted {
		logger.Info().Msg("run completed")
	} else {
		logger.Info().Str("status", string(status)).Msg("run terminated")
	}
}
