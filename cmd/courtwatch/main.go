package main

import (
	"context"

	"github.com/google/uuid"

	"github.com/ssysek/orlik-bot2/internal/app"
	"github.com/ssysek/orlik-bot2/internal/config"
	"github.com/ssysek/orlik-bot2/internal/models"
	"github.com/ssysek/orlik-bot2/pkg/logger"
)

func main() {
	cfg, cfgErr := config.Load()

	log, err := logger.NewLogger("courtwatch", logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log = log.WithRunID(uuid.NewString())

	if _, err := run(context.Background(), cfg, cfgErr, log); err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
}

// run performs one check. A configuration error aborts it before any
// network call is made.
func run(ctx context.Context, cfg config.Config, cfgErr error, log *logger.CanonicalLogger) (models.Outcome, error) {
	if cfgErr != nil {
		return "", cfgErr
	}

	for key, reason := range cfg.Degraded {
		log.Warn("ignoring invalid setting; using default",
			logger.String("key", key),
			logger.String("reason", reason),
		)
	}

	log.Info("configuration loaded",
		logger.Int(logger.FieldCourtID, cfg.CourtID),
		logger.String(logger.FieldFromDate, cfg.FromDateString()),
		logger.String(logger.FieldToDate, cfg.ToDateString()),
		logger.Bool("always_notify", cfg.AlwaysNotify),
		logger.Bool("webhook_configured", cfg.NotifyEnabled()),
	)

	lc := logger.NewLogContext()
	ctx = logger.WithLogContext(ctx, lc)

	outcome := app.Run(ctx, cfg, log)

	log.Info("run_complete", lc.Fields()...)
	return outcome, nil
}
