package app

import (
	"context"

	"github.com/ssysek/orlik-bot2/internal/config"
	"github.com/ssysek/orlik-bot2/internal/models"
	"github.com/ssysek/orlik-bot2/internal/watcher/repository"
	"github.com/ssysek/orlik-bot2/internal/watcher/usecase"
	"github.com/ssysek/orlik-bot2/pkg/logger"
)

// Run builds the clients for cfg and performs a single check.
func Run(ctx context.Context, cfg config.Config, log *logger.CanonicalLogger) models.Outcome {
	ballsquad := repository.NewBallsquadClient(cfg, log)
	notifier := repository.NewDiscordNotifier(cfg, log)

	uc := usecase.NewUseCase(ballsquad, notifier, cfg, log)
	return uc.Run(ctx)
}
