package usecase

import (
	"context"

	"github.com/ssysek/orlik-bot2/internal/config"
	"github.com/ssysek/orlik-bot2/internal/models"
	"github.com/ssysek/orlik-bot2/internal/watcher/repository"
	"github.com/ssysek/orlik-bot2/pkg/logger"
)

type UseCase struct {
	ballsquad repository.IBallsquadClient
	notifier  repository.INotifier
	cfg       config.Config
	logger    *logger.CanonicalLogger
}

func NewUseCase(ballsquad repository.IBallsquadClient, notifier repository.INotifier, cfg config.Config, log *logger.CanonicalLogger) *UseCase {
	return &UseCase{
		ballsquad: ballsquad,
		notifier:  notifier,
		cfg:       cfg,
		logger:    log.Component("watcher").WithCourtID(cfg.CourtID),
	}
}

// Run executes one check. Any failure is logged and reported through one
// error notification whose own failure is only logged.
func (uc *UseCase) Run(ctx context.Context) models.Outcome {
	logger.AddToContext(ctx,
		logger.Int(logger.FieldCourtID, uc.cfg.CourtID),
		logger.String(logger.FieldFromDate, uc.cfg.FromDateString()),
		logger.String(logger.FieldToDate, uc.cfg.ToDateString()),
	)

	outcome, err := uc.check(ctx)
	if err == nil {
		logger.AddToContext(ctx,
			logger.String(logger.FieldOutcome, outcome.String()),
			logger.Bool(logger.FieldSuccess, true),
		)
		return outcome
	}

	uc.logger.WithError(err).Error("check failed")
	logger.AddToContext(ctx,
		logger.String(logger.FieldOutcome, models.OutcomeFailed.String()),
		logger.Bool(logger.FieldSuccess, false),
		logger.Err(err),
	)

	if nerr := uc.notifier.Notify(ctx, ErrorMessage(err)); nerr != nil {
		uc.logger.WithError(nerr).Error("failed to send error notification")
	}

	return models.OutcomeFailed
}

// check walks Start -> TokenAcquired -> SlotsFetched -> Notified|Skipped.
func (uc *UseCase) check(ctx context.Context) (models.Outcome, error) {
	uc.logger.Info("getting token")
	token, err := uc.ballsquad.Authenticate(ctx)
	if err != nil {
		return models.OutcomeFailed, err
	}

	uc.logger.Info("getting availabilities",
		logger.String(logger.FieldFromDate, uc.cfg.FromDateString()),
		logger.String(logger.FieldToDate, uc.cfg.ToDateString()),
	)
	slots, err := uc.ballsquad.GetAvailabilities(ctx, token)
	if err != nil {
		return models.OutcomeFailed, err
	}

	uc.logger.Info("availabilities fetched", logger.Int(logger.FieldSlotCount, slots.Len()))
	logger.AddToContext(ctx, logger.Int(logger.FieldSlotCount, slots.Len()))

	if !slots.Empty() {
		if err := uc.notifier.Notify(ctx, FoundMessage(uc.cfg.CourtID, slots)); err != nil {
			return models.OutcomeFailed, err
		}
		logger.AddToContext(ctx, logger.Bool(logger.FieldNotified, uc.cfg.NotifyEnabled()))
		return models.OutcomeFound, nil
	}

	uc.logger.Info("no slots found")
	if !uc.cfg.AlwaysNotify {
		logger.AddToContext(ctx, logger.Bool(logger.FieldNotified, false))
		return models.OutcomeSkipped, nil
	}

	msg := HeartbeatMessage(uc.cfg.CourtID, uc.cfg.FromDateString(), uc.cfg.ToDateString())
	if err := uc.notifier.Notify(ctx, msg); err != nil {
		return models.OutcomeFailed, err
	}
	logger.AddToContext(ctx, logger.Bool(logger.FieldNotified, uc.cfg.NotifyEnabled()))
	return models.OutcomeHeartbeat, nil
}
