package usecase

import (
	"context"

	"github.com/ssysek/orlik-bot2/internal/models"
)

// IUseCase defines the court watcher business logic
type IUseCase interface {
	// Run performs one full check: authenticate, fetch, notify.
	// It never returns an error; failures end in OutcomeFailed after one
	// best-effort error notification.
	Run(ctx context.Context) models.Outcome
}
