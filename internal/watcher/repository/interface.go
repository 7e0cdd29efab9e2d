package repository

import (
	"context"

	"github.com/ssysek/orlik-bot2/internal/models"
)

// IBallsquadClient talks to the court booking API
type IBallsquadClient interface {
	// Authenticate obtains an anonymous bearer token. An empty token with a
	// nil error means the response carried none of the known token fields.
	Authenticate(ctx context.Context) (string, error)
	// GetAvailabilities lists free slots for the configured court and range
	GetAvailabilities(ctx context.Context, token string) (models.SlotList, error)
}

// INotifier delivers a message to the chat channel
type INotifier interface {
	// Notify sends one message. It is a no-op when no target is configured.
	Notify(ctx context.Context, message string) error
}
