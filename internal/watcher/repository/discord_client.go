package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/ssysek/orlik-bot2/internal/config"
	"github.com/ssysek/orlik-bot2/internal/watcher/dto"
	"github.com/ssysek/orlik-bot2/pkg/logger"
	"github.com/ssysek/orlik-bot2/pkg/validator"
)

type discordNotifier struct {
	httpClient *http.Client
	webhookURL string
	logger     *logger.CanonicalLogger
}

// NewDiscordNotifier creates a webhook notifier. Without a webhook URL
// every Notify call is a logged no-op.
func NewDiscordNotifier(cfg config.Config, log *logger.CanonicalLogger) INotifier {
	timeout := cfg.NotifyTimeout
	if timeout <= 0 {
		timeout = config.DefaultNotifyTimeout
	}
	return &discordNotifier{
		httpClient: &http.Client{Timeout: timeout},
		webhookURL: cfg.WebhookURL,
		logger:     log.Component("discord"),
	}
}

// Notify posts {"content": message} to the webhook, once.
func (n *discordNotifier) Notify(ctx context.Context, message string) error {
	if n.webhookURL == "" {
		n.logger.Info("DISCORD_WEBHOOK_URL not set; skipping Discord notify")
		return nil
	}

	msg := dto.WebhookMessage{Content: truncate(message, dto.MaxContentLength)}
	if err := validator.ValidateStruct(msg); err != nil {
		return fmt.Errorf("invalid webhook message: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := n.httpClient.Do(req)
	if err != nil {
		// *url.Error would echo the webhook token
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	n.logger.HTTP(req.Method, redact(n.webhookURL), resp.StatusCode, time.Since(start).Milliseconds())

	if !isSuccess(resp.StatusCode) {
		herr := newHTTPError("notify", resp)
		n.logger.HTTPError(req.Method, redact(n.webhookURL), resp.StatusCode, herr)
		return herr
	}

	n.logger.Info("Discord notification sent", logger.Int("length", utf8.RuneCountInString(msg.Content)))
	return nil
}

// truncate cuts s to at most limit runes, marking the cut with an ellipsis.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

// redact keeps scheme and host; webhook paths embed the secret.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	return u.Scheme + "://" + u.Host
}
