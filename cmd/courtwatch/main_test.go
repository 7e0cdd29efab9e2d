package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ssysek/orlik-bot2/internal/config"
	"github.com/ssysek/orlik-bot2/internal/models"
	"github.com/ssysek/orlik-bot2/pkg/logger"
)

func countingServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method == http.MethodPost {
			_, _ = w.Write([]byte(`{"access_token":"abc"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestRun_InvalidCourtIDAbortsBeforeNetwork(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("COURT_ID", "abc")
	t.Setenv("DISCORD_WEBHOOK_URL", "")

	var hits atomic.Int32
	ts := countingServer(t, &hits)

	cfg, cfgErr := config.Load()
	require.Error(t, cfgErr)
	cfg.APIBaseURL = ts.URL

	outcome, err := run(context.Background(), cfg, cfgErr, logger.NewNop())

	var perr *config.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "COURT_ID", perr.Key)
	assert.Empty(t, outcome)
	assert.Zero(t, hits.Load())
}

func TestRun_ValidConfigCompletesRun(t *testing.T) {
	var hits atomic.Int32
	ts := countingServer(t, &hits)

	cfg := config.Default()
	cfg.APIBaseURL = ts.URL
	cfg.Degraded["LOG_FORMAT"] = "oneof"

	core, logs := observer.New(zapcore.InfoLevel)
	outcome, err := run(context.Background(), cfg, nil, logger.New(zap.New(core)))

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeSkipped, outcome)
	assert.EqualValues(t, 2, hits.Load())
	assert.Len(t, logs.FilterMessage("ignoring invalid setting; using default").All(), 1)

	summary := logs.FilterMessage("run_complete").All()
	require.Len(t, summary, 1)
	assert.Equal(t, string(models.OutcomeSkipped), summary[0].ContextMap()[logger.FieldOutcome])
}
