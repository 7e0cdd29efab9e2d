package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"INFO", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"Warning", zapcore.WarnLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"CRITICAL", zapcore.FatalLevel},
		{" debug ", zapcore.DebugLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json", ""} {
		l, err := NewLogger("test", Options{Level: "DEBUG", Format: format})
		require.NoError(t, err)
		require.NotNil(t, l)
	}
}

func TestLogContextCollectsFields(t *testing.T) {
	lc := NewLogContext()
	ctx := WithLogContext(context.Background(), lc)

	AddToContext(ctx, zap.Int(FieldCourtID, 229))
	AddToContext(ctx, zap.Int(FieldSlotCount, 0), zap.Bool(FieldSuccess, true))

	fields := lc.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, FieldCourtID, fields[0].Key)
	assert.Equal(t, FieldSuccess, fields[2].Key)
}

func TestAddToContextWithoutLogContext(t *testing.T) {
	assert.NotPanics(t, func() {
		AddToContext(context.Background(), zap.String("k", "v"))
	})
	var lc *LogContext
	assert.Nil(t, lc.Fields())
}

func TestWithRunIDAddsField(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := New(zap.New(core)).WithRunID("run-1")

	l.Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "run-1", entries[0].ContextMap()[FieldRunID])
}
