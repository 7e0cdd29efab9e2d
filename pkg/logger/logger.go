package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type CanonicalLogger struct {
	l *zap.Logger
}

// Options controls how NewLogger builds the underlying zap logger.
type Options struct {
	// Level is one of DEBUG, INFO, WARN, WARNING, ERROR, CRITICAL, FATAL
	// (case-insensitive). Anything else falls back to INFO.
	Level string
	// Format is "console" (default) or "json".
	Format string
}

// NewLogger creates a logger writing to stdout.
// Supported formats:
//   - "console": "<ISO8601 time>\t<LEVEL>\t<message>\t{fields}" lines
//   - "json": one structured JSON object per line
//
// The logger skips one caller frame so the caller field points at the
// calling code instead of the wrapper.
func NewLogger(component string, opts Options) (*CanonicalLogger, error) {
	encoding := "console"
	if strings.EqualFold(opts.Format, "json") {
		encoding = "json"
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(ParseLevel(opts.Level)),
		Encoding:          encoding,
		EncoderConfig:     encCfg,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}

	zapLogger, err := cfg.Build(
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("component", component)),
	)
	if err != nil {
		return nil, err
	}

	return &CanonicalLogger{l: zapLogger}, nil
}

// New wraps an existing zap logger. Tests use it with zaptest/observer.
func New(l *zap.Logger) *CanonicalLogger {
	return &CanonicalLogger{l: l}
}

// NewNop returns a logger that discards everything.
func NewNop() *CanonicalLogger {
	return &CanonicalLogger{l: zap.NewNop()}
}

// ParseLevel maps LOG_LEVEL names onto zap levels.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "CRITICAL", "FATAL":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (c *CanonicalLogger) Sync() {
	_ = c.l.Sync()
}

func (c *CanonicalLogger) Info(msg string, fields ...zap.Field) {
	c.l.Info(msg, fields...)
}

func (c *CanonicalLogger) Debug(msg string, fields ...zap.Field) {
	c.l.Debug(msg, fields...)
}

func (c *CanonicalLogger) Warn(msg string, fields ...zap.Field) {
	c.l.Warn(msg, fields...)
}

func (c *CanonicalLogger) Error(msg string, fields ...zap.Field) {
	c.l.Error(msg, fields...)
}

func (c *CanonicalLogger) Fatal(msg string, fields ...zap.Field) {
	c.l.Fatal(msg, fields...)
}

func (c *CanonicalLogger) WithError(err error) *CanonicalLogger {
	return &CanonicalLogger{l: c.l.With(zap.Error(err))}
}

func (c *CanonicalLogger) WithRunID(id string) *CanonicalLogger {
	return &CanonicalLogger{l: c.l.With(zap.String(FieldRunID, id))}
}

func (c *CanonicalLogger) WithCourtID(id int) *CanonicalLogger {
	return &CanonicalLogger{l: c.l.With(zap.Int(FieldCourtID, id))}
}

func (c *CanonicalLogger) Component(name string) *CanonicalLogger {
	return &CanonicalLogger{l: c.l.With(zap.String("component", name))}
}

// HTTP logs a completed outbound request.
func (c *CanonicalLogger) HTTP(method, url string, status int, durationMs int64) {
	c.l.Debug("http_request", zap.String("method", method), zap.String("url", url), zap.Int("status", status), zap.Int64("duration_ms", durationMs))
}

// HTTPError logs a request that came back with a non-2xx status.
func (c *CanonicalLogger) HTTPError(method, url string, status int, err error) {
	c.l.Error("http_error", zap.String("method", method), zap.String("url", url), zap.Int("status", status), zap.Error(err))
}
