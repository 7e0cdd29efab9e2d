package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ssysek/orlik-bot2/pkg/validator"
)

const (
	DefaultCourtID   = 229
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = "console"

	DefaultAPIBaseURL = "https://api.ballsquad.pl"
	DefaultAppOrigin  = "https://app.ballsquad.pl"

	// Minutes, as the booking app sends it (UTC+2 is -120).
	DefaultTimezoneOffset = -120

	DefaultNotifyTimeout = 15 * time.Second

	DateLayout = "2006-01-02"

	// DotEnvFile is read from the working directory when present.
	DotEnvFile = ".env"
)

// Date range watched for free slots.
var (
	FromDate = time.Date(2025, time.August, 22, 0, 0, 0, 0, time.UTC)
	ToDate   = time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)
)

var truthy = map[string]bool{"1": true, "true": true, "yes": true, "y": true}

type Config struct {
	// CourtID is used exactly as configured; any integer is accepted.
	CourtID        int
	FromDate       time.Time `validate:"required"`
	ToDate         time.Time `validate:"required,gtefield=FromDate"`
	TimezoneOffset int
	APIBaseURL     string `validate:"required,http_url"`
	AppOrigin      string `validate:"required,http_url"`
	WebhookURL     string `validate:"omitempty,http_url"`
	NotifyTimeout  time.Duration
	LogLevel       string `validate:"oneof=DEBUG INFO WARN WARNING ERROR CRITICAL FATAL"`
	LogFormat      string `validate:"oneof=console json"`
	// AlwaysNotify sends a heartbeat message even when nothing was found.
	AlwaysNotify bool

	// Degraded lists env-derived settings that were rejected and replaced
	// by their default, keyed by variable name. Logged by the caller once
	// the logger is up.
	Degraded map[string]string
}

// ParseError is returned when a numeric variable cannot be parsed.
type ParseError struct {
	Key   string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		CourtID:        DefaultCourtID,
		FromDate:       FromDate,
		ToDate:         ToDate,
		TimezoneOffset: DefaultTimezoneOffset,
		APIBaseURL:     DefaultAPIBaseURL,
		AppOrigin:      DefaultAppOrigin,
		NotifyTimeout:  DefaultNotifyTimeout,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		Degraded:       map[string]string{},
	}
}

// Load reads the configuration from the environment, after merging the
// optional .env file (process env wins).
//
// The only error is a *ParseError for COURT_ID. Even then the returned
// Config carries the resolved LogLevel and LogFormat so the caller can
// build a logger to report the failure.
func Load() (Config, error) {
	cfg := Default()

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		cfg.Degraded[DotEnvFile] = err.Error()
	}

	cfg.LogLevel = strings.ToUpper(envOrDefault("LOG_LEVEL", DefaultLogLevel))
	cfg.LogFormat = strings.ToLower(envOrDefault("LOG_FORMAT", DefaultLogFormat))
	cfg.WebhookURL = strings.TrimSpace(os.Getenv("DISCORD_WEBHOOK_URL"))
	cfg.AlwaysNotify = parseBool(os.Getenv("ALWAYS_NOTIFY_ON_SUCCESS"))

	// An empty COURT_ID counts as unset, like every other variable.
	raw := envOrDefault("COURT_ID", strconv.Itoa(DefaultCourtID))
	courtID, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		cfg.degrade()
		return cfg, &ParseError{Key: "COURT_ID", Value: raw, Err: err}
	}
	cfg.CourtID = courtID

	cfg.degrade()
	return cfg, nil
}

// envKeys maps validated fields back to the variable they came from.
var envKeys = map[string]string{
	"WebhookURL": "DISCORD_WEBHOOK_URL",
	"LogLevel":   "LOG_LEVEL",
	"LogFormat":  "LOG_FORMAT",
}

// degrade resets every field failing validation to its default.
func (c *Config) degrade() {
	err := validator.ValidateStruct(c)
	if err == nil {
		return
	}
	def := Default()
	for field, reason := range validator.TranslateError(err) {
		switch field {
		case "WebhookURL":
			c.WebhookURL = ""
		case "LogLevel":
			c.LogLevel = def.LogLevel
		case "LogFormat":
			c.LogFormat = def.LogFormat
		default:
			// compiled-in fields; nothing the environment can fix
			continue
		}
		c.Degraded[envKeys[field]] = reason
	}
}

// FromDateString returns the start of the watched range as YYYY-MM-DD.
func (c Config) FromDateString() string {
	return c.FromDate.Format(DateLayout)
}

// ToDateString returns the end of the watched range as YYYY-MM-DD.
func (c Config) ToDateString() string {
	return c.ToDate.Format(DateLayout)
}

// NotifyEnabled reports whether a webhook target is configured.
func (c Config) NotifyEnabled() bool {
	return c.WebhookURL != ""
}

func parseBool(v string) bool {
	return truthy[strings.ToLower(strings.TrimSpace(v))]
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
