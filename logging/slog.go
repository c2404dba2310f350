package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"

	"github.com/amirrezaask/contacts/env"
	"github.com/amirrezaask/contacts/errors"
)

type Config struct {
	LogLevel     slog.Level
	Output       io.Writer
	SentryConfig sentry.ClientOptions
}

func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

// ConfigFromEnv reads LOG_LEVEL, SENTRY_DSN and SENTRY_ENVIRONMENT.
func ConfigFromEnv() Config {
	return Config{
		LogLevel: ParseLevel(env.GetEnvDefault("LOG_LEVEL", "info")),
		SentryConfig: sentry.ClientOptions{
			Dsn:         env.GetEnvDefault("SENTRY_DSN", ""),
			Environment: env.GetEnvDefault("SENTRY_ENVIRONMENT", ""),
		},
	}
}

// New builds the logger described by c without touching slog's default.
func New(c Config) (*slog.Logger, error) {
	out := c.Output
	if out == nil {
		out = os.Stdout
	}
	handlers := []slog.Handler{
		slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level:     c.LogLevel,
			AddSource: true,
		}),
	}

	if c.SentryConfig.Dsn != "" && c.SentryConfig.Environment != "" {
		if err := sentry.Init(c.SentryConfig); err != nil {
			return nil, errors.Wrap(err, "cannot init sentry")
		}
		handlers = append(handlers, slogsentry.Option{
			Level:     slog.LevelWarn,
			AddSource: true,
		}.NewSentryHandler())
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// Init installs the logger described by c as slog's default.
func Init(c Config) error {
	logger, err := New(c)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	return nil
}
