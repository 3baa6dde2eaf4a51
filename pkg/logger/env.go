package logger

import (
	"fmt"
	"log/slog"

	bkconfig "github.com/bearkit/bearkit/pkg/config"
)

// EnvConfig carries the environment-driven logger settings.
type EnvConfig struct {
	Level     string `env:"LOG_LEVEL" envDefault:"info"`
	Format    string `env:"LOG_FORMAT" envDefault:"console"`
	Signature string `env:"LOG_SIGNATURE"`
	NoColor   bool   `env:"LOG_NO_COLOR" envDefault:"false"`
	Source    bool   `env:"LOG_SOURCE" envDefault:"false"`
}

// NewFromEnv builds a logger from LOG_* environment variables, applying any
// extra options on top. Environment values win over defaults but lose to
// explicit options, which are applied last.
func NewFromEnv(opts ...Option) (*slog.Logger, error) {
	var cfg EnvConfig
	if err := bkconfig.Load(&cfg); err != nil {
		return nil, err
	}

	switch Format(cfg.Format) {
	case FormatJSON, FormatText, FormatConsole:
	default:
		return nil, fmt.Errorf("logger: unknown LOG_FORMAT %q", cfg.Format)
	}

	envOpts := []Option{
		WithLevel(ParseLevel(cfg.Level)),
		WithFormat(Format(cfg.Format)),
	}
	if cfg.Signature != "" {
		envOpts = append(envOpts, WithSignature(cfg.Signature))
	}
	if cfg.NoColor {
		envOpts = append(envOpts, WithoutColor())
	}
	if cfg.Source {
		envOpts = append(envOpts, WithSource())
	}

	return New(append(envOpts, opts...)...), nil
}
