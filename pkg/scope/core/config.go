package core

import (
	"context"

	"github.com/bassosimone/runtimex"
)

type OptionKey string

const ConfigOptionKey OptionKey = "scope_config"

// Config holds the settings used by traced chains.
type Config struct {
	// Logger receives chain events.
	//
	// Set by [NewConfig] to [DefaultSLogger].
	Logger SLogger

	// NewSpanID returns the id shared by the steps of one chain.
	//
	// Set by [NewConfig] to [NewSpanID].
	NewSpanID func() string
}

// NewConfig creates a [*Config] with defaults that log nothing.
func NewConfig() *Config {
	return &Config{
		Logger:    DefaultSLogger(),
		NewSpanID: NewSpanID,
	}
}

// NewConfigWithLogger is [NewConfig] with the given logger.
func NewConfigWithLogger(logger SLogger) *Config {
	runtimex.Assert(logger != nil)
	cfg := NewConfig()
	cfg.Logger = logger
	return cfg
}

func WithConfig(ctx context.Context, cfg *Config) context.Context {
	runtimex.Assert(cfg != nil)
	return context.WithValue(ctx, ConfigOptionKey, cfg)
}

// ConfigFrom returns the config stored by [WithConfig], or defaultCfg.
func ConfigFrom(ctx context.Context, defaultCfg *Config) *Config {
	cfg, ok := ctx.Value(ConfigOptionKey).(*Config)
	if ok {
		return cfg
	}
	return defaultCfg
}
