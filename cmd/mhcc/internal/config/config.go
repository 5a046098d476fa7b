package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"

	"github.com/Daddy-Tine/MHCreditCheck/cmd/mhcc/internal/client"
)

type contextKey string

const configKey contextKey = "mhcc-config"

// Env holds the environment-variable overrides for the CLI. Flags win over
// environment values; environment values win over defaults.
type Env struct {
	ServerURL      string `env:"MHCC_SERVER_URL"`
	NonInteractive bool   `env:"MHCC_NON_INTERACTIVE"`
	Verbose        bool   `env:"MHCC_VERBOSE"`
}

// LoadEnv reads the MHCC_* environment variables.
func LoadEnv(ctx context.Context) (Env, error) {
	var e Env
	if err := envconfig.Process(ctx, &e); err != nil {
		return Env{}, err
	}
	return e, nil
}

// GlobalConfig holds shared configuration for all mhcc commands. The root
// command builds it in PersistentPreRunE and injects it into the command
// context; subcommands consume it from there.
type GlobalConfig struct {
	ServerURL      string
	NonInteractive bool
	Verbose        bool
	Provider       *client.Provider
}

// InjectConfig adds cfg to the cobra command context.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the command context.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. Only for command
// RunE functions, where the root command has already injected it.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("mhcc: config not found in context - this is a bug in mhcc")
	}
	return cfg
}
