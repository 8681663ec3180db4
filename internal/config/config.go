// Package config loads the dnsdump tool's configuration from environment
// variables layered over struct defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds the dnsdump settings parsed from DNSWIRE_* variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod"; it selects
	// the log encoder.
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Format says how the input file is encoded: "raw" packet bytes or a
	// whitespace-separated "hex" dump.
	Format string `koanf:"format" validate:"required,oneof=raw hex"`

	// Mode selects the decoder: "full" materializes the whole message,
	// "ref" runs the zero-copy scan and materializes from the refs.
	Mode string `koanf:"mode" validate:"required,oneof=full ref"`
}

// Defaults is the configuration used when no environment overrides exist.
var Defaults = AppConfig{
	Env:      "prod",
	LogLevel: "info",
	Format:   "raw",
	Mode:     "full",
}

// Load parses environment variables and returns a validated AppConfig.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading default config: %w", err)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: "DNSWIRE_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "DNSWIRE_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
