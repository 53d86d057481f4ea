package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"

	"orgdesk/pkg/locale"
	"orgdesk/pkg/logger"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Locale is the raw FORMCHECK_LOCALE hint; Language is what it matched.
	Locale   string `env:"FORMCHECK_LOCALE" envDefault:"ru"`
	Language string `env:"-"`

	Pretty bool `env:"FORMCHECK_PRETTY" envDefault:"false"`

	Log *logger.Logger `env:"-"`
}

// Load reads the env files, parses the environment and validates the result.
// The logger is built from the parsed settings even when validation fails so
// callers can report the problem.
func Load(serviceName string, envFiles ...string) (*Config, error) {
	if envFiles == nil {
		envFiles = DefaultEnvFiles
	}
	if _, err := LoadEnv(envFiles); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.Language = locale.Match(cfg.Locale)

	cfg.Log = logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MustLoad is Load for program start-up: a bad configuration is fatal.
func MustLoad(serviceName string) *Config {
	cfg, err := Load(serviceName)
	if err != nil {
		if cfg != nil && cfg.Log != nil {
			cfg.Log.Fatal(err.Error())
		}
		logger.New(logger.Config{Service: serviceName}).Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errors []string

	levels := []string{logger.DEBUG, logger.INFO, logger.WARN, logger.ERROR}
	if !slices.Contains(levels, cfg.LogLevel) {
		errors = append(errors, fmt.Sprintf("%s must be one of %s, got: %q", EnvLogLevel, strings.Join(levels, ", "), cfg.LogLevel))
	}

	if cfg.LogFormat != logger.JSON && cfg.LogFormat != logger.TEXT {
		errors = append(errors, fmt.Sprintf("%s must be %q or %q, got: %q", EnvLogFormat, logger.JSON, logger.TEXT, cfg.LogFormat))
	}

	if strings.TrimSpace(cfg.Locale) == "" {
		errors = append(errors, fmt.Sprintf("%s cannot be empty", EnvLocale))
	} else if !locale.IsSupported(cfg.Language) {
		errors = append(errors, fmt.Sprintf("%s %q does not match a supported locale (%s)", EnvLocale, cfg.Locale, strings.Join(locale.Supported, ", ")))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Debug("Configuration loaded successfully",
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"locale", cfg.Locale,
		"language", cfg.Language,
		"pretty", cfg.Pretty,
	)
}
