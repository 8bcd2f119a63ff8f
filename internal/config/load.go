package config

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/lockbox/internal/constants"
	"github.com/mrz1836/lockbox/internal/errors"
)

// newViperInstance creates a Viper instance with standard lockbox
// configuration: defaults, the LOCKBOX_ environment prefix, and a key
// replacer so LOCKBOX_VAULT_SERVICE maps to vault.service.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from all available sources with proper
// precedence (highest first):
//  1. Environment variables (LOCKBOX_* prefix)
//  2. Project config (.lockbox/config.yaml)
//  3. Global config (~/.lockbox/config.yaml)
//  4. Built-in defaults
//
// Missing config files are expected and are not errors.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := mergeConfigFile(v, globalConfigIfExists()); err != nil {
		return nil, err
	}
	if err := mergeConfigFile(v, projectConfigIfExists()); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("vault.service", cfg.Vault.Service).
		Int("vault.password_length", cfg.Vault.PasswordLength).
		Str("log.level", cfg.Log.Level).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// mergeConfigFile merges the file at path into v. An empty path is a
// no-op.
func mergeConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config %s", path)
	}
	return nil
}

// globalConfigIfExists returns the global config path when the file
// exists, "" otherwise.
func globalConfigIfExists() string {
	path, err := GlobalConfigPath()
	if err != nil {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// projectConfigIfExists returns the project config path when the file
// exists, "" otherwise.
func projectConfigIfExists() string {
	path := ProjectConfigPath()
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
