// Package config loads and validates lockbox configuration from config
// files (global and project) and LOCKBOX_* environment variables.
package config

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config is the root configuration for lockbox.
type Config struct {
	// Vault configures the encrypted credential store.
	Vault VaultConfig `mapstructure:"vault" yaml:"vault" json:"vault"`

	// Lock configures default locking behavior for the CLI.
	Lock LockConfig `mapstructure:"lock" yaml:"lock" json:"lock"`

	// Log configures logging output.
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
}

// VaultConfig configures the credential vault.
type VaultConfig struct {
	// Service is the credential store service name secrets are filed under.
	Service string `mapstructure:"service" yaml:"service" json:"service"`

	// Salt is the key derivation salt. It is not a secret in the
	// cryptographic sense, but it must stay stable: changing it makes
	// previously stored credentials undecryptable.
	Salt string `mapstructure:"salt" yaml:"salt" json:"salt"`

	// PasswordLength is the length of generated passwords.
	PasswordLength int `mapstructure:"password_length" yaml:"password_length" json:"password_length"`
}

// LockConfig configures default locking behavior.
type LockConfig struct {
	// NonBlocking makes lock commands fail immediately instead of
	// waiting when a lock is unavailable.
	NonBlocking bool `mapstructure:"non_blocking" yaml:"non_blocking" json:"non_blocking"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is the minimum level written ("debug", "info", "warn", "error").
	Level string `mapstructure:"level" yaml:"level" json:"level"`

	// File enables the rotating log file under the lockbox home directory.
	File bool `mapstructure:"file" yaml:"file" json:"file"`
}

// viperDecoderOption returns the decode hooks used when unmarshaling
// viper configuration into Config.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}
