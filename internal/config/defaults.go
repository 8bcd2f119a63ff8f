package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/lockbox/internal/constants"
)

// setDefaults registers the built-in default configuration values.
// Every key that can appear in a config file must have a default here
// so environment variable binding picks it up.
func setDefaults(v *viper.Viper) {
	v.SetDefault("vault.service", constants.DefaultService)
	v.SetDefault("vault.salt", "")
	v.SetDefault("vault.password_length", constants.DefaultPasswordLength)

	v.SetDefault("lock.non_blocking", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", true)
}

// Defaults returns a Config populated with the built-in defaults.
func Defaults() *Config {
	return &Config{
		Vault: VaultConfig{
			Service:        constants.DefaultService,
			PasswordLength: constants.DefaultPasswordLength,
		},
		Lock: LockConfig{NonBlocking: false},
		Log:  LogConfig{Level: "info", File: true},
	}
}
