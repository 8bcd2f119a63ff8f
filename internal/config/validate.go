package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mrz1836/lockbox/internal/constants"
	"github.com/mrz1836/lockbox/internal/errors"
)

// Validate checks a Config for values that would misbehave at runtime.
// It returns the first problem found as a sentinel-wrapped error.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := validateVault(&cfg.Vault); err != nil {
		return err
	}
	return validateLog(&cfg.Log)
}

func validateVault(v *VaultConfig) error {
	if v.Service == "" {
		return fmt.Errorf("%w: service %w", errors.ErrConfigInvalidVault, errors.ErrEmptyValue)
	}
	if v.PasswordLength < constants.MinPasswordLength || v.PasswordLength > constants.MaxPasswordLength {
		return fmt.Errorf("%w: password_length %d not in [%d, %d]",
			errors.ErrValueOutOfRange, v.PasswordLength,
			constants.MinPasswordLength, constants.MaxPasswordLength)
	}
	return nil
}

func validateLog(l *LogConfig) error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("%w: level %q", errors.ErrConfigInvalidLog, l.Level)
	}
	return nil
}
