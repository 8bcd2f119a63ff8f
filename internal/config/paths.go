package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/lockbox/internal/constants"
	"github.com/mrz1836/lockbox/internal/errors"
)

// Home returns the lockbox home directory: $LOCKBOX_HOME when set,
// otherwise ~/.lockbox.
func Home() (string, error) {
	if home := os.Getenv(constants.EnvHome); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(home, constants.LockboxHome), nil
}

// GlobalConfigPath returns the path of the global config file
// ($LOCKBOX_HOME|~/.lockbox)/config.yaml.
func GlobalConfigPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

// ProjectConfigPath returns the path of the per-project config file
// .lockbox/config.yaml relative to the working directory.
func ProjectConfigPath() string {
	return filepath.Join(constants.LockboxHome, constants.ConfigFileName+"."+constants.ConfigFileType)
}
