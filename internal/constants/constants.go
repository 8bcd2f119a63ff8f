// Package constants provides centralized constant values used throughout lockbox.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Directory and file names used by lockbox for organizing data.
const (
	// LockboxHome is the hidden directory name where lockbox stores its data.
	// This directory is created in the user's home directory.
	LockboxHome = ".lockbox"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "lockbox.log"

	// ConfigFileName is the base name (without extension) of config files.
	ConfigFileName = "config"

	// ConfigFileType is the format of config files.
	ConfigFileType = "yaml"
)

// Environment variables recognized by lockbox.
const (
	// EnvHome overrides the lockbox home directory (~/.lockbox).
	EnvHome = "LOCKBOX_HOME"

	// EnvPrefix is the prefix for configuration environment variables
	// (e.g. LOCKBOX_VAULT_SERVICE).
	EnvPrefix = "LOCKBOX"

	// EnvPassword supplies the vault master password non-interactively.
	EnvPassword = "LOCKBOX_PASSWORD"
)

// Credential vault defaults.
const (
	// DefaultService is the credential store service name used when the
	// configuration does not specify one.
	DefaultService = "lockbox"

	// DefaultPasswordLength is the length of generated passwords.
	DefaultPasswordLength = 16

	// MinPasswordLength and MaxPasswordLength bound generated password sizes.
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// Log rotation settings for the global CLI log file.
const (
	// LogMaxSizeMB is the maximum size of a log file before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of a rotated log file.
	LogMaxAgeDays = 28

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)
