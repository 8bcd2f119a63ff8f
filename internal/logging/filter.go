// Package logging provides logging utilities including sensitive data filtering.
// This package contains hooks and utilities for zerolog that help ensure
// passwords, derived keys, and encryption tokens are never written to log files.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// sensitivePatterns contains compiled regular expressions for detecting
// secrets this tool handles: encryption tokens, Base64 key material, and
// credential assignments.
var sensitivePatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // Package-level patterns for reuse
	// Fernet tokens (version byte 0x80 encodes to a leading "gAAAAA")
	regexp.MustCompile(`gAAAAA[a-zA-Z0-9_-]+={0,2}`),

	// Base64-encoded key material (44-character urlsafe blocks)
	regexp.MustCompile(`(?i)(key|token)\s*[:=]\s*["']?[a-zA-Z0-9_-]{43}=["']?`),

	// Generic secret assignments (password, secret, credential with values)
	regexp.MustCompile(`(?i)(secret|password|credential|passwd|pwd|salt)\s*[:=]\s*["']?[^\s"']{4,}["']?`),
}

// sensitiveFieldNames contains field names whose values are always
// redacted. Matching is case-insensitive and matches substrings.
var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // Package-level patterns for reuse
	"password",
	"passwd",
	"pwd",
	"secret",
	"credential",
	"credentials",
	"token",
	"key",
	"salt",
}

// SensitiveDataHook is a zerolog hook that flags log entries whose
// message contains sensitive data. Zerolog hooks cannot rewrite the
// message, so the hook marks the entry and the actual redaction happens
// at call sites (SafeValue) and in the file writer (FilteringWriter).
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a new SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements the zerolog.Hook interface.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData checks if a string matches any sensitive pattern.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces any matches of sensitive patterns in
// value with RedactedValue.
func FilterSensitiveValue(value string) string {
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedValue)
	}
	return result
}

// IsSensitiveFieldName checks if a field name indicates sensitive data.
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lowerName, sensitive) {
			return true
		}
	}
	return false
}

// SafeValue returns a loggable form of a field value: fully redacted
// when the field name indicates a secret, pattern-filtered otherwise.
//
// Usage:
//
//	log.Info().Str("service", logging.SafeValue("service", svc)).Msg("vault ready")
func SafeValue(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter wraps an io.Writer and filters sensitive data from
// everything written through it. It wraps the log file writer so secrets
// never reach disk even if they appear in a message or field value.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a FilteringWriter around w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer, filtering sensitive data before writing.
// It reports the original length so callers do not see a short write
// when redaction changes the payload size.
func (fw *FilteringWriter) Write(p []byte) (n int, err error) {
	if _, err := fw.w.Write([]byte(FilterSensitiveValue(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}
