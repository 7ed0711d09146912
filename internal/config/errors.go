package config

import (
	"errors"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigurationError lists the settings that are missing or invalid.
type ConfigurationError struct {
	Settings []string
}

func (e *ConfigurationError) Error() string {
	return "missing or invalid settings: " + strings.Join(e.Settings, ", ")
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfig
}
