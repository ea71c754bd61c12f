package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent failures surfaced by the core.
// These are distinct from the causes reported by infrastructure adapters.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Port Errors.

	// ErrPortNotConfigured indicates no implementation is bound for a capability port.
	// It signals a bootstrap ordering bug and is never retried.
	ErrPortNotConfigured = errors.New("port not configured")

	// Configuration Errors.

	// ErrConfigurationLoad indicates the bound configuration source failed to produce a value.
	ErrConfigurationLoad = errors.New("configuration load failed")

	// ErrConfigurationNotFound indicates a configuration source holds no configuration at all.
	// Adapters wrap it in a ConfigurationLoadError so that chained sources can skip ahead.
	ErrConfigurationNotFound = errors.New("configuration not found")
)

// PortNotConfiguredError reports a capability port with no bound implementation.
type PortNotConfiguredError struct {
	// Port is the name of the capability type that was requested.
	Port string
}

// Error implements the error interface.
func (e *PortNotConfiguredError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPortNotConfigured, e.Port)
}

// Is reports whether target is ErrPortNotConfigured.
func (e *PortNotConfiguredError) Is(target error) bool {
	return target == ErrPortNotConfigured
}

// ConfigurationLoadError reports a configuration source that could not produce a value.
type ConfigurationLoadError struct {
	// Source describes where the configuration was read from (file path, env prefix, ...).
	Source string

	// Err is the underlying cause.
	Err error
}

// NewConfigurationLoadError wraps cause as a load failure of source.
func NewConfigurationLoadError(source string, cause error) *ConfigurationLoadError {
	return &ConfigurationLoadError{Source: source, Err: cause}
}

// Error implements the error interface.
func (e *ConfigurationLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrConfigurationLoad, e.Source)
	}
	return fmt.Sprintf("%s: %s: %v", ErrConfigurationLoad, e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigurationLoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConfigurationLoad.
func (e *ConfigurationLoadError) Is(target error) bool {
	return target == ErrConfigurationLoad
}
