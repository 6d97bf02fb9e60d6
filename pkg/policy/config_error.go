package policy

import "fmt"

func NewConfigError(field, value, reason string) *ConfigError {
	return &ConfigError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// ConfigError is the error type for malformed or conflicting rule and
// alias definitions. It is reported at load time and is fatal: the
// configuration must be fixed, loading is never retried.
type ConfigError struct {
	// Field names the offending config entry.
	Field string
	// Value is the offending value.
	Value string
	// Reason says what is wrong with the value.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid policy config: %s %q: %s", e.Field, e.Value, e.Reason)
}
