package domain

import "fmt"

// ConfigurationError reports a missing or invalid setting. It is raised
// before any network activity.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("configuration: %s is required", e.Field)
	}
	return fmt.Sprintf("configuration: %s %s", e.Field, e.Reason)
}

// Missing returns a ConfigurationError for a required field left empty
func Missing(field string) *ConfigurationError {
	return &ConfigurationError{Field: field}
}
