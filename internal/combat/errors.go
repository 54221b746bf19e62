package combat

import "fmt"

// ConfigurationError means a match cannot start with the given setup.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "match configuration: " + e.Reason
}

// IllegalStateError signals an operation attempted in a state that never
// occurs under correct sequencing.
type IllegalStateError struct {
	Op     string
	Reason string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("%s: illegal state: %s", e.Op, e.Reason)
}
