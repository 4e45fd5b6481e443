package attr

import "fmt"

// ValidationError reports a candidate value rejected by a validator. Set and
// Check surface the first rejecting validator's message in declared order;
// Validate gathers every message without returning an error.
type ValidationError struct {
	// Attr is the attribute's resolved name when known, "" otherwise.
	Attr    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Attr == "" {
		return "attr: " + e.Message
	}
	return fmt.Sprintf("attr: %s: %s", e.Attr, e.Message)
}

// NoValueError reports a read of an attribute that has neither a current
// value nor a default.
type NoValueError struct {
	Attr string
}

func (e *NoValueError) Error() string {
	if e.Attr == "" {
		return "attr: no value set"
	}
	return fmt.Sprintf("attr: %s: no value set", e.Attr)
}
