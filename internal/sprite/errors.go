package sprite

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBound is returned by every operation called before Init.
	ErrNotBound = errors.New("sprite: rendering surface not bound")

	// ErrAlreadyBound is returned when Init is called a second time.
	ErrAlreadyBound = errors.New("sprite: rendering surface already bound")

	// ErrInvalidConfig is the sentinel wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("sprite: invalid configuration")
)

// PreconditionError reports an operation attempted in the wrong lifecycle state.
type PreconditionError struct {
	Op    string // Operation that failed, e.g. "animate"
	Class string // Entity class name
	Err   error  // ErrNotBound or ErrAlreadyBound
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("sprite: %s %q: %v", e.Op, e.Class, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// ConfigError reports an Animate or MoveTo call with unusable parameters.
// Nothing about the entity changes when one is returned.
type ConfigError struct {
	Op     string
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sprite: %s: invalid %s=%v: %s", e.Op, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
