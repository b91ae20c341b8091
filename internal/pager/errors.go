package pager

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSegments is returned when setup receives an empty pair list.
	ErrNoSegments = errors.New("no segments to set in control")
	// ErrAlreadyConfigured is returned when setup runs on a ready pager.
	ErrAlreadyConfigured = errors.New("segments are already set")
)

// ConfigurationError signals an integration bug: the pager was configured
// with no segments or configured twice.
type ConfigurationError struct {
	Op  string
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("pager %s: %v", e.Op, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
