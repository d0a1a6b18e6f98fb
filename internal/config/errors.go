// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is the sentinel wrapped by MissingKeyError.
	ErrMissingKey = errors.New("missing required key")

	// ErrInvalidShape is the sentinel wrapped by InvalidShapeError.
	ErrInvalidShape = errors.New("invalid value shape")
)

type (
	// MissingKeyError reports a required configuration key that is absent.
	MissingKeyError struct {
		Key string
	}

	// InvalidShapeError reports a configuration value whose shape does not
	// match what its key requires (a list where a single value is
	// expected, a non-string element, an unterminated quote, ...).
	InvalidShapeError struct {
		Key    string
		Reason string
	}
)

// Error implements the error interface.
func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required key %q", e.Key)
}

// Unwrap returns ErrMissingKey so callers can use errors.Is.
func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// Error implements the error interface.
func (e *InvalidShapeError) Error() string {
	if e.Key == "" {
		return e.Reason
	}
	return fmt.Sprintf("key %q: %s", e.Key, e.Reason)
}

// Unwrap returns ErrInvalidShape so callers can use errors.Is.
func (e *InvalidShapeError) Unwrap() error { return ErrInvalidShape }
