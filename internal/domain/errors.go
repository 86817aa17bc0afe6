// Package domain holds sentinel errors shared across the engine.
package domain

import "errors"

// Sentinel errors surfaced across use cases and the HTTP layer.
var (
	// ErrInvalidTab marks an unrecognized search tab (validation failure, 400).
	ErrInvalidTab = errors.New("invalid search tab")
)
