package domain

import "errors"

var (
	// ErrInvalidInput marks a malformed request: the event or query is
	// discarded and no state is mutated.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a lookup for an unknown vehicle, zone or drive.
	ErrNotFound = errors.New("not found")

	// ErrRoutingUnavailable marks a failed or timed-out external routing
	// lookup. Callers recover via the graph or straight-line fallbacks.
	ErrRoutingUnavailable = errors.New("routing unavailable")
)
