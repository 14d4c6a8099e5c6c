package types

import "errors"

var (
	// ErrInvalidInput marks user-supplied values outside their legal range
	// or malformed input structure. Reported before any scoring happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOverride marks an override supplied without justification or
	// with an unknown decision. Distinct from input validation failures.
	ErrInvalidOverride = errors.New("invalid override")

	// ErrInvariantViolation marks an out-of-range value crossing a stage
	// boundary. It signals a defect upstream, never a user error, and is
	// never silently clamped.
	ErrInvariantViolation = errors.New("internal invariant violation")

	// ErrNotComparable is returned when two records were sealed under
	// different policy versions.
	ErrNotComparable = errors.New("records not comparable across policy versions")
)
