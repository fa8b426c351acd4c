package storage

import "errors"

var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource conflict (e.g., duplicate key)")

	// ErrCapacityReached is returned when a guarded counter update would
	// exceed the work date's recruitment count.
	ErrCapacityReached = errors.New("recruitment count reached")

	// ErrConcurrentModification is returned when a guarded update matched
	// no row because the record changed since it was read.
	ErrConcurrentModification = errors.New("record modified concurrently")
)
