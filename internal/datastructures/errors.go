package datastructures

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by every operation given an index outside its
// valid bounds, by pops on an empty container and by dereferencing an end
// cursor.
var ErrOutOfRange = errors.New("index out of range")

// outOfRange reports index against the half-open range [0, limit).
func outOfRange(container, op string, index, limit int) error {
	return fmt.Errorf("%s: %s: index %d out of range [0, %d): %w", container, op, index, limit, ErrOutOfRange)
}

func emptyContainer(container, op string) error {
	return fmt.Errorf("%s: %s: container is empty: %w", container, op, ErrOutOfRange)
}

func endOfSequence(container string) error {
	return fmt.Errorf("%s: dereference past the end: %w", container, ErrOutOfRange)
}
