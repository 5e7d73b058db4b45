package textbook

import "errors"

var (
	// ErrWordbookNotFound is returned when a slug is not in the catalog.
	ErrWordbookNotFound = errors.New("wordbook not found")

	// ErrUnitOutOfRange is returned when a unit index is outside [1, TotalUnits].
	ErrUnitOutOfRange = errors.New("unit out of range")

	// ErrInvalidWordbook is returned when a catalog entry is inconsistent.
	ErrInvalidWordbook = errors.New("invalid wordbook")
)
