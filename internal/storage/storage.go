// Package storage provides in-memory and file-backed link storage.
package storage

import (
	"errors"
)

var (
	// ErrConflict is returned when a link with the same id or url is stored already.
	ErrConflict = errors.New("already exists")

	// ErrNotFound is returned when no link matches the lookup.
	ErrNotFound = errors.New("not found")
)

// Stats holds storage totals.
type Stats struct {
	Links   int
	Authors int
}
