// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"rxradar/internal/domain/entity"
	"rxradar/internal/errors"
)

// Domain-specific errors for postal-code resolution.
var (
	// ErrZipNotFound is returned when no reference row exists for a postal code.
	ErrZipNotFound = errors.New("zip code not found")
)

// ZipRepository resolves 5-digit postal codes against the reference
// coordinate table. Input validation (exactly 5 digits) happens before
// invocation; no fuzzy matching is performed here.
type ZipRepository interface {
	// FindByZip retrieves the geographic anchor for a postal code.
	// Returns ErrZipNotFound when no matching reference row exists.
	FindByZip(ctx context.Context, zip string) (*entity.GeoAnchor, error)
}
