// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrLocationNotFound is returned when no location record has been persisted.
var ErrLocationNotFound = errors.New("location record not found")

// LocationRepository persists the single canonical location record under one fixed key.
type LocationRepository interface {
	// LoadLocation reads and parses the record. Returns ErrLocationNotFound when absent.
	LoadLocation(ctx context.Context) (*entity.Location, error)

	// SaveLocation overwrites the record.
	SaveLocation(ctx context.Context, location entity.Location) error

	// DeleteLocation removes the record. Deleting an absent record is not an error.
	DeleteLocation(ctx context.Context) error
}
