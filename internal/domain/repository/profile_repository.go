// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"careconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer depends on this interface, not the concrete implementation.
type ProfileRepository interface {
	// Create persists a new profile. The storage assigns the ID and timestamps
	// and the entity is updated with them on success.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a single profile by its unique ID regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByOwner retrieves every profile belonging to the owner, newest first.
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.Profile, error)

	// Update persists the full state of an existing profile.
	Update(ctx context.Context, profile *entity.Profile) error

	// DeleteByIDAndOwner deletes the profile only when both the ID and the
	// owner match; otherwise it returns ErrProfileNotFound.
	DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, ownerID string) error

	// DeleteByOwner deletes every profile belonging to the owner and returns
	// the number of records removed. Deleting nothing is not an error.
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
