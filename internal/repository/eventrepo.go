// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/tomocode/my-schedule-app/internal/model"
)

// EventRepository provides ownership-scoped CRUD access to events. Every
// per-id operation is filtered by (id, ownerID); a mismatched pair behaves
// exactly like a missing id.
type EventRepository interface {
	// ListByOwner returns all events of one owner, ordered by start time
	// ascending. Zero events is an empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Event, error)

	// Get returns the single event matching (id, ownerID), or errs.ErrNotFound.
	Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Event, error)

	// Create inserts a new event; the store assigns id and timestamps.
	Create(ctx context.Context, ownerID uuid.UUID, e model.Event) (*model.Event, error)

	// Update replaces all mutable fields of (id, ownerID) wholesale and
	// refreshes updated_at. errs.ErrNotFound when no row matches; no upsert.
	Update(ctx context.Context, ownerID, id uuid.UUID, e model.Event) (*model.Event, error)

	// Delete removes (id, ownerID) permanently and returns the prior row,
	// or errs.ErrNotFound.
	Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.Event, error)
}
