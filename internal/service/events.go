// Package service contains the application service for calendar events.
package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/tomocode/my-schedule-app/internal/errs"
	"github.com/tomocode/my-schedule-app/internal/model"
	"github.com/tomocode/my-schedule-app/internal/repository"
	"github.com/tomocode/my-schedule-app/internal/validate"
)

// EventService defines ownership-scoped operations over events. Every call
// takes the resolved owner id as an explicit argument; the service never
// reads ambient session state.
type EventService interface {
	// List returns all events of the owner ordered by start time.
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Event, error)
	// Get returns the event matching (id, owner).
	Get(ctx context.Context, ownerID uuid.UUID, id string) (*model.Event, error)
	// Create validates the payload and inserts a new event for the owner.
	Create(ctx context.Context, ownerID uuid.UUID, in validate.Input) (*model.Event, error)
	// Update validates the payload and replaces the event matching (id, owner).
	Update(ctx context.Context, ownerID uuid.UUID, id string, in validate.Input) (*model.Event, error)
	// Delete removes the event matching (id, owner) and returns its prior state.
	Delete(ctx context.Context, ownerID uuid.UUID, id string) (*model.Event, error)
}

type EventServiceImpl struct {
	repo repository.EventRepository
}

// NewEventService constructs EventService over the given repository.
func NewEventService(repo repository.EventRepository) *EventServiceImpl {
	return &EventServiceImpl{repo: repo}
}

// List returns the owner's events; an owner with no events gets an empty slice.
func (s *EventServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]model.Event, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get fetches a single event scoped by (id, owner).
func (s *EventServiceImpl) Get(ctx context.Context, ownerID uuid.UUID, id string) (*model.Event, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	eventID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, ownerID, eventID)
}

// Create validates the payload and inserts it. The owner always comes from
// the authenticated session; a client-supplied userId field is ignored.
func (s *EventServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, in validate.Input) (*model.Event, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	p, verr := validate.Event(in)
	if verr != nil {
		return nil, verr
	}
	return s.repo.Create(ctx, ownerID, model.Event{
		Title:       p.Title,
		Description: p.Description,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
	})
}

// Update validates the payload and replaces all mutable fields of (id, owner)
// wholesale. Missing rows surface as not-found; no row is ever created.
func (s *EventServiceImpl) Update(ctx context.Context, ownerID uuid.UUID, id string, in validate.Input) (*model.Event, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	eventID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	p, verr := validate.Event(in)
	if verr != nil {
		return nil, verr
	}
	return s.repo.Update(ctx, ownerID, eventID, model.Event{
		Title:       p.Title,
		Description: p.Description,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
	})
}

// Delete removes (id, owner) and returns the deleted event.
func (s *EventServiceImpl) Delete(ctx context.Context, ownerID uuid.UUID, id string) (*model.Event, error) {
	if ownerID == uuid.Nil {
		return nil, errs.ErrUnauthenticated
	}
	eventID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, ownerID, eventID)
}

// parseID maps malformed id path segments to not-found: a non-UUID segment
// can never name an existing row, and reporting anything more specific would
// distinguish "bad id" from "someone else's id".
func parseID(id string) (uuid.UUID, error) {
	eventID, err := uuid.FromString(id)
	if err != nil || eventID == uuid.Nil {
		return uuid.Nil, errs.ErrNotFound
	}
	return eventID, nil
}
