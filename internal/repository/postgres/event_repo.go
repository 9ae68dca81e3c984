package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/tomocode/my-schedule-app/internal/errs"
	"github.com/tomocode/my-schedule-app/internal/model"
)

// EventRepo implements EventRepository using PostgreSQL.
type EventRepo struct{ db *DB }

// NewEventRepo constructs an event repository.
func NewEventRepo(db *DB) *EventRepo { return &EventRepo{db: db} }

const eventColumns = `id, title, description, start_time, end_time, user_id, created_at, updated_at`

// ListByOwner returns all events of the owner ordered by start time ascending.
func (r *EventRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Event, error) {
	const q = `
SELECT ` + eventColumns + `
FROM events
WHERE user_id=$1
ORDER BY start_time ASC`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get returns a single event scoped by (id, owner).
func (r *EventRepo) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Event, error) {
	const q = `
SELECT ` + eventColumns + `
FROM events WHERE id=$1 AND user_id=$2`
	e, err := scanEvent(r.db.Pool.QueryRow(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Create inserts a new event. The store assigns id, created_at and updated_at.
func (r *EventRepo) Create(ctx context.Context, ownerID uuid.UUID, in model.Event) (*model.Event, error) {
	const q = `
INSERT INTO events (title, description, start_time, end_time, user_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + eventColumns
	e, err := scanEvent(r.db.Pool.QueryRow(ctx, q,
		in.Title, nullIfEmpty(in.Description), in.StartTime, in.EndTime, ownerID))
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Update replaces all mutable fields of (id, owner) and refreshes updated_at.
func (r *EventRepo) Update(ctx context.Context, ownerID, id uuid.UUID, in model.Event) (*model.Event, error) {
	const q = `
UPDATE events
SET title=$3, description=$4, start_time=$5, end_time=$6, updated_at=now()
WHERE id=$1 AND user_id=$2
RETURNING ` + eventColumns
	e, err := scanEvent(r.db.Pool.QueryRow(ctx, q,
		id, ownerID, in.Title, nullIfEmpty(in.Description), in.StartTime, in.EndTime))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Delete removes (id, owner) permanently and returns the prior row.
func (r *EventRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) (*model.Event, error) {
	const q = `
DELETE FROM events WHERE id=$1 AND user_id=$2
RETURNING ` + eventColumns
	e, err := scanEvent(r.db.Pool.QueryRow(ctx, q, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// scanEvent reads one event row, folding a NULL description into "".
func scanEvent(row pgx.Row) (model.Event, error) {
	var (
		e    model.Event
		desc *string
	)
	err := row.Scan(&e.ID, &e.Title, &desc, &e.StartTime, &e.EndTime, &e.OwnerID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return model.Event{}, err
	}
	if desc != nil {
		e.Description = *desc
	}
	return e, nil
}

// nullIfEmpty stores the unset description as NULL rather than "".
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
