// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Event is a single calendar entry owned by one user.
//
// This is the storage representation: timestamps are native time.Time values
// and Description uses the empty string as the "unset" marker (the column is
// nullable; the repository folds NULL into "").
type Event struct {
	ID          uuid.UUID // assigned by the store on insert
	Title       string
	Description string
	StartTime   time.Time // invariant: StartTime < EndTime, strictly
	EndTime     time.Time
	OwnerID     uuid.UUID // set from the session, never from client input
	CreatedAt   time.Time // maintained by the store
	UpdatedAt   time.Time // refreshed by the store on every mutation
}
