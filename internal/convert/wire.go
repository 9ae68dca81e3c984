// Package convert maps events between the storage representation and the
// JSON wire representation.
package convert

import (
	"fmt"
	"time"

	"github.com/tomocode/my-schedule-app/internal/model"
)

// wireTime is ISO-8601 with millisecond precision, always UTC.
const wireTime = "2006-01-02T15:04:05.000Z07:00"

// Wire is the client-facing event shape. Optional fields are omitted rather
// than sent as null.
type Wire struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	UserID      string `json:"userId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// --- helpers ---

func ts(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(wireTime)
}

// --- storage -> wire ---

// ToWire converts a stored event to its wire form. The owner id is implied
// by the authenticated caller and never emitted.
func ToWire(e model.Event) Wire {
	return Wire{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		StartTime:   ts(e.StartTime),
		EndTime:     ts(e.EndTime),
		CreatedAt:   ts(e.CreatedAt),
		UpdatedAt:   ts(e.UpdatedAt),
	}
}

// ToWireList converts a slice, preserving order. A nil input becomes an
// empty slice so the envelope serializes data as [] rather than null.
func ToWireList(events []model.Event) []Wire {
	out := make([]Wire, 0, len(events))
	for _, e := range events {
		out = append(out, ToWire(e))
	}
	return out
}

// --- wire -> storage ---

// FromWire parses a wire event back into the storage representation.
// Lossless for values produced by ToWire (to millisecond precision).
func FromWire(w Wire) (model.Event, error) {
	var e model.Event
	if err := e.ID.UnmarshalText([]byte(w.ID)); err != nil {
		return model.Event{}, fmt.Errorf("invalid id: %w", err)
	}
	e.Title = w.Title
	e.Description = w.Description

	var err error
	if e.StartTime, err = time.Parse(time.RFC3339, w.StartTime); err != nil {
		return model.Event{}, fmt.Errorf("invalid startTime: %w", err)
	}
	if e.EndTime, err = time.Parse(time.RFC3339, w.EndTime); err != nil {
		return model.Event{}, fmt.Errorf("invalid endTime: %w", err)
	}
	if w.UserID != "" {
		if err := e.OwnerID.UnmarshalText([]byte(w.UserID)); err != nil {
			return model.Event{}, fmt.Errorf("invalid userId: %w", err)
		}
	}
	if w.CreatedAt != "" {
		if e.CreatedAt, err = time.Parse(time.RFC3339, w.CreatedAt); err != nil {
			return model.Event{}, fmt.Errorf("invalid createdAt: %w", err)
		}
	}
	if w.UpdatedAt != "" {
		if e.UpdatedAt, err = time.Parse(time.RFC3339, w.UpdatedAt); err != nil {
			return model.Event{}, fmt.Errorf("invalid updatedAt: %w", err)
		}
	}
	return e, nil
}
