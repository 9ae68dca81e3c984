// Package validate checks incoming event payloads before any persistence
// operation. It is pure: no datastore access, same rules for create and update.
package validate

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"
)

// Kinds of validation failure.
const (
	KindInvalidField = "invalid_field"
	KindInvalidRange = "invalid_range"
)

// Input is the wire-shaped event payload as submitted by a client.
// ID/UserID/CreatedAt/UpdatedAt are accepted for round-tripping but the
// server never trusts them (owner and id always come from session/path).
type Input struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	UserID      string `json:"userId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Parsed is a normalized payload with all fields decoded to native types.
// Optional fields are zero values when absent.
type Parsed struct {
	ID          uuid.UUID
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Error is a field-attributed validation failure.
type Error struct {
	Kind  string // KindInvalidField or KindInvalidRange
	Field string // payload field the failure is attributed to
	Msg   string
}

func (e *Error) Error() string { return e.Field + ": " + e.Msg }

func invalidField(field, msg string) *Error {
	return &Error{Kind: KindInvalidField, Field: field, Msg: msg}
}

var check = validator.New()

// Event applies the payload schema in order: title non-empty, times parse,
// optional fields well-formed, start strictly before end. The range failure
// is attributed to endTime so UIs highlight the right input.
func Event(in Input) (Parsed, *Error) {
	var out Parsed

	if err := check.Var(in.Title, "required"); err != nil {
		return out, invalidField("title", "title is required")
	}
	out.Title = in.Title
	out.Description = in.Description

	start, err := time.Parse(time.RFC3339, in.StartTime)
	if err != nil {
		return out, invalidField("startTime", "must be a valid date-time")
	}
	end, err := time.Parse(time.RFC3339, in.EndTime)
	if err != nil {
		return out, invalidField("endTime", "must be a valid date-time")
	}
	out.StartTime, out.EndTime = start, end

	if in.ID != "" {
		if err := check.Var(in.ID, "uuid"); err != nil {
			return out, invalidField("id", "must be a UUID")
		}
		out.ID = uuid.FromStringOrNil(in.ID)
	}
	if in.UserID != "" {
		if err := check.Var(in.UserID, "uuid"); err != nil {
			return out, invalidField("userId", "must be a UUID")
		}
		out.UserID = uuid.FromStringOrNil(in.UserID)
	}
	if in.CreatedAt != "" {
		if out.CreatedAt, err = time.Parse(time.RFC3339, in.CreatedAt); err != nil {
			return out, invalidField("createdAt", "must be a valid date-time")
		}
	}
	if in.UpdatedAt != "" {
		if out.UpdatedAt, err = time.Parse(time.RFC3339, in.UpdatedAt); err != nil {
			return out, invalidField("updatedAt", "must be a valid date-time")
		}
	}

	if !start.Before(end) {
		return out, &Error{Kind: KindInvalidRange, Field: "endTime", Msg: "endTime must be after startTime"}
	}
	return out, nil
}
