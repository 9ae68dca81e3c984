package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func valid() Input {
	return Input{
		Title:     "Standup",
		StartTime: "2025-01-10T09:00:00.000Z",
		EndTime:   "2025-01-10T09:15:00.000Z",
	}
}

func TestEvent_Valid(t *testing.T) {
	t.Parallel()
	p, err := Event(valid())
	require.Nil(t, err)
	require.Equal(t, "Standup", p.Title)
	require.True(t, p.StartTime.Equal(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)))
	require.True(t, p.EndTime.Equal(time.Date(2025, 1, 10, 9, 15, 0, 0, time.UTC)))
}

func TestEvent_ValidWithRoundTripFields(t *testing.T) {
	t.Parallel()
	in := valid()
	in.ID = "10acb0c6-61c6-4a84-a3ad-658a4b2d1cfd"
	in.UserID = "b4f9a3c0-9a38-4a6f-9a04-91d2a0f0b1aa"
	in.Description = "daily sync"
	in.CreatedAt = "2025-01-01T00:00:00Z"
	in.UpdatedAt = "2025-01-02T00:00:00Z"

	p, err := Event(in)
	require.Nil(t, err)
	require.Equal(t, in.ID, p.ID.String())
	require.Equal(t, in.UserID, p.UserID.String())
	require.Equal(t, "daily sync", p.Description)
	require.False(t, p.CreatedAt.IsZero())
	require.False(t, p.UpdatedAt.IsZero())
}

func TestEvent_FieldFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		mutate    func(*Input)
		wantField string
	}{
		{"empty title", func(in *Input) { in.Title = "" }, "title"},
		{"missing startTime", func(in *Input) { in.StartTime = "" }, "startTime"},
		{"unparsable startTime", func(in *Input) { in.StartTime = "tomorrow at nine" }, "startTime"},
		{"unparsable endTime", func(in *Input) { in.EndTime = "2025-13-40T99:00:00Z" }, "endTime"},
		{"bad id", func(in *Input) { in.ID = "not-a-uuid" }, "id"},
		{"bad userId", func(in *Input) { in.UserID = "42" }, "userId"},
		{"bad createdAt", func(in *Input) { in.CreatedAt = "yesterday" }, "createdAt"},
		{"bad updatedAt", func(in *Input) { in.UpdatedAt = "later" }, "updatedAt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid()
			tc.mutate(&in)
			_, err := Event(in)
			require.NotNil(t, err)
			require.Equal(t, KindInvalidField, err.Kind)
			require.Equal(t, tc.wantField, err.Field)
		})
	}
}

func TestEvent_RangeViolationAttributedToEndTime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2025-01-10T10:00:00.000Z", "2025-01-10T09:00:00.000Z"},
		{"equal instants", "2025-01-10T09:00:00Z", "2025-01-10T09:00:00Z"},
		// same instant expressed in different offsets still counts as equal
		{"equal across zones", "2025-01-10T09:00:00Z", "2025-01-10T10:00:00+01:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid()
			in.StartTime, in.EndTime = tc.start, tc.end
			_, err := Event(in)
			require.NotNil(t, err)
			require.Equal(t, KindInvalidRange, err.Kind)
			require.Equal(t, "endTime", err.Field)
			require.Contains(t, err.Error(), "endTime")
		})
	}
}

func TestEvent_TitleWhitespaceIsAccepted(t *testing.T) {
	t.Parallel()
	in := valid()
	in.Title = "   "
	_, err := Event(in)
	require.Nil(t, err)
}

func TestEvent_IsPure(t *testing.T) {
	t.Parallel()
	in := valid()
	p1, err1 := Event(in)
	p2, err2 := Event(in)
	require.Nil(t, err1)
	require.Nil(t, err2)
	require.Equal(t, p1, p2)
}
