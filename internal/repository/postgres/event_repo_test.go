package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/tomocode/my-schedule-app/internal/errs"
	"github.com/tomocode/my-schedule-app/internal/model"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func eventRow(e model.Event) *pgxmock.Rows {
	var desc *string
	if e.Description != "" {
		desc = &e.Description
	}
	return pgxmock.NewRows([]string{
		"id", "title", "description", "start_time", "end_time", "user_id", "created_at", "updated_at",
	}).AddRow(e.ID, e.Title, desc, e.StartTime, e.EndTime, e.OwnerID, e.CreatedAt, e.UpdatedAt)
}

func sampleEvent(owner uuid.UUID) model.Event {
	now := time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC)
	return model.Event{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       "Standup",
		Description: "daily sync",
		StartTime:   time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2025, 1, 10, 9, 15, 0, 0, time.UTC),
		OwnerID:     owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestEventRepo_ListByOwner_OrderedAndComplete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db)

	owner := uuid.Must(uuid.NewV4())
	first := sampleEvent(owner)
	second := sampleEvent(owner)
	second.Title = "Retro"
	second.StartTime = first.StartTime.Add(2 * time.Hour)
	second.EndTime = first.EndTime.Add(2 * time.Hour)

	rows := eventRow(first)
	var desc *string
	if second.Description != "" {
		desc = &second.Description
	}
	rows.AddRow(second.ID, second.Title, desc, second.StartTime, second.EndTime, second.OwnerID, second.CreatedAt, second.UpdatedAt)

	mock.ExpectQuery(`SELECT (.+) FROM events WHERE user_id=\$1 ORDER BY start_time ASC`).
		WithArgs(owner).
		WillReturnRows(rows)

	got, err := r.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Standup", got[0].Title)
	require.Equal(t, "Retro", got[1].Title)
	require.True(t, got[0].StartTime.Before(got[1].StartTime))
}

func TestEventRepo_ListByOwner_EmptyIsNotError(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db)

	owner := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(`SELECT (.+) FROM events WHERE user_id=\$1 ORDER BY start_time ASC`).
		WithArgs(owner).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "title", "description", "start_time", "end_time", "user_id", "created_at", "updated_at",
		}))

	got, err := r.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestEventRepo_Get_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db)

	owner := uuid.Must(uuid.NewV4())
	e := sampleEvent(owner)

	mock.ExpectQuery(`SELECT (.+) FROM events WHERE id=\$1 AND user_id=\$2`).
		WithArgs(e.ID, owner).
		WillReturnRows(eventRow(e))

	got, err := r.Get(context.Background(), owner, e.ID)
	require.NoError(t, err)
	require.Equal(t, e.Title, got.Title)
	require.Equal(t, e.Description, got.Description)
	require.True(t, e.StartTime.Equal(got.StartTime))
}

func TestEventRepo_Get_WrongOwnerIsNotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db)

	owner := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT (.+) FROM events WHERE id=\$1 AND user_id=\$2`).
		WithArgs(id, owner).
		WillReturnError(pgx.ErrNoRows)

	_, err := r.Get(context.Background(), owner, id)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestEventRepo_Create_ReturnsStoredRow(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db)

	owner := uuid.Must(uuid.NewV4())
	e := sampleEvent(owner)
	desc := e.Description

	mock.ExpectQuery(`INSERT INTO events \(title, description, start_time, end_time, user_id\)`).
		WithArgs(e.Title, &desc, e.StartTime, e.EndTime, owner).
		WillReturnRows(eventRow(e))

	got, err := r.Create(context.Background(), owner, model.Event{
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
	})
	require.NoError(t, err)
	require.Equal(t, e.ID, got.ID)
	require.Equal(t, owner, got.OwnerID)
	require.False(t, got.CreatedAt.IsZero())
}

func TestEventRepo_Create_EmptyDescriptionStoredAsNull(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db)

	owner := uuid.Must(uuid.NewV4())
	e := sampleEvent(owner)
	e.Description = ""

	mock.ExpectQuery(`INSERT INTO events \(title, description, start_time, end_time, user_id\)`).
		WithArgs(e.Title, (*string)(nil), e.StartTime, e.EndTime, owner).
		WillReturnRows(eventRow(e))

	got, err := r.Create(context.Background(), owner, model.Event{
		Title:     e.Title,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
	})
	require.NoError(t, err)
	require.Equal(t, "", got.Description)
}

func TestEventRepo_Update_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db)

	owner := uuid.Must(uuid.NewV4())
	e := sampleEvent(owner)
	e.Title = "Standup (moved)"
	desc := e.Description

	mock.ExpectQuery(`UPDATE events SET title=\$3, description=\$4, start_time=\$5, end_time=\$6, updated_at=now\(\) WHERE id=\$1 AND user_id=\$2`).
		WithArgs(e.ID, owner, e.Title, &desc, e.StartTime, e.EndTime).
		WillReturnRows(eventRow(e))

	got, err := r.Update(context.Background(), owner, e.ID, model.Event{
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
	})
	require.NoError(t, err)
	require.Equal(t, "Standup (moved)", got.Title)
}

func TestEventRepo_Update_MissingRowIsNotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db)

	owner := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`UPDATE events SET (.+) WHERE id=\$1 AND user_id=\$2`).
		WithArgs(id, owner, "x", (*string)(nil), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err := r.Update(context.Background(), owner, id, model.Event{Title: "x"})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestEventRepo_Delete_ThenNotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db)

	owner := uuid.Must(uuid.NewV4())
	e := sampleEvent(owner)

	mock.ExpectQuery(`DELETE FROM events WHERE id=\$1 AND user_id=\$2`).
		WithArgs(e.ID, owner).
		WillReturnRows(eventRow(e))
	mock.ExpectQuery(`DELETE FROM events WHERE id=\$1 AND user_id=\$2`).
		WithArgs(e.ID, owner).
		WillReturnError(pgx.ErrNoRows)

	got, err := r.Delete(context.Background(), owner, e.ID)
	require.NoError(t, err)
	require.Equal(t, e.ID, got.ID)

	_, err = r.Delete(context.Background(), owner, e.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestEventRepo_Get_StoreFailurePropagates(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewEventRepo(db)

	owner := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	boom := errors.New("connection refused")

	mock.ExpectQuery(`SELECT (.+) FROM events WHERE id=\$1 AND user_id=\$2`).
		WithArgs(id, owner).
		WillReturnError(boom)

	_, err := r.Get(context.Background(), owner, id)
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, errs.ErrNotFound)
}

func TestDB_Ping(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()

	mock.ExpectPing()
	require.NoError(t, db.Ping(context.Background()))
}
