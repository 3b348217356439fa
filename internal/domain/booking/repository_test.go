package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingdesk/internal/database"
)

func setupRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repo
}

func mustSlot(t *testing.T, date, clock string) Slot {
	t.Helper()
	d, err := ParseDate(date)
	require.NoError(t, err)
	c, err := ParseClock(clock)
	require.NoError(t, err)
	return Slot{Date: d, Time: c}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	b := &Booking{UserID: "u1", Date: "2030-01-07", Time: "10:00", Service: "Consultation", Status: StatusPending}
	require.NoError(t, repo.Create(ctx, b))
	assert.NotEmpty(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, StatusPending, got.Status)
	assert.Equal(t, "", got.Note)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_SlotIsUnique(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &Booking{UserID: "u1", Date: "2030-01-07", Time: "10:00", Service: "a", Status: StatusPending}))

	err := repo.Create(ctx, &Booking{UserID: "u2", Date: "2030-01-07", Time: "10:00", Service: "b", Status: StatusPending})
	assert.ErrorIs(t, err, ErrSlotConflict)

	second := &Booking{UserID: "u2", Date: "2030-01-07", Time: "11:00", Service: "b", Status: StatusPending}
	require.NoError(t, repo.Create(ctx, second))

	// moving onto an occupied slot trips the unique index
	second.Time = "10:00"
	assert.ErrorIs(t, repo.Update(ctx, second), ErrSlotConflict)
}

func TestRepository_FindAtSlot(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	b := &Booking{UserID: "u1", Date: "2030-01-07", Time: "09:00", Service: "a", Status: StatusPending}
	require.NoError(t, repo.Create(ctx, b))

	rows, err := repo.FindAtSlot(ctx, mustSlot(t, "2030-01-07", "9:00"), "")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = repo.FindAtSlot(ctx, mustSlot(t, "2030-01-07", "9:00"), b.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRepository_ListOrdering(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	for _, s := range [][2]string{
		{"2030-01-08", "09:00"},
		{"2030-01-07", "15:00"},
		{"2030-01-07", "09:30"},
	} {
		require.NoError(t, repo.Create(ctx, &Booking{UserID: "u1", Date: s[0], Time: s[1], Service: "a", Status: StatusPending}))
	}
	require.NoError(t, repo.Create(ctx, &Booking{UserID: "u2", Date: "2030-01-07", Time: "10:00", Service: "b", Status: StatusPending}))

	mine, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "09:30", mine[0].Time)
	assert.Equal(t, "15:00", mine[1].Time)
	assert.Equal(t, "2030-01-08", mine[2].Date)

	all, err := repo.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	day, _ := ParseDate("2030-01-07")
	filtered, err := repo.List(ctx, ListFilter{Date: day})
	require.NoError(t, err)
	require.Len(t, filtered, 3)
	assert.Equal(t, "10:00", filtered[1].Time)
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	b := &Booking{UserID: "u1", Date: "2030-01-07", Time: "10:00", Service: "a", Status: StatusPending}
	require.NoError(t, repo.Create(ctx, b))

	b.Status = StatusAccepted
	b.Note = "confirmed"
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, got.Status)
	assert.Equal(t, "confirmed", got.Note)

	assert.ErrorIs(t, repo.Update(ctx, &Booking{ID: "missing", Date: "2030-01-09", Time: "10:00"}), ErrNotFound)

	deleted, err := repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
