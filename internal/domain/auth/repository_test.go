package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingdesk/internal/database"
)

func setupUserRepository(t *testing.T) *UserRepository {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	repo := NewUserRepository(db)
	require.NoError(t, repo.Migrate())

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return repo
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	repo := setupUserRepository(t)
	ctx := context.Background()

	u := &User{Name: "Alia", Email: "Alia@Example.com", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, RoleUser, u.Role)
	assert.Equal(t, "alia@example.com", u.Email)

	byEmail, err := repo.GetByEmail(ctx, "ALIA@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alia", byID.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	ok, err := repo.ExistsByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByEmail(ctx, "alia@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := setupUserRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &User{Name: "A", Email: "a@example.com", PasswordHash: "x"}))

	err := repo.Create(ctx, &User{Name: "B", Email: "A@example.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserRepository_GetByIDs(t *testing.T) {
	repo := setupUserRepository(t)
	ctx := context.Background()

	a := &User{Name: "A", Email: "a@example.com", PasswordHash: "x"}
	b := &User{Name: "B", Email: "b@example.com", PasswordHash: "x", Role: RoleAdmin}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByIDs(ctx, []string{a.ID, b.ID, "ghost"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.True(t, got[b.ID].IsAdmin())
	assert.Nil(t, got["ghost"])

	empty, err := repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
