package repository

import (
	"context"
	"testing"
	"time"

	"postboard/internal/database"
	"postboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestUserRepository_EmailUniquePerKind(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &domain.User{Email: "a@x.com", AccountKind: domain.AccountLocal, PasswordHash: "h"}))

	// same email, other kind: allowed
	require.NoError(t, users.Create(ctx, &domain.User{Email: "a@x.com", AccountKind: domain.AccountGoogle, Name: "A"}))

	// same email, same kind: store rejects
	err := users.Create(ctx, &domain.User{Email: "a@x.com", AccountKind: domain.AccountLocal, PasswordHash: "h2"})
	assert.Error(t, err)
}

func TestUserRepository_GetByEmailAndKind_Normalizes(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &domain.User{Email: "  A@X.com ", AccountKind: domain.AccountLocal, PasswordHash: "h"}))

	u, err := users.GetByEmailAndKind(ctx, "a@x.com", domain.AccountLocal)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
}

func TestUserRepository_GetOrCreateGoogle_Idempotent(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	first, err := users.GetOrCreateGoogle(ctx, "g@x.com", "G")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := users.GetOrCreateGoogle(ctx, "g@x.com", "Another Name")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "second sign-in resolves to the same record")

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRefreshTokenRepository_RemoveIsSingleShot(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	tokens := NewRefreshTokenRepository(db)
	ctx := context.Background()

	u := &domain.User{Email: "a@x.com", AccountKind: domain.AccountLocal, PasswordHash: "h"}
	require.NoError(t, users.Create(ctx, u))

	require.NoError(t, tokens.Append(ctx, u.ID, "tok-1", time.Now().Add(time.Hour)))

	removed, err := tokens.Remove(ctx, u.ID, "tok-1")
	require.NoError(t, err)
	assert.True(t, removed)

	// second removal of the same value finds nothing
	removed, err = tokens.Remove(ctx, u.ID, "tok-1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRefreshTokenRepository_RemoveAllForUser(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	tokens := NewRefreshTokenRepository(db)
	ctx := context.Background()

	u := &domain.User{Email: "a@x.com", AccountKind: domain.AccountLocal, PasswordHash: "h"}
	require.NoError(t, users.Create(ctx, u))
	other := &domain.User{Email: "b@x.com", AccountKind: domain.AccountLocal, PasswordHash: "h"}
	require.NoError(t, users.Create(ctx, other))

	require.NoError(t, tokens.Append(ctx, u.ID, "tok-1", time.Now().Add(time.Hour)))
	require.NoError(t, tokens.Append(ctx, u.ID, "tok-2", time.Now().Add(time.Hour)))
	require.NoError(t, tokens.Append(ctx, other.ID, "tok-3", time.Now().Add(time.Hour)))

	require.NoError(t, tokens.RemoveAllForUser(ctx, u.ID))

	count, err := tokens.CountForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = tokens.CountForUser(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "other users' sessions are untouched")
}

func TestRefreshTokenRepository_DeleteExpired(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	tokens := NewRefreshTokenRepository(db)
	ctx := context.Background()

	u := &domain.User{Email: "a@x.com", AccountKind: domain.AccountLocal, PasswordHash: "h"}
	require.NoError(t, users.Create(ctx, u))

	require.NoError(t, tokens.Append(ctx, u.ID, "stale", time.Now().Add(-time.Hour)))
	require.NoError(t, tokens.Append(ctx, u.ID, "live", time.Now().Add(time.Hour)))

	removed, err := tokens.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	count, err := tokens.CountForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
