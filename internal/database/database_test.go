package database

import (
	"testing"

	"postboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The non-postgres path depends on the "sqlite" driver being registered
// with database/sql; this fails fast if that registration is ever lost.
func TestConnect_SQLite(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	u := &domain.User{Email: "a@x.com", AccountKind: domain.AccountLocal, Name: "A"}
	require.NoError(t, db.Create(u).Error)
	assert.NotZero(t, u.ID)

	var got domain.User
	require.NoError(t, db.First(&got, u.ID).Error)
	assert.Equal(t, "a@x.com", got.Email)
}
