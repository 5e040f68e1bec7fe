package crud

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the pure-Go "sqlite" driver with database/sql
	_ "modernc.org/sqlite"
)

type note struct {
	ID      int64  `gorm:"primaryKey"`
	Message string `gorm:"not null"`
	Owner   int64  `gorm:"index"`
}

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&note{}))
	return db
}

func TestService_CreateAndGet(t *testing.T) {
	svc := New[note](setupDB(t))
	ctx := context.Background()

	n := &note{Message: "hello", Owner: 1}
	require.NoError(t, svc.Create(ctx, n))
	require.NotZero(t, n.ID)

	got, err := svc.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Message)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := New[note](setupDB(t))

	_, err := svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List_Filters(t *testing.T) {
	svc := New[note](setupDB(t))
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &note{Message: "a", Owner: 1}))
	require.NoError(t, svc.Create(ctx, &note{Message: "b", Owner: 2}))
	require.NoError(t, svc.Create(ctx, &note{Message: "c", Owner: 1}))

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.List(ctx, map[string]any{"owner": int64(1)})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestService_Update(t *testing.T) {
	svc := New[note](setupDB(t))
	ctx := context.Background()

	n := &note{Message: "before", Owner: 1}
	require.NoError(t, svc.Create(ctx, n))

	updated, err := svc.Update(ctx, n.ID, &note{Message: "after"})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Message)
	assert.Equal(t, int64(1), updated.Owner)

	_, err = svc.Update(ctx, 999, &note{Message: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	svc := New[note](setupDB(t))
	ctx := context.Background()

	n := &note{Message: "gone", Owner: 1}
	require.NoError(t, svc.Create(ctx, n))

	require.NoError(t, svc.Delete(ctx, n.ID))
	assert.ErrorIs(t, svc.Delete(ctx, n.ID), ErrNotFound)

	_, err := svc.GetByID(ctx, n.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Exists(t *testing.T) {
	svc := New[note](setupDB(t))
	ctx := context.Background()

	n := &note{Message: "x", Owner: 1}
	require.NoError(t, svc.Create(ctx, n))

	ok, err := svc.Exists(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, 12345)
	require.NoError(t, err)
	assert.False(t, ok)
}
