package factory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commonsapp/commons/internal/storage/sqlite"
)

// Full lifecycle over the durable backend: sign up, create and mutate
// communities under different identities, and resume across "restarts".
func TestLifecycleOverSQLite(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "commons.db")
	birthDate := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	open := func() *App {
		app, err := New(ctx, Config{
			StorageType:  StorageTypeSQLite,
			SQLiteConfig: &sqlite.Config{Path: dbPath},
		})
		require.NoError(t, err)
		return app
	}

	// First run: alice signs up and creates a community
	app := open()
	require.NoError(t, app.Sessions.SignUp(ctx, "alice", "pw", birthDate))

	created, err := app.Communities.Add(ctx, "Garden Club", "Texas", "alice", nil)
	require.NoError(t, err)
	require.NoError(t, app.Close())

	// Second run: session and data survive the restart
	app = open()
	assert.True(t, app.Sessions.IsAuthenticated())
	user, ok := app.Sessions.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	got, ok := app.Communities.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Garden Club", got.Name)

	// mallory signs up and cannot touch alice's community
	require.NoError(t, app.Sessions.SignOut(ctx))
	require.NoError(t, app.Sessions.SignUp(ctx, "mallory", "pw2", birthDate))
	actor, _ := app.Sessions.Current()

	require.NoError(t, app.Communities.Update(ctx, actor.Username, created.ID, "Renamed", "Ohio", nil))
	require.NoError(t, app.Communities.Delete(ctx, actor.Username, created.ID))

	unchanged, ok := app.Communities.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Garden Club", unchanged.Name)
	assert.Equal(t, "Texas", unchanged.State)

	// alice deletes her own community; the delete is idempotent
	require.NoError(t, app.Sessions.SignOut(ctx))
	require.NoError(t, app.Sessions.SignIn(ctx, "alice", "pw"))
	actor, _ = app.Sessions.Current()

	require.NoError(t, app.Communities.Delete(ctx, actor.Username, created.ID))
	_, ok = app.Communities.Get(created.ID)
	assert.False(t, ok)
	require.NoError(t, app.Communities.Delete(ctx, actor.Username, created.ID))
	require.NoError(t, app.Close())

	// Third run: the delete persisted, the session is still alice's
	app = open()
	defer app.Close()
	assert.Empty(t, app.Communities.All())
	user, _ = app.Sessions.Current()
	assert.Equal(t, "alice", user.Username)
}

func TestFactoryRejectsUnknownStorageType(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: "bogus"})
	assert.Error(t, err)
}

func TestFactoryDefaultsToMemory(t *testing.T) {
	app, err := New(context.Background(), Config{})
	require.NoError(t, err)
	defer app.Close()
	assert.False(t, app.Sessions.IsAuthenticated())
}
