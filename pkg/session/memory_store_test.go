package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/session"
)

func TestMemoryStore_Create(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(0)
	defer store.Close()

	ctx := context.Background()

	t.Run("successful create", func(t *testing.T) {
		sess := session.NewSession("token1", 1, time.Hour)
		err := store.Create(ctx, sess)
		assert.NoError(t, err)

		retrieved, err := store.Get(ctx, "token1")
		assert.NoError(t, err)
		assert.Equal(t, sess.ID, retrieved.ID)
		assert.Equal(t, int64(1), retrieved.IdentityID)
	})

	t.Run("nil session", func(t *testing.T) {
		err := store.Create(ctx, nil)
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})

	t.Run("empty token", func(t *testing.T) {
		err := store.Create(ctx, session.NewSession("", 1, time.Hour))
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})

	t.Run("live token collision", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, session.NewSession("dup", 1, time.Hour)))
		err := store.Create(ctx, session.NewSession("dup", 2, time.Hour))
		assert.ErrorIs(t, err, session.ErrTokenExists)
	})

	t.Run("expired token can be replaced", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, session.NewSession("stale", 1, -time.Second)))
		err := store.Create(ctx, session.NewSession("stale", 2, time.Hour))
		assert.NoError(t, err)
	})

	t.Run("record isolation", func(t *testing.T) {
		sess := session.NewSession("iso", 7, time.Hour)
		require.NoError(t, store.Create(ctx, sess))

		// Mutating the original must not affect the stored record.
		sess.IdentityID = 99

		retrieved, err := store.Get(ctx, "iso")
		require.NoError(t, err)
		assert.Equal(t, int64(7), retrieved.IdentityID)
	})
}

func TestMemoryStore_Get(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(0)
	defer store.Close()

	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("expired session removed on access", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, session.NewSession("expired", 1, 20*time.Millisecond)))
		time.Sleep(40 * time.Millisecond)

		_, err := store.Get(ctx, "expired")
		assert.ErrorIs(t, err, session.ErrSessionExpired)

		// Second access: the session is gone, not merely expired.
		_, err = store.Get(ctx, "expired")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestMemoryStore_Touch(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(0)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Create(ctx, session.NewSession("touchme", 1, time.Hour)))

	now := time.Now()
	deadline := now.Add(2 * time.Hour)
	require.NoError(t, store.Touch(ctx, "touchme", now, deadline))

	retrieved, err := store.Get(ctx, "touchme")
	require.NoError(t, err)
	assert.WithinDuration(t, deadline, retrieved.ExpiresAt, time.Second)

	err = store.Touch(ctx, "missing", now, deadline)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(0)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Create(ctx, session.NewSession("bye", 1, time.Hour)))

	removed, err := store.Delete(ctx, "bye")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Delete(ctx, "bye")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMemoryStore_DeleteByIdentity(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(0)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Create(ctx, session.NewSession("a1", 1, time.Hour)))
	require.NoError(t, store.Create(ctx, session.NewSession("a2", 1, time.Hour)))
	require.NoError(t, store.Create(ctx, session.NewSession("b1", 2, time.Hour)))

	removed, err := store.DeleteByIdentity(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = store.Get(ctx, "a1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = store.Get(ctx, "a2")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// The other identity's session survives.
	_, err = store.Get(ctx, "b1")
	assert.NoError(t, err)
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(0)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Create(ctx, session.NewSession("gone", 1, 10*time.Millisecond)))
	require.NoError(t, store.Create(ctx, session.NewSession("kept", 2, time.Hour)))

	time.Sleep(30 * time.Millisecond)
	require.NoError(t, store.DeleteExpired(ctx))

	sessions, identities := store.Stats()
	assert.Equal(t, 1, sessions)
	assert.Equal(t, 1, identities)
}

func TestMemoryStore_CleanupLoop(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(20 * time.Millisecond)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Create(ctx, session.NewSession("swept", 1, 10*time.Millisecond)))

	assert.Eventually(t, func() bool {
		sessions, _ := store.Stats()
		return sessions == 0
	}, time.Second, 10*time.Millisecond)
}
