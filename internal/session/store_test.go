package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureScheme(t *testing.T) {
	assert.Equal(t, "Bearer abc", EnsureScheme("abc"))
	assert.Equal(t, "Bearer abc", EnsureScheme("Bearer abc"))
	assert.Equal(t, "", EnsureScheme(""))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	token, err := store.Token(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "", token)

	require.NoError(t, store.SetToken(ctx, "sid-1", "Bearer abc"))

	token, err = store.Token(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", token)

	// Sessions are isolated by sid.
	token, err = store.Token(ctx, "sid-2")
	require.NoError(t, err)
	assert.Equal(t, "", token)

	require.NoError(t, store.Clear(ctx, "sid-1"))
	token, err = store.Token(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestMemoryStoreFiltersCorruptedSentinels(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, raw := range []string{"undefined", "null", ""} {
		require.NoError(t, store.SetToken(ctx, "sid", raw))
		token, err := store.Token(ctx, "sid")
		require.NoError(t, err)
		assert.Equal(t, "", token, "raw value %q must read back as absent", raw)
		assert.False(t, IsAuthenticated(ctx, store, "sid"))
	}
}

func TestIsAuthenticated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.False(t, IsAuthenticated(ctx, store, ""))
	assert.False(t, IsAuthenticated(ctx, store, "sid"))

	require.NoError(t, store.SetToken(ctx, "sid", EnsureScheme("token")))
	assert.True(t, IsAuthenticated(ctx, store, "sid"))

	require.NoError(t, store.Clear(ctx, "sid"))
	assert.False(t, IsAuthenticated(ctx, store, "sid"))
}
