package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notehub.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	return c, path
}

func TestBucketRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	kv := c.Namespace(NamespaceTimer)

	_, ok, err := kv.Get("state")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("state", `{"mode":"focus"}`))

	v, ok, err := kv.Get("state")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"mode":"focus"}`, v)

	require.NoError(t, kv.Delete("state"))
	require.NoError(t, kv.Delete("state"))

	_, ok, err = kv.Get("state")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNamespacesAreIsolated(t *testing.T) {
	c, _ := newTestClient(t)

	require.NoError(t, c.Namespace(NamespaceAuth).Set("token", "abc"))

	_, ok, err := c.Namespace(NamespaceTimer).Get("token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnknownNamespace(t *testing.T) {
	c, _ := newTestClient(t)

	err := c.Namespace("missing").Set("k", "v")

	assert.ErrorIs(t, err, errUnknownNamespace)
}

func TestValuesSurviveReopen(t *testing.T) {
	c, path := newTestClient(t)

	require.NoError(t, c.Namespace(NamespaceTimer).Set("completed_sessions", "3"))
	require.NoError(t, c.Close())

	reopened, err := NewClient(path)
	require.NoError(t, err)

	defer reopened.Close()

	v, ok, err := reopened.Namespace(NamespaceTimer).Get("completed_sessions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestSecondInstanceIsRejected(t *testing.T) {
	_, path := newTestClient(t)

	_, err := NewClient(path)

	assert.ErrorIs(t, err, errAlreadyRunning)
}
