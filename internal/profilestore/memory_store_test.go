package profilestore

import (
	"context"
	"testing"
	"time"

	"github.com/huangsam/teamdisc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	exerciseRepository(t, NewMemoryStore())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	p := makeProfile("x", "Ops", 0)
	require.NoError(t, store.CreateProfile(ctx, p))

	p.Natural[schema.D] = 99
	got, err := store.GetProfile(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 50, got.Natural[schema.D])

	got.Natural[schema.D] = 1
	again, err := store.GetProfile(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 50, again.Natural[schema.D])
}

func TestMemoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.CreateProfile(ctx, makeProfile("x", "Ops", time.Minute)))
	store.Clear()

	rev, err := store.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rev.Count)
	assert.NoError(t, store.Close())
}
