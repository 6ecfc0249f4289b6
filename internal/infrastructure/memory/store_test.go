package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mappins/internal/domain/repository/blobstore"
)

func TestStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(blobstore.Namespace("map-pins", "site-a"))

	_, err := store.Get(ctx, "pins")
	require.ErrorIs(t, err, blobstore.ErrNotFound)

	value := []byte(`[{"id":"1"}]`)
	require.NoError(t, store.Set(ctx, "pins", value))
	value[0] = 'x'

	got, err := store.Get(ctx, "pins")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	other := NewStore(blobstore.Namespace("map-pins", "site-b"))
	_, err = other.Get(ctx, "pins")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
