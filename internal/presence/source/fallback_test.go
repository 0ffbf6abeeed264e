package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayvaglio/online-presence-app/internal/presence/hostname"
)

func TestFallback_Fetch_FourFixedChannels(t *testing.T) {
	items, err := NewFallback().Fetch(context.Background(), "Alice Example")

	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, FallbackTopDomain, hostname.Normalize(items[0].Link))
	for _, item := range items {
		assert.NotEmpty(t, item.Title)
		assert.NotEmpty(t, item.Link)
		assert.NotEmpty(t, item.Snippet)
	}
}

func TestFallback_Fetch_QueryIsURLEncoded(t *testing.T) {
	items, err := NewFallback().Fetch(context.Background(), "Alice Example & Co")

	require.NoError(t, err)
	for _, item := range items {
		assert.NotContains(t, item.Link, " ")
		assert.NotContains(t, item.Link, "&Co")
		assert.Contains(t, item.Link, "Alice+Example+%26+Co")
	}
}

func TestFallback_Fetch_Deterministic(t *testing.T) {
	f := NewFallback()

	first, err := f.Fetch(context.Background(), "Alice Example")
	require.NoError(t, err)
	second, err := f.Fetch(context.Background(), "Alice Example")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFallback_Fetch_NeverFails(t *testing.T) {
	// Even a query full of reserved characters must produce items.
	items, err := NewFallback().Fetch(context.Background(), "??&&==##")

	require.NoError(t, err)
	assert.Len(t, items, 4)
}
