package lazy_test

import (
	"context"
	"errors"
	"testing"

	"shop/internal/pkg/lazy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaded(t *testing.T) {
	ref := lazy.Loaded(42)

	assert.True(t, ref.IsLoaded())

	value, err := ref.Value()
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestDeferred_ValueBeforeResolve(t *testing.T) {
	ref := lazy.Deferred(func(context.Context) (int, error) { return 42, nil })

	assert.False(t, ref.IsLoaded())

	_, err := ref.Value()
	require.Error(t, err)
	assert.ErrorIs(t, err, lazy.ErrNotLoaded)
}

func TestDeferred_ResolveMemoizes(t *testing.T) {
	calls := 0
	ref := lazy.Deferred(func(context.Context) (int, error) {
		calls++
		return 42, nil
	})

	value, err := ref.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.True(t, ref.IsLoaded())

	value, err = ref.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, calls)

	value, err = ref.Value()
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestDeferred_ResolveError(t *testing.T) {
	resolveErr := errors.New("boom")
	ref := lazy.Deferred(func(context.Context) (int, error) { return 0, resolveErr })

	_, err := ref.Resolve(context.Background())
	require.ErrorIs(t, err, resolveErr)
	assert.False(t, ref.IsLoaded())
}

func TestResolve_LoadedNeverCallsResolver(t *testing.T) {
	ref := lazy.Loaded("done")

	value, err := ref.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", value)
}
