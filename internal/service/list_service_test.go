package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestlist/nestlist/internal/storage"
)

func TestListOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.lists.Create(ctx, env.alice.ID, "Groceries")
	require.NoError(t, err)

	t.Run("owner can read", func(t *testing.T) {
		got, err := env.lists.Get(ctx, env.alice.ID, list.ID)
		require.NoError(t, err)
		assert.Equal(t, "Groceries", got.Name)
	})

	t.Run("another user gets Forbidden", func(t *testing.T) {
		_, err := env.lists.Get(ctx, env.bob.ID, list.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown id gets NotFound", func(t *testing.T) {
		_, err := env.lists.Get(ctx, env.alice.ID, "nonexistent-id")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("another user cannot delete", func(t *testing.T) {
		err := env.lists.Delete(ctx, env.bob.ID, list.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		// Still there for the owner.
		_, err = env.lists.Get(ctx, env.alice.ID, list.ID)
		assert.NoError(t, err)
	})
}

func TestDeleteListCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.lists.Create(ctx, env.alice.ID, "Doomed")
	require.NoError(t, err)

	root, err := env.tasks.Add(ctx, env.alice.ID, list.ID, "root", nil)
	require.NoError(t, err)
	child, err := env.tasks.Add(ctx, env.alice.ID, list.ID, "child", &root.ID)
	require.NoError(t, err)

	require.NoError(t, env.lists.Delete(ctx, env.alice.ID, list.ID))

	_, err = env.lists.Get(ctx, env.alice.ID, list.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = env.tasks.Get(ctx, env.alice.ID, root.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = env.tasks.Get(ctx, env.alice.ID, child.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListsAreScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.lists.Create(ctx, env.alice.ID, "A")
	require.NoError(t, err)
	_, err = env.lists.Create(ctx, env.alice.ID, "B")
	require.NoError(t, err)
	_, err = env.lists.Create(ctx, env.bob.ID, "C")
	require.NoError(t, err)

	aliceLists, err := env.lists.Lists(ctx, env.alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceLists, 2)

	bobLists, err := env.lists.Lists(ctx, env.bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobLists, 1)
}
