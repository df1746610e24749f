package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestlist/nestlist/internal/storage"
)

func TestAddTaskDepthCap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.lists.Create(ctx, env.alice.ID, "Groceries")
	require.NoError(t, err)

	// Three levels succeed.
	milk, err := env.tasks.Add(ctx, env.alice.ID, list.ID, "Buy milk", nil)
	require.NoError(t, err)
	twoPercent, err := env.tasks.Add(ctx, env.alice.ID, list.ID, "2% milk", &milk.ID)
	require.NoError(t, err)
	organic, err := env.tasks.Add(ctx, env.alice.ID, list.ID, "Organic", &twoPercent.ID)
	require.NoError(t, err)

	// A fourth level is rejected and nothing is persisted.
	_, err = env.tasks.Add(ctx, env.alice.ID, list.ID, "Too deep", &organic.ID)
	assert.ErrorIs(t, err, ErrDepthExceeded)

	leaves, err := env.tasks.Subtasks(ctx, env.alice.ID, organic.ID)
	require.NoError(t, err)
	assert.Empty(t, leaves, "rejected task must not be persisted")
}

func TestAddTaskParentMustBeInSameList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	listA, err := env.lists.Create(ctx, env.alice.ID, "A")
	require.NoError(t, err)
	listB, err := env.lists.Create(ctx, env.alice.ID, "B")
	require.NoError(t, err)

	parent, err := env.tasks.Add(ctx, env.alice.ID, listA.ID, "in A", nil)
	require.NoError(t, err)

	_, err = env.tasks.Add(ctx, env.alice.ID, listB.ID, "wrong list", &parent.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCompleteIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.lists.Create(ctx, env.alice.ID, "Groceries")
	require.NoError(t, err)
	task, err := env.tasks.Add(ctx, env.alice.ID, list.ID, "Buy milk", nil)
	require.NoError(t, err)

	first, err := env.tasks.Complete(ctx, env.alice.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, first.Completed)

	second, err := env.tasks.Complete(ctx, env.alice.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, second.Completed)
}

func TestCompleteDoesNotPropagate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.lists.Create(ctx, env.alice.ID, "Groceries")
	require.NoError(t, err)
	parent, err := env.tasks.Add(ctx, env.alice.ID, list.ID, "parent", nil)
	require.NoError(t, err)
	child, err := env.tasks.Add(ctx, env.alice.ID, list.ID, "child", &parent.ID)
	require.NoError(t, err)

	_, err = env.tasks.Complete(ctx, env.alice.ID, parent.ID)
	require.NoError(t, err)

	got, err := env.tasks.Get(ctx, env.alice.ID, child.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestToggleCollapseRoundTrips(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.lists.Create(ctx, env.alice.ID, "Groceries")
	require.NoError(t, err)
	task, err := env.tasks.Add(ctx, env.alice.ID, list.ID, "Buy milk", nil)
	require.NoError(t, err)
	require.False(t, task.Collapsed)

	once, err := env.tasks.ToggleCollapse(ctx, env.alice.ID, task.ID)
	require.NoError(t, err)
	assert.True(t, once.Collapsed)

	twice, err := env.tasks.ToggleCollapse(ctx, env.alice.ID, task.ID)
	require.NoError(t, err)
	assert.False(t, twice.Collapsed)
}

func TestCrossUserAccessIsForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.lists.Create(ctx, env.alice.ID, "Private")
	require.NoError(t, err)
	task, err := env.tasks.Add(ctx, env.alice.ID, list.ID, "secret", nil)
	require.NoError(t, err)

	bobList, err := env.lists.Create(ctx, env.bob.ID, "Bob's")
	require.NoError(t, err)

	t.Run("read", func(t *testing.T) {
		_, err := env.tasks.Get(ctx, env.bob.ID, task.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
	t.Run("complete", func(t *testing.T) {
		_, err := env.tasks.Complete(ctx, env.bob.ID, task.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
	t.Run("collapse", func(t *testing.T) {
		_, err := env.tasks.ToggleCollapse(ctx, env.bob.ID, task.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
	t.Run("move", func(t *testing.T) {
		_, err := env.tasks.Move(ctx, env.bob.ID, task.ID, bobList.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
	t.Run("add into another user's list", func(t *testing.T) {
		_, err := env.tasks.Add(ctx, env.bob.ID, list.ID, "intruder", nil)
		assert.ErrorIs(t, err, ErrForbidden)
	})
	t.Run("move into another user's list", func(t *testing.T) {
		_, err := env.tasks.Move(ctx, env.alice.ID, task.ID, bobList.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestMoveTaskBetweenLists(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	listA, err := env.lists.Create(ctx, env.alice.ID, "A")
	require.NoError(t, err)
	listB, err := env.lists.Create(ctx, env.alice.ID, "B")
	require.NoError(t, err)

	x, err := env.tasks.Add(ctx, env.alice.ID, listA.ID, "X", nil)
	require.NoError(t, err)
	sub, err := env.tasks.Add(ctx, env.alice.ID, listA.ID, "X sub", &x.ID)
	require.NoError(t, err)

	moved, err := env.tasks.Move(ctx, env.alice.ID, x.ID, listB.ID)
	require.NoError(t, err)
	assert.Equal(t, listB.ID, moved.ListID)

	rootsA, err := env.tasks.RootTasks(ctx, env.alice.ID, listA.ID)
	require.NoError(t, err)
	assert.Empty(t, rootsA, "A must no longer contain X")

	rootsB, err := env.tasks.RootTasks(ctx, env.alice.ID, listB.ID)
	require.NoError(t, err)
	require.Len(t, rootsB, 1)
	assert.Equal(t, x.ID, rootsB[0].ID)

	// The subtree moved with it.
	movedSub, err := env.tasks.Get(ctx, env.alice.ID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, listB.ID, movedSub.ListID)
}

func TestTreeSkipsCollapsedSubtasks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.lists.Create(ctx, env.alice.ID, "Groceries")
	require.NoError(t, err)
	root, err := env.tasks.Add(ctx, env.alice.ID, list.ID, "root", nil)
	require.NoError(t, err)
	_, err = env.tasks.Add(ctx, env.alice.ID, list.ID, "child", &root.ID)
	require.NoError(t, err)

	tree, err := env.tasks.Tree(ctx, env.alice.ID, list.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Len(t, tree[0].Subtasks, 1)

	_, err = env.tasks.ToggleCollapse(ctx, env.alice.ID, root.ID)
	require.NoError(t, err)

	tree, err = env.tasks.Tree(ctx, env.alice.ID, list.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Empty(t, tree[0].Subtasks, "collapsed task hides its subtasks")
}
