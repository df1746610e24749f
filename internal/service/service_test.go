package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nestlist/nestlist/internal/models"
	"github.com/nestlist/nestlist/internal/storage/sqlite"
)

// testEnv wires the services over a real temp-file sqlite store.
type testEnv struct {
	lists *ListService
	tasks *TaskService
	alice *models.User
	bob   *models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "nestlist-service-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	alice := models.NewUser("alice", "hash")
	require.NoError(t, store.CreateUser(ctx, alice))
	bob := models.NewUser("bob", "hash")
	require.NoError(t, store.CreateUser(ctx, bob))

	return &testEnv{
		lists: NewListService(store, logger),
		tasks: NewTaskService(store, logger),
		alice: alice,
		bob:   bob,
	}
}
