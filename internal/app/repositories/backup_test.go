package repositories

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzkose/resourcehub/internal/app/models"
	"github.com/oguzkose/resourcehub/internal/kvstore"
	"github.com/oguzkose/resourcehub/internal/pkg/logger"
)

func TestSaveRefreshesBackup(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewUserRepository(store)
	ctx := context.Background()

	_, err := repo.Add(ctx, &models.User{Name: "Ada", Email: "ada@example.edu"})
	require.NoError(t, err)

	backup, err := store.Get(ctx, KeyBackup)
	require.NoError(t, err)
	require.NotNil(t, backup)
	assert.Contains(t, string(backup), "ada@example.edu")
}

func TestRestoreFillsAbsentCollections(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	users := NewUserRepository(store)
	departments := NewDepartmentRepository(store)

	_, err := users.Add(ctx, &models.User{Name: "Ada", Email: "ada@example.edu"})
	require.NoError(t, err)
	require.NoError(t, departments.SaveAll(ctx, []*models.Department{
		{ID: "comp-sci", Name: "Computer Science"},
	}))

	// Simulate primary key loss; the backup key survives.
	require.NoError(t, store.Delete(ctx, KeyUsers))
	require.NoError(t, store.Delete(ctx, KeyDepartments))

	require.NoError(t, RestoreFromBackup(ctx, store))

	restoredUsers, err := users.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, restoredUsers, 1)
	assert.Equal(t, "ada@example.edu", restoredUsers[0].Email)

	restoredDepartments, err := departments.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, restoredDepartments, 1)
	assert.Equal(t, "comp-sci", restoredDepartments[0].ID)
}

func TestRestoreKeepsExistingCollections(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	users := NewUserRepository(store)
	_, err := users.Add(ctx, &models.User{Name: "Ada", Email: "ada@example.edu"})
	require.NoError(t, err)

	// A stale backup must not clobber a present collection.
	staleBackup := []byte(`{"users":[],"resources":[],"departments":[],"courses":[],"lecturers":[]}`)
	require.NoError(t, store.Set(ctx, KeyBackup, staleBackup))

	require.NoError(t, RestoreFromBackup(ctx, store))

	all, err := users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// backupFailingStore accepts primary writes but fails writes to the backup
// key.
type backupFailingStore struct {
	kvstore.Store
}

func (s *backupFailingStore) Set(ctx context.Context, key string, value []byte) error {
	if key == KeyBackup {
		return errors.New("backup write refused")
	}
	return s.Store.Set(ctx, key, value)
}

func TestFailedBackupWriteIsLoggedNotFatal(t *testing.T) {
	var logOutput bytes.Buffer
	logger.Configure(logger.Config{Level: logger.WarnLevel, Output: &logOutput})
	t.Cleanup(func() {
		logger.Configure(logger.Config{Level: logger.InfoLevel, Output: os.Stdout})
	})

	store := &backupFailingStore{Store: kvstore.NewMemoryStore()}
	repo := NewUserRepository(store)
	ctx := context.Background()

	user, err := repo.Add(ctx, &models.User{Name: "Ada", Email: "ada@example.edu"})
	require.NoError(t, err, "primary write succeeds even when the backup write fails")

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Contains(t, logOutput.String(), "Backup snapshot refresh failed")
	assert.Contains(t, logOutput.String(), KeyUsers)
}

func TestRestoreWithoutBackupIsNoop(t *testing.T) {
	store := kvstore.NewMemoryStore()
	assert.NoError(t, RestoreFromBackup(context.Background(), store))
}

func TestEnsureCollectionsInitializesMutableKeys(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, EnsureCollections(ctx, store))

	for _, key := range []string{KeyUsers, KeyResources} {
		raw, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(raw))
	}
}

func TestEnsureCollectionsKeepsExistingData(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	users := NewUserRepository(store)
	_, err := users.Add(ctx, &models.User{Name: "Ada", Email: "ada@example.edu"})
	require.NoError(t, err)

	require.NoError(t, EnsureCollections(ctx, store))

	all, err := users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
