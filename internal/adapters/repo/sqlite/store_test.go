package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/roster-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "roster.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open("  ")
	assert.ErrorContains(t, err, "storage path is required")
}

func TestOpenIsIdempotentAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "roster.db")

	first, err := Open(path)
	require.NoError(t, err)
	_, err = first.Create(context.Background(), "alice", domain.CandidateRecord{Name: "Gandalf", Class: domain.ClassMage, Role: domain.RoleRangedDPS})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	characters, err := second.ListByOwner(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "Gandalf", characters[0].Name)
}

func TestStoreCharacterLifecycle(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	tank, err := store.Create(ctx, "alice", domain.CandidateRecord{Name: "Uther", Class: domain.ClassPaladin, Role: domain.RoleTank})
	require.NoError(t, err)
	mage, err := store.Create(ctx, "alice", domain.CandidateRecord{Name: "Jaina", Class: domain.ClassMage, Role: domain.RoleRangedDPS})
	require.NoError(t, err)
	_, err = store.Create(ctx, "bob", domain.CandidateRecord{Name: "Varian", Class: domain.ClassWarrior, Role: domain.RoleTank})
	require.NoError(t, err)

	characters, err := store.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []domain.Character{tank, mage}, characters)

	count, err := store.CountByRole(ctx, "alice", domain.RoleTank)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	exists, err := store.ExistsByName(ctx, "alice", "Jaina")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.ExistsByName(ctx, "alice", "jaina")
	require.NoError(t, err)
	assert.False(t, exists)

	deleted, err := store.Delete(ctx, "bob", tank.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = store.Delete(ctx, "alice", tank.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	count, err = store.CountByRole(ctx, "alice", domain.RoleTank)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStoreCreateMapsUniqueViolation(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	record := domain.CandidateRecord{Name: "Thrall", Class: domain.ClassShaman, Role: domain.RoleHeal}

	_, err := store.Create(context.Background(), "alice", record)
	require.NoError(t, err)

	_, err = store.Create(context.Background(), "alice", record)
	require.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = store.Create(context.Background(), "bob", record)
	require.NoError(t, err)
}

func TestExtractUpMigration(t *testing.T) {
	t.Parallel()

	content := "-- +migrate Up\nCREATE TABLE a (id INTEGER);\n-- +migrate Down\nDROP TABLE a;\n"
	assert.Equal(t, "\nCREATE TABLE a (id INTEGER);\n", extractUpMigration(content))
	assert.Equal(t, "SELECT 1;", extractUpMigration("SELECT 1;"))
}
