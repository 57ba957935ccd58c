package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hH-13/tilde/internal/domain/entity"
	"github.com/hH-13/tilde/internal/infrastructure/persistence/sqlite"
	"github.com/hH-13/tilde/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "tilde.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return db
}

func TestHistoryRepository_EmptyLoad(t *testing.T) {
	repo := sqlite.NewHistoryRepository(openTestDB(t))

	items, err := repo.Load(testCtx())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestHistoryRepository_SaveReplaces(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewHistoryRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, []entity.HistoryItem{
		{Text: "old", Count: 9},
	}))
	require.NoError(t, repo.Save(ctx, []entity.HistoryItem{
		{Text: "reddit", Count: 3},
		{Text: "golang", Count: 1},
		{Text: "zig", Count: 1},
	}))

	items, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.HistoryItem{
		{Text: "reddit", Count: 3},
		{Text: "golang", Count: 1},
		{Text: "zig", Count: 1},
	}, items)
}

func TestHistoryRepository_SaveSkipsInvalidAndDuplicates(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewHistoryRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, []entity.HistoryItem{
		{Text: "a", Count: 2},
		{Text: "", Count: 5},
		{Text: "b", Count: 0},
		{Text: "a", Count: 1},
	}))

	items, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.HistoryItem{{Text: "a", Count: 2}}, items)
}

func TestHistoryRepository_LoadSortsByCount(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)
	repo := sqlite.NewHistoryRepository(db)

	_, err := db.ExecContext(ctx,
		`INSERT INTO history_items (text, count, position) VALUES ('low', 1, 0), ('high', 7, 1)`)
	require.NoError(t, err)

	items, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "high", items[0].Text)
}

func TestHistoryRepository_Clear(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewHistoryRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, []entity.HistoryItem{{Text: "a", Count: 1}}))
	require.NoError(t, repo.Clear(ctx))

	items, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestHistoryRepository_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "tilde.sqlite")

	db, err := sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewHistoryRepository(db).Save(ctx, []entity.HistoryItem{{Text: "kept", Count: 4}}))
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	items, err := sqlite.NewHistoryRepository(db).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.HistoryItem{{Text: "kept", Count: 4}}, items)

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
