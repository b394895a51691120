package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	empty, err := db.Empty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	src, err := Default(18)
	require.NoError(t, err)
	require.NoError(t, db.Import(ctx, src))

	want, err := src.Categories(ctx)
	require.NoError(t, err)
	got, err := db.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	words, err := db.Words(ctx, "frutas", 2)
	require.NoError(t, err)
	wantWords, err := src.Words(ctx, "Frutas", 2)
	require.NoError(t, err)
	require.Equal(t, wantWords, words)

	_, err = db.Words(ctx, "Frutas", 7)
	require.ErrorIs(t, err, ErrLevelNotFound)
	_, err = db.Category(ctx, "Planetas")
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestSQLiteImportReplaces(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	first, err := ParseHCL([]byte(`category "A" {
  level "1" { words = ["UNO"] }
}`), "a.hcl", 18)
	require.NoError(t, err)
	second, err := ParseHCL([]byte(`category "B" {
  level "1" { words = ["DOS", "TRES"] }
}`), "b.hcl", 18)
	require.NoError(t, err)

	require.NoError(t, db.Import(ctx, first))
	require.NoError(t, db.Import(ctx, second))

	cats, err := db.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Equal(t, "B", cats[0].Name)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
