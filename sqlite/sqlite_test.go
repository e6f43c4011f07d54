package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/farmdocs"
	"github.com/fwojciec/farmdocs/sqlite"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

// testDocument builds a valid document for the given type and path suffix.
func testDocument(docType farmdocs.DocType, name string) *farmdocs.Document {
	relPath := fmt.Sprintf("%s/%s.html", docType, name)
	return &farmdocs.Document{
		ID:      farmdocs.DocumentID(docType, relPath),
		DocType: docType,
		Title:   name,
		Content: fmt.Sprintf("Documentation about %s. Workers pick up tasks from the render queue and process frames in order.", name),
		Section: "User Manual",
		URL:     relPath,
	}
}

// indexDocuments rebuilds the store with the given documents.
func indexDocuments(t *testing.T, db *sqlite.DB, docs ...*farmdocs.Document) {
	t.Helper()
	ctx := context.Background()

	store := sqlite.NewDocumentStore(db)
	writer, err := store.BeginRebuild(ctx)
	require.NoError(t, err)
	for _, doc := range docs {
		require.NoError(t, writer.Save(ctx, doc))
	}
	require.NoError(t, writer.Commit())
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()

		// Check documents table and FTS projection exist by querying them
		var docCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&docCount)
		require.NoError(t, err)

		var ftsCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents_fts").Scan(&ftsCount)
		require.NoError(t, err)

		var logCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM search_log").Scan(&logCount)
		require.NoError(t, err)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})
}
