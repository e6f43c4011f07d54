package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/farmdocs"
)

// Compile-time interface verification.
var _ farmdocs.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements farmdocs.DocumentStore using SQLite.
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// BeginRebuild starts a rebuild transaction. The existing document table
// and its full-text projection are cleared inside the transaction, so
// concurrent readers keep seeing the previous index until Commit.
func (s *DocumentStore) BeginRebuild(ctx context.Context) (farmdocs.IndexWriter, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "failed to begin rebuild: %v", err)
	}

	for _, stmt := range []string{"DELETE FROM documents", "DELETE FROM documents_fts"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return nil, farmdocs.Errorf(farmdocs.ESTORE, "failed to clear index: %v", err)
		}
	}

	return &indexWriter{tx: tx}, nil
}

// Ensure indexWriter implements farmdocs.IndexWriter.
var _ farmdocs.IndexWriter = (*indexWriter)(nil)

// indexWriter stages documents inside a single rebuild transaction.
type indexWriter struct {
	tx *sql.Tx
}

// Save validates and stages a document. The structured row and its
// full-text projection are written together; a failure in either aborts
// the statement so the two can never diverge.
func (w *indexWriter) Save(ctx context.Context, doc *farmdocs.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.IndexedAt = time.Now().UTC()

	keywords, err := json.Marshal(doc.Keywords)
	if err != nil {
		return farmdocs.Errorf(farmdocs.ESTORE, "failed to encode keywords: %v", err)
	}
	codeExamples, err := json.Marshal(doc.CodeExamples)
	if err != nil {
		return farmdocs.Errorf(farmdocs.ESTORE, "failed to encode code examples: %v", err)
	}

	res, err := w.tx.ExecContext(ctx, `
		INSERT INTO documents (id, doc_type, title, content, section, url, keywords, code_examples, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, string(doc.DocType), doc.Title, doc.Content, doc.Section, doc.URL,
		string(keywords), string(codeExamples), doc.IndexedAt.Format(time.RFC3339))
	if err != nil {
		return farmdocs.Errorf(farmdocs.ESTORE, "failed to insert document %s: %v", doc.ID, err)
	}

	rowid, err := res.LastInsertId()
	if err != nil {
		return farmdocs.Errorf(farmdocs.ESTORE, "failed to resolve rowid for %s: %v", doc.ID, err)
	}

	// Project into the full-text index under the same rowid so search hits
	// join back to the structured row.
	_, err = w.tx.ExecContext(ctx, `
		INSERT INTO documents_fts (rowid, title, content, keywords, section, doc_type)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rowid, doc.Title, doc.Content, strings.Join(doc.Keywords, " "), doc.Section, string(doc.DocType))
	if err != nil {
		return farmdocs.Errorf(farmdocs.ESTORE, "failed to project document %s: %v", doc.ID, err)
	}

	return nil
}

// Commit makes the rebuilt index visible to readers.
func (w *indexWriter) Commit() error {
	if err := w.tx.Commit(); err != nil {
		return farmdocs.Errorf(farmdocs.ESTORE, "failed to commit rebuild: %v", err)
	}
	return nil
}

// Abort discards staged writes; the previous index remains intact.
func (w *indexWriter) Abort() error {
	if err := w.tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return farmdocs.Errorf(farmdocs.ESTORE, "failed to abort rebuild: %v", err)
	}
	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
