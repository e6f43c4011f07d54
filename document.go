package farmdocs

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"path"
	"time"

	"github.com/cespare/xxhash/v2"
)

// DocType identifies which documentation set a Document belongs to.
// The set is closed; documents of any other type are invalid.
type DocType string

// Documentation sets that can be indexed.
const (
	DocTypeUserManual   DocType = "user-manual"
	DocTypeScriptingRef DocType = "scripting-reference"
	DocTypePythonRef    DocType = "python-reference"
)

// DocTypes lists all valid document types in a stable order.
func DocTypes() []DocType {
	return []DocType{DocTypeUserManual, DocTypeScriptingRef, DocTypePythonRef}
}

// ParseDocType validates a raw string against the closed document-type set.
// An empty string is returned unchanged so callers can use it as "no filter".
func ParseDocType(s string) (DocType, error) {
	switch DocType(s) {
	case "", DocTypeUserManual, DocTypeScriptingRef, DocTypePythonRef:
		return DocType(s), nil
	}
	return "", Errorf(EINVALID, "unknown document type %q", s)
}

// Valid reports whether t is one of the known document types.
func (t DocType) Valid() bool {
	switch t {
	case DocTypeUserManual, DocTypeScriptingRef, DocTypePythonRef:
		return true
	}
	return false
}

// MinContentLength is the minimum normalized content length for a page to
// be stored. Shorter pages are navigation or index scaffolding.
const MinContentLength = 50

// Document represents one indexed documentation page.
type Document struct {
	ID           string    `json:"id"`
	DocType      DocType   `json:"docType"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Section      string    `json:"section"`
	URL          string    `json:"url"` // path relative to the corpus root
	Keywords     []string  `json:"keywords"`
	CodeExamples []string  `json:"codeExamples"`
	IndexedAt    time.Time `json:"indexedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	if !d.DocType.Valid() {
		return Errorf(EINVALID, "invalid document type %q", string(d.DocType))
	}
	if len(d.Content) < MinContentLength {
		return Errorf(EREJECTED, "document content below %d characters", MinContentLength)
	}
	return nil
}

// DocumentID derives the stable identifier for a document from its type and
// corpus-relative path. The same inputs always produce the same ID, so
// re-indexing an unchanged corpus yields identical IDs.
func DocumentID(docType DocType, relPath string) string {
	h := xxhash.New()
	_, _ = h.WriteString(string(docType))
	_, _ = h.WriteString(":")
	_, _ = h.WriteString(path.Clean(relPath))
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], h.Sum64())
	return string(docType) + "-" + hex.EncodeToString(b[:])
}

// SearchResult pairs a stored document with its relevance rank for one
// query. Lower scores are better matches, consistent with SQLite FTS5
// rank ordering.
type SearchResult struct {
	Document   *Document `json:"document"`
	Score      float64   `json:"score"`
	Highlights []string  `json:"highlights"`
}

// IndexStats summarizes the contents of the store.
type IndexStats struct {
	Total  int             `json:"total"`
	ByType map[DocType]int `json:"byType"`
}

// SearchOptions narrows a full-text search.
type SearchOptions struct {
	// DocType restricts results to one documentation set when non-empty.
	DocType DocType

	// Limit caps the number of results. Zero means DefaultSearchLimit.
	Limit int
}

// Default result caps for the query operations.
const (
	DefaultSearchLimit       = 10
	DefaultCodeExampleLimit  = 5
	BrowseSectionResultLimit = 20
)

// IndexWriter persists documents during a rebuild with atomic semantics.
// Save stages a document; Commit makes the new index visible to readers;
// Abort discards staged writes and keeps the previous index intact.
type IndexWriter interface {
	Save(ctx context.Context, doc *Document) error
	Commit() error
	Abort() error
}

// DocumentStore owns the persistent document table and its full-text
// projection. BeginRebuild returns a writer for a replacement index;
// readers continue to see the prior index until the writer commits.
type DocumentStore interface {
	BeginRebuild(ctx context.Context) (IndexWriter, error)
}
