package farmdocs

import (
	"context"
	"time"
)

// SearchService serves read-only queries against a finished index.
// Implementations must return an EINVALID error for empty query strings
// rather than an empty result set.
type SearchService interface {
	// Search executes a ranked full-text query. Results are ordered by
	// ascending score (best match first) and capped at opts.Limit.
	Search(ctx context.Context, query string, opts SearchOptions) ([]*SearchResult, error)

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// CodeExamples searches documents likely to contain code and flattens
	// their extracted snippets in rank order, up to limit.
	CodeExamples(ctx context.Context, query string, limit int) ([]string, error)

	// BrowseSection lists documents whose section or title contains the
	// given substring (case-insensitive), optionally filtered by type,
	// ordered by title and capped at BrowseSectionResultLimit.
	BrowseSection(ctx context.Context, section string, docType DocType) ([]*Document, error)

	// Stats reports document counts, computed from the store on demand.
	Stats(ctx context.Context) (*IndexStats, error)
}

// SearchLogEntry records one executed search for later inspection.
type SearchLogEntry struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	ResultCount int       `json:"resultCount"`
	SearchedAt  time.Time `json:"searchedAt"`
}

// SearchLogService reads the log of recently executed searches.
type SearchLogService interface {
	// RecentSearches returns the most recent log entries, newest first.
	RecentSearches(ctx context.Context, limit int) ([]SearchLogEntry, error)
}
