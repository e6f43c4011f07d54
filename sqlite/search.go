package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/fwojciec/farmdocs"
	"github.com/google/uuid"
)

// Highlight markers wrapped around matched terms in excerpts.
const (
	HighlightOpen  = ">>"
	HighlightClose = "<<"
)

// excerptLength bounds the fallback excerpt when the full-text engine
// produced no highlight markup for a hit.
const excerptLength = 300

// Compile-time interface verification.
var (
	_ farmdocs.SearchService    = (*SearchService)(nil)
	_ farmdocs.SearchLogService = (*SearchService)(nil)
)

// SearchService implements farmdocs.SearchService using SQLite FTS5.
type SearchService struct {
	db *DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db}
}

// Search executes a ranked full-text query against the projection and
// joins hits back to their structured rows. Results are ordered by FTS5
// rank ascending, so the best match comes first.
func (s *SearchService) Search(ctx context.Context, query string, opts farmdocs.SearchOptions) ([]*farmdocs.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, farmdocs.Errorf(farmdocs.EINVALID, "search query required")
	}
	if opts.DocType != "" && !opts.DocType.Valid() {
		return nil, farmdocs.Errorf(farmdocs.EINVALID, "invalid document type %q", string(opts.DocType))
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = farmdocs.DefaultSearchLimit
	}

	results, err := s.searchMatch(ctx, matchExpression(query), opts.DocType, limit)
	if err != nil {
		return nil, err
	}

	// Log the search (fire-and-forget).
	_, _ = s.db.ExecContext(ctx,
		`INSERT INTO search_log (id, query, result_count, searched_at) VALUES (?, ?, ?, ?)`,
		uuid.New().String(), query, len(results), time.Now().UTC().Format(time.RFC3339))

	return results, nil
}

// CodeExamples runs a search biased toward code-bearing documents by
// conjoining the query with code-indicative terms, then flattens the code
// examples of the top hits in rank order. Candidate documents are
// over-fetched because one document may contribute zero or many snippets.
func (s *SearchService) CodeExamples(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, farmdocs.Errorf(farmdocs.EINVALID, "search query required")
	}
	if limit <= 0 {
		limit = farmdocs.DefaultCodeExampleLimit
	}

	match := "(" + matchExpression(query) + ") AND (" + orExpression(farmdocs.CodeSearchTerms()) + ")"
	results, err := s.searchMatch(ctx, match, "", 2*limit)
	if err != nil {
		return nil, err
	}

	var examples []string
	for _, result := range results {
		for _, example := range result.Document.CodeExamples {
			examples = append(examples, example)
			if len(examples) == limit {
				return examples, nil
			}
		}
	}
	return examples, nil
}

// searchMatch executes one FTS5 MATCH query and builds search results.
func (s *SearchService) searchMatch(ctx context.Context, match string, docType farmdocs.DocType, limit int) ([]*farmdocs.SearchResult, error) {
	var query strings.Builder
	args := []any{match}

	query.WriteString(`
		SELECT d.id, d.doc_type, d.title, d.content, d.section, d.url,
		       d.keywords, d.code_examples, d.indexed_at,
		       snippet(documents_fts, 1, '>>', '<<', '...', 32),
		       f.rank
		FROM documents_fts f
		JOIN documents d ON d.rowid = f.rowid
		WHERE documents_fts MATCH ?`)

	if docType != "" {
		query.WriteString(" AND d.doc_type = ?")
		args = append(args, string(docType))
	}

	query.WriteString(" ORDER BY f.rank LIMIT ?")
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "search failed: %v", err)
	}
	defer rows.Close()

	var results []*farmdocs.SearchResult
	for rows.Next() {
		var row documentRow
		var excerpt string
		var rank float64

		if err := rows.Scan(&row.id, &row.docType, &row.title, &row.content, &row.section,
			&row.url, &row.keywords, &row.codeExamples, &row.indexedAt, &excerpt, &rank); err != nil {
			return nil, farmdocs.Errorf(farmdocs.ESTORE, "failed to scan search result: %v", err)
		}

		doc, err := row.toDocument()
		if err != nil {
			return nil, err
		}

		if !strings.Contains(excerpt, HighlightOpen) {
			excerpt = truncate(doc.Content, excerptLength)
		}

		results = append(results, &farmdocs.SearchResult{
			Document:   doc,
			Score:      rank,
			Highlights: []string{excerpt},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "search failed: %v", err)
	}

	return results, nil
}

// FindDocumentByID retrieves a document by ID.
func (s *SearchService) FindDocumentByID(ctx context.Context, id string) (*farmdocs.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, doc_type, title, content, section, url, keywords, code_examples, indexed_at
		FROM documents
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "lookup failed: %v", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, farmdocs.Errorf(farmdocs.ESTORE, "lookup failed: %v", err)
		}
		return nil, farmdocs.Errorf(farmdocs.ENOTFOUND, "document %q not found", id)
	}

	return scanDocument(rows)
}

// BrowseSection lists documents whose section or title contains the given
// substring, matched case-insensitively, ordered by title. This is a
// structural browse; no relevance scoring is involved.
func (s *SearchService) BrowseSection(ctx context.Context, section string, docType farmdocs.DocType) ([]*farmdocs.Document, error) {
	if docType != "" && !docType.Valid() {
		return nil, farmdocs.Errorf(farmdocs.EINVALID, "invalid document type %q", string(docType))
	}

	var query strings.Builder
	pattern := "%" + escapeLike(section) + "%"
	args := []any{pattern, pattern}

	query.WriteString(`
		SELECT id, doc_type, title, content, section, url, keywords, code_examples, indexed_at
		FROM documents
		WHERE (section LIKE ? ESCAPE '\' OR title LIKE ? ESCAPE '\')`)

	if docType != "" {
		query.WriteString(" AND doc_type = ?")
		args = append(args, string(docType))
	}

	query.WriteString(" ORDER BY title ASC LIMIT ?")
	args = append(args, farmdocs.BrowseSectionResultLimit)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "browse failed: %v", err)
	}
	defer rows.Close()

	var docs []*farmdocs.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "browse failed: %v", err)
	}

	return docs, nil
}

// Stats reports document counts, computed from the structured table on
// demand and never cached.
func (s *SearchService) Stats(ctx context.Context) (*farmdocs.IndexStats, error) {
	stats := &farmdocs.IndexStats{ByType: make(map[farmdocs.DocType]int)}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents").Scan(&stats.Total); err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "stats failed: %v", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT doc_type, COUNT(*) FROM documents GROUP BY doc_type")
	if err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "stats failed: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var docType string
		var count int
		if err := rows.Scan(&docType, &count); err != nil {
			return nil, farmdocs.Errorf(farmdocs.ESTORE, "stats failed: %v", err)
		}
		stats.ByType[farmdocs.DocType(docType)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "stats failed: %v", err)
	}

	return stats, nil
}

// RecentSearches returns the most recent search log entries, newest first.
func (s *SearchService) RecentSearches(ctx context.Context, limit int) ([]farmdocs.SearchLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, result_count, searched_at FROM search_log ORDER BY searched_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "search log failed: %v", err)
	}
	defer rows.Close()

	var entries []farmdocs.SearchLogEntry
	for rows.Next() {
		var entry farmdocs.SearchLogEntry
		var searchedAt string
		if err := rows.Scan(&entry.ID, &entry.Query, &entry.ResultCount, &searchedAt); err != nil {
			return nil, farmdocs.Errorf(farmdocs.ESTORE, "search log failed: %v", err)
		}
		entry.SearchedAt, err = parseRFC3339(searchedAt, "searched_at")
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// documentRow holds raw column values before decoding.
type documentRow struct {
	id           string
	docType      string
	title        string
	content      string
	section      string
	url          string
	keywords     string
	codeExamples string
	indexedAt    string
}

// toDocument decodes the serialized columns into a domain document.
func (r *documentRow) toDocument() (*farmdocs.Document, error) {
	doc := &farmdocs.Document{
		ID:      r.id,
		DocType: farmdocs.DocType(r.docType),
		Title:   r.title,
		Content: r.content,
		Section: r.section,
		URL:     r.url,
	}

	if err := json.Unmarshal([]byte(r.keywords), &doc.Keywords); err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "failed to decode keywords: %v", err)
	}
	if err := json.Unmarshal([]byte(r.codeExamples), &doc.CodeExamples); err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "failed to decode code examples: %v", err)
	}

	var err error
	doc.IndexedAt, err = parseRFC3339(r.indexedAt, "indexed_at")
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// scanDocument scans one structured document row.
func scanDocument(rows *sql.Rows) (*farmdocs.Document, error) {
	var row documentRow
	if err := rows.Scan(&row.id, &row.docType, &row.title, &row.content, &row.section,
		&row.url, &row.keywords, &row.codeExamples, &row.indexedAt); err != nil {
		return nil, farmdocs.Errorf(farmdocs.ESTORE, "failed to scan document: %v", err)
	}
	return row.toDocument()
}

// matchExpression converts a free-form query into an FTS5 MATCH expression
// by quoting each whitespace-separated term. Quoting disables FTS5 query
// syntax so user input cannot break the query.
func matchExpression(query string) string {
	terms := strings.Fields(query)
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = quoteTerm(term)
	}
	return strings.Join(quoted, " ")
}

// orExpression builds an FTS5 OR group from the given terms.
func orExpression(terms []string) string {
	quoted := make([]string, len(terms))
	for i, term := range terms {
		quoted[i] = quoteTerm(term)
	}
	return strings.Join(quoted, " OR ")
}

// quoteTerm wraps a term in double quotes, doubling embedded quotes per
// FTS5 string syntax.
func quoteTerm(term string) string {
	return `"` + strings.ReplaceAll(term, `"`, `""`) + `"`
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// truncate bounds s to max bytes.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
