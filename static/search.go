// Package static implements farmdocs.SearchService over a fixed curated
// catalog. It serves as the fallback engine when no index database is
// available: a small closed table of matcher/document pairs evaluated in
// priority order, with a final catch-all entry that always matches.
package static

import (
	"context"
	"strings"

	"github.com/fwojciec/farmdocs"
)

// Ensure type implements interface.
var _ farmdocs.SearchService = (*SearchService)(nil)

// entry pairs a query predicate with the curated document it serves.
type entry struct {
	match func(query string) bool
	doc   *farmdocs.Document
}

// SearchService answers queries from the curated catalog.
type SearchService struct {
	entries []entry
}

// NewSearchService returns a SearchService backed by the built-in catalog.
func NewSearchService() *SearchService {
	return &SearchService{entries: catalog()}
}

// Search returns curated documents whose matcher fires for the query, in
// catalog priority order. The catch-all entry only answers when nothing
// more specific matched, so every non-empty query yields at least one
// result.
func (s *SearchService) Search(ctx context.Context, query string, opts farmdocs.SearchOptions) ([]*farmdocs.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, farmdocs.Errorf(farmdocs.EINVALID, "search query cannot be empty")
	}
	if opts.DocType != "" && !opts.DocType.Valid() {
		return nil, farmdocs.Errorf(farmdocs.EINVALID, "invalid document type: %s", opts.DocType)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = farmdocs.DefaultSearchLimit
	}

	var results []*farmdocs.SearchResult
	for _, e := range s.matching(query) {
		if opts.DocType != "" && e.doc.DocType != opts.DocType {
			continue
		}
		results = append(results, &farmdocs.SearchResult{
			Document:   e.doc,
			Highlights: []string{truncate(e.doc.Content, excerptLength)},
		})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// FindDocumentByID returns the curated document with the given ID.
func (s *SearchService) FindDocumentByID(ctx context.Context, id string) (*farmdocs.Document, error) {
	for _, e := range s.entries {
		if e.doc.ID == id {
			return e.doc, nil
		}
	}
	return nil, farmdocs.Errorf(farmdocs.ENOTFOUND, "document not found: %s", id)
}

// CodeExamples flattens the code examples of matching curated documents in
// priority order until limit is reached.
func (s *SearchService) CodeExamples(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, farmdocs.Errorf(farmdocs.EINVALID, "search query cannot be empty")
	}
	if limit <= 0 {
		limit = farmdocs.DefaultCodeExampleLimit
	}

	var examples []string
	for _, e := range s.matching(query) {
		for _, snippet := range e.doc.CodeExamples {
			examples = append(examples, snippet)
			if len(examples) >= limit {
				return examples, nil
			}
		}
	}
	return examples, nil
}

// BrowseSection matches the section case-insensitively against curated
// document sections and titles.
func (s *SearchService) BrowseSection(ctx context.Context, section string, docType farmdocs.DocType) ([]*farmdocs.Document, error) {
	if docType != "" && !docType.Valid() {
		return nil, farmdocs.Errorf(farmdocs.EINVALID, "invalid document type: %s", docType)
	}

	needle := strings.ToLower(strings.TrimSpace(section))
	var docs []*farmdocs.Document
	for _, e := range s.entries {
		if docType != "" && e.doc.DocType != docType {
			continue
		}
		if strings.Contains(strings.ToLower(e.doc.Section), needle) ||
			strings.Contains(strings.ToLower(e.doc.Title), needle) {
			docs = append(docs, e.doc)
		}
	}

	sortByTitle(docs)
	if len(docs) > farmdocs.BrowseSectionResultLimit {
		docs = docs[:farmdocs.BrowseSectionResultLimit]
	}
	return docs, nil
}

// Stats reports the size of the curated catalog per document type.
func (s *SearchService) Stats(ctx context.Context) (*farmdocs.IndexStats, error) {
	stats := &farmdocs.IndexStats{ByType: make(map[farmdocs.DocType]int)}
	for _, e := range s.entries {
		stats.Total++
		stats.ByType[e.doc.DocType]++
	}
	return stats, nil
}

// matching returns the entries whose matcher fires for the query. The
// final catch-all entry is included only when no other entry matched.
func (s *SearchService) matching(query string) []entry {
	lowered := strings.ToLower(query)

	var matched []entry
	for _, e := range s.entries[:len(s.entries)-1] {
		if e.match(lowered) {
			matched = append(matched, e)
		}
	}
	if len(matched) == 0 {
		matched = append(matched, s.entries[len(s.entries)-1])
	}
	return matched
}

func sortByTitle(docs []*farmdocs.Document) {
	for i := 1; i < len(docs); i++ {
		for j := i; j > 0 && docs[j].Title < docs[j-1].Title; j-- {
			docs[j], docs[j-1] = docs[j-1], docs[j]
		}
	}
}

const excerptLength = 300

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// containsAny reports whether the lowercased query contains any term.
func containsAny(query string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(query, term) {
			return true
		}
	}
	return false
}
