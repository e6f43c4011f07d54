// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/farmdocs"
)

// Ensure LoggingSearchService implements farmdocs.SearchService.
var _ farmdocs.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with query timing logs.
type LoggingSearchService struct {
	next   farmdocs.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next farmdocs.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search logs the query, result count and duration.
func (s *LoggingSearchService) Search(ctx context.Context, query string, opts farmdocs.SearchOptions) ([]*farmdocs.SearchResult, error) {
	begin := time.Now()
	results, err := s.next.Search(ctx, query, opts)
	if err != nil {
		s.logger.Error("search",
			"query", query,
			"err", err,
		)
		return nil, err
	}
	s.logger.Info("search",
		"query", query,
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}

// FindDocumentByID delegates to the wrapped service.
func (s *LoggingSearchService) FindDocumentByID(ctx context.Context, id string) (*farmdocs.Document, error) {
	return s.next.FindDocumentByID(ctx, id)
}

// CodeExamples logs the query, snippet count and duration.
func (s *LoggingSearchService) CodeExamples(ctx context.Context, query string, limit int) ([]string, error) {
	begin := time.Now()
	examples, err := s.next.CodeExamples(ctx, query, limit)
	if err != nil {
		s.logger.Error("code examples",
			"query", query,
			"err", err,
		)
		return nil, err
	}
	s.logger.Info("code examples",
		"query", query,
		"snippets", len(examples),
		"duration", time.Since(begin),
	)
	return examples, nil
}

// BrowseSection delegates to the wrapped service.
func (s *LoggingSearchService) BrowseSection(ctx context.Context, section string, docType farmdocs.DocType) ([]*farmdocs.Document, error) {
	return s.next.BrowseSection(ctx, section, docType)
}

// Stats delegates to the wrapped service.
func (s *LoggingSearchService) Stats(ctx context.Context) (*farmdocs.IndexStats, error) {
	return s.next.Stats(ctx)
}
