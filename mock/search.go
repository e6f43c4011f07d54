package mock

import (
	"context"

	"github.com/fwojciec/farmdocs"
)

var _ farmdocs.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of farmdocs.SearchService.
type SearchService struct {
	SearchFn           func(ctx context.Context, query string, opts farmdocs.SearchOptions) ([]*farmdocs.SearchResult, error)
	FindDocumentByIDFn func(ctx context.Context, id string) (*farmdocs.Document, error)
	CodeExamplesFn     func(ctx context.Context, query string, limit int) ([]string, error)
	BrowseSectionFn    func(ctx context.Context, section string, docType farmdocs.DocType) ([]*farmdocs.Document, error)
	StatsFn            func(ctx context.Context) (*farmdocs.IndexStats, error)
}

func (s *SearchService) Search(ctx context.Context, query string, opts farmdocs.SearchOptions) ([]*farmdocs.SearchResult, error) {
	return s.SearchFn(ctx, query, opts)
}

func (s *SearchService) FindDocumentByID(ctx context.Context, id string) (*farmdocs.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *SearchService) CodeExamples(ctx context.Context, query string, limit int) ([]string, error) {
	return s.CodeExamplesFn(ctx, query, limit)
}

func (s *SearchService) BrowseSection(ctx context.Context, section string, docType farmdocs.DocType) ([]*farmdocs.Document, error) {
	return s.BrowseSectionFn(ctx, section, docType)
}

func (s *SearchService) Stats(ctx context.Context) (*farmdocs.IndexStats, error) {
	return s.StatsFn(ctx)
}
