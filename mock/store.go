package mock

import (
	"context"

	"github.com/fwojciec/farmdocs"
)

var (
	_ farmdocs.DocumentStore = (*DocumentStore)(nil)
	_ farmdocs.IndexWriter   = (*IndexWriter)(nil)
)

// DocumentStore is a mock implementation of farmdocs.DocumentStore.
type DocumentStore struct {
	BeginRebuildFn func(ctx context.Context) (farmdocs.IndexWriter, error)
}

func (s *DocumentStore) BeginRebuild(ctx context.Context) (farmdocs.IndexWriter, error) {
	return s.BeginRebuildFn(ctx)
}

// IndexWriter is a mock implementation of farmdocs.IndexWriter.
type IndexWriter struct {
	SaveFn   func(ctx context.Context, doc *farmdocs.Document) error
	CommitFn func() error
	AbortFn  func() error
}

func (w *IndexWriter) Save(ctx context.Context, doc *farmdocs.Document) error {
	return w.SaveFn(ctx, doc)
}

func (w *IndexWriter) Commit() error {
	return w.CommitFn()
}

func (w *IndexWriter) Abort() error {
	return w.AbortFn()
}
