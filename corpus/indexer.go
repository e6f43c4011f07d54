package corpus

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/fwojciec/farmdocs"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds parallel file extraction when the caller does
// not choose a value. Extraction is CPU and read I/O; store writes are
// serialized regardless.
const defaultConcurrency = 4

// Result summarizes an indexing run.
type Result struct {
	// Processed counts files handed to the extractor.
	Processed int

	// Indexed counts documents written to the store.
	Indexed int

	// Skipped counts files dropped by the extraction heuristics or
	// because they could not be read.
	Skipped int

	// ByType counts indexed documents per documentation set.
	ByType map[farmdocs.DocType]int
}

// Indexer rebuilds the document store from an on-disk corpus.
// Files are extracted concurrently, but all writes go through the single
// rebuild writer, so the store sees either the complete previous index or
// the complete new one.
type Indexer struct {
	Walker    *Walker
	Extractor farmdocs.Extractor
	Store     farmdocs.DocumentStore

	// Concurrency bounds parallel extraction. Zero means defaultConcurrency.
	Concurrency int

	// Logger receives run diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Run performs one full drop-and-rebuild index run. Per-file failures are
// counted and skipped; store failures abort the run and leave the previous
// index intact.
func (ix *Indexer) Run(ctx context.Context) (*Result, error) {
	logger := ix.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var files []File
	if err := ix.Walker.Walk(ctx, func(f File) error {
		files = append(files, f)
		return nil
	}); err != nil {
		return nil, err
	}

	writer, err := ix.Store.BeginRebuild(ctx)
	if err != nil {
		return nil, err
	}

	concurrency := ix.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	result := &Result{ByType: make(map[farmdocs.DocType]int)}
	var mu sync.Mutex // guards writer and result

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, file := range files {
		g.Go(func() error {
			doc, err := ix.processFile(file)

			mu.Lock()
			defer mu.Unlock()
			result.Processed++

			if err != nil {
				result.Skipped++
				logger.Debug("skipping file",
					"path", file.RelPath,
					"reason", farmdocs.ErrorMessage(err),
				)
				return nil
			}

			if err := writer.Save(gctx, doc); err != nil {
				if farmdocs.ErrorCode(err) == farmdocs.EREJECTED {
					result.Skipped++
					return nil
				}
				// Store failures are fatal for the whole run.
				return err
			}

			result.Indexed++
			result.ByType[doc.DocType]++
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		writer.Abort()
		return nil, err
	}

	if err := writer.Commit(); err != nil {
		return nil, err
	}

	logger.Info("index run complete",
		"processed", result.Processed,
		"indexed", result.Indexed,
		"skipped", result.Skipped,
	)

	return result, nil
}

// processFile reads and extracts one corpus file into a document.
func (ix *Indexer) processFile(file File) (*farmdocs.Document, error) {
	raw, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, farmdocs.Errorf(farmdocs.EINTERNAL, "failed to read %s: %v", file.Path, err)
	}

	extracted, err := ix.Extractor.Extract(string(raw), baseName(file.RelPath))
	if err != nil {
		return nil, err
	}

	section := extracted.Section
	if section == "" {
		section = parentDir(file.RelPath)
	}

	return &farmdocs.Document{
		ID:           farmdocs.DocumentID(file.DocType, file.RelPath),
		DocType:      file.DocType,
		Title:        extracted.Title,
		Content:      extracted.Content,
		Section:      section,
		URL:          file.RelPath,
		Keywords:     farmdocs.Keywords(extracted.Title, extracted.Content),
		CodeExamples: extracted.CodeExamples,
	}, nil
}

// baseName returns the file name without its extension.
func baseName(relPath string) string {
	name := path.Base(relPath)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// parentDir returns the name of the file's parent directory, or empty for
// files at the corpus root.
func parentDir(relPath string) string {
	dir := path.Base(path.Dir(relPath))
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}
