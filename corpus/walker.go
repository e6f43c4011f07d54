// Package corpus discovers HTML files under a documentation root and runs
// the indexing pipeline: extract, tag, persist.
package corpus

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/farmdocs"
)

// File is one discovered HTML file awaiting indexing.
type File struct {
	// Path is the absolute filesystem path.
	Path string

	// RelPath is the path relative to the corpus root, used as the
	// document URL and as input to the stable document ID.
	RelPath string

	// DocType is the documentation set the file belongs to.
	DocType farmdocs.DocType
}

// Walker enumerates HTML files under a documentation root, one declared
// subdirectory per document type. A missing subdirectory skips that type
// with a warning; the remaining types are still walked.
type Walker struct {
	// Root is the documentation root directory.
	Root string

	// Subdirs maps each document type to its subdirectory under Root.
	Subdirs map[farmdocs.DocType]string

	// Logger receives walk diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Walk calls fn for every HTML file found, in stable document-type order.
// The enumeration is finite and re-runnable from scratch; fn returning an
// error aborts the walk.
func (w *Walker) Walk(ctx context.Context, fn func(File) error) error {
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if info, err := os.Stat(w.Root); err != nil || !info.IsDir() {
		return farmdocs.Errorf(farmdocs.ECORPUS, "corpus root %q not found", w.Root)
	}

	for _, docType := range farmdocs.DocTypes() {
		subdir, ok := w.Subdirs[docType]
		if !ok {
			continue
		}

		dir := filepath.Join(w.Root, subdir)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			logger.Warn("documentation directory missing, skipping type",
				"docType", string(docType),
				"dir", dir,
			)
			continue
		}

		err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if entry.IsDir() || !isHTMLFile(entry.Name()) {
				return nil
			}

			relPath, err := filepath.Rel(w.Root, path)
			if err != nil {
				return err
			}

			return fn(File{
				Path:    path,
				RelPath: filepath.ToSlash(relPath),
				DocType: docType,
			})
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// isHTMLFile reports whether a file name has an HTML extension.
func isHTMLFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}
