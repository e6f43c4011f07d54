package corpus_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/farmdocs"
	"github.com/fwojciec/farmdocs/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with parent directories under root.
func writeFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// defaultSubdirs maps every document type to a conventional subdirectory.
func defaultSubdirs() map[farmdocs.DocType]string {
	return map[farmdocs.DocType]string{
		farmdocs.DocTypeUserManual:   "manual",
		farmdocs.DocTypeScriptingRef: "scripting",
		farmdocs.DocTypePythonRef:    "python",
	}
}

func TestWalker_Walk(t *testing.T) {
	t.Parallel()

	t.Run("finds html files recursively per type", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "manual/jobs/submitting.html", "<html></html>")
		writeFile(t, root, "manual/index.htm", "<html></html>")
		writeFile(t, root, "scripting/api.html", "<html></html>")
		writeFile(t, root, "manual/styles.css", "body{}")

		w := &corpus.Walker{Root: root, Subdirs: defaultSubdirs()}

		var files []corpus.File
		err := w.Walk(context.Background(), func(f corpus.File) error {
			files = append(files, f)
			return nil
		})
		require.NoError(t, err)
		require.Len(t, files, 3)

		byRel := make(map[string]farmdocs.DocType)
		for _, f := range files {
			byRel[f.RelPath] = f.DocType
		}
		assert.Equal(t, farmdocs.DocTypeUserManual, byRel["manual/jobs/submitting.html"])
		assert.Equal(t, farmdocs.DocTypeUserManual, byRel["manual/index.htm"])
		assert.Equal(t, farmdocs.DocTypeScriptingRef, byRel["scripting/api.html"])
	})

	t.Run("skips missing type directories", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "manual/jobs.html", "<html></html>")
		// scripting and python directories do not exist

		w := &corpus.Walker{Root: root, Subdirs: defaultSubdirs()}

		var files []corpus.File
		err := w.Walk(context.Background(), func(f corpus.File) error {
			files = append(files, f)
			return nil
		})
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, farmdocs.DocTypeUserManual, files[0].DocType)
	})

	t.Run("missing corpus root is an error", func(t *testing.T) {
		t.Parallel()

		w := &corpus.Walker{
			Root:    filepath.Join(t.TempDir(), "nonexistent"),
			Subdirs: defaultSubdirs(),
		}

		err := w.Walk(context.Background(), func(f corpus.File) error { return nil })
		require.Error(t, err)
		assert.Equal(t, farmdocs.ECORPUS, farmdocs.ErrorCode(err))
	})

	t.Run("walks only declared types", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "manual/jobs.html", "<html></html>")
		writeFile(t, root, "python/api.html", "<html></html>")

		w := &corpus.Walker{
			Root:    root,
			Subdirs: map[farmdocs.DocType]string{farmdocs.DocTypeUserManual: "manual"},
		}

		var files []corpus.File
		err := w.Walk(context.Background(), func(f corpus.File) error {
			files = append(files, f)
			return nil
		})
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "manual/jobs.html", files[0].RelPath)
	})
}
