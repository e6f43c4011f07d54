package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/farmdocs"
	"github.com/fwojciec/farmdocs/corpus"
	"github.com/fwojciec/farmdocs/goquery"
	farmslog "github.com/fwojciec/farmdocs/slog"
	"github.com/fwojciec/farmdocs/sqlite"
	"github.com/fwojciec/farmdocs/static"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Documentation corpus root. Set before calling Run().
	DocsRoot string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Search service used by the query commands. Backed by SQLite when an
	// index database exists, by the curated catalog otherwise.
	Search farmdocs.SearchService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		DocsRoot: defaultDocsRoot(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("farmdocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'farmdocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cmd == "index" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set FARMDOCS_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		root := cli.Index.Root
		if root == "" {
			root = m.DocsRoot
		}

		deps.Indexer = &corpus.Indexer{
			Walker: &corpus.Walker{
				Root: root,
				Subdirs: map[farmdocs.DocType]string{
					farmdocs.DocTypeUserManual:   cli.Index.ManualDir,
					farmdocs.DocTypeScriptingRef: cli.Index.ScriptingDir,
					farmdocs.DocTypePythonRef:    cli.Index.PythonDir,
				},
				Logger: logger,
			},
			Extractor:   goquery.NewExtractor(),
			Store:       sqlite.NewDocumentStore(m.DB),
			Concurrency: cli.Index.Concurrency,
			Logger:      logger,
		}

		return kongCtx.Run(deps)
	}

	// Query commands. When no index database exists yet, fall back to the
	// curated catalog so the tool stays usable before the first index run.
	if _, err := os.Stat(m.DBPath); err == nil {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set FARMDOCS_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		svc := sqlite.NewSearchService(m.DB)
		m.Search = farmslog.NewLoggingSearchService(svc, logger)
		deps.SearchLog = svc
	} else {
		fmt.Fprintf(stderr, "No index database at %q, using curated fallback. Run 'farmdocs index' to build one.\n", m.DBPath)
		m.Search = static.NewSearchService()
	}
	deps.Search = m.Search

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("FARMDOCS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "farmdocs.db"
	}
	dir := filepath.Join(home, ".farmdocs")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "farmdocs.db")
}

func defaultDocsRoot() string {
	if root := os.Getenv("FARMDOCS_DOCS_ROOT"); root != "" {
		return root
	}
	return "docs"
}
