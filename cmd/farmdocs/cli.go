package main

import (
	"context"
	"io"

	"github.com/fwojciec/farmdocs"
	"github.com/fwojciec/farmdocs/corpus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Search    farmdocs.SearchService
	SearchLog farmdocs.SearchLogService
	Indexer   *corpus.Indexer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Index  IndexCmd  `cmd:"" help:"Rebuild the index from an HTML documentation corpus"`
	Search SearchCmd `cmd:"" help:"Search the indexed documentation"`
	Code   CodeCmd   `cmd:"" help:"Find code examples matching a query"`
	Browse BrowseCmd `cmd:"" help:"List documents in a section"`
	Get    GetCmd    `cmd:"" help:"Show a document by ID"`
	Stats  StatsCmd  `cmd:"" help:"Show index statistics"`
	Recent RecentCmd `cmd:"" help:"Show recently executed searches"`
	MCP    MCPCmd    `cmd:"" name:"mcp" help:"Serve the search operations over the Model Context Protocol"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Root         string `arg:"" optional:"" help:"Corpus root directory (default $FARMDOCS_DOCS_ROOT or ./docs)"`
	ManualDir    string `default:"manual" help:"User manual subdirectory"`
	ScriptingDir string `default:"scripting" help:"Scripting reference subdirectory"`
	PythonDir    string `default:"python" help:"Python reference subdirectory"`
	Concurrency  int    `short:"c" default:"4" help:"Concurrent extraction limit"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Type  string `short:"t" help:"Filter by document type (user-manual, scripting-reference, python-reference)"`
	Limit int    `short:"n" default:"10" help:"Maximum number of results"`
}

// CodeCmd is the "code" subcommand.
type CodeCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"n" default:"5" help:"Maximum number of snippets"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Section string `arg:"" help:"Section or title substring"`
	Type    string `short:"t" help:"Filter by document type"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// RecentCmd is the "recent" subcommand.
type RecentCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of log entries"`
}

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct {
	HTTP string `help:"Serve over streamable HTTP on this address instead of stdio (e.g. :8080)"`
}
