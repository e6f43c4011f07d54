// Package mcp exposes the search operations as Model Context Protocol
// tools over stdio or streamable HTTP.
package mcp

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/farmdocs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP front end for farmdocs.
type Server struct {
	search farmdocs.SearchService
	server *mcp.Server
}

// NewServer creates a new MCP server answering tool calls from the given
// search service.
func NewServer(search farmdocs.SearchService) (*Server, error) {
	if search == nil {
		return nil, farmdocs.Errorf(farmdocs.EINVALID, "search service is required")
	}

	impl := &mcp.Implementation{
		Name:    "farmdocs",
		Version: Version,
	}

	s := &Server{
		search: search,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over streamable HTTP on the given address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
