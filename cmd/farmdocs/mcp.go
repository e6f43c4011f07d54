package main

import (
	"fmt"

	"github.com/fwojciec/farmdocs/mcp"
)

// Run executes the mcp command.
func (c *MCPCmd) Run(deps *Dependencies) error {
	server, err := mcp.NewServer(deps.Search)
	if err != nil {
		return err
	}

	if c.HTTP != "" {
		fmt.Fprintf(deps.Stderr, "Serving MCP over HTTP on %s\n", c.HTTP)
		return server.RunHTTP(deps.Ctx, c.HTTP)
	}

	return server.Run(deps.Ctx)
}
