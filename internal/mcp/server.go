// Package mcp implements the typebridge MCP server.
package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/typebridge-mcp/internal/mcp/tools"
)

// Server wraps the MCP server with the typebridge tool set.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps
}

// NewServer creates a new MCP server with the provided dependencies.
func NewServer(deps *tools.Deps) (*Server, error) {
	if deps == nil {
		return nil, fmt.Errorf("deps is required")
	}

	s := &Server{deps: deps}

	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    "typebridge-mcp",
			Version: "1.0.0",
		},
		nil,
	)

	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware())
	tools.Register(s.mcpServer, deps)

	return s, nil
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
