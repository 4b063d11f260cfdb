package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/jiggle-cli/internal/jiggler"
	"github.com/mj1618/jiggle-cli/internal/version"
	"gopkg.in/yaml.v3"
)

var errServerClosed = http.ErrServerClosed

// remote is the part of a running jiggler the MCP tools drive.
type remote interface {
	Status() jiggler.Status
	Toggle(ctx context.Context) error
	Stop(ctx context.Context) error
}

// mcpServer exposes a running jiggler as MCP tools.
type mcpServer struct {
	j   remote
	mcp *mcpserver.MCPServer

	mu         sync.Mutex
	httpServer *mcpserver.StreamableHTTPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// ToolResult is the YAML body returned by every tool.
type ToolResult struct {
	OK     bool            `yaml:"ok"`
	Action string          `yaml:"action"`
	Error  string          `yaml:"error,omitempty"`
	Status *jiggler.Status `yaml:"status,omitempty"`
}

// newMCPServer creates and configures an MCP server for j.
func newMCPServer(j remote) *mcpServer {
	s := &mcpServer{j: j}
	s.mcp = mcpserver.NewMCPServer("jiggle", version.Version)
	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		s.mu.Lock()
		s.httpServer = httpServer
		s.mu.Unlock()
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

// shutdown stops the HTTP transport if one is running. The stdio transport
// ends with the process.
func (s *mcpServer) shutdown(ctx context.Context) error {
	s.mu.Lock()
	httpServer := s.httpServer
	s.mu.Unlock()
	if httpServer == nil {
		return nil
	}
	if err := httpServer.Shutdown(ctx); err != nil && !errors.Is(err, errServerClosed) {
		return err
	}
	return nil
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report whether pointer jiggling is on, the configured hotkeys, and tick/move counters"),
		),
		s.handleStatus,
	)

	s.mcp.AddTool(
		mcp.NewTool("toggle",
			mcp.WithDescription("Switch pointer jiggling on or off, exactly as pressing the toggle hotkey"),
		),
		s.handleToggle,
	)

	s.mcp.AddTool(
		mcp.NewTool("stop",
			mcp.WithDescription("Quit jiggle, exactly as pressing the stop hotkey"),
		),
		s.handleStop,
	)
}

// resultToText serializes a ToolResult to YAML for the MCP response.
func resultToText(result ToolResult) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("ok: %v\naction: %s\nerror: %s", result.OK, result.Action, result.Error)
	}
	return string(b)
}

func (s *mcpServer) handleStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := s.j.Status()
	return mcp.NewToolResultText(resultToText(ToolResult{OK: true, Action: "status", Status: &status})), nil
}

func (s *mcpServer) handleToggle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.keyAction(ctx, "toggle", s.j.Toggle), nil
}

func (s *mcpServer) handleStop(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.keyAction(ctx, "stop", s.j.Stop), nil
}

// keyAction injects a key press. The press is queued for the listener, so
// the reported status may not reflect it yet.
func (s *mcpServer) keyAction(ctx context.Context, action string, press func(context.Context) error) *mcp.CallToolResult {
	if err := press(ctx); err != nil {
		return mcp.NewToolResultError(resultToText(ToolResult{OK: false, Action: action, Error: err.Error()}))
	}
	return mcp.NewToolResultText(resultToText(ToolResult{OK: true, Action: action}))
}
