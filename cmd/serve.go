package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mj1618/jiggle-cli/internal/jiggler"
	"github.com/mj1618/jiggle-cli/internal/output"
	"github.com/mj1618/jiggle-cli/internal/platform"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run jiggle with an MCP server for remote toggling",
	Long: `Run jiggle exactly like 'jiggle run' and additionally start a Model Context
Protocol (MCP) server exposing three tools:

  status   Report whether jiggling is on and how many moves were made
  toggle   Press the toggle key
  stop     Press the stop key and quit

The hotkeys keep working while the server runs.

Supported transports:
  stdio             Standard I/O (default, for MCP clients that spawn jiggle)
  streamable-http   Streamable HTTP transport

Examples:
  jiggle serve
  jiggle serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addKeyFlags(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	j, err := jiggler.New(jiggler.Options{
		Provider:      provider,
		ToggleKey:     cfg.ToggleKey(),
		StopKey:       cfg.StopKey(),
		Logger:        logger,
		RemoteControl: true,
	})
	if err != nil {
		return err
	}

	srv := newMCPServer(j)
	mcpCfg := MCPConfig{Transport: cfg.Serve.Transport, Port: cfg.Serve.Port}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		stop, err := serveOutcome(srv.serve(mcpCfg))
		if err != nil {
			serveErr <- err
		}
		if stop {
			cancel()
		}
	}()
	logger.Info("mcp server started", "transport", mcpCfg.Transport, "port", mcpCfg.Port)

	summary, runErr := j.Run(ctx)

	shutdownCtx, stop := context.WithTimeout(context.Background(), 2*time.Second)
	defer stop()
	if err := srv.shutdown(shutdownCtx); err != nil {
		logger.Warn("mcp server shutdown", "err", err)
	}

	select {
	case err := <-serveErr:
		return fmt.Errorf("mcp server: %w", err)
	default:
	}
	if runErr != nil {
		return runErr
	}

	// stdout carries the MCP stream on stdio; keep the summary on stderr there.
	if mcpCfg.Transport == "stdio" {
		logger.Info("run summary", "stopped_by", summary.StoppedBy, "moves", summary.Moves, "toggles", summary.Toggles, "elapsed", summary.Elapsed)
		return nil
	}
	return output.Print(summary)
}

// serveOutcome decides what the end of the MCP transport means for the run.
// ServeStdio handles SIGINT/SIGTERM itself and returns context.Canceled, which
// is a clean shutdown request. A nil return (stdin closed) or a closed HTTP
// server leaves the hotkeys running.
func serveOutcome(err error) (stop bool, fatal error) {
	switch {
	case err == nil, errors.Is(err, errServerClosed):
		return false, nil
	case errors.Is(err, context.Canceled):
		return true, nil
	default:
		return true, err
	}
}
