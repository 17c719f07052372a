// Package server assembles the MCP server and runs it over one of two
// transports: stdio (the default, for desktop MCP clients) or SSE behind
// an HTTP listener.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/inotes/inotes/internal/applescript"
	"github.com/inotes/inotes/internal/config"
	"github.com/inotes/inotes/internal/notes"
	"github.com/inotes/inotes/internal/tools"
)

const Name = "iNotes"

// Version is stamped at build time via -ldflags.
var Version = "1.0.0"

type Server struct {
	cfg    *config.Config
	mcp    *mcpserver.MCPServer
	runner *applescript.Osascript
}

func New(cfg *config.Config) *Server {
	runner := applescript.NewOsascript(cfg.OsascriptPath)
	svc := notes.New(cfg.FolderName, runner)

	m := mcpserver.NewMCPServer(Name, Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	tools.Register(m, svc)

	return &Server{cfg: cfg, mcp: m, runner: runner}
}

// Run blocks until ctx is cancelled or the transport fails.
func (s *Server) Run(ctx context.Context) error {
	log.Info().
		Str("transport", s.cfg.Transport).
		Str("folder", s.cfg.FolderName).
		Str("version", Version).
		Msg("starting iNotes gateway")

	if err := s.runner.Check(); err != nil {
		// Startup proceeds anyway: the binary may appear later, and tool
		// calls surface the failure themselves.
		log.Warn().Err(err).Msg("automation check failed")
	}

	switch s.cfg.Transport {
	case "stdio":
		return s.runStdio(ctx)
	case "sse":
		return s.runSSE(ctx)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or sse)", s.cfg.Transport)
	}
}

func (s *Server) runStdio(ctx context.Context) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	return stdio.Listen(ctx, os.Stdin, os.Stdout)
}

func (s *Server) runSSE(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:        fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:     s.setupRoutes(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", httpSrv.Addr).Msg("sse transport listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("graceful shutdown initiated")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
