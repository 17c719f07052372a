package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/inotes/inotes/internal/handler"
	"github.com/inotes/inotes/internal/middleware"
)

func (s *Server) setupRoutes() http.Handler {
	sse := mcpserver.NewSSEServer(s.mcp)
	healthH := handler.NewHealthHandler(Version, s.cfg.FolderName, s.runner.Check)

	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)

	r.Get("/health", healthH.Health)

	// SSEServer dispatches between its two endpoints itself.
	r.Handle("/sse", sse)
	r.Handle("/message", sse)

	return r
}
