// Package server wires the MCP gateway, the health/smoke endpoints and the
// Prometheus exposition into one HTTP server.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/st3v0rr/mcp-kanboard/internal/config"
	"github.com/st3v0rr/mcp-kanboard/internal/kanboard"
	"github.com/st3v0rr/mcp-kanboard/internal/mcp"
	"github.com/st3v0rr/mcp-kanboard/pkg/clog"
)

const healthTimeout = 5 * time.Second

type Server struct {
	server  *http.Server
	env     *config.Env
	gateway *mcp.Gateway
	kb      *kanboard.Client
}

func NewServer(env *config.Env, gateway *mcp.Gateway, kb *kanboard.Client) *Server {
	return &Server{
		env:     env,
		gateway: gateway,
		kb:      kb,
	}
}

// Router builds the HTTP handler tree. Exposed separately from
// ListenAndServe so tests can drive it with httptest.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(clog.SlogChiMiddleware(clog.WithChiFilter(func(r *http.Request) bool {
		return r.URL.Path != "/health" && r.URL.Path != "/metrics"
	})))

	r.Post("/mcp", s.handleMCP)
	r.Get("/mcp", s.handleMCPInfo)
	r.Get("/health", s.handleHealth)
	r.Get("/test", s.handleTest)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(r)
}

// ListenAndServe starts the HTTP server. The provided context is used as the
// base context for all incoming requests, so cancelling it (shutdown signal)
// also cancels in-flight request contexts.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := net.JoinHostPort(s.env.HTTPHost, s.env.HTTPPort)
	slog.Info("starting server", "addr", addr, "kanboard", s.env.KanboardURL)

	s.server = &http.Server{
		Addr:        addr,
		Handler:     h2c.NewHandler(s.Router(), &http2.Server{}),
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	var req mcp.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(r.Context(), w, http.StatusOK, &mcp.Response{
			JSONRPC: "2.0",
			Error:   &mcp.RPCError{Code: mcp.CodeParseError, Message: "Parse error"},
		})
		return
	}
	resp := s.gateway.HandleRPC(r.Context(), &req)
	writeJSON(r.Context(), w, http.StatusOK, resp)
}

// handleMCPInfo serves a human-readable capability summary for GET /mcp.
func (s *Server) handleMCPInfo(w http.ResponseWriter, r *http.Request) {
	info := s.gateway.ServerInfo()
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"name":        info.Name,
		"version":     info.Version,
		"protocol":    mcp.ProtocolVersion,
		"description": "MCP gateway for Kanboard. POST JSON-RPC 2.0 requests to /mcp.",
		"endpoints": map[string]string{
			"mcp":     "POST /mcp",
			"health":  "GET /health",
			"test":    "GET /test",
			"metrics": "GET /metrics",
		},
		"tools": s.gateway.ToolNames(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	res := s.kb.Call(ctx, "getVersion", nil)
	if !res.Success {
		writeJSON(r.Context(), w, http.StatusServiceUnavailable, map[string]any{
			"status": "degraded",
			"error":  res.Err,
		})
		return
	}
	version, _ := res.Data.(string)
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"status":           "ok",
		"kanboard_version": version,
	})
}

// handleTest is a manual smoke test: it runs list_projects through the
// dispatcher, exactly like a tools/call would.
func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	result, _ := s.gateway.Dispatcher().Dispatch(r.Context(), "list_projects", nil)
	writeJSON(r.Context(), w, http.StatusOK, result)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		clog.AddError(ctx, err)
	}
}
