// Command mcp-kanboard runs an MCP gateway in front of a Kanboard instance:
// it exposes Kanboard's project and task management as MCP tools over HTTP.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/st3v0rr/mcp-kanboard/internal/config"
	"github.com/st3v0rr/mcp-kanboard/internal/kanboard"
	"github.com/st3v0rr/mcp-kanboard/internal/mcp"
	"github.com/st3v0rr/mcp-kanboard/internal/server"
	"github.com/st3v0rr/mcp-kanboard/pkg/clog"
)

const version = "1.0.0"

var (
	app  = kingpin.New("mcp-kanboard", "MCP gateway for Kanboard")
	addr = app.Flag("addr", "Address to bind to (overrides HTTP_HOST)").String()
	port = app.Flag("port", "Port to bind to (overrides HTTP_PORT)").String()
)

func main() {
	app.Version(version)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}
	if *addr != "" {
		env.HTTPHost = *addr
	}
	if *port != "" {
		env.HTTPPort = *port
	}

	// Setup logger
	level := env.SlogLevel()
	var handler slog.Handler
	if env.Env == "local" {
		handler = clog.NewTextHandler(os.Stderr, clog.WithLevel(level))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(clog.NewAttributesHandler(handler)))

	kb := kanboard.New(env.KanboardURL, env.KanboardUsername, env.KanboardPassword)
	gateway := mcp.NewGateway(mcp.NewDispatcher(kb), "mcp-kanboard", version)
	srv := server.NewServer(env, gateway, kb)

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	go func() {
		if err := srv.ListenAndServe(ctx); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
