// liftlog-mcp serves the LiftLog MCP tools over stdio, reading the same
// config and record store as the main server.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/liftlog/internal/config"
	"github.com/meltforce/liftlog/internal/mcp"
	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/storage"
	"github.com/meltforce/liftlog/internal/tracker"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Log to stderr: stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	headers := map[string][]string{
		models.LogTable:     models.LogColumns(cfg.Athletes[0], cfg.Athletes[1]),
		models.CatalogTable: models.CatalogColumns(),
	}
	gw, closeGateway, err := storage.Open(ctx, cfg.Store, headers)
	if err != nil {
		log.Error("failed to open record store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	defer closeGateway()

	t := tracker.New(gw, cfg.Athletes, log)
	s := mcp.New(t, Version, log)

	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
