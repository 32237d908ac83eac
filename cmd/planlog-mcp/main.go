package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/planlog/internal/config"
	planmcp "github.com/claude/planlog/internal/mcp"
	"github.com/claude/planlog/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (local mode: direct database access)")
	serverURL := flag.String("server", "", "PlanLog server URL (remote mode: REST API over e.g. Tailscale)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("planlog-mcp", Version)
		return
	}

	// MCP speaks on stdout; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds planmcp.DataSource

	switch {
	case *serverURL != "":
		ds = planmcp.NewHTTPClient(*serverURL)
		log.Info("remote mode", "server", *serverURL)
	case *configPath != "":
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		log.Info("local mode", "database", cfg.Database.Name)
	default:
		fmt.Fprintf(os.Stderr, "Usage: planlog-mcp -config config.yaml | -server <URL>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	s := planmcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
