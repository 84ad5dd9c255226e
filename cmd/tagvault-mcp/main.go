package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tagvault/internal/adapters/filesystem"
	mcpadapter "tagvault/internal/adapters/mcp"
	"tagvault/internal/adapters/sqlite"
	"tagvault/internal/application"
	"tagvault/internal/config"
)

func main() {
	dirFlag := flag.String("dir", config.CatalogDir(), "image directory to serve")
	flag.Parse()

	store := filesystem.NewStore(config.CaptionExt(), config.Separator())
	scanner := filesystem.NewScanner(store, nil)

	files, err := scanner.Scan(*dirFlag)
	if err != nil {
		log.Fatalf("tagvault-mcp: %v", err)
	}

	catalog := application.NewCatalog(store, config.Separator())
	catalog.Load(files)

	svc := mcpadapter.NewService(catalog, nil, scanner, *dirFlag)

	// The index is optional; without it queries answer from memory
	index := sqlite.NewIndex(config.Separator())
	if err := index.Open(*dirFlag); err == nil {
		defer index.Close()
		if index.NeedsFullRebuild() {
			_, err = index.SyncFull(files)
		} else {
			_, err = index.SyncIncremental(files)
		}
		if err == nil {
			catalog.Subscribe(sqlite.NewFollower(index, catalog, store.SidecarPath))
			svc = mcpadapter.NewService(catalog, index, scanner, *dirFlag)
		}
	}

	mcpServer := server.NewMCPServer(
		"tagvault-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check; returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, svc)
	mcpadapter.RegisterWriteTools(mcpServer, svc)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("tagvault-mcp: %v", err)
	}
}
