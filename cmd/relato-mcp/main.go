package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"relato/internal/adapters/content"
	mcpadapter "relato/internal/adapters/mcp"
	"relato/internal/application"
	"relato/internal/config"
	"relato/internal/logging"
)

func main() {
	configFlag := flag.String("config", config.Path(), "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("relato-mcp: %v", err)
	}

	// stdout carries the protocol
	logger := logging.Setup(os.Stderr, cfg.LogLevel)

	src, closeSrc, err := content.Resolve(cfg.ContentFile, cfg.ContentDB)
	if err != nil {
		log.Fatalf("relato-mcp: %v", err)
	}
	defer closeSrc()

	mcpServer := server.NewMCPServer(
		"relato-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterCalculatorTools(mcpServer, application.NewFormatter(cfg.Tag()))
	mcpadapter.RegisterContentTools(mcpServer, src)

	logger.Info("serving", "content_file", cfg.ContentFile, "content_db", cfg.ContentDB)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("serve failed", "error", err)
		os.Exit(1)
	}
}
