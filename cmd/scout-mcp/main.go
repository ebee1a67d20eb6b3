// Command scout-mcp serves the web-intelligence tools over MCP stdio.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/scout-ai/scout/internal/config"
	"github.com/scout-ai/scout/internal/history"
	"github.com/scout-ai/scout/internal/server"
	"github.com/scout-ai/scout/internal/stats"
	"github.com/scout-ai/scout/internal/tavily"
	"github.com/scout-ai/scout/internal/tools"
)

const version = "0.3.0"

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to config file")
	flag.Parse()

	// Stdout carries the protocol; all logging goes to stderr.
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	key, err := config.ResolveAPIKey(cfg.API.Key)
	if err != nil {
		log.Fatalf("%v", err)
	}

	client := tavily.NewClient(tavily.ClientConfig{
		Key:     key,
		BaseURL: cfg.API.BaseURL,
	})

	var ledger *history.Store
	if cfg.History.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0755); err != nil {
			log.Printf("history disabled: %v", err)
		} else if ledger, err = history.Open(cfg.History.Path); err != nil {
			log.Printf("history disabled: %v", err)
			ledger = nil
		}
	}
	if ledger != nil {
		defer ledger.Close()
	}

	collector := stats.NewCollector()

	registry := tools.NewRegistry()
	registry.Initialize(tools.Deps{
		Client:  client,
		Config:  cfg,
		Stats:   collector,
		History: ledger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	log.Printf("scout-mcp %s serving %d tools on stdio", version, len(registry.Executors().List()))
	if err := server.Run(ctx, registry, version); err != nil && ctx.Err() == nil {
		log.Fatalf("server error: %v", err)
	}

	snapshot := collector.Snapshot()
	log.Printf("shutdown after %s: %d requests, %d errors", snapshot.Uptime, snapshot.Requests, snapshot.Errors)
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(homeDir, ".scout", "config.toml")
}
