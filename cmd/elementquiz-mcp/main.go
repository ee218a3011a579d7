package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"elementquiz/internal/history"
	"elementquiz/internal/mcpserver"
	"elementquiz/internal/quiz"
)

func main() {
	seed := flag.Uint64("seed", 0, "seed for the quiz order (0 = random)")
	noHistory := flag.Bool("no-history", false, "disable the in-memory quiz history")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := quiz.DefaultConfig()
	if *seed != 0 {
		cfg = cfg.WithSeed(*seed)
	}
	ctrl, err := quiz.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating quiz: %v\n", err)
		os.Exit(1)
	}

	var store *history.Store
	if !*noHistory {
		var client *history.DuckDBClient
		store, client, err = history.Open(ctx, history.WithThreads(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		} else {
			defer client.Close()
		}
	}

	server, err := mcpserver.NewServer(mcpserver.DefaultConfig(), ctrl, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating MCP server: %v\n", err)
		os.Exit(1)
	}
	defer server.Close(context.Background())

	if err := server.Start(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "MCP server stopped: %v\n", err)
		os.Exit(1)
	}
}
