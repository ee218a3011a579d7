package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"elementquiz/internal/history"
	"elementquiz/internal/quiz"
	"elementquiz/ui/console"
	"elementquiz/ui/tui"
)

func main() {
	plain := flag.Bool("plain", false, "use the line-oriented console instead of the TUI")
	seed := flag.Uint64("seed", 0, "seed for the quiz order (0 = random)")
	flag.Parse()

	cfg := quiz.DefaultConfig()
	if *seed != 0 {
		cfg = cfg.WithSeed(*seed)
	}
	ctrl, err := quiz.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating quiz: %v\n", err)
		os.Exit(1)
	}

	// History lives in memory for this run only; the quiz works without it.
	store, client, err := history.Open(context.Background(), history.WithThreads(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		store = nil
	} else {
		defer client.Close()
	}

	if *plain {
		if err := runConsole(ctrl, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.Start(ctrl, store); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func runConsole(ctrl *quiz.Controller, store *history.Store) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var hist console.HistorySource
	if store != nil {
		ctrl.Subscribe(func(ev quiz.Event) {
			if err := store.Record(ctx, ev); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: history: %v\n", err)
			}
		})
		defer store.Abandon(context.Background())
		hist = store
	}
	return console.Run(ctx, os.Stdin, os.Stdout, ctrl, hist)
}
