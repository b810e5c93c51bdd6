package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-gol/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	g := initializeGame(config)
	g.displayGameInfo()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
		return nil
	})
	eg.Go(func() error {
		defer cancel()
		return g.run(ctx)
	})

	if err = eg.Wait(); err != nil {
		fmt.Printf("Game stopped with error: %v\n", err)
		os.Exit(1)
	}
	g.displayFinalStats()
}
