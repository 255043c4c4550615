package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/FishingOverhaul_Go/internal/config"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := defaultRegistry()
	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Run(ctx, os.Args[2:])
	stop()
	if err != nil {
		PrintError("%s: %v", cmd.Name(), err)
		os.Exit(1)
	}
}

// loadConfig reads the same environment the server does
func loadConfig() (*config.Config, error) {
	return config.Load()
}
