package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"SwapMarket/internal/cli/commands"
	"SwapMarket/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// env + флаги; адрес сервера и путь к токену берутся отсюда
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion(cfg)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	os.Exit(code)
}

func printVersion(cfg *config.Config) {
	fmt.Printf("swapcli %s (built %s)\nServer: %s\nToken file: %s\n", version, buildDate, cfg.ServerURL, cfg.TokenFile)
}
