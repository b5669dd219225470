package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/atlas/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/atlas/config.toml)")
	serve := flag.String("serve", "", "serve the web frontend on this address instead of the terminal UI, e.g. :8080")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Listen:     *serve,
		Debug:      *debug,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "atlas: %v\n", err)
		return 1
	}
	return 0
}
