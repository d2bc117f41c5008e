package main

import (
	"fmt"
	"os"

	"github.com/okelund/fastwin/internal/cli"
	"github.com/okelund/fastwin/internal/clock"
	"github.com/okelund/fastwin/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := cli.NewApp(cfg, clock.Real{})
	return app.Execute()
}
