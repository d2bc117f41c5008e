// Command gen-docs generates markdown command documentation and shell
// completions for fastwin from the cobra command tree.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra/doc"

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
	root := cli.NewApp(config.Default(), clock.Real{}).Root()
	root.DisableAutoGenTag = true

	mdDir := filepath.Join("docs", "commands")
	if err := os.MkdirAll(mdDir, 0o755); err != nil {
		return err
	}
	if err := doc.GenMarkdownTree(root, mdDir); err != nil {
		return fmt.Errorf("generating markdown docs: %w", err)
	}

	compDir := filepath.Join("docs", "completions")
	if err := os.MkdirAll(compDir, 0o755); err != nil {
		return err
	}
	if err := root.GenBashCompletionFile(filepath.Join(compDir, "fastwin.bash")); err != nil {
		return fmt.Errorf("generating bash completions: %w", err)
	}
	if err := root.GenZshCompletionFile(filepath.Join(compDir, "_fastwin")); err != nil {
		return fmt.Errorf("generating zsh completions: %w", err)
	}
	if err := root.GenFishCompletionFile(filepath.Join(compDir, "fastwin.fish"), true); err != nil {
		return fmt.Errorf("generating fish completions: %w", err)
	}

	return nil
}
