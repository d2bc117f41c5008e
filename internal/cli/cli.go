// Package cli wires the fastwin calculators into a cobra command tree.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/okelund/fastwin/internal/clock"
	"github.com/okelund/fastwin/internal/config"
	"github.com/okelund/fastwin/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	clock  clock.Clock
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given config and clock.
func NewApp(cfg *config.Config, clk clock.Clock) *App {
	a := &App{config: cfg, clock: clk}

	a.root = &cobra.Command{
		Use:   "fastwin",
		Short: "Fasting window and date offset calculators",
		Long: `Fastwin bundles two small time calculators.

The fasting window calculator tells you when to start fasting so the
fast ends exactly at your next meal. The date offset calculator shifts
a date by a number of calendar years.

Run without a subcommand for the interactive prompts.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.fastCmd())
	a.root.AddCommand(a.dateCmd())

	return a
}

// Root returns the root command, for docs and completion generation.
func (a *App) Root() *cobra.Command {
	return a.root
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fastwin %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) runTUI() error {
	if a.debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	}

	p := tea.NewProgram(
		ui.InitialModel(a.config, a.clock),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
