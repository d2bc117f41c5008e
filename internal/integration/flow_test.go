package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okelund/fastwin/internal/cli"
	"github.com/okelund/fastwin/internal/clock"
	"github.com/okelund/fastwin/internal/config"
	"github.com/okelund/fastwin/internal/ui"
)

func fixedClock() clock.Fixed {
	return clock.Fixed{Time: time.Date(2026, 8, 23, 20, 0, 0, 0, time.UTC)}
}

func feed(m ui.Model, keys ...tea.KeyMsg) ui.Model {
	for _, k := range keys {
		m, _ = ui.Update(k, m)
	}
	return m
}

func typeKeys(m ui.Model, s string) ui.Model {
	for _, r := range s {
		m = feed(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// TestFastingFlowIntegration walks the TUI from menu to result the way
// a user would, on top of real config defaults.
func TestFastingFlowIntegration(t *testing.T) {
	cfg, err := config.LoadFrom("/nonexistent/config.toml")
	require.NoError(t, err, "defaults should load without a config file")

	m := ui.InitialModel(cfg, fixedClock())

	m = feed(m, enter())        // pick fasting calculator
	m = feed(m, enter())        // keep 24-hour input
	m = typeKeys(m, "20:00")    // current time
	m = feed(m, enter())
	m = typeKeys(m, "12:00")    // meal time
	m = feed(m, enter())
	m = feed(m, enter())        // accept the configured 16h default

	assert.Equal(t, "You should start fasting at 20:00 tomorrow.", m.Result)
	assert.Contains(t, m.View(), "You should start fasting at 20:00 tomorrow.")

	// The result screen returns to the menu and clears the flow.
	m = feed(m, enter())
	assert.Empty(t, m.Result)
	assert.Contains(t, m.View(), "Fasting window calculator")
}

// TestConfigToCLIIntegration verifies that file config flows through to
// subcommand defaults.
func TestConfigToCLIIntegration(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	content := `
[clock]
format = "12"

[fasting]
default_hours = "2"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := config.LoadFrom(configPath)
	require.NoError(t, err)
	assert.True(t, cfg.TwelveHour())

	app := cli.NewApp(cfg, fixedClock())
	var buf bytes.Buffer
	root := app.Root()
	root.SetOut(&buf)
	root.SetErr(&buf)
	// No --hours and no --12h: both come from the config file. The
	// fixed clock supplies "now" as 20:00.
	root.SetArgs([]string{"fast", "--meal", "11:00 PM", "--no-color"})

	require.NoError(t, root.Execute())
	assert.True(t, strings.Contains(buf.String(), "You should start fasting at 09:00 PM today."),
		"got output: %s", buf.String())
}

// TestDateFlowIntegration walks the date calculator end to end.
func TestDateFlowIntegration(t *testing.T) {
	cfg, err := config.LoadFrom("/nonexistent/config.toml")
	require.NoError(t, err)

	m := ui.InitialModel(cfg, fixedClock())

	m = feed(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = feed(m, enter())       // date calculator
	m = typeKeys(m, "10")      // years
	m = feed(m, enter())
	m = feed(m, enter())       // empty date = today (fixed clock)

	assert.Equal(t, "New Date: 2036-08-23", m.Result)
}
