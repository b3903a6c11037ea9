// gravsnake is a tilt-steered snake for the terminal.
//
// Usage:
//
//	gravsnake list                  - List difficulties and best scores
//	gravsnake play [difficulty]     - Play (menu when no difficulty is given)
//	gravsnake scores [difficulty]   - Show high scores
//	gravsnake serve                 - Start SSH server for remote play
//	gravsnake bridge                - Run the tilt bridge and score API alone
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.gravsnake/scores.db)
//	--config <path>  - Use a custom snake.yaml
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravity-snake/internal/config"
	"github.com/vovakirdan/gravity-snake/internal/core"
	"github.com/vovakirdan/gravity-snake/internal/games/gravity"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool

	snakeConfig config.SnakeConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravsnake",
	Short: "Gravity Snake - steer a snake by tilting",
	Long: `Gravity Snake is a snake that moves at any angle, not on a grid.
Steer with the keyboard, or open the tilt bridge on your phone and steer
by tilting it. Eat food to grow and speed up; walls appear as you play.

Available commands:
  list     - Show difficulties and best scores
  play     - Play (difficulty menu unless one is given)
  scores   - View high scores
  serve    - Start SSH server for remote play
  bridge   - Run the tilt bridge and score API alone

Examples:
  gravsnake play
  gravsnake play extreme --tilt :8099
  gravsnake scores easy
  gravsnake serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.LoadSnake(flagConfig)
		if err != nil {
			return err
		}
		snakeConfig = cfg
		gravity.Register(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gravsnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bridgeCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fileLogger logs to ~/.gravsnake/<name> so the terminal stays free for the
// game. It falls back to discarding when the file cannot be opened.
func fileLogger(name, prefix string) (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	dir := filepath.Join(home, ".gravsnake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	return newLogger(f, prefix), func() { f.Close() }
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := sizedConfig(func() (int, int, error) {
		return term.GetSize(int(os.Stdout.Fd()))
	})
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// sizedConfig starts from core.DefaultConfig and takes the screen size from
// getSize, keeping the default size when it fails or reports an empty window.
func sizedConfig(getSize func() (int, int, error)) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := getSize(); err == nil && w > 0 && h > 0 {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg
}
