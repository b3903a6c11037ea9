package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-snake/internal/core"
	"github.com/vovakirdan/gravity-snake/internal/platform/tilt"
	"github.com/vovakirdan/gravity-snake/internal/platform/tui"
	"github.com/vovakirdan/gravity-snake/internal/registry"
	"github.com/vovakirdan/gravity-snake/internal/storage"
)

var flagTilt string

var playCmd = &cobra.Command{
	Use:     "play [difficulty]",
	Aliases: []string{"menu"},
	Short:   "Play Gravity Snake",
	Long: `Start the difficulty menu, or jump straight into a difficulty.
After a run you can restart or go back to the menu.

Controls:
  Left/Right, A/D  - Turn 15 degrees
  Up/Down, W/S     - Head straight up or down
  P/Space          - Pause
  Esc/B            - Pause, then back to menu
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Tilt steering:
  --tilt :8099 starts the tilt bridge next to the game. Open
  http://<this-machine>:8099/ on a phone and tilt it to steer.

Examples:
  gravsnake play
  gravsnake play god-mode
  gravsnake play easy --tilt :8099 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTilt, "tilt", "", "Start the tilt bridge on this address (e.g. :8099)")
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 1 && !registry.Exists(args[0]) {
		return fmt.Errorf("unknown difficulty %q (choose from: %s)",
			args[0], strings.Join(snakeConfig.PresetIDs(), ", "))
	}

	logger, closeLog := fileLogger("play.log", "gravsnake")
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	relay := &tilt.Relay{}
	if flagTilt != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		startBridge(ctx, relay, store, logger)
	}

	cfg := runtimeConfig()

	// A difficulty on the command line skips the menu for the first run
	next := ""
	if len(args) == 1 {
		next = args[0]
	}

	for {
		if next == "" {
			res, err := tui.RunMenu(store, cfg)
			if err != nil {
				return err
			}
			cfg = res.Config

			if res.Quit {
				return nil
			}
			if res.WantsScoreboard {
				goBack, err := tui.RunScoreboard(store, res.Highlighted, cfg.ScreenW, cfg.ScreenH)
				if err != nil {
					return err
				}
				if !goBack {
					return nil
				}
				continue
			}
			next = res.GameID
		}

		backToMenu, err := playOnce(next, store, relay, cfg, logger)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
		next = ""
	}
}

// playOnce runs one difficulty until the player leaves it.
func playOnce(id string, store *storage.Store, relay *tilt.Relay, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	game, err := registry.Create(id)
	if err != nil {
		return false, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if s, ok := game.(registry.Steerable); ok {
		relay.Attach(s)
		defer relay.Attach(nil)
	}

	logger.Info("run started", "difficulty", id, "seed", cfg.Seed)
	backToMenu, err := tui.Run(game, store, cfg)
	if err != nil {
		return false, fmt.Errorf("running %s: %w", id, err)
	}
	logger.Info("run left", "difficulty", id, "score", game.State().Score)
	return backToMenu, nil
}

// startBridge serves the tilt bridge in the background until ctx ends.
func startBridge(ctx context.Context, relay *tilt.Relay, store *storage.Store, logger *log.Logger) {
	gin.SetMode(gin.ReleaseMode)
	srv := tilt.NewServer(relay, store, logger.WithPrefix("tilt"))
	go func() {
		if err := srv.ListenAndServe(ctx, flagTilt); err != nil {
			logger.Error("tilt bridge stopped", "error", err)
		}
	}()
}
