package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-snake/internal/platform/tilt"
	"github.com/vovakirdan/gravity-snake/internal/storage"
)

var flagBridgeAddr string

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Run the tilt bridge and score API alone",
	Long: `Serve the tilt page, the tilt WebSocket and the read-only score API
without starting a game. Useful for checking a phone's sensor stream or
reading scores from another machine.

Endpoints:
  GET /                          - Tilt page for phones
  GET /ws                        - Tilt WebSocket ({"x":..,"y":..} or {"heading":..})
  GET /api/status                - Connected tilt clients
  GET /api/difficulties          - Difficulties with best scores
  GET /api/scores/:difficulty    - Top runs (?limit=N)
  GET /api/runs/:id              - One run by UUID

Examples:
  gravsnake bridge
  gravsnake bridge --addr :9000 -v`,
	RunE: runBridge,
}

func init() {
	bridgeCmd.Flags().StringVar(&flagBridgeAddr, "addr", tilt.DefaultAddress, "Bridge listen address (host:port)")
}

func runBridge(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "gravsnake-tilt")
	if !flagVerbose {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, score API disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	// With no game attached, headings are counted and dropped
	relay := &tilt.Relay{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tilt.NewServer(relay, store, logger).ListenAndServe(ctx, flagBridgeAddr)
}
