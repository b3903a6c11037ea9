package gravity

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gravity-snake/internal/config"
	"github.com/vovakirdan/gravity-snake/internal/core"
	"github.com/vovakirdan/gravity-snake/internal/registry"
)

// TurnStep is how far one left/right key press rotates the heading.
const TurnStep = math.Pi / 12

const (
	hudHeight = 2  // HUD line plus separator
	minCols   = 20 // Smallest playable board, in cells inside the border
	minRows   = 6
)

// Game adapts a Session to the platform's registry.Game interface. The
// board is sized from the terminal: every cell covers CellWidth x CellHeight
// simulation units.
type Game struct {
	preset config.Preset
	geom   config.Geometry
	place  config.Placement

	session *Session
	inbox   core.HeadingInbox
	seeds   *rand.Rand
	err     error

	screenW  int
	screenH  int
	cols     int
	rows     int
	tooSmall bool
	paused   bool
	best     int
	last     TickResult
}

// New creates a game for one difficulty preset.
func New(preset config.Preset, geom config.Geometry, place config.Placement) *Game {
	return &Game{preset: preset, geom: geom, place: place}
}

// Register adds one game per preset in cfg to the registry. Presets whose ID
// is already registered are skipped, so calling it twice is harmless.
func Register(cfg config.SnakeConfig) {
	for _, p := range cfg.Presets {
		if registry.Exists(p.ID) {
			continue
		}
		registry.Register(p.ID, func() registry.Game {
			return New(p, cfg.Geometry, cfg.Placement)
		})
	}
}

// ID returns the preset ID.
func (g *Game) ID() string { return g.preset.ID }

// Title returns the preset name.
func (g *Game) Title() string { return g.preset.Name }

// Description returns the preset blurb.
func (g *Game) Description() string { return g.preset.Description }

// Reset starts a fresh session sized to the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seeds = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.last = TickResult{}
	g.err = nil

	// Board sits inside a one-cell border below the HUD
	g.cols = cfg.ScreenW - 2
	g.rows = cfg.ScreenH - hudHeight - 2
	g.tooSmall = g.cols < minCols || g.rows < minRows

	g.session, g.err = NewSession(Options{
		Difficulty: g.preset.Difficulty,
		Geometry:   g.geom,
		Placement:  g.place,
		Seed:       g.seeds.Int63(),
	})
	if g.err != nil || g.tooSmall {
		return
	}
	g.session.Start(float64(g.cols)*g.geom.CellWidth, float64(g.rows)*g.geom.CellHeight)
}

// Step applies input and advances the session by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && g.session.IsGameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.seeds.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.err != nil || g.session.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	if angle, ok := g.inbox.Take(); ok {
		g.session.SetHeading(angle)
	}
	g.steer(input)

	g.last = g.session.Tick()
	return core.StepResult{State: g.State(), Ate: g.last.Ate}
}

// steer applies keyboard steering on top of any tilt heading.
func (g *Game) steer(input core.InputFrame) {
	heading := g.session.Heading()
	switch {
	case input.Has(core.ActionUp):
		heading = -math.Pi / 2
	case input.Has(core.ActionDown):
		heading = math.Pi / 2
	case input.Has(core.ActionTurnLeft):
		heading -= TurnStep
	case input.Has(core.ActionTurnRight):
		heading += TurnStep
	default:
		return
	}
	g.session.SetHeading(heading)
}

// SetHeading hands a heading to the next Step. Safe to call from an input
// goroutine; only the most recent value is used.
func (g *Game) SetHeading(angle float64) {
	g.inbox.Put(angle)
}

// SetHighScore records the stored best score for display.
func (g *Game) SetHighScore(best int) {
	g.best = best
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.session != nil {
		st.Score = g.session.Score()
		st.GameOver = g.session.IsGameOver()
	}
	return st
}

// RunSummary describes the current (normally finished) run.
func (g *Game) RunSummary() core.RunSummary {
	if g.session == nil {
		return core.RunSummary{}
	}
	snap := g.session.Snapshot()
	return core.RunSummary{
		Score:      snap.Score,
		Length:     snap.BodyLength,
		Walls:      len(snap.Walls),
		Ticks:      snap.Ticks,
		DeathCause: string(snap.Death),
	}
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}
