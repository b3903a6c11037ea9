// Package gravity implements the tilt-steered snake simulation: a snake that
// moves along a continuous heading, grows when it eats, and dies on walls,
// its own body, or the board edge.
package gravity

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/gravity-snake/internal/config"
	"github.com/vovakirdan/gravity-snake/internal/core"
)

// DefaultHeading is the direction a new snake faces (east).
const DefaultHeading = 0.0

// State is the lifecycle state of a session.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DeathCause names the collision that ended a run.
type DeathCause string

const (
	DeathNone        DeathCause = ""
	DeathWall        DeathCause = "wall-collision"
	DeathSelf        DeathCause = "self-collision"
	DeathOutOfBounds DeathCause = "out-of-bounds"
)

// TickResult describes what happened during one Tick.
type TickResult struct {
	Ate         bool
	WallSpawned bool
	Death       DeathCause
}

// Options configures a new session. Zero Geometry or Placement values
// select the built-in defaults. A zero Seed picks a time-based seed.
type Options struct {
	Difficulty config.Difficulty
	Geometry   config.Geometry
	Placement  config.Placement
	Seed       int64
}

// Session owns one run of the game: board, snake, food, walls and score.
// All methods are safe for concurrent use; typically Tick is driven by the
// render loop while SetHeading is called by an input source.
type Session struct {
	mu sync.Mutex

	diff  config.Difficulty
	geom  config.Geometry
	place config.Placement
	rng   *rand.Rand

	state  State
	bounds core.Bounds
	snake  *Snake
	food   core.Point
	walls  []core.Point
	score  int
	ticks  uint64
	death  DeathCause
}

// NewSession validates opts and returns a session in StateNotStarted.
func NewSession(opts Options) (*Session, error) {
	defaults := config.DefaultSnakeConfig()
	if opts.Geometry == (config.Geometry{}) {
		opts.Geometry = defaults.Geometry
	}
	if opts.Placement == (config.Placement{}) {
		opts.Placement = defaults.Placement
	}
	if err := opts.Difficulty.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Geometry.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Placement.Validate(); err != nil {
		return nil, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		diff:  opts.Difficulty,
		geom:  opts.Geometry,
		place: opts.Placement,
		rng:   rand.New(rand.NewSource(seed)),
		state: StateNotStarted,
	}, nil
}

// Start fixes the board size, places the snake at the centre with a straight
// tail, spawns the first food and enters StateRunning. It only takes effect
// once, and only for a positive board size; it reports whether it did.
func (s *Session) Start(width, height float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateNotStarted || width <= 0 || height <= 0 {
		return false
	}

	s.bounds = core.NewBounds(width, height)
	s.snake = NewSnake(s.bounds.Center(), DefaultHeading,
		s.diff.StartingLength, s.diff.InitialSpeed, s.geom.SegmentSpacing)
	s.walls = nil
	s.score = 0
	s.ticks = 0
	s.death = DeathNone
	s.food, _ = RespawnFood(s.rng, s.bounds, s.geom.FoodRadius, s.foodExclusions(), s.place.MaxAttempts)
	s.state = StateRunning
	return true
}

// SetHeading steers the snake. It only has an effect while running.
func (s *Session) SetHeading(angle float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRunning {
		s.snake.SetHeading(angle)
	}
}

// Tick advances the simulation by one step. Outside StateRunning it does
// nothing and returns a zero result.
//
// Collisions are checked against the would-be position before anything is
// committed, so a fatal tick leaves the snake, food, walls and score exactly
// as they were.
func (s *Session) Tick() TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return TickResult{}
	}

	dist := s.snake.Speed()
	if cause := s.collision(s.snake.NextHead(dist), s.snake.PeekSegments(dist)); cause != DeathNone {
		s.state = StateGameOver
		s.death = cause
		return TickResult{Death: cause}
	}

	s.snake.Advance(dist)
	s.ticks++

	var res TickResult
	head := s.snake.Head()
	if head.Dist(s.food) <= s.geom.SnakeRadius+s.geom.FoodRadius {
		s.score++
		s.snake.Grow(s.diff.LengthIncreasePerFood)
		s.snake.IncreaseSpeed(s.diff.SpeedIncreasePerFood)
		s.food, _ = RespawnFood(s.rng, s.bounds, s.geom.FoodRadius, s.foodExclusions(), s.place.MaxAttempts)
		res.Ate = true
	}

	if w, ok := MaybeSpawnWall(s.rng, s.bounds, s.geom.WallRadius, s.diff.WallPlacementProbability,
		s.wallExclusions, s.place.MaxAttempts); ok {
		s.walls = append(s.walls, w)
		res.WallSpawned = true
	}

	return res
}

// collision returns the first fatal contact for the given head and body,
// checking walls, then the body, then the board edge.
func (s *Session) collision(head core.Point, body []core.Point) DeathCause {
	wallHit := s.geom.SnakeRadius + s.geom.WallRadius
	for _, w := range s.walls {
		if head.Dist(w) <= wallHit {
			return DeathWall
		}
	}

	selfHit := 2 * s.geom.SnakeRadius
	for i := s.geom.SelfCollisionSkip; i < len(body); i++ {
		if head.Dist(body[i]) <= selfHit {
			return DeathSelf
		}
	}

	if !s.bounds.Contains(head) {
		return DeathOutOfBounds
	}
	return DeathNone
}

// foodExclusions keeps food off the body and the walls.
func (s *Session) foodExclusions() []core.Circle {
	body := s.snake.Segments()
	ex := make([]core.Circle, 0, len(body)+len(s.walls))
	ex = discs(body, s.geom.SnakeRadius, ex)
	return discs(s.walls, s.geom.WallRadius, ex)
}

// wallExclusions keeps walls off the body, the food, other walls and a
// clearance disc around the head.
func (s *Session) wallExclusions() []core.Circle {
	ex := s.foodExclusions()
	ex = append(ex, core.Circle{Center: s.food, Radius: s.geom.FoodRadius})
	if s.place.WallHeadClearance > 0 {
		ex = append(ex, core.Circle{Center: s.snake.Head(), Radius: s.place.WallHeadClearance})
	}
	return ex
}

// State returns the lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// HasNotStarted reports whether Start has not yet taken effect.
func (s *Session) HasNotStarted() bool {
	return s.State() == StateNotStarted
}

// IsGameOver reports whether the run has ended.
func (s *Session) IsGameOver() bool {
	return s.State() == StateGameOver
}

// Score returns the number of food items eaten.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Ticks returns the number of non-fatal ticks applied.
func (s *Session) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// DeathCause returns what ended the run, or DeathNone.
func (s *Session) DeathCause() DeathCause {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.death
}

// Body returns the segment positions, head first. It is empty before Start.
func (s *Session) Body() []core.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snake == nil {
		return nil
	}
	return s.snake.Segments()
}

// Food returns the current food position.
func (s *Session) Food() core.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.food
}

// Walls returns a copy of the walls in placement order.
func (s *Session) Walls() []core.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Point(nil), s.walls...)
}

// Speed returns the distance the snake moves per tick.
func (s *Session) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snake == nil {
		return s.diff.InitialSpeed
	}
	return s.snake.Speed()
}

// BodyLength returns the number of body segments.
func (s *Session) BodyLength() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snake == nil {
		return max(1, s.diff.StartingLength)
	}
	return s.snake.Length()
}

// Heading returns the current heading in radians.
func (s *Session) Heading() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snake == nil {
		return DefaultHeading
	}
	return s.snake.Heading()
}

// Bounds returns the board bounds; zero before Start.
func (s *Session) Bounds() core.Bounds {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bounds
}

// Geometry returns the sizes the session was created with.
func (s *Session) Geometry() config.Geometry {
	return s.geom
}
