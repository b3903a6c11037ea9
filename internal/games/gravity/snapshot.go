package gravity

import "github.com/vovakirdan/gravity-snake/internal/core"

// Snapshot is a consistent copy of everything a renderer or score keeper
// needs after a tick. It shares no memory with the session.
type Snapshot struct {
	State      State
	Score      int
	Ticks      uint64
	Death      DeathCause
	Bounds     core.Bounds
	Heading    float64
	Speed      float64
	BodyLength int
	Body       []core.Point // Head first
	Food       core.Point
	Walls      []core.Point // Placement order
}

// Snapshot captures the session state under a single lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:      s.state,
		Score:      s.score,
		Ticks:      s.ticks,
		Death:      s.death,
		Bounds:     s.bounds,
		Heading:    DefaultHeading,
		Speed:      s.diff.InitialSpeed,
		BodyLength: max(1, s.diff.StartingLength),
		Food:       s.food,
		Walls:      append([]core.Point(nil), s.walls...),
	}
	if s.snake != nil {
		snap.Heading = s.snake.Heading()
		snap.Speed = s.snake.Speed()
		snap.BodyLength = s.snake.Length()
		snap.Body = s.snake.Segments()
	}
	return snap
}

// Head returns the head position, or the zero point before Start.
func (sn Snapshot) Head() core.Point {
	if len(sn.Body) == 0 {
		return core.Point{}
	}
	return sn.Body[0]
}
