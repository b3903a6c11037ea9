package gravity

import (
	"math"
	"slices"

	"github.com/vovakirdan/gravity-snake/internal/core"
)

// Snake is a continuously steered snake. The body is not stored as cells:
// it is derived from the trail of recent head positions, resampled at a
// fixed path distance so it follows curves smoothly.
type Snake struct {
	path    []core.Point // Head samples, oldest first; the last element is the head
	heading float64      // Radians; 0 points along +X, pi/2 along +Y (down the screen)
	speed   float64      // Units moved per Advance
	length  int          // Number of body segments, head included
	spacing float64      // Path distance between consecutive segments
}

// NewSnake creates a snake whose head is at head, facing heading, with a
// straight body of length segments trailing behind it.
func NewSnake(head core.Point, heading float64, length int, speed, spacing float64) *Snake {
	length = max(1, length)
	path := make([]core.Point, 0, length)
	for i := length - 1; i >= 0; i-- {
		path = append(path, head.Step(heading+math.Pi, float64(i)*spacing))
	}
	return &Snake{
		path:    path,
		heading: heading,
		speed:   speed,
		length:  length,
		spacing: spacing,
	}
}

// Head returns the current head position.
func (s *Snake) Head() core.Point {
	return s.path[len(s.path)-1]
}

// Heading returns the current direction of travel in radians.
func (s *Snake) Heading() float64 { return s.heading }

// Speed returns the distance moved per tick.
func (s *Snake) Speed() float64 { return s.speed }

// Length returns the number of body segments, head included.
func (s *Snake) Length() int { return s.length }

// SetHeading records the direction used by the next Advance.
func (s *Snake) SetHeading(angle float64) {
	s.heading = angle
}

// NextHead returns where the head would be after advancing dist units.
func (s *Snake) NextHead(dist float64) core.Point {
	return s.Head().Step(s.heading, dist)
}

// Advance moves the head dist units along the current heading and discards
// trail samples no longer needed to place the tail.
func (s *Snake) Advance(dist float64) {
	s.path = append(s.path, s.NextHead(dist))
	s.trim()
}

// Grow adds n segments. The new segments start stacked on the tail and
// unfurl as the snake moves.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.length += n
	}
}

// IncreaseSpeed raises the speed by delta. Negative deltas are ignored.
func (s *Snake) IncreaseSpeed(delta float64) {
	if delta > 0 {
		s.speed += delta
	}
}

// Segments returns Length() positions, head first, spaced Spacing apart
// along the travelled path.
func (s *Snake) Segments() []core.Point {
	n := len(s.path)
	return resample(s.path[:n-1], s.path[n-1], s.length, s.spacing)
}

// PeekSegments returns the body as it would be after advancing dist units,
// without moving the snake.
func (s *Snake) PeekSegments(dist float64) []core.Point {
	return resample(s.path, s.NextHead(dist), s.length, s.spacing)
}

// trim drops samples older than the one that reaches (length-1)*spacing
// behind the head. That sample is kept since the tail is interpolated
// between it and its newer neighbour.
func (s *Snake) trim() {
	need := float64(s.length-1) * s.spacing
	walked := 0.0
	for i := len(s.path) - 1; i > 0; i-- {
		walked += s.path[i].Dist(s.path[i-1])
		if walked >= need {
			s.path = slices.Delete(s.path, 0, i-1)
			return
		}
	}
}

// resample walks backwards from head through trail (oldest first) and
// emits n points at multiples of spacing in path distance, linearly
// interpolated between samples. When the trail runs out the remaining
// points collapse onto the oldest sample.
func resample(trail []core.Point, head core.Point, n int, spacing float64) []core.Point {
	out := make([]core.Point, 0, n)
	out = append(out, head)

	prev := head
	walked := 0.0
	target := spacing
	idx := len(trail) - 1

	for len(out) < n {
		if idx < 0 {
			out = append(out, prev)
			continue
		}
		next := trail[idx]
		edge := prev.Dist(next)
		if edge > 0 && walked+edge >= target {
			out = append(out, prev.Lerp(next, (target-walked)/edge))
			target += spacing
			continue
		}
		walked += edge
		prev = next
		idx--
	}
	return out
}
