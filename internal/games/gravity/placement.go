package gravity

import (
	"math/rand"

	"github.com/vovakirdan/gravity-snake/internal/core"
)

// sample draws up to attempts candidates inside area and returns the first
// one that keeps radius clearance from every exclusion disc. When the budget
// runs out it returns the last candidate with clear=false.
func sample(rng *rand.Rand, area core.Bounds, radius float64, exclude []core.Circle, attempts int) (p core.Point, clear bool) {
	attempts = max(1, attempts)
	for range attempts {
		p = area.RandomPoint(rng)
		if !blocked(p, radius, exclude) {
			return p, true
		}
	}
	return p, false
}

func blocked(p core.Point, radius float64, exclude []core.Circle) bool {
	for _, c := range exclude {
		if c.Touches(p, radius) {
			return true
		}
	}
	return false
}

// RespawnFood picks a new food location uniformly within bounds, inset by
// the food radius so the item is fully on the board. Candidates overlapping
// any exclusion disc are redrawn. After attempts draws the last candidate
// is accepted anyway so a crowded board never stalls a tick; clear reports
// whether that fallback was needed.
func RespawnFood(rng *rand.Rand, bounds core.Bounds, foodRadius float64, exclude []core.Circle, attempts int) (p core.Point, clear bool) {
	return sample(rng, bounds.Inset(foodRadius), foodRadius, exclude, attempts)
}

// MaybeSpawnWall runs one Bernoulli trial with the given probability. On
// success it draws a wall location under the same exclusion rule as food.
// Unlike food, a wall that cannot find a clear spot is not placed at all.
// exclude is only called once the trial succeeds.
func MaybeSpawnWall(rng *rand.Rand, bounds core.Bounds, wallRadius, probability float64, exclude func() []core.Circle, attempts int) (core.Point, bool) {
	if probability <= 0 || rng.Float64() >= probability {
		return core.Point{}, false
	}
	p, clear := sample(rng, bounds.Inset(wallRadius), wallRadius, exclude(), attempts)
	if !clear {
		return core.Point{}, false
	}
	return p, true
}

// discs wraps points as exclusion circles of the given radius.
func discs(points []core.Point, radius float64, dst []core.Circle) []core.Circle {
	for _, p := range points {
		dst = append(dst, core.Circle{Center: p, Radius: radius})
	}
	return dst
}
