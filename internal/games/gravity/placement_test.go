package gravity

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/gravity-snake/internal/core"
)

func TestRespawnFoodStaysOnBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bounds := core.NewBounds(100, 60)
	const radius = 5.0

	for range 2000 {
		p, clear := RespawnFood(rng, bounds, radius, nil, 64)
		if !clear {
			t.Fatal("RespawnFood() reported a conflict with no exclusions")
		}
		if p.X() < radius || p.X() > 100-radius || p.Y() < radius || p.Y() > 60-radius {
			t.Fatalf("food %v is not fully inside the board", p)
		}
	}
}

func TestRespawnFoodAvoidsExclusions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bounds := core.NewBounds(200, 200)
	const radius = 5.0

	exclude := []core.Circle{
		{Center: core.Pt(50, 100), Radius: 40},
		{Center: core.Pt(150, 50), Radius: 10},
		{Center: core.Pt(150, 150), Radius: 25},
	}

	for range 5000 {
		p, clear := RespawnFood(rng, bounds, radius, exclude, 64)
		if !clear {
			t.Fatal("RespawnFood() exhausted its attempts on a mostly empty board")
		}
		for _, c := range exclude {
			if d := p.Dist(c.Center); d <= c.Radius+radius {
				t.Fatalf("food %v is %.2f from %v, within clearance %.2f", p, d, c.Center, c.Radius+radius)
			}
		}
	}
}

func TestRespawnFoodFallbackTerminates(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bounds := core.NewBounds(100, 100)
	everything := []core.Circle{{Center: core.Pt(50, 50), Radius: 1000}}

	p, clear := RespawnFood(rng, bounds, 5, everything, 16)
	if clear {
		t.Error("clear = true on a fully blocked board")
	}
	if !bounds.Contains(p) {
		t.Errorf("fallback food %v is off the board", p)
	}
}

func TestMaybeSpawnWall(t *testing.T) {
	bounds := core.NewBounds(400, 400)

	tests := []struct {
		name        string
		probability float64
		exclude     []core.Circle
		trials      int
		minSpawns   int
		maxSpawns   int
	}{
		{"zero probability never spawns", 0, nil, 1000, 0, 0},
		{"quarter probability", 0.25, nil, 20000, 4400, 5600},
		{"near certain", 0.999, nil, 1000, 980, 1000},
		{"blocked board never spawns", 0.999, []core.Circle{{Center: core.Pt(200, 200), Radius: 1000}}, 500, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			spawns := 0
			for range tc.trials {
				p, ok := MaybeSpawnWall(rng, bounds, 6, tc.probability, fixed(tc.exclude), 64)
				if !ok {
					continue
				}
				spawns++
				if p.X() < 6 || p.X() > 394 || p.Y() < 6 || p.Y() > 394 {
					t.Fatalf("wall %v is not fully inside the board", p)
				}
			}
			if spawns < tc.minSpawns || spawns > tc.maxSpawns {
				t.Errorf("spawned %d walls in %d trials, expected %d..%d",
					spawns, tc.trials, tc.minSpawns, tc.maxSpawns)
			}
		})
	}
}

func TestMaybeSpawnWallAvoidsExclusions(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bounds := core.NewBounds(300, 300)
	exclude := []core.Circle{
		{Center: core.Pt(150, 150), Radius: 40}, // head clearance
		{Center: core.Pt(60, 60), Radius: 5},    // food
	}

	for range 3000 {
		p, ok := MaybeSpawnWall(rng, bounds, 6, 0.9, fixed(exclude), 64)
		if !ok {
			continue
		}
		for _, c := range exclude {
			if p.Dist(c.Center) <= c.Radius+6 {
				t.Fatalf("wall %v overlaps exclusion at %v", p, c.Center)
			}
		}
	}
}

func fixed(c []core.Circle) func() []core.Circle {
	return func() []core.Circle { return c }
}

func TestMaybeSpawnWallBuildsExclusionsOnlyOnSuccess(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	bounds := core.NewBounds(300, 300)

	calls := 0
	exclude := func() []core.Circle {
		calls++
		return nil
	}

	for range 1000 {
		MaybeSpawnWall(rng, bounds, 6, 0, exclude, 64)
	}
	if calls != 0 {
		t.Fatalf("exclusions built %d times with zero probability", calls)
	}

	spawns := 0
	for range 1000 {
		if _, ok := MaybeSpawnWall(rng, bounds, 6, 0.1, exclude, 64); ok {
			spawns++
		}
	}
	if calls != spawns {
		t.Errorf("exclusions built %d times for %d successful trials", calls, spawns)
	}
	if spawns == 0 || spawns > 200 {
		t.Errorf("spawned %d walls in 1000 trials at probability 0.1", spawns)
	}
}
