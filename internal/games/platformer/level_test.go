package platformer

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

func TestGenerateLevelGround(t *testing.T) {
	cfg := config.DefaultClassic().Level
	l := GenerateLevel(rand.New(rand.NewSource(1)), cfg)

	// 2000 / 32 = 62.5, so the last tile is clipped.
	if l.GroundTiles != 63 {
		t.Fatalf("GroundTiles = %d, expected 63", l.GroundTiles)
	}

	covered := 0.0
	for i, g := range l.Platforms[:l.GroundTiles] {
		b := g.Box()
		if b.Top() != cfg.GroundY {
			t.Errorf("tile %d top = %v, expected %v", i, b.Top(), cfg.GroundY)
		}
		if b.Left() != covered {
			t.Errorf("tile %d starts at %v, expected %v", i, b.Left(), covered)
		}
		covered = b.Right()
	}
	if covered != cfg.Length {
		t.Errorf("ground covers %v, expected %v", covered, cfg.Length)
	}
}

func TestGenerateLevelFloatingPlatforms(t *testing.T) {
	cfg := config.DefaultClassic().Level
	for seed := int64(1); seed <= 20; seed++ {
		l := GenerateLevel(rand.New(rand.NewSource(seed)), cfg)

		floating := l.Platforms[l.GroundTiles:]
		if len(floating) != cfg.PlatformCount {
			t.Fatalf("seed %d: %d floating platforms, expected %d", seed, len(floating), cfg.PlatformCount)
		}
		for _, p := range floating {
			b := p.Box()
			if b.Left() < 0 || b.Right() > cfg.Length || b.Top() < 0 || b.Bottom() > cfg.GroundY {
				t.Errorf("seed %d: platform %v outside the world or below the ground", seed, b)
			}
			if p.X < cfg.Margin || p.X > cfg.Length-cfg.Margin {
				t.Errorf("seed %d: platform x %v inside the margin", seed, p.X)
			}
			if !p.Static() {
				t.Error("floating platforms are static")
			}
		}
	}
}

func TestGenerateLevelIsReproducible(t *testing.T) {
	cfg := config.DefaultClassic().Level
	a := GenerateLevel(rand.New(rand.NewSource(42)), cfg)
	b := GenerateLevel(rand.New(rand.NewSource(42)), cfg)

	for i := range a.Platforms {
		if a.Platforms[i].Box() != b.Platforms[i].Box() {
			t.Fatalf("platform %d differs for the same seed", i)
		}
	}
}

func TestBetweenIsInclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := between(rng, -1, 1)
		if v < -1 || v > 1 {
			t.Fatalf("between returned %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("saw %v, expected all of -1, 0, 1", seen)
	}
	if between(rng, 5, 5) != 5 || between(rng, 5, 2) != 5 {
		t.Error("degenerate ranges should return min")
	}
}
