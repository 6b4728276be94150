package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Level is the static geometry of one run: ground tiles first, then the
// floating platforms. It does not change after generation.
type Level struct {
	Platforms   []*Entity
	GroundTiles int // Number of leading entries in Platforms that form the ground
	Length      float64
	Height      float64
	GroundY     float64
}

// GenerateLevel tiles the ground across the whole length and scatters the
// floating platforms. Every platform stays inside the world and above the
// ground top.
func GenerateLevel(rng *rand.Rand, cfg config.LevelConfig) *Level {
	l := &Level{
		Length:  cfg.Length,
		Height:  cfg.Height,
		GroundY: cfg.GroundY,
	}

	id := 0
	for x := 0.0; x < cfg.Length; x += cfg.TileSize {
		w := cfg.TileSize
		if x+w > cfg.Length {
			w = cfg.Length - x
		}
		l.Platforms = append(l.Platforms, newPlatform(id, core.BoxFromCorner(x, cfg.GroundY, w, cfg.TileSize)))
		id++
	}
	l.GroundTiles = len(l.Platforms)

	hw, hh := cfg.PlatformWidth/2, cfg.PlatformHeight/2
	for i := 0; i < cfg.PlatformCount; i++ {
		x := float64(between(rng, int(cfg.Margin), int(cfg.Length-cfg.Margin)))
		y := float64(between(rng, int(cfg.PlatformMinY), int(cfg.PlatformMaxY)))

		x = core.ClampF(x, hw, cfg.Length-hw)
		y = core.ClampF(y, hh, cfg.GroundY-hh)

		l.Platforms = append(l.Platforms, newPlatform(id, core.NewBox(x, y, hw, hh)))
		id++
	}

	return l
}

func newPlatform(id int, b core.Box) *Entity {
	e := &Entity{
		ID:     id,
		Role:   RolePlatform,
		HW:     b.HW,
		HH:     b.HH,
		Active: true,
	}
	e.PlaceAt(b.CX, b.CY)
	return e
}

// between returns a uniform integer in [min, max], both inclusive.
func between(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
