package platformer

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

const frameDT = time.Second / 60

// startPlaying boots a machine and ticks it into the Playing scene.
func startPlaying(t *testing.T, cfg config.PlatformerConfig, opts ...Option) (*Machine, *playingScene) {
	t.Helper()

	m := NewMachine(cfg, rand.New(rand.NewSource(1)), &core.FrameClock{}, opts...)
	m.Start()
	m.Tick(frameDT) // Boot
	if cfg.Gameplay.Menu {
		m.Tap()
		m.Tick(frameDT) // Menu
	}

	s, ok := m.current.(*playingScene)
	if !ok {
		t.Fatalf("expected playing scene, got %v", m.State())
	}
	return m, s
}

// emptyWorld removes the floating platforms and every enemy so a test can
// stage its own encounter on flat ground.
func emptyWorld(s *playingScene) {
	l := s.w.Level
	l.Platforms = l.Platforms[:l.GroundTiles]
	for _, e := range s.w.Store.Enemies() {
		e.Active = false
	}
}

// standOnGround puts the player at x with its feet on the ground strip.
func standOnGround(s *playingScene, x float64) *PlayerState {
	p := s.w.Store.Player()
	p.PlaceAt(x, s.w.Level.GroundY-p.HH)
	p.VX, p.VY = 0, 0
	return p
}

// placeEnemy activates the first enemy at (x, y) standing still.
func placeEnemy(s *playingScene, x, y float64) *Entity {
	e := s.w.Store.Enemies()[0]
	e.Active = true
	e.PlaceAt(x, y)
	e.VX, e.VY = 0, 0
	return e
}

// tickUntil ticks until the machine reaches want or the budget runs out.
func tickUntil(m *Machine, want StateID, budget int) bool {
	for i := 0; i < budget; i++ {
		if m.State() == want {
			return true
		}
		m.Tick(frameDT)
	}
	return m.State() == want
}
