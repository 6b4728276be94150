package platformer

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func newTestStore(seed int64) *EntityStore {
	return NewEntityStore(config.DefaultClassic(), rand.New(rand.NewSource(seed)), core.NewScheduler(&core.FrameClock{}))
}

func TestSpawnPlayer(t *testing.T) {
	s := newTestStore(1)
	p := s.SpawnPlayer(100, 350)

	if p.X != 100 || p.Y != 350 || p.HW != 16 || p.HH != 24 {
		t.Errorf("player = (%v, %v) half %vx%v", p.X, p.Y, p.HW, p.HH)
	}
	if p.MaxJumps != 1 || p.JumpCount != 0 || !p.AffectedByGravity || !p.Active {
		t.Errorf("unexpected player state %+v", p)
	}
	if s.Player() != p {
		t.Error("Player() should return the spawned player")
	}
}

func TestSpawnEnemiesStayInRangeAndMove(t *testing.T) {
	s := newTestStore(7)
	enemies := s.SpawnEnemies(50, Range{300, 1700}, Range{100, 100}, 50)

	if len(enemies) != 50 || len(s.ActiveEnemies()) != 50 {
		t.Fatalf("spawned %d enemies", len(enemies))
	}
	for _, e := range enemies {
		if e.X < 300 || e.X > 1700 || e.Y != 100 {
			t.Errorf("enemy %d at (%v, %v) is out of range", e.ID, e.X, e.Y)
		}
		if e.VX == 0 || e.VX < -50 || e.VX > 50 {
			t.Errorf("enemy %d speed %v", e.ID, e.VX)
		}
		if !e.AffectedByGravity {
			t.Error("enemies fall")
		}
	}
}

func TestSpawnEnemiesZeroSpeedUsesFallback(t *testing.T) {
	s := newTestStore(1)
	e := s.SpawnEnemies(1, Range{500, 500}, Range{100, 100}, 0)[0]
	if e.VX != 50 || e.Facing != 1 {
		t.Errorf("VX=%v Facing=%v, expected the fallback speed", e.VX, e.Facing)
	}
}

func TestDynamicSkipsInactive(t *testing.T) {
	s := newTestStore(1)
	s.SpawnPlayer(0, 0)
	enemies := s.SpawnEnemies(3, Range{500, 600}, Range{100, 100}, 50)
	enemies[1].Active = false
	s.AcquireProjectile(0, 0, 1)
	s.SpawnGoal(1900, 350)

	if got := len(s.Dynamic()); got != 1+2+1 {
		t.Errorf("Dynamic() returned %d entities, expected 4", got)
	}
	if !s.Goal().Static() {
		t.Error("the goal never moves")
	}
}
