package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Range is an inclusive numeric interval.
type Range struct {
	Min, Max float64
}

// EntityStore owns the dynamic entities of one Playing scene.
type EntityStore struct {
	cfg     config.PlatformerConfig
	rng     *rand.Rand
	nextID  int
	player  *PlayerState
	enemies []*Entity
	goal    *Entity
	pool    *ProjectilePool
}

// NewEntityStore creates an empty store. Projectile expiry is scheduled on sched.
func NewEntityStore(cfg config.PlatformerConfig, rng *rand.Rand, sched *core.Scheduler) *EntityStore {
	pc := cfg.Projectiles
	return &EntityStore{
		cfg:  cfg,
		rng:  rng,
		pool: NewProjectilePool(pc.Capacity, pc.Size, pc.SpeedX, pc.SpeedY, pc.Lifespan(), sched),
	}
}

func (s *EntityStore) newID() int {
	s.nextID++
	return s.nextID
}

// SpawnPlayer creates the player. Calling it again replaces the previous one.
func (s *EntityStore) SpawnPlayer(x, y float64) *PlayerState {
	e := &Entity{
		ID:                s.newID(),
		Role:              RolePlayer,
		HW:                s.cfg.Player.Width / 2,
		HH:                s.cfg.Player.Height / 2,
		Facing:            1,
		Active:            true,
		AffectedByGravity: true,
	}
	e.PlaceAt(x, y)
	s.player = &PlayerState{Entity: e, MaxJumps: s.cfg.Physics.MaxJumps}
	return s.player
}

// SpawnEnemies places count enemies at random positions with a random
// horizontal speed in [-speed, speed]. A zero draw becomes the fallback
// speed so no enemy starts still.
func (s *EntityStore) SpawnEnemies(count int, xRange, yRange Range, speed int) []*Entity {
	half := s.cfg.Enemies.Size / 2
	spawned := make([]*Entity, 0, count)
	for i := 0; i < count; i++ {
		vx := float64(between(s.rng, -speed, speed))
		if vx == 0 {
			vx = s.cfg.Enemies.FallbackSpeed
		}
		e := &Entity{
			ID:                s.newID(),
			Role:              RoleEnemy,
			VX:                vx,
			HW:                half,
			HH:                half,
			Facing:            core.Sign(vx),
			Active:            true,
			AffectedByGravity: true,
		}
		e.PlaceAt(
			float64(between(s.rng, int(xRange.Min), int(xRange.Max))),
			float64(between(s.rng, int(yRange.Min), int(yRange.Max))),
		)
		s.enemies = append(s.enemies, e)
		spawned = append(spawned, e)
	}
	return spawned
}

// SpawnGoal places the goal.
func (s *EntityStore) SpawnGoal(x, y float64) *Entity {
	e := &Entity{
		ID:     s.newID(),
		Role:   RoleGoal,
		HW:     s.cfg.Gameplay.GoalWidth / 2,
		HH:     s.cfg.Gameplay.GoalHeight / 2,
		Active: true,
	}
	e.PlaceAt(x, y)
	s.goal = e
	return e
}

// AcquireProjectile launches a projectile; false means the pool is exhausted
// and the shot is dropped.
func (s *EntityStore) AcquireProjectile(x, y, dir float64) (*Entity, bool) {
	return s.pool.Acquire(x, y, dir)
}

// ReleaseProjectile frees a projectile slot.
func (s *EntityStore) ReleaseProjectile(id int) bool {
	return s.pool.Release(id)
}

// Player returns the player state, or nil before SpawnPlayer.
func (s *EntityStore) Player() *PlayerState { return s.player }

// Enemies returns every enemy, active or not.
func (s *EntityStore) Enemies() []*Entity { return s.enemies }

// ActiveEnemies returns the enemies still in play.
func (s *EntityStore) ActiveEnemies() []*Entity {
	var out []*Entity
	for _, e := range s.enemies {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

// Goal returns the goal, or nil before SpawnGoal.
func (s *EntityStore) Goal() *Entity { return s.goal }

// Projectiles returns the projectiles in flight.
func (s *EntityStore) Projectiles() []*Entity { return s.pool.Active() }

// Pool exposes the projectile pool.
func (s *EntityStore) Pool() *ProjectilePool { return s.pool }

// Dynamic returns every active entity that physics should integrate.
func (s *EntityStore) Dynamic() []*Entity {
	out := make([]*Entity, 0, 1+len(s.enemies)+s.pool.Capacity())
	if s.player != nil && s.player.Active {
		out = append(out, s.player.Entity)
	}
	out = append(out, s.ActiveEnemies()...)
	out = append(out, s.pool.Active()...)
	return out
}
