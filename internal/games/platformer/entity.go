// Package platformer implements Penguin Run, a side-scrolling platformer:
// the penguin crosses a generated level, stomps or snowballs the chickens on
// the way and wins by reaching the ghost at the far end.
//
// The simulation is fixed-step and single-threaded. Rendering goes through
// the Renderer interface; the package never talks to a terminal directly.
package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Role tells the resolver and the renderer what an entity is.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
	RolePlatform
	RoleProjectile
	RoleGoal
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	case RolePlatform:
		return "platform"
	case RoleProjectile:
		return "projectile"
	case RoleGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Faces records which sides of an entity touched something this frame.
type Faces struct {
	Up, Down, Left, Right bool
}

// Entity is anything with a bounding box in the world.
// Positions are box centers in pixels; Y grows downward.
type Entity struct {
	ID                int
	Role              Role
	X, Y              float64 // Center position
	PrevX, PrevY      float64 // Center position before the last integration
	VX, VY            float64 // Velocity in pixels per second
	HW, HH            float64 // Half-extents
	Facing            float64 // -1 left, 1 right
	Active            bool
	Grounded          bool // Resting on a platform top this frame
	AffectedByGravity bool
	Touching          Faces
}

// Box returns the current bounding box.
func (e *Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.HW, e.HH)
}

// PrevBox returns the bounding box before the last integration.
func (e *Entity) PrevBox() core.Box {
	return core.NewBox(e.PrevX, e.PrevY, e.HW, e.HH)
}

// Static reports whether the entity never moves.
func (e *Entity) Static() bool {
	return e.Role == RolePlatform || e.Role == RoleGoal
}

// PlaceAt teleports the entity, resetting its previous position too.
func (e *Entity) PlaceAt(x, y float64) {
	e.X, e.Y = x, y
	e.PrevX, e.PrevY = x, y
}

// PlayerState is the player entity plus its run-scoped counters.
// Lives and score live in the RunContext so they survive respawns.
type PlayerState struct {
	*Entity
	JumpCount    int
	MaxJumps     int
	Invulnerable bool // Set once the player is dying or has won; no further hits apply
	GameOver     bool
}
