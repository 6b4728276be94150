package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// EventKind classifies a collision outcome.
type EventKind int

// Kinds are declared in the order the playing scene applies them.
const (
	EventStomp         EventKind = iota // Player landed on an enemy
	EventProjectileHit                  // Projectile overlapped an enemy
	EventGoalReached                    // Player overlapped the goal
	EventPlayerKilled                   // Player touched an enemy any other way
	EventFellOut                        // Player dropped below the world
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStomp:
		return "stomp"
	case EventProjectileHit:
		return "projectile_hit"
	case EventGoalReached:
		return "goal"
	case EventPlayerKilled:
		return "killed"
	case EventFellOut:
		return "fell_out"
	default:
		return "unknown"
	}
}

// Lethal reports whether the event costs the player a life.
func (k EventKind) Lethal() bool {
	return k == EventPlayerKilled || k == EventFellOut
}

// CollisionEvent is one outcome of a resolve pass. Source is the player or
// projectile; Target is the enemy or goal, nil for a fall.
type CollisionEvent struct {
	Kind   EventKind
	Source *Entity
	Target *Entity
}

// landingSlack absorbs float error when checking whether an entity was
// resting on a surface last frame.
const landingSlack = 0.01

// CollisionResolver detects and resolves overlaps for one frame.
type CollisionResolver struct {
	StompTolerance float64 // How far below an enemy's top the player's feet may start a stomping frame
	FallLimit      float64 // Player center Y beyond which the player has fallen out
}

// Resolve runs every pair class in order and returns the outcomes.
// Solid pairs are separated in place; overlap pairs only produce events.
// Inactive entities are skipped.
func (r *CollisionResolver) Resolve(store *EntityStore, level *Level) []CollisionEvent {
	var events []CollisionEvent

	player := store.Player()
	enemies := store.ActiveEnemies()

	for _, e := range store.Dynamic() {
		e.Touching = Faces{}
		e.Grounded = false
	}

	// Player×Platform, Enemy×Platform
	for _, p := range level.Platforms {
		box := p.Box()
		if player != nil && player.Active {
			separate(player.Entity, box)
		}
		for _, e := range enemies {
			separate(e, box)
		}
	}

	// Player×Enemy
	killed := make(map[*Entity]bool)
	if player != nil && player.Active {
		for _, e := range enemies {
			if !player.Box().Intersects(e.Box()) {
				continue
			}
			r.touchEnemy(player.Entity, e)
			if player.Touching.Down && e.Touching.Up {
				killed[e] = true
				events = append(events, CollisionEvent{Kind: EventStomp, Source: player.Entity, Target: e})
			} else {
				events = append(events, CollisionEvent{Kind: EventPlayerKilled, Source: player.Entity, Target: e})
			}
		}
	}

	// Projectile×Enemy
	for _, b := range store.Projectiles() {
		for _, e := range enemies {
			if killed[e] || !b.Box().Intersects(e.Box()) {
				continue
			}
			killed[e] = true
			events = append(events, CollisionEvent{Kind: EventProjectileHit, Source: b, Target: e})
			break // one enemy per projectile
		}
	}

	if player == nil || !player.Active {
		return events
	}

	// Player×Goal
	if g := store.Goal(); g != nil && g.Active && player.Box().Intersects(g.Box()) {
		events = append(events, CollisionEvent{Kind: EventGoalReached, Source: player.Entity, Target: g})
	}

	if player.Y > r.FallLimit {
		events = append(events, CollisionEvent{Kind: EventFellOut, Source: player.Entity})
	}

	return events
}

// touchEnemy sets the contact faces for an overlapping player and enemy.
// A descent that started at most the stomp tolerance below the enemy's top
// marks player-down/enemy-up, however far the player moved this frame; the
// player is then lifted onto the enemy. Every other geometry marks side or
// underside contact.
func (r *CollisionResolver) touchEnemy(player, enemy *Entity) {
	pb, eb := player.Box(), enemy.Box()
	wasAbove := player.PrevBox().Bottom() <= enemy.PrevBox().Top()+r.StompTolerance

	if player.VY >= 0 && wasAbove {
		player.Y = eb.Top() - player.HH
		player.Touching.Down = true
		enemy.Touching.Up = true
		return
	}

	dx, dy := pb.Penetration(eb)
	if dy < dx && pb.CY > eb.CY {
		player.Touching.Up = true
		enemy.Touching.Down = true
		return
	}
	if pb.CX < eb.CX {
		player.Touching.Right = true
		enemy.Touching.Left = true
	} else {
		player.Touching.Left = true
		enemy.Touching.Right = true
	}
}

// separate pushes a mover out of a static box along the axis of least
// penetration and records the contact face. A mover that was resting on or
// above the box top last frame and is not rising always lands, so walking
// across the seams of tiled ground never snags on a tile edge.
func separate(m *Entity, solid core.Box) {
	mb := m.Box()
	if !mb.Intersects(solid) {
		return
	}

	prev := m.PrevBox()
	dx, dy := mb.Penetration(solid)

	switch {
	case m.VY >= 0 && prev.Bottom() <= solid.Top()+landingSlack:
		land(m, solid)
	case m.VY < 0 && prev.Top() >= solid.Bottom()-landingSlack:
		bumpHead(m, solid)
	case dy < dx:
		if mb.CY < solid.CY {
			land(m, solid)
		} else {
			bumpHead(m, solid)
		}
	case mb.CX < solid.CX:
		m.X = solid.Left() - m.HW
		m.Touching.Right = true
		hitWall(m, -1)
	default:
		m.X = solid.Right() + m.HW
		m.Touching.Left = true
		hitWall(m, 1)
	}
}

func land(m *Entity, solid core.Box) {
	m.Y = solid.Top() - m.HH
	m.Touching.Down = true
	m.Grounded = true
	if m.VY > 0 {
		m.VY = 0
	}
}

func bumpHead(m *Entity, solid core.Box) {
	m.Y = solid.Bottom() + m.HH
	m.Touching.Up = true
	if m.VY < 0 {
		m.VY = 0
	}
}

// hitWall stops the player against a wall and turns enemies around.
// away is the direction pointing out of the wall.
func hitWall(m *Entity, away float64) {
	if m.Role == RoleEnemy {
		if m.VX != 0 {
			speed := m.VX
			if speed < 0 {
				speed = -speed
			}
			m.VX = away * speed
			m.Facing = away
		}
		return
	}
	if m.VX*away < 0 {
		m.VX = 0
	}
}
