package platformer

import "math"

// PhysicsStep integrates velocities for every dynamic entity.
type PhysicsStep struct {
	Gravity float64 // Downward acceleration in px/s²
	WorldW  float64
	WorldH  float64
}

// Integrate advances the given entities by dt seconds.
// Enemies bounce off the world's side walls and rest on its floor; the player
// is kept inside the side walls but may fall out of the bottom. Landing on
// platforms is left to the collision resolver.
func (p *PhysicsStep) Integrate(dt float64, entities []*Entity) {
	for _, e := range entities {
		if !e.Active || e.Static() {
			continue
		}

		e.PrevX, e.PrevY = e.X, e.Y

		if e.AffectedByGravity {
			e.VY += p.Gravity * dt
		}
		e.X += e.VX * dt
		e.Y += e.VY * dt

		switch e.Role {
		case RoleEnemy:
			p.bounceEnemy(e)
		case RolePlayer:
			p.clampPlayer(e)
		}
	}
}

func (p *PhysicsStep) bounceEnemy(e *Entity) {
	if e.X-e.HW < 0 {
		e.X = e.HW
		e.VX = math.Abs(e.VX)
	} else if e.X+e.HW > p.WorldW {
		e.X = p.WorldW - e.HW
		e.VX = -math.Abs(e.VX)
	}
	if e.VX != 0 {
		e.Facing = math.Copysign(1, e.VX)
	}
	if e.Y+e.HH > p.WorldH {
		e.Y = p.WorldH - e.HH
		e.VY = 0
	}
}

func (p *PhysicsStep) clampPlayer(e *Entity) {
	if e.X-e.HW < 0 {
		e.X = e.HW
	} else if e.X+e.HW > p.WorldW {
		e.X = p.WorldW - e.HW
	}
}
