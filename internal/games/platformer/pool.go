package platformer

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// projectileSlot is one fixed arena slot. gen changes on every acquire so a
// stale expiry callback can tell that its shot is gone.
type projectileSlot struct {
	entity Entity
	timer  core.TimerID
	gen    uint64
}

// ProjectilePool is a fixed-capacity arena of projectiles. A projectile's ID
// is its slot index.
type ProjectilePool struct {
	slots    []projectileSlot
	sched    *core.Scheduler
	lifespan time.Duration
	speedX   float64
	speedY   float64
}

// NewProjectilePool creates a pool whose shots expire via sched.
func NewProjectilePool(capacity int, size float64, speedX, speedY float64, lifespan time.Duration, sched *core.Scheduler) *ProjectilePool {
	p := &ProjectilePool{
		slots:    make([]projectileSlot, capacity),
		sched:    sched,
		lifespan: lifespan,
		speedX:   speedX,
		speedY:   speedY,
	}
	for i := range p.slots {
		p.slots[i].entity = Entity{
			ID:     i,
			Role:   RoleProjectile,
			HW:     size / 2,
			HH:     size / 2,
			Facing: 1,
		}
	}
	return p
}

// Acquire launches a projectile from (x, y) travelling in dir (-1 or 1).
// Returns false when every slot is in flight.
func (p *ProjectilePool) Acquire(x, y, dir float64) (*Entity, bool) {
	for i := range p.slots {
		slot := &p.slots[i]
		if slot.entity.Active {
			continue
		}

		if dir == 0 {
			dir = 1
		}
		slot.gen++
		e := &slot.entity
		e.PlaceAt(x, y)
		e.VX = dir * p.speedX
		e.VY = -p.speedY
		e.Facing = dir
		e.Active = true
		e.Touching = Faces{}

		gen, id := slot.gen, i
		slot.timer = p.sched.After(p.lifespan, func() {
			if p.slots[id].gen == gen {
				p.Release(id)
			}
		})
		return e, true
	}
	return nil, false
}

// Release returns a projectile to the pool and cancels its expiry.
// Returns false if the ID is unknown or already free.
func (p *ProjectilePool) Release(id int) bool {
	if id < 0 || id >= len(p.slots) {
		return false
	}
	slot := &p.slots[id]
	if !slot.entity.Active {
		return false
	}
	p.sched.Cancel(slot.timer)
	slot.timer = 0
	slot.entity.Active = false
	slot.entity.VX, slot.entity.VY = 0, 0
	return true
}

// Active returns the projectiles currently in flight.
func (p *ProjectilePool) Active() []*Entity {
	var out []*Entity
	for i := range p.slots {
		if p.slots[i].entity.Active {
			out = append(out, &p.slots[i].entity)
		}
	}
	return out
}

// ActiveCount returns how many slots are in use.
func (p *ProjectilePool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].entity.Active {
			n++
		}
	}
	return n
}

// Capacity returns the fixed number of slots.
func (p *ProjectilePool) Capacity() int {
	return len(p.slots)
}
