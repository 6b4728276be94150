package platformer

import (
	"math"
	"testing"
)

func TestIntegrateAppliesGravityToAffectedEntities(t *testing.T) {
	ps := PhysicsStep{Gravity: 1000, WorldW: 2000, WorldH: 450}

	player := &Entity{Role: RolePlayer, Active: true, AffectedByGravity: true, HW: 16, HH: 24}
	player.PlaceAt(100, 100)
	bullet := &Entity{Role: RoleProjectile, Active: true, VX: 300, VY: -50, HW: 5, HH: 5}
	bullet.PlaceAt(100, 100)

	ps.Integrate(0.5, []*Entity{player, bullet})

	if player.VY != 500 || player.Y != 350 {
		t.Errorf("player VY=%v Y=%v, expected 500 and 350", player.VY, player.Y)
	}
	if player.PrevY != 100 {
		t.Errorf("PrevY = %v, expected 100", player.PrevY)
	}
	if bullet.VY != -50 || bullet.X != 250 || bullet.Y != 75 {
		t.Errorf("projectile = (%v, %v) VY=%v, expected straight flight", bullet.X, bullet.Y, bullet.VY)
	}
}

func TestIntegrateSkipsStaticAndInactive(t *testing.T) {
	ps := PhysicsStep{Gravity: 1000, WorldW: 2000, WorldH: 450}

	platform := &Entity{Role: RolePlatform, Active: true, AffectedByGravity: true}
	platform.PlaceAt(50, 50)
	dead := &Entity{Role: RoleEnemy, Active: false, VX: 10, AffectedByGravity: true}
	dead.PlaceAt(50, 50)

	ps.Integrate(1, []*Entity{platform, dead})

	if platform.Y != 50 || dead.X != 50 || dead.VY != 0 {
		t.Error("static and inactive entities must not move")
	}
}

func TestEnemyBouncesOffWorldSides(t *testing.T) {
	ps := PhysicsStep{Gravity: 0, WorldW: 2000, WorldH: 450}

	tests := []struct {
		name   string
		x, vx  float64
		wantX  float64
		wantVX float64
	}{
		{"left wall", 20, -50, 16, 50},
		{"right wall", 1980, 50, 1984, -50},
		{"open floor", 1000, 50, 1005, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Entity{Role: RoleEnemy, Active: true, VX: tt.vx, HW: 16, HH: 16}
			e.PlaceAt(tt.x, 200)

			ps.Integrate(0.1, []*Entity{e})

			if math.Abs(e.X-tt.wantX) > 1e-9 || e.VX != tt.wantVX {
				t.Errorf("X=%v VX=%v, expected X=%v VX=%v", e.X, e.VX, tt.wantX, tt.wantVX)
			}
			if e.Facing != math.Copysign(1, tt.wantVX) {
				t.Errorf("Facing = %v", e.Facing)
			}
		})
	}
}

func TestEnemyRestsOnWorldFloor(t *testing.T) {
	ps := PhysicsStep{Gravity: 1000, WorldW: 2000, WorldH: 450}
	e := &Entity{Role: RoleEnemy, Active: true, AffectedByGravity: true, HW: 16, HH: 16}
	e.PlaceAt(500, 440)

	ps.Integrate(0.1, []*Entity{e})

	if e.Y != 434 || e.VY != 0 {
		t.Errorf("Y=%v VY=%v, expected clamped to the floor", e.Y, e.VY)
	}
}

func TestPlayerClampedHorizontallyButFallsThroughBottom(t *testing.T) {
	ps := PhysicsStep{Gravity: 1000, WorldW: 2000, WorldH: 450}
	p := &Entity{Role: RolePlayer, Active: true, AffectedByGravity: true, VX: -300, HW: 16, HH: 24}
	p.PlaceAt(20, 440)

	ps.Integrate(0.1, []*Entity{p})

	if p.X != 16 {
		t.Errorf("X = %v, expected clamped to 16", p.X)
	}
	if p.Y <= 440 {
		t.Errorf("Y = %v, the player should keep falling", p.Y)
	}
}
