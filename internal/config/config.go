// Package config provides YAML-based tunables for the platformer variants.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Variant names a game-feel profile.
type Variant string

const (
	VariantClassic Variant = "classic" // Snappy single jump, straight into play
	VariantDouble  Variant = "double"  // Floaty double jump with a start prompt
)

// PlatformerConfig contains all configuration for one platformer variant.
type PlatformerConfig struct {
	Physics     PhysicsConfig    `yaml:"physics"`
	Level       LevelConfig      `yaml:"level"`
	Player      PlayerConfig     `yaml:"player"`
	Enemies     EnemyConfig      `yaml:"enemies"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Gameplay    GameplayConfig   `yaml:"gameplay"`
	Input       InputConfig      `yaml:"input"`
}

// PhysicsConfig holds the game-feel tunables. Units are pixels and seconds.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	JumpVelocity   float64 `yaml:"jump_velocity"`   // Upward speed applied on jump
	MaxJumps       int     `yaml:"max_jumps"`       // 1 = single jump, 2 = double jump
	BounceVelocity float64 `yaml:"bounce_velocity"` // Upward speed after a stomp
	MoveSpeed      float64 `yaml:"move_speed"`
	StompTolerance float64 `yaml:"stomp_tolerance"` // How far below an enemy's top the feet may start a frame and still stomp
}

// LevelConfig describes world bounds and platform generation.
type LevelConfig struct {
	Length         float64 `yaml:"length"`
	Height         float64 `yaml:"height"`
	GroundY        float64 `yaml:"ground_y"` // Top edge of the ground strip
	TileSize       float64 `yaml:"tile_size"`
	PlatformCount  int     `yaml:"platform_count"`
	PlatformWidth  float64 `yaml:"platform_width"`
	PlatformHeight float64 `yaml:"platform_height"`
	Margin         float64 `yaml:"margin"` // Horizontal margin kept free at both ends
	PlatformMinY   float64 `yaml:"platform_min_y"`
	PlatformMaxY   float64 `yaml:"platform_max_y"`
	FallMargin     float64 `yaml:"fall_margin"` // Distance below Height that counts as falling out
}

// PlayerConfig places and sizes the player.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Lives  int     `yaml:"lives"`
}

// EnemyConfig controls enemy spawning.
type EnemyConfig struct {
	Count         int     `yaml:"count"`
	Size          float64 `yaml:"size"`
	Margin        float64 `yaml:"margin"` // Horizontal spawn margin from both ends
	SpawnY        float64 `yaml:"spawn_y"`
	MaxSpeed      int     `yaml:"max_speed"`      // Speeds are drawn from [-max, max]
	FallbackSpeed float64 `yaml:"fallback_speed"` // Used when the draw is zero
}

// ProjectileConfig controls the snowball pool.
type ProjectileConfig struct {
	Capacity   int     `yaml:"capacity"`
	Size       float64 `yaml:"size"`
	SpeedX     float64 `yaml:"speed_x"`
	SpeedY     float64 `yaml:"speed_y"` // Initial upward speed
	LifespanMS int     `yaml:"lifespan_ms"`
	CooldownMS int     `yaml:"cooldown_ms"`
}

// GameplayConfig holds scoring and scene tunables.
type GameplayConfig struct {
	KillScore      int     `yaml:"kill_score"`
	RespawnDelayMS int     `yaml:"respawn_delay_ms"`
	ShakeIntensity float64 `yaml:"shake_intensity"`
	GoalOffset     float64 `yaml:"goal_offset"` // Goal distance from the right end
	GoalY          float64 `yaml:"goal_y"`
	GoalWidth      float64 `yaml:"goal_width"`
	GoalHeight     float64 `yaml:"goal_height"`
	Menu           bool    `yaml:"menu"` // Show a start prompt after boot
}

// InputConfig tunes how discrete terminal key presses become held keys.
type InputConfig struct {
	KeyHoldMS int `yaml:"key_hold_ms"`
}

// Lifespan returns the projectile lifespan as a duration.
func (p ProjectileConfig) Lifespan() time.Duration {
	return time.Duration(p.LifespanMS) * time.Millisecond
}

// Cooldown returns the fire cooldown as a duration.
func (p ProjectileConfig) Cooldown() time.Duration {
	return time.Duration(p.CooldownMS) * time.Millisecond
}

// RespawnDelay returns the respawn pause as a duration.
func (g GameplayConfig) RespawnDelay() time.Duration {
	return time.Duration(g.RespawnDelayMS) * time.Millisecond
}

// KeyHold returns how long a key press is treated as held.
func (i InputConfig) KeyHold() time.Duration {
	return time.Duration(i.KeyHoldMS) * time.Millisecond
}

// Validate reports the first tunable that would break the simulation.
func (c PlatformerConfig) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpVelocity <= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be positive, got %v", c.Physics.JumpVelocity))
	}
	if c.Physics.MaxJumps < 1 {
		errs = append(errs, fmt.Errorf("physics.max_jumps must be at least 1, got %d", c.Physics.MaxJumps))
	}
	if c.Level.Length <= 2*c.Level.Margin || c.Level.Length <= 2*c.Enemies.Margin {
		errs = append(errs, fmt.Errorf("level.length %v is too short for its margins", c.Level.Length))
	}
	if c.Level.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("level.tile_size must be positive, got %v", c.Level.TileSize))
	}
	if c.Level.PlatformMinY > c.Level.PlatformMaxY {
		errs = append(errs, fmt.Errorf("level.platform_min_y %v exceeds platform_max_y %v",
			c.Level.PlatformMinY, c.Level.PlatformMaxY))
	}
	if c.Level.PlatformCount < 0 {
		errs = append(errs, fmt.Errorf("level.platform_count must not be negative, got %d", c.Level.PlatformCount))
	}
	if c.Level.PlatformWidth <= 0 || c.Level.PlatformHeight <= 0 {
		errs = append(errs, fmt.Errorf("level.platform_width and platform_height must be positive, got %vx%v",
			c.Level.PlatformWidth, c.Level.PlatformHeight))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player.width and height must be positive, got %vx%v",
			c.Player.Width, c.Player.Height))
	}
	if c.Player.Lives < 1 {
		errs = append(errs, fmt.Errorf("player.lives must be at least 1, got %d", c.Player.Lives))
	}
	if c.Enemies.Count < 0 {
		errs = append(errs, fmt.Errorf("enemies.count must not be negative, got %d", c.Enemies.Count))
	}
	if c.Enemies.Size <= 0 {
		errs = append(errs, fmt.Errorf("enemies.size must be positive, got %v", c.Enemies.Size))
	}
	if c.Projectiles.Capacity < 0 {
		errs = append(errs, fmt.Errorf("projectiles.capacity must not be negative, got %d", c.Projectiles.Capacity))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid platformer config: %w", err)
	}
	return nil
}

// ParseVariant maps a CLI string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantClassic, VariantDouble:
		return Variant(s), nil
	case "":
		return VariantClassic, nil
	default:
		return "", fmt.Errorf("config: unknown variant %q", s)
	}
}
