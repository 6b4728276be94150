package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/double.yaml
var defaultDoubleYAML []byte

// DefaultClassic returns the hard-coded classic profile: high gravity, a
// single jump and no start prompt.
func DefaultClassic() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:        1000,
			JumpVelocity:   550,
			MaxJumps:       1,
			BounceVelocity: 300,
			MoveSpeed:      160,
			StompTolerance: 16,
		},
		Level: defaultLevel(),
		Player: PlayerConfig{
			SpawnX: 100,
			SpawnY: 350,
			Width:  32,
			Height: 48,
			Lives:  3,
		},
		Enemies: EnemyConfig{
			Count:         5,
			Size:          32,
			Margin:        300,
			SpawnY:        100,
			MaxSpeed:      50,
			FallbackSpeed: 50,
		},
		Projectiles: ProjectileConfig{
			Capacity:   10,
			Size:       10,
			SpeedX:     300,
			SpeedY:     50,
			LifespanMS: 1000,
			CooldownMS: 500,
		},
		Gameplay: GameplayConfig{
			KillScore:      100,
			RespawnDelayMS: 500,
			ShakeIntensity: 0.02,
			GoalOffset:     100,
			GoalY:          350,
			GoalWidth:      40,
			GoalHeight:     48,
			Menu:           false,
		},
		Input: InputConfig{
			KeyHoldMS: 150,
		},
	}
}

// DefaultDouble returns the hard-coded double-jump profile: lower gravity,
// two jumps, a softer stomp bounce and a start prompt.
func DefaultDouble() PlatformerConfig {
	cfg := DefaultClassic()
	cfg.Physics.Gravity = 700
	cfg.Physics.JumpVelocity = 420
	cfg.Physics.MaxJumps = 2
	cfg.Physics.BounceVelocity = 250
	cfg.Gameplay.Menu = true
	return cfg
}

func defaultLevel() LevelConfig {
	return LevelConfig{
		Length:         2000,
		Height:         450,
		GroundY:        434,
		TileSize:       32,
		PlatformCount:  20,
		PlatformWidth:  64,
		PlatformHeight: 32,
		Margin:         200,
		PlatformMinY:   150,
		PlatformMaxY:   350,
		FallMargin:     50,
	}
}

// Default returns the hard-coded profile for a variant.
func Default(v Variant) PlatformerConfig {
	if v == VariantDouble {
		return DefaultDouble()
	}
	return DefaultClassic()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(v Variant) []byte {
	switch v {
	case VariantClassic:
		return defaultClassicYAML
	case VariantDouble:
		return defaultDoubleYAML
	default:
		return nil
	}
}
