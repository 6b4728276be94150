package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, v := range []Variant{VariantClassic, VariantDouble} {
		t.Run(string(v), func(t *testing.T) {
			var fromYAML PlatformerConfig
			if err := yaml.Unmarshal(GetDefaultYAML(v), &fromYAML); err != nil {
				t.Fatalf("embedded YAML does not parse: %v", err)
			}
			if fromYAML != Default(v) {
				t.Errorf("embedded YAML differs from hard-coded default:\nyaml: %+v\ncode: %+v", fromYAML, Default(v))
			}
			if err := fromYAML.Validate(); err != nil {
				t.Errorf("default config is invalid: %v", err)
			}
		})
	}
}

func TestVariantProfiles(t *testing.T) {
	classic := DefaultClassic()
	double := DefaultDouble()

	if classic.Physics.MaxJumps != 1 || double.Physics.MaxJumps != 2 {
		t.Errorf("max jumps = (%d, %d), expected (1, 2)", classic.Physics.MaxJumps, double.Physics.MaxJumps)
	}
	if double.Physics.Gravity >= classic.Physics.Gravity {
		t.Error("double-jump profile should have lower gravity")
	}
	if classic.Gameplay.Menu || !double.Gameplay.Menu {
		t.Error("only the double-jump profile shows a start prompt")
	}
	if classic.Projectiles.Capacity != 10 || classic.Gameplay.KillScore != 100 {
		t.Error("pool capacity and kill score should be 10 and 100")
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultClassic()

	if cfg.Projectiles.Lifespan() != time.Second {
		t.Errorf("Lifespan() = %v", cfg.Projectiles.Lifespan())
	}
	if cfg.Projectiles.Cooldown() != 500*time.Millisecond {
		t.Errorf("Cooldown() = %v", cfg.Projectiles.Cooldown())
	}
	if cfg.Gameplay.RespawnDelay() != 500*time.Millisecond {
		t.Errorf("RespawnDelay() = %v", cfg.Gameplay.RespawnDelay())
	}
	if cfg.Input.KeyHold() != 150*time.Millisecond {
		t.Errorf("KeyHold() = %v", cfg.Input.KeyHold())
	}
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 1200\nplayer:\n  lives: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantDouble, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1200 || cfg.Player.Lives != 5 {
		t.Errorf("overrides not applied: gravity=%v lives=%d", cfg.Physics.Gravity, cfg.Player.Lives)
	}
	if cfg.Physics.MaxJumps != 2 {
		t.Errorf("unset keys should keep variant defaults, max_jumps=%d", cfg.Physics.MaxJumps)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(VariantClassic, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(VariantClassic, bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n  max_jumps: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(VariantClassic, invalid)
	if err == nil {
		t.Fatal("invalid tunables should fail validation")
	}
	if !strings.Contains(err.Error(), "gravity") || !strings.Contains(err.Error(), "max_jumps") {
		t.Errorf("validation error should name every bad key, got %v", err)
	}
}

func TestLoadFileRejectsBadCounts(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		key  string
	}{
		{"negative enemies", "enemies: {count: -1}\n", "enemies.count"},
		{"zero enemy size", "enemies: {size: 0}\n", "enemies.size"},
		{"negative platforms", "level: {platform_count: -3}\n", "level.platform_count"},
		{"flat platforms", "level: {platform_height: 0}\n", "level.platform_width"},
		{"zero width player", "player: {width: 0}\n", "player.width"},
	}

	dir := t.TempDir()
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, fmt.Sprintf("bad%d.yaml", i))
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFile(VariantClassic, path)
			if err == nil {
				t.Fatal("LoadFile should reject the config")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q should name %s", err, tt.key)
			}
		})
	}

	zero := filepath.Join(dir, "zero.yaml")
	if err := os.WriteFile(zero, []byte("enemies: {count: 0}\nlevel: {platform_count: 0}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(VariantClassic, zero); err != nil {
		t.Errorf("an empty level is valid: %v", err)
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"classic", VariantClassic, false},
		{"double", VariantDouble, false},
		{"", VariantClassic, false},
		{"triple", "", true},
	}

	for _, tc := range tests {
		got, err := ParseVariant(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseVariant(%q) = (%q, %v)", tc.in, got, err)
		}
	}
}
