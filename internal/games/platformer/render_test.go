package platformer

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestScreenRendererOverlayAndTap(t *testing.T) {
	r := NewScreenRenderer()
	if r.Tap() {
		t.Error("Tap without an overlay should not be handled")
	}

	tapped := false
	r.ShowOverlayText(GameOverText, func() { tapped = true })

	screen := core.NewScreen(40, 12)
	r.Begin()
	r.Paint(screen, View{Length: 2000, Height: 450, GroundY: 434})

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Tap to Restart") {
		t.Errorf("overlay not drawn:\n%s", out)
	}

	if !r.Tap() || !tapped {
		t.Error("Tap should reach the overlay callback")
	}

	r.ClearOverlay()
	if r.overlay != "" || r.Tap() {
		t.Error("ClearOverlay should remove the overlay and its callback")
	}
}

func TestScreenRendererHUDAndButtons(t *testing.T) {
	r := NewScreenRenderer()
	screen := core.NewScreen(60, 12)
	r.Begin()
	r.Paint(screen, View{Length: 2000, Height: 450, GroundY: 434, Status: Status{Lives: 2, Score: 300}, Paused: true})

	if row := screen.Row(0); !strings.Contains(row, "Lives: 2  Score: 300") || !strings.Contains(row, "PAUSED") {
		t.Errorf("HUD row = %q", row)
	}

	bottom := screen.Row(11)
	for _, label := range []string{"[ ◀ ]", "[ ▶ ]", "[FIRE]", "[JUMP]"} {
		if !strings.Contains(bottom, label) {
			t.Errorf("button %q missing from %q", label, bottom)
		}
	}

	want := map[string]core.Action{
		"[ ◀ ]":  core.ActionLeft,
		"[ ▶ ]":  core.ActionRight,
		"[FIRE]": core.ActionFire,
		"[JUMP]": core.ActionJump,
	}
	if len(r.buttons) != len(want) {
		t.Fatalf("got %d buttons, expected %d", len(r.buttons), len(want))
	}
	for _, b := range r.buttons {
		got, ok := r.ButtonAt(b.x+1, b.y)
		if !ok || got != want[b.label] {
			t.Errorf("ButtonAt inside %q = %v, %v", b.label, got, ok)
		}
	}

	if _, ok := r.ButtonAt(30, 5); ok {
		t.Error("the play area is not a button")
	}
}

func TestScreenRendererDrawsEntitiesFollowingPlayer(t *testing.T) {
	r := NewScreenRenderer()
	screen := core.NewScreen(80, 23)

	player := &Entity{Role: RolePlayer, HW: 16, HH: 24, Active: true}
	player.PlaceAt(1500, 350)
	enemy := &Entity{Role: RoleEnemy, HW: 16, HH: 16, Active: true}
	enemy.PlaceAt(100, 418)

	r.Begin()
	r.DrawEntity(enemy)
	r.DrawEntity(player)
	r.Paint(screen, View{Length: 2000, Height: 450, GroundY: 434})

	found := false
	for y := 1; y < 22; y++ {
		for x := 35; x < 45; x++ {
			if c := screen.GetCell(x, y); c.Rune == PlayerGlyph && c.Color == core.ColorBlue {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("player should be drawn near the center:\n%s", screen.String())
	}
	if strings.ContainsRune(screen.String(), EnemyGlyph) {
		t.Error("an enemy far behind the camera should be off screen")
	}
}

func TestScreenRendererClipsToViewportRows(t *testing.T) {
	r := NewScreenRenderer()
	screen := core.NewScreen(40, 12)

	fallen := &Entity{Role: RolePlayer, HW: 16, HH: 24, Active: true}
	fallen.PlaceAt(300, 520)
	ground := &Entity{Role: RolePlatform, HW: 200, HH: 16, Active: true}
	ground.PlaceAt(200, 450)

	r.Begin()
	r.DrawEntity(ground)
	r.DrawEntity(fallen)
	r.Paint(screen, View{Length: 2000, Height: 450, GroundY: 434})

	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.GetCell(x, y).Color == core.ColorBlue {
				t.Fatalf("a player below the world should not be drawn, found at (%d, %d)", x, y)
			}
		}
	}
	if c := screen.GetCell(5, 10); c.Rune != GroundGlyph || c.Color != core.ColorBrown {
		t.Errorf("ground should be clipped onto the last world row, got %+v", c)
	}
	if row := screen.Row(11); !strings.Contains(row, "[JUMP]") {
		t.Errorf("ground must not cover the button row: %q", row)
	}
}

func TestScreenRendererEffectsAndShakeExpire(t *testing.T) {
	r := NewScreenRenderer()

	r.PlayEffect(EffectStomp, 10, 10)
	r.ShakeCamera(500*time.Millisecond, 0.02)
	if r.shakeLeft <= 0 || len(r.effects) != 1 {
		t.Fatal("effect and shake should start")
	}

	r.Advance(300 * time.Millisecond)
	if len(r.effects) != 0 {
		t.Error("effect should expire")
	}
	if r.shakeLeft <= 0 {
		t.Error("shake should still run")
	}

	r.Advance(300 * time.Millisecond)
	if r.shakeLeft > 0 {
		t.Error("shake should stop after its duration")
	}

	r.PlayEffect(EffectHit, 0, 0)
	r.Prepare()
	if len(r.effects) != 0 {
		t.Error("Prepare should drop leftover effects")
	}
}
