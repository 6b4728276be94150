package platformer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Glyphs and colors of the terminal renderer.
const (
	PlayerGlyph     = '█'
	EnemyGlyph      = '▓'
	GroundGlyph     = '█'
	PlatformGlyph   = '▒'
	GoalGlyph       = '░'
	ProjectileGlyph = '●'
	EffectGlyph     = '*'
)

const effectLifetime = 250 * time.Millisecond

// View is the per-frame context the terminal renderer needs besides entities.
type View struct {
	Length  float64 // World width in pixels
	Height  float64 // World height in pixels
	GroundY float64 // Top of the ground strip
	Status  Status
	Paused  bool
}

type effect struct {
	kind EffectKind
	x, y float64
	left time.Duration
}

type button struct {
	action core.Action
	label  string
	x      int
	y      int
}

// ScreenRenderer draws the world into a core.Screen: HUD on the top row,
// the world viewport in the middle, virtual buttons on the bottom row.
// The camera follows the player horizontally.
type ScreenRenderer struct {
	prepared int
	entities []Entity
	effects  []effect

	player int // Index into entities, -1 when no player was drawn

	shakeLeft      time.Duration
	shakeIntensity float64
	shakeFrame     int

	overlay string
	onTap   func()

	buttons []button
}

// NewScreenRenderer creates a renderer with an empty frame.
func NewScreenRenderer() *ScreenRenderer {
	return &ScreenRenderer{player: -1}
}

// Prepare implements Renderer. The terminal has no assets to load, so it
// only drops effects left over from the previous run.
func (r *ScreenRenderer) Prepare() {
	r.prepared++
	r.effects = r.effects[:0]
	r.shakeLeft = 0
}

// Begin starts a new frame, forgetting the entities of the previous one.
func (r *ScreenRenderer) Begin() {
	r.entities = r.entities[:0]
	r.player = -1
}

// DrawEntity implements Renderer.
func (r *ScreenRenderer) DrawEntity(e *Entity) {
	r.entities = append(r.entities, *e)
	if e.Role == RolePlayer {
		r.player = len(r.entities) - 1
	}
}

// PlayEffect implements Renderer.
func (r *ScreenRenderer) PlayEffect(kind EffectKind, x, y float64) {
	r.effects = append(r.effects, effect{kind: kind, x: x, y: y, left: effectLifetime})
}

// ShakeCamera implements Renderer.
func (r *ScreenRenderer) ShakeCamera(d time.Duration, intensity float64) {
	r.shakeLeft = d
	r.shakeIntensity = intensity
}

// ShowOverlayText implements Renderer.
func (r *ScreenRenderer) ShowOverlayText(text string, onTap func()) {
	r.overlay = text
	r.onTap = onTap
}

// ClearOverlay implements Renderer.
func (r *ScreenRenderer) ClearOverlay() {
	r.overlay = ""
	r.onTap = nil
}

// Tap delivers a tap to the overlay. Returns false if nothing handled it.
func (r *ScreenRenderer) Tap() bool {
	if r.overlay == "" || r.onTap == nil {
		return false
	}
	r.onTap()
	return true
}

// Advance ages effects and the camera shake by dt.
func (r *ScreenRenderer) Advance(dt time.Duration) {
	alive := r.effects[:0]
	for _, fx := range r.effects {
		fx.left -= dt
		if fx.left > 0 {
			alive = append(alive, fx)
		}
	}
	r.effects = alive

	if r.shakeLeft > 0 {
		r.shakeLeft -= dt
		r.shakeFrame++
	}
}

// ButtonAt returns the virtual button under screen cell (x, y).
func (r *ScreenRenderer) ButtonAt(x, y int) (core.Action, bool) {
	for _, b := range r.buttons {
		if core.NewRect(b.x, b.y, len([]rune(b.label)), 1).Contains(x, y) {
			return b.action, true
		}
	}
	return core.ActionNone, false
}

// Paint draws the collected frame into dst.
func (r *ScreenRenderer) Paint(dst *core.Screen, v View) {
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}

	r.drawHUD(dst, v)

	rows := h - 2
	if rows > 0 && v.Height > 0 {
		cam := r.camera(w, rows, v)
		for i := range r.entities {
			r.drawEntity(dst, &r.entities[i], cam, v)
		}
		for _, fx := range r.effects {
			cx, cy := cam.project(fx.x, fx.y)
			if cy >= 1 && cy <= rows {
				dst.SetColor(cx, cy, EffectGlyph, core.ColorYellow)
			}
		}
	}

	if r.overlay != "" {
		drawOverlay(dst, r.overlay)
	}
	if h >= 2 {
		r.drawButtons(dst, h-1)
	}
}

// camera maps world pixels to screen cells. Cells are about twice as tall
// as they are wide, so one cell spans half as many pixels across as down.
type camera struct {
	x      float64 // World x at the left edge of the viewport
	sx, sy float64 // Pixels per cell
	shift  int     // Shake offset in cells
}

func (c camera) project(x, y float64) (int, int) {
	return int(math.Floor((x-c.x)/c.sx)) + c.shift, int(math.Floor(y/c.sy)) + 1
}

func (r *ScreenRenderer) camera(w, rows int, v View) camera {
	c := camera{sy: v.Height / float64(rows)}
	c.sx = c.sy / 2

	viewW := float64(w) * c.sx
	if r.player >= 0 {
		c.x = r.entities[r.player].X - viewW/2
	}
	c.x = core.ClampF(c.x, 0, math.Max(0, v.Length-viewW))

	if r.shakeLeft > 0 {
		c.shift = int(math.Round(r.shakeIntensity * float64(w)))
		if c.shift == 0 {
			c.shift = 1
		}
		if r.shakeFrame%2 == 1 {
			c.shift = -c.shift
		}
	}
	return c
}

func (r *ScreenRenderer) drawEntity(dst *core.Screen, e *Entity, cam camera, v View) {
	glyph, color := glyphFor(e, v)
	b := e.Box()

	// Cells covered by [left, right) x [top, bottom), at least one of each.
	x0 := int(math.Floor((b.Left()-cam.x)/cam.sx)) + cam.shift
	x1 := int(math.Ceil((b.Right()-cam.x)/cam.sx)) - 1 + cam.shift
	y0 := int(math.Floor(b.Top()/cam.sy)) + 1
	y1 := int(math.Ceil(b.Bottom() / cam.sy))
	x1 = core.Max(x1, x0)
	y1 = core.Max(y1, y0)

	// Keep the world inside the viewport rows.
	maxRow := dst.Height() - 2
	if y1 < 1 || y0 > maxRow {
		return
	}
	y0 = core.Clamp(y0, 1, maxRow)
	y1 = core.Clamp(y1, 1, maxRow)

	dst.FillRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), glyph, color)
}

func glyphFor(e *Entity, v View) (rune, core.Color) {
	switch e.Role {
	case RolePlayer:
		return PlayerGlyph, core.ColorBlue
	case RoleEnemy:
		return EnemyGlyph, core.ColorRed
	case RoleGoal:
		return GoalGlyph, core.ColorWhite
	case RoleProjectile:
		return ProjectileGlyph, core.ColorPink
	case RolePlatform:
		if e.Box().Top() >= v.GroundY {
			return GroundGlyph, core.ColorBrown
		}
		return PlatformGlyph, core.ColorIce
	}
	return '?', core.ColorDefault
}

func (r *ScreenRenderer) drawHUD(dst *core.Screen, v View) {
	hud := fmt.Sprintf("Lives: %d  Score: %d", v.Status.Lives, v.Status.Score)
	dst.DrawTextColor(1, 0, hud, core.ColorWhite)
	if v.Paused {
		label := "PAUSED"
		dst.DrawTextColor(dst.Width()-len(label)-1, 0, label, core.ColorYellow)
	}
}

func (r *ScreenRenderer) drawButtons(dst *core.Screen, y int) {
	w := dst.Width()
	r.buttons = r.buttons[:0]

	left := []button{
		{action: core.ActionLeft, label: "[ ◀ ]"},
		{action: core.ActionRight, label: "[ ▶ ]"},
	}
	right := []button{
		{action: core.ActionFire, label: "[FIRE]"},
		{action: core.ActionJump, label: "[JUMP]"},
	}

	x := 1
	for _, b := range left {
		b.x, b.y = x, y
		r.buttons = append(r.buttons, b)
		x += len([]rune(b.label)) + 1
	}

	width := 0
	for _, b := range right {
		width += len([]rune(b.label)) + 1
	}
	x = core.Max(x, w-width)
	for _, b := range right {
		b.x, b.y = x, y
		r.buttons = append(r.buttons, b)
		x += len([]rune(b.label)) + 1
	}

	for _, b := range r.buttons {
		dst.DrawTextColor(b.x, b.y, b.label, core.ColorGray)
	}
}

// drawOverlay draws a bordered box with the overlay lines centered on screen.
func drawOverlay(dst *core.Screen, text string) {
	lines := strings.Split(text, "\n")
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}

	boxW := inner + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, boxY+1+i, l, core.ColorYellow)
	}
}
