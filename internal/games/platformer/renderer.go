package platformer

import "time"

// EffectKind names a one-shot visual effect.
type EffectKind int

const (
	EffectStomp EffectKind = iota
	EffectHit
	EffectDeath
	EffectGoal
	EffectFire
)

// String returns a human-readable name for the effect.
func (k EffectKind) String() string {
	switch k {
	case EffectStomp:
		return "stomp"
	case EffectHit:
		return "hit"
	case EffectDeath:
		return "death"
	case EffectGoal:
		return "goal"
	case EffectFire:
		return "fire"
	default:
		return "unknown"
	}
}

// Renderer is everything the simulation needs from a presentation layer.
// Implementations must not call back into the simulation except through
// the onTap function handed to ShowOverlayText.
type Renderer interface {
	// Prepare loads whatever the renderer needs. Called once per boot.
	Prepare()

	// DrawEntity is called for every visible entity once per frame.
	DrawEntity(e *Entity)

	// PlayEffect shows a one-shot effect at world position (x, y).
	PlayEffect(kind EffectKind, x, y float64)

	// ShakeCamera shakes the view for d at the given intensity (fraction of the view).
	ShakeCamera(d time.Duration, intensity float64)

	// ShowOverlayText covers the world with text until ClearOverlay.
	// onTap may be nil; otherwise it is called when the overlay is tapped.
	ShowOverlayText(text string, onTap func())

	// ClearOverlay removes the current overlay.
	ClearOverlay()
}

// NopRenderer discards everything. Used by headless runs and tests.
type NopRenderer struct{}

func (NopRenderer) Prepare() {}
func (NopRenderer) DrawEntity(*Entity) {}
func (NopRenderer) PlayEffect(EffectKind, float64, float64) {}
func (NopRenderer) ShakeCamera(time.Duration, float64) {}
func (NopRenderer) ShowOverlayText(string, func()) {}
func (NopRenderer) ClearOverlay() {}
