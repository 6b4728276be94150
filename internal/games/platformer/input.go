package platformer

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// InputState is the logical input for one frame.
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool
	Action bool
}

// Or merges two input states axis by axis.
func (s InputState) Or(o InputState) InputState {
	return InputState{
		Left:   s.Left || o.Left,
		Right:  s.Right || o.Right,
		Jump:   s.Jump || o.Jump,
		Action: s.Action || o.Action,
	}
}

// InputSource is anything that can report held controls.
type InputSource interface {
	Sample() InputState
}

// InputAggregator ORs several sources into one logical input.
type InputAggregator struct {
	sources []InputSource
}

// NewInputAggregator creates an aggregator over the given sources.
func NewInputAggregator(sources ...InputSource) *InputAggregator {
	return &InputAggregator{sources: sources}
}

// Sample returns the combined input. No source can mask another.
func (a *InputAggregator) Sample() InputState {
	var s InputState
	for _, src := range a.sources {
		s = s.Or(src.Sample())
	}
	return s
}

// VirtualButtons is the on-screen button source. Press and Release are
// called from outside the frame loop; Sample reads the flags at the next tick.
type VirtualButtons struct {
	pressed map[core.Action]bool
}

// NewVirtualButtons creates a button source with nothing held.
func NewVirtualButtons() *VirtualButtons {
	return &VirtualButtons{pressed: make(map[core.Action]bool)}
}

// Press marks a button as held.
func (b *VirtualButtons) Press(a core.Action) { b.pressed[a] = true }

// Release marks a button as released.
func (b *VirtualButtons) Release(a core.Action) { delete(b.pressed, a) }

// Set presses or releases a button.
func (b *VirtualButtons) Set(a core.Action, pressed bool) {
	if pressed {
		b.Press(a)
	} else {
		b.Release(a)
	}
}

// ReleaseAll lifts every button.
func (b *VirtualButtons) ReleaseAll() {
	for k := range b.pressed {
		delete(b.pressed, k)
	}
}

// Sample implements InputSource.
func (b *VirtualButtons) Sample() InputState {
	return InputState{
		Left:   b.pressed[core.ActionLeft],
		Right:  b.pressed[core.ActionRight],
		Jump:   b.pressed[core.ActionJump],
		Action: b.pressed[core.ActionFire],
	}
}

// KeyboardSource turns discrete key presses into held keys.
// Terminals report presses and auto-repeats but no releases, so a key counts
// as held until hold has passed since its last press.
type KeyboardSource struct {
	clock *core.FrameClock
	hold  time.Duration
	until map[core.Action]time.Duration
}

// NewKeyboardSource creates a keyboard source reading time from clock.
func NewKeyboardSource(clock *core.FrameClock, hold time.Duration) *KeyboardSource {
	return &KeyboardSource{
		clock: clock,
		hold:  hold,
		until: make(map[core.Action]time.Duration),
	}
}

// Feed records the key presses of one frame.
func (k *KeyboardSource) Feed(in core.InputFrame) {
	now := k.clock.Now()
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionFire} {
		if in.Has(a) {
			k.until[a] = now + k.hold
		}
	}
	// Opposite directions cancel so a quick reversal does not stall.
	if in.Has(core.ActionLeft) && !in.Has(core.ActionRight) {
		delete(k.until, core.ActionRight)
	}
	if in.Has(core.ActionRight) && !in.Has(core.ActionLeft) {
		delete(k.until, core.ActionLeft)
	}
}

// Reset drops all held keys.
func (k *KeyboardSource) Reset() {
	for a := range k.until {
		delete(k.until, a)
	}
}

// Sample implements InputSource.
func (k *KeyboardSource) Sample() InputState {
	now := k.clock.Now()
	held := func(a core.Action) bool {
		return k.until[a] > now
	}
	return InputState{
		Left:   held(core.ActionLeft),
		Right:  held(core.ActionRight),
		Jump:   held(core.ActionJump),
		Action: held(core.ActionFire),
	}
}
