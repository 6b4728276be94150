package platformer

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// logger is shared by every game instance created after SetLogger.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts the scene machine to the registry.Game interface.
type Game struct {
	variant config.Variant
	cfg     config.PlatformerConfig
	fixed   bool // cfg was given explicitly; Reset does not reload it

	runtime  core.RuntimeConfig
	dt       time.Duration
	clock    *core.FrameClock
	keyboard *KeyboardSource
	buttons  *VirtualButtons
	renderer *ScreenRenderer
	machine  *Machine

	status Status
	paused bool
}

// New creates a game for the given variant. Its config is loaded on Reset.
func New(v config.Variant) *Game {
	return &Game{variant: v, cfg: config.Default(v)}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(v config.Variant, cfg config.PlatformerConfig) *Game {
	return &Game{variant: v, cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == config.VariantDouble {
		return "penguin_double"
	}
	return "penguin"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantDouble {
		return "Penguin Run (Double Jump)"
	}
	return "Penguin Run"
}

// Reset loads the config, seeds the RNG and boots a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.Load(g.variant, configPath)
		if err != nil {
			logger.Warn("using default config", "variant", g.variant, "err", err)
			cfg = config.Default(g.variant)
		}
		g.cfg = cfg
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = time.Second / time.Duration(tickRate)

	g.clock = &core.FrameClock{}
	g.keyboard = NewKeyboardSource(g.clock, g.cfg.Input.KeyHold())
	g.buttons = NewVirtualButtons()
	g.renderer = NewScreenRenderer()
	g.status = Status{Lives: g.cfg.Player.Lives}
	g.paused = false

	g.machine = NewMachine(g.cfg, rand.New(rand.NewSource(seed)), g.clock,
		WithRenderer(g.renderer),
		WithInput(NewInputAggregator(g.keyboard, g.buttons)),
		WithLogger(logger.With("game", g.ID())),
		WithOnPlaying(g.watch),
	)
	g.machine.Start()

	logger.Info("game reset", "game", g.ID(), "seed", seed, "tick_rate", tickRate)
}

// watch follows the status bus of every new Playing scene.
func (g *Game) watch(bus *EventBus) {
	bus.Subscribe(func(st Status) {
		g.status = st
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.machine.State().Terminal() {
		g.paused = !g.paused
		// Nothing stays held across a pause; the player presses again.
		g.keyboard.Reset()
		g.buttons.ReleaseAll()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.RequestRestart()
	}
	if in.Has(core.ActionConfirm) {
		g.machine.Tap()
	}

	g.keyboard.Feed(in)
	g.machine.Tick(g.dt)
	g.renderer.Advance(g.dt)

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Begin()
	g.machine.Draw()
	g.renderer.Paint(dst, View{
		Length:  g.cfg.Level.Length,
		Height:  g.cfg.Level.Height,
		GroundY: g.cfg.Level.GroundY,
		Status:  g.status,
		Paused:  g.paused,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	run := g.machine.Run()
	id := g.machine.State()
	return core.GameState{
		Score:    run.Score,
		Lives:    run.Lives,
		Scene:    id.String(),
		GameOver: id.Terminal(),
		Won:      id == StateVictory,
		Paused:   g.paused,
	}
}

// SetInput presses or releases a virtual button.
func (g *Game) SetInput(a core.Action, pressed bool) {
	g.buttons.Set(a, pressed)
}

// ButtonAt returns the virtual button drawn at screen cell (x, y).
func (g *Game) ButtonAt(x, y int) (core.Action, bool) {
	return g.renderer.ButtonAt(x, y)
}

// Tap handles a click on the play area. An overlay gets it first.
func (g *Game) Tap() {
	if !g.renderer.Tap() {
		g.machine.Tap()
	}
}

// RequestRestart goes back to Boot from Victory or GameOver.
func (g *Game) RequestRestart() {
	g.machine.RequestRestart()
}

func init() {
	registry.Register("penguin", func() registry.Game {
		return New(config.VariantClassic)
	})
	registry.Register("penguin_double", func() registry.Game {
		return New(config.VariantDouble)
	})
}
