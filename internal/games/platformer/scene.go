package platformer

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// StateID names a scene of the state machine.
type StateID int

const (
	StateBoot StateID = iota
	StateMenu
	StatePlaying
	StateRespawning
	StateVictory
	StateGameOver
)

// String returns the scene name used in logs and GameState.
func (s StateID) String() string {
	switch s {
	case StateBoot:
		return "boot"
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateRespawning:
		return "respawning"
	case StateVictory:
		return "victory"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended in this state.
func (s StateID) Terminal() bool {
	return s == StateVictory || s == StateGameOver
}

// RunContext carries lives and score across respawns. Boot recreates it.
type RunContext struct {
	Lives int
	Score int
}

// Frame is what a scene sees on one tick.
type Frame struct {
	DT      time.Duration
	Input   InputState
	Tap     bool // Overlay or confirm tap since the last tick
	Restart bool // RequestRestart since the last tick
}

// Scene is one state of the machine. Tick returns the next scene or nil to stay.
type Scene interface {
	ID() StateID
	Enter(run *RunContext)
	Tick(f Frame) Scene
	Exit()
}

// World is the geometry and entities a scene wants drawn.
type World struct {
	Level *Level
	Store *EntityStore
}

// worldScene is implemented by scenes that show a world.
type worldScene interface {
	world() *World
}

// Option configures a Machine.
type Option func(*Machine)

// WithRenderer sets the presentation collaborator. Defaults to NopRenderer.
func WithRenderer(r Renderer) Option {
	return func(m *Machine) { m.renderer = r }
}

// WithInput sets the input source sampled every tick.
func WithInput(in InputSource) Option {
	return func(m *Machine) { m.input = in }
}

// WithLogger sets the logger for transitions and gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithOnPlaying registers a hook called with the fresh EventBus on every
// Playing entry, before the initial status is published.
func WithOnPlaying(fn func(*EventBus)) Option {
	return func(m *Machine) { m.onPlaying = fn }
}

// Machine drives the scenes. It is not safe for concurrent use; the host
// calls Tick from its single frame loop.
type Machine struct {
	cfg      config.PlatformerConfig
	rng      *rand.Rand
	clock    *core.FrameClock
	renderer Renderer
	input    InputSource
	logger   *log.Logger

	current   Scene
	run       RunContext
	tapped    bool
	restart   bool
	onPlaying func(*EventBus)
}

// NewMachine creates a machine. Start must be called before the first Tick.
func NewMachine(cfg config.PlatformerConfig, rng *rand.Rand, clock *core.FrameClock, opts ...Option) *Machine {
	m := &Machine{
		cfg:      cfg,
		rng:      rng,
		clock:    clock,
		renderer: NopRenderer{},
		input:    NewInputAggregator(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start enters Boot, dropping whatever scene was active.
func (m *Machine) Start() {
	if m.current != nil {
		m.current.Exit()
	}
	m.tapped, m.restart = false, false
	m.current = &bootScene{m: m}
	m.current.Enter(&m.run)
	m.logger.Info("scene entered", "scene", m.current.ID())
}

// Tick advances the clock by dt and runs one frame of the current scene.
func (m *Machine) Tick(dt time.Duration) {
	if m.current == nil {
		m.Start()
	}
	m.clock.Advance(dt)

	f := Frame{
		DT:      dt,
		Input:   m.input.Sample(),
		Tap:     m.tapped,
		Restart: m.restart,
	}
	m.tapped, m.restart = false, false

	if next := m.current.Tick(f); next != nil {
		m.transition(next)
	}
}

func (m *Machine) transition(next Scene) {
	prev := m.current
	prev.Exit()
	m.current = next
	next.Enter(&m.run)
	m.logger.Info("scene changed", "from", prev.ID(), "to", next.ID(),
		"lives", m.run.Lives, "score", m.run.Score, "frame", m.clock.Frame())
}

// Tap records a tap for the next tick. The menu starts on it and terminal
// scenes restart on it.
func (m *Machine) Tap() {
	m.tapped = true
}

// RequestRestart asks a terminal scene to go back to Boot on the next tick.
// Other scenes ignore it.
func (m *Machine) RequestRestart() {
	m.restart = true
}

// State returns the current scene ID.
func (m *Machine) State() StateID {
	if m.current == nil {
		return StateBoot
	}
	return m.current.ID()
}

// Run returns a copy of the current lives and score.
func (m *Machine) Run() RunContext {
	return m.run
}

// World returns what the current scene shows, or nil for menu and boot.
func (m *Machine) World() *World {
	if ws, ok := m.current.(worldScene); ok {
		return ws.world()
	}
	return nil
}

// Draw hands every visible entity of the current world to the renderer.
func (m *Machine) Draw() {
	w := m.World()
	if w == nil {
		return
	}
	for _, p := range w.Level.Platforms {
		m.renderer.DrawEntity(p)
	}
	if g := w.Store.Goal(); g != nil && g.Active {
		m.renderer.DrawEntity(g)
	}
	for _, e := range w.Store.ActiveEnemies() {
		m.renderer.DrawEntity(e)
	}
	for _, b := range w.Store.Projectiles() {
		m.renderer.DrawEntity(b)
	}
	if p := w.Store.Player(); p != nil && p.Active {
		m.renderer.DrawEntity(p.Entity)
	}
}

func (m *Machine) newPlaying() Scene {
	return &playingScene{m: m}
}

// bootScene resets the run and hands over to Menu or Playing.
type bootScene struct {
	m *Machine
}

func (s *bootScene) ID() StateID { return StateBoot }

func (s *bootScene) Enter(run *RunContext) {
	s.m.renderer.ClearOverlay()
	s.m.renderer.Prepare()
	*run = RunContext{Lives: s.m.cfg.Player.Lives}
}

func (s *bootScene) Tick(Frame) Scene {
	if s.m.cfg.Gameplay.Menu {
		return &menuScene{m: s.m}
	}
	return s.m.newPlaying()
}

func (s *bootScene) Exit() {}

// menuScene waits for jump, action or a tap.
type menuScene struct {
	m *Machine
}

// MenuText is the start prompt shown by the menu scene.
const MenuText = "PENGUIN RUN\nPress Jump to Start"

func (s *menuScene) ID() StateID { return StateMenu }

func (s *menuScene) Enter(*RunContext) {
	s.m.renderer.ShowOverlayText(MenuText, s.m.Tap)
}

func (s *menuScene) Tick(f Frame) Scene {
	if f.Tap || f.Input.Jump || f.Input.Action {
		return s.m.newPlaying()
	}
	return nil
}

func (s *menuScene) Exit() {
	s.m.renderer.ClearOverlay()
}

// respawningScene freezes the dead world for the respawn delay.
type respawningScene struct {
	m     *Machine
	w     *World
	sched *core.Scheduler
	done  bool
}

func (s *respawningScene) ID() StateID { return StateRespawning }
func (s *respawningScene) world() *World { return s.w }

func (s *respawningScene) Enter(*RunContext) {
	delay := s.m.cfg.Gameplay.RespawnDelay()
	s.sched = core.NewScheduler(s.m.clock)
	s.sched.After(delay, func() { s.done = true })
	s.m.renderer.ShakeCamera(delay, s.m.cfg.Gameplay.ShakeIntensity)
}

func (s *respawningScene) Tick(Frame) Scene {
	s.sched.Run()
	if s.done {
		return s.m.newPlaying()
	}
	return nil
}

func (s *respawningScene) Exit() {
	s.sched.CancelAll()
}

// Overlay texts of the terminal scenes.
const (
	GameOverText = "GAME OVER\nTap to Restart"
	VictoryText  = "YOU WON!\nFound Gasparin <3"
)

// endScene is Victory or GameOver: the world stays frozen under an overlay
// until a restart is requested.
type endScene struct {
	m    *Machine
	w    *World
	id   StateID
	text string
}

func newEndScene(m *Machine, w *World, won bool) *endScene {
	if won {
		return &endScene{m: m, w: w, id: StateVictory, text: VictoryText}
	}
	return &endScene{m: m, w: w, id: StateGameOver, text: GameOverText}
}

func (s *endScene) ID() StateID { return s.id }
func (s *endScene) world() *World { return s.w }

func (s *endScene) Enter(*RunContext) {
	s.m.renderer.ShowOverlayText(s.text, s.m.RequestRestart)
}

func (s *endScene) Tick(f Frame) Scene {
	if f.Restart || f.Tap {
		return &bootScene{m: s.m}
	}
	return nil
}

func (s *endScene) Exit() {
	s.m.renderer.ClearOverlay()
}
