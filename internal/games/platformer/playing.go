package platformer

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// playingScene owns one level attempt: a fresh level, entities, timers and
// status bus. Everything it creates is discarded on Exit.
type playingScene struct {
	m        *Machine
	run      *RunContext
	w        *World
	sched    *core.Scheduler
	bus      *EventBus
	physics  PhysicsStep
	resolver CollisionResolver

	prevJump bool
	nextFire time.Duration
}

func (s *playingScene) ID() StateID { return StatePlaying }
func (s *playingScene) world() *World { return s.w }

// Bus returns the status bus of this attempt.
func (s *playingScene) Bus() *EventBus { return s.bus }

func (s *playingScene) Enter(run *RunContext) {
	m := s.m
	cfg := m.cfg
	s.run = run
	s.sched = core.NewScheduler(m.clock)

	level := GenerateLevel(m.rng, cfg.Level)
	store := NewEntityStore(cfg, m.rng, s.sched)
	store.SpawnPlayer(cfg.Player.SpawnX, cfg.Player.SpawnY)
	store.SpawnEnemies(cfg.Enemies.Count,
		Range{Min: cfg.Enemies.Margin, Max: cfg.Level.Length - cfg.Enemies.Margin},
		Range{Min: cfg.Enemies.SpawnY, Max: cfg.Enemies.SpawnY},
		cfg.Enemies.MaxSpeed)
	store.SpawnGoal(cfg.Level.Length-cfg.Gameplay.GoalOffset, cfg.Gameplay.GoalY)
	s.w = &World{Level: level, Store: store}

	s.physics = PhysicsStep{Gravity: cfg.Physics.Gravity, WorldW: level.Length, WorldH: level.Height}
	s.resolver = CollisionResolver{
		StompTolerance: cfg.Physics.StompTolerance,
		FallLimit:      level.Height + cfg.Level.FallMargin,
	}
	s.nextFire = m.clock.Now()
	// A jump still held from the menu or before a respawn is not a fresh press.
	s.prevJump = true

	s.bus = NewEventBus()
	s.bus.Subscribe(func(st Status) {
		m.logger.Debug("status", "lives", st.Lives, "score", st.Score)
	})
	if m.onPlaying != nil {
		m.onPlaying(s.bus)
	}
	s.publish()
}

func (s *playingScene) Tick(f Frame) Scene {
	player := s.w.Store.Player()
	if player.Grounded {
		player.JumpCount = 0
	}

	s.applyInput(player, f.Input)
	s.physics.Integrate(f.DT.Seconds(), s.w.Store.Dynamic())
	events := s.resolver.Resolve(s.w.Store, s.w.Level)
	next := s.apply(player, events)
	s.sched.Run()
	return next
}

// Exit frees every projectile and drops the scene's timers and subscribers.
func (s *playingScene) Exit() {
	for _, b := range s.w.Store.Projectiles() {
		s.w.Store.ReleaseProjectile(b.ID)
	}
	s.m.logger.Debug("playing exited", "timers_cancelled", s.sched.Pending())
	s.sched.CancelAll()
	s.bus.Close()
}

func (s *playingScene) applyInput(p *PlayerState, in InputState) {
	phys := s.m.cfg.Physics

	switch {
	case in.Left && !in.Right:
		p.VX = -phys.MoveSpeed
		p.Facing = -1
	case in.Right && !in.Left:
		p.VX = phys.MoveSpeed
		p.Facing = 1
	default:
		p.VX = 0
	}

	// Ground jumps repeat while held; air jumps need a fresh press.
	pressed := in.Jump && !s.prevJump
	s.prevJump = in.Jump
	if in.Jump {
		switch {
		case p.Grounded:
			p.VY = -phys.JumpVelocity
			p.JumpCount = 1
			p.Grounded = false
		case pressed:
			// Walking off a ledge spends the first jump.
			if p.JumpCount == 0 {
				p.JumpCount = 1
			}
			if p.JumpCount < p.MaxJumps {
				p.VY = -phys.JumpVelocity
				p.JumpCount++
			}
		}
	}

	now := s.m.clock.Now()
	if in.Action && now >= s.nextFire {
		s.nextFire = now + s.m.cfg.Projectiles.Cooldown()
		dir := p.Facing
		if b, ok := s.w.Store.AcquireProjectile(p.X+dir*p.HW, p.Y, dir); ok {
			s.m.renderer.PlayEffect(EffectFire, b.X, b.Y)
		} else {
			s.m.logger.Debug("projectile pool exhausted", "active", s.w.Store.Pool().ActiveCount())
		}
	}
}

// apply consumes the events of one frame in kind order. Only the first
// transition is honoured; later goal or lethal events are ignored.
func (s *playingScene) apply(p *PlayerState, events []CollisionEvent) Scene {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Kind < events[j].Kind
	})

	var next Scene
	for _, ev := range events {
		switch ev.Kind {
		case EventStomp:
			if !ev.Target.Active {
				continue
			}
			ev.Target.Active = false
			p.VY = -s.m.cfg.Physics.BounceVelocity
			s.m.renderer.PlayEffect(EffectStomp, ev.Target.X, ev.Target.Y)
			s.m.logger.Debug("enemy stomped", "enemy", ev.Target.ID)
			s.addScore(s.m.cfg.Gameplay.KillScore)

		case EventProjectileHit:
			if !ev.Target.Active || !ev.Source.Active {
				continue
			}
			ev.Target.Active = false
			s.w.Store.ReleaseProjectile(ev.Source.ID)
			s.m.renderer.PlayEffect(EffectHit, ev.Target.X, ev.Target.Y)
			s.m.logger.Debug("enemy shot", "enemy", ev.Target.ID, "projectile", ev.Source.ID)
			s.addScore(s.m.cfg.Gameplay.KillScore)

		case EventGoalReached:
			if p.Invulnerable {
				continue
			}
			p.Invulnerable = true
			p.VX, p.VY = 0, 0
			s.m.renderer.PlayEffect(EffectGoal, ev.Target.X, ev.Target.Y)
			next = newEndScene(s.m, s.w, true)

		default:
			if !ev.Kind.Lethal() || p.Invulnerable {
				continue
			}
			next = s.die(p, ev.Kind)
		}
	}
	return next
}

// die takes one life and picks the scene that follows.
func (s *playingScene) die(p *PlayerState, cause EventKind) Scene {
	p.Invulnerable = true
	p.VX, p.VY = 0, 0
	if s.run.Lives > 0 {
		s.run.Lives--
	}
	s.m.renderer.PlayEffect(EffectDeath, p.X, p.Y)
	s.m.logger.Debug("player died", "cause", cause, "lives", s.run.Lives)
	s.publish()

	if s.run.Lives > 0 {
		return &respawningScene{m: s.m, w: s.w}
	}
	p.GameOver = true
	return newEndScene(s.m, s.w, false)
}

func (s *playingScene) addScore(n int) {
	if n <= 0 {
		return
	}
	s.run.Score += n
	s.publish()
}

func (s *playingScene) publish() {
	s.bus.Publish(Status{Lives: s.run.Lives, Score: s.run.Score})
}
