package botrun

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/botrun/internal/config"
	"github.com/vovakirdan/botrun/internal/core"
)

// Session is one playthrough. It is created on start and replaced
// wholesale on the next start.
type Session struct {
	Name      string
	Player    *Player
	Obstacles []Obstacle
	Progress  *Progression
	Spawner   *Spawner
	Weather   *Weather
	Env       *Environment
	Elapsed   float64 // Total dt stepped

	cfg    config.BotRunConfig
	world  *world
	rng    *rand.Rand
	fieldW float64
	logger *log.Logger
}

// NewSession builds a fresh run on a field of the given logical width.
func NewSession(cfg config.BotRunConfig, name string, fieldW float64, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := rand.New(rand.NewSource(seed))
	floorY := cfg.Field.Height - cfg.Field.GroundHeight
	w := &world{floorY: floorY, cfg: cfg.Obstacles}

	return &Session{
		Name:      name,
		Player:    NewPlayer(cfg.Player, cfg.Physics, floorY),
		Obstacles: make([]Obstacle, 0, 16),
		Progress:  NewProgression(cfg.Speed),
		Spawner:   NewSpawner(cfg, w, fieldW, rng),
		Weather:   NewWeather(cfg.Weather, fieldW, floorY, rng),
		Env:       NewEnvironment(cfg.Environment, fieldW, floorY, rng),
		cfg:       cfg,
		world:     w,
		rng:       rng,
		fieldW:    fieldW,
		logger:    logger,
	}
}

// FieldW returns the logical field width.
func (s *Session) FieldW() float64 { return s.fieldW }

// FloorY returns the y of the floor surface.
func (s *Session) FloorY() float64 { return s.world.floorY }

// Duration converts the stepped time to wall-clock time at 60 Hz.
func (s *Session) Duration() time.Duration {
	return time.Duration(s.Elapsed * core.ReferenceFrameMs * float64(time.Millisecond))
}

// Step advances the run by dt. Returns the cues emitted and whether the
// run ended this step.
func (s *Session) Step(dt float64, jump bool) ([]core.Event, bool) {
	var events []core.Event
	s.Elapsed += dt

	if jump && s.Player.Jump(s.Weather.Slip, s.rng) {
		events = append(events, core.EventJump)
	}

	step := s.Progress.Advance(dt)
	if step.SpeedUps > 0 || step.PhaseChanged {
		s.logger.Debug("speed changed",
			"score", s.Progress.Points(),
			"base", s.Progress.BaseSpeed,
			"phase", s.Progress.Phase,
			"speed", s.Progress.Speed())
	}
	score := s.Progress.Points()

	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if !o.Offscreen() {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept

	if spawned := s.Spawner.Update(dt, score, s.Player.Invincible); len(spawned) > 0 {
		s.Obstacles = append(s.Obstacles, spawned...)
	}

	speed := s.Progress.Speed()
	s.Player.Update(dt, s.Weather.Slip, s.rng)
	for i := range s.Obstacles {
		s.Obstacles[i].Update(speed, dt)
	}
	s.Env.Update(dt, speed, s.rng)

	var out collisionOutcome
	s.Obstacles, out = resolveCollisions(s.Player, s.Obstacles)
	for i := 0; i < out.PowerUps; i++ {
		events = append(events, core.EventPowerUp)
	}
	if out.GameOver {
		return events, true
	}

	if s.Weather.Update(dt, score, s.rng) {
		s.logger.Debug("weather changed", "raining", s.Weather.Raining, "score", score)
	}

	return events, false
}
