// Package botrun implements the side-scrolling runner: a bot jumps over
// procedurally spawned obstacles while the sky, clouds, stars and weather
// change around it. Score grows with survival time.
package botrun

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/botrun/internal/config"
	"github.com/vovakirdan/botrun/internal/core"
	"github.com/vovakirdan/botrun/internal/leaderboard"
)

// Mode is the screen state.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// minFieldWidth keeps very narrow terminals playable.
const minFieldWidth = 300

// ScoreRecorder persists finished runs.
type ScoreRecorder interface {
	RecordRun(name string, score int, duration time.Duration)
}

// Option configures a Game.
type Option func(*Game)

// WithRecorder sets where finished runs are recorded.
func WithRecorder(r ScoreRecorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithLogger sets the logger for milestones and run results.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game is the screen state machine around the current Session.
type Game struct {
	cfg      config.BotRunConfig
	runtime  core.RuntimeConfig
	mode     Mode
	name     string
	paused   bool
	runs     int64
	fieldW   float64
	session  *Session
	recorder ScoreRecorder
	logger   *log.Logger
}

// New creates a game in the start state.
func New(cfg config.BotRunConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "botrun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "BotRun"
}

// Reset returns to the start screen and derives the field width from the
// terminal aspect. Cells are roughly twice as tall as wide.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.mode = ModeStart
	g.paused = false
	g.session = nil
	g.fieldW = fieldWidth(g.cfg.Field, runtime)
}

func fieldWidth(field config.FieldConfig, runtime core.RuntimeConfig) float64 {
	if field.Width > 0 {
		return field.Width
	}
	if runtime.ScreenH <= 0 {
		return minFieldWidth
	}
	w := field.Height * float64(runtime.ScreenW) / float64(runtime.ScreenH*2)
	return math.Max(w, minFieldWidth)
}

// Resize updates the runtime screen size. The field of a running session
// keeps its width; the next session picks up the new aspect.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.fieldW = fieldWidth(g.cfg.Field, g.runtime)
}

// Start begins a new run, replacing any previous session.
func (g *Game) Start(name string) {
	g.name = leaderboard.NormalizeName(name)
	g.runs++
	seed := g.runtime.Seed + g.runs
	g.session = NewSession(g.cfg, g.name, g.fieldW, seed, g.logger)
	g.mode = ModePlaying
	g.paused = false
	g.logger.Debug("run started", "name", g.name, "seed", seed, "field_w", g.fieldW)
}

// Step advances the state machine by dt.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	switch g.mode {
	case ModeStart:
		if in.Has(core.ActionRestart) {
			g.Start(g.name)
		}
		return core.StepResult{State: g.State()}

	case ModeGameOver:
		if in.Has(core.ActionRestart) {
			g.Start(g.name)
			return core.StepResult{State: g.State()}
		}
		g.session.Env.Twinkle(dt)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events, over := g.session.Step(dt, in.Has(core.ActionJump))
	if over {
		g.mode = ModeGameOver
		events = append(events, core.EventGameOver)
		g.finishRun()
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) finishRun() {
	score := g.session.Progress.Points()
	duration := g.session.Duration()
	g.logger.Info("run over", "name", g.name, "score", score, "duration", duration.Round(time.Millisecond))
	if g.recorder != nil {
		g.recorder.RecordRun(g.name, score, duration)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.session != nil {
		score = g.session.Progress.Points()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.mode == ModeGameOver,
		Paused:   g.paused,
	}
}

// Mode returns the current screen state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Name returns the normalized player name of the last start.
func (g *Game) Name() string {
	return g.name
}

// SetName sets the name used by the next restart from the start screen.
func (g *Game) SetName(name string) {
	g.name = leaderboard.NormalizeName(name)
}

// Session returns the current or last run, nil before the first start.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the game configuration.
func (g *Game) Config() config.BotRunConfig {
	return g.cfg
}
