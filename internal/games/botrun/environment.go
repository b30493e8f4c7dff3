package botrun

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/botrun/internal/config"
	"github.com/vovakirdan/botrun/internal/core"
)

// Cloud drifts left and wraps around to the right edge.
type Cloud struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Star twinkles in the night half of the sky cycle.
type Star struct {
	X, Y        float64
	Size        float64
	BaseOpacity float64
	Phase       float64
}

// Environment is the decorative backdrop: sky colour cycle, clouds, stars.
type Environment struct {
	cfg    config.EnvironmentConfig
	fieldW float64
	floorY float64

	Clouds []Cloud
	Stars  []Star

	elapsedSec float64
	day, dusk  colorful.Color
}

var (
	fallbackDay  = colorful.Color{R: 0.529, G: 0.808, B: 0.922}
	fallbackDusk = colorful.Color{R: 0.282, G: 0.239, B: 0.545}
)

// NewEnvironment scatters clouds and stars over the field.
func NewEnvironment(cfg config.EnvironmentConfig, fieldW, floorY float64, rng *rand.Rand) *Environment {
	e := &Environment{
		cfg:    cfg,
		fieldW: fieldW,
		floorY: floorY,
		day:    parseHex(cfg.SkyDay, fallbackDay),
		dusk:   parseHex(cfg.SkyDusk, fallbackDusk),
	}

	e.Clouds = make([]Cloud, cfg.CloudCount)
	for i := range e.Clouds {
		e.Clouds[i] = Cloud{
			X:     rng.Float64() * fieldW,
			Y:     rng.Float64() * floorY / 3,
			Size:  uniform(rng, cfg.CloudMinSize, cfg.CloudMaxSize),
			Speed: uniform(rng, cfg.CloudMinSpeed, cfg.CloudMaxSpeed),
		}
	}

	e.Stars = make([]Star, cfg.StarCount)
	for i := range e.Stars {
		e.Stars[i] = Star{
			X:           rng.Float64() * fieldW,
			Y:           rng.Float64() * floorY * 0.6,
			Size:        uniform(rng, cfg.StarMinSize, cfg.StarMaxSize),
			BaseOpacity: uniform(rng, cfg.StarMinOpacity, cfg.StarMaxOpacity),
			Phase:       rng.Float64() * 2 * math.Pi,
		}
	}
	return e
}

func parseHex(s string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	return c
}

// Update drifts clouds with the scroll speed, twinkles stars and advances
// the sky cycle.
func (e *Environment) Update(dt, speed float64, rng *rand.Rand) {
	e.elapsedSec += dt * core.ReferenceFrameMs / 1000

	for i := range e.Clouds {
		c := &e.Clouds[i]
		c.X -= c.Speed * speed * 0.5 * dt
		if c.X+c.Size*2 < 0 {
			c.X = e.fieldW + rng.Float64()*e.cfg.CloudRespawn
			c.Y = rng.Float64() * e.floorY / 3
		}
	}

	e.Twinkle(dt)
}

// Twinkle advances only the star phases. Used while the run is frozen.
func (e *Environment) Twinkle(dt float64) {
	for i := range e.Stars {
		e.Stars[i].Phase += e.cfg.TwinkleSpeed * dt
	}
}

// Darkness runs 0 → 1 → 0 over one sky cycle.
func (e *Environment) Darkness() float64 {
	cycle := e.cfg.SkyCycleSeconds
	if cycle <= 0 {
		return 0
	}
	t := math.Mod(e.elapsedSec, cycle) / cycle
	return 1 - math.Abs(2*t-1)
}

// SkyColor returns the current sky as a hex string.
func (e *Environment) SkyColor() string {
	return e.day.BlendRgb(e.dusk, e.Darkness()).Hex()
}

// StarVisibility is 0 until darkness passes the threshold, then ramps to 1.
func (e *Environment) StarVisibility() float64 {
	d := e.Darkness()
	th := e.cfg.StarThreshold
	if d <= th || th >= 1 {
		return 0
	}
	return (d - th) / (1 - th)
}

// StarOpacity returns a star's current opacity scaled by visibility.
func (e *Environment) StarOpacity(s Star, visibility float64) float64 {
	twinkle := 0.5 + 0.5*math.Sin(s.Phase)
	return s.BaseOpacity * twinkle * visibility
}
