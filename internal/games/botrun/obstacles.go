package botrun

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/botrun/internal/config"
	"github.com/vovakirdan/botrun/internal/core"
)

// Kind identifies an obstacle variant.
type Kind int

const (
	KindGround Kind = iota
	KindWater
	KindEnemy
	KindSpike
	KindFlying
	KindBouncing
	KindHeart
)

var kindNames = [...]string{
	KindGround:   "ground",
	KindWater:    "water",
	KindEnemy:    "enemy",
	KindSpike:    "spike",
	KindFlying:   "flying",
	KindBouncing: "bouncing",
	KindHeart:    "heart",
}

// String returns the config name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a config pool name to a Kind.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// world is the static geometry shared by all obstacles of a session.
type world struct {
	floorY float64
	cfg    config.ObstaclesConfig
}

// Obstacle is one scrolling entity. X/Y is the top-left corner in field
// units with +Y down. Variant-specific fields are zero when unused.
type Obstacle struct {
	Kind    Kind
	X, Y    float64
	W, H    float64
	Phase   float64 // Accumulated dt since spawn
	PowerUp bool
	Wide    bool      // Wide water
	BaseY   float64   // Bob centre (enemy, heart)
	VY      float64   // Bouncing velocity
	Reach   float64   // Extent drawn beyond the box (flying orbit)
	Peaks   []float64 // Spike silhouette heights, fixed at spawn

	w *world
}

// behaviour holds the per-kind motion and hitbox functions.
type behaviour struct {
	update func(o *Obstacle, dt float64)
	bounds func(o *Obstacle) core.Rect
}

var behaviours = [...]behaviour{
	KindGround:   {update: staticUpdate, bounds: boxBounds},
	KindWater:    {update: waterUpdate, bounds: boxBounds},
	KindEnemy:    {update: enemyUpdate, bounds: boxBounds},
	KindSpike:    {update: staticUpdate, bounds: boxBounds},
	KindFlying:   {update: staticUpdate, bounds: orbitBounds},
	KindBouncing: {update: bouncingUpdate, bounds: boxBounds},
	KindHeart:    {update: heartUpdate, bounds: boxBounds},
}

// Update scrolls the obstacle left by speed*dt and runs its variant motion.
func (o *Obstacle) Update(speed, dt float64) {
	o.X -= speed * dt
	o.Phase += dt
	if o.w != nil {
		behaviours[o.Kind].update(o, dt)
	}
}

// Bounds returns the collision box.
func (o *Obstacle) Bounds() core.Rect {
	return behaviours[o.Kind].bounds(o)
}

// Offscreen reports whether the obstacle has fully left the field on the left.
func (o *Obstacle) Offscreen() bool {
	return o.X+o.W+o.Reach <= 0
}

func staticUpdate(*Obstacle, float64) {}

func boxBounds(o *Obstacle) core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

func waterUpdate(o *Obstacle, _ float64) {
	c := o.w.cfg.Water
	o.H = c.BaseHeight + c.RippleAmplitude*math.Sin(o.Phase*c.RippleSpeed)
	o.Y = o.w.floorY - o.H
}

func enemyUpdate(o *Obstacle, _ float64) {
	c := o.w.cfg.Enemy
	o.Y = o.BaseY + c.BobAmplitude*math.Sin(o.Phase*c.BobSpeed)
}

func heartUpdate(o *Obstacle, _ float64) {
	c := o.w.cfg.Heart
	o.Y = o.BaseY + c.BobAmplitude*math.Sin(o.Phase*c.BobSpeed)
}

// orbitBounds offsets the anchor box around a circle of radius Reach.
func orbitBounds(o *Obstacle) core.Rect {
	speed := 0.0
	if o.w != nil {
		speed = o.w.cfg.Flying.OrbitSpeed
	}
	angle := o.Phase * speed
	return core.NewRect(o.X+o.Reach*math.Cos(angle), o.Y+o.Reach*math.Sin(angle), o.W, o.H)
}

func bouncingUpdate(o *Obstacle, dt float64) {
	c := o.w.cfg.Bouncing
	o.VY += c.Gravity * dt
	o.Y += o.VY * dt

	if floor := o.w.floorY - o.H; o.Y >= floor {
		o.Y = floor
		o.VY = -math.Abs(o.VY) * c.Elasticity
		if -o.VY < c.MinBounceSpeed {
			o.VY = -c.MinBounceSpeed
		}
	}
	if ceiling := o.w.floorY - c.CeilingHeight; o.Y <= ceiling {
		o.Y = ceiling
		o.VY = math.Abs(o.VY) * c.Elasticity
	}
}

// newObstacle builds a kind at the given x with randomized geometry.
func newObstacle(kind Kind, x float64, w *world, phys config.PhysicsConfig, rng *rand.Rand) Obstacle {
	o := Obstacle{Kind: kind, X: x, w: w}
	c := w.cfg

	switch kind {
	case KindGround:
		o.W = uniform(rng, c.Ground.MinWidth, c.Ground.MaxWidth)
		o.H = uniform(rng, c.Ground.MinHeight, c.Ground.MaxHeight)
		o.Y = w.floorY - o.H
	case KindWater:
		o.W = uniform(rng, c.Water.MinWidth, c.Water.MaxWidth)
		o.H = c.Water.BaseHeight
		o.Y = w.floorY - o.H
	case KindEnemy:
		o.W, o.H = c.Enemy.Width, c.Enemy.Height
		o.BaseY = w.floorY - c.Enemy.HoverHeight - o.H
		o.Y = o.BaseY
	case KindSpike:
		o.W = uniform(rng, c.Spike.MinWidth, c.Spike.MaxWidth)
		o.H = uniform(rng, c.Spike.MinHeight, c.Spike.MaxHeight)
		o.Y = w.floorY - o.H
		o.Peaks = spikePeaks(o.W, o.H, c.Spike.PeakWidth, rng)
	case KindFlying:
		o.W, o.H = c.Flying.Size, c.Flying.Size
		o.Reach = c.Flying.OrbitRadius
		// Anchor stays within the highest point a full jump reaches
		reach := phys.JumpStrength * phys.JumpStrength / (2 * phys.Gravity)
		altitude := uniform(rng, c.Flying.MinAltitude, reach)
		o.Y = w.floorY - altitude - o.H/2
	case KindBouncing:
		o.W, o.H = c.Bouncing.Size, c.Bouncing.Size
		o.Y = w.floorY - o.H
		o.VY = c.Bouncing.LaunchSpeed
	case KindHeart:
		o.W, o.H = c.Heart.Width, c.Heart.Height
		o.PowerUp = true
		o.BaseY = w.floorY - c.Heart.FloatHeight - o.H
		o.Y = o.BaseY
	}
	return o
}

// newWideWater builds the wide water variant.
func newWideWater(x float64, w *world, rng *rand.Rand) Obstacle {
	c := w.cfg.Water
	o := Obstacle{
		Kind: KindWater,
		X:    x,
		W:    uniform(rng, c.WideMinWidth, c.WideMaxWidth),
		H:    c.BaseHeight,
		Wide: true,
		w:    w,
	}
	o.Y = w.floorY - o.H
	return o
}

func spikePeaks(width, height, peakWidth float64, rng *rand.Rand) []float64 {
	if peakWidth <= 0 {
		peakWidth = width
	}
	n := int(math.Ceil(width / peakWidth))
	peaks := make([]float64, n)
	for i := range peaks {
		peaks[i] = uniform(rng, 0.6*height, height)
	}
	return peaks
}

// uniform draws from [a, b). An inverted or empty range yields a.
func uniform(rng *rand.Rand, a, b float64) float64 {
	if b <= a {
		return a
	}
	return a + rng.Float64()*(b-a)
}
