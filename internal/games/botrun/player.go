package botrun

import (
	"math/rand"

	"github.com/vovakirdan/botrun/internal/config"
	"github.com/vovakirdan/botrun/internal/core"
)

// Player is the runner. X is fixed; Y never goes below GroundLevel.
type Player struct {
	X, Y            float64
	W, H            float64
	VY              float64
	Grounded        bool
	Invincible      bool
	InvincibleTimer float64
	JumpingVisual   bool // Squash/stretch while airborne after a jump

	floorY  float64
	physics config.PhysicsConfig
	cfg     config.PlayerConfig
}

// NewPlayer places a grounded player on the floor.
func NewPlayer(cfg config.PlayerConfig, physics config.PhysicsConfig, floorY float64) *Player {
	p := &Player{
		X:        cfg.X,
		W:        cfg.Width,
		H:        cfg.Height,
		Grounded: true,
		floorY:   floorY,
		physics:  physics,
		cfg:      cfg,
	}
	p.Y = p.GroundLevel()
	return p
}

// GroundLevel is the y of the player's top edge when standing.
func (p *Player) GroundLevel() float64 {
	return p.floorY - p.H
}

// Jump launches the player if grounded. A wet floor weakens the jump and
// may turn it into a slip jump. Returns false when airborne.
func (p *Player) Jump(slip float64, rng *rand.Rand) bool {
	if !p.Grounded {
		return false
	}

	v := p.physics.JumpStrength * (1 - slip*p.physics.JumpSlipReduction)
	if slip > 0 && rng.Float64() < slip*p.physics.SlipJumpChance {
		v *= p.physics.SlipJumpFactor
	}

	p.VY = v
	p.Grounded = false
	p.JumpingVisual = true
	return true
}

// Update integrates gravity, clamps to the ground and runs down the
// invincibility timer.
func (p *Player) Update(dt, slip float64, rng *rand.Rand) {
	// Involuntary hop on a slippery floor
	if p.Grounded && slip > 0 && rng.Float64() < slip*p.physics.BumpChance*dt {
		p.VY = p.physics.BumpStrength
		p.Grounded = false
	}

	p.VY += p.physics.Gravity * dt
	p.Y += p.VY * dt

	if ground := p.GroundLevel(); p.Y >= ground {
		p.Y = ground
		p.VY = 0
		p.Grounded = true
		p.JumpingVisual = false
	} else {
		p.Grounded = false
	}

	if p.Invincible {
		p.InvincibleTimer += dt
		if p.InvincibleTimer >= p.cfg.InvincibilityDuration {
			p.Invincible = false
			p.InvincibleTimer = 0
		}
	}
}

// GrantInvincibility starts (or restarts) the invincibility window.
func (p *Player) GrantInvincibility() {
	p.Invincible = true
	p.InvincibleTimer = 0
}

// InvincibleRemaining returns the dt units left, or 0.
func (p *Player) InvincibleRemaining() float64 {
	if !p.Invincible {
		return 0
	}
	return p.cfg.InvincibilityDuration - p.InvincibleTimer
}

// Bounds returns the full hitbox regardless of the jump visual.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}
