package botrun

import (
	"fmt"
	"math"

	"github.com/vovakirdan/botrun/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlayerHead   = '▀'
	GroundChar   = '▓'
	FloorChar    = '═'
	DirtChar     = '░'
	WaterChar    = '≈'
	EnemyChar    = '▼'
	SpikeChar    = '▲'
	FlyingChar   = '◆'
	BouncingChar = '●'
	HeartChar    = '♥'
	CloudChar    = '░'
	StarChar     = '*'
	DimStarChar  = '.'
	RainChar     = '│'
)

// Floors grip less than this look wet.
const wetFriction = 0.85

// projector maps field units to screen cells.
type projector struct {
	sx, sy float64
}

func newProjector(snap Snapshot, dst *core.Screen) projector {
	p := projector{sx: 1, sy: 1}
	if snap.FieldW > 0 {
		p.sx = float64(dst.Width()) / snap.FieldW
	}
	if snap.FieldH > 0 {
		p.sy = float64(dst.Height()) / snap.FieldH
	}
	return p
}

func (p projector) x(v float64) int { return int(math.Floor(v * p.sx)) }
func (p projector) y(v float64) int { return int(math.Floor(v * p.sy)) }

// rect returns the cell box of a field rectangle, at least one cell each way.
func (p projector) rect(x, y, w, h float64) (cx, cy, cw, ch int) {
	cx, cy = p.x(x), p.y(y)
	cw = core.Max(int(math.Round(w*p.sx)), 1)
	ch = core.Max(int(math.Round(h*p.sy)), 1)
	return cx, cy, cw, ch
}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	pr := newProjector(snap, dst)

	dst.SetBackground(snap.SkyHex)

	drawStars(dst, pr, snap.Stars)
	drawClouds(dst, pr, snap)
	drawRain(dst, pr, snap.Drops)
	drawGround(dst, pr, snap)

	if g.mode == ModeStart {
		g.drawCenteredMessage(dst, "BOTRUN", "Press SPACE to start")
		return
	}

	for _, o := range snap.Obstacles {
		drawObstacle(dst, pr, o, snap.FloorY)
	}
	drawPlayer(dst, pr, snap.Player)
	drawHUD(dst, snap)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.mode == ModeGameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  SPACE or R to restart", snap.Score))
	}
}

func drawStars(dst *core.Screen, pr projector, stars []StarSnapshot) {
	for _, s := range stars {
		if s.Opacity < 0.15 {
			continue
		}
		r, c := DimStarChar, core.ColorDimGray
		if s.Size > 1.2 && s.Opacity > 0.4 {
			r, c = StarChar, core.ColorBrightWhite
		} else if s.Opacity > 0.4 {
			c = core.ColorWhite
		}
		dst.SetColored(pr.x(s.X), pr.y(s.Y), r, c)
	}
}

func drawClouds(dst *core.Screen, pr projector, snap Snapshot) {
	color := core.ColorBrightWhite
	if snap.StormOpacity > 0.5 {
		color = core.ColorDimGray
	}
	for _, c := range snap.Clouds {
		x, y, w, h := pr.rect(c.X, c.Y, c.Size*2, c.Size*0.6)
		dst.DrawRect(x, y, w, h, CloudChar, color)
	}
}

func drawRain(dst *core.Screen, pr projector, drops []Drop) {
	for _, d := range drops {
		x, y, _, h := pr.rect(d.X, d.Y, 1, d.Len)
		for dy := 0; dy < h; dy++ {
			dst.SetColored(x, y+dy, RainChar, core.ColorCyan)
		}
	}
}

func drawGround(dst *core.Screen, pr projector, snap Snapshot) {
	floorRow := pr.y(snap.FloorY)
	floorColor := core.ColorGreen
	if snap.Friction < wetFriction {
		floorColor = core.ColorCyan
	}
	dst.DrawHLine(0, floorRow, dst.Width(), FloorChar, floorColor)
	for y := floorRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), DirtChar, core.ColorBrown)
	}
}

func drawObstacle(dst *core.Screen, pr projector, o ObstacleSnapshot, floorY float64) {
	x, y, w, h := pr.rect(o.X, o.Y, o.W, o.H)

	switch o.Kind {
	case "ground":
		dst.DrawRect(x, y, w, h, GroundChar, core.ColorBrown)
	case "water":
		dst.DrawRect(x, y, w, h, WaterChar, core.ColorDeepBlue)
	case "enemy":
		dst.DrawRect(x, y, w, h, EnemyChar, core.ColorRed)
	case "spike":
		drawSpike(dst, pr, o, floorY)
	case "flying":
		dst.DrawRect(x, y, w, h, FlyingChar, core.ColorMagenta)
	case "bouncing":
		dst.DrawRect(x, y, w, h, BouncingChar, core.ColorOrange)
	case "heart":
		dst.DrawRect(x, y, w, h, HeartChar, core.ColorPink)
	}
}

// drawSpike draws each peak as a column of its own height.
func drawSpike(dst *core.Screen, pr projector, o ObstacleSnapshot, floorY float64) {
	if len(o.Peaks) == 0 {
		x, y, w, h := pr.rect(o.X, o.Y, o.W, o.H)
		dst.DrawRect(x, y, w, h, SpikeChar, core.ColorGray)
		return
	}
	peakW := o.W / float64(len(o.Peaks))
	for i, ph := range o.Peaks {
		x, y, w, h := pr.rect(o.X+float64(i)*peakW, floorY-ph, peakW, ph)
		dst.DrawRect(x, y, w, h, SpikeChar, core.ColorGray)
	}
}

func drawPlayer(dst *core.Screen, pr projector, p PlayerSnapshot) {
	x, y, w, h := pr.rect(p.X, p.Y, p.W, p.H)

	color := core.ColorBrightGreen
	if p.Invincible {
		// Flash faster as the power-up runs out
		period := 8.0
		if p.InvincibleFor < 60 {
			period = 4
		}
		if int(p.InvincibleFor/period)%2 == 0 {
			color = core.ColorBrightYellow
		}
	}

	// Stretch vertically while the jump visual is on
	if p.Jumping && w > 1 {
		x++
		w -= 2
		if w < 1 {
			w = 1
		}
	}

	dst.DrawRect(x, y, w, h, PlayerChar, color)
	dst.DrawHLine(x, y, w, PlayerHead, core.ColorBrightWhite)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	right := fmt.Sprintf(" Spd: %.1f  Lvl: %d ", snap.Speed, snap.Level)
	if snap.Raining {
		right = " Rain " + right
	}
	if snap.Player.Invincible {
		right = fmt.Sprintf(" %c%d ", HeartChar, int(snap.Player.InvincibleFor/60)+1) + right
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-2, 0, right, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
