package botrun

// Snapshot is everything a renderer needs for one frame, in logical field
// units. Uses primitive types only.
type Snapshot struct {
	Mode   string
	Name   string
	Paused bool
	FieldW float64
	FieldH float64
	FloorY float64

	Score  int
	Speed  float64
	Phase  int
	Level  int
	SkyHex string

	Player    PlayerSnapshot
	Obstacles []ObstacleSnapshot
	Clouds    []Cloud
	Stars     []StarSnapshot
	Drops     []Drop

	Raining      bool
	Slip         float64
	Friction     float64 // 1 on a dry floor
	StormOpacity float64
}

// PlayerSnapshot is the drawable player state.
type PlayerSnapshot struct {
	X, Y, W, H    float64
	Invincible    bool
	InvincibleFor float64 // dt units remaining
	Jumping       bool
}

// ObstacleSnapshot is the drawable state of one obstacle. X/Y is the
// current hitbox origin, so orbiting flyers report their live position.
type ObstacleSnapshot struct {
	Kind    string
	X, Y    float64
	W, H    float64
	Phase   float64
	PowerUp bool
	Wide    bool
	Peaks   []float64
}

// StarSnapshot is a star with its opacity already resolved.
type StarSnapshot struct {
	X, Y    float64
	Size    float64
	Opacity float64
}

// Snapshot captures the current frame. Before the first start only the
// mode, name and field geometry are set.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:     g.mode.String(),
		Name:     g.name,
		Paused:   g.paused,
		FieldW:   g.fieldW,
		FieldH:   g.cfg.Field.Height,
		FloorY:   g.cfg.Field.Height - g.cfg.Field.GroundHeight,
		SkyHex:   g.cfg.Environment.SkyDay,
		Friction: 1,
	}

	s := g.session
	if s == nil {
		return snap
	}

	snap.FieldW = s.FieldW()
	snap.Score = s.Progress.Points()
	snap.Speed = s.Progress.Speed()
	snap.Phase = s.Progress.Phase
	snap.Level = s.Spawner.Level(snap.Score)
	snap.Raining = s.Weather.Raining
	snap.Slip = s.Weather.Slip
	snap.Friction = s.Weather.Friction()
	snap.StormOpacity = s.Weather.StormOpacity

	p := s.Player
	snap.Player = PlayerSnapshot{
		X: p.X, Y: p.Y, W: p.W, H: p.H,
		Invincible:    p.Invincible,
		InvincibleFor: p.InvincibleRemaining(),
		Jumping:       p.JumpingVisual,
	}

	snap.Obstacles = make([]ObstacleSnapshot, len(s.Obstacles))
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		b := o.Bounds()
		snap.Obstacles[i] = ObstacleSnapshot{
			Kind:    o.Kind.String(),
			X:       b.X,
			Y:       b.Y,
			W:       b.W,
			H:       b.H,
			Phase:   o.Phase,
			PowerUp: o.PowerUp,
			Wide:    o.Wide,
			Peaks:   o.Peaks,
		}
	}

	snap.Clouds = append([]Cloud(nil), s.Env.Clouds...)
	snap.Drops = append([]Drop(nil), s.Weather.Drops...)

	// The game-over screen shows the full star field on a night sky
	visibility := s.Env.StarVisibility()
	snap.SkyHex = s.Env.SkyColor()
	if g.mode == ModeGameOver {
		visibility = 1
		snap.SkyHex = g.cfg.Environment.GameOverSky
	}

	if visibility > 0 {
		snap.Stars = make([]StarSnapshot, 0, len(s.Env.Stars))
		for _, st := range s.Env.Stars {
			snap.Stars = append(snap.Stars, StarSnapshot{
				X:       st.X,
				Y:       st.Y,
				Size:    st.Size,
				Opacity: s.Env.StarOpacity(st, visibility),
			})
		}
	}

	return snap
}
