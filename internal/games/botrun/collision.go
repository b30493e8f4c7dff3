package botrun

// collisionOutcome summarizes one collision pass.
type collisionOutcome struct {
	GameOver bool
	PowerUps int
}

// resolveCollisions checks obstacles in spawn order. Hearts are consumed
// and grant invincibility; while invincible other obstacles are ignored;
// otherwise the first overlap ends the run and iteration stops.
// The returned slice reuses the backing array of obstacles.
func resolveCollisions(p *Player, obstacles []Obstacle) ([]Obstacle, collisionOutcome) {
	var out collisionOutcome
	kept := obstacles[:0]

	for i := range obstacles {
		o := obstacles[i]
		if !p.Bounds().Intersects(o.Bounds()) {
			kept = append(kept, o)
			continue
		}

		if o.PowerUp {
			p.GrantInvincibility()
			out.PowerUps++
			continue
		}

		if p.Invincible {
			kept = append(kept, o)
			continue
		}

		out.GameOver = true
		kept = append(kept, obstacles[i:]...)
		break
	}

	return kept, out
}
