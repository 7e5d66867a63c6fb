package platformer

import (
	"github.com/tui-games/relicrun/internal/config"
	"github.com/tui-games/relicrun/internal/core"
)

// Integrate advances the player by dt normalized ticks: gravity is added
// to vertical velocity, position moves by velocity, and the horizontal
// position is clamped to the world (clamped, not bounced). Vertical
// position is never clamped; crossing the world's bottom edge is reported
// as a fall and the position may stay out of bounds until the level resets.
func Integrate(p *Player, phys config.PhysicsConfig, world config.WorldConfig, dt float64) (fellOff bool) {
	p.VY += phys.Gravity * dt
	if p.VY > phys.MaxFallSpeed {
		p.VY = phys.MaxFallSpeed
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt

	p.X = core.ClampF(p.X, 0, world.Width-p.W)

	return p.Y > world.Height
}

// MoveEnemies advances patrol movement. An enemy walking into a patrol
// bound is pinned to the bound and reverses direction on the same tick.
func MoveEnemies(enemies []Enemy, dt float64) {
	for i := range enemies {
		e := &enemies[i]
		e.X += e.Dir * e.Speed * dt

		if e.X <= e.PatrolMin {
			e.X = e.PatrolMin
			e.Dir = 1
		} else if e.X >= e.PatrolMax {
			e.X = e.PatrolMax
			e.Dir = -1
		}
	}
}
