package platformer

import (
	"github.com/tui-games/relicrun/internal/core"
)

// Resolve detects and resolves player interactions for one tick and returns
// the resulting events. Resolution order is fixed: platforms first (ground
// truth for OnGround), then enemies, then treasures, then power-ups. A
// landing and a collection may combine within one tick; a landing and an
// enemy hit both apply independently.
//
// Resolve mutates the player (landing snap) and flips Collected/Picked
// flags, but applies no progression effects: score, lives, timer and power
// activation are the caller's job, driven by the returned events.
func Resolve(p *Player, lvl *LevelData, active ActivePower, treasureValue int, dt float64) []core.Event {
	var events []core.Event

	// Platform landings. The previous-frame bottom edge is approximated
	// from the current bottom minus the distance fallen this tick; a player
	// whose bottom was at or above the platform top lands on it. Side and
	// bottom pokes are left unresolved.
	wasGrounded := p.OnGround
	p.OnGround = false
	pb := p.Box()
	for i := range lvl.Platforms {
		plat := &lvl.Platforms[i]
		if !pb.Overlaps(plat.Box()) {
			continue
		}

		prevBottom := p.Bottom() - p.VY*dt
		if prevBottom <= plat.Y {
			p.Y = plat.Y - p.H
			p.VY = 0
			p.OnGround = true
			pb = p.Box()
		}
	}
	if p.OnGround && !wasGrounded {
		events = append(events, core.Event{Kind: core.EventLanded})
	}

	// Enemy contact. Ignored entirely while invincibility is active; the
	// enemy is never removed either way.
	if !active.Inv {
		for i := range lvl.Enemies {
			if pb.Overlaps(lvl.Enemies[i].Box()) {
				events = append(events, core.Event{Kind: core.EventPlayerHit})
				break
			}
		}
	}

	// Treasure collection. Each treasure is collected at most once; the
	// award is doubled while the double-score power is active.
	for i := range lvl.Treasures {
		tr := &lvl.Treasures[i]
		if tr.Collected || !pb.Overlaps(tr.Box()) {
			continue
		}
		tr.Collected = true

		value := treasureValue
		if active.Double {
			value *= 2
		}
		events = append(events, core.Event{Kind: core.EventCollected, Value: value})
	}

	// Power-up pickups. Effect application is the progression layer's job.
	for i := range lvl.PowerUps {
		pu := &lvl.PowerUps[i]
		if pu.Picked || !pb.Overlaps(pu.Box()) {
			continue
		}
		pu.Picked = true
		events = append(events, core.Event{Kind: core.EventPowerActivated, Value: int(pu.Type)})
	}

	return events
}
