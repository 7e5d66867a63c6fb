// Package platformer implements a timed side-scrolling platformer.
// The player races a countdown across procedurally parameterized levels,
// collecting treasures while avoiding patrolling enemies.
package platformer

// Box is an axis-aligned bounding box in world units.
// Overlap uses strict inequalities: boxes that merely touch do not overlap.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps returns true if this box overlaps another.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() &&
		b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Player is the controlled avatar. Created fresh at the spawn point for
// every level attempt; the previous instance is discarded wholesale.
type Player struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	OnGround bool
}

// Box returns the player's bounding box.
func (p *Player) Box() Box {
	return Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Bottom returns the y-coordinate of the player's bottom edge.
func (p *Player) Bottom() float64 {
	return p.Y + p.H
}

// Platform is a static rectangle the player can land on.
// Immutable once generated; owned by the current level.
type Platform struct {
	X, Y float64
	W, H float64
}

// Box returns the platform's bounding box.
func (pl Platform) Box() Box {
	return Box{X: pl.X, Y: pl.Y, W: pl.W, H: pl.H}
}

// Enemy patrols horizontally between explicit bounds, reversing direction
// whenever a bound is reached.
type Enemy struct {
	X, Y       float64
	W, H       float64
	Dir        float64 // +1 right, -1 left
	Speed      float64 // Units per tick
	PatrolMin  float64 // Left patrol bound
	PatrolMax  float64 // Right patrol bound
}

// Box returns the enemy's bounding box.
func (e *Enemy) Box() Box {
	return Box{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Treasure is a collectible. Collected flips false -> true exactly once.
type Treasure struct {
	X, Y      float64
	W, H      float64
	Collected bool
}

// Box returns the treasure's bounding box.
func (t *Treasure) Box() Box {
	return Box{X: t.X, Y: t.Y, W: t.W, H: t.H}
}

// PowerType identifies a power-up effect.
type PowerType int

const (
	PowerTime   PowerType = iota // Adds seconds to the level timer
	PowerDouble                  // Doubles treasure awards for a window
	PowerInv                     // Invincibility against enemies for a window
)

// String returns the name of the power type.
func (t PowerType) String() string {
	switch t {
	case PowerTime:
		return "Time"
	case PowerDouble:
		return "Double"
	case PowerInv:
		return "Inv"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power type.
func (t PowerType) Glyph() rune {
	switch t {
	case PowerTime:
		return 'T'
	case PowerDouble:
		return 'D'
	case PowerInv:
		return 'I'
	default:
		return '?'
	}
}

// PowerUp is a pickup. Picked flips false -> true exactly once.
type PowerUp struct {
	X, Y   float64
	W, H   float64
	Type   PowerType
	Picked bool
}

// Box returns the power-up's bounding box.
func (pu *PowerUp) Box() Box {
	return Box{X: pu.X, Y: pu.Y, W: pu.W, H: pu.H}
}

// ActivePower tracks the timed global modifiers. Both flags share a single
// expiry clock; activating either power overwrites EndTime rather than
// stacking durations.
type ActivePower struct {
	Double  bool
	Inv     bool
	EndTime float64 // Session clock seconds
}

// Expire clears both flags once the clock passes EndTime.
// Returns true if anything was cleared.
func (a *ActivePower) Expire(now float64) bool {
	if (a.Double || a.Inv) && now > a.EndTime {
		a.Double = false
		a.Inv = false
		return true
	}
	return false
}

// LevelData holds one level attempt's entities and timer budget.
// Collections are replaced wholesale on every level (re)start; entities
// never survive across attempts.
type LevelData struct {
	Platforms   []Platform
	Treasures   []Treasure
	Enemies     []Enemy
	PowerUps    []PowerUp
	TimerBudget float64 // Seconds
}

// RemainingTreasures returns the number of uncollected treasures.
func (l *LevelData) RemainingTreasures() int {
	count := 0
	for i := range l.Treasures {
		if !l.Treasures[i].Collected {
			count++
		}
	}
	return count
}
