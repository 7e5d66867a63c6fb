package platformer

import (
	"github.com/tui-games/relicrun/internal/config"
)

// Level layout constants in world units. These define the level design
// itself and are not runtime tunables.
const (
	PlatformStartX    = 120.0 // First floating platform's left edge
	PlatformSpacing   = 240.0 // Horizontal distance between platforms
	PlatformW         = 120.0
	PlatformH         = 16.0
	PlatformBaseY     = 340.0 // First platform height on level 1
	PlatformStepY     = 40.0  // Each successive platform sits this much higher
	PlatformLevelLift = 8.0   // Whole layout rises this much per level
	PlatformMinY      = 60.0  // Platforms never rise above this line

	FloatingPlatforms = 4 // Floating platforms per level
	TreasureCount     = 3 // Treasures sit above the first three platforms

	TreasureSize = 20.0
	TreasureLift = 36.0 // Gap between platform top and treasure

	powerTimeX, powerTimeY     = 200.0, 160.0
	powerDoubleX, powerDoubleY = 520.0, 140.0
	powerInvX, powerInvY       = 820.0, 120.0
)

// Power-up level gating.
const (
	doubleFromLevel = 3 // Double-score appears from level 3 onward
	invFromLevel    = 5 // Invincibility appears from level 5 onward
)

// Generate builds the complete entity set and timer budget for a level.
// It is pure and deterministic: the same levelIndex and config always
// produce an identical layout. Indices below 1 are treated as level 1.
func Generate(levelIndex int, cfg config.PlatformerConfig) LevelData {
	if levelIndex < 1 {
		levelIndex = 1
	}

	lvl := LevelData{
		TimerBudget: cfg.Gameplay.TimerBase - float64(levelIndex-1)*cfg.Gameplay.TimerStepPerLevel,
	}

	// Full-width ground platform.
	lvl.Platforms = append(lvl.Platforms, Platform{
		X: 0,
		Y: cfg.World.GroundY,
		W: cfg.World.Width,
		H: cfg.World.GroundThickness,
	})

	// Floating platforms climb with both platform index and level index.
	for i := 0; i < FloatingPlatforms; i++ {
		x := PlatformStartX + float64(i)*PlatformSpacing
		y := PlatformBaseY - float64(i)*PlatformStepY - float64(levelIndex-1)*PlatformLevelLift
		if y < PlatformMinY {
			y = PlatformMinY
		}

		lvl.Platforms = append(lvl.Platforms, Platform{X: x, Y: y, W: PlatformW, H: PlatformH})

		// A treasure hovers above each platform except the last.
		if i < TreasureCount {
			lvl.Treasures = append(lvl.Treasures, Treasure{
				X: x + PlatformW/2 - TreasureSize/2,
				Y: y - TreasureLift,
				W: TreasureSize,
				H: TreasureSize,
			})
		}
	}

	// Enemies patrol the ground at evenly spaced slots with alternating
	// directions; speed scales linearly with the level index.
	count := 1 + levelIndex/2
	if count > cfg.Enemies.MaxCount {
		count = cfg.Enemies.MaxCount
	}
	speed := cfg.Enemies.BaseSpeed + cfg.Enemies.SpeedPerLevel*float64(levelIndex)

	for i := 0; i < count; i++ {
		cx := cfg.World.Width * float64(i+1) / float64(count+1)
		x := cx - cfg.Enemies.Width/2

		dir := 1.0
		if i%2 == 1 {
			dir = -1.0
		}

		patrolMin := x - cfg.Enemies.PatrolRange
		if patrolMin < 0 {
			patrolMin = 0
		}
		patrolMax := x + cfg.Enemies.PatrolRange
		if maxX := cfg.World.Width - cfg.Enemies.Width; patrolMax > maxX {
			patrolMax = maxX
		}

		lvl.Enemies = append(lvl.Enemies, Enemy{
			X:         x,
			Y:         cfg.World.GroundY - cfg.Enemies.Height,
			W:         cfg.Enemies.Width,
			H:         cfg.Enemies.Height,
			Dir:       dir,
			Speed:     speed,
			PatrolMin: patrolMin,
			PatrolMax: patrolMax,
		})
	}

	// Power-ups are level-gated, each at a fixed world position.
	size := cfg.Powers.Size
	if levelIndex%2 == 0 {
		lvl.PowerUps = append(lvl.PowerUps, PowerUp{
			X: powerTimeX, Y: powerTimeY, W: size, H: size, Type: PowerTime,
		})
	}
	if levelIndex >= doubleFromLevel {
		lvl.PowerUps = append(lvl.PowerUps, PowerUp{
			X: powerDoubleX, Y: powerDoubleY, W: size, H: size, Type: PowerDouble,
		})
	}
	if levelIndex >= invFromLevel {
		lvl.PowerUps = append(lvl.PowerUps, PowerUp{
			X: powerInvX, Y: powerInvY, W: size, H: size, Type: PowerInv,
		})
	}

	return lvl
}
