package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
// Kept in sync with defaults/platformer.yaml; used as a last-resort
// fallback if the embedded YAML fails to parse.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			Width:           1000,
			Height:          480,
			GroundY:         440,
			GroundThickness: 40,
		},
		Physics: PhysicsConfig{
			Gravity:      0.6,
			MoveSpeed:    4.0,
			JumpImpulse:  -12.0,
			MaxFallSpeed: 14.0,
		},
		Player: PlayerConfig{
			SpawnX: 40,
			SpawnY: 360,
			Width:  30,
			Height: 40,
		},
		Enemies: EnemyConfig{
			Width:         32,
			Height:        32,
			BaseSpeed:     1.0,
			SpeedPerLevel: 0.4,
			PatrolRange:   90,
			MaxCount:      4,
		},
		Powers: PowerConfig{
			Size:           24,
			TimeBonus:      10,
			DoubleDuration: 8,
			InvDuration:    6,
		},
		Gameplay: GameplayConfig{
			Lives:             3,
			MaxLevel:          5,
			TreasureValue:     100,
			TimerBase:         60,
			TimerStepPerLevel: 6,
			InterludeTicks:    90,
			EndlessTimerFloor: 15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				TimerReduction:  0,
			},
		},
	}
}
