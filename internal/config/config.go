// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

// PlatformerConfig contains all tunable parameters for the platformer game.
type PlatformerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Powers     PowerConfig      `yaml:"powers"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the dimensions of the simulated world in world units.
// World units are independent of the terminal cell grid; the renderer
// scales them to the screen.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GroundY         float64 `yaml:"ground_y"`
	GroundThickness float64 `yaml:"ground_thickness"`
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Added to vy each tick
	MoveSpeed    float64 `yaml:"move_speed"`     // Horizontal units per tick
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Negative = upward
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal fall velocity
}

// PlayerConfig defines the player's size and spawn point.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig defines enemy size, speed scaling and patrol behavior.
type EnemyConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BaseSpeed     float64 `yaml:"base_speed"`      // Units per tick at level 0
	SpeedPerLevel float64 `yaml:"speed_per_level"` // Linear increase per level
	PatrolRange   float64 `yaml:"patrol_range"`    // Half-width of patrol span
	MaxCount      int     `yaml:"max_count"`
}

// PowerConfig defines power-up effect parameters.
type PowerConfig struct {
	Size           float64 `yaml:"size"`            // Pickup box side length
	TimeBonus      float64 `yaml:"time_bonus"`      // Seconds added by a time power
	DoubleDuration float64 `yaml:"double_duration"` // Seconds of double score
	InvDuration    float64 `yaml:"inv_duration"`    // Seconds of invincibility
}

// GameplayConfig defines session-level rules.
type GameplayConfig struct {
	Lives             int     `yaml:"lives"`
	MaxLevel          int     `yaml:"max_level"`
	TreasureValue     int     `yaml:"treasure_value"`
	TimerBase         float64 `yaml:"timer_base"`           // Level 1 budget in seconds
	TimerStepPerLevel float64 `yaml:"timer_step_per_level"` // Budget shrink per level
	InterludeTicks    int     `yaml:"interlude_ticks"`      // Pause between level attempts
	EndlessTimerFloor float64 `yaml:"endless_timer_floor"`  // Minimum budget in endless mode
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Level/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra enemy speed at max difficulty
	TimerReduction  float64 `yaml:"timer_reduction"`  // Seconds removed from budget at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
