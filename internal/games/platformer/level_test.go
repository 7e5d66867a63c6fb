package platformer

import (
	"reflect"
	"testing"

	"github.com/tui-games/relicrun/internal/config"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	for level := 1; level <= 8; level++ {
		a := Generate(level, cfg)
		b := Generate(level, cfg)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("level %d: repeated generation differs", level)
		}
	}
}

func TestGenerateLayoutCounts(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	lvl := Generate(1, cfg)

	// Ground plus the floating platforms
	if got, want := len(lvl.Platforms), FloatingPlatforms+1; got != want {
		t.Errorf("platforms = %d, want %d", got, want)
	}

	if got, want := len(lvl.Treasures), TreasureCount; got != want {
		t.Errorf("treasures = %d, want %d", got, want)
	}

	if lvl.RemainingTreasures() != TreasureCount {
		t.Errorf("RemainingTreasures = %d, want %d", lvl.RemainingTreasures(), TreasureCount)
	}
}

func TestGenerateEnemyCount(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	for level := 1; level <= 10; level++ {
		want := 1 + level/2
		if want > cfg.Enemies.MaxCount {
			want = cfg.Enemies.MaxCount
		}

		lvl := Generate(level, cfg)
		if len(lvl.Enemies) != want {
			t.Errorf("level %d: enemies = %d, want %d", level, len(lvl.Enemies), want)
		}
	}
}

func TestGenerateEnemySpeedScaling(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	for level := 1; level <= 6; level++ {
		lvl := Generate(level, cfg)
		want := cfg.Enemies.BaseSpeed + cfg.Enemies.SpeedPerLevel*float64(level)
		for i, e := range lvl.Enemies {
			if e.Speed != want {
				t.Errorf("level %d enemy %d: speed = %v, want %v", level, i, e.Speed, want)
			}
		}
	}
}

func TestGenerateEnemiesPatrolWithinWorld(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	for level := 1; level <= 10; level++ {
		lvl := Generate(level, cfg)
		for i, e := range lvl.Enemies {
			if e.PatrolMin < 0 {
				t.Errorf("level %d enemy %d: PatrolMin %v below world", level, i, e.PatrolMin)
			}
			if e.PatrolMax > cfg.World.Width-e.W {
				t.Errorf("level %d enemy %d: PatrolMax %v beyond world", level, i, e.PatrolMax)
			}
			if e.PatrolMin > e.X || e.X > e.PatrolMax {
				t.Errorf("level %d enemy %d: spawn %v outside patrol [%v, %v]", level, i, e.X, e.PatrolMin, e.PatrolMax)
			}
		}
	}
}

func TestGeneratePowerUpGating(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	countTypes := func(lvl LevelData) map[PowerType]int {
		m := make(map[PowerType]int)
		for _, pu := range lvl.PowerUps {
			m[pu.Type]++
		}
		return m
	}

	tests := []struct {
		level             int
		time, double, inv int
	}{
		{1, 0, 0, 0},
		{2, 1, 0, 0},
		{3, 0, 1, 0},
		{4, 1, 1, 0},
		{5, 0, 1, 1},
		{6, 1, 1, 1},
	}

	for _, tt := range tests {
		m := countTypes(Generate(tt.level, cfg))
		if m[PowerTime] != tt.time || m[PowerDouble] != tt.double || m[PowerInv] != tt.inv {
			t.Errorf("level %d: powers time=%d double=%d inv=%d, want %d/%d/%d",
				tt.level, m[PowerTime], m[PowerDouble], m[PowerInv], tt.time, tt.double, tt.inv)
		}
	}
}

func TestGenerateTimerBudget(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	for level := 1; level <= 5; level++ {
		lvl := Generate(level, cfg)
		want := cfg.Gameplay.TimerBase - float64(level-1)*cfg.Gameplay.TimerStepPerLevel
		if lvl.TimerBudget != want {
			t.Errorf("level %d: timer budget = %v, want %v", level, lvl.TimerBudget, want)
		}
	}
}

func TestGenerateLevelBelowOne(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()

	if !reflect.DeepEqual(Generate(0, cfg), Generate(1, cfg)) {
		t.Error("level 0 should generate the same layout as level 1")
	}
}

func TestGenerateTreasuresAbovePlatforms(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	lvl := Generate(1, cfg)

	for i, tr := range lvl.Treasures {
		plat := lvl.Platforms[i+1] // Platforms[0] is the ground
		if tr.Box().Bottom() >= plat.Y {
			t.Errorf("treasure %d at y=%v not above platform top y=%v", i, tr.Y, plat.Y)
		}
		if tr.X < plat.X || tr.Box().Right() > plat.X+plat.W {
			t.Errorf("treasure %d not horizontally within its platform", i)
		}
	}
}
