package platformer

import (
	"testing"

	"github.com/tui-games/relicrun/internal/core"
)

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestResolveLandingFromAbove(t *testing.T) {
	lvl := LevelData{
		Platforms: []Platform{{X: 100, Y: 200, W: 120, H: 16}},
	}

	// Player fell 6 units this tick, bottom now pokes 4 into the platform
	p := &Player{X: 140, Y: 164, W: 30, H: 40, VY: 6}

	events := Resolve(p, &lvl, ActivePower{}, 100, 1)

	if !p.OnGround {
		t.Error("player should be grounded after landing")
	}
	if p.VY != 0 {
		t.Errorf("VY should be zeroed on landing, got %v", p.VY)
	}
	if p.Y != 160 {
		t.Errorf("player should snap onto the platform top, got Y=%v", p.Y)
	}
	if countEvents(events, core.EventLanded) != 1 {
		t.Errorf("expected one landed event, got %d", countEvents(events, core.EventLanded))
	}
}

func TestResolveSideOverlapDoesNotGround(t *testing.T) {
	lvl := LevelData{
		Platforms: []Platform{{X: 100, Y: 200, W: 120, H: 16}},
	}

	// Player moved sideways into the platform; its bottom was already
	// below the platform top on the previous tick
	p := &Player{X: 90, Y: 190, W: 30, H: 40, VY: 0}

	events := Resolve(p, &lvl, ActivePower{}, 100, 1)

	if p.OnGround {
		t.Error("side overlap should not ground the player")
	}
	if p.Y != 190 {
		t.Errorf("side overlap should not move the player, got Y=%v", p.Y)
	}
	if countEvents(events, core.EventLanded) != 0 {
		t.Error("side overlap should not emit a landed event")
	}
}

func TestResolveLandedEventOnlyOnTransition(t *testing.T) {
	lvl := LevelData{
		Platforms: []Platform{{X: 100, Y: 200, W: 120, H: 16}},
	}

	p := &Player{X: 140, Y: 164, W: 30, H: 40, VY: 6}

	events := Resolve(p, &lvl, ActivePower{}, 100, 1)
	if countEvents(events, core.EventLanded) != 1 {
		t.Fatal("first resolution should emit a landed event")
	}

	// Still standing on the platform next tick
	p.Y = 160.1
	p.VY = 0.6
	events = Resolve(p, &lvl, ActivePower{}, 100, 1)
	if countEvents(events, core.EventLanded) != 0 {
		t.Error("staying grounded should not re-emit the landed event")
	}
	if !p.OnGround {
		t.Error("player should remain grounded")
	}
}

func TestResolveStrictOverlap(t *testing.T) {
	// Boxes sharing only an edge do not overlap
	lvl := LevelData{
		Treasures: []Treasure{{X: 130, Y: 160, W: 20, H: 20}},
	}

	p := &Player{X: 100, Y: 160, W: 30, H: 40} // Right edge exactly at treasure left edge

	events := Resolve(p, &lvl, ActivePower{}, 100, 1)
	if len(events) != 0 {
		t.Errorf("edge contact should produce no events, got %v", events)
	}
	if lvl.Treasures[0].Collected {
		t.Error("edge contact should not collect the treasure")
	}
}

func TestResolveTreasureCollectedOnce(t *testing.T) {
	lvl := LevelData{
		Treasures: []Treasure{{X: 110, Y: 170, W: 20, H: 20}},
	}

	p := &Player{X: 100, Y: 160, W: 30, H: 40}

	events := Resolve(p, &lvl, ActivePower{}, 100, 1)
	if countEvents(events, core.EventCollected) != 1 {
		t.Fatal("overlap should collect the treasure")
	}
	if events[0].Value != 100 {
		t.Errorf("treasure value = %d, want 100", events[0].Value)
	}

	// Same overlap next tick collects nothing
	events = Resolve(p, &lvl, ActivePower{}, 100, 1)
	if countEvents(events, core.EventCollected) != 0 {
		t.Error("collected treasure should not be collected again")
	}
}

func TestResolveDoubleScorePower(t *testing.T) {
	lvl := LevelData{
		Treasures: []Treasure{{X: 110, Y: 170, W: 20, H: 20}},
	}

	p := &Player{X: 100, Y: 160, W: 30, H: 40}

	events := Resolve(p, &lvl, ActivePower{Double: true, EndTime: 100}, 100, 1)
	if countEvents(events, core.EventCollected) != 1 {
		t.Fatal("overlap should collect the treasure")
	}
	if events[0].Value != 200 {
		t.Errorf("doubled treasure value = %d, want 200", events[0].Value)
	}
}

func TestResolveEnemyContactSingleHit(t *testing.T) {
	lvl := LevelData{
		Enemies: []Enemy{
			{X: 100, Y: 160, W: 32, H: 32},
			{X: 110, Y: 160, W: 32, H: 32},
		},
	}

	p := &Player{X: 100, Y: 160, W: 30, H: 40}

	events := Resolve(p, &lvl, ActivePower{}, 100, 1)
	if countEvents(events, core.EventPlayerHit) != 1 {
		t.Errorf("overlapping two enemies should emit one hit, got %d", countEvents(events, core.EventPlayerHit))
	}
}

func TestResolveInvincibilityIgnoresEnemies(t *testing.T) {
	lvl := LevelData{
		Enemies: []Enemy{{X: 100, Y: 160, W: 32, H: 32}},
	}

	p := &Player{X: 100, Y: 160, W: 30, H: 40}

	events := Resolve(p, &lvl, ActivePower{Inv: true, EndTime: 100}, 100, 1)
	if countEvents(events, core.EventPlayerHit) != 0 {
		t.Error("invincible player should not register enemy hits")
	}
	if len(lvl.Enemies) != 1 {
		t.Error("enemy should survive contact")
	}
}

func TestResolvePowerUpPickup(t *testing.T) {
	lvl := LevelData{
		PowerUps: []PowerUp{{X: 110, Y: 170, W: 24, H: 24, Type: PowerInv}},
	}

	p := &Player{X: 100, Y: 160, W: 30, H: 40}

	events := Resolve(p, &lvl, ActivePower{}, 100, 1)
	if countEvents(events, core.EventPowerActivated) != 1 {
		t.Fatal("overlap should pick up the power-up")
	}
	if events[0].Value != int(PowerInv) {
		t.Errorf("power event value = %d, want %d", events[0].Value, int(PowerInv))
	}
	if !lvl.PowerUps[0].Picked {
		t.Error("power-up should be marked picked")
	}

	events = Resolve(p, &lvl, ActivePower{}, 100, 1)
	if countEvents(events, core.EventPowerActivated) != 0 {
		t.Error("picked power-up should not trigger again")
	}
}

func TestResolveLandingAndCollectionSameTick(t *testing.T) {
	lvl := LevelData{
		Platforms: []Platform{{X: 100, Y: 200, W: 120, H: 16}},
		Treasures: []Treasure{{X: 140, Y: 170, W: 20, H: 20}},
	}

	// Landing snap puts the player's box over the treasure
	p := &Player{X: 135, Y: 164, W: 30, H: 40, VY: 6}

	events := Resolve(p, &lvl, ActivePower{}, 100, 1)
	if countEvents(events, core.EventLanded) != 1 {
		t.Error("expected a landed event")
	}
	if countEvents(events, core.EventCollected) != 1 {
		t.Error("expected a collected event in the same tick")
	}
}
