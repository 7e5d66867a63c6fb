package platformer

import (
	"strings"
	"testing"

	"github.com/tui-games/relicrun/internal/core"
)

func TestRenderHUDAndWorld(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	if !strings.Contains(dst.Row(0), "Score: 0") {
		t.Errorf("HUD row 0 should show the score, got %q", dst.Row(0))
	}
	if !strings.Contains(dst.Row(0), "Lives: 3") {
		t.Errorf("HUD row 0 should show lives, got %q", dst.Row(0))
	}
	if !strings.Contains(dst.Row(1), "Time:") {
		t.Errorf("HUD row 1 should show the timer, got %q", dst.Row(1))
	}

	groundRow := g.cellY(dst, g.cfg.World.GroundY)
	if !strings.ContainsRune(dst.Row(groundRow), GroundChar) {
		t.Errorf("ground should be drawn on row %d, got %q", groundRow, dst.Row(groundRow))
	}
}

func TestRenderClipsToPlayField(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	dst := core.NewScreen(80, 24)

	// A box poking above the world top maps into the HUD rows before clipping
	g.drawWorldRect(dst, Box{X: 0, Y: -200, W: 100, H: 250}, 'X', core.ColorWhite)

	for y := 0; y < hudRows; y++ {
		if strings.ContainsRune(dst.Row(y), 'X') {
			t.Errorf("HUD row %d should not be overwritten, got %q", y, dst.Row(y))
		}
	}

	drawn := false
	for y := hudRows; y < dst.Height(); y++ {
		if strings.ContainsRune(dst.Row(y), 'X') {
			drawn = true
			break
		}
	}
	if !drawn {
		t.Error("the in-world part of the box should still be drawn")
	}

	// Fully off-field boxes draw nothing
	before := dst.String()
	g.drawWorldRect(dst, Box{X: -500, Y: 100, W: 50, H: 50}, 'Z', core.ColorWhite)
	if dst.String() != before {
		t.Error("a box left of the world should not draw any cells")
	}
}
