package platformer

import (
	"fmt"

	"github.com/tui-games/relicrun/internal/core"
)

// hudRows is the number of screen rows reserved above the play area.
const hudRows = 2

// Render draws the current game state to the screen. World coordinates are
// scaled down to whatever cell grid the platform provides; the simulation
// itself never sees screen dimensions.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderPlatforms(dst)
	g.renderTreasures(dst)
	g.renderPowerUps(dst)
	g.renderEnemies(dst)
	g.renderPlayer(dst)
	g.renderOverlay(dst)
}

// cellX maps a world X coordinate to a screen column.
func (g *Game) cellX(dst *core.Screen, wx float64) int {
	return int(wx * float64(dst.Width()) / g.cfg.World.Width)
}

// cellY maps a world Y coordinate to a screen row below the HUD.
func (g *Game) cellY(dst *core.Screen, wy float64) int {
	rows := dst.Height() - hudRows
	return hudRows + int(wy*float64(rows)/g.cfg.World.Height)
}

// playField returns the screen region below the HUD in cell space.
func playField(dst *core.Screen) core.Rect {
	return core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
}

// drawWorldRect draws a world-space rectangle as colored cells, always at
// least one cell so thin entities stay visible.
func (g *Game) drawWorldRect(dst *core.Screen, b Box, glyph rune, c core.Color) {
	x0 := g.cellX(dst, b.X)
	y0 := g.cellY(dst, b.Y)
	x1 := g.cellX(dst, b.X+b.W)
	y1 := g.cellY(dst, b.Y+b.H)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	cells := core.NewRect(x0, y0, x1-x0, y1-y0)
	field := playField(dst)
	if !cells.Intersects(field) {
		return
	}

	for y := core.Max(cells.Y, field.Y); y < core.Min(cells.Bottom(), field.Bottom()); y++ {
		for x := core.Max(cells.X, field.X); x < core.Min(cells.Right(), field.Right()); x++ {
			dst.SetColored(x, y, glyph, c)
		}
	}
}

// renderHUD draws score, lives, level, timer and the active power.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextCentered(0, livesText)

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.levelIndex)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex, g.cfg.Gameplay.MaxLevel)
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	timer := g.timer
	if timer < 0 {
		timer = 0
	}
	timerText := fmt.Sprintf("Time: %d", int(timer))
	timerColor := core.ColorDefault
	if timer < 10 {
		timerColor = core.ColorBrightRed
	}
	dst.DrawTextColored(1, 1, timerText, timerColor)

	if effects := g.buildEffectsString(); effects != "" {
		dst.DrawTextColored(dst.Width()-len(effects)-1, 1, effects, core.ColorBrightMagenta)
	}
}

// buildEffectsString creates a compact active-power display.
func (g *Game) buildEffectsString() string {
	remaining := int(g.active.EndTime - g.clock)
	if remaining < 0 {
		remaining = 0
	}
	switch {
	case g.active.Double:
		return fmt.Sprintf("2x SCORE(%d)", remaining)
	case g.active.Inv:
		return fmt.Sprintf("INVINCIBLE(%d)", remaining)
	}
	return ""
}

// renderPlatforms draws the ground and floating platforms.
func (g *Game) renderPlatforms(dst *core.Screen) {
	for i := range g.level.Platforms {
		plat := &g.level.Platforms[i]
		glyph := PlatformChar
		if plat.Y >= g.cfg.World.GroundY {
			glyph = GroundChar
		}
		g.drawWorldRect(dst, plat.Box(), glyph, core.ColorWhite)
	}
}

// renderTreasures draws uncollected treasures.
func (g *Game) renderTreasures(dst *core.Screen) {
	for i := range g.level.Treasures {
		tr := &g.level.Treasures[i]
		if tr.Collected {
			continue
		}
		x := g.cellX(dst, tr.X+tr.W/2)
		y := g.cellY(dst, tr.Y+tr.H/2)
		if playField(dst).Contains(x, y) {
			dst.SetColored(x, y, TreasureChar, core.ColorBrightYellow)
		}
	}
}

// renderPowerUps draws unpicked power-ups using their letter glyphs.
func (g *Game) renderPowerUps(dst *core.Screen) {
	for i := range g.level.PowerUps {
		pu := &g.level.PowerUps[i]
		if pu.Picked {
			continue
		}
		x := g.cellX(dst, pu.X+pu.W/2)
		y := g.cellY(dst, pu.Y+pu.H/2)
		if playField(dst).Contains(x, y) {
			dst.SetColored(x, y, pu.Type.Glyph(), core.ColorBrightMagenta)
		}
	}
}

// renderEnemies draws patrolling enemies.
func (g *Game) renderEnemies(dst *core.Screen) {
	for i := range g.level.Enemies {
		g.drawWorldRect(dst, g.level.Enemies[i].Box(), EnemyChar, core.ColorBrightRed)
	}
}

// renderPlayer draws the player, tinted while a power is active.
func (g *Game) renderPlayer(dst *core.Screen) {
	c := core.ColorBrightCyan
	switch {
	case g.active.Inv:
		c = core.ColorBrightWhite
	case g.active.Double:
		c = core.ColorBrightYellow
	}
	g.drawWorldRect(dst, g.player.Box(), PlayerChar, c)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateLifeLost:
		subtitle := fmt.Sprintf("Lives left: %d", g.lives)
		g.drawCenteredBox(dst, "OUCH!", subtitle)

	case StateLevelClear:
		subtitle := fmt.Sprintf("On to level %d", g.levelIndex+1)
		g.drawCenteredBox(dst, "LEVEL CLEAR!", subtitle)

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.finalScore)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.finalScore)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	cx, cy := core.NewRect(0, 0, dst.Width(), dst.Height()).Center()
	boxX := cx - boxW/2
	boxY := cy - boxH/2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
