package platformer

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/engine"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	LavaChar   = '▒'
	CoinChar   = '●'
	PlayerChar = '█'
	HUDSep     = '─'
)

const (
	hudRows  = 2 // Status line plus separator
	tileCols = 2 // Terminal cells are about twice as tall as wide
)

func (g *Game) viewport() Viewport {
	return Viewport{
		W: float64(g.runtime.ScreenW / tileCols),
		H: float64(g.runtime.ScreenH - hudRows),
	}
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.loadErr != nil {
		g.drawCenteredBox(dst, "NO LEVELS", g.loadErr.Error(), core.ColorRed)
		return
	}

	g.renderHUD(dst)
	g.renderTiles(dst)
	g.renderActors(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the level name, coins, lives and score.
func (g *Game) renderHUD(dst *core.Screen) {
	lvl := g.list[g.levelIndex]
	title := fmt.Sprintf("%d/%d %s", g.levelIndex+1, len(g.list), lvl.Name)
	dst.DrawTextColor(1, 0, title, core.ColorBrightWhite)

	coins := fmt.Sprintf("Coins: %d", g.level.CoinsLeft())
	dst.DrawTextCenteredColor(0, coins, core.ColorYellow)

	lives := fmt.Sprintf("Lives: %d", g.lives)
	if g.mode == ModePractice {
		lives = "Lives: ∞"
	}
	right := fmt.Sprintf("%s  Score: %d", lives, g.score)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(right)-1, 0, right)

	dst.DrawHLine(0, 1, dst.Width(), HUDSep, core.ColorDarkGray)
	if g.notice != "" && g.tickCount < g.noticeUntil {
		dst.DrawTextCenteredColor(1, " "+g.notice+" ", core.ColorCyan)
	}
}

// origin returns the screen cell of level tile (0, 0).
func (g *Game) origin() (int, int) {
	x := -int(math.Round(g.camera.Left * tileCols))
	y := -int(math.Round(g.camera.Top)) + hudRows
	return x, y
}

// renderTiles draws the static grid inside the viewport.
func (g *Game) renderTiles(dst *core.Screen) {
	ox, oy := g.origin()
	for ty := 0; ty < g.level.Height(); ty++ {
		sy := oy + ty
		if sy < hudRows || sy >= dst.Height() {
			continue
		}
		for tx := 0; tx < g.level.Width(); tx++ {
			var ch rune
			var color core.Color
			switch g.level.Tile(tx, ty) {
			case engine.TileWall:
				ch, color = WallChar, core.ColorGray
			case engine.TileLava:
				ch, color = LavaChar, core.ColorRed
			default:
				continue
			}
			sx := ox + tx*tileCols
			for i := 0; i < tileCols; i++ {
				dst.SetWithColor(sx+i, sy, ch, color)
			}
		}
	}
}

// renderActors draws lava, coins and the player, player last.
func (g *Game) renderActors(dst *core.Screen) {
	for _, a := range g.level.Actors() {
		switch a.Kind() {
		case engine.KindLava:
			g.fillActor(dst, a, LavaChar, core.ColorOrange)
		case engine.KindCoin:
			x, y := g.cellOf(a.Pos().Plus(a.Size().Scale(0.5)))
			g.setView(dst, x, y, CoinChar, core.ColorBrightYellow)
		}
	}

	color := core.ColorCyan
	switch g.level.Status() {
	case engine.StatusWon:
		color = core.ColorBrightYellow
	case engine.StatusLost:
		color = core.ColorBrightRed
	}
	g.fillActor(dst, g.level.Player(), PlayerChar, color)
}

// cellOf maps a level position to a screen cell.
func (g *Game) cellOf(p engine.Vec) (int, int) {
	ox, oy := g.origin()
	return ox + int(math.Floor(p.X*tileCols)), oy + int(math.Floor(p.Y))
}

// fillActor covers the cells whose centers fall inside the actor.
// Every actor gets at least one cell.
func (g *Game) fillActor(dst *core.Screen, a engine.Actor, ch rune, color core.Color) {
	ox, oy := g.origin()
	pos, size := a.Pos(), a.Size()

	x0 := int(math.Round(pos.X * tileCols))
	x1 := int(math.Round((pos.X + size.X) * tileCols))
	y0 := int(math.Round(pos.Y))
	y1 := int(math.Round(pos.Y + size.Y))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.setView(dst, ox+x, oy+y, ch, color)
		}
	}
}

// setView writes a cell only inside the level viewport.
func (g *Game) setView(dst *core.Screen, x, y int, ch rune, color core.Color) {
	if y < hudRows {
		return
	}
	dst.SetWithColor(x, y, ch, color)
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorWhite)
		return
	case StateGameOver:
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", sub, core.ColorRed)
		return
	case StateWin:
		sub := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", sub, core.ColorGreen)
		return
	}

	switch g.level.Status() {
	case engine.StatusWon:
		dst.DrawTextCenteredColor(dst.Height()-1, " Level clear! ", core.ColorBrightYellow)
	case engine.StatusLost:
		dst.DrawTextCenteredColor(dst.Height()-1, " Ouch! ", core.ColorBrightRed)
	default:
		if g.levelTicks < 3*g.runtime.TickRate {
			if hint := g.list[g.levelIndex].Metadata["hint"]; hint != "" {
				dst.DrawTextCenteredColor(dst.Height()-1, hint, core.ColorDarkGray)
			}
		}
	}
}

// drawCenteredBox draws a message box in the middle of the screen.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string, color core.Color) {
	w := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	box := dst.Bounds().Centered(w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	dst.DrawTextCenteredColor(box.Y+1, title, color)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
