package gravity

import (
	"fmt"

	"github.com/vovakirdan/gravity-snake/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch {
	case g.err != nil:
		g.renderOverlay(dst, "Invalid configuration", g.err.Error(), core.ColorOrange)
		return
	case g.tooSmall || g.session == nil:
		g.renderOverlay(dst, "Window too small", "Resize to continue", core.ColorWhite)
		return
	}

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)

	dst.DrawBox(0, hudHeight, g.cols+2, g.rows+2, core.ColorGray)

	for _, w := range snap.Walls {
		g.plot(dst, w, 'X', core.ColorRed)
	}
	g.plot(dst, snap.Food, '*', core.ColorYellow)

	// Tail first so the head and neck end up on top
	for i := len(snap.Body) - 1; i > 0; i-- {
		g.plot(dst, snap.Body[i], 'o', core.ColorGreen)
	}
	if len(snap.Body) > 0 {
		g.plot(dst, snap.Body[0], '@', core.ColorBrightGreen)
	}

	switch {
	case snap.State == StateGameOver:
		sub := fmt.Sprintf("Score %d  (%s)  R to restart", snap.Score, snap.Death)
		g.renderOverlay(dst, "Game Over", sub, core.ColorOrange)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue", core.ColorWhite)
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Gravity Snake · %s  Score: %d  Best: %d  Length: %d  Speed: %.2f",
		g.preset.Name, snap.Score, max(g.best, snap.Score), snap.BodyLength, snap.Speed)
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)

	if g.best > 0 && snap.Score > g.best {
		dst.DrawTextColored(len([]rune(hud))+2, 0, "NEW BEST", core.ColorMagenta)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// cellOf maps a simulation point to a screen cell inside the border.
func (g *Game) cellOf(p core.Point) (x, y int) {
	col := core.Clamp(int(p.X()/g.geom.CellWidth), 0, g.cols-1)
	row := core.Clamp(int(p.Y()/g.geom.CellHeight), 0, g.rows-1)
	return 1 + col, hudHeight + 1 + row
}

func (g *Game) plot(dst *core.Screen, p core.Point, r rune, c core.Color) {
	x, y := g.cellOf(p)
	dst.SetCell(x, y, r, c)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, line1, c)
	dst.DrawTextCentered(boxY+3, line2, core.ColorDefault)
}
