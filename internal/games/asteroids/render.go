package asteroids

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	ShipChar     = '▲'
	LaserChar    = '|'
	AsteroidChar = '●'
)

// hudRows is the number of screen rows reserved above the play area.
const hudRows = 1

// Render draws the current game state to the screen. The play area is
// stretched over every row below the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Asteroids first so lasers and the ship stay visible on top.
	for _, kind := range []Kind{KindAsteroid, KindLaser, KindShip} {
		ch, color := glyph(kind)
		for e := range g.store.OfKind(kind) {
			if x, y, ok := g.toScreen(dst, e.Pos); ok {
				dst.SetColored(x, y, ch, color)
			}
		}
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	best := fmt.Sprintf("Best: %d", g.Best())
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(best)-1, 0, best, core.ColorCyan)

	switch {
	case g.phase == PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score), core.ColorBrightRed)
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	}
}

func glyph(k Kind) (rune, core.Color) {
	switch k {
	case KindShip:
		return ShipChar, core.ColorBrightGreen
	case KindLaser:
		return LaserChar, core.ColorBrightYellow
	default:
		return AsteroidChar, core.ColorGray
	}
}

// toScreen maps a world position to a screen cell below the HUD.
func (g *Game) toScreen(dst *core.Screen, p core.Vec2) (int, int, bool) {
	b := g.cfg.Bounds()
	if !b.Contains(p) {
		return 0, 0, false
	}
	cols := dst.Width() - 1
	rows := dst.Height() - hudRows - 1
	if cols < 0 || rows < 0 {
		return 0, 0, false
	}
	x := int(math.Round((p.X - b.Min.X) / b.Width() * float64(cols)))
	y := hudRows + int(math.Round((b.Max.Y-p.Y)/b.Height()*float64(rows)))
	return x, y, true
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, color core.Color) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), color)
	dst.DrawTextCentered(boxY+1, title, color)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
