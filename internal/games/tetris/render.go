package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellW     = 2  // terminal columns per court cell
	panelW    = 16 // side panel width including its border
	previewSz = 4  // preview box holds any piece's 4x4 mask
)

var (
	blockGlyph = []rune("██")
	ghostGlyph = []rune("░░")
)

// pieceColors maps piece IDs to display colors.
var pieceColors = map[byte]core.Color{
	'i': core.ColorCyan,
	'j': core.ColorBlue,
	'l': core.ColorOrange,
	'o': core.ColorYellow,
	's': core.ColorGreen,
	't': core.ColorMagenta,
	'z': core.ColorRed,
}

// PieceColor returns the display color of a piece type.
func PieceColor(t *engine.PieceType) core.Color {
	if t == nil {
		return core.ColorDefault
	}
	return pieceColors[t.ID]
}

// layout positions the court and the side panel on the screen.
type layout struct {
	court core.Rect // including border
	panel core.Rect
	fits  bool
}

func newLayout(nx, ny, screenW, screenH int) layout {
	court := core.NewRect(0, 0, nx*cellW+2, ny+2)
	totalW := court.W + 1 + panelW
	totalH := max(court.H, 14)

	x := (screenW - totalW) / 2
	y := (screenH - totalH) / 2
	court.X, court.Y = x, y

	return layout{
		court: court,
		panel: core.NewRect(court.Right()+1, y, panelW, totalH),
		fits:  screenW >= totalW && screenH >= totalH,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderCourt(dst)
	g.renderPanel(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.layout.panel.Right()-g.layout.court.X, g.layout.panel.H))
}

// cellOrigin returns the screen position of court cell (x, y).
func (g *Game) cellOrigin(x, y int) (int, int) {
	return g.layout.court.X + 1 + x*cellW, g.layout.court.Y + 1 + y
}

func (g *Game) drawCell(dst *core.Screen, x, y int, glyph []rune, c core.Color) {
	sx, sy := g.cellOrigin(x, y)
	for i, r := range glyph {
		dst.SetColored(sx+i, sy, r, c)
	}
}

func (g *Game) renderCourt(dst *core.Screen) {
	border := core.ColorGray
	if g.eng.Mirrored() {
		border = core.ColorBrightMagenta
	}
	dst.DrawBoxColored(g.layout.court, border)

	grid := g.eng.Grid()
	for y := range grid.Height() {
		for x := range grid.Width() {
			if t := grid.Get(x, y); t != nil {
				g.drawCell(dst, x, y, blockGlyph, PieceColor(t))
			}
		}
	}

	if g.eng.State() != engine.StatePlaying && g.eng.State() != engine.StatePaused {
		return
	}

	cur := g.eng.Current()
	color := PieceColor(cur.Type)

	ghost := cur
	ghost.Y = g.eng.GhostY()
	if ghost.Y != cur.Y {
		for _, c := range ghost.Cells() {
			g.drawCell(dst, c.X, c.Y, ghostGlyph, color)
		}
	}
	for _, c := range cur.Cells() {
		if grid.InBounds(c.X, c.Y) {
			g.drawCell(dst, c.X, c.Y, blockGlyph, color)
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen) {
	p := g.layout.panel
	x := p.X + 1

	dst.DrawTextColored(x, p.Y, g.Title(), core.ColorBrightWhite)

	// Next piece preview.
	box := core.NewRect(p.X, p.Y+1, previewSz*cellW+2, previewSz+2)
	dst.DrawBoxColored(box, core.ColorGray)
	dst.DrawText(box.X+2, box.Y, "next")
	next := g.eng.Next()
	for _, c := range engine.OccupiedCells(next.Type, engine.DirUp) {
		for i, r := range blockGlyph {
			dst.SetColored(box.X+1+c.X*cellW+i, box.Y+1+c.Y, r, PieceColor(next.Type))
		}
	}

	y := box.Bottom()
	dst.DrawText(x, y, fmt.Sprintf("Score %7d", g.eng.VisualScore()))
	dst.DrawText(x, y+1, fmt.Sprintf("Rows  %7d", g.eng.Rows()))
	if g.rules.Progression.LevelEvery > 0 {
		dst.DrawText(x, y+2, fmt.Sprintf("Level %7d", g.eng.Level()))
	}
	dst.DrawTextColored(x, y+3, fmt.Sprintf("High  %7d", max(g.highScore, g.eng.VisualScore())), core.ColorGray)

	if g.eng.Bonus() {
		dst.DrawTextColored(x, y+5, "BONUS STAGE", core.ColorBrightYellow)
	}
	if g.eng.Mirrored() {
		dst.DrawTextColored(x, y+6, "MIRRORED", core.ColorBrightMagenta)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	var lines []string
	color := core.ColorBrightWhite

	switch g.eng.State() {
	case engine.StateIdle:
		lines = []string{"Press SPACE", "to play"}
	case engine.StatePaused:
		lines = []string{"PAUSED", "P to resume"}
		if g.rules.Progression.LevelEvery > 0 && g.eng.Level() > 0 {
			lines = append([]string{fmt.Sprintf("LEVEL %d", g.eng.Level())}, lines...)
		}
		color = core.ColorBrightYellow
	case engine.StateGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("%d pts", g.eng.Score()), "R to restart"}
		color = core.ColorBrightRed
	default:
		return
	}

	c := g.layout.court
	top := c.Y + (c.H-len(lines))/2
	for i, line := range lines {
		x := c.X + (c.W-len(line))/2
		dst.DrawTextColored(x, top+i, line, color)
	}
}
