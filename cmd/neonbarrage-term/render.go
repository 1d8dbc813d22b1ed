package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"neonbarrage/game"
)

// hudRows is the number of terminal rows reserved above the play area
const hudRows = 2

var (
	styleDefault  = tcell.StyleDefault
	styleNeon     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 255))
	styleShot     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 0)).Bold(true)
	styleParticle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 0))
	styleGameOver = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 102)).Bold(true)
)

// patternStyles maps each enemy projectile variant to its terminal style
var patternStyles = map[game.PatternKind]tcell.Style{
	game.PatternLinear: tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 255)),
	game.PatternWave:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 102, 255)),
	game.PatternCircle: tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 255)),
}

// viewport maps play-area coordinates onto the terminal grid
type viewport struct {
	cols, rows    int
	width, height float64
}

func newViewport(screenCols, screenRows int, config game.Config) viewport {
	return viewport{
		cols:   max(screenCols, 1),
		rows:   max(screenRows-hudRows, 1),
		width:  config.Width,
		height: config.Height,
	}
}

// cell returns the terminal cell covering (x, y)
func (v viewport) cell(x, y float64) (int, int) {
	col := int(x / v.width * float64(v.cols))
	row := int(y / v.height * float64(v.rows))
	col = min(max(col, 0), v.cols-1)
	row = min(max(row, 0), v.rows-1)
	return col, row + hudRows
}

// draw renders one snapshot
func draw(screen tcell.Screen, v viewport, snap game.Snapshot) {
	screen.Clear()

	for _, e := range snap.EnemyProjectiles {
		style := patternStyles[e.Kind]
		for _, t := range e.Trail {
			col, row := v.cell(t.X, t.Y)
			screen.SetContent(col, row, '·', nil, style.Dim(true))
		}
	}
	for _, p := range snap.Particles {
		if p.Alpha < 0.3 {
			continue
		}
		col, row := v.cell(p.X, p.Y)
		screen.SetContent(col, row, '*', nil, styleParticle)
	}
	for _, e := range snap.EnemyProjectiles {
		col, row := v.cell(e.X, e.Y)
		screen.SetContent(col, row, '●', nil, patternStyles[e.Kind])
	}
	for _, s := range snap.PlayerProjectiles {
		col, row := v.cell(s.X+s.Width/2, s.Y+s.Height/2)
		screen.SetContent(col, row, '|', nil, styleShot)
	}
	if snap.HasPlayer {
		drawPlayer(screen, v, snap.Player)
	}

	drawHUD(screen, v, snap)
	drawOverlay(screen, v, snap)
	screen.Show()
}

// drawPlayer fills every cell the player's box covers
func drawPlayer(screen tcell.Screen, v viewport, p game.PlayerView) {
	c0, r0 := v.cell(p.X, p.Y)
	c1, r1 := v.cell(p.X+p.Width, p.Y+p.Height)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			ch := '█'
			if row == r0 {
				ch = '▲'
			}
			screen.SetContent(col, row, ch, nil, styleNeon)
		}
	}
}

// drawHUD draws the score line and both gauges
func drawHUD(screen tcell.Screen, v viewport, snap game.Snapshot) {
	if snap.State == game.StateNotStarted {
		return
	}
	const barWidth = 20
	line := fmt.Sprintf("SCORE %-6d LEVEL %-3d CHARGE %s  NEXT %s",
		snap.DisplayScore(), snap.Level,
		bar(snap.Gauge, barWidth), bar(snap.LevelProgress, barWidth))
	drawString(screen, 0, 0, line, styleNeon)
	drawString(screen, 0, 1, strings.Repeat("─", v.cols), styleNeon.Dim(true))
}

// bar renders a fraction as a fixed-width text gauge
func bar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// drawOverlay draws the menu, upgrade and game-over text
func drawOverlay(screen tcell.Screen, v viewport, snap game.Snapshot) {
	mid := hudRows + v.rows/2

	switch snap.State {
	case game.StateNotStarted:
		drawCentered(screen, v.cols, mid-2, "NEON BARRAGE", styleNeon.Bold(true))
		drawCentered(screen, v.cols, mid, "ENTER to start, arrows/hjkl move, SPACE fires, q quits", styleNeon)

	case game.StateUpgradePause:
		a, b := game.GetUpgradeInfo(game.UpgradeA), game.GetUpgradeInfo(game.UpgradeB)
		drawCentered(screen, v.cols, mid-2, fmt.Sprintf("LEVEL %d", snap.Level), styleNeon.Bold(true))
		drawCentered(screen, v.cols, mid, fmt.Sprintf("[1] %s: %s", a.Title, a.Detail), styleNeon)
		drawCentered(screen, v.cols, mid+1, fmt.Sprintf("[2] %s: %s", b.Title, b.Detail), styleNeon)

	case game.StateGameOver:
		drawCentered(screen, v.cols, mid-2, "GAME OVER", styleGameOver)
		drawCentered(screen, v.cols, mid, fmt.Sprintf("SCORE %d  LEVEL %d", snap.DisplayScore(), snap.Level), styleGameOver)
		drawCentered(screen, v.cols, mid+2, "ENTER or r to restart", styleNeon)
	}
}

func drawCentered(screen tcell.Screen, cols, row int, s string, style tcell.Style) {
	col := (cols - len([]rune(s))) / 2
	drawString(screen, max(col, 0), row, s, style)
}

func drawString(screen tcell.Screen, col, row int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(col, row, r, nil, style)
		col++
	}
}
