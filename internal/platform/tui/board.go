package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// cellWidth is the number of terminal columns per grid cell, which makes
// cells look roughly square.
const cellWidth = 2

const (
	glyphSnake = '█'
	glyphItem  = '▓'
)

// Layout places the board on a screen: a bordered box with the score line
// directly below it.
type Layout struct {
	Box    core.Rect
	ScoreY int
}

// NewLayout centers a gridW x gridH board horizontally on a screen of the
// given width.
func NewLayout(screenW, gridW, gridH int) Layout {
	w := gridW*cellWidth + 2
	h := gridH + 2
	box := core.NewRect(max(0, (screenW-w)/2), 0, w, h)
	return Layout{Box: box, ScoreY: box.Bottom()}
}

// Height returns the number of rows used by the board and score line.
func (l Layout) Height() int {
	return l.ScoreY + 1
}

// Fits reports whether the board, score line and help line fit on a screen
// of the given size.
func (l Layout) Fits(screenW, screenH int) bool {
	screen := core.NewRect(0, 0, screenW, screenH)
	// Bottom-right corner of the box, and the help row below the score
	return screen.Contains(l.Box.Right()-1, l.Box.Bottom()-1) &&
		screen.Contains(l.Box.X, l.Height())
}

// CellOrigin returns the screen coordinates of a grid cell's left column.
func (l Layout) CellOrigin(p snake.Position) (x, y int) {
	return l.Box.X + 1 + p.X*cellWidth, l.Box.Y + 1 + p.Y
}

func (l Layout) fillCell(dst *core.Screen, p snake.Position, r rune, c core.Color) {
	x, y := l.CellOrigin(p)
	for i := range cellWidth {
		dst.SetColored(x+i, y, r, c)
	}
}

// DrawBoard draws the border, the item, the snake and the score.
func DrawBoard(dst *core.Screen, l Layout, snap snake.Snapshot, theme Theme) {
	dst.DrawBox(l.Box, theme.Border)

	if snap.HasItem {
		l.fillCell(dst, snap.Item, glyphItem, theme.Item)
	}

	for i, seg := range snap.Segments {
		color := theme.Snake
		if i == 0 {
			color = theme.Head
		}
		l.fillCell(dst, seg, glyphSnake, color)
	}

	dst.DrawText(l.Box.X+1, l.ScoreY, fmt.Sprintf("Score: %03d", snap.Score), theme.Text)
}

// DrawSummary draws the end-of-game box over the board. The dismiss hint
// is shown only once keys are accepted.
func DrawSummary(dst *core.Screen, l Layout, snap snake.Snapshot, quit, ready bool, theme Theme) {
	title := "Game Over!"
	if quit {
		title = "Quit"
	}
	lines := []string{
		title,
		fmt.Sprintf("Your final score is: %03d", snap.Score),
	}
	if ready {
		lines = append(lines, "Press any key to exit")
	}

	w := 0
	for _, line := range lines {
		w = max(w, len([]rune(line)))
	}
	box := l.Box.Centered(w+4, len(lines)+2)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, theme.Border)
	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawText(x, box.Y+1+i, line, theme.Text)
	}
}

// DrawTooSmall tells the player to enlarge the terminal.
func DrawTooSmall(dst *core.Screen, l Layout, theme Theme) {
	dst.FillRect(dst.Bounds(), ' ', core.ColorDefault)
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", theme.Text)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", l.Box.W, l.Height()+1), theme.Text)
}
