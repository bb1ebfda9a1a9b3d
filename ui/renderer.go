package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
)

const borderPadding = 10 // padding around the playfield

// Renderer draws a session into the raylib window, scaling the grid to
// whatever size the window currently has.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gridWidth    int32
	gridHeight   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) updateDimensions(s *game.Session) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	grid := s.Grid()
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = min(cellW, cellH)

	r.gridWidth = r.cellSize * int32(grid.Width)
	r.gridHeight = r.cellSize * int32(grid.Height)

	// Center the playfield.
	r.offsetX = (r.screenWidth - r.gridWidth) / 2
	r.offsetY = (r.screenHeight - r.gridHeight) / 2
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) cellRect(x, y int) (int32, int32) {
	return r.offsetX + int32(x)*r.cellSize, r.offsetY + int32(y)*r.cellSize
}

// Draw renders one frame: walls, candy, snake, score line, and the
// game-over overlay when the session has ended.
func (r *Renderer) Draw(s *game.Session) {
	r.updateDimensions(s)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for _, w := range s.Walls() {
		px, py := r.cellRect(w.X, w.Y)
		rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.RayWhite)
	}

	candy := s.Candy()
	px, py := r.cellRect(candy.X, candy.Y)
	rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.RayWhite)

	for _, seg := range s.Segments() {
		px, py := r.cellRect(seg.X, seg.Y)
		rl.DrawRectangle(px, py, r.cellSize, r.cellSize, rl.Red)
		rl.DrawRectangleLines(px, py, r.cellSize, r.cellSize, rl.Black)
	}

	fontSize := r.screenHeight / 30
	status := fmt.Sprintf("Score: %d  Best: %d  Speed: %.1f  Length: %d",
		s.Score(), s.Stats().HighScore(), s.Speed(), s.Length())
	rl.DrawText(status, borderPadding, borderPadding/2, fontSize, rl.RayWhite)

	if s.Over() {
		msg := "Game Over! Press R to restart, Q to quit"
		w := rl.MeasureText(msg, fontSize)
		rl.DrawText(msg, (r.screenWidth-w)/2, r.screenHeight/2, fontSize, rl.RayWhite)
	}

	rl.EndDrawing()
}
