package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

const (
	windowTitle  = "Snake"
	windowWidth  = 600
	windowHeight = 640
	drawFPS      = 60
)

// Run owns the raylib window for the lifetime of the session: it polls
// the arrow keys into direction requests, ticks the session at its
// current speed, and draws every frame. Returns when the window closes
// or the player quits.
func Run(s *game.Session) {
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(drawFPS)

	renderer := NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if s.Over() {
			if rl.IsKeyPressed(rl.KeyR) {
				s.Reset(time.Now())
				lastUpdate = time.Now()
			}
		} else {
			switch {
			case rl.IsKeyPressed(rl.KeyUp):
				s.RequestDirection(types.Up)
			case rl.IsKeyPressed(rl.KeyDown):
				s.RequestDirection(types.Down)
			case rl.IsKeyPressed(rl.KeyLeft):
				s.RequestDirection(types.Left)
			case rl.IsKeyPressed(rl.KeyRight):
				s.RequestDirection(types.Right)
			}
		}

		// Tick at the session's pace; the draw rate stays at drawFPS.
		updateInterval := time.Duration(float64(time.Second) / s.Speed())
		if now := time.Now(); now.Sub(lastUpdate) >= updateInterval {
			s.Tick(now)
			lastUpdate = now
		}

		renderer.Draw(s)
	}
}
