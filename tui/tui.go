// Package tui is the curses-style terminal front-end. It draws the
// grid in character cells (two columns per cell so the board looks
// square) and reads arrow keys through tcell.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Run owns the terminal screen for the lifetime of the session. The
// screen is released on every exit path, including panics inside the
// loop.
func Run(s *game.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tui: init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	draw(screen, s)
	ticker := time.NewTicker(tickInterval(s))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyUp:
					s.RequestDirection(types.Up)
				case ev.Key() == tcell.KeyDown:
					s.RequestDirection(types.Down)
				case ev.Key() == tcell.KeyLeft:
					s.RequestDirection(types.Left)
				case ev.Key() == tcell.KeyRight:
					s.RequestDirection(types.Right)
				case ev.Rune() == 'q', ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyEscape:
					return nil
				case ev.Rune() == 'r' && s.Over():
					s.Reset(time.Now())
					ticker.Reset(tickInterval(s))
					draw(screen, s)
				}
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, s)
			}
		case <-ticker.C:
			if s.Over() {
				continue
			}
			s.Tick(time.Now())
			ticker.Reset(tickInterval(s))
			draw(screen, s)
		}
	}
}

func tickInterval(s *game.Session) time.Duration {
	return time.Duration(float64(time.Second) / s.Speed())
}

func draw(screen tcell.Screen, s *game.Session) {
	screen.Clear()

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	snakeStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)

	// Board cells are drawn double-width so the grid reads square.
	for _, w := range s.Walls() {
		screen.SetContent(w.X*2, w.Y+1, '#', nil, wallStyle)
	}
	candy := s.Candy()
	screen.SetContent(candy.X*2, candy.Y+1, '*', nil, wallStyle)
	for i, seg := range s.Segments() {
		ch := 'o'
		if i == 0 {
			ch = 'O'
		}
		screen.SetContent(seg.X*2, seg.Y+1, ch, nil, snakeStyle)
	}

	status := fmt.Sprintf(" Score: %d | Best: %d | Speed: %.1f | Length: %d ",
		s.Score(), s.Stats().HighScore(), s.Speed(), s.Length())
	putText(screen, 0, 0, status, wallStyle)

	if s.Over() {
		grid := s.Grid()
		msg := " Game Over! Press 'r' to restart or 'q' to quit "
		putText(screen, max(0, (grid.Width*2-len(msg))/2), grid.Height/2, msg, wallStyle)
	}

	screen.Show()
}

func putText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
