// Package console is the plain character-grid front-end. It puts the
// terminal into raw mode for immediate keypress reading and redraws
// the whole board with ANSI escapes, so it works in any terminal
// without a curses layer.
package console

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Run owns the terminal for the lifetime of the session. The previous
// terminal state is restored on every return path.
func Run(s *game.Session) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("console: set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	keys := make(chan byte, 16)
	go func() {
		var b [1]byte
		for {
			if _, err := os.Stdin.Read(b[:]); err != nil {
				return
			}
			keys <- b[0]
		}
	}()

	draw(s)
	ticker := time.NewTicker(tickInterval(s))
	defer ticker.Stop()

	for {
		select {
		case key := <-keys:
			switch key {
			case 'w':
				s.RequestDirection(types.Up)
			case 's':
				s.RequestDirection(types.Down)
			case 'a':
				s.RequestDirection(types.Left)
			case 'd':
				s.RequestDirection(types.Right)
			case 'q', 3: // 'q' or Ctrl+C
				fmt.Print("\033[H\033[2J")
				return nil
			case 'r':
				if s.Over() {
					s.Reset(time.Now())
					ticker.Reset(tickInterval(s))
					draw(s)
				}
			}
		case <-ticker.C:
			if s.Over() {
				continue
			}
			s.Tick(time.Now())
			ticker.Reset(tickInterval(s))
			draw(s)
		}
	}
}

func tickInterval(s *game.Session) time.Duration {
	return time.Duration(float64(time.Second) / s.Speed())
}

// printLn writes a line with \r\n, required in raw mode.
func printLn(line string) {
	fmt.Print(line + "\r\n")
}

func draw(s *game.Session) {
	// ANSI escape: cursor home, then clear.
	fmt.Print("\033[H\033[2J")

	grid := s.Grid()
	cells := make([][]rune, grid.Height)
	for y := range cells {
		cells[y] = make([]rune, grid.Width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}

	for _, w := range s.Walls() {
		cells[w.Y][w.X] = '#'
	}
	candy := s.Candy()
	cells[candy.Y][candy.X] = '*'
	for i, seg := range s.Segments() {
		if i == 0 {
			cells[seg.Y][seg.X] = 'O'
		} else {
			cells[seg.Y][seg.X] = 'o'
		}
	}

	printLn(fmt.Sprintf("Snake - Score: %d  Best: %d", s.Score(), s.Stats().HighScore()))
	printLn(fmt.Sprintf("Speed: %.1f - Length: %d", s.Speed(), s.Length()))
	for _, row := range cells {
		printLn(string(row))
	}

	printLn("")
	if s.Over() {
		printLn("Game Over!")
		printLn("Press 'r' to restart or 'q' to quit.")
	} else {
		printLn("w = Up, s = Down, a = Left, d = Right, q = Quit")
	}
}
