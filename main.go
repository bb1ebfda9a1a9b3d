package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"snake-arcade/console"
	"snake-arcade/game"
	"snake-arcade/tui"
	"snake-arcade/ui"
)

func main() {
	uiMode := flag.String("ui", "", "front-end: window, console or tui (empty = ask)")
	width := flag.Int("width", 0, "grid width in cells (0 = front-end default)")
	height := flag.Int("height", 0, "grid height in cells (0 = front-end default)")
	length := flag.Int("length", 0, "initial snake length (0 = default)")
	speed := flag.Float64("speed", 0, "initial speed in ticks per second (0 = default)")
	speedInc := flag.Float64("speed-inc", -1, "speed increase per candy (-1 = default)")
	growth := flag.Duration("growth", 0, "auto-growth interval (0 = default)")
	wrap := flag.Bool("wrap", false, "wrap around the edges instead of solid walls")
	strict := flag.Bool("strict-turns", false, "only accept 90-degree turns")
	seed := flag.Uint64("seed", 0, "candy placement seed (0 = random)")
	flag.Parse()

	mode := *uiMode
	if mode == "" {
		mode = askMode()
	}

	cfg := game.DefaultConfig()
	if mode == "console" {
		cfg = game.ConsoleConfig()
	}
	if *width > 0 {
		cfg.GridWidth = *width
	}
	if *height > 0 {
		cfg.GridHeight = *height
	}
	if *length > 0 {
		cfg.InitialLength = *length
	}
	if *speed > 0 {
		cfg.InitialSpeed = *speed
	}
	if *speedInc >= 0 {
		cfg.SpeedIncrement = *speedInc
	}
	if *growth > 0 {
		cfg.AutoGrowthInterval = *growth
	}
	if *wrap {
		cfg.Boundary = game.BoundaryWrap
	}
	if *strict {
		cfg.Turn = game.TurnStrict
	}
	cfg.Seed = *seed

	session, err := game.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}

	switch mode {
	case "window":
		ui.Run(session)
	case "console":
		if err := console.Run(session); err != nil {
			log.Fatal(err)
		}
	case "tui":
		if err := tui.Run(session); err != nil {
			log.Fatal(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown ui %q, want window, console or tui\n", mode)
		os.Exit(1)
	}

	stats := session.Stats()
	if stats.GamesPlayed() > 0 {
		fmt.Printf("Games: %d  Best: %d\n", stats.GamesPlayed(), stats.HighScore())
	}
	fmt.Println("Thanks for playing!")
}

// askMode shows the interactive chooser used when no -ui flag is
// given.
func askMode() string {
	fmt.Println("Welcome to Snake!")
	fmt.Println("Please choose a front-end:")
	fmt.Println("1. Graphical window")
	fmt.Println("2. Plain console")
	fmt.Println("3. Terminal UI (curses-style)")
	fmt.Print("Enter your choice (1-3): ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		os.Exit(1)
	}
	switch strings.TrimSpace(line) {
	case "1":
		return "window"
	case "2":
		return "console"
	case "3":
		return "tui"
	default:
		fmt.Println("Invalid choice. Please run again and select 1, 2 or 3.")
		os.Exit(1)
		return ""
	}
}
