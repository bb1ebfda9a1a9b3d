package game

import (
	"errors"
	"fmt"
	"time"
)

// BoundaryPolicy controls what happens when the snake reaches the edge
// of the playfield.
type BoundaryPolicy int

const (
	// BoundaryWall makes the border ring solid: stepping onto it is a
	// fatal collision.
	BoundaryWall BoundaryPolicy = iota
	// BoundaryWrap folds the interior toroidally: the head re-enters
	// from the opposite side and never reaches the border ring.
	BoundaryWrap
)

// TurnPolicy controls which direction requests the snake accepts.
type TurnPolicy int

const (
	// TurnNonReverse accepts any heading except the exact opposite of
	// the current one.
	TurnNonReverse TurnPolicy = iota
	// TurnStrict accepts only 90-degree turns: a request collinear
	// with the current axis is ignored.
	TurnStrict
)

// ErrInvalidConfig is wrapped by all configuration validation errors.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the session settings. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	GridWidth  int
	GridHeight int

	InitialLength int // snake length at start and after reset, in cells

	InitialSpeed   float64 // ticks per second at start
	SpeedIncrement float64 // added to speed each time candy is eaten

	AutoGrowthInterval time.Duration // wall-clock period of free growth

	Boundary BoundaryPolicy
	Turn     TurnPolicy

	Seed uint64 // candy placement seed; 0 means time-based
}

// DefaultConfig returns the classic settings: 30x30 bordered grid,
// 3-cell snake, 10 ticks per second ramping by 0.5 per candy, one free
// growth every 5 seconds, solid walls.
func DefaultConfig() Config {
	return Config{
		GridWidth:          30,
		GridHeight:         30,
		InitialLength:      3,
		InitialSpeed:       10,
		SpeedIncrement:     0.5,
		AutoGrowthInterval: 5 * time.Second,
		Boundary:           BoundaryWall,
		Turn:               TurnNonReverse,
	}
}

// ConsoleConfig returns DefaultConfig shrunk to the 30x16 grid the
// character-cell front-ends use.
func ConsoleConfig() Config {
	cfg := DefaultConfig()
	cfg.GridHeight = 16
	return cfg
}

// Validate reports the first problem that would make the session
// unplayable. It is called by NewSession so a bad config never reaches
// the tick loop.
func (c Config) Validate() error {
	if c.GridWidth < 5 || c.GridHeight < 5 {
		return fmt.Errorf("%w: grid %dx%d too small, need at least 5x5",
			ErrInvalidConfig, c.GridWidth, c.GridHeight)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("%w: initial length %d, need at least 1",
			ErrInvalidConfig, c.InitialLength)
	}
	// The snake starts as a vertical line below the center cell; the
	// whole body must fit inside the border.
	if c.GridHeight/2+c.InitialLength-1 > c.GridHeight-2 {
		return fmt.Errorf("%w: initial length %d does not fit a %dx%d grid",
			ErrInvalidConfig, c.InitialLength, c.GridWidth, c.GridHeight)
	}
	interior := (c.GridWidth - 2) * (c.GridHeight - 2)
	if c.InitialLength >= interior {
		return fmt.Errorf("%w: initial length %d leaves no room for candy on a %dx%d grid",
			ErrInvalidConfig, c.InitialLength, c.GridWidth, c.GridHeight)
	}
	if c.InitialSpeed <= 0 {
		return fmt.Errorf("%w: initial speed %v, need > 0", ErrInvalidConfig, c.InitialSpeed)
	}
	if c.SpeedIncrement < 0 {
		return fmt.Errorf("%w: speed increment %v, need >= 0", ErrInvalidConfig, c.SpeedIncrement)
	}
	if c.AutoGrowthInterval <= 0 {
		return fmt.Errorf("%w: auto-growth interval %v, need > 0", ErrInvalidConfig, c.AutoGrowthInterval)
	}
	switch c.Boundary {
	case BoundaryWall, BoundaryWrap:
	default:
		return fmt.Errorf("%w: unknown boundary policy %d", ErrInvalidConfig, c.Boundary)
	}
	switch c.Turn {
	case TurnNonReverse, TurnStrict:
	default:
		return fmt.Errorf("%w: unknown turn policy %d", ErrInvalidConfig, c.Turn)
	}
	return nil
}
