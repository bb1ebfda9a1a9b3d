package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// Outcome is the result of one tick.
type Outcome int

const (
	// OutcomeContinued: the snake moved, nothing else happened.
	OutcomeContinued Outcome = iota
	// OutcomeFoodEaten: the snake ate the candy this tick.
	OutcomeFoodEaten
	// OutcomeGameOver: the snake hit a wall or itself; only Reset is
	// accepted from here on.
	OutcomeGameOver
	// OutcomeBoardFull: the snake covers every interior cell, leaving
	// nowhere to respawn candy. Terminal, like OutcomeGameOver.
	OutcomeBoardFull
)

// Session is one running game. It owns the snake and the candy and is
// single-caller: drive it from exactly one goroutine, with no internal
// locking. Independent sessions never share state.
type Session struct {
	cfg  Config
	grid types.Grid

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stats        *manager.StateManager
	turnPolicy   entity.TurnPolicyFunc

	candy types.Point
	score int
	speed float64
	over  bool
	end   Outcome // terminal outcome once over
}

// NewSession validates cfg and builds a running session. A bad config
// never reaches the tick loop.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := types.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight}
	cm := manager.NewCollisionManager(grid)
	s := &Session{
		cfg:          cfg,
		grid:         grid,
		collisionMgr: cm,
		foodMgr:      manager.NewFoodManager(grid, cm, cfg.Seed),
		stats:        manager.NewStateManager(),
	}
	switch cfg.Turn {
	case TurnStrict:
		s.turnPolicy = entity.StrictTurns
	default:
		s.turnPolicy = entity.NonReverseTurns
	}
	s.Reset(time.Now())
	return s, nil
}

// Reset starts a fresh game: configured snake at the grid center
// heading up, new candy, initial speed, score zero. Walls and run
// statistics survive. now seeds the auto-growth timer.
func (s *Session) Reset(now time.Time) {
	s.snake = entity.NewSnake(s.grid.Center(), s.cfg.InitialLength, types.Up, now)
	s.score = 0
	s.speed = s.cfg.InitialSpeed
	s.over = false
	s.end = OutcomeContinued
	candy, err := s.foodMgr.Spawn(s.snake)
	if err != nil {
		// Unreachable on a validated config: the initial snake always
		// leaves at least one interior cell free.
		s.finish(OutcomeBoardFull)
		return
	}
	s.candy = candy
}

// RequestDirection buffers the intended heading for the next tick.
// Safe to call any number of times per tick; the last accepted request
// wins. Requests rejected by the turn policy are silently ignored.
func (s *Session) RequestDirection(dir types.Direction) {
	if s.over {
		return
	}
	s.snake.ChangeDirection(dir, s.turnPolicy)
}

// Tick advances the game one step: commit the buffered heading, move
// the head, detect collisions, then apply growth and scoring. Once the
// session is over, Tick does nothing and keeps reporting the terminal
// outcome until Reset.
func (s *Session) Tick(now time.Time) Outcome {
	if s.over {
		return s.end
	}

	dir := s.snake.CommitDirection()
	newHead := s.snake.Head().Add(dir.Delta())
	if s.cfg.Boundary == BoundaryWrap {
		newHead = s.grid.WrapInterior(newHead)
	}

	if s.collisionMgr.CheckFatal(newHead, s.snake) != manager.CollisionNone {
		s.finish(OutcomeGameOver)
		return OutcomeGameOver
	}

	s.snake.AdvanceBody(newHead)
	s.snake.AutoGrow(now, s.cfg.AutoGrowthInterval)

	if newHead != s.candy {
		return OutcomeContinued
	}

	s.snake.Grow()
	s.score++
	s.speed += s.cfg.SpeedIncrement
	candy, err := s.foodMgr.Spawn(s.snake)
	if err != nil {
		s.finish(OutcomeBoardFull)
		return OutcomeBoardFull
	}
	s.candy = candy
	return OutcomeFoodEaten
}

func (s *Session) finish(end Outcome) {
	s.over = true
	s.end = end
	s.stats.RecordGame(s.score)
}

// Segments returns the snake body, head first. Callers must not
// mutate the returned slice.
func (s *Session) Segments() []types.Point {
	return s.snake.Body
}

// Candy returns the current candy position.
func (s *Session) Candy() types.Point {
	return s.candy
}

// Walls returns the wall ring. Callers must not mutate the returned
// slice.
func (s *Session) Walls() []types.Point {
	return s.collisionMgr.Walls()
}

// Grid returns the board dimensions, border included.
func (s *Session) Grid() types.Grid {
	return s.grid
}

// Score returns the number of candies eaten this game.
func (s *Session) Score() int {
	return s.score
}

// Speed returns the current pace in ticks per second.
func (s *Session) Speed() float64 {
	return s.speed
}

// Over reports whether the session has reached a terminal state.
func (s *Session) Over() bool {
	return s.over
}

// Length returns the snake's current segment count.
func (s *Session) Length() int {
	return s.snake.Length()
}

// TargetLength returns the snake's length including pending growth.
func (s *Session) TargetLength() int {
	return s.snake.TargetLength()
}

// Stats returns the cross-game run statistics.
func (s *Session) Stats() *manager.StateManager {
	return s.stats
}
