package manager

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// ErrBoardFull is returned when no interior cell is free for candy.
var ErrBoardFull = errors.New("no free cell left for candy")

// FoodManager places candy on random free interior cells.
type FoodManager struct {
	grid         types.Grid
	collisionMgr *CollisionManager
	rng          *rand.Rand
}

// NewFoodManager builds a spawner seeded with seed; a zero seed falls
// back to the wall clock. Tests pass a fixed seed for reproducible
// placement.
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Spawn picks a uniformly random interior cell not occupied by the
// snake or a wall. It tries random cells at most once per interior
// cell, then falls back to enumerating the free cells exactly, so it
// terminates even on a nearly full board. Returns ErrBoardFull when
// the snake covers the whole interior.
func (fm *FoodManager) Spawn(snake *entity.Snake) (types.Point, error) {
	maxAttempts := fm.grid.InteriorCells()
	for i := 0; i < maxAttempts; i++ {
		p := types.Point{
			X: fm.rng.Intn(fm.grid.Width-2) + 1,
			Y: fm.rng.Intn(fm.grid.Height-2) + 1,
		}
		if fm.validSpawn(p, snake) {
			return p, nil
		}
	}
	// Random probing lost; count the free cells instead.
	free := make([]types.Point, 0, maxAttempts)
	for y := 1; y < fm.grid.Height-1; y++ {
		for x := 1; x < fm.grid.Width-1; x++ {
			p := types.Point{X: x, Y: y}
			if fm.validSpawn(p, snake) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) validSpawn(p types.Point, snake *entity.Snake) bool {
	return !fm.collisionMgr.IsWall(p) && !snake.Occupies(p)
}
