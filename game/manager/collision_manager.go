package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// CollisionKind classifies a fatal collision.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionWall
	CollisionSelf
)

// CollisionManager owns the wall ring and answers collision queries.
// The walls are computed once from the grid dimensions and never
// change for the lifetime of a session.
type CollisionManager struct {
	grid    types.Grid
	walls   []types.Point
	wallSet map[types.Point]struct{}
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	cm := &CollisionManager{
		grid:    grid,
		wallSet: make(map[types.Point]struct{}),
	}
	// Top and bottom rows, then the side columns between them.
	for x := 0; x < grid.Width; x++ {
		cm.addWall(types.Point{X: x, Y: 0})
		cm.addWall(types.Point{X: x, Y: grid.Height - 1})
	}
	for y := 1; y < grid.Height-1; y++ {
		cm.addWall(types.Point{X: 0, Y: y})
		cm.addWall(types.Point{X: grid.Width - 1, Y: y})
	}
	return cm
}

func (cm *CollisionManager) addWall(p types.Point) {
	cm.walls = append(cm.walls, p)
	cm.wallSet[p] = struct{}{}
}

// Walls returns the wall ring positions. Callers must not mutate the
// returned slice.
func (cm *CollisionManager) Walls() []types.Point {
	return cm.walls
}

// IsWall reports whether p is a wall cell. Positions outside the grid
// count as walls too.
func (cm *CollisionManager) IsWall(p types.Point) bool {
	if !cm.grid.Contains(p) {
		return true
	}
	_, ok := cm.wallSet[p]
	return ok
}

// CheckFatal classifies what the snake would die of by moving its head
// to newHead. Walls are checked before the body, so a cell that is
// somehow both reports a wall death. The body check runs against the
// pre-trim body: the current tail cell is fatal.
func (cm *CollisionManager) CheckFatal(newHead types.Point, snake *entity.Snake) CollisionKind {
	if cm.IsWall(newHead) {
		return CollisionWall
	}
	if snake.HitsBody(newHead) {
		return CollisionSelf
	}
	return CollisionNone
}
