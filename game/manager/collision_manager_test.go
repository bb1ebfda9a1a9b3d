package manager

import (
	"testing"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestWallRing(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)

	// 10x10 border: two full rows of 10 plus two columns of 8.
	if got := len(cm.Walls()); got != 36 {
		t.Errorf("wall count = %d, want 36", got)
	}
	for _, w := range cm.Walls() {
		if !grid.OnBorder(w) {
			t.Errorf("wall %v not on the border", w)
		}
	}
	if !cm.IsWall(types.Point{X: 0, Y: 5}) || !cm.IsWall(types.Point{X: 5, Y: 9}) {
		t.Error("border cell not reported as wall")
	}
	if cm.IsWall(types.Point{X: 5, Y: 5}) {
		t.Error("interior cell reported as wall")
	}
	if !cm.IsWall(types.Point{X: -1, Y: 5}) {
		t.Error("out-of-grid cell not reported as wall")
	}
}

func TestCheckFatalKinds(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, 3, types.Up, t0)

	if got := cm.CheckFatal(types.Point{X: 5, Y: 4}, snake); got != CollisionNone {
		t.Errorf("free cell = %v, want none", got)
	}
	if got := cm.CheckFatal(types.Point{X: 5, Y: 0}, snake); got != CollisionWall {
		t.Errorf("border cell = %v, want wall", got)
	}
	if got := cm.CheckFatal(types.Point{X: 5, Y: 6}, snake); got != CollisionSelf {
		t.Errorf("body cell = %v, want self", got)
	}
	// The current tail cell is fatal too: the check runs against the
	// pre-trim body.
	if got := cm.CheckFatal(types.Point{X: 5, Y: 7}, snake); got != CollisionSelf {
		t.Errorf("tail cell = %v, want self", got)
	}
}

func TestWallCheckedBeforeSelf(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)
	// A body segment sitting on a wall cell makes both checks fire;
	// the wall must win.
	snake := &entity.Snake{Body: []types.Point{{X: 1, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 3}}}
	if got := cm.CheckFatal(types.Point{X: 0, Y: 2}, snake); got != CollisionWall {
		t.Errorf("wall+body cell = %v, want wall", got)
	}
}
