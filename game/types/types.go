package types

// Point is a position on the game grid.
type Point struct {
	X, Y int
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid represents the game grid dimensions, border included.
type Grid struct {
	Width  int
	Height int
}

// InteriorCells returns the number of playable cells inside the border.
func (g Grid) InteriorCells() int {
	return (g.Width - 2) * (g.Height - 2)
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// OnBorder reports whether p lies on the outer wall ring.
func (g Grid) OnBorder(p Point) bool {
	return p.X == 0 || p.X == g.Width-1 || p.Y == 0 || p.Y == g.Height-1
}

// Contains reports whether p lies anywhere on the grid, border included.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// WrapInterior maps p onto the interior cells, toroidally. A head
// stepping off one side of the interior re-enters from the opposite
// side; the border ring is never reached.
func (g Grid) WrapInterior(p Point) Point {
	return Point{
		X: mod(p.X-1, g.Width-2) + 1,
		Y: mod(p.Y-1, g.Height-2) + 1,
	}
}

// mod is the positive remainder, unlike the % operator for negative x.
func mod(x, n int) int {
	m := x % n
	if m < 0 {
		m += n
	}
	return m
}

// Direction is one of the four unit headings on the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit step vector for d. Up decreases Y, Down
// increases Y (screen coordinates).
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading. Opposite pairs' deltas sum to
// the zero vector.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// SameAxis reports whether d and e are vertical together or horizontal
// together.
func (d Direction) SameAxis(e Direction) bool {
	return (d.Delta().X == 0) == (e.Delta().X == 0)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
