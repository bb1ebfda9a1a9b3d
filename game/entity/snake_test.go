package entity

import (
	"testing"
	"time"

	"snake-arcade/game/types"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func TestNewSnakeTrailsOppositeHeading(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 3, types.Up, t0)
	want := []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}
	if len(s.Body) != len(want) {
		t.Fatalf("body length = %d, want %d", len(s.Body), len(want))
	}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("Body[%d] = %v, want %v", i, s.Body[i], p)
		}
	}
	if s.Head() != (types.Point{X: 5, Y: 5}) {
		t.Errorf("Head() = %v, want (5,5)", s.Head())
	}
}

func TestReversalAlwaysRejected(t *testing.T) {
	for _, d := range []types.Direction{types.Up, types.Down, types.Left, types.Right} {
		s := NewSnake(types.Point{X: 5, Y: 5}, 3, d, t0)
		if s.ChangeDirection(d.Opposite(), NonReverseTurns) {
			t.Errorf("heading %v: reversal accepted", d)
		}
		if got := s.CommitDirection(); got != d {
			t.Errorf("heading %v: committed %v after rejected reversal", d, got)
		}
	}
}

func TestStrictTurnsRejectCollinear(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 3, types.Up, t0)
	if s.ChangeDirection(types.Up, StrictTurns) {
		t.Error("straight-ahead accepted under strict turns")
	}
	if s.ChangeDirection(types.Down, StrictTurns) {
		t.Error("reversal accepted under strict turns")
	}
	if !s.ChangeDirection(types.Left, StrictTurns) {
		t.Error("90-degree turn rejected under strict turns")
	}
}

func TestLastAcceptedRequestWins(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 3, types.Up, t0)
	s.ChangeDirection(types.Left, NonReverseTurns)
	s.ChangeDirection(types.Right, NonReverseTurns)
	if got := s.CommitDirection(); got != types.Right {
		t.Errorf("committed %v, want right", got)
	}
}

func TestAdvanceBodyTrimsTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 3, types.Up, t0)
	s.AdvanceBody(types.Point{X: 5, Y: 4})
	want := []types.Point{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 5, Y: 6}}
	if len(s.Body) != 3 {
		t.Fatalf("body length = %d, want 3", len(s.Body))
	}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("Body[%d] = %v, want %v", i, s.Body[i], p)
		}
	}
}

func TestGrowDefersUntilNextAdvance(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 3, types.Up, t0)
	s.Grow()
	if s.Length() != 3 {
		t.Errorf("length changed immediately on Grow: %d", s.Length())
	}
	if s.TargetLength() != 4 {
		t.Errorf("target length = %d, want 4", s.TargetLength())
	}
	s.AdvanceBody(types.Point{X: 5, Y: 4})
	if s.Length() != 4 {
		t.Errorf("length after advance = %d, want 4", s.Length())
	}
	want := []types.Point{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("Body[%d] = %v, want %v", i, s.Body[i], p)
		}
	}
	// The elongation is one-shot: the next advance trims again.
	s.AdvanceBody(types.Point{X: 5, Y: 3})
	if s.Length() != 4 {
		t.Errorf("length after second advance = %d, want 4", s.Length())
	}
}

func TestLengthNeverExceedsTarget(t *testing.T) {
	s := NewSnake(types.Point{X: 10, Y: 10}, 3, types.Up, t0)
	head := s.Head()
	for i := 0; i < 50; i++ {
		if i%3 == 0 {
			s.Grow()
		}
		head = head.Add(types.Up.Delta())
		before := s.Length()
		s.AdvanceBody(head)
		if s.Length() > s.TargetLength() {
			t.Fatalf("tick %d: length %d exceeds target %d", i, s.Length(), s.TargetLength())
		}
		if s.Length() < before {
			t.Fatalf("tick %d: length shrank from %d to %d", i, before, s.Length())
		}
	}
}

func TestHitsBodyIncludesCurrentTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 3, types.Up, t0)
	// (5,7) is the tail cell that would be vacated this tick; it still
	// counts as a hit because the check runs before the trim.
	if !s.HitsBody(types.Point{X: 5, Y: 7}) {
		t.Error("tail cell not reported as body hit")
	}
	if s.HitsBody(types.Point{X: 5, Y: 5}) {
		t.Error("head cell reported as body hit")
	}
	if s.HitsBody(types.Point{X: 5, Y: 4}) {
		t.Error("empty cell reported as body hit")
	}
}

func TestAutoGrow(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 3, types.Up, t0)
	interval := 5 * time.Second

	if s.AutoGrow(t0.Add(4*time.Second), interval) {
		t.Error("grew before the interval elapsed")
	}
	if !s.AutoGrow(t0.Add(5*time.Second), interval) {
		t.Error("did not grow at the interval boundary")
	}
	if s.TargetLength() != 4 {
		t.Errorf("target length = %d, want 4", s.TargetLength())
	}
	// Timer restarts from the growth instant, not from zero elapsed.
	if s.AutoGrow(t0.Add(9*time.Second), interval) {
		t.Error("grew again before a full second interval")
	}
	if !s.AutoGrow(t0.Add(10*time.Second), interval) {
		t.Error("did not grow on the second interval")
	}
	if s.TargetLength() != 5 {
		t.Errorf("target length = %d, want 5", s.TargetLength())
	}
}

func TestNoDuplicateSegments(t *testing.T) {
	s := NewSnake(types.Point{X: 10, Y: 10}, 5, types.Right, t0)
	head := s.Head()
	dirs := []types.Direction{types.Right, types.Down, types.Left, types.Down, types.Right, types.Right, types.Up}
	for _, d := range dirs {
		head = head.Add(d.Delta())
		s.AdvanceBody(head)
		seen := make(map[types.Point]bool)
		for _, seg := range s.Body {
			if seen[seg] {
				t.Fatalf("duplicate segment %v in body %v", seg, s.Body)
			}
			seen[seg] = true
		}
	}
}
