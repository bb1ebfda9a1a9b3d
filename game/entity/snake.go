package entity

import (
	"time"

	"snake-arcade/game/types"
)

// Snake is the player entity. Body is head-first: Body[0] is the head,
// the last element is the tail. Consecutive segments always differ by
// exactly one unit step.
type Snake struct {
	Body []types.Point

	targetLength int
	direction    types.Direction
	pending      types.Direction
	lastGrowth   time.Time
}

// NewSnake builds a snake of the given length whose head sits at start
// and whose body trails away opposite to heading. now seeds the
// auto-growth timer.
func NewSnake(start types.Point, length int, heading types.Direction, now time.Time) *Snake {
	body := make([]types.Point, length)
	back := heading.Opposite().Delta()
	pos := start
	for i := range body {
		body[i] = pos
		pos = pos.Add(back)
	}
	return &Snake{
		Body:         body,
		targetLength: length,
		direction:    heading,
		pending:      heading,
		lastGrowth:   now,
	}
}

// Head returns the current head position.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Length returns the current number of body segments.
func (s *Snake) Length() int {
	return len(s.Body)
}

// TargetLength returns the length the body will reach once pending
// growth has been absorbed.
func (s *Snake) TargetLength() int {
	return s.targetLength
}

// Direction returns the committed heading.
func (s *Snake) Direction() types.Direction {
	return s.direction
}

// ChangeDirection buffers dir as the heading for the next step.
// Requests that violate the turn policy are ignored: the exact reverse
// of the current heading always, and under StrictTurns anything
// collinear with the current axis. Reports whether the request was
// accepted.
func (s *Snake) ChangeDirection(dir types.Direction, policy TurnPolicyFunc) bool {
	if !policy(s.direction, dir) {
		return false
	}
	s.pending = dir
	return true
}

// CommitDirection applies the buffered heading and returns it. Called
// once per tick, before the head moves, so multiple direction requests
// within one tick collapse to the last accepted one.
func (s *Snake) CommitDirection() types.Direction {
	s.direction = s.pending
	return s.direction
}

// HitsBody reports whether p collides with the snake's body. The
// current head cell is excluded; the current tail cell is not, even
// though it will be vacated this tick, so stepping onto the tail is
// still fatal.
func (s *Snake) HitsBody(p types.Point) bool {
	for _, seg := range s.Body[1:] {
		if seg == p {
			return true
		}
	}
	return false
}

// Occupies reports whether p collides with any segment, head included.
func (s *Snake) Occupies(p types.Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// AdvanceBody prepends the new head and trims the tail when the body
// exceeds its target length. Growth is therefore a one-segment
// elongation that persists until the trim catches up.
func (s *Snake) AdvanceBody(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	if len(s.Body) > s.targetLength {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow raises the target length by one. The body catches up on the
// next AdvanceBody.
func (s *Snake) Grow() {
	s.targetLength++
}

// AutoGrow grows the snake once if at least interval has elapsed since
// the last growth, then resets the timer. Reports whether growth
// happened.
func (s *Snake) AutoGrow(now time.Time, interval time.Duration) bool {
	if now.Sub(s.lastGrowth) < interval {
		return false
	}
	s.Grow()
	s.lastGrowth = now
	return true
}

// TurnPolicyFunc decides whether a requested heading is acceptable
// given the current one.
type TurnPolicyFunc func(current, requested types.Direction) bool

// NonReverseTurns rejects only the exact opposite of the current
// heading.
func NonReverseTurns(current, requested types.Direction) bool {
	return requested != current.Opposite()
}

// StrictTurns rejects anything collinear with the current axis, so
// only 90-degree turns pass.
func StrictTurns(current, requested types.Direction) bool {
	return !requested.SameAxis(current)
}
