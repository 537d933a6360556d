package entity

import (
	"snake-duel/game/types"
)

// Snake is one player's head plus the trail of cells it has left behind.
// The trail lives in a ring buffer sized to the whole board, so a snake
// never allocates after NewSnake.
type Snake struct {
	Head      types.Position
	Direction types.Direction

	body   []types.Position
	length int
	insert int
	remove int
}

func NewSnake(capacity int) *Snake {
	if capacity < 1 {
		capacity = 1
	}
	return &Snake{
		body: make([]types.Position, capacity),
	}
}

// Spawn places the snake at head with no body, reusing its buffer.
func (s *Snake) Spawn(head types.Position, dir types.Direction) {
	s.Head = head
	s.Direction = dir
	s.length = 0
	s.insert = 0
	s.remove = 0
}

// Len is the number of body segments, which is also the player's score.
func (s *Snake) Len() int {
	return s.length
}

func (s *Snake) Capacity() int {
	return len(s.body)
}

// Steer adopts d unless it would turn the snake back through its neck.
func (s *Snake) Steer(d types.Direction) bool {
	if d == s.Direction.Reverse() {
		return false
	}
	s.Direction = d
	return true
}

// Advance records prev as the newest segment. Unless grow is set, the oldest
// segment is dequeued and returned so the caller can clear it on the grid.
// For a snake with no body that is prev itself.
func (s *Snake) Advance(prev types.Position, grow bool) (types.Position, bool) {
	s.body[s.insert] = prev
	s.insert++
	if s.insert == len(s.body) {
		s.insert = 0
	}
	if grow {
		s.length++
		return types.Position{}, false
	}
	vacated := s.body[s.remove]
	s.remove++
	if s.remove == len(s.body) {
		s.remove = 0
	}
	return vacated, true
}

// Tail returns the segment that will be vacated next.
func (s *Snake) Tail() (types.Position, bool) {
	if s.length == 0 {
		return types.Position{}, false
	}
	return s.body[s.remove], true
}

// EachSegment visits the body oldest first.
func (s *Snake) EachSegment(fn func(types.Position)) {
	i := s.remove
	for n := 0; n < s.length; n++ {
		fn(s.body[i])
		i++
		if i == len(s.body) {
			i = 0
		}
	}
}

// Occupies reports whether p is the head or a body segment.
func (s *Snake) Occupies(p types.Position) bool {
	if p == s.Head {
		return true
	}
	found := false
	s.EachSegment(func(q types.Position) {
		if q == p {
			found = true
		}
	})
	return found
}
