package walk

// PathBuffer is the ordered, append-only history of visited positions. Its
// capacity is fixed at construction and index 0 is always the seed position.
type PathBuffer struct {
	points []Position
}

// NewPathBuffer allocates room for capacity positions and stores seed at
// index 0. A capacity below one is raised to one.
func NewPathBuffer(capacity int, seed Position) *PathBuffer {
	if capacity < 1 {
		capacity = 1
	}
	points := make([]Position, 1, capacity)
	points[0] = seed
	return &PathBuffer{points: points}
}

// Append stores p and reports true, or reports false and changes nothing
// when the buffer is full.
func (b *PathBuffer) Append(p Position) bool {
	if b.Full() {
		return false
	}
	b.points = append(b.points, p)
	return true
}

// Len returns the number of stored positions.
func (b *PathBuffer) Len() int { return len(b.points) }

// Cap returns the fixed capacity.
func (b *PathBuffer) Cap() int { return cap(b.points) }

// Full reports whether no further position can be appended.
func (b *PathBuffer) Full() bool { return len(b.points) == cap(b.points) }

// At returns the i-th position. It panics when i is out of range.
func (b *PathBuffer) At(i int) Position { return b.points[i] }
