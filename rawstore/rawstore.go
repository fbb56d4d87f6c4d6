package rawstore

// Storage owns a contiguous block of element slots sized independently of
// any logical element count. Slots are bare memory as far as this layer is
// concerned: Storage never constructs, copies or destroys elements, and
// Release drops the block without looking at it. The owner tracks which
// slots hold live values.
//
// Storage must not be copied; ownership transfers only via Swap. The zero
// value is an empty storage with capacity 0.
type Storage[T any] struct {
	buf []T
}

// New allocates a block of capacity slots in a single allocation.
// A capacity of zero allocates nothing. Negative capacity panics.
func New[T any](capacity int) Storage[T] {
	if capacity < 0 {
		panic("rawstore: negative capacity")
	}
	if capacity == 0 {
		return Storage[T]{}
	}
	return Storage[T]{buf: make([]T, capacity)}
}

// Cap returns the number of slots in the block.
func (s *Storage[T]) Cap() int {
	return len(s.buf)
}

// At returns the address of slot i. It panics when i is outside
// [0, Cap()); whether the slot holds a live value is not this layer's
// concern.
func (s *Storage[T]) At(i int) *T {
	if i < 0 || i >= len(s.buf) {
		panic("rawstore: slot index out of range")
	}
	return &s.buf[i]
}

// Slice returns a window over slots [i, j). The window aliases the block:
// writes through it are writes into storage. It panics on an invalid range.
func (s *Storage[T]) Slice(i, j int) []T {
	if i < 0 || j < i || j > len(s.buf) {
		panic("rawstore: slot range out of bounds")
	}
	return s.buf[i:j]
}

// Swap exchanges the blocks of two storages in constant time. No slot is
// read or written.
func (s *Storage[T]) Swap(other *Storage[T]) {
	s.buf, other.buf = other.buf, s.buf
}

// Release drops the block, leaving an empty storage. The owner must have
// destroyed any live elements first; Release does not inspect slots.
func (s *Storage[T]) Release() {
	s.buf = nil
}
