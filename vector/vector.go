package vector

import (
	"fmt"

	"github.com/cwbudde/algo-container/rawstore"
)

// Vector is a contiguous growable array over a single raw slot block.
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) are vacant.
// Capacity grows geometrically and never shrinks except through CopyFrom
// replacement or Swap.
//
// The zero value is an empty vector with trivial traits, ready for use.
// A Vector is not safe for concurrent use; callers serialize access.
//
// Pointers returned by At, Slice, EmplaceBack, Insert, Emplace and Erase
// are invalidated by any operation that reallocates, and by the element
// shifts of Insert and Erase.
type Vector[T any] struct {
	data rawstore.Storage[T]
	size int
	tr   Traits[T]
}

// New returns an empty vector with trivial traits.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewTraits returns an empty vector whose elements are managed by tr.
func NewTraits[T any](tr Traits[T]) *Vector[T] {
	return &Vector[T]{tr: tr}
}

// NewSize returns a vector of n zero-valued elements with capacity n.
// Negative n panics.
func NewSize[T any](n int) *Vector[T] {
	return NewSizeTraits(n, Traits[T]{})
}

// NewSizeTraits returns a vector of n default-constructed elements with
// capacity n, managed by tr. Negative n panics.
func NewSizeTraits[T any](n int, tr Traits[T]) *Vector[T] {
	if n < 0 {
		panic("vector: negative size")
	}
	v := &Vector[T]{data: rawstore.New[T](n), tr: tr}
	for i := 0; i < n; i++ {
		*v.data.At(i) = tr.construct()
	}
	v.size = n
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots the current storage can hold.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the address of element i. It panics when i is outside
// [0, Len()).
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vector: index out of range")
	}
	return v.data.At(i)
}

// Slice returns the live elements as a window into storage. Writes through
// the window are writes into the vector; the window is invalidated by any
// reallocating operation.
func (v *Vector[T]) Slice() []T {
	return v.data.Slice(0, v.size)
}

// Swap exchanges contents, capacity and traits with other in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.tr, other.tr = other.tr, v.tr
}

// MoveFrom takes src's elements in constant time by swapping storage.
// src remains a valid vector and owns v's previous contents.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Swap(src)
}

// PushBack appends a copy of x, growing storage when full. On error the
// vector is unchanged.
func (v *Vector[T]) PushBack(x T) error {
	c, err := v.tr.copyOf(x)
	if err != nil {
		return fmt.Errorf("vector: push back: %w", err)
	}
	if _, err := v.EmplaceBack(c); err != nil {
		return err
	}
	return nil
}

// EmplaceBack appends x without copying; the caller relinquishes x. It
// returns the address of the appended element. When growth is needed the
// new element is placed into its final slot in the new storage before any
// relocation, so growth plus append is a single all-or-nothing step: on a
// relocation error x is destroyed, the error is returned, and the vector is
// unchanged.
func (v *Vector[T]) EmplaceBack(x T) (*T, error) {
	if v.size == v.Cap() {
		newData := rawstore.New[T](grownCap(v.size))
		*newData.At(v.size) = x
		if err := v.relocateRange(&newData, 0, 0, v.size); err != nil {
			v.tr.destroy(newData.At(v.size))
			newData.Release()
			return nil, fmt.Errorf("vector: grow for append: %w", err)
		}
		v.finishGrow(&newData)
	} else {
		*v.data.At(v.size) = x
	}
	v.size++
	return v.data.At(v.size - 1), nil
}

// Insert inserts a copy of x before index i, where i may equal Len() for
// append. It returns the address of the inserted element. On error the
// vector is unchanged.
func (v *Vector[T]) Insert(i int, x T) (*T, error) {
	c, err := v.tr.copyOf(x)
	if err != nil {
		return nil, fmt.Errorf("vector: insert: %w", err)
	}
	return v.Emplace(i, c)
}

// Emplace inserts x before index i without copying; the caller relinquishes
// x. It returns the address of the inserted element. On a relocation error
// x is destroyed, the error is returned, and the vector is unchanged.
func (v *Vector[T]) Emplace(i int, x T) (*T, error) {
	if i < 0 || i > v.size {
		panic("vector: insert index out of range")
	}
	if i == v.size {
		return v.EmplaceBack(x)
	}

	if v.size == v.Cap() {
		if err := v.growEmplace(i, x); err != nil {
			return nil, err
		}
	} else {
		// Shift in place: hold x aside, move the last element into the
		// one-past-end slot, shift [i, size-1) one slot rightward from the
		// end backward, then move x into the vacated slot i.
		tmp := x
		*v.data.At(v.size) = v.tr.moveFrom(v.data.At(v.size - 1))
		for k := v.size - 1; k > i; k-- {
			*v.data.At(k) = v.tr.moveFrom(v.data.At(k - 1))
		}
		*v.data.At(i) = v.tr.moveFrom(&tmp)
	}
	v.size++
	return v.data.At(i), nil
}

// Erase removes element i. Followers shift one slot leftward; the vacated
// last slot is destroyed. It returns the address of the element now at i,
// or nil when the last element was erased.
func (v *Vector[T]) Erase(i int) *T {
	if i < 0 || i >= v.size {
		panic("vector: erase index out of range")
	}
	if i == v.size-1 {
		v.PopBack()
		return nil
	}
	v.tr.destroy(v.data.At(i))
	for k := i + 1; k < v.size; k++ {
		*v.data.At(k - 1) = v.tr.moveFrom(v.data.At(k))
	}
	v.size--
	return v.data.At(i)
}

// PopBack destroys the last element. It panics on an empty vector; the
// length check is the caller's contract.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: pop back on empty vector")
	}
	v.tr.destroy(v.data.At(v.size - 1))
	v.size--
}

// Clear destroys all live elements and keeps the current capacity.
func (v *Vector[T]) Clear() {
	for i := 0; i < v.size; i++ {
		v.tr.destroy(v.data.At(i))
	}
	v.size = 0
}

// Resize sets the length to n. Shrinking destroys the surplus suffix;
// growing reserves capacity, relocates live elements, then
// default-constructs the new tail. Negative n panics. On a relocation
// error the vector is unchanged.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vector: negative size")
	}
	switch {
	case n == v.size:
		return nil
	case n < v.size:
		for i := n; i < v.size; i++ {
			v.tr.destroy(v.data.At(i))
		}
	default:
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			*v.data.At(i) = v.tr.construct()
		}
	}
	v.size = n
	return nil
}

// Reserve grows capacity to at least n, relocating live elements. It is a
// no-op when n does not exceed the current capacity. On a relocation error
// the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	newData := rawstore.New[T](n)
	if err := v.relocateRange(&newData, 0, 0, v.size); err != nil {
		newData.Release()
		return fmt.Errorf("vector: grow: %w", err)
	}
	v.finishGrow(&newData)
	return nil
}

// Clone returns an element-wise copy with independent storage and capacity
// equal to Len(). On a copy error nothing is returned and the partial copy
// is destroyed.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{data: rawstore.New[T](v.size), tr: v.tr}
	for i := 0; i < v.size; i++ {
		c, err := v.tr.copyOf(*v.data.At(i))
		if err != nil {
			for k := out.size - 1; k >= 0; k-- {
				out.tr.destroy(out.data.At(k))
			}
			out.data.Release()
			return nil, fmt.Errorf("vector: clone: %w", err)
		}
		*out.data.At(i) = c
		out.size++
	}
	return out, nil
}

// CopyFrom replaces v's contents with element-wise copies of src. Both
// vectors must manage their elements with the same traits discipline.
//
// When src fits the current capacity the buffer is reused: the overlapping
// prefix is copy-assigned, a surplus suffix of v is destroyed, and extra
// source elements are copy-constructed into vacant slots; a copy error in
// this mode leaves a consistent mix of old and new elements (basic
// guarantee). Otherwise a full replacement is built first and swapped in,
// so an error leaves v unchanged (strong guarantee).
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}

	if src.size > v.Cap() {
		repl, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(repl)
		repl.Clear()
		repl.data.Release()
		return nil
	}

	n := min(v.size, src.size)
	for i := 0; i < n; i++ {
		c, err := v.tr.copyOf(*src.data.At(i))
		if err != nil {
			return fmt.Errorf("vector: copy assign: %w", err)
		}
		v.tr.destroy(v.data.At(i))
		*v.data.At(i) = c
	}
	if src.size < v.size {
		for i := src.size; i < v.size; i++ {
			v.tr.destroy(v.data.At(i))
		}
	} else {
		for i := v.size; i < src.size; i++ {
			c, err := v.tr.copyOf(*src.data.At(i))
			if err != nil {
				for k := i - 1; k >= v.size; k-- {
					v.tr.destroy(v.data.At(k))
				}
				return fmt.Errorf("vector: copy assign: %w", err)
			}
			*v.data.At(i) = c
		}
	}
	v.size = src.size
	return nil
}

// String returns a short debug summary.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("vector{len=%d, cap=%d}", v.size, v.Cap())
}

// grownCap returns the capacity used when an append outgrows storage.
func grownCap(size int) int {
	if size == 0 {
		return 1
	}
	return 2 * size
}

// relocateRange places live elements [from, to) into dst starting at
// dstOff, using the relocation policy resolved from the traits. The move
// path cannot fail. The copy path tracks how many elements this call has
// constructed and, on a copy error, destroys exactly those in reverse
// order before returning; source elements are untouched either way, so the
// caller only has to clean up slots it populated itself.
func (v *Vector[T]) relocateRange(dst *rawstore.Storage[T], dstOff, from, to int) error {
	if v.tr.relocateByMove() {
		for i := from; i < to; i++ {
			*dst.At(dstOff + i - from) = v.tr.moveFrom(v.data.At(i))
		}
		return nil
	}
	constructed := 0
	for i := from; i < to; i++ {
		c, err := v.tr.Copy(*v.data.At(i))
		if err != nil {
			for k := constructed - 1; k >= 0; k-- {
				v.tr.destroy(dst.At(dstOff + k))
			}
			return err
		}
		*dst.At(dstOff + constructed) = c
		constructed++
	}
	return nil
}

// finishGrow completes a successful relocation: the old elements are
// destroyed (only under the copy policy — the move path already vacated
// them), storage ownership swaps, and the vacated block is released.
func (v *Vector[T]) finishGrow(newData *rawstore.Storage[T]) {
	if !v.tr.relocateByMove() {
		for i := 0; i < v.size; i++ {
			v.tr.destroy(v.data.At(i))
		}
	}
	v.data.Swap(newData)
	newData.Release()
}

// growEmplace grows storage for an insert at index i, placing x into its
// target slot in the new storage before relocating the prefix [0, i) and
// suffix [i, size) around it. On a copy error everything constructed in the
// new storage, x included, is destroyed in reverse order and the old
// storage is left untouched.
func (v *Vector[T]) growEmplace(i int, x T) error {
	newData := rawstore.New[T](grownCap(v.size))
	*newData.At(i) = x
	if err := v.relocateRange(&newData, 0, 0, i); err != nil {
		v.tr.destroy(newData.At(i))
		newData.Release()
		return fmt.Errorf("vector: grow for insert: %w", err)
	}
	if err := v.relocateRange(&newData, i+1, i, v.size); err != nil {
		for k := i; k >= 0; k-- {
			v.tr.destroy(newData.At(k))
		}
		newData.Release()
		return fmt.Errorf("vector: grow for insert: %w", err)
	}
	v.finishGrow(&newData)
	return nil
}
