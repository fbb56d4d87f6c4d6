package vector

// Traits bundles the lifetime hooks for an element type. The zero value
// describes a trivial type: plain assignment everywhere, nothing to
// destroy, and no way to fail.
//
// Every hook is optional:
//
//   - New: default construction, used by Resize and NewSizeTraits when the
//     logical length grows. nil means the zero value.
//   - Copy: deep copy. The only hook that may fail; its error aborts the
//     calling operation. nil means plain assignment.
//   - Move: ownership transfer. Must leave *src empty and destructible.
//     The signature carries no error on purpose: declaring a Move hook is
//     the statement that moving this type never fails, and it switches
//     relocation during growth from copy-with-rollback to plain moves.
//   - Destroy: resource release. The container calls it exactly once per
//     live element. It must tolerate moved-from (zero value) elements.
type Traits[T any] struct {
	New     func() T
	Copy    func(T) (T, error)
	Move    func(*T) T
	Destroy func(*T)
}

// relocateByMove reports whether growth relocates elements by move.
// Relocation moves when a Move hook is declared or when the type has no
// fallible Copy; it copies, with rollback, only when a fallible Copy is the
// sole way to place an element in new storage. This is a property of the
// traits value, not of any particular call.
func (tr *Traits[T]) relocateByMove() bool {
	return tr.Move != nil || tr.Copy == nil
}

// construct returns a default-constructed element.
func (tr *Traits[T]) construct() T {
	if tr.New != nil {
		return tr.New()
	}
	var zero T
	return zero
}

// copyOf returns a copy of x, via the Copy hook when one is set.
func (tr *Traits[T]) copyOf(x T) (T, error) {
	if tr.Copy != nil {
		return tr.Copy(x)
	}
	return x, nil
}

// moveFrom transfers the value out of *src, leaving the slot zeroed so the
// vacated storage does not pin the element's referents.
func (tr *Traits[T]) moveFrom(src *T) T {
	if tr.Move != nil {
		return tr.Move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v
}

// destroy releases *x's resources and zeroes the slot.
func (tr *Traits[T]) destroy(x *T) {
	if tr.Destroy != nil {
		tr.Destroy(x)
	}
	var zero T
	*x = zero
}
