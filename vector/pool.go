package vector

import "sync"

// Pool provides sync.Pool-based Vector reuse to reduce allocation churn in
// hot paths that fill and drain short-lived vectors.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool of vectors with trivial traits.
func NewPool[T any]() *Pool[T] {
	return NewPoolTraits(Traits[T]{})
}

// NewPoolTraits returns a Pool whose vectors manage elements with tr.
func NewPoolTraits[T any](tr Traits[T]) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return NewTraits(tr)
			},
		},
	}
}

// Get returns an empty vector. Its capacity may be retained from a previous
// use. Callers must return it via Put when done.
func (p *Pool[T]) Get() *Vector[T] {
	return p.pool.Get().(*Vector[T])
}

// Put clears v, running destroy hooks on any remaining elements, and
// returns it to the pool. Put of nil is a no-op; the caller must not use v
// after calling Put.
func (p *Pool[T]) Put(v *Vector[T]) {
	if v == nil {
		return
	}
	v.Clear()
	p.pool.Put(v)
}
