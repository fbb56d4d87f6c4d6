package vector

import "testing"

func TestPoolGetEmpty(t *testing.T) {
	p := NewPool[int]()

	v := p.Get()
	if v.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", v.Len())
	}

	p.Put(v)
}

func TestPoolReuseIsEmpty(t *testing.T) {
	p := NewPool[int]()

	v := p.Get()
	if err := v.PushBack(42); err != nil {
		t.Fatalf("PushBack error: %v", err)
	}
	p.Put(v)

	// Get again — must be empty regardless of reuse.
	v2 := p.Get()
	if v2.Len() != 0 {
		t.Fatalf("reused Len() = %d, want 0", v2.Len())
	}

	p.Put(v2)
}

func TestPoolPutRunsDestroyHooks(t *testing.T) {
	destroys := 0
	p := NewPoolTraits(Traits[int]{
		Destroy: func(*int) { destroys++ },
	})

	v := p.Get()
	if err := v.PushBack(1); err != nil {
		t.Fatalf("PushBack error: %v", err)
	}
	if err := v.PushBack(2); err != nil {
		t.Fatalf("PushBack error: %v", err)
	}
	p.Put(v)

	if destroys != 2 {
		t.Fatalf("destroys = %d, want 2 (Put must clear remaining elements)", destroys)
	}
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool[int]()
	p.Put(nil) // must not panic
}
