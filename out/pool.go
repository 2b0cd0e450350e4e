package out

import "sync"

// pool recycles adapters so that a log line does not allocate its
// fixed-capacity buffer
type pool[T any] struct {
	p sync.Pool
}

func (p *pool[T]) get() *T {
	if v, ok := p.p.Get().(*T); ok {
		return v
	}
	return new(T)
}

func (p *pool[T]) put(v *T) {
	p.p.Put(v)
}
