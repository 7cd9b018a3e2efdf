package geo

// TakeStatus is the outcome of a pool claim.
type TakeStatus int

const (
	// Taken means the entity moved to the caller.
	Taken TakeStatus = iota
	// Unknown means the key was never added to the pool.
	Unknown
	// AlreadyClaimed means another parent took the entity first.
	AlreadyClaimed
	// Retired means the entity was withdrawn from the pool without an owner.
	Retired
)

// Pool is a keyed collection of entities waiting for a parent. Take removes
// an entity and remembers who claimed it, so a second claim can be told
// apart from a reference to something that never existed. Pools are not safe
// for concurrent use.
type Pool[K comparable, V any] struct {
	items   map[K]V
	order   []K
	owners  map[K]string
	retired map[K]bool
}

// NewPool returns an empty pool.
func NewPool[K comparable, V any]() *Pool[K, V] {
	return &Pool[K, V]{
		items:   map[K]V{},
		owners:  map[K]string{},
		retired: map[K]bool{},
	}
}

// Known reports whether key was ever added.
func (p *Pool[K, V]) Known(key K) bool {
	if _, ok := p.items[key]; ok {
		return true
	}
	if _, ok := p.owners[key]; ok {
		return true
	}
	return p.retired[key]
}

// Put adds an entity. It reports false, leaving the pool unchanged, when the
// key is already known.
func (p *Pool[K, V]) Put(key K, value V) bool {
	if p.Known(key) {
		return false
	}
	p.items[key] = value
	p.order = append(p.order, key)
	return true
}

// Retire marks key as known but unavailable. Later claims report Retired.
func (p *Pool[K, V]) Retire(key K) {
	delete(p.items, key)
	p.retired[key] = true
}

// Take removes the entity under key and records owner as its parent. When
// the status is AlreadyClaimed the returned string is the previous owner.
func (p *Pool[K, V]) Take(key K, owner string) (V, TakeStatus, string) {
	var zero V
	if v, ok := p.items[key]; ok {
		delete(p.items, key)
		p.owners[key] = owner
		return v, Taken, owner
	}
	if prev, ok := p.owners[key]; ok {
		return zero, AlreadyClaimed, prev
	}
	if p.retired[key] {
		return zero, Retired, ""
	}
	return zero, Unknown, ""
}

// Len returns the number of entities still waiting for a parent.
func (p *Pool[K, V]) Len() int { return len(p.items) }

// Remaining returns the unclaimed keys in insertion order.
func (p *Pool[K, V]) Remaining() []K {
	out := make([]K, 0, len(p.items))
	for _, k := range p.order {
		if _, ok := p.items[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Keys returns every key ever added, in insertion order, excluding retired
// ones.
func (p *Pool[K, V]) Keys() []K {
	out := make([]K, 0, len(p.order))
	for _, k := range p.order {
		if !p.retired[k] {
			out = append(out, k)
		}
	}
	return out
}
