package pool

import (
	"sync"

	"github.com/google/uuid"

	"github.com/okanek/patternkit/logger"
)

// Factory constructs the value carried by a new resource. It is called only
// when Acquire finds no free resource to reuse.
type Factory[T any] func() T

// Pool hands out reusable resources. Every resource it has ever created sits
// in exactly one of two collections: free (available for lease) or busy
// (currently leased). The pool is unbounded and never blocks; Acquire creates
// a fresh resource whenever nothing is free.
type Pool[T any] struct {
	mu      sync.Mutex
	factory Factory[T]
	newID   func() string
	free    map[string]*Resource[T]
	busy    map[string]*Resource[T]
	strict  bool
	logger  logger.Logger
}

// New builds an empty pool around the given factory.
func New[T any](factory Factory[T], opts ...Option[T]) *Pool[T] {
	p := &Pool[T]{
		factory: factory,
		newID:   uuid.NewString,
		free:    make(map[string]*Resource[T]),
		busy:    make(map[string]*Resource[T]),
		logger:  logger.NewNop(),
	}

	for _, opt := range opts {
		opt.apply(p)
	}

	return p
}

// Acquire leases a resource. An arbitrary free resource is reused when one
// exists; map iteration order makes the pick unordered on purpose. Otherwise
// a new resource is constructed. Either way the resource is recorded busy
// before it is returned.
func (p *Pool[T]) Acquire() *Resource[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, res := range p.free {
		delete(p.free, id)
		p.busy[id] = res
		p.logger.Debug("Reusing free resource", logger.LogContext{"id": id})

		return res
	}

	res := &Resource[T]{
		id:    p.newID(),
		value: p.factory(),
	}
	p.busy[res.id] = res
	p.logger.Debug("Created new resource", logger.LogContext{"id": res.id})

	return res
}

// Release returns a leased resource to the free collection. A resource the
// pool does not currently hold busy (nil, never issued here, or released
// twice) leaves the pool untouched: by default the call is a no-op returning
// nil, in strict mode it returns ErrForeignResource.
func (p *Pool[T]) Release(res *Resource[T]) error {
	if res == nil {
		return p.rejectRelease("<nil>")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.busy[res.id]; !ok {
		return p.rejectRelease(res.id)
	}

	delete(p.busy, res.id)
	p.free[res.id] = res
	p.logger.Debug("Released resource", logger.LogContext{"id": res.id})

	return nil
}

func (p *Pool[T]) rejectRelease(id string) error {
	p.logger.Warn("Ignoring release of resource not leased by this pool", logger.LogContext{"id": id})
	if p.strict {
		return ErrForeignResource
	}

	return nil
}

// Size returns the total number of resources the pool has created, free and
// busy together.
func (p *Pool[T]) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.free) + len(p.busy)
}

// Idle returns the number of resources currently free for lease.
func (p *Pool[T]) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.free)
}

// Busy returns the number of resources currently leased out.
func (p *Pool[T]) Busy() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.busy)
}
