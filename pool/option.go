package pool

import "github.com/okanek/patternkit/logger"

type Option[T any] interface {
	apply(*Pool[T])
}

type optionFunc[T any] func(*Pool[T])

func (f optionFunc[T]) apply(p *Pool[T]) {
	f(p)
}

// WithLogger sets the logger used by pool operations.
func WithLogger[T any](l logger.Logger) Option[T] {
	return optionFunc[T](func(p *Pool[T]) {
		p.logger = l
	})
}

// WithIDGenerator replaces the identity generator for new resources. The
// generator must never produce an identity already held by a live resource.
func WithIDGenerator[T any](fn func() string) Option[T] {
	return optionFunc[T](func(p *Pool[T]) {
		p.newID = fn
	})
}

// StrictRelease makes Release report ErrForeignResource instead of silently
// ignoring a resource the pool does not hold busy.
func StrictRelease[T any]() Option[T] {
	return optionFunc[T](func(p *Pool[T]) {
		p.strict = true
	})
}
