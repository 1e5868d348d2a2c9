package pool

// Resource is a pooled handle around a caller value. Its identity is assigned
// when the pool constructs it and stays stable for the resource's lifetime;
// the pool keys its bookkeeping on this identity, never on Go reference
// identity.
type Resource[T any] struct {
	id    string
	value T
}

// ID returns the resource's identity token.
func (r *Resource[T]) ID() string {
	return r.id
}

// Value returns the pooled value itself.
func (r *Resource[T]) Value() T {
	return r.value
}
