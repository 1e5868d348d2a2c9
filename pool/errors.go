package pool

import "errors"

// ErrForeignResource is returned by Release in strict mode when the resource
// is nil, was never issued by the pool, or has already been released.
var ErrForeignResource = errors.New("resource is not leased from this pool")
