package prototype

import (
	"errors"
	"sync"
)

var ErrUnknownPrototype = errors.New("unknown prototype")

// Prototype is anything that can produce an independent copy of itself.
type Prototype interface {
	Clone() Prototype
}

// Document is a cloneable template. Clone copies the slice and map so edits
// to a clone never leak back into the original.
type Document struct {
	Title string
	Tags  []string
	Meta  map[string]string
}

func (d *Document) Clone() Prototype {
	clone := &Document{
		Title: d.Title,
		Tags:  make([]string, len(d.Tags)),
		Meta:  make(map[string]string, len(d.Meta)),
	}
	copy(clone.Tags, d.Tags)
	for k, v := range d.Meta {
		clone.Meta[k] = v
	}

	return clone
}

// Registry stores named prototypes and hands out clones, never the originals.
type Registry struct {
	mu         sync.Mutex
	prototypes map[string]Prototype
}

func NewRegistry() *Registry {
	return &Registry{
		prototypes: make(map[string]Prototype),
	}
}

func (r *Registry) Register(name string, p Prototype) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prototypes[name] = p
}

// Create returns a fresh clone of the named prototype.
func (r *Registry) Create(name string) (Prototype, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.prototypes[name]
	if !ok {
		return nil, ErrUnknownPrototype
	}

	return p.Clone(), nil
}
