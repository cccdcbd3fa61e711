package reveal

import (
	"sync"
	"time"
)

// Ref identifies a rendered element by its DOM id. The zero value is an unset
// reference, for example an element a conditional render skipped.
type Ref string

// Controller accepts reveal registrations.
type Controller interface {
	Reveal(ref Ref, cfg Config)
}

// Registration associates an element with its animation.
type Registration struct {
	Ref    Ref
	Config Config
}

// Registry is the Controller used for a single page render.
// Each element is registered at most once; later registrations for the same
// ref are ignored.
type Registry struct {
	mu   sync.Mutex
	regs []Registration
	seen map[Ref]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[Ref]struct{})}
}

// Reveal records a registration. An unset ref is a no-op.
func (r *Registry) Reveal(ref Ref, cfg Config) {
	if ref == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seen[ref]; ok {
		return
	}
	r.seen[ref] = struct{}{}
	r.regs = append(r.regs, Registration{Ref: ref, Config: cfg})
}

// Registrations returns a copy of the registrations in the order they were made.
func (r *Registry) Registrations() []Registration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Registration, len(r.regs))
	copy(out, r.regs)
	return out
}

// Len reports the number of registered elements.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.regs)
}

// Staggered registers refs so they animate in sequence: the element at index i
// gets a delay of i*StaggerStep. Unset refs keep their slot in the sequence.
func Staggered(ctrl Controller, refs []Ref) {
	Each(ctrl, refs, StaggerStep)
}

// Each is Staggered with a custom step.
func Each(ctrl Controller, refs []Ref, step time.Duration) {
	if ctrl == nil {
		return
	}
	for i, ref := range refs {
		ctrl.Reveal(ref, Default(time.Duration(i)*step, DefaultViewFactor))
	}
}

// Discard is a Controller that drops every registration.
var Discard Controller = discard{}

type discard struct{}

func (discard) Reveal(Ref, Config) {}
