package classify

import (
	"fluxion/domain/device"
	"fluxion/domain/orbit"
	"fluxion/domain/transform"
)

// Registry is the ordered list of equivalence groups discovered in one
// classification pass. Groups are pairwise disjoint and their union is
// exactly the set of observed functions. A registry lives for one run and
// is never persisted.
type Registry struct {
	groups []orbit.Orbit
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Groups returns the discovered groups in creation order
func (r *Registry) Groups() []orbit.Orbit {
	out := make([]orbit.Orbit, len(r.groups))
	copy(out, r.groups)
	return out
}

// Len returns the number of groups
func (r *Registry) Len() int {
	return len(r.groups)
}

// Classifier partitions accepted device functions into equivalence groups
// under a fixed generator set. Functions are fed one at a time, in
// enumeration order, so classification can run streaming off the
// admission pipeline or over a materialized universe.
type Classifier struct {
	gens     []transform.Transform
	registry *Registry
}

// NewClassifier creates a classifier over the given generators
func NewClassifier(gens []transform.Transform) *Classifier {
	owned := make([]transform.Transform, len(gens))
	copy(owned, gens)
	return &Classifier{gens: owned, registry: NewRegistry()}
}

// Observe places f into an existing group, or opens a new group with f as
// canonical representative. It reports whether a new group was created.
// Membership tests short-circuit on the first group that contains f.
func (c *Classifier) Observe(f device.Function) (bool, error) {
	for _, g := range c.registry.groups {
		ok, err := g.Contains(f)
		if err != nil {
			return false, err
		}
		if ok {
			return false, nil
		}
	}
	c.registry.groups = append(c.registry.groups, c.newGroup(f))
	return true, nil
}

// Registry returns the partition built so far
func (c *Classifier) Registry() *Registry {
	return c.registry
}

func (c *Classifier) newGroup(f device.Function) orbit.Orbit {
	if len(c.gens) == 1 {
		return orbit.NewGroup(f, c.gens[0])
	}
	return orbit.NewCompositeGroup(f, c.gens)
}
