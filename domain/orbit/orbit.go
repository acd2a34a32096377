package orbit

import (
	"fluxion/domain/core"
	"fluxion/domain/device"
	"fluxion/domain/transform"
)

// Orbit is the closed set of functions reachable from a base element
// under one or more generator transforms. Membership is independent of
// which element was chosen as base.
type Orbit interface {
	Representative() device.Function
	Elements() ([]device.Function, error)
	Cardinality() (int, error)
	Contains(g device.Function) (bool, error)
}

// Walker steps through a single-generator orbit: base, t(base),
// t²(base)... ending when the next application would return to base.
// Generators induce finite-order permutations on the function space, so
// the walk is a simple cycle with no interior repeats.
type Walker struct {
	base    device.Function
	gen     transform.Transform
	current device.Function
	started bool
	done    bool
}

// NewWalker starts a walk from base under gen
func NewWalker(base device.Function, gen transform.Transform) *Walker {
	return &Walker{base: base, gen: gen}
}

// Next yields the next orbit element. The boolean is false once the cycle
// has closed; an error aborts the walk.
func (w *Walker) Next() (device.Function, bool, error) {
	if w.done {
		return device.Function{}, false, nil
	}
	if !w.started {
		w.started = true
		w.current = w.base
		return w.current, true, nil
	}
	next, err := w.gen.Apply(w.current)
	if err != nil {
		w.done = true
		return device.Function{}, false, err
	}
	if next.Equal(w.base) {
		w.done = true
		return device.Function{}, false, nil
	}
	w.current = next
	return w.current, true, nil
}

// Group is the orbit of a base function under one generator transform.
type Group struct {
	base device.Function
	gen  transform.Transform
}

// NewGroup creates a single-generator orbit with base as representative
func NewGroup(base device.Function, gen transform.Transform) Group {
	return Group{base: base, gen: gen}
}

// Representative returns the base element
func (g Group) Representative() device.Function {
	return g.base
}

// Generator returns the generating transform
func (g Group) Generator() transform.Transform {
	return g.gen
}

// Walk starts a fresh traversal of the orbit
func (g Group) Walk() *Walker {
	return NewWalker(g.base, g.gen)
}

// Elements materializes the orbit in walk order
func (g Group) Elements() ([]device.Function, error) {
	var out []device.Function
	w := g.Walk()
	for {
		f, ok, err := w.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, f)
	}
}

// Cardinality returns the orbit size
func (g Group) Cardinality() (int, error) {
	elems, err := g.Elements()
	if err != nil {
		return 0, err
	}
	return len(elems), nil
}

// Contains reports whether some power of the generator maps the base to
// target
func (g Group) Contains(target device.Function) (bool, error) {
	w := g.Walk()
	for {
		f, ok, err := w.Next()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if f.Equal(target) {
			return true, nil
		}
	}
}

// CompositeGroup is the orbit of a base function under an ordered list of
// generators: the single-generator orbit of the first, expanded
// recursively under the rest. The raw traversal revisits elements when
// generators commute, so materialization deduplicates.
type CompositeGroup struct {
	base device.Function
	gens []transform.Transform
}

// NewCompositeGroup creates a multi-generator orbit with base as
// representative
func NewCompositeGroup(base device.Function, gens []transform.Transform) CompositeGroup {
	owned := make([]transform.Transform, len(gens))
	copy(owned, gens)
	return CompositeGroup{base: base, gens: owned}
}

// Representative returns the base element
func (g CompositeGroup) Representative() device.Function {
	return g.base
}

// Generators returns the generating transforms in order
func (g CompositeGroup) Generators() []transform.Transform {
	out := make([]transform.Transform, len(g.gens))
	copy(out, g.gens)
	return out
}

// Elements materializes the orbit, deduplicated by structural hash in
// first-reach order. An empty generator list yields just the base.
func (g CompositeGroup) Elements() ([]device.Function, error) {
	seen := make(map[core.FunctionHash]bool)
	var out []device.Function
	_, err := expand(g.base, g.gens, func(f device.Function) bool {
		h := f.Hash()
		if !seen[h] {
			seen[h] = true
			out = append(out, f)
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cardinality returns the deduplicated orbit size
func (g CompositeGroup) Cardinality() (int, error) {
	elems, err := g.Elements()
	if err != nil {
		return 0, err
	}
	return len(elems), nil
}

// Contains scans the raw walk for target, stopping at the first hit
func (g CompositeGroup) Contains(target device.Function) (bool, error) {
	return expand(g.base, g.gens, func(f device.Function) bool {
		return f.Equal(target)
	})
}

// expand visits every element reachable from base under the ordered
// generator list, duplicates included. The visitor returns true to stop
// the traversal early; expand reports whether it was stopped.
func expand(base device.Function, gens []transform.Transform, visit func(device.Function) bool) (bool, error) {
	if len(gens) == 0 {
		return visit(base), nil
	}
	w := NewWalker(base, gens[0])
	for {
		f, ok, err := w.Next()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		stopped, err := expand(f, gens[1:], visit)
		if err != nil || stopped {
			return stopped, err
		}
	}
}
