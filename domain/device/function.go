package device

import (
	"fmt"
	"strings"

	"fluxion/domain/core"
)

// Function is a complete transition table for a device: a bijection
// sending every input syndrome to an output syndrome over the same
// universe. Functions are immutable; every operator returns a new one.
type Function struct {
	dims    Dimensions
	mapping Mapping
}

// Identity returns the function mapping every syndrome to itself
func Identity(dims Dimensions) Function {
	m := make(Mapping, dims.SyndromeCount())
	for _, s := range dims.Syndromes() {
		m[s] = s
	}
	return Function{dims: dims, mapping: m}
}

// New validates mapping as a total bijection over the universe of dims.
// Unknown symbols and out-of-range ports fail loudly rather than being
// carried along.
func New(dims Dimensions, mapping Mapping) (Function, error) {
	if len(mapping) != dims.SyndromeCount() {
		return Function{}, core.NewMappingError(
			fmt.Sprintf("have %d pairs, universe holds %d", len(mapping), dims.SyndromeCount()))
	}
	outputs := make(map[Syndrome]bool, len(mapping))
	for in, out := range mapping {
		if _, err := dims.Index(in); err != nil {
			return Function{}, fmt.Errorf("input %s: %w", in, err)
		}
		if _, err := dims.Index(out); err != nil {
			return Function{}, fmt.Errorf("output %s: %w", out, err)
		}
		if outputs[out] {
			return Function{}, core.NewMappingError(fmt.Sprintf("output %s appears twice", out))
		}
		outputs[out] = true
	}
	return Function{dims: dims, mapping: mapping.Clone()}, nil
}

// Dims returns the universe the function is defined over
func (f Function) Dims() Dimensions {
	return f.dims
}

// Table returns an independent copy of the transition table
func (f Function) Table() Mapping {
	return f.mapping.Clone()
}

// Apply returns the output syndrome for in
func (f Function) Apply(in Syndrome) (Syndrome, error) {
	out, ok := f.mapping[in]
	if !ok {
		return Syndrome{}, core.NewUnknownSymbolError("function domain", in.String())
	}
	return out, nil
}

// ConservesFlux reports whether every pair carries equal flux in and out
func (f Function) ConservesFlux() bool {
	for in, out := range f.mapping {
		if in.Flux() != out.Flux() {
			return false
		}
	}
	return true
}

// ChangesState reports whether any pair alters the internal state
func (f Function) ChangesState() bool {
	for in, out := range f.mapping {
		if in.State != out.State {
			return true
		}
	}
	return false
}

// ChangesPort reports whether any pair moves a pulse to another port
func (f Function) ChangesPort() bool {
	for in, out := range f.mapping {
		if in.Port != out.Port {
			return true
		}
	}
	return false
}

// PortActive reports whether port p does observable work: some pair whose
// input arrives at p either leaves by another port or changes the state.
// An inactive port always reflects and never influences state, so the
// device decomposes into a smaller device plus a reflector.
func (f Function) PortActive(p int) bool {
	for in, out := range f.mapping {
		if in.Port != p {
			continue
		}
		if out.Port != p || out.State != in.State {
			return true
		}
	}
	return false
}

// HasInactivePort reports whether any port is inactive
func (f Function) HasInactivePort() bool {
	for p := 0; p < f.dims.Ports(); p++ {
		if !f.PortActive(p) {
			return true
		}
	}
	return false
}

// Reverse returns the functional inverse: each output syndrome,
// reinterpreted as an input, maps back to its original input.
func (f Function) Reverse() Function {
	m := make(Mapping, len(f.mapping))
	for in, out := range f.mapping {
		m[out] = in
	}
	return Function{dims: f.dims, mapping: m}
}

// NegateFlux rebuilds the table with every pulse negated through the
// alphabet and every state negated through the state set, on both sides
// of every pair. Fails if either set does not support negation.
func (f Function) NegateFlux() (Function, error) {
	m := make(Mapping, len(f.mapping))
	for in, out := range f.mapping {
		nin, err := f.negateSyndrome(in)
		if err != nil {
			return Function{}, err
		}
		nout, err := f.negateSyndrome(out)
		if err != nil {
			return Function{}, err
		}
		m[nin] = nout
	}
	return Function{dims: f.dims, mapping: m}, nil
}

func (f Function) negateSyndrome(s Syndrome) (Syndrome, error) {
	pulse, err := f.dims.Alphabet().Negate(s.Pulse)
	if err != nil {
		return Syndrome{}, err
	}
	state, err := f.dims.States().Negate(s.State)
	if err != nil {
		return Syndrome{}, err
	}
	return Syndrome{Port: s.Port, Pulse: pulse, State: state}, nil
}

// NegateStates rebuilds the table with state symbols negated on both
// sides of every pair. Fails if the state set does not support negation.
func (f Function) NegateStates() (Function, error) {
	m := make(Mapping, len(f.mapping))
	for in, out := range f.mapping {
		inState, err := f.dims.States().Negate(in.State)
		if err != nil {
			return Function{}, err
		}
		outState, err := f.dims.States().Negate(out.State)
		if err != nil {
			return Function{}, err
		}
		m[Syndrome{Port: in.Port, Pulse: in.Pulse, State: inState}] =
			Syndrome{Port: out.Port, Pulse: out.Pulse, State: outState}
	}
	return Function{dims: f.dims, mapping: m}, nil
}

// SwapPorts rebuilds the table with ports i and j exchanged on both sides
func (f Function) SwapPorts(i, j int) (Function, error) {
	n := f.dims.Ports()
	if i < 0 || i >= n || j < 0 || j >= n {
		return Function{}, core.NewTransformError(
			fmt.Sprintf("port exchange %d<->%d out of range for %d ports", i+1, j+1, n))
	}
	swap := func(p int) int {
		switch p {
		case i:
			return j
		case j:
			return i
		}
		return p
	}
	m := make(Mapping, len(f.mapping))
	for in, out := range f.mapping {
		m[Syndrome{Port: swap(in.Port), Pulse: in.Pulse, State: in.State}] =
			Syndrome{Port: swap(out.Port), Pulse: out.Pulse, State: out.State}
	}
	return Function{dims: f.dims, mapping: m}, nil
}

// RotatePorts rebuilds the table with every port shifted by offset,
// wrapping modulo the port count. Any offset is accepted and reduced
// first.
func (f Function) RotatePorts(offset int) Function {
	n := f.dims.Ports()
	rot := func(p int) int {
		return ((p+offset)%n + n) % n
	}
	m := make(Mapping, len(f.mapping))
	for in, out := range f.mapping {
		m[Syndrome{Port: rot(in.Port), Pulse: in.Pulse, State: in.State}] =
			Syndrome{Port: rot(out.Port), Pulse: out.Pulse, State: out.State}
	}
	return Function{dims: f.dims, mapping: m}
}

// Equal reports structural equality: same universe and identical table.
// Orbit closure detection depends on this being value equality.
func (f Function) Equal(g Function) bool {
	if !f.dims.Equal(g.dims) || len(f.mapping) != len(g.mapping) {
		return false
	}
	for in, out := range f.mapping {
		if g.mapping[in] != out {
			return false
		}
	}
	return true
}

// Rows renders one "<input> -> <output>" line per pair in canonical
// input order
func (f Function) Rows() []string {
	syndromes := f.dims.Syndromes()
	rows := make([]string, 0, len(syndromes))
	for _, in := range syndromes {
		rows = append(rows, f.dims.RenderInput(in)+" -> "+f.dims.RenderOutput(f.mapping[in]))
	}
	return rows
}

// Hash returns the canonical structural hash of the table
func (f Function) Hash() core.FunctionHash {
	return core.ComputeFunctionHash(f.Rows())
}

// String renders the transition table body, one pair per line
func (f Function) String() string {
	return strings.Join(f.Rows(), "\n")
}
