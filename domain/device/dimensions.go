package device

import (
	"fmt"

	"fluxion/domain/core"
	"fluxion/domain/symbol"
)

// Dimensions fixes the finite universe a device operates over: a port
// count, one pulse alphabet shared by every port, and one state set.
type Dimensions struct {
	ports    int
	alphabet symbol.Alphabet
	states   symbol.StateSet
}

// NewDimensions validates and assembles a device universe
func NewDimensions(ports int, alphabet symbol.Alphabet, states symbol.StateSet) (Dimensions, error) {
	if ports < 1 {
		return Dimensions{}, fmt.Errorf("dimensions require at least one port, got %d", ports)
	}
	if alphabet.Arity() == 0 {
		return Dimensions{}, fmt.Errorf("dimensions require a pulse alphabet")
	}
	if states.Cardinality() == 0 {
		return Dimensions{}, fmt.Errorf("dimensions require a state set")
	}
	return Dimensions{ports: ports, alphabet: alphabet, states: states}, nil
}

// Ports returns the port count
func (d Dimensions) Ports() int {
	return d.ports
}

// Alphabet returns the shared pulse alphabet
func (d Dimensions) Alphabet() symbol.Alphabet {
	return d.alphabet
}

// States returns the state set
func (d Dimensions) States() symbol.StateSet {
	return d.states
}

// SyndromeCount returns the universe size: ports x arity x states
func (d Dimensions) SyndromeCount() int {
	return d.ports * d.alphabet.Arity() * d.states.Cardinality()
}

// Syndromes enumerates the universe port-major, then by alphabet order,
// then by state order. This is the canonical order used for rendering
// and hashing.
func (d Dimensions) Syndromes() []Syndrome {
	out := make([]Syndrome, 0, d.SyndromeCount())
	for p := 0; p < d.ports; p++ {
		for _, pulse := range d.alphabet.Symbols() {
			for _, state := range d.states.States() {
				out = append(out, Syndrome{Port: p, Pulse: pulse, State: state})
			}
		}
	}
	return out
}

// Index returns the canonical position of s within Syndromes()
func (d Dimensions) Index(s Syndrome) (int, error) {
	if s.Port < 0 || s.Port >= d.ports {
		return 0, core.NewMappingError(fmt.Sprintf("port %d out of range for %d ports", s.Port, d.ports))
	}
	pi, err := d.alphabet.IndexOf(s.Pulse)
	if err != nil {
		return 0, err
	}
	si, err := d.states.IndexOf(s.State)
	if err != nil {
		return 0, err
	}
	card := d.states.Cardinality()
	return s.Port*d.alphabet.Arity()*card + pi*card + si, nil
}

// Contains reports whether s belongs to the universe
func (d Dimensions) Contains(s Syndrome) bool {
	_, err := d.Index(s)
	return err == nil
}

// Equal reports whether two universes coincide
func (d Dimensions) Equal(other Dimensions) bool {
	return d.ports == other.ports &&
		d.alphabet.Equal(other.alphabet) &&
		d.states.Equal(other.states)
}

// String renders the dimension descriptor, e.g. "[-1, 1]*3(-1,1)"
func (d Dimensions) String() string {
	return fmt.Sprintf("%s*%d(%s)", d.alphabet, d.ports, d.states)
}

// RenderInput renders an input-side syndrome. A unary alphabet omits the
// pulse: "2(L)"; otherwise "-1>2(L)".
func (d Dimensions) RenderInput(s Syndrome) string {
	if d.alphabet.IsUnary() {
		return fmt.Sprintf("%d(%s)", s.Port+1, s.State)
	}
	return fmt.Sprintf("%s>%d(%s)", s.Pulse, s.Port+1, s.State)
}

// RenderOutput renders an output-side syndrome. A unary alphabet omits
// the pulse: "(L)2"; otherwise "(L)2>-1".
func (d Dimensions) RenderOutput(s Syndrome) string {
	if d.alphabet.IsUnary() {
		return fmt.Sprintf("(%s)%d", s.State, s.Port+1)
	}
	return fmt.Sprintf("(%s)%d>%s", s.State, s.Port+1, s.Pulse)
}
