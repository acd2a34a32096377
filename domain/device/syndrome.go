package device

import (
	"fmt"

	"fluxion/domain/symbol"
)

// Syndrome is one device configuration: a pulse arriving at a port while
// the device holds an internal state. Ports are zero-based internally and
// rendered one-based in reports.
type Syndrome struct {
	Port  int
	Pulse symbol.Symbol
	State symbol.Symbol
}

// Flux returns the conserved quantity carried by the configuration
func (s Syndrome) Flux() int {
	return s.Pulse.Flux() + s.State.Flux()
}

// Less orders syndromes lexicographically on (port, pulse, state)
func (s Syndrome) Less(other Syndrome) bool {
	if s.Port != other.Port {
		return s.Port < other.Port
	}
	if s.Pulse != other.Pulse {
		return s.Pulse.Less(other.Pulse)
	}
	return s.State.Less(other.State)
}

// String is a debug rendering; reports go through Dimensions.RenderInput
// and RenderOutput instead
func (s Syndrome) String() string {
	return fmt.Sprintf("port %d pulse %s state %s", s.Port+1, s.Pulse, s.State)
}

// Mapping is a transition table: input syndromes to output syndromes.
type Mapping map[Syndrome]Syndrome

// Clone returns an independent copy of the table
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for in, to := range m {
		out[in] = to
	}
	return out
}
