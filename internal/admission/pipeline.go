package admission

import (
	"fmt"

	"fluxion/domain/device"
)

// StageCount pairs a stage name with the number of candidates that reached
// past it.
type StageCount struct {
	Stage string
	Count uint64
}

// Pipeline runs every candidate through the admission gates in order,
// short-circuiting on the first failure and keeping a survivor count per
// stage. The gate line-up depends on the surveyed universe: flux
// conservation only when the run demands it, flux symmetry only when the
// pulse alphabet can express negation at all.
type Pipeline struct {
	gates  []Gate
	raw    uint64
	passed []uint64
}

// NewPipeline assembles the gate line-up for one survey universe.
func NewPipeline(dims device.Dimensions, conserveFlux bool) *Pipeline {
	var gates []Gate
	if conserveFlux {
		gates = append(gates, conservationGate{})
	}
	if !dims.Alphabet().IsUnary() {
		gates = append(gates, fluxSymmetryGate{})
	}
	gates = append(gates, atomicityGate{}, dynamismGate{}, nonTrivialityGate{})

	return &Pipeline{
		gates:  gates,
		passed: make([]uint64, len(gates)),
	}
}

// Admit runs f through the gates. It reports whether f survived all of
// them, and bumps the per-stage counters as a side effect.
func (p *Pipeline) Admit(f device.Function) (bool, error) {
	p.raw++
	for i, g := range p.gates {
		verdict, err := g.Evaluate(f)
		if err != nil {
			return false, fmt.Errorf("gate %s: %w", g.Name(), err)
		}
		if !verdict.Passed {
			return false, nil
		}
		p.passed[i]++
	}
	return true, nil
}

// Counts returns the survivor tally per stage, raw first, in gate order.
func (p *Pipeline) Counts() []StageCount {
	counts := make([]StageCount, 0, len(p.gates)+1)
	counts = append(counts, StageCount{Stage: StageRaw, Count: p.raw})
	for i, g := range p.gates {
		counts = append(counts, StageCount{Stage: g.Name(), Count: p.passed[i]})
	}
	return counts
}

// RawCount returns how many candidates entered the pipeline.
func (p *Pipeline) RawCount() uint64 {
	return p.raw
}

// Accepted returns how many candidates survived every gate.
func (p *Pipeline) Accepted() uint64 {
	return p.passed[len(p.passed)-1]
}
