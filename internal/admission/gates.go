package admission

import (
	"fmt"

	"fluxion/domain/device"
	"fluxion/domain/transform"
)

// Stage names, in pipeline order. The raw stage counts every candidate
// before any gate runs.
const (
	StageRaw           = "raw"
	StageConservation  = "flux conservation"
	StageFluxSymmetry  = "flux symmetry"
	StageAtomicity     = "atomicity"
	StageDynamism      = "state dynamism"
	StageNonTriviality = "non-triviality"
)

// Verdict is the outcome of one gate on one candidate function.
type Verdict struct {
	Gate   string
	Passed bool
	Reason string
}

// Gate is the contract every admission check satisfies.
type Gate interface {
	Name() string
	Evaluate(f device.Function) (Verdict, error)
}

func pass(gate string) Verdict {
	return Verdict{Gate: gate, Passed: true}
}

func fail(gate, reason string) Verdict {
	return Verdict{Gate: gate, Passed: false, Reason: reason}
}

// conservationGate rejects functions with any flux-changing transition.
type conservationGate struct{}

func (conservationGate) Name() string { return StageConservation }

func (g conservationGate) Evaluate(f device.Function) (Verdict, error) {
	if !f.ConservesFlux() {
		return fail(g.Name(), "some transition changes total flux"), nil
	}
	return pass(g.Name()), nil
}

// fluxSymmetryGate rejects functions that are not invariant under flux
// negation. Only meaningful when the pulse alphabet has more than one
// symbol; the pipeline skips it otherwise.
type fluxSymmetryGate struct{}

func (fluxSymmetryGate) Name() string { return StageFluxSymmetry }

func (g fluxSymmetryGate) Evaluate(f device.Function) (Verdict, error) {
	symmetric, err := transform.IsSymmetric(transform.FluxNegation{}, f)
	if err != nil {
		return Verdict{}, err
	}
	if !symmetric {
		return fail(g.Name(), "not invariant under flux negation"), nil
	}
	return pass(g.Name()), nil
}

// atomicityGate rejects functions with an inactive port, since those
// decompose into smaller independent devices.
type atomicityGate struct{}

func (atomicityGate) Name() string { return StageAtomicity }

func (g atomicityGate) Evaluate(f device.Function) (Verdict, error) {
	ports := f.Dims().Ports()
	for p := 0; p < ports; p++ {
		if !f.PortActive(p) {
			return fail(g.Name(), fmt.Sprintf("port %d is inactive", p+1)), nil
		}
	}
	return pass(g.Name()), nil
}

// dynamismGate rejects functions that never change the device state.
type dynamismGate struct{}

func (dynamismGate) Name() string { return StageDynamism }

func (g dynamismGate) Evaluate(f device.Function) (Verdict, error) {
	if !f.ChangesState() {
		return fail(g.Name(), "no transition changes state"), nil
	}
	return pass(g.Name()), nil
}

// nonTrivialityGate rejects functions invariant under state negation.
// Such functions ignore the state they pretend to switch on.
type nonTrivialityGate struct{}

func (nonTrivialityGate) Name() string { return StageNonTriviality }

func (g nonTrivialityGate) Evaluate(f device.Function) (Verdict, error) {
	symmetric, err := transform.IsSymmetric(transform.StateNegation{}, f)
	if err != nil {
		return Verdict{}, err
	}
	if symmetric {
		return fail(g.Name(), "invariant under state negation"), nil
	}
	return pass(g.Name()), nil
}
