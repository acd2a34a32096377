package transform

import (
	"fluxion/domain/device"
)

// ClassificationSet returns the generators used to partition an accepted
// universe into equivalence groups: direction reversal always; state
// negation when flux conservation is off or the states are flux-neutral
// (exchanging polarized states changes flux, so conservation would be
// broken); and every port exchange. Rotations are omitted because the
// exchanges already generate them.
func ClassificationSet(dims device.Dimensions, conserveFlux bool) []Transform {
	ts := []Transform{DirectionReversal{}}
	if !conserveFlux || dims.States().FluxNeutral() {
		ts = append(ts, StateNegation{})
	}
	return append(ts, portExchanges(dims.Ports())...)
}

// ReportableSet returns the transforms named in reports when describing a
// representative: direction reversal, state negation for flux-neutral
// states, all port exchanges, and all distinct rotations. Flux negation
// is never reported: the admission pipeline only passes flux-symmetric
// functions, so the relation would be vacuous.
func ReportableSet(dims device.Dimensions) []Transform {
	ts := []Transform{DirectionReversal{}}
	if dims.States().FluxNeutral() {
		ts = append(ts, StateNegation{})
	}
	ts = append(ts, portExchanges(dims.Ports())...)
	for _, off := range rotationOffsets(dims.Ports()) {
		r, err := NewPortRotation(off, dims.Ports())
		if err != nil {
			continue
		}
		ts = append(ts, r)
	}
	return ts
}

func portExchanges(ports int) []Transform {
	var ts []Transform
	for i := 0; i < ports; i++ {
		for j := i + 1; j < ports; j++ {
			e, err := NewPortExchange(i, j)
			if err != nil {
				continue
			}
			ts = append(ts, e)
		}
	}
	return ts
}

// rotationOffsets lists the distinct nontrivial offsets for n ports:
// ±1..±⌊n/2⌋, with the half-turn listed once when n is even.
func rotationOffsets(n int) []int {
	var offs []int
	for k := 1; k <= n/2; k++ {
		if 2*k == n {
			offs = append(offs, k)
		} else {
			offs = append(offs, k, -k)
		}
	}
	return offs
}
