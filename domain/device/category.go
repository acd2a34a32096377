package device

import (
	"fmt"

	"fluxion/domain/core"
	"fluxion/domain/symbol"
)

// Category names one of the supported device families.
type Category string

const (
	// PolarizedState pairs the symmetric binary alphabet {-1,+1} with the
	// polarized two-state set {-1,+1}.
	PolarizedState Category = "polarized-state"

	// NeutralState pairs the positive unary alphabet {+1} with the
	// flux-neutral state set {L,R}. Valid only under flux conservation,
	// which is what justifies dropping the negative pulse sector.
	NeutralState Category = "neutral-state"
)

// Categories lists the supported families in report order
func Categories() []Category {
	return []Category{PolarizedState, NeutralState}
}

// ParseCategory resolves a CLI/config string to a Category
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case PolarizedState, NeutralState:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnsupportedCategory, s)
}

// String returns the category name
func (c Category) String() string {
	return string(c)
}

// Dimensions resolves the category's vocabulary for a port count and
// validates the flux-conservation combination.
func (c Category) Dimensions(ports int, conserveFlux bool) (Dimensions, error) {
	switch c {
	case PolarizedState:
		return NewDimensions(ports, symbol.SymmetricBinary(), symbol.PolarizedStates())
	case NeutralState:
		if !conserveFlux {
			return Dimensions{}, fmt.Errorf("%w: %s requires flux conservation", core.ErrUnsupportedCategory, c)
		}
		return NewDimensions(ports, symbol.PositiveUnary(), symbol.LRStates())
	}
	return Dimensions{}, fmt.Errorf("%w: %q", core.ErrUnsupportedCategory, c)
}
