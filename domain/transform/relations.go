package transform

import (
	"fmt"

	"fluxion/domain/core"
	"fluxion/domain/device"
)

// IsSymmetric reports whether f is a fixed point of t.
func IsSymmetric(t Transform, f device.Function) (bool, error) {
	image, err := t.Apply(f)
	if err != nil {
		return false, err
	}
	return image.Equal(f), nil
}

// AreDuals reports whether t maps f to g. Duality is only a symmetric
// relation for self-inverse transforms; asking it of any other order is
// misuse.
func AreDuals(t Transform, f, g device.Function) (bool, error) {
	if t.Order() != 2 {
		return false, core.NewTransformError(
			fmt.Sprintf("duality requires a self-inverse transform, %s has order %d", t.Symbol(), t.Order()))
	}
	image, err := t.Apply(f)
	if err != nil {
		return false, err
	}
	return image.Equal(g), nil
}
