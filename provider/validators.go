package provider

import (
	"fmt"
	"math"
)

// requireScale ensures scale >= min.
func (p *Provider) requireScale(method string, min int) error {
	if p.scale < min {
		return fmt.Errorf("%s: scale must be ≥ %d, got %d: %w", method, min, p.scale, ErrInvalidScale)
	}
	return nil
}

// requireSecondaryScale ensures secondaryScale >= min.
func (p *Provider) requireSecondaryScale(method string, min int) error {
	if p.secondaryScale < min {
		return fmt.Errorf("%s: secondaryScale must be ≥ %d, got %d: %w", method, min, p.secondaryScale, ErrInvalidScale)
	}
	return nil
}

// requireNotNaN rejects NaN bounds.
func requireNotNaN(method string, xs ...float64) error {
	for _, x := range xs {
		if math.IsNaN(x) {
			return fmt.Errorf("%s: %w", method, ErrNaNBound)
		}
	}
	return nil
}

// requireFinite rejects NaN and infinite bounds.
func requireFinite(method string, xs ...float64) error {
	if err := requireNotNaN(method, xs...); err != nil {
		return err
	}
	for _, x := range xs {
		if math.IsInf(x, 0) {
			return fmt.Errorf("%s: %v: %w", method, x, ErrInfiniteBound)
		}
	}
	return nil
}
