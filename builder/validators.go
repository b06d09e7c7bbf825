package builder

import "math"

// validatePair checks that vals holds exactly two finite numbers.
//
// Complexity: O(1).
func validatePair(method, field string, vals []float64) error {
	if len(vals) != 2 {
		return builderErrorf(method, "%s has %d values, want 2: %w", field, len(vals), ErrArity)
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return builderErrorf(method, "%s=%v: %w", field, vals, ErrBadSize)
		}
	}
	return nil
}

// validateAxes checks for exactly two axis names.
func validateAxes(method string, axes []string) error {
	if len(axes) != 2 {
		return builderErrorf(method, "%d axes, want 2: %w", len(axes), ErrArity)
	}
	return nil
}

// stepCount returns how many points of spacing step fit in span, counting
// both ends: ⌊span/step + 1⌋. Step must be non-zero and point towards span.
func stepCount(method string, span, step float64) (int, error) {
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0, builderErrorf(method, "step=%v: %w", step, ErrBadStep)
	}
	q := span / step
	if q < -stepTolerance {
		return 0, builderErrorf(method, "step=%v cannot cover %v: %w", step, span, ErrBadStep)
	}
	return int(math.Floor(q+stepTolerance)) + 1, nil
}
