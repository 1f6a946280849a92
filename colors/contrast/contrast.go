// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contrast adjusts colors along a luminance axis to satisfy
// or maximize WCAG 2.1 contrast-ratio requirements against a target
// color.
//
// It provides four strategies with different quality/cost trade-offs:
// [Accessible] stops at the first color meeting a threshold,
// [MaximalIterative] hill-climbs with a fixed step in both directions,
// [MaximalBinarySearch] bisects a factor interval per direction, and
// [MaximalOptimization] runs a continuous maximization (golden-section
// or numerical-gradient ascent) over the factor.
//
// Every strategy is deterministic, synchronous, and always returns a
// valid color; the only hard error is an unrecognized optimization
// [Method], which signals caller misuse rather than a data condition.
package contrast

import (
	"github.com/pirsquared/chromo-map/colors"
)

// Basis selects the luminance axis the strategies move a color along.
type Basis int32

const (
	// Lightness adjusts the HSL lightness channel.
	Lightness Basis = iota

	// Brightness adjusts the HSV value channel.
	Brightness
)

func (b Basis) String() string {
	if b == Brightness {
		return "brightness"
	}
	return "lightness"
}

// Adjust applies the basis's adjustment primitive to the color with
// the given multiplicative factor.
func (b Basis) Adjust(c colors.Color, factor float64) (colors.Color, error) {
	if b == Brightness {
		return c.AdjustBrightness(factor)
	}
	return c.AdjustLightness(factor)
}

// Canonical parameter defaults shared by the strategies. Passing a
// non-positive value for the corresponding argument selects these.
const (
	DefaultStepSize    = 0.1
	DefaultMaxAttempts = 50
	DefaultPrecision   = 0.001
)

// Accessible returns a version of base adjusted along the given basis
// until its contrast ratio against target meets the given WCAG level.
//
// If base already meets the threshold it is returned unchanged. The
// direction is chosen from the luminance comparison: a base brighter
// than the target is pushed lighter with a compounding factor of 1.1
// (capped at 2.0), a darker base is pushed darker with 0.9 (floored
// at 0.1). The factor is reapplied to the current color each step, up
// to 50 attempts. If the threshold is unreachable within those
// bounds, or an adjustment degenerates, the closest color reached is
// returned; this is a silent degrade, never an error.
func Accessible(base, target colors.Color, level colors.Level, basis Basis) colors.Color {
	required := level.MinRatio()
	if colors.ContrastRatio(base, target) >= required {
		return base
	}

	var factor, maxFactor float64
	if base.Luminance() > target.Luminance() {
		factor, maxFactor = 1.1, 2.0
	} else {
		factor, maxFactor = 0.9, 0.1
	}

	cur := base
	for attempts := 0; colors.ContrastRatio(cur, target) < required && attempts < DefaultMaxAttempts; attempts++ {
		next, err := basis.Adjust(cur, factor)
		if err != nil {
			break
		}
		cur = next
		if factor > 1 && factor >= maxFactor {
			break
		}
		if factor < 1 && factor <= maxFactor {
			break
		}
	}
	return cur
}

// MaximalIterative returns the color with the highest contrast ratio
// against target found by a greedy fixed-step hill-climb from base.
//
// Both the lightening (1+step) and darkening (1-step) directions are
// explored with a direction-local running color; a step is accepted
// only if it strictly improves on the best contrast seen so far, and
// the first non-improving step ends that direction. The level
// parameter is kept for interface symmetry with the other strategies;
// the climb has no threshold stop. stepSize and maxAttempts fall back
// to [DefaultStepSize] and [DefaultMaxAttempts] when non-positive.
// The result is never worse than base, and may be base itself when
// neither direction improves.
func MaximalIterative(base, target colors.Color, level colors.Level, basis Basis, stepSize float64, maxAttempts int) colors.Color {
	_ = level
	if stepSize <= 0 {
		stepSize = DefaultStepSize
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	best := base
	bestContrast := colors.ContrastRatio(base, target)

	for _, direction := range [2]float64{1, -1} {
		cur := base
		for attempts := 0; attempts < maxAttempts; attempts++ {
			next, err := basis.Adjust(cur, 1+direction*stepSize)
			if err != nil {
				break
			}
			nextContrast := colors.ContrastRatio(next, target)
			if nextContrast <= bestContrast {
				break
			}
			best, bestContrast = next, nextContrast
			cur = next
		}
	}
	return best
}

// MaximalBinarySearch returns the color with the highest contrast
// ratio against target found by bisecting the adjustment factor in
// each direction from base.
//
// The lighter direction searches factors in [1, 3], the darker in
// [0.1, 1]; every midpoint candidate is derived from base, not from
// the previous candidate. The global best tracks the objective, while
// the interval is narrowed with the threshold test for the given
// level: a midpoint meeting the required ratio moves the bound to
// keep searching the still-valid extreme. That predicate assumes the
// contrast response is monotonic in the factor within each interval,
// which is not guaranteed for every base/target pair; it is an
// inherited approximation, not an exact bisection. precision falls
// back to [DefaultPrecision] when non-positive. The result's contrast
// is never below base's.
func MaximalBinarySearch(base, target colors.Color, level colors.Level, basis Basis, precision float64) colors.Color {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	required := level.MinRatio()

	best := base
	bestContrast := colors.ContrastRatio(base, target)

	for _, lighter := range [2]bool{true, false} {
		low, high := 0.1, 1.0
		if lighter {
			low, high = 1.0, 3.0
		}
		for high-low > precision {
			mid := (low + high) / 2
			cand, err := basis.Adjust(base, mid)
			if err != nil {
				break
			}
			candContrast := colors.ContrastRatio(cand, target)
			if candContrast > bestContrast {
				best, bestContrast = cand, candContrast
			}
			if lighter {
				if candContrast >= required {
					low = mid
				} else {
					high = mid
				}
			} else {
				if candContrast >= required {
					high = mid
				} else {
					low = mid
				}
			}
		}
	}
	return best
}
