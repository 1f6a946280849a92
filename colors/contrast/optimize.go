// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"fmt"
	"math"
	"strings"

	"github.com/pirsquared/chromo-map/colors"
)

// Method selects the continuous-optimization algorithm used by
// [MaximalOptimization].
type Method int32

const (
	// GoldenSection is a derivative-free golden-section search for
	// the maximum over a bounded factor interval.
	GoldenSection Method = iota

	// GradientDescent is an ascent on a numerically estimated
	// gradient with a decaying learning rate.
	GradientDescent
)

func (m Method) String() string {
	switch m {
	case GoldenSection:
		return "golden_section"
	case GradientDescent:
		return "gradient_descent"
	}
	return fmt.Sprintf("Method(%d)", int32(m))
}

// ParseMethod returns the Method named by the given string. Unlike
// [colors.ParseLevel], an unrecognized method is an error: it
// indicates a programming mistake, not a data condition.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "golden_section":
		return GoldenSection, nil
	case "gradient_descent":
		return GradientDescent, nil
	}
	return 0, fmt.Errorf("contrast.ParseMethod: unknown optimization method: %q", s)
}

// Golden-section and gradient-ascent tuning constants.
const (
	factorMin = 0.1
	factorMax = 3.0

	goldenTolerance = 1e-5

	gradientEpsilon    = 1e-6
	gradientStart      = 1.0
	gradientRate       = 0.1
	gradientRateDecay  = 0.9
	gradientIterations = 100
	gradientMinImprove = 1e-6
)

// MaximalOptimization returns the color with the highest contrast
// ratio against target found by continuously optimizing the
// adjustment factor applied to base.
//
// The objective for a factor is the larger of the contrast ratios of
// the lightness-scaled and brightness-scaled candidates; a degenerate
// adjustment scores 0 and is never surfaced as an error. Both methods
// finish by re-evaluating the winning factor under both bases and
// returning the higher-contrast candidate. The level parameter is
// kept for interface symmetry; the objective has no threshold stop.
//
// An out-of-range method is the one hard error in this package.
func MaximalOptimization(base, target colors.Color, level colors.Level, method Method) (colors.Color, error) {
	_ = level
	objective := func(factor float64) float64 {
		score := 0.0
		for _, basis := range [2]Basis{Lightness, Brightness} {
			cand, err := basis.Adjust(base, factor)
			if err != nil {
				continue
			}
			score = math.Max(score, colors.ContrastRatio(cand, target))
		}
		return score
	}

	var bestFactor float64
	switch method {
	case GoldenSection:
		bestFactor = goldenSection(objective, factorMin, factorMax, goldenTolerance)
	case GradientDescent:
		bestFactor = gradientAscent(objective)
	default:
		return colors.Color{}, fmt.Errorf("contrast.MaximalOptimization: unknown optimization method: %v", method)
	}

	return bestOfBases(base, target, bestFactor), nil
}

// goldenSection maximizes f over [a, b] with the classic golden-ratio
// interior probes, tracking the best probe seen across all iterations
// rather than trusting the final bracket center: the shrinking
// bracket does not guarantee the tracked optimum sits at its middle.
func goldenSection(f func(float64) float64, a, b, tol float64) float64 {
	phi := (1 + math.Sqrt(5)) / 2
	resphi := 2 - phi

	x1 := a + resphi*(b-a)
	x2 := a + (1-resphi)*(b-a)
	f1 := f(x1)
	f2 := f(x2)

	bestFactor := x2
	if f1 > f2 {
		bestFactor = x1
	}
	bestScore := math.Max(f1, f2)

	for math.Abs(b-a) > tol {
		if f1 > f2 {
			b = x2
			x2, f2 = x1, f1
			x1 = a + resphi*(b-a)
			f1 = f(x1)
		} else {
			a = x1
			x1, f1 = x2, f2
			x2 = a + (1-resphi)*(b-a)
			f2 = f(x2)
		}

		cur := x2
		if f1 > f2 {
			cur = x1
		}
		if score := math.Max(f1, f2); score > bestScore {
			bestFactor, bestScore = cur, score
		}
	}
	return bestFactor
}

// gradientAscent climbs f from factor 1.0 using a central finite
// difference estimate of the derivative. A non-improving step decays
// the learning rate instead of moving. Iterations are capped and the
// climb also stops once successive improvement falls under
// gradientMinImprove.
func gradientAscent(f func(float64) float64) float64 {
	factor := gradientStart
	rate := gradientRate

	bestFactor := factor
	bestScore := f(factor)

	for i := 0; i < gradientIterations; i++ {
		gradient := (f(factor+gradientEpsilon) - f(factor-gradientEpsilon)) / (2 * gradientEpsilon)

		newFactor := factor + rate*gradient
		newScore := f(newFactor)

		if newScore > bestScore {
			bestFactor, bestScore = newFactor, newScore
			factor = newFactor
		} else {
			rate *= gradientRateDecay
		}

		if math.Abs(newScore-bestScore) < gradientMinImprove {
			break
		}
	}
	return bestFactor
}

// bestOfBases applies the factor to base under both adjustment bases
// and returns whichever candidate scores the higher contrast against
// target, preferring the brightness candidate on an exact tie. A
// candidate whose adjustment degenerates is skipped; if both
// degenerate, base itself is returned.
func bestOfBases(base, target colors.Color, factor float64) colors.Color {
	best := base
	bestScore := math.Inf(-1)
	for _, basis := range [2]Basis{Brightness, Lightness} {
		cand, err := basis.Adjust(base, factor)
		if err != nil {
			continue
		}
		if score := colors.ContrastRatio(cand, target); score > bestScore {
			best, bestScore = cand, score
		}
	}
	return best
}
