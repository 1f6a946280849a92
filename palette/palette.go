// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates color palettes from a base color using
// classic color-wheel schemes, and analyzes the harmony of color
// collections.
package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pirsquared/chromo-map/colors"
)

// Scheme is a color-wheel relationship used to derive a palette from
// a base color.
type Scheme int32

const (
	// Complementary pairs the base with its 180-degree opposite,
	// padded with brightness variations.
	Complementary Scheme = iota

	// Triadic uses the two colors 120 and 240 degrees away, padded
	// with saturation variations.
	Triadic

	// Analogous walks adjacent hues in 30-degree steps (60 degrees
	// total spread for palettes larger than five).
	Analogous

	// Monochromatic keeps the hue and ladders the brightness.
	Monochromatic

	// SplitComplementary uses the two hues flanking the complement
	// at 150 and 210 degrees, padded with saturation variations.
	SplitComplementary
)

var schemeNames = map[string]Scheme{
	"complementary":       Complementary,
	"triadic":             Triadic,
	"analogous":           Analogous,
	"monochromatic":       Monochromatic,
	"split_complementary": SplitComplementary,
}

// ParseScheme returns the Scheme named by the given string.
// Unknown schemes are an error.
func ParseScheme(s string) (Scheme, error) {
	if sc, ok := schemeNames[strings.ToLower(s)]; ok {
		return sc, nil
	}
	return 0, fmt.Errorf("palette.ParseScheme: unknown scheme: %q", s)
}

func (s Scheme) String() string {
	for name, sc := range schemeNames {
		if sc == s {
			return name
		}
	}
	return fmt.Sprintf("Scheme(%d)", int32(s))
}

// Generate returns a palette of count colors derived from base using
// the given scheme. The base color is always the first entry.
// Adjustment degeneracies fall back to the base color for the
// affected entry. It returns an error if count < 1 or the scheme is
// out of range.
func Generate(base colors.Color, scheme Scheme, count int) ([]colors.Color, error) {
	if count < 1 {
		return nil, fmt.Errorf("palette.Generate: count must be at least 1, got %d", count)
	}

	cs := []colors.Color{base}
	add := func(c colors.Color, err error) {
		if err != nil {
			c = base
		}
		cs = append(cs, c)
	}

	switch scheme {
	case Complementary:
		if count > 1 {
			cs = append(cs, base.Complementary())
		}
		for i := 0; i < count-2; i++ {
			factor := 0.7
			if count > 3 {
				factor = 0.7 + float64(i)*0.3/float64(count-3)
			}
			add(base.AdjustBrightness(factor))
		}

	case Triadic:
		t1, t2 := base.Triadic()
		cs = append(cs, t1, t2)
		for i := 0; i < count-3; i++ {
			factor := 0.6
			if count > 4 {
				factor = 0.6 + float64(i)*0.4/float64(count-4)
			}
			add(base.AdjustSaturation(factor))
		}

	case Analogous:
		step := 30.0
		if count > 5 {
			step = 60.0 / float64(count-1)
		}
		for i := 1; i < count; i++ {
			add(base.AdjustHue(step * float64(i)))
		}

	case Monochromatic:
		for i := 1; i < count; i++ {
			factor := 0.3 + float64(i)*0.7/float64(count-1)
			add(base.AdjustBrightness(factor))
		}

	case SplitComplementary:
		if count > 1 {
			add(base.AdjustHue(150))
		}
		if count > 2 {
			add(base.AdjustHue(210))
		}
		for i := 0; i < count-3; i++ {
			factor := 0.5
			if count > 4 {
				factor = 0.5 + float64(i)*0.5/float64(count-4)
			}
			add(base.AdjustSaturation(factor))
		}

	default:
		return nil, fmt.Errorf("palette.Generate: unknown scheme: %v", scheme)
	}

	if len(cs) > count {
		cs = cs[:count]
	}
	return cs, nil
}

// HarmonyReport summarizes the pairwise contrast and channel spread
// of a color collection.
type HarmonyReport struct {
	AverageContrast float64
	MinContrast     float64
	MaxContrast     float64

	// AccessibilityScore is the share of color pairs meeting the
	// WCAG AA ratio, in [0, 1].
	AccessibilityScore float64

	// HueDistribution is the sorted list of HSV hues in degrees.
	HueDistribution []float64

	SaturationRange [2]float64
	BrightnessRange [2]float64
}

// Harmony analyzes the given colors pairwise. Fewer than two colors
// yield a zero report.
func Harmony(cs []colors.Color) HarmonyReport {
	if len(cs) < 2 {
		return HarmonyReport{}
	}

	var contrasts []float64
	for i := range cs {
		for j := i + 1; j < len(cs); j++ {
			contrasts = append(contrasts, colors.ContrastRatio(cs[i], cs[j]))
		}
	}

	rep := HarmonyReport{MinContrast: contrasts[0], MaxContrast: contrasts[0]}
	sum := 0.0
	accessible := 0
	for _, r := range contrasts {
		sum += r
		if r < rep.MinContrast {
			rep.MinContrast = r
		}
		if r > rep.MaxContrast {
			rep.MaxContrast = r
		}
		if r >= colors.AA.MinRatio() {
			accessible++
		}
	}
	rep.AverageContrast = sum / float64(len(contrasts))
	rep.AccessibilityScore = float64(accessible) / float64(len(contrasts))

	hues := make([]float64, len(cs))
	sats := make([]float64, len(cs))
	vals := make([]float64, len(cs))
	for i, c := range cs {
		hues[i], sats[i], vals[i] = c.HSV()
	}
	sort.Float64s(hues)
	rep.HueDistribution = hues
	rep.SaturationRange = [2]float64{minOf(sats), maxOf(sats)}
	rep.BrightnessRange = [2]float64{minOf(vals), maxOf(vals)}
	return rep
}

func minOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
