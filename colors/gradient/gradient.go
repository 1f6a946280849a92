// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides ordered, resizable sequences of colors
// with interpolation, plus collection-level accessibility operations.
package gradient

import (
	"errors"
	"fmt"
	"math"

	"github.com/pirsquared/chromo-map/colors"
	"github.com/pirsquared/chromo-map/colors/contrast"
)

// Gradient is a named, ordered sequence of colors with
// fraction-based interpolated lookup and resampling. It is a
// standalone container, not a wrapper over any plotting toolkit's
// colormap type. A Gradient is immutable: every operation returns a
// new Gradient sharing no state with the receiver.
type Gradient struct {
	name string
	cs   []colors.Color
}

// New returns a Gradient over a copy of the given colors.
// It returns an error if no colors are given.
func New(cs []colors.Color, name string) (*Gradient, error) {
	if len(cs) == 0 {
		return nil, errors.New("gradient.New: no colors given")
	}
	if name == "" {
		name = "custom"
	}
	g := &Gradient{name: name, cs: make([]colors.Color, len(cs))}
	copy(g.cs, cs)
	return g, nil
}

// FromHexes returns a Gradient parsed from hex color strings.
func FromHexes(hexes []string, name string) (*Gradient, error) {
	cs := make([]colors.Color, len(hexes))
	for i, h := range hexes {
		c, err := colors.FromHex(h)
		if err != nil {
			return nil, fmt.Errorf("gradient.FromHexes: %w", err)
		}
		cs[i] = c
	}
	return New(cs, name)
}

// Name returns the gradient's name.
func (g *Gradient) Name() string { return g.name }

// Len returns the number of color stops.
func (g *Gradient) Len() int { return len(g.cs) }

// At returns the color at the given stop index.
func (g *Gradient) At(i int) colors.Color { return g.cs[i] }

// Colors returns a copy of the gradient's color stops.
func (g *Gradient) Colors() []colors.Color {
	cs := make([]colors.Color, len(g.cs))
	copy(cs, g.cs)
	return cs
}

// AtFrac returns the color at the given fraction of the gradient in
// [0, 1], linearly interpolating between the two surrounding stops.
// Fractions outside [0, 1] clamp to the endpoint colors.
func (g *Gradient) AtFrac(t float64) colors.Color {
	n := len(g.cs)
	if t <= 0 || n == 1 {
		return g.cs[0]
	}
	if t >= 1 {
		return g.cs[n-1]
	}
	i, x := math.Modf(t * float64(n-1))
	idx := int(i)
	if idx >= n-1 {
		return g.cs[n-1]
	}
	return g.cs[idx].Interpolate(g.cs[idx+1], x)
}

// Resize returns a new gradient with n stops resampled evenly across
// the full range of this one. It returns an error if n < 1.
func (g *Gradient) Resize(n int) (*Gradient, error) {
	if n < 1 {
		return nil, fmt.Errorf("gradient.Resize: need at least 1 color, got %d", n)
	}
	cs := make([]colors.Color, n)
	if n == 1 {
		cs[0] = g.AtFrac(0)
	} else {
		for i := range cs {
			cs[i] = g.AtFrac(float64(i) / float64(n-1))
		}
	}
	return &Gradient{name: g.name, cs: cs}, nil
}

// Reversed returns a new gradient with the stop order reversed and
// an _r suffix appended to the name.
func (g *Gradient) Reversed() *Gradient {
	cs := make([]colors.Color, len(g.cs))
	for i, c := range g.cs {
		cs[len(cs)-1-i] = c
	}
	return &Gradient{name: g.name + "_r", cs: cs}
}

// Rename returns a copy of the gradient with the given name.
func (g *Gradient) Rename(name string) *Gradient {
	ng, _ := New(g.cs, name)
	return ng
}

// WithAlpha returns a new gradient with every stop's alpha replaced
// by the given value. It returns an error if the value is outside
// [0, 1].
func (g *Gradient) WithAlpha(a float64) (*Gradient, error) {
	cs := make([]colors.Color, len(g.cs))
	for i, c := range g.cs {
		wc, err := c.WithAlpha(a)
		if err != nil {
			return nil, fmt.Errorf("gradient.WithAlpha: %w", err)
		}
		cs[i] = wc
	}
	return &Gradient{name: g.name, cs: cs}, nil
}

// Hexes returns the #rrggbb form of every stop. This is the explicit
// accessor replacing attribute pass-through to contained colors.
func (g *Gradient) Hexes() []string {
	hs := make([]string, len(g.cs))
	for i, c := range g.cs {
		hs[i] = c.Hex()
	}
	return hs
}

// Luminances returns the WCAG relative luminance of every stop.
func (g *Gradient) Luminances() []float64 {
	ls := make([]float64, len(g.cs))
	for i, c := range g.cs {
		ls[i] = c.Luminance()
	}
	return ls
}

// Contrasts returns the contrast ratio of every stop against the
// given background.
func (g *Gradient) Contrasts(bg colors.Color) []float64 {
	rs := make([]float64, len(g.cs))
	for i, c := range g.cs {
		rs[i] = colors.ContrastRatio(c, bg)
	}
	return rs
}

// mapColors lifts a per-color operation over the stops. A stop whose
// adjustment degenerates keeps its original color, matching the
// silent-degrade contract of the search strategies.
func (g *Gradient) mapColors(name string, op func(colors.Color) (colors.Color, error)) *Gradient {
	cs := make([]colors.Color, len(g.cs))
	for i, c := range g.cs {
		nc, err := op(c)
		if err != nil {
			nc = c
		}
		cs[i] = nc
	}
	return &Gradient{name: name, cs: cs}
}

// AdjustHue returns the gradient with every stop's hue rotated by
// the given degrees.
func (g *Gradient) AdjustHue(degrees float64) *Gradient {
	return g.mapColors(g.name, func(c colors.Color) (colors.Color, error) {
		return c.AdjustHue(degrees)
	})
}

// AdjustSaturation returns the gradient with every stop's HSV
// saturation scaled by the given factor.
func (g *Gradient) AdjustSaturation(factor float64) *Gradient {
	return g.mapColors(g.name, func(c colors.Color) (colors.Color, error) {
		return c.AdjustSaturation(factor)
	})
}

// AdjustBrightness returns the gradient with every stop's HSV value
// scaled by the given factor.
func (g *Gradient) AdjustBrightness(factor float64) *Gradient {
	return g.mapColors(g.name, func(c colors.Color) (colors.Color, error) {
		return c.AdjustBrightness(factor)
	})
}

// AdjustLightness returns the gradient with every stop's HSL
// lightness scaled by the given factor.
func (g *Gradient) AdjustLightness(factor float64) *Gradient {
	return g.mapColors(g.name, func(c colors.Color) (colors.Color, error) {
		return c.AdjustLightness(factor)
	})
}

// Complementary returns the gradient with every stop rotated to its
// complementary hue.
func (g *Gradient) Complementary() *Gradient {
	return g.mapColors(g.name+"_complementary", func(c colors.Color) (colors.Color, error) {
		return c.Complementary(), nil
	})
}

// MakeAccessible returns the gradient with every stop adjusted by
// the threshold search until it meets the given WCAG level against
// the background.
func (g *Gradient) MakeAccessible(bg colors.Color, level colors.Level, basis contrast.Basis) *Gradient {
	return g.mapColors(g.name+"_accessible", func(c colors.Color) (colors.Color, error) {
		return contrast.Accessible(c, bg, level, basis), nil
	})
}

// MaximizeContrastIterative returns the gradient with every stop run
// through the fixed-step hill-climb against the background.
func (g *Gradient) MaximizeContrastIterative(bg colors.Color, level colors.Level, basis contrast.Basis, stepSize float64, maxAttempts int) *Gradient {
	return g.mapColors(g.name+"_maxcontrast", func(c colors.Color) (colors.Color, error) {
		return contrast.MaximalIterative(c, bg, level, basis, stepSize, maxAttempts), nil
	})
}

// MaximizeContrastBinarySearch returns the gradient with every stop
// run through the per-direction bisection against the background.
func (g *Gradient) MaximizeContrastBinarySearch(bg colors.Color, level colors.Level, basis contrast.Basis, precision float64) *Gradient {
	return g.mapColors(g.name+"_maxcontrast", func(c colors.Color) (colors.Color, error) {
		return contrast.MaximalBinarySearch(c, bg, level, basis, precision), nil
	})
}

// MaximizeContrastOptimization returns the gradient with every stop
// run through the continuous optimization against the background.
// It returns an error only for an unrecognized method.
func (g *Gradient) MaximizeContrastOptimization(bg colors.Color, level colors.Level, method contrast.Method) (*Gradient, error) {
	cs := make([]colors.Color, len(g.cs))
	for i, c := range g.cs {
		nc, err := contrast.MaximalOptimization(c, bg, level, method)
		if err != nil {
			return nil, fmt.Errorf("gradient.MaximizeContrastOptimization: %w", err)
		}
		cs[i] = nc
	}
	return &Gradient{name: g.name + "_maxcontrast", cs: cs}, nil
}

// ContrastReport summarizes the contrast of a color collection
// against a background.
type ContrastReport struct {
	Min, Max, Mean float64

	// AccessibleAA and AccessibleAAA count the stops meeting the
	// respective WCAG levels.
	AccessibleAA, AccessibleAAA int

	Total int
}

// AnalyzeContrast returns contrast statistics for the gradient's
// stops against the given background.
func (g *Gradient) AnalyzeContrast(bg colors.Color) ContrastReport {
	rep := ContrastReport{Min: math.Inf(1), Max: math.Inf(-1), Total: len(g.cs)}
	sum := 0.0
	for _, c := range g.cs {
		r := colors.ContrastRatio(c, bg)
		sum += r
		rep.Min = math.Min(rep.Min, r)
		rep.Max = math.Max(rep.Max, r)
		if r >= colors.AA.MinRatio() {
			rep.AccessibleAA++
		}
		if r >= colors.AAA.MinRatio() {
			rep.AccessibleAAA++
		}
	}
	rep.Mean = sum / float64(len(g.cs))
	return rep
}
