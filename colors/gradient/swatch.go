// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"github.com/pirsquared/chromo-map/colors"
	"github.com/pirsquared/chromo-map/colors/contrast"
)

// Swatch is an ordered collection of gradients that can be adjusted
// and analyzed as a unit.
type Swatch struct {
	name string
	gs   []*Gradient
}

// NewSwatch returns a Swatch over the given gradients.
func NewSwatch(gs []*Gradient, name string) *Swatch {
	s := &Swatch{name: name, gs: make([]*Gradient, len(gs))}
	copy(s.gs, gs)
	return s
}

// Name returns the swatch's name.
func (s *Swatch) Name() string { return s.name }

// Len returns the number of gradients in the swatch.
func (s *Swatch) Len() int { return len(s.gs) }

// Gradients returns a copy of the swatch's gradient list.
func (s *Swatch) Gradients() []*Gradient {
	gs := make([]*Gradient, len(s.gs))
	copy(gs, s.gs)
	return gs
}

// Get returns the first gradient with the given name, or nil.
func (s *Swatch) Get(name string) *Gradient {
	for _, g := range s.gs {
		if g.Name() == name {
			return g
		}
	}
	return nil
}

// Append returns a new swatch with the gradient added at the end.
func (s *Swatch) Append(g *Gradient) *Swatch {
	gs := make([]*Gradient, 0, len(s.gs)+1)
	gs = append(gs, s.gs...)
	gs = append(gs, g)
	return &Swatch{name: s.name, gs: gs}
}

func (s *Swatch) mapGradients(op func(*Gradient) *Gradient) *Swatch {
	gs := make([]*Gradient, len(s.gs))
	for i, g := range s.gs {
		gs[i] = op(g)
	}
	return &Swatch{name: s.name, gs: gs}
}

// AdjustHue returns the swatch with every gradient's hues rotated.
func (s *Swatch) AdjustHue(degrees float64) *Swatch {
	return s.mapGradients(func(g *Gradient) *Gradient { return g.AdjustHue(degrees) })
}

// AdjustSaturation returns the swatch with every gradient's
// saturation scaled.
func (s *Swatch) AdjustSaturation(factor float64) *Swatch {
	return s.mapGradients(func(g *Gradient) *Gradient { return g.AdjustSaturation(factor) })
}

// AdjustBrightness returns the swatch with every gradient's HSV
// value scaled.
func (s *Swatch) AdjustBrightness(factor float64) *Swatch {
	return s.mapGradients(func(g *Gradient) *Gradient { return g.AdjustBrightness(factor) })
}

// AdjustLightness returns the swatch with every gradient's HSL
// lightness scaled.
func (s *Swatch) AdjustLightness(factor float64) *Swatch {
	return s.mapGradients(func(g *Gradient) *Gradient { return g.AdjustLightness(factor) })
}

// MakeAccessible returns the swatch with every gradient adjusted to
// meet the given WCAG level against the background.
func (s *Swatch) MakeAccessible(bg colors.Color, level colors.Level, basis contrast.Basis) *Swatch {
	return s.mapGradients(func(g *Gradient) *Gradient { return g.MakeAccessible(bg, level, basis) })
}

// AnalyzeContrast returns per-gradient contrast reports against the
// given background, keyed by gradient name.
func (s *Swatch) AnalyzeContrast(bg colors.Color) map[string]ContrastReport {
	reps := make(map[string]ContrastReport, len(s.gs))
	for _, g := range s.gs {
		reps[g.Name()] = g.AnalyzeContrast(bg)
	}
	return reps
}
