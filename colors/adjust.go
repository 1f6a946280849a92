// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// The adjustment operations each convert to the relevant polar
// representation (HSV or HSL), apply a single-channel move, convert
// back to RGB, and reattach the original alpha. Factors driving a
// channel outside [0, 1] saturate at the bound rather than erroring.
// A degenerate round trip (NaN or Inf from the conversion) is
// reported as an error so search loops can stop that branch.

// AdjustHue returns the color with its hue rotated by the given
// number of degrees, wrapping modulo 360. Negative results wrap to
// the positive range. Saturation, value, and alpha are preserved.
func (c Color) AdjustHue(degrees float64) (Color, error) {
	h, s, v := c.HSV()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return c.fromHSV("colors.AdjustHue", h, s, v)
}

// AdjustSaturation returns the color with its HSV saturation
// multiplied by the given factor and clamped to [0, 1]. Hue, value,
// and alpha are preserved.
func (c Color) AdjustSaturation(factor float64) (Color, error) {
	h, s, v := c.HSV()
	return c.fromHSV("colors.AdjustSaturation", h, clamp01(s*factor), v)
}

// AdjustBrightness returns the color with its HSV value multiplied
// by the given factor and clamped to [0, 1]. Hue, saturation, and
// alpha are preserved.
func (c Color) AdjustBrightness(factor float64) (Color, error) {
	h, s, v := c.HSV()
	return c.fromHSV("colors.AdjustBrightness", h, s, clamp01(v*factor))
}

// AdjustLightness returns the color with its HSL lightness multiplied
// by the given factor and clamped to [0, 1]. Hue, saturation, and
// alpha are preserved.
func (c Color) AdjustLightness(factor float64) (Color, error) {
	h, s, l := c.HSL()
	rgb := colorful.Hsl(h, s, clamp01(l*factor))
	return c.reattach("colors.AdjustLightness", rgb)
}

// WithHSV returns the color rebuilt from the given full HSV triple
// (hue in degrees, saturation and value in [0, 1]), keeping the
// original alpha.
func (c Color) WithHSV(h, s, v float64) (Color, error) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return c.fromHSV("colors.WithHSV", h, clamp01(s), clamp01(v))
}

func (c Color) fromHSV(op string, h, s, v float64) (Color, error) {
	return c.reattach(op, colorful.Hsv(h, s, v))
}

// reattach validates an RGB round-trip result and carries the
// original alpha over to it. Conversion results a hair outside
// [0, 1] from float error are clamped; NaN/Inf is a degenerate
// polar state and surfaces as an error.
func (c Color) reattach(op string, rgb colorful.Color) (Color, error) {
	for _, v := range [3]float64{rgb.R, rgb.G, rgb.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Color{}, fmt.Errorf("%s: degenerate polar round trip: rgb(%v, %v, %v)", op, rgb.R, rgb.G, rgb.B)
		}
	}
	return Color{clamp01(rgb.R), clamp01(rgb.G), clamp01(rgb.B), c.A}, nil
}
