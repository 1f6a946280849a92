// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides an immutable floating-point color value type
// with HSV/HSL views, WCAG 2.1 relative luminance and contrast math,
// and polar-space adjustment operations.
package colors

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an immutable RGBA color with each channel in [0, 1].
// The zero value is fully transparent black. All constructors validate
// the channel range; operations always return a new Color and never
// mutate in place.
type Color struct {
	R, G, B, A float64
}

// New returns a Color from the given channel values.
// It returns an error if any channel is outside [0, 1] or is not a
// finite number.
func New(r, g, b, a float64) (Color, error) {
	c := Color{r, g, b, a}
	if !c.valid() {
		return Color{}, fmt.Errorf("colors.New: channel values must be between 0 and 1, got (%v, %v, %v, %v)", r, g, b, a)
	}
	return c, nil
}

// MustNew returns a Color from the given channel values.
// It panics on any resulting error; see [New] for a version
// that returns an error.
func MustNew(r, g, b, a float64) Color {
	c, err := New(r, g, b, a)
	if err != nil {
		panic("colors.MustNew: " + err.Error())
	}
	return c
}

// FromTuple returns a Color from a slice of 3 (RGB) or 4 (RGBA)
// channel values in [0, 1]. An optional trailing alpha argument
// overrides the alpha from the slice.
func FromTuple(vals []float64, alpha ...float64) (Color, error) {
	if len(vals) != 3 && len(vals) != 4 {
		return Color{}, fmt.Errorf("colors.FromTuple: need 3 or 4 values, got %d", len(vals))
	}
	a := 1.0
	if len(vals) == 4 {
		a = vals[3]
	}
	if len(alpha) > 0 {
		a = alpha[0]
	}
	return New(vals[0], vals[1], vals[2], a)
}

// FromColor returns a Color from any standard library color value.
func FromColor(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	// RGBA returns alpha-premultiplied channels; undo that so the
	// stored channels stay independent of alpha.
	af := float64(a) / 0xffff
	return Color{
		R: float64(r) / 0xffff / af,
		G: float64(g) / 0xffff / af,
		B: float64(b) / 0xffff / af,
		A: af,
	}
}

// WithAlpha returns a copy of the color with the alpha channel
// replaced by the given value. It returns an error if the value
// is outside [0, 1].
func (c Color) WithAlpha(a float64) (Color, error) {
	return New(c.R, c.G, c.B, a)
}

// RGBA implements [color.Color], returning alpha-premultiplied
// 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(math.RoundToEven(c.R * c.A * 0xffff))
	g = uint32(math.RoundToEven(c.G * c.A * 0xffff))
	b = uint32(math.RoundToEven(c.B * c.A * 0xffff))
	a = uint32(math.RoundToEven(c.A * 0xffff))
	return
}

// AsRGBA returns the color as a standard 8-bit [color.RGBA] value.
func (c Color) AsRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(c.R * c.A * 255)),
		G: uint8(math.Round(c.G * c.A * 255)),
		B: uint8(math.Round(c.B * c.A * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

// Hex returns the color as a #rrggbb hex string, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", uint8(math.Round(c.R*255)), uint8(math.Round(c.G*255)), uint8(math.Round(c.B*255)))
}

// HexA returns the color as a #rrggbbaa hex string.
func (c Color) HexA() string {
	return c.Hex() + fmt.Sprintf("%02x", uint8(math.Round(c.A*255)))
}

// RGBString returns the color as an rgb(r, g, b) string with
// 8-bit components.
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", uint8(math.Round(c.R*255)), uint8(math.Round(c.G*255)), uint8(math.Round(c.B*255)))
}

// RGBAString returns the color as an rgba(r, g, b, a) string with
// 8-bit components and a fractional alpha.
func (c Color) RGBAString() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", uint8(math.Round(c.R*255)), uint8(math.Round(c.G*255)), uint8(math.Round(c.B*255)), c.A)
}

func (c Color) String() string {
	return c.RGBAString()
}

// HSV returns the hue (degrees in [0, 360)), saturation, and value
// of the color. Alpha is not part of the polar decomposition.
func (c Color) HSV() (h, s, v float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
}

// HSL returns the hue (degrees in [0, 360)), saturation, and
// lightness of the color.
func (c Color) HSL() (h, s, l float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
}

// Interpolate returns the per-channel linear blend between this color
// and the other, with t=0 giving this color and t=1 the other.
// Alpha is blended along with the color channels. t is clamped
// to [0, 1].
func (c Color) Interpolate(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Complementary returns the color opposite on the color wheel
// (hue rotated by 180 degrees).
func (c Color) Complementary() Color {
	cc, err := c.AdjustHue(180)
	if err != nil {
		return c
	}
	return cc
}

// Triadic returns the two colors 120 and 240 degrees away on the
// color wheel.
func (c Color) Triadic() (Color, Color) {
	t1, err := c.AdjustHue(120)
	if err != nil {
		t1 = c
	}
	t2, err := c.AdjustHue(240)
	if err != nil {
		t2 = c
	}
	return t1, t2
}

// Analogous returns the two colors the given angle away on either
// side of the color wheel.
func (c Color) Analogous(angle float64) (Color, Color) {
	a1, err := c.AdjustHue(angle)
	if err != nil {
		a1 = c
	}
	a2, err := c.AdjustHue(-angle)
	if err != nil {
		a2 = c
	}
	return a1, a2
}

func (c Color) valid() bool {
	for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
