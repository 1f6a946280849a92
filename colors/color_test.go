// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	c, err := New(0.2, 0.4, 0.6, 1)
	require.NoError(t, err)
	assert.Equal(t, Color{0.2, 0.4, 0.6, 1}, c)

	bad := [][4]float64{
		{-0.1, 0, 0, 1},
		{0, 1.1, 0, 1},
		{0, 0, 2, 1},
		{0, 0, 0, -1},
		{0, 0, 0, 1.5},
	}
	for i, vals := range bad {
		_, err := New(vals[0], vals[1], vals[2], vals[3])
		assert.Error(t, err, "%d: %v", i, vals)
	}
}

func TestFromTuple(t *testing.T) {
	c, err := FromTuple([]float64{1, 0.5, 0})
	require.NoError(t, err)
	assert.Equal(t, Color{1, 0.5, 0, 1}, c)

	c, err = FromTuple([]float64{1, 0.5, 0, 0.25})
	require.NoError(t, err)
	assert.Equal(t, Color{1, 0.5, 0, 0.25}, c)

	c, err = FromTuple([]float64{1, 0.5, 0, 0.25}, 0.75)
	require.NoError(t, err)
	assert.Equal(t, Color{1, 0.5, 0, 0.75}, c)

	_, err = FromTuple([]float64{1, 0.5})
	assert.Error(t, err)
	_, err = FromTuple([]float64{1, 0.5, 2})
	assert.Error(t, err)
}

func TestWithAlpha(t *testing.T) {
	c := MustFromHex("#ff8800")
	wa, err := c.WithAlpha(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, wa.A)
	assert.Equal(t, c.R, wa.R)

	_, err = c.WithAlpha(1.5)
	assert.Error(t, err)
}

func TestFromColorRoundTrip(t *testing.T) {
	src := color.RGBA{R: 204, G: 114, B: 67, A: 255}
	c := FromColor(src)
	assert.InDelta(t, 204.0/255, c.R, 1e-4)
	assert.InDelta(t, 114.0/255, c.G, 1e-4)
	assert.InDelta(t, 67.0/255, c.B, 1e-4)
	assert.Equal(t, 1.0, c.A)
	assert.Equal(t, src, c.AsRGBA())

	assert.Equal(t, Color{}, FromColor(nil))
}

func TestHexFormatting(t *testing.T) {
	c := MustFromHex("#336699")
	assert.Equal(t, "#336699", c.Hex())
	assert.Equal(t, "#336699ff", c.HexA())
	assert.Equal(t, "rgb(51, 102, 153)", c.RGBString())
	assert.Equal(t, "rgba(51, 102, 153, 1)", c.RGBAString())
}

func TestInterpolate(t *testing.T) {
	black := MustFromString("black")
	white := MustFromString("white")

	mid := black.Interpolate(white, 0.5)
	assert.Equal(t, Color{0.5, 0.5, 0.5, 1}, mid)

	assert.Equal(t, black, black.Interpolate(white, 0))
	assert.Equal(t, white, black.Interpolate(white, 1))
	// t is clamped
	assert.Equal(t, white, black.Interpolate(white, 2))
}

func TestComplementaryAndTriadic(t *testing.T) {
	red := MustFromString("red")

	assert.Equal(t, "#00ffff", red.Complementary().Hex())

	t1, t2 := red.Triadic()
	assert.Equal(t, "#00ff00", t1.Hex())
	assert.Equal(t, "#0000ff", t2.Hex())

	a1, a2 := red.Analogous(30)
	h1, _, _ := a1.HSV()
	h2, _, _ := a2.HSV()
	assert.InDelta(t, 30, h1, 1e-10)
	assert.InDelta(t, 330, h2, 1e-10)
}

func TestHSVAndHSLViews(t *testing.T) {
	red := MustFromString("red")
	h, s, v := red.HSV()
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 1.0, s)
	assert.Equal(t, 1.0, v)

	h, s, l := red.HSL()
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 1.0, s)
	assert.Equal(t, 0.5, l)
}
