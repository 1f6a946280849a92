// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	"github.com/pirsquared/chromo-map/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme("complementary")
	require.NoError(t, err)
	assert.Equal(t, Complementary, s)

	s, err = ParseScheme("Split_Complementary")
	require.NoError(t, err)
	assert.Equal(t, SplitComplementary, s)

	_, err = ParseScheme("vaporwave")
	assert.Error(t, err)
}

func TestGenerateComplementary(t *testing.T) {
	red := colors.MustFromString("red")

	cs, err := Generate(red, Complementary, 2)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "#ff0000", cs[0].Hex())
	assert.Equal(t, "#00ffff", cs[1].Hex())

	cs, err = Generate(red, Complementary, 5)
	require.NoError(t, err)
	assert.Len(t, cs, 5)
	// Padding entries are brightness variations of the base,
	// ramping from 0.7 back up to the full value.
	for i, c := range cs[2:] {
		h, _, v := c.HSV()
		assert.Equal(t, 0.0, h)
		assert.InDelta(t, 0.7+float64(i)*0.15, v, 1e-10)
	}
}

func TestGenerateTriadic(t *testing.T) {
	red := colors.MustFromString("red")
	cs, err := Generate(red, Triadic, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, hexes(cs))
}

func TestGenerateAnalogous(t *testing.T) {
	red := colors.MustFromString("red")

	cs, err := Generate(red, Analogous, 4)
	require.NoError(t, err)
	require.Len(t, cs, 4)
	for i, want := range []float64{0, 30, 60, 90} {
		h, _, _ := cs[i].HSV()
		assert.InDelta(t, want, h, 1e-10)
	}

	// Larger palettes shrink the step to a 60-degree total spread.
	cs, err = Generate(red, Analogous, 7)
	require.NoError(t, err)
	h, _, _ := cs[6].HSV()
	assert.InDelta(t, 60, h, 1e-10)
}

func TestGenerateMonochromatic(t *testing.T) {
	blue := colors.MustFromString("blue")
	cs, err := Generate(blue, Monochromatic, 5)
	require.NoError(t, err)
	require.Len(t, cs, 5)
	for _, c := range cs {
		h, _, _ := c.HSV()
		assert.InDelta(t, 240, h, 1e-10)
	}
}

func TestGenerateSplitComplementary(t *testing.T) {
	red := colors.MustFromString("red")
	cs, err := Generate(red, SplitComplementary, 3)
	require.NoError(t, err)
	require.Len(t, cs, 3)
	h1, _, _ := cs[1].HSV()
	h2, _, _ := cs[2].HSV()
	assert.InDelta(t, 150, h1, 1e-10)
	assert.InDelta(t, 210, h2, 1e-10)
}

func TestGenerateValidation(t *testing.T) {
	red := colors.MustFromString("red")
	_, err := Generate(red, Complementary, 0)
	assert.Error(t, err)
	_, err = Generate(red, Scheme(42), 3)
	assert.Error(t, err)

	// A count of 1 is just the base for every scheme.
	for _, s := range []Scheme{Complementary, Triadic, Analogous, Monochromatic, SplitComplementary} {
		cs, err := Generate(red, s, 1)
		require.NoError(t, err, s)
		assert.Equal(t, []string{"#ff0000"}, hexes(cs), s)
	}
}

func TestHarmony(t *testing.T) {
	cs := []colors.Color{
		colors.MustFromString("red"),
		colors.MustFromString("lime"),
		colors.MustFromString("blue"),
	}

	rep := Harmony(cs)
	assert.InDelta(t, 3.775, rep.AverageContrast, 0.01)
	assert.GreaterOrEqual(t, rep.MinContrast, 1.0)
	assert.GreaterOrEqual(t, rep.MaxContrast, rep.MinContrast)
	assert.Equal(t, []float64{0, 120, 240}, rep.HueDistribution)
	assert.Equal(t, [2]float64{1, 1}, rep.SaturationRange)
	assert.Equal(t, [2]float64{1, 1}, rep.BrightnessRange)
	// Only the lime/blue pair clears AA.
	assert.InDelta(t, 1.0/3, rep.AccessibilityScore, 1e-12)

	assert.Equal(t, HarmonyReport{}, Harmony(cs[:1]))
}

func hexes(cs []colors.Color) []string {
	hs := make([]string, len(cs))
	for i, c := range cs {
		hs[i] = c.Hex()
	}
	return hs
}
