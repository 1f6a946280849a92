// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	c, err := Build()
	require.NoError(t, err)
	assert.Equal(t, 24, c.Len())
	// viridis ships from two sources but counts once by name.
	assert.Len(t, c.Names(), 23)
}

func TestDefaultShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestGet(t *testing.T) {
	c := Default()

	g, ok := c.Get("viridis")
	require.True(t, ok)
	assert.Equal(t, "viridis", g.Name())
	assert.Equal(t, 10, g.Len())
	assert.Equal(t, "#440154", g.At(0).Hex())

	g, ok = c.Get("ViRiDiS")
	require.True(t, ok)
	assert.Equal(t, "viridis", g.Name())

	_, ok = c.Get("nope")
	assert.False(t, ok)
}

func TestGetPrefersBestRepresentative(t *testing.T) {
	c := Default()
	// viridis exists in matplotlib and plotly; matplotlib scores higher.
	dups := c.byName["viridis"]
	require.Len(t, dups, 2)
	g, ok := c.Get("viridis")
	require.True(t, ok)
	var want Entry
	for _, e := range dups {
		if e.Source == Matplotlib {
			want = e
		}
	}
	assert.Same(t, want.Gradient, g)
	assert.Greater(t, qualityScore(want), qualityScore(dups[1]))
}

func TestSearch(t *testing.T) {
	c := Default()

	g := c.Search("vir", false)
	require.NotNil(t, g)
	assert.Equal(t, "viridis", g.Name())

	// set1/set2/set3 are all ColorBrewer; the longest wins.
	g = c.Search("^set", false)
	require.NotNil(t, g)
	assert.Equal(t, "set3", g.Name())
	assert.Equal(t, 12, g.Len())

	assert.Nil(t, c.Search("zzz", false))
	assert.Nil(t, c.Search("", false))
	assert.Nil(t, c.Search("VIR", true))
	assert.NotNil(t, c.Search("VIR", false))
}

func TestSearchInvalidPatternFallsBackToLiteral(t *testing.T) {
	c := Default()
	// "vir(" is not a valid regexp; no name contains it literally.
	assert.Nil(t, c.Search("vir(", false))
	// A literal that does appear still matches.
	assert.NotNil(t, c.Search("tab10", false))
}

func TestBySourceAndCategory(t *testing.T) {
	c := Default()
	assert.Len(t, c.BySource(Matplotlib), 8)
	assert.Len(t, c.BySource(Plotly), 8)
	assert.Len(t, c.BySource(ColorBrewer), 8)

	for _, e := range c.ByCategory("diverging") {
		assert.Equal(t, "diverging", e.Category, e.Name)
	}
	assert.NotEmpty(t, c.ByCategory("cyclic"))
}

func TestSwatch(t *testing.T) {
	c := Default()
	sw := c.Swatch(ColorBrewer)
	assert.Equal(t, "colorbrewer", sw.Name())
	assert.Equal(t, 8, sw.Len())
}
