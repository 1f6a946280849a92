// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pirsquared/chromo-map/colors/gradient"
)

func redToBlue(t *testing.T) *gradient.Gradient {
	t.Helper()
	g, err := gradient.FromHexes([]string{"#ff0000", "#0000ff"}, "redblue")
	require.NoError(t, err)
	return g
}

func TestHTMLDiv(t *testing.T) {
	g := redToBlue(t)
	div := HTMLDiv(g, 0)
	assert.True(t, strings.HasPrefix(div, `<div style="display:flex;`))
	assert.Contains(t, div, `title="redblue"`)
	assert.Contains(t, div, "background-color:#ff0000ff;")
	assert.Contains(t, div, "background-color:#0000ffff;")
	assert.Equal(t, 3, strings.Count(div, "<div"))
}

func TestHTMLDivMaxN(t *testing.T) {
	g, err := gradient.FromHexes(
		[]string{"#ff0000", "#00ff00", "#0000ff", "#ffffff"}, "four")
	require.NoError(t, err)
	div := HTMLDiv(g, 2)
	assert.Equal(t, 3, strings.Count(div, "<div"))
	assert.Contains(t, div, "background-color:#ff0000ff;")
	assert.NotContains(t, div, "background-color:#0000ffff;")
}

func TestPNG(t *testing.T) {
	g := redToBlue(t)
	data, err := PNG(g, 64, 16)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, 64, b.Dx())
	assert.Equal(t, 16, b.Dy())

	// Left edge is red, right edge is blue.
	r, gr, bl, _ := img.At(b.Min.X, b.Min.Y+8).RGBA()
	assert.Greater(t, r, gr)
	assert.Greater(t, r, bl)
	r, gr, bl, _ = img.At(b.Max.X-1, b.Min.Y+8).RGBA()
	assert.Greater(t, bl, r)
	assert.Greater(t, bl, gr)
}

func TestPNGBadSize(t *testing.T) {
	g := redToBlue(t)
	_, err := PNG(g, 0, 16)
	assert.Error(t, err)
	_, err = PNG(g, 16, -1)
	assert.Error(t, err)
}

func TestTerm(t *testing.T) {
	prev := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(prev)

	lipgloss.SetColorProfile(termenv.Ascii)
	g := redToBlue(t)
	assert.Equal(t, "redblue", Term(g))

	lipgloss.SetColorProfile(termenv.TrueColor)
	out := Term(g)
	assert.Contains(t, out, "redblue")
	assert.Contains(t, out, "\x1b[")
}

func TestTermSwatch(t *testing.T) {
	prev := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(prev)
	lipgloss.SetColorProfile(termenv.Ascii)

	g := redToBlue(t)
	sw := gradient.NewSwatch([]*gradient.Gradient{g, g.Reversed()}, "demo")
	out := TermSwatch(sw)
	assert.Equal(t, "redblue\nredblue_r", out)
}
