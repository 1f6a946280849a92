// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render turns gradients into things people can look at:
// inline-styled HTML, PNG strips, and truecolor terminal swatches.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/pirsquared/chromo-map/colors/gradient"
)

// HTMLDiv renders the gradient as a single flex row of equally sized
// cells, one per color, styled inline so the markup is viewable
// standalone. maxN caps the number of cells; zero or negative means
// all of them.
func HTMLDiv(g *gradient.Gradient, maxN int) string {
	n := g.Len()
	if maxN > 0 && maxN < n {
		n = maxN
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<div style="display:flex;width:100%%;height:2em;" title=%q>`, g.Name())
	for i := 0; i < n; i++ {
		c := g.At(i)
		frac := 100.0 / float64(n)
		fmt.Fprintf(&b, `<div style="flex:1;width:%.4f%%;background-color:%s;" title=%q></div>`,
			frac, c.HexA(), c.Hex())
	}
	b.WriteString(`</div>`)
	return b.String()
}

// PNG rasterizes the gradient as a w-by-h pixel strip, interpolating
// across the full span so the strip is smooth regardless of how many
// stops the gradient has.
func PNG(g *gradient.Gradient, w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render.PNG: size %dx%d out of range", w, h)
	}
	c := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(vg.Length(w), vg.Length(h)),
		vgimg.UseDPI(72),
	)}
	// One band per pixel column.
	for x := 0; x < w; x++ {
		frac := 0.0
		if w > 1 {
			frac = float64(x) / float64(w-1)
		}
		var p vg.Path
		x0, x1 := vg.Length(x), vg.Length(x+1)
		p.Move(vg.Point{X: x0, Y: 0})
		p.Line(vg.Point{X: x1, Y: 0})
		p.Line(vg.Point{X: x1, Y: vg.Length(h)})
		p.Line(vg.Point{X: x0, Y: vg.Length(h)})
		p.Close()
		c.SetColor(g.AtFrac(frac))
		c.Fill(p)
	}
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render.PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// blockWidth is the character width of one terminal swatch cell.
const blockWidth = 2

// Term renders the gradient as a row of background-colored blocks
// followed by its name. On terminals without color support the blocks
// are omitted and only the name is returned.
func Term(g *gradient.Gradient) string {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return g.Name()
	}
	var b strings.Builder
	for _, c := range g.Colors() {
		st := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
		b.WriteString(st.Render(strings.Repeat(" ", blockWidth)))
	}
	b.WriteString(" ")
	b.WriteString(g.Name())
	return b.String()
}

// TermSwatch renders each gradient of a swatch on its own line.
func TermSwatch(s *gradient.Swatch) string {
	var lines []string
	for _, g := range s.Gradients() {
		lines = append(lines, Term(g))
	}
	return strings.Join(lines, "\n")
}
