// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"
	"strings"
)

// Level is a WCAG 2.1 conformance level for contrast checking.
type Level int32

const (
	// AA is the WCAG AA level, requiring a contrast ratio of at
	// least 4.5:1 for normal text.
	AA Level = iota

	// AAA is the WCAG AAA level, requiring a contrast ratio of at
	// least 7:1 for normal text.
	AAA
)

// ParseLevel returns the Level named by the given string,
// case-insensitively. Anything other than "AAA" maps to [AA];
// an unrecognized level is a defined fallback, not an error.
func ParseLevel(s string) Level {
	if strings.EqualFold(s, "AAA") {
		return AAA
	}
	return AA
}

// MinRatio returns the minimum contrast ratio required by the level.
// Levels outside the defined set behave as [AA].
func (l Level) MinRatio() float64 {
	if l == AAA {
		return 7
	}
	return 4.5
}

func (l Level) String() string {
	if l == AAA {
		return "AAA"
	}
	return "AA"
}

// Luminance returns the relative luminance of the color in [0, 1]
// per WCAG 2.1: each sRGB channel is linearized and the results are
// combined with the 0.2126/0.7152/0.0722 weighting. Alpha is ignored.
func (c Color) Luminance() float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// linearize converts an sRGB channel value to linear light.
func linearize(ch float64) float64 {
	if ch <= 0.03928 {
		return ch / 12.92
	}
	return math.Pow((ch+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG 2.1 contrast ratio between the two
// colors, in [1, 21]. It is symmetric in its arguments: the lighter
// luminance is always the numerator. Identical colors yield exactly
// 1 and pure black against pure white yields exactly 21.
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastRatio returns the WCAG 2.1 contrast ratio between this
// color and the other, in [1, 21].
func (c Color) ContrastRatio(other Color) float64 {
	return ContrastRatio(c, other)
}

// IsAccessible reports whether the contrast ratio between the two
// colors meets the given WCAG level.
func IsAccessible(a, b Color, level Level) bool {
	return ContrastRatio(a, b) >= level.MinRatio()
}
