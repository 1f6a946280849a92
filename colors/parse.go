// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/image/colornames"
)

// FromString returns a color value from the given string.
// It returns any resulting error; see [MustFromString] and
// [LogFromString] for versions that do not return an error.
// FromString accepts hex values (see [FromHex]), rgb(r, g, b) and
// rgba(r, g, b, a) strings with 8-bit components and a 0-1 alpha,
// and CSS standard color names.
func FromString(str string) (Color, error) {
	if len(str) == 0 {
		return Color{}, errors.New("colors.FromString: empty string")
	}
	lstr := strings.ToLower(strings.TrimSpace(str))
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgba("):
		val := strings.TrimRight(lstr[5:], ")")
		var r, g, b int
		var a float64
		n, err := fmt.Sscanf(val, "%d,%d,%d,%f", &r, &g, &b, &a)
		if err != nil || n != 4 {
			return Color{}, fmt.Errorf("colors.FromString: could not process rgba string %q", str)
		}
		if a < 0 || a > 1 {
			return Color{}, fmt.Errorf("colors.FromString: alpha must be between 0 and 1, got %v", a)
		}
		return New(float64(r)/255, float64(g)/255, float64(b)/255, a)
	case strings.HasPrefix(lstr, "rgb("):
		val := strings.TrimRight(lstr[4:], ")")
		var r, g, b int
		n, err := fmt.Sscanf(val, "%d,%d,%d", &r, &g, &b)
		if err != nil || n != 3 {
			return Color{}, fmt.Errorf("colors.FromString: could not process rgb string %q", str)
		}
		return New(float64(r)/255, float64(g)/255, float64(b)/255, 1)
	default:
		return FromName(lstr)
	}
}

// MustFromString returns a color value from the given string.
// It panics on any resulting error; see [FromString] for
// more information and a version that returns an error.
func MustFromString(str string) Color {
	c, err := FromString(str)
	if err != nil {
		panic("colors.MustFromString: " + err.Error())
	}
	return c
}

// LogFromString returns a color value from the given string.
// It logs any resulting error; see [FromString] for
// more information and a version that returns an error.
func LogFromString(str string) Color {
	c, err := FromString(str)
	if err != nil {
		log.Println("error: colors.LogFromString: " + err.Error())
	}
	return c
}

// FromHex parses the given hex color string and returns the
// resulting color. It handles 3, 6, and 8 digit forms, with or
// without a leading #. It returns any resulting error; see
// [MustFromHex] for a version that does not return an error.
func FromHex(hex string) (Color, error) {
	hs := strings.TrimPrefix(strings.ToLower(hex), "#")
	var r, g, b int
	a := 255
	switch len(hs) {
	case 3:
		n, err := fmt.Sscanf(hs, "%1x%1x%1x", &r, &g, &b)
		if err != nil || n != 3 {
			return Color{}, errors.New("colors.FromHex: could not process: " + hex)
		}
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		n, err := fmt.Sscanf(hs, "%02x%02x%02x", &r, &g, &b)
		if err != nil || n != 3 {
			return Color{}, errors.New("colors.FromHex: could not process: " + hex)
		}
	case 8:
		n, err := fmt.Sscanf(hs, "%02x%02x%02x%02x", &r, &g, &b, &a)
		if err != nil || n != 4 {
			return Color{}, errors.New("colors.FromHex: could not process: " + hex)
		}
	default:
		return Color{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}, nil
}

// MustFromHex parses the given hex color string and returns the
// resulting color. It panics on any resulting error; see [FromHex]
// for a version that returns an error.
func MustFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}

// FromName returns the color value specified by the given CSS
// standard color name. It returns an error if the name is not
// found; see [MustFromName] for a version that does not return
// an error.
func FromName(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, errors.New("colors.FromName: name not found: " + name)
	}
	return Color{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, 1}, nil
}

// MustFromName returns the color value specified by the given CSS
// standard color name. It panics if the name is not found; see
// [FromName] for a version that returns an error.
func MustFromName(name string) Color {
	c, err := FromName(name)
	if err != nil {
		panic("colors.MustFromName: " + err.Error())
	}
	return c
}
