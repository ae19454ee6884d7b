// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the [RGBA] color value used by the layout
// engine, along with its string syntax: palette names of the form
// "{hue}{0-9}" and the literal "RGBA(r, g, b[, a])" / "(r, g, b[, a])"
// forms.
package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is a color with four 8-bit channels. Opacity is stored
// quantized in the A channel; [RGBA.WithOpacity] derives it from a
// [UnitInterval].
type RGBA struct {
	R, G, B, A uint8
}

// UnitInterval is a float clamped to [0, 1].
type UnitInterval float32

// Clamp returns u clamped to [0, 1].
func (u UnitInterval) Clamp() UnitInterval {
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}

// Float32 returns the clamped float32 value of u.
func (u UnitInterval) Float32() float32 { return float32(u.Clamp()) }

// WithOpacity returns c with its alpha channel set from o.
func (c RGBA) WithOpacity(o UnitInterval) RGBA {
	c.A = uint8(o.Float32() * 255)
	return c
}

// Opacity returns c's alpha channel as a [UnitInterval].
func (c RGBA) Opacity() UnitInterval {
	return UnitInterval(float32(c.A) / 255)
}

// DarkenBy returns c with its RGB channels multiplied by 1 -
// clamp(d, 0, 1); alpha is unchanged.
func (c RGBA) DarkenBy(d UnitInterval) RGBA {
	f := 1 - d.Float32()
	return RGBA{
		R: uint8(float32(c.R) * f),
		G: uint8(float32(c.G) * f),
		B: uint8(float32(c.B) * f),
		A: c.A,
	}
}

// String renders c in the "RGBA(r, g, b, a)" form.
func (c RGBA) String() string {
	return fmt.Sprintf("RGBA(%d, %d, %d, %.3f)", c.R, c.G, c.B, float32(c.A)/255)
}

// Parse parses a color string: either a palette name ("red5",
// "gray0", ...) or a literal "RGBA(r, g, b[, a])" / "(r, g, b[, a])"
// form, where r, g, b are integers 0-255 and a is a float in [0, 1]
// defaulting to 1 when omitted.
func Parse(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, fmt.Errorf("colors.Parse: empty color string")
	}
	if c, ok := Palette[s]; ok {
		return c, nil
	}
	body := s
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "rgba("):
		body = s[5:]
	case strings.HasPrefix(lower, "rgb("):
		body = s[4:]
	case strings.HasPrefix(s, "(") :
		body = s[1:]
	default:
		return RGBA{}, fmt.Errorf("colors.Parse: unrecognized color %q", s)
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), ")")
	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, fmt.Errorf("colors.Parse: %q needs 3 or 4 components", s)
	}
	chans := make([]int, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return RGBA{}, fmt.Errorf("colors.Parse: %q: %w", s, err)
		}
		chans[i] = v
	}
	a := float32(1)
	if len(parts) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 32)
		if err != nil {
			return RGBA{}, fmt.Errorf("colors.Parse: %q: %w", s, err)
		}
		a = float32(v)
	}
	return RGBA{uint8(chans[0]), uint8(chans[1]), uint8(chans[2]), uint8(a * 255)}, nil
}
