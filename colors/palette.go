// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

// hues lists the thirteen named hues. Each hue has ten numbered
// tones, 0 (lightest) through 9 (darkest), giving palette names of
// the form "{hue}{0-9}" such as "red5" or "gray0".
var hues = []string{
	"gray", "red", "pink", "grape", "violet", "indigo", "blue",
	"cyan", "teal", "green", "lime", "yellow", "orange",
}

// anchors gives the tone-5 (mid) color for each hue. Tone 5 for "red"
// is pinned to (255, 107, 107) to match the reference fixture.
var anchors = map[string]RGBA{
	"gray":   {145, 145, 145, 255},
	"red":    {255, 107, 107, 255},
	"pink":   {240, 101, 149, 255},
	"grape":  {190, 75, 219, 255},
	"violet": {151, 117, 250, 255},
	"indigo": {92, 124, 250, 255},
	"blue":   {77, 171, 247, 255},
	"cyan":   {59, 201, 219, 255},
	"teal":   {32, 201, 151, 255},
	"green":  {81, 207, 102, 255},
	"lime":   {148, 216, 45, 255},
	"yellow": {255, 212, 59, 255},
	"orange": {255, 146, 43, 255},
}

// Palette maps "{hue}{0-9}" names to their [RGBA] value.
var Palette = buildPalette()

func buildPalette() map[string]RGBA {
	p := make(map[string]RGBA, len(hues)*10)
	for _, hue := range hues {
		base := anchors[hue]
		for tone := range 10 {
			p[hue+itoa(tone)] = toneOf(base, tone)
		}
	}
	return p
}

// toneOf blends base toward white for tones lighter than 5 and
// toward black for tones darker than 5, leaving tone 5 unchanged.
func toneOf(base RGBA, tone int) RGBA {
	if tone == 5 {
		return base
	}
	if tone < 5 {
		f := float32(5-tone) / 5
		return blend(base, RGBA{255, 255, 255, base.A}, f)
	}
	f := float32(tone-5) / 4
	return blend(base, RGBA{0, 0, 0, base.A}, f)
}

// blend linearly interpolates from a to b by fraction f in [0, 1].
func blend(a, b RGBA, f float32) RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*f)
	}
	return RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), a.A}
}

func itoa(i int) string {
	return string(rune('0' + i))
}
