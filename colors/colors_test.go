// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRed5MatchesReferenceFixture(t *testing.T) {
	c, err := Parse("red5")
	assert.NoError(t, err)
	assert.Equal(t, RGBA{255, 107, 107, 255}, c)
}

func TestParseRGBAForm(t *testing.T) {
	c, err := Parse("RGBA(10, 20, 30, 0.5)")
	assert.NoError(t, err)
	assert.Equal(t, RGBA{10, 20, 30, 127}, c)
}

func TestParseBareTupleDefaultsOpaque(t *testing.T) {
	c, err := Parse("(1, 2, 3)")
	assert.NoError(t, err)
	assert.Equal(t, RGBA{1, 2, 3, 255}, c)
}

func TestParseUnknownNameErrors(t *testing.T) {
	_, err := Parse("notacolor")
	assert.Error(t, err)
}

func TestDarkenByClampsAndScales(t *testing.T) {
	c := RGBA{200, 200, 200, 255}
	d := c.DarkenBy(UnitInterval(0.5))
	assert.Equal(t, uint8(100), d.R)
	full := c.DarkenBy(UnitInterval(2)) // clamps to 1
	assert.Equal(t, uint8(0), full.R)
}

func TestPaletteHasAllHueTones(t *testing.T) {
	for _, hue := range hues {
		for tone := 0; tone < 10; tone++ {
			name := hue + itoa(tone)
			_, ok := Palette[name]
			assert.True(t, ok, "missing palette entry %q", name)
		}
	}
}
