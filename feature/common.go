// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/scene/colors"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/value"
)

// lookup reads attrs by full name first, then by abbreviation.
func lookup(attrs map[string]string, name, abbrev string) (string, bool) {
	if s, ok := attrs[name]; ok {
		return s, true
	}
	if abbrev != "" {
		if s, ok := attrs[abbrev]; ok {
			return s, true
		}
	}
	return "", false
}

func parseUnitInterval(s string) (colors.UnitInterval, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("feature: invalid unit-interval %q: %w", s, err)
	}
	return colors.UnitInterval(f), nil
}

func formatUnitInterval(u colors.UnitInterval) string {
	return strconv.FormatFloat(float64(u), 'g', -1, 32)
}

func parseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("feature: invalid boolean %q: %w", s, err)
	}
	return b, nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("feature: invalid float %q: %w", s, err)
	}
	return float32(f), nil
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func parseInt(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("feature: invalid integer %q: %w", s, err)
	}
	return i, nil
}

func parseAxis(s string) (math32.Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return math32.X, nil
	case "y":
		return math32.Y, nil
	case "z":
		return math32.Z, nil
	default:
		return 0, fmt.Errorf("feature: invalid axis %q", s)
	}
}

func parseAlignment(s string) (value.Alignment, error) {
	switch strings.ToLower(s) {
	case "left":
		return value.AlignLeft, nil
	case "center":
		return value.AlignCenter, nil
	case "right":
		return value.AlignRight, nil
	default:
		return 0, fmt.Errorf("feature: invalid alignment %q", s)
	}
}
