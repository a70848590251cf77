package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// FallbackColor is drawn for any palette entry that is missing or malformed.
const FallbackColor = tcell.ColorWhite

// moodPalette is keyed by the mood names shown on the sidebar.
var moodPalette = map[string]string{
	"Awful":   "#bf616a",
	"Bad":     "#d08770",
	"Neutral": "#e5e9f0",
	"Good":    "#a3be8c",
	"Great":   "#88c0d0",
}

// ParseHexColor reads "#rrggbb" (the leading # is optional) as used by
// classes.json.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q: want 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}

// paletteColor resolves hex, falling back to FallbackColor.
func paletteColor(hex string) tcell.Color {
	c, err := ParseHexColor(hex)
	if err != nil {
		return FallbackColor
	}
	return c
}

// MoodColor returns the sidebar color for a mood name.
func MoodColor(mood string) tcell.Color {
	hex, ok := moodPalette[mood]
	if !ok {
		return FallbackColor
	}
	return paletteColor(hex)
}
