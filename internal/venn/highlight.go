package venn

import (
	"fmt"
	"strings"
)

// Highlight selects a colour scheme that emphasises one operation in a
// two-set diagram.
type Highlight string

const (
	HighlightNone         Highlight = ""
	HighlightUnion        Highlight = "union"
	HighlightIntersection Highlight = "intersection"
	HighlightDifference   Highlight = "difference"
)

// ParseHighlight parses a highlight name. The empty string means none.
func ParseHighlight(s string) (Highlight, error) {
	switch h := Highlight(strings.ToLower(strings.TrimSpace(s))); h {
	case HighlightNone, HighlightUnion, HighlightIntersection, HighlightDifference:
		return h, nil
	default:
		return "", fmt.Errorf("invalid highlight %q: must be union, intersection or difference", s)
	}
}

const (
	fillEmphasis = "#F97316"
	fillMuted    = "#475569"
)

// twoSetFills holds the region colours of every highlight mode.
var twoSetFills = map[Highlight]map[RegionID]string{
	HighlightNone: {
		OnlyA: "#8B5CF6",
		OnlyB: "#14B8A6",
		BothA: "#6366F1",
	},
	HighlightUnion: {
		OnlyA: fillEmphasis,
		OnlyB: fillEmphasis,
		BothA: fillEmphasis,
	},
	HighlightIntersection: {
		OnlyA: fillMuted,
		OnlyB: fillMuted,
		BothA: fillEmphasis,
	},
	HighlightDifference: {
		OnlyA: fillEmphasis,
		OnlyB: fillMuted,
		BothA: fillMuted,
	},
}

var threeSetFills = map[RegionID]string{
	Only100: "#8B5CF6",
	Only010: "#14B8A6",
	Only001: "#F97316",
	Pair110: "#6366F1",
	Pair101: "#EC4899",
	Pair011: "#84CC16",
	All111:  "#F8FAFC",
}

// Fill returns the colour a region is drawn with under h.
func Fill(h Highlight, id RegionID) string {
	if fills, ok := twoSetFills[h]; ok {
		if c, ok := fills[id]; ok {
			return c
		}
	}
	return threeSetFills[id]
}
