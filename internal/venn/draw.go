package venn

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vennquiz/internal/ui/theme"
)

const emptyRegion = "·"

// Draw lays the regions of d out as coloured boxes. Two-set diagrams are a
// single row A | A ∩ B | B. Three-set diagrams are a 3x3 grid with the
// triple intersection in the centre:
//
//	A        A ∩ B      B
//	A ∩ C   A ∩ B ∩ C  B ∩ C
//	           C
func Draw(d Diagram) string {
	var rows [][]RegionID
	if len(d.SetLabels) == 3 {
		rows = [][]RegionID{
			{Only100, Pair110, Only010},
			{Pair101, All111, Pair011},
			{"", Only001, ""},
		}
	} else {
		rows = [][]RegionID{TwoRegions}
	}

	width, height := boxSize(d)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		boxes := make([]string, 0, len(row))
		for _, id := range row {
			r, ok := d.Region(id)
			if !ok {
				boxes = append(boxes, lipgloss.NewStyle().Width(width+4).Render(""))
				continue
			}
			boxes = append(boxes, drawRegion(r, width, height))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// boxSize returns the inner width and height every region box shares.
func boxSize(d Diagram) (width, height int) {
	width, height = 6, 1
	for _, r := range d.Regions {
		if w := lipgloss.Width(r.Caption); w > width {
			width = w
		}
		if len(r.Codes) > height {
			height = len(r.Codes)
		}
	}
	// Caption line plus a blank separator.
	return width, height + 2
}

func drawRegion(r Region, width, height int) string {
	fill := lipgloss.Color(r.Fill)

	label := r.Label
	if label == "" {
		label = emptyRegion
	}

	caption := lipgloss.NewStyle().Foreground(theme.TextDim).Render(r.Caption)
	body := lipgloss.NewStyle().Foreground(fill).Bold(true).Render(label)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fill).
		Padding(0, 1).
		Width(width + 4).
		Height(height + 2).
		Align(lipgloss.Center).
		Render(strings.Join([]string{caption, "", body}, "\n"))
}
