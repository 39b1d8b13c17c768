package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vennquiz/internal/ui/theme"
)

// ScoreBar displays a fraction as a horizontal bar.
type ScoreBar struct {
	Label   string
	Percent float64
	Width   int
}

// NewScoreBar creates a score bar. Percent is clamped to [0, 1].
func NewScoreBar(label string, percent float64, width int) ScoreBar {
	return ScoreBar{
		Label:   label,
		Percent: min(max(percent, 0), 1),
		Width:   width,
	}
}

// Filled returns how many cells of the bar are filled.
func (s ScoreBar) Filled() int {
	return int(float64(s.barWidth()) * s.Percent)
}

func (s ScoreBar) barWidth() int {
	w := s.Width - lipgloss.Width(s.Label) - 8 // label gap + " 100%"
	if w < 4 {
		w = 4
	}
	return w
}

// View renders the bar.
func (s ScoreBar) View() string {
	var b strings.Builder
	if s.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(s.Label))
		b.WriteString("  ")
	}

	filled := s.Filled()
	b.WriteString(lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", s.barWidth()-filled)))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", int(s.Percent*100))))

	return b.String()
}
