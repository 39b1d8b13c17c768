package facts

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/vennquiz/internal/ui/theme"
)

// Flag labels shown in the table dump.
const (
	LabelYes = "Sim"
	LabelNo  = "Não"
)

// Format renders the fact table as a bordered grid: one row per entity, one
// Sim/Não column per category.
func Format(f *Facts) string {
	cats := f.Categories()
	headers := make([]string, 0, len(cats)+1)
	headers = append(headers, "Estado")
	for _, c := range cats {
		headers = append(headers, c.Name)
	}

	rows := make([][]string, 0, len(f.rows))
	for _, r := range f.rows {
		cells := make([]string, 0, len(cats)+1)
		cells = append(cells, r.Entity)
		for _, c := range cats {
			if r.Flags[c.Key] {
				cells = append(cells, LabelYes)
			} else {
				cells = append(cells, LabelNo)
			}
		}
		rows = append(rows, cells)
	}

	headerStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.String()
}
