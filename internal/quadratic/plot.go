package quadratic

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vennquiz/internal/ui/theme"
)

// Plot cell runes.
const (
	RuneEmpty  = ' '
	RuneCurve  = '•'
	RuneVertex = 'V'
	RuneRoot   = 'R'
	RuneAxisX  = '─'
	RuneAxisY  = '│'
	RuneOrigin = '┼'
)

// Default plot size in terminal cells.
const (
	DefaultWidth  = 61
	DefaultHeight = 21
)

// halfSpan is the distance plotted on each side of the centre of the x range.
const halfSpan = 10.0

// Plot is a character-cell rendering of f over a fixed x range.
type Plot struct {
	XMin, XMax float64
	YMin, YMax float64
	Width      int
	Height     int
	cells      [][]rune
}

// Domain returns the plotted x range: ±10 around the vertex for a parabola,
// [-10, 10] otherwise.
func Domain(an Analysis) (xmin, xmax float64) {
	centre := 0.0
	if an.HasVertex() {
		centre = an.Vertex.X
	}
	return centre - halfSpan, centre + halfSpan
}

// NewPlot samples f once per column and draws the axes, the curve, the
// roots and the vertex. width and height are clamped to at least 3.
func NewPlot(an Analysis, width, height int) *Plot {
	width = max(width, 3)
	height = max(height, 3)

	p := &Plot{Width: width, Height: height}
	p.XMin, p.XMax = Domain(an)

	// Samples that overflow are left out of the y range and drawn as gaps.
	ys := make([]float64, width)
	p.YMin, p.YMax = math.Inf(1), math.Inf(-1)
	for col := range width {
		ys[col] = an.Eval(p.x(col))
		if !finite(ys[col]) {
			continue
		}
		p.YMin = math.Min(p.YMin, ys[col])
		p.YMax = math.Max(p.YMax, ys[col])
	}
	if len(an.Roots) > 0 || p.YMin > p.YMax {
		p.YMin = math.Min(p.YMin, 0)
		p.YMax = math.Max(p.YMax, 0)
	}
	if p.YMax-p.YMin < 1e-9 {
		p.YMin--
		p.YMax++
	}

	p.cells = make([][]rune, height)
	for row := range p.cells {
		p.cells[row] = []rune(strings.Repeat(string(RuneEmpty), width))
	}

	p.drawAxes()

	prev := -1
	for col, y := range ys {
		if !finite(y) {
			prev = -1
			continue
		}
		row := p.row(y)
		from, to := row, row
		if prev >= 0 {
			// Join to the previous column so steep stretches stay connected.
			if prev < row {
				from = prev + 1
			} else if prev > row {
				to = prev - 1
			}
		}
		for r := from; r <= to; r++ {
			p.set(col, r, RuneCurve)
		}
		prev = row
	}

	for _, x := range an.Roots {
		col, row := p.Locate(x, 0)
		p.set(col, row, RuneRoot)
	}
	if an.HasVertex() {
		col, row := p.Locate(an.Vertex.X, an.Vertex.Y)
		p.set(col, row, RuneVertex)
	}

	return p
}

func (p *Plot) drawAxes() {
	zeroRow, zeroCol := -1, -1
	if p.YMin <= 0 && p.YMax >= 0 {
		zeroRow = p.row(0)
		for col := range p.Width {
			p.set(col, zeroRow, RuneAxisX)
		}
	}
	if p.XMin <= 0 && p.XMax >= 0 {
		zeroCol = p.col(0)
		for row := range p.Height {
			p.set(zeroCol, row, RuneAxisY)
		}
	}
	if zeroRow >= 0 && zeroCol >= 0 {
		p.set(zeroCol, zeroRow, RuneOrigin)
	}
}

func (p *Plot) x(col int) float64 {
	return p.XMin + (p.XMax-p.XMin)*float64(col)/float64(p.Width-1)
}

// Ranges are halved before subtracting so that extremes near ±MaxFloat64
// do not overflow.
func (p *Plot) col(x float64) int {
	return cellIndex((x/2-p.XMin/2)/(p.XMax/2-p.XMin/2)*float64(p.Width-1), p.Width)
}

func (p *Plot) row(y float64) int {
	return cellIndex((p.YMax/2-y/2)/(p.YMax/2-p.YMin/2)*float64(p.Height-1), p.Height)
}

// cellIndex rounds v to a cell index in [-1, n]. Both ends lie just off
// the grid; NaN maps to -1.
func cellIndex(v float64, n int) int {
	switch v = math.Round(v); {
	case math.IsNaN(v), v < -1:
		return -1
	case v > float64(n):
		return n
	default:
		return int(v)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Locate returns the cell a point falls in. It may lie outside the grid.
func (p *Plot) Locate(x, y float64) (col, row int) {
	return p.col(x), p.row(y)
}

func (p *Plot) set(col, row int, r rune) {
	if row < 0 || row >= p.Height || col < 0 || col >= p.Width {
		return
	}
	p.cells[row][col] = r
}

// Cell returns the rune at (col, row), or RuneEmpty outside the grid.
func (p *Plot) Cell(col, row int) rune {
	if row < 0 || row >= p.Height || col < 0 || col >= p.Width {
		return RuneEmpty
	}
	return p.cells[row][col]
}

// Count returns how many cells hold r.
func (p *Plot) Count(r rune) int {
	n := 0
	for _, line := range p.cells {
		for _, c := range line {
			if c == r {
				n++
			}
		}
	}
	return n
}

// String returns the unstyled grid.
func (p *Plot) String() string {
	lines := make([]string, len(p.cells))
	for i, line := range p.cells {
		lines[i] = string(line)
	}
	return strings.Join(lines, "\n")
}

var cellStyles = map[rune]lipgloss.Style{
	RuneCurve:  lipgloss.NewStyle().Foreground(theme.Secondary),
	RuneVertex: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
	RuneRoot:   lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
	RuneAxisX:  lipgloss.NewStyle().Foreground(theme.TextDim),
	RuneAxisY:  lipgloss.NewStyle().Foreground(theme.TextDim),
	RuneOrigin: lipgloss.NewStyle().Foreground(theme.TextDim),
}

// Render returns the coloured grid with a legend and the plotted ranges.
func (p *Plot) Render() string {
	var b strings.Builder
	for i, line := range p.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range line {
			if st, ok := cellStyles[c]; ok {
				b.WriteString(st.Render(string(c)))
			} else {
				b.WriteRune(c)
			}
		}
	}

	legend := strings.Join([]string{
		cellStyles[RuneCurve].Render(string(RuneCurve)) + " f(x)",
		cellStyles[RuneVertex].Render(string(RuneVertex)) + " vértice",
		cellStyles[RuneRoot].Render(string(RuneRoot)) + " raiz",
	}, "   ")
	ranges := theme.Hint.Render(
		"x ∈ [" + FormatNumber(p.XMin) + ", " + FormatNumber(p.XMax) + "]   " +
			"y ∈ [" + formatAxis(p.YMin) + ", " + formatAxis(p.YMax) + "]",
	)

	return b.String() + "\n\n" + legend + "\n" + ranges
}

func formatAxis(y float64) string {
	if math.Abs(y) >= 1e15 {
		return FormatNumber(y)
	}
	return FormatNumber(math.Round(y*100) / 100)
}
