// Package chart draws utilization samples as a terminal area chart.
package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultHeight = 10
	subRows       = 8
	gridLines     = 10
)

// partialBlocks are the lower eighth-block glyphs for 1/8 through 7/8.
var partialBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇'}

const (
	fullBlock = '█'
	gridDot   = '·'
)

// Style controls chart colors. Zero values render uncolored.
type Style struct {
	Line lipgloss.Color
	Fill lipgloss.Color
	Grid lipgloss.Color
	// ShowGrid draws a dotted line at every 10% of the range.
	ShowGrid bool
}

// Chart renders samples left to right, oldest first.
type Chart struct {
	Width  int
	Height int
	Mode   BoundsMode
	Style  Style
}

type cellKind int

const (
	cellEmpty cellKind = iota
	cellGrid
	cellFill
	cellLine
)

// Render returns Height lines of Width cells each. The newest sample is
// always the rightmost column.
func (c Chart) Render(samples []float64) string {
	if len(samples) == 0 {
		return ""
	}

	width := c.Width
	if width <= 0 {
		width = len(samples)
	}
	height := c.Height
	if height <= 0 {
		height = defaultHeight
	}

	// Keep the newest samples when narrower; stretch when wider.
	if width < len(samples) {
		samples = samples[len(samples)-width:]
	}

	bounds := Compute(c.Mode, samples)
	levels := make([]int, width)
	for x := range levels {
		levels[x] = level(samples[x*len(samples)/width], bounds, height)
		// the window minimum sits on the bottom edge, not below it
		if c.Mode == Dynamic && bounds.Span() > 0 {
			levels[x] = max(levels[x], 1)
		}
	}

	grid := gridRows(height)
	styles := map[cellKind]lipgloss.Style{
		cellGrid: colored(c.Style.Grid),
		cellFill: colored(c.Style.Fill),
		cellLine: colored(c.Style.Line),
	}

	rows := make([]string, 0, height)
	for r := 0; r < height; r++ {
		base := (height - 1 - r) * subRows
		onGrid := c.Style.ShowGrid && grid[height-1-r]

		var sb strings.Builder
		var run []rune
		kind := cellKind(-1)
		flush := func() {
			if len(run) == 0 {
				return
			}
			if st, ok := styles[kind]; ok {
				sb.WriteString(st.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}

		for _, lvl := range levels {
			k, ch := cell(lvl-base, onGrid)
			if k != kind {
				flush()
				kind = k
			}
			run = append(run, ch)
		}
		flush()
		rows = append(rows, sb.String())
	}

	return strings.Join(rows, "\n")
}

// level maps v onto [0, height*subRows].
func level(v float64, b Bounds, height int) int {
	top := height * subRows
	if b.Span() <= 0 {
		if v <= b.Min && v <= 0 {
			return 0
		}
		return top / 2
	}

	lvl := int((v - b.Min) / b.Span() * float64(top))
	return max(0, min(top, lvl))
}

func cell(fill int, onGrid bool) (cellKind, rune) {
	switch {
	case fill >= subRows:
		return cellFill, fullBlock
	case fill > 0:
		return cellLine, partialBlocks[fill-1]
	case onGrid:
		return cellGrid, gridDot
	default:
		return cellEmpty, ' '
	}
}

// gridRows marks, counting from the bottom, the rows a 10% line falls in.
func gridRows(height int) []bool {
	rows := make([]bool, height)
	for k := 1; k < gridLines; k++ {
		rows[k*height/gridLines] = true
	}
	return rows
}

func colored(c lipgloss.Color) lipgloss.Style {
	if c == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}
