package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableOption adjusts RenderTable.
type TableOption func(*tableConfig)

type tableConfig struct {
	rightAlign map[int]bool
}

// AlignRight right-aligns the given column indexes, for numeric columns.
func AlignRight(cols ...int) TableOption {
	return func(c *tableConfig) {
		for _, col := range cols {
			c.rightAlign[col] = true
		}
	}
}

// RenderTable renders an aligned table with a header separator line.
// Widths are measured on visible text so styled cells line up.
func RenderTable(headers []string, rows [][]string, opts ...TableOption) string {
	if len(headers) == 0 {
		return ""
	}
	cfg := tableConfig{rightAlign: map[int]bool{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	const colGap = 2
	var b strings.Builder

	writeRow := func(cells []string, style func(string) string) {
		for i := range cols {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := max(widths[i]-lipgloss.Width(cell), 0)
			if cfg.rightAlign[i] {
				b.WriteString(strings.Repeat(" ", pad))
				pad = 0
			}
			b.WriteString(style(cell))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}

	return b.String()
}
