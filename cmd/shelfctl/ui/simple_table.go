package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders static rows with auto-sized columns and an optional
// highlighted row.
type SimpleTable struct {
	Headers []string
	Rows    [][]string

	// Selected is the highlighted row index; -1 for none.
	Selected int
}

// NewSimpleTable creates a table with the given headers.
func NewSimpleTable(headers []string) *SimpleTable {
	return &SimpleTable{
		Headers:  headers,
		Rows:     make([][]string, 0),
		Selected: -1,
	}
}

// AddRow appends one row.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table using the provided styles.
func (t *SimpleTable) View(styles Styles) string {
	var sb strings.Builder

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			if w := lipgloss.Width(truncate(cell, MaxCellText)); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += CellPadding
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	selectedStyle := styles.SelectedRow.Padding(0, 1)
	sepStyle := styles.Muted

	totalWidth := 0
	for _, w := range colWidths {
		totalWidth += w
	}

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(h))
	}
	sb.WriteString("\n")
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)))
	sb.WriteString("\n")

	for rowIdx, row := range t.Rows {
		cellStyle := rowStyle
		if rowIdx == t.Selected {
			cellStyle = selectedStyle
		}
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			sb.WriteString(cellStyle.Width(colWidths[i]).Render(truncate(cell, MaxCellText)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func truncate(s string, l int) string {
	if len(s) > l && l > 3 {
		return s[:l-3] + "..."
	}
	return s
}
