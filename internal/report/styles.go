// SPDX-License-Identifier: MPL-2.0

package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/modgraph/modgraph/pkg/modgraph"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	coreStyle    = cellStyle.Foreground(lipgloss.Color("#10B981"))
	exampleStyle = cellStyle.Foreground(lipgloss.Color("#6B7280")).Italic(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// newTable returns a bordered table. groupCol is the index of the column
// holding a modgraph.Group, or -1.
func newTable(headers []string, rows [][]string, groupCol int) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == groupCol && row >= 0 && row < len(rows):
				return groupStyle(modgraph.Group(rows[row][col]))
			default:
				return cellStyle
			}
		})
}

func groupStyle(g modgraph.Group) lipgloss.Style {
	if g == modgraph.GroupExample {
		return exampleStyle
	}
	return coreStyle
}
