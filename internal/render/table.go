package render

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// VertexTable lists every vertex of every item, one row each.
func (c *Canvas) VertexTable() string {
	cols := []table.Column{
		{Title: "item", Width: 6},
		{Title: "#", Width: 4},
		{Title: "x", Width: 12},
		{Title: "y", Width: 12},
		{Title: "outline", Width: 9},
	}
	var rows []table.Row
	for _, it := range c.items {
		for i, p := range it.Coords {
			rows = append(rows, table.Row{
				strconv.Itoa(it.ID),
				strconv.Itoa(i),
				fmt.Sprintf("%.3f", p.X),
				fmt.Sprintf("%.3f", p.Y),
				it.Outline,
			})
		}
	}
	s := table.DefaultStyles()
	// static output: no cursor row
	s.Selected = lipgloss.NewStyle()
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(false),
		table.WithStyles(s),
	)
	return t.View()
}
