package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/nlatools/nla/internal/domain"
)

// WriteTable prints the report rows as a readable console table.
func WriteTable(w io.Writer, rows []domain.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{
		"URL", "Count", "Count %", "Time Sum", "Time %", "Time Avg", "Time Max", "Time Med",
	})

	for _, row := range rows {
		t.AppendRow(table.Row{
			row.URL,
			row.Count,
			row.CountPercent,
			row.TimeSum,
			row.TimePercent,
			row.TimeAvg,
			row.TimeMax,
			row.TimeMedian,
		})
	}

	t.Render()
}
