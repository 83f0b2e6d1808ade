package pipeline

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable formats the per-category counts of a report.
func RenderTable(report Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "Outcome", "Skipped", "Downloaded", "Failed", "Error"})

	for _, s := range report.Summaries {
		tw.AppendRow(table.Row{
			s.Category,
			string(s.Outcome),
			strconv.Itoa(s.Skipped),
			strconv.Itoa(s.Downloaded),
			strconv.Itoa(s.Failed),
			s.Error(),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 6, WidthMax: 60},
	})
	return tw.Render()
}
