package history

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable formats runs with one row per category.
func RenderTable(runs []Run) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Run", "Started", "Category", "Outcome", "Skipped", "Downloaded", "Failed"})

	for _, run := range runs {
		short := run.ID
		if len(short) > 8 {
			short = short[:8]
		}
		started := run.StartedAt.Local().Format("2006-01-02 15:04:05")
		if len(run.Categories) == 0 {
			tw.AppendRow(table.Row{short, started, "-", "-", "", "", ""})
		}
		for _, c := range run.Categories {
			tw.AppendRow(table.Row{short, started, c.Category, c.Outcome,
				strconv.Itoa(c.Skipped), strconv.Itoa(c.Downloaded), strconv.Itoa(c.Failed)})
		}
		tw.AppendSeparator()
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, AutoMerge: true},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	return tw.Render()
}
