package console

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// StepRow is one line of the run summary.
type StepRow struct {
	Step   string
	Status string
	Kind   string
	Bytes  int
	Path   string
}

// Summary renders the per-step outcome of a run as a table.
func (p *Printer) Summary(rows []StepRow) {
	if len(rows) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Step", "Status", "Error", "Bytes", "File"})
	for _, r := range rows {
		kind := r.Kind
		if kind == "" {
			kind = "-"
		}
		tw.AppendRow(table.Row{r.Step, r.Status, kind, r.Bytes, r.Path})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	fmt.Fprintln(p.out, tw.Render())
}
