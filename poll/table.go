package poll

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Table draws the candidates as a plain text table.
func (p *Poll) Table() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Reaction", "Code", "Datetime"})
	for _, c := range p.Candidates {
		t.AppendRow(table.Row{c.Marker, c.Code, c.Label})
	}
	t.AppendFooter(table.Row{AbsentMarker, "", p.AbsentCaption})
	return t.Render()
}
