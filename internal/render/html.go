package render

import (
	"html/template"
	"io"

	"github.com/jdlms/flexheader/internal/table"
)

const (
	headerStyle = "padding: 12px; text-align: left; font-size: 0.75rem; font-weight: 500; color: #6b7280; " +
		"text-transform: uppercase; letter-spacing: 0.05em; background-color: #f9fafb; border: 1px solid #e5e7eb;"
	cellStyle = "padding: 12px; white-space: nowrap; font-size: 0.875rem; color: #6b7280; border: 1px solid #e5e7eb;"
)

var htmlTable = template.Must(template.New("table").Parse(`<div class="p-2">
<table style="border-collapse: collapse; width: 100%; border: 1px solid #e5e7eb">
<thead>
{{- range .Head}}
<tr>
{{- range .}}
<th colspan="{{.ColSpan}}" rowspan="{{.RowSpan}}" style="{{$.HeaderStyle}}">{{.Text}}</th>
{{- end}}
</tr>
{{- end}}
</thead>
<tbody>
{{- range .Body}}
<tr>
{{- range .}}
<td style="{{$.CellStyle}}">{{.}}</td>
{{- end}}
</tr>
{{- end}}
</tbody>
</table>
</div>
`))

type htmlHeader struct {
	Text    string
	ColSpan int
	RowSpan int
}

type htmlData struct {
	Head        [][]htmlHeader
	Body        [][]string
	HeaderStyle template.CSS
	CellStyle   template.CSS
}

// HTML writes t as an HTML table with colspan and rowspan on the header
// cells.
func HTML[T any](w io.Writer, t *table.Table[T], opts Options) error {
	data := htmlData{
		Head:        make([][]htmlHeader, t.HeaderDepth()),
		HeaderStyle: template.CSS(headerStyle),
		CellStyle:   template.CSS(cellStyle),
	}
	for _, c := range t.Layout() {
		data.Head[c.Row] = append(data.Head[c.Row], htmlHeader{
			Text:    headerLabel(c, opts),
			ColSpan: c.ColSpan,
			RowSpan: c.RowSpan,
		})
	}
	for _, row := range t.Rows() {
		cells := make([]string, 0, len(row.VisibleCells()))
		for _, cell := range row.VisibleCells() {
			cells = append(cells, cell.String())
		}
		data.Body = append(data.Body, cells)
	}
	return htmlTable.Execute(w, data)
}
