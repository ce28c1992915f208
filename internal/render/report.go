package render

import (
	"io"
	"strconv"

	"github.com/jdlms/flexheader/internal/table"
	"github.com/olekukonko/tablewriter"
)

// HeaderReport lists every header slot with the inputs and outcome of the
// header filter. The first row holds the column titles.
func HeaderReport[T any](t *table.Table[T]) [][]string {
	rows := [][]string{
		{"Row", "Header", "Column", "Depth", "Column Depth", "Relative", "Placeholder", "Col Span", "Row Span", "Rendered"},
	}
	for _, group := range t.HeaderGroups() {
		for _, h := range group.Headers {
			m := h.Metrics()
			span, ok := h.Span()
			rowSpan := "-"
			if ok {
				rowSpan = strconv.Itoa(span.RowSpan)
			}
			rows = append(rows, []string{
				strconv.Itoa(group.Depth + 1),
				h.ID,
				h.Column.ID,
				strconv.Itoa(m.Depth),
				strconv.Itoa(m.ColumnDepth),
				strconv.Itoa(m.Depth - m.ColumnDepth),
				strconv.FormatBool(m.Placeholder),
				strconv.Itoa(m.ColSpan),
				rowSpan,
				yesNo(ok),
			})
		}
	}
	return rows
}

// ColumnReport lists the column tree with each column's row span hint next
// to the span its header cell actually gets.
func ColumnReport[T any](t *table.Table[T]) [][]string {
	rows := [][]string{
		{"Column", "Label", "Depth", "Leaf", "Row Span Hint", "Row Span", "Status"},
	}

	spans := make(map[string]int)
	for _, c := range t.Layout() {
		spans[c.Header.Column.ID] = c.RowSpan
	}

	var walk func(cols []*table.Column[T])
	walk = func(cols []*table.Column[T]) {
		for _, col := range cols {
			hint, status := "-", "-"
			if col.Meta.RowSpan > 0 {
				hint = strconv.Itoa(col.Meta.RowSpan)
				status = "ok"
				if spans[col.ID] != col.Meta.RowSpan {
					status = "mismatch"
				}
			}
			rows = append(rows, []string{
				col.ID,
				col.Label(),
				strconv.Itoa(col.Depth),
				yesNo(col.IsLeaf()),
				hint,
				strconv.Itoa(spans[col.ID]),
				status,
			})
			walk(col.Columns)
		}
	}
	walk(t.Columns())
	return rows
}

// Report writes rows as a plain text table, the first row being the
// column titles.
func Report(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(rows[0])
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)
	tw.AppendBulk(rows[1:])
	tw.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
