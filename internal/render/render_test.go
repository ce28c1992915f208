package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jdlms/flexheader/internal/sample"
	"github.com/jdlms/flexheader/internal/table"
	"github.com/jdlms/flexheader/internal/types"
	"github.com/stretchr/testify/require"
)

type row map[string]string

func get(key string) func(row) any {
	return func(r row) any { return r[key] }
}

func ragged(t *testing.T, data []row) *table.Table[row] {
	t.Helper()
	tbl, err := table.New([]table.ColumnDef[row]{
		table.Accessor("a", "A", get("a")),
		table.Group("g", "G",
			table.Group("s", "S",
				table.Accessor("x", "X", get("x")),
				table.Accessor("y", "Y", get("y")),
			),
		),
	}, data)
	require.NoError(t, err)
	return tbl
}

func TestTextMergesHeaderCells(t *testing.T) {
	tbl := ragged(t, []row{{"a": "1", "x": "2", "y": "3"}})

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, tbl, Options{}))

	want := `┌───┬───────┐
│   │ G     │
│   ├───────┤
│ A │ S     │
│   ├───┬───┤
│   │ X │ Y │
├───┼───┼───┤
│ 1 │ 2 │ 3 │
└───┴───┴───┘
`
	require.Equal(t, want, buf.String())
}

func TestTextWidensSpanningCell(t *testing.T) {
	tbl, err := table.New([]table.ColumnDef[row]{
		table.Group("g", "Wide group label",
			table.Accessor("x", "X", get("x")),
			table.Accessor("y", "Y", get("y")),
		),
	}, []row{{"x": "1", "y": "2"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, tbl, Options{}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	require.Len(t, lines, 7)
	require.Equal(t, "│ Wide group label │", lines[1])
	for _, line := range lines {
		require.Equal(t, len([]rune(lines[0])), len([]rune(line)), line)
	}
}

func TestTextSampleTable(t *testing.T) {
	tbl, err := sample.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, tbl, Options{UppercaseHeaders: true}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	// Four header rows and three records, each with a border below.
	require.Len(t, lines, 2*(4+3)+1)
	require.True(t, strings.HasPrefix(lines[0], "┌"))
	require.True(t, strings.HasPrefix(lines[len(lines)-1], "└"))

	require.Contains(t, lines[1], "HOGEHOFE")
	require.Contains(t, lines[3], "HELLO")
	require.Contains(t, lines[3], "INFO")
	// test spans rows two to four and is labelled once, halfway down.
	require.Contains(t, lines[5], "TEST")
	require.Equal(t, 1, strings.Count(buf.String(), "TEST"))
	require.Contains(t, lines[6], "FIRSTNAME")
	require.Contains(t, lines[6], "LAST NAME")
	require.Contains(t, lines[6], "AGE")
	require.Contains(t, lines[5], "MORE INFO")
	require.Contains(t, lines[7], "PROFILE PROGRESS")

	require.Contains(t, lines[9], "tanner")
	require.Contains(t, lines[11], "Single")
	require.Contains(t, lines[13], "Complicated")
}

func TestTextKeepsLabelCase(t *testing.T) {
	tbl, err := sample.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, tbl, Options{}))
	require.Contains(t, buf.String(), "Profile Progress")
	require.Contains(t, buf.String(), "firstName")
}

func thead(t *testing.T, html string) string {
	t.Helper()
	start := strings.Index(html, "<thead>")
	end := strings.Index(html, "</thead>")
	require.True(t, start >= 0 && end > start)
	return html[start:end]
}

func TestHTMLSpans(t *testing.T) {
	tbl, err := sample.New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, tbl, Options{UppercaseHeaders: true}))
	out := buf.String()

	require.Equal(t, len(tbl.Layout()), strings.Count(out, "<th "))
	require.Equal(t, 4, strings.Count(thead(t, out), "<tr>"))
	require.Equal(t, 3*7, strings.Count(out, "<td "))
	require.Contains(t, out, `<th colspan="7" rowspan="1"`)
	require.Contains(t, out, `<th colspan="1" rowspan="3"`)
	require.Contains(t, out, ">In Relationship</td>")
}

func TestHeadersIndependentOfData(t *testing.T) {
	tbl, err := sample.New()
	require.NoError(t, err)

	var before bytes.Buffer
	require.NoError(t, HTML(&before, tbl, Options{}))

	tbl.SetData([]types.Person{{Tag: "a much longer tag than before", FirstName: "<b>"}})
	var after bytes.Buffer
	require.NoError(t, HTML(&after, tbl, Options{}))

	require.Equal(t, thead(t, before.String()), thead(t, after.String()))
	require.NotEqual(t, before.String(), after.String())
	require.Contains(t, after.String(), "&lt;b&gt;")
}

func TestHeaderReport(t *testing.T) {
	tbl := ragged(t, nil)

	rows := HeaderReport(tbl)
	require.Len(t, rows, 1+2+2+3)
	require.Equal(t, []string{"1", "1_a_2_a_a", "a", "1", "0", "1", "true", "1", "3", "yes"}, rows[1])
	require.Equal(t, []string{"3", "a", "a", "3", "0", "3", "false", "1", "-", "no"}, rows[5])
}

func TestColumnReport(t *testing.T) {
	tbl, err := sample.New()
	require.NoError(t, err)

	rows := ColumnReport(tbl)
	require.Len(t, rows, 1+11)
	require.Equal(t, []string{"test", "test", "1", "yes", "3", "3", "ok"}, rows[2])
	for _, r := range rows[1:] {
		require.NotEqual(t, "mismatch", r[6], r[0])
	}

	var buf bytes.Buffer
	Report(&buf, rows)
	require.Contains(t, buf.String(), "Row Span Hint")
	require.Contains(t, buf.String(), "Profile Progress")
}
