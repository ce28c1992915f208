package table

// Metrics is what the header filter needs to know about one header cell.
type Metrics struct {
	// Depth is the 1-based header row of the cell.
	Depth int
	// ColumnDepth is the 0-based depth of the cell's column in the tree.
	ColumnDepth int
	Placeholder bool
	// MaxLeafDepth is the deepest row reached by the cell's leaf headers.
	MaxLeafDepth int
	ColSpan      int
}

// Span is the extent of a rendered header cell in grid rows and columns.
type Span struct {
	RowSpan int
	ColSpan int
}

// CellSpan decides whether a header cell is emitted and how far it reaches.
//
// A cell more than one row below the row its column is anchored at is
// already covered by a merge emitted higher up and is dropped. A placeholder
// is merged downward through the row of its deepest leaf header, so a column
// with a shallow branch lines up with the leaf row of deeper siblings.
func CellSpan(m Metrics) (Span, bool) {
	if m.Depth-m.ColumnDepth > 1 {
		return Span{}, false
	}
	span := Span{RowSpan: 1, ColSpan: m.ColSpan}
	if m.Placeholder {
		span.RowSpan = m.MaxLeafDepth - m.Depth + 1
	}
	return span, true
}

func (h *Header[T]) Metrics() Metrics {
	m := Metrics{
		Depth:       h.Depth,
		ColumnDepth: h.Column.Depth,
		Placeholder: h.IsPlaceholder,
		ColSpan:     h.ColSpan,
	}
	if h.IsPlaceholder {
		for _, leaf := range h.LeafHeaders() {
			if leaf.Depth > m.MaxLeafDepth {
				m.MaxLeafDepth = leaf.Depth
			}
		}
	}
	return m
}

// Span applies CellSpan to h.
func (h *Header[T]) Span() (Span, bool) {
	return CellSpan(h.Metrics())
}

// HeaderCell is a rendered header cell placed on the header grid. Row and
// Col are 0-based; Col counts leaf columns.
type HeaderCell[T any] struct {
	Header  *Header[T]
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// Label is the text shown in the cell.
func (c HeaderCell[T]) Label() string {
	return c.Header.Column.Label()
}

// Layout places every rendered header cell on the header grid, row by row.
// Dropped headers still advance the column offset, their slots being covered
// by a merge from a row above.
func (t *Table[T]) Layout() []HeaderCell[T] {
	var cells []HeaderCell[T]
	for row, group := range t.HeaderGroups() {
		col := 0
		for _, h := range group.Headers {
			if span, ok := h.Span(); ok {
				cells = append(cells, HeaderCell[T]{
					Header:  h,
					Row:     row,
					Col:     col,
					RowSpan: span.RowSpan,
					ColSpan: span.ColSpan,
				})
			}
			col += h.ColSpan
		}
	}
	return cells
}

// Mismatch is a column whose row span hint disagrees with the computed span.
type Mismatch struct {
	ColumnID string
	Want     int
	Got      int
}

// Check compares every row span hint in the column tree with the row span of
// the column's rendered header cell.
func (t *Table[T]) Check() []Mismatch {
	got := make(map[string]int)
	for _, cell := range t.Layout() {
		got[cell.Header.Column.ID] = cell.RowSpan
	}

	var mismatches []Mismatch
	var walk func(cols []*Column[T])
	walk = func(cols []*Column[T]) {
		for _, col := range cols {
			if want := col.Meta.RowSpan; want > 0 && got[col.ID] != want {
				mismatches = append(mismatches, Mismatch{ColumnID: col.ID, Want: want, Got: got[col.ID]})
			}
			walk(col.Columns)
		}
	}
	walk(t.columns)
	return mismatches
}
