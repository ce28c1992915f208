package table

import (
	"fmt"
	"slices"
	"strconv"
)

// Table derives header, row and cell models from a column tree and the
// current data collection. The tree never changes after New; the data is
// only ever replaced as a whole.
type Table[T any] struct {
	columns []*Column[T]
	leaves  []*Column[T]
	byID    map[string]*Column[T]
	data    []T
}

// New resolves defs and binds data to them.
func New[T any](defs []ColumnDef[T], data []T) (*Table[T], error) {
	cols, err := resolveColumns(defs)
	if err != nil {
		return nil, fmt.Errorf("resolving columns: %w", err)
	}

	t := &Table[T]{
		columns: cols,
		byID:    make(map[string]*Column[T]),
	}
	var index func(cols []*Column[T])
	index = func(cols []*Column[T]) {
		for _, col := range cols {
			t.byID[col.ID] = col
			index(col.Columns)
		}
	}
	index(cols)
	for _, col := range cols {
		t.leaves = append(t.leaves, col.Leaves()...)
	}
	t.SetData(data)
	return t, nil
}

// SetData replaces the data collection.
func (t *Table[T]) SetData(data []T) {
	t.data = slices.Clone(data)
}

func (t *Table[T]) Data() []T {
	return slices.Clone(t.data)
}

// Columns returns the root columns of the tree.
func (t *Table[T]) Columns() []*Column[T] {
	return t.columns
}

func (t *Table[T]) LeafColumns() []*Column[T] {
	return t.leaves
}

// Column looks a column up by id anywhere in the tree.
func (t *Table[T]) Column(id string) (*Column[T], bool) {
	col, ok := t.byID[id]
	return col, ok
}

// HeaderDepth is the number of header rows.
func (t *Table[T]) HeaderDepth() int {
	return headerDepth(t.columns, 1)
}

// HeaderGroups lays out the header rows, top row first.
func (t *Table[T]) HeaderGroups() []*HeaderGroup[T] {
	return buildHeaderGroups(t.columns, t.leaves)
}

// Row is one record of the data collection.
type Row[T any] struct {
	ID       string
	Index    int
	Original T

	cells []*Cell[T]
}

// VisibleCells returns one cell per leaf column.
func (r *Row[T]) VisibleCells() []*Cell[T] {
	return r.cells
}

// Cell binds a record to a leaf column.
type Cell[T any] struct {
	ID     string
	Row    *Row[T]
	Column *Column[T]
}

func (c *Cell[T]) Value() any {
	return c.Column.accessor(c.Row.Original)
}

// String formats the cell value with the column's cell rule.
func (c *Cell[T]) String() string {
	return c.Column.Format(c.Value())
}

// Rows builds the row model from the current data collection.
func (t *Table[T]) Rows() []*Row[T] {
	rows := make([]*Row[T], len(t.data))
	for i, record := range t.data {
		row := &Row[T]{ID: strconv.Itoa(i), Index: i, Original: record}
		row.cells = make([]*Cell[T], len(t.leaves))
		for j, col := range t.leaves {
			row.cells[j] = &Cell[T]{ID: row.ID + "_" + col.ID, Row: row, Column: col}
		}
		rows[i] = row
	}
	return rows
}
