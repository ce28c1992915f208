// Package table derives header groups, rows and cells from a static column
// definition tree and a slice of records.
package table

import (
	"errors"
	"fmt"
)

var (
	ErrNoColumns       = errors.New("no columns defined")
	ErrEmptyID         = errors.New("column has no id")
	ErrDuplicateID     = errors.New("duplicate column id")
	ErrMissingAccessor = errors.New("leaf column has no accessor")
	ErrGroupAccessor   = errors.New("group column has an accessor")
)

// Meta carries optional display hints attached to a column definition.
type Meta struct {
	// RowSpan is the vertical span the author expects the column's header
	// cell to take. Zero means no expectation.
	RowSpan int
}

// ColumnDef is one node of the static column definition tree. A node with
// child columns is a group; a node without is a leaf bound to an accessor.
type ColumnDef[T any] struct {
	ID       string
	Header   string
	Accessor func(T) any
	Cell     func(any) string
	Columns  []ColumnDef[T]
	Meta     Meta
}

// Accessor defines a leaf column reading one value out of a record.
func Accessor[T any](id, header string, fn func(T) any) ColumnDef[T] {
	return ColumnDef[T]{ID: id, Header: header, Accessor: fn}
}

// Group defines a column that only labels its children.
func Group[T any](id, header string, cols ...ColumnDef[T]) ColumnDef[T] {
	return ColumnDef[T]{ID: id, Header: header, Columns: cols}
}

// WithRowSpan returns a copy of the definition carrying a row span hint.
func (d ColumnDef[T]) WithRowSpan(n int) ColumnDef[T] {
	d.Meta.RowSpan = n
	return d
}

// WithCell returns a copy of the definition with a custom cell formatter.
func (d ColumnDef[T]) WithCell(fn func(any) string) ColumnDef[T] {
	d.Cell = fn
	return d
}

// Column is a resolved node of the definition tree.
type Column[T any] struct {
	ID      string
	Depth   int
	Parent  *Column[T]
	Columns []*Column[T]
	Meta    Meta

	header   string
	accessor func(T) any
	cell     func(any) string
}

func (c *Column[T]) IsLeaf() bool {
	return len(c.Columns) == 0
}

// Label is the header text of the column, falling back to its id.
func (c *Column[T]) Label() string {
	if c.header != "" {
		return c.header
	}
	return c.ID
}

// Leaves returns the leaf columns under c in left to right order. A leaf
// returns itself.
func (c *Column[T]) Leaves() []*Column[T] {
	if c.IsLeaf() {
		return []*Column[T]{c}
	}
	var leaves []*Column[T]
	for _, child := range c.Columns {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// Format renders a value read from this column.
func (c *Column[T]) Format(v any) string {
	if c.cell != nil {
		return c.cell(v)
	}
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func resolveColumns[T any](defs []ColumnDef[T]) ([]*Column[T], error) {
	if len(defs) == 0 {
		return nil, ErrNoColumns
	}
	seen := make(map[string]bool)
	return resolveLevel(defs, nil, 0, seen)
}

func resolveLevel[T any](defs []ColumnDef[T], parent *Column[T], depth int, seen map[string]bool) ([]*Column[T], error) {
	cols := make([]*Column[T], 0, len(defs))
	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("column %q under %s: %w", def.Header, parentID(parent), ErrEmptyID)
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("column %q: %w", def.ID, ErrDuplicateID)
		}
		seen[def.ID] = true

		col := &Column[T]{
			ID:       def.ID,
			Depth:    depth,
			Parent:   parent,
			Meta:     def.Meta,
			header:   def.Header,
			accessor: def.Accessor,
			cell:     def.Cell,
		}
		if len(def.Columns) == 0 {
			if def.Accessor == nil {
				return nil, fmt.Errorf("column %q: %w", def.ID, ErrMissingAccessor)
			}
		} else {
			if def.Accessor != nil {
				return nil, fmt.Errorf("column %q: %w", def.ID, ErrGroupAccessor)
			}
			children, err := resolveLevel(def.Columns, col, depth+1, seen)
			if err != nil {
				return nil, err
			}
			col.Columns = children
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func parentID[T any](c *Column[T]) string {
	if c == nil {
		return "root"
	}
	return fmt.Sprintf("%q", c.ID)
}
