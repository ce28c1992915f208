package table

import (
	"slices"
	"strconv"
	"strings"
)

// Header is one cell slot of the header area. Depth is its 1-based row,
// counted from the top.
type Header[T any] struct {
	ID            string
	Column        *Column[T]
	Depth         int
	Index         int
	ColSpan       int
	IsPlaceholder bool
	PlaceholderID string
	SubHeaders    []*Header[T]
}

// HeaderGroup is one row of the header area. Depth is 0-based.
type HeaderGroup[T any] struct {
	ID      string
	Depth   int
	Headers []*Header[T]
}

// LeafHeaders returns the bottom-most headers under h, left to right. A
// header without sub headers is its own leaf.
func (h *Header[T]) LeafHeaders() []*Header[T] {
	if len(h.SubHeaders) == 0 {
		return []*Header[T]{h}
	}
	var leaves []*Header[T]
	for _, sub := range h.SubHeaders {
		leaves = append(leaves, sub.LeafHeaders()...)
	}
	return leaves
}

// buildHeaderGroups lays the column tree out as rows of headers. The bottom
// row holds one header per leaf column. Each row above is built from the row
// below it: a header whose column sits exactly at that row's depth is lifted
// into its parent column's header, adjacent siblings sharing one parent.
// Every other header is carried up as a placeholder of its own column so the
// grid stays aligned under deeper sibling groups.
func buildHeaderGroups[T any](roots, leaves []*Column[T]) []*HeaderGroup[T] {
	maxDepth := headerDepth(roots, 1)

	headers := make([]*Header[T], len(leaves))
	for i, col := range leaves {
		headers[i] = &Header[T]{ID: col.ID, Column: col, Depth: maxDepth, Index: i}
	}

	var groups []*HeaderGroup[T]
	for depth := maxDepth - 1; depth >= 0; depth-- {
		groups = append(groups, &HeaderGroup[T]{
			ID:      strconv.Itoa(depth),
			Depth:   depth,
			Headers: headers,
		})
		if depth == 0 {
			break
		}
		headers = liftHeaders(headers, depth)
	}
	slices.Reverse(groups)

	for _, h := range groups[0].Headers {
		assignColSpan(h)
	}
	return groups
}

func headerDepth[T any](cols []*Column[T], depth int) int {
	deepest := depth
	for _, col := range cols {
		if col.IsLeaf() {
			continue
		}
		if d := headerDepth(col.Columns, depth+1); d > deepest {
			deepest = d
		}
	}
	return deepest
}

func liftHeaders[T any](headers []*Header[T], depth int) []*Header[T] {
	var parents []*Header[T]
	placeholders := make(map[*Column[T]]int)

	for _, h := range headers {
		col, placeholder := h.Column, true
		if h.Column.Depth == depth && h.Column.Parent != nil {
			col, placeholder = h.Column.Parent, false
		}

		if n := len(parents); n > 0 && parents[n-1].Column == col {
			parents[n-1].SubHeaders = append(parents[n-1].SubHeaders, h)
			continue
		}

		parent := &Header[T]{
			ID:            strings.Join([]string{strconv.Itoa(depth), col.ID, h.ID}, "_"),
			Column:        col,
			Depth:         depth,
			Index:         len(parents),
			IsPlaceholder: placeholder,
			SubHeaders:    []*Header[T]{h},
		}
		if placeholder {
			parent.PlaceholderID = strconv.Itoa(placeholders[col])
			placeholders[col]++
		}
		parents = append(parents, parent)
	}
	return parents
}

func assignColSpan[T any](h *Header[T]) int {
	if len(h.SubHeaders) == 0 {
		h.ColSpan = 1
		return 1
	}
	span := 0
	for _, sub := range h.SubHeaders {
		span += assignColSpan(sub)
	}
	h.ColSpan = span
	return span
}
