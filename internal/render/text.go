// Package render writes a table's header grid and body as box-drawn text,
// HTML and diagnostic listings.
package render

import (
	"io"
	"sort"
	"strings"

	"github.com/jdlms/flexheader/internal/table"
	"github.com/mattn/go-runewidth"
)

// Options controls how labels are shown.
type Options struct {
	UppercaseHeaders bool
}

// cellOverhead is the border plus one space of padding on each side.
const cellOverhead = 3

// box is a cell on the combined header and body grid.
type box struct {
	row, col         int
	rowSpan, colSpan int
	text             string
}

func headerLabel[T any](c table.HeaderCell[T], opts Options) string {
	label := c.Label()
	if opts.UppercaseHeaders {
		label = strings.ToUpper(label)
	}
	return label
}

func layoutBoxes[T any](t *table.Table[T], opts Options) (boxes []box, rows, cols int) {
	headerRows := t.HeaderDepth()
	for _, c := range t.Layout() {
		boxes = append(boxes, box{
			row:     c.Row,
			col:     c.Col,
			rowSpan: c.RowSpan,
			colSpan: c.ColSpan,
			text:    headerLabel(c, opts),
		})
	}

	body := t.Rows()
	for i, row := range body {
		for j, cell := range row.VisibleCells() {
			boxes = append(boxes, box{row: headerRows + i, col: j, rowSpan: 1, colSpan: 1, text: cell.String()})
		}
	}
	return boxes, headerRows + len(body), len(t.LeafColumns())
}

// Text writes t as a box-drawn grid. Merged header cells are drawn as one
// rectangle with the label centred vertically.
func Text[T any](w io.Writer, t *table.Table[T], opts Options) error {
	boxes, rows, cols := layoutBoxes(t, opts)
	_, err := io.WriteString(w, drawGrid(boxes, rows, cols))
	return err
}

func columnWidths(boxes []box, cols int) []int {
	ordered := make([]box, len(boxes))
	copy(ordered, boxes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].colSpan < ordered[j].colSpan
	})

	widths := make([]int, cols)
	for _, b := range ordered {
		have := cellOverhead * (b.colSpan - 1)
		for _, w := range widths[b.col : b.col+b.colSpan] {
			have += w
		}
		if need := runewidth.StringWidth(b.text); need > have {
			widths[b.col+b.colSpan-1] += need - have
		}
	}
	return widths
}

func drawGrid(boxes []box, rows, cols int) string {
	for i := range boxes {
		boxes[i].text = strings.ReplaceAll(boxes[i].text, "\n", " ")
	}
	widths := columnWidths(boxes, cols)

	xs := make([]int, cols+1)
	for i, w := range widths {
		xs[i+1] = xs[i] + w + cellOverhead
	}
	width, height := xs[cols]+1, 2*rows+1

	c := newCanvas(width, height)
	for _, b := range boxes {
		x0, x1 := xs[b.col], xs[b.col+b.colSpan]
		y0, y1 := 2*b.row, 2*(b.row+b.rowSpan)
		c.rect(x0, y0, x1, y1)
		c.text(x0+2, y0+b.rowSpan, b.text)
	}
	return c.String()
}

// canvas is a character grid with box edges tracked separately from text,
// so junctions can be picked once every edge is known.
type canvas struct {
	width, height int
	runes         [][]rune
	// hseg[y][x] joins (x, y) to (x+1, y); vseg[y][x] joins (x, y) to (x, y+1).
	hseg, vseg [][]bool
}

// wide marks the second column taken by a double-width rune.
const wide rune = -1

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.runes = make([][]rune, height)
	c.hseg = make([][]bool, height)
	c.vseg = make([][]bool, height)
	for y := 0; y < height; y++ {
		c.runes[y] = []rune(strings.Repeat(" ", width))
		c.hseg[y] = make([]bool, width)
		c.vseg[y] = make([]bool, width)
	}
	return c
}

func (c *canvas) rect(x0, y0, x1, y1 int) {
	for x := x0; x < x1; x++ {
		c.hseg[y0][x] = true
		c.hseg[y1][x] = true
	}
	for y := y0; y < y1; y++ {
		c.vseg[y][x0] = true
		c.vseg[y][x1] = true
	}
}

func (c *canvas) text(x, y int, s string) {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 || x+rw > c.width {
			continue
		}
		c.runes[y][x] = r
		if rw == 2 {
			c.runes[y][x+1] = wide
		}
		x += rw
	}
}

func (c *canvas) junction(x, y int) rune {
	left := x > 0 && c.hseg[y][x-1]
	right := c.hseg[y][x]
	up := y > 0 && c.vseg[y-1][x]
	down := c.vseg[y][x]

	switch {
	case left && right && up && down:
		return '┼'
	case left && right && down:
		return '┬'
	case left && right && up:
		return '┴'
	case up && down && right:
		return '├'
	case up && down && left:
		return '┤'
	case right && down:
		return '┌'
	case left && down:
		return '┐'
	case right && up:
		return '└'
	case left && up:
		return '┘'
	case left || right:
		return '─'
	case up || down:
		return '│'
	}
	return 0
}

func (c *canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		for x := 0; x < c.width; x++ {
			if j := c.junction(x, y); j != 0 {
				line.WriteRune(j)
				continue
			}
			if r := c.runes[y][x]; r != wide {
				line.WriteRune(r)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
