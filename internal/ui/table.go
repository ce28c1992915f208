package ui

import (
	"bytes"

	"github.com/jdlms/flexheader/internal/render"
	"github.com/jdlms/flexheader/internal/table"
	"github.com/jdlms/flexheader/internal/types"
	log "github.com/sirupsen/logrus"

	"github.com/rivo/tview"
)

// PopulateTable fills the detail table with report rows
func PopulateTable(detail *tview.Table, data types.TableData) {
	log.Printf("Populating table %q with %d rows", data.Title, len(data.Rows))

	// Ensure we have a valid table
	if detail == nil {
		log.Errorf("detail table is nil")
		return
	}

	detail.Clear()
	detail.SetTitle(data.Title)

	if len(data.Rows) == 0 {
		detail.SetCell(0, 0, tview.NewTableCell("No data available").
			SetAlign(tview.AlignCenter).
			SetSelectable(false))
		return
	}

	// Header row
	for col, cell := range data.Rows[0] {
		detail.SetCell(0, col, tview.NewTableCell("[yellow::b]"+tview.Escape(cell)+"[-::-]").
			SetAlign(tview.AlignCenter).
			SetSelectable(false))
	}

	// Data rows
	for row := 1; row < len(data.Rows); row++ {
		if len(data.Rows[row]) == 0 {
			log.Warnf("Row %d is empty, skipping", row)
			continue
		}

		for col, cell := range data.Rows[row] {
			color := "[white]"
			switch cell {
			case "mismatch":
				color = "[red]"
			case "ok":
				color = "[green]"
			case "-":
				color = "[gray]"
			}

			detail.SetCell(row, col, tview.NewTableCell(color+tview.Escape(cell)+"[-]").
				SetAlign(tview.AlignLeft).
				SetSelectable(true))
		}
	}
}

// PopulateGrid shows the rendered table grid in view
func PopulateGrid(view *tview.TextView, title, grid string) {
	view.Clear()
	view.SetTitle(title)
	view.SetText(grid)
	view.ScrollToBeginning()
}

// GridText renders the table as box-drawn text
func GridText(t *table.Table[types.Person], opts render.Options) string {
	var buf bytes.Buffer
	if err := render.Text(&buf, t, opts); err != nil {
		log.WithError(err).Error("rendering table grid")
		return err.Error()
	}
	return buf.String()
}

// HeaderData lists every header slot and what the header filter made of it
func HeaderData(t *table.Table[types.Person]) types.TableData {
	return types.TableData{
		Title: "Header Cells",
		Rows:  render.HeaderReport(t),
	}
}

// ColumnData lists the column tree with row span hints
func ColumnData(t *table.Table[types.Person]) types.TableData {
	return types.TableData{
		Title: "Columns",
		Rows:  render.ColumnReport(t),
	}
}
