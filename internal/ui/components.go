package ui

import (
	"github.com/rivo/tview"
)

// Menu sections
const (
	SectionTable   = "Table"
	SectionHeaders = "Header Cells"
	SectionColumns = "Columns"
)

// Page names
const (
	PageGrid   = "grid"
	PageDetail = "detail"
)

// MenuItems returns the menu sections in display order
func MenuItems() []string {
	return []string{
		SectionTable,
		SectionHeaders,
		SectionColumns,
	}
}

// CreateMenu creates the main navigation menu
func CreateMenu() *tview.List {
	menu := tview.NewList()
	menu.SetBorder(true).SetTitle("▦ Flex Header")
	menu.ShowSecondaryText(false)

	for _, item := range MenuItems() {
		menu.AddItem(item, "", 0, nil)
	}

	// Note: We handle selection manually in key bindings to avoid conflicts
	// with custom j/k navigation
	return menu
}

// CreateGridView creates the view holding the rendered table grid
func CreateGridView() *tview.TextView {
	view := tview.NewTextView()
	view.SetBorder(true).SetTitle("Table")
	view.SetDynamicColors(false)
	view.SetScrollable(true).SetWrap(false)
	return view
}

// CreateDetailTable creates the table used by the diagnostic sections
func CreateDetailTable() *tview.Table {
	table := tview.NewTable()
	table.SetBorder(true).SetTitle("Details")
	table.SetSelectable(true, false) // Allow row selection but not column selection
	table.SetFixed(1, 0)             // Fix the first row as header
	return table
}

// CreatePages stacks the grid view and the detail table
func CreatePages(gridView *tview.TextView, detail *tview.Table) *tview.Pages {
	pages := tview.NewPages()
	pages.AddPage(PageGrid, gridView, true, true)
	pages.AddPage(PageDetail, detail, true, false)
	return pages
}

// CreateHeader creates the header text view
func CreateHeader(title string) *tview.TextView {
	header := tview.NewTextView()
	header.SetBorder(true)
	header.SetText(title)
	header.SetTextAlign(tview.AlignCenter)
	header.SetDynamicColors(true)
	return header
}

// CreateFooter creates the footer text view with help text
func CreateFooter() *tview.TextView {
	footer := tview.NewTextView()
	footer.SetBorder(true)
	footer.SetText("Press 'q' to quit | 'j/k' to navigate | Enter to select & enter view | Tab to return to menu | 'r' to reload data")
	footer.SetTextAlign(tview.AlignCenter)
	footer.SetDynamicColors(true)
	return footer
}
