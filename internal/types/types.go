// Package types: internal types
package types

import (
	"github.com/jdlms/flexheader/internal/config"
	"github.com/jdlms/flexheader/internal/table"
	"github.com/rivo/tview"
)

// Person is one record of the sample dataset
type Person struct {
	Tag       string
	FirstName string
	LastName  string
	Age       int
	Visits    int
	Status    string
	Progress  int
}

// AppState holds the main application state
type AppState struct {
	App         *tview.Application
	Grid        *tview.Grid
	Menu        *tview.List
	Pages       *tview.Pages
	GridView    *tview.TextView
	DetailTable *tview.Table
	Header      *tview.TextView
	Footer      *tview.TextView
	Table       *table.Table[Person]
	Config      config.Config
	Section     string
}

// TableData represents formatted rows for a detail table
type TableData struct {
	Title string
	Rows  [][]string
}
