package app

import (
	"fmt"

	"github.com/jdlms/flexheader/internal/render"
	"github.com/jdlms/flexheader/internal/types"
	"github.com/jdlms/flexheader/internal/ui"
	log "github.com/sirupsen/logrus"

	"github.com/rivo/tview"
)

// CreateApp initializes the UI around the table held by initial
func CreateApp(initial *types.AppState) *types.AppState {
	ui.SetupTheme(initial.Config.Theme)

	state := &types.AppState{
		Table:  initial.Table,
		Config: initial.Config,
	}

	// Create components
	state.Header = ui.CreateHeader(state.Config.Title)
	state.Footer = ui.CreateFooter()
	state.Menu = ui.CreateMenu()
	state.GridView = ui.CreateGridView()
	state.DetailTable = ui.CreateDetailTable()
	state.Pages = ui.CreatePages(state.GridView, state.DetailTable)

	// Setup grid
	state.Grid = ui.SetupGrid(state)

	// Create application
	state.App = tview.NewApplication().
		SetRoot(state.Grid, true).
		SetFocus(state.Menu)

	// Setup key bindings
	SetupKeyBindings(state, UpdateContent)

	UpdateContent(state, ui.SectionTable)
	return state
}

// UpdateContent derives the section from the current table model and shows it
func UpdateContent(state *types.AppState, section string) {
	log.WithField("section", section).Debug("updating content")
	state.Section = section

	switch section {
	case ui.SectionTable:
		opts := render.Options{UppercaseHeaders: state.Config.UppercaseHeaders}
		ui.PopulateGrid(state.GridView, fmt.Sprintf("Table (%d records)", len(state.Table.Data())), ui.GridText(state.Table, opts))
		state.Pages.SwitchToPage(ui.PageGrid)
	case ui.SectionHeaders:
		ui.PopulateTable(state.DetailTable, ui.HeaderData(state.Table))
		state.Pages.SwitchToPage(ui.PageDetail)
	case ui.SectionColumns:
		ui.PopulateTable(state.DetailTable, ui.ColumnData(state.Table))
		state.Pages.SwitchToPage(ui.PageDetail)
	default:
		log.WithField("section", section).Warn("unknown section")
		return
	}

	state.Header.SetText(fmt.Sprintf("[green]%s - %s[-]", tview.Escape(state.Config.Title), section))
}

// ContentFocus returns the primitive that receives focus when entering the
// current section
func ContentFocus(state *types.AppState) tview.Primitive {
	if state.Section == ui.SectionTable {
		return state.GridView
	}
	return state.DetailTable
}
