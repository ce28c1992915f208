// state.go - data collection management
package app

import (
	"fmt"

	"github.com/jdlms/flexheader/internal/sample"
	"github.com/jdlms/flexheader/internal/types"
	log "github.com/sirupsen/logrus"

	"github.com/rivo/tview"
)

// SetRecords replaces the data collection and redraws the current section.
// The header geometry only depends on the column tree, so only the body
// changes.
func SetRecords(state *types.AppState, records []types.Person) {
	state.Table.SetData(records)
	log.WithField("records", len(records)).Info("data collection replaced")

	section := state.Section
	if section == "" {
		return
	}
	UpdateContent(state, section)
}

// Reload replaces the data collection with a fresh copy of the sample
// records
func Reload(state *types.AppState) {
	SetRecords(state, sample.Records())
	state.Header.SetText(fmt.Sprintf("[green]%s - %s[-] (reloaded %d records)",
		tview.Escape(state.Config.Title), state.Section, len(state.Table.Data())))
}
