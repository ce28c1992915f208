package app

import (
	"testing"

	"github.com/jdlms/flexheader/internal/config"
	"github.com/jdlms/flexheader/internal/sample"
	"github.com/jdlms/flexheader/internal/types"
	"github.com/jdlms/flexheader/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/gdamore/tcell/v2"
)

func newState(t *testing.T) *types.AppState {
	t.Helper()
	tbl, err := sample.New()
	require.NoError(t, err)
	return CreateApp(&types.AppState{Table: tbl, Config: config.Default()})
}

func press(state *types.AppState, key tcell.Key, r rune) *tcell.EventKey {
	return state.App.GetInputCapture()(tcell.NewEventKey(key, r, tcell.ModNone))
}

func TestCreateAppShowsTable(t *testing.T) {
	state := newState(t)

	require.Equal(t, ui.SectionTable, state.Section)
	name, _ := state.Pages.GetFrontPage()
	require.Equal(t, ui.PageGrid, name)
	require.Equal(t, "Table (3 records)", state.GridView.GetTitle())
	require.Contains(t, state.GridView.GetText(true), "HOGEHOFE")
	require.Contains(t, state.GridView.GetText(true), "tanner")
	require.True(t, state.App.GetFocus() == state.Menu)
}

func TestUpdateContentSections(t *testing.T) {
	state := newState(t)

	UpdateContent(state, ui.SectionHeaders)
	name, _ := state.Pages.GetFrontPage()
	require.Equal(t, ui.PageDetail, name)
	require.Equal(t, len(ui.HeaderData(state.Table).Rows), state.DetailTable.GetRowCount())

	UpdateContent(state, ui.SectionColumns)
	require.Equal(t, "Columns", state.DetailTable.GetTitle())
	require.Equal(t, 12, state.DetailTable.GetRowCount())

	UpdateContent(state, "Nope")
	require.Equal(t, "Nope", state.Section)
	require.Equal(t, "Columns", state.DetailTable.GetTitle())
}

func TestSetRecordsRedrawsBodyOnly(t *testing.T) {
	hook := test.NewGlobal()
	logrus.SetLevel(logrus.InfoLevel)
	state := newState(t)
	before := state.GridView.GetText(true)

	SetRecords(state, sample.Records()[:1])
	after := state.GridView.GetText(true)

	require.Equal(t, "Table (1 records)", state.GridView.GetTitle())
	require.Contains(t, after, "tanner")
	require.NotContains(t, after, "Complicated")
	require.Contains(t, before, "Complicated")
	require.Equal(t, "data collection replaced", hook.LastEntry().Message)
	require.Equal(t, 1, hook.LastEntry().Data["records"])
}

func TestKeyBindings(t *testing.T) {
	state := newState(t)

	require.Nil(t, press(state, tcell.KeyRune, 'j'))
	require.Equal(t, 1, state.Menu.GetCurrentItem())
	require.Nil(t, press(state, tcell.KeyRune, 'k'))
	require.Equal(t, 0, state.Menu.GetCurrentItem())
	require.Nil(t, press(state, tcell.KeyRune, 'k'))
	require.Equal(t, 0, state.Menu.GetCurrentItem())

	press(state, tcell.KeyRune, 'j')
	require.Nil(t, press(state, tcell.KeyEnter, 0))
	require.Equal(t, ui.SectionHeaders, state.Section)
	require.True(t, state.App.GetFocus() == state.DetailTable)

	// Outside the menu j and Enter go to the focused primitive.
	require.NotNil(t, press(state, tcell.KeyRune, 'j'))
	require.NotNil(t, press(state, tcell.KeyEnter, 0))

	require.Nil(t, press(state, tcell.KeyTab, 0))
	require.True(t, state.App.GetFocus() == state.Menu)

	SetRecords(state, nil)
	require.Nil(t, press(state, tcell.KeyRune, 'r'))
	require.Len(t, state.Table.Data(), 3)
}
