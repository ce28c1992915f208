package app

import (
	"github.com/jdlms/flexheader/internal/types"
	"github.com/jdlms/flexheader/internal/ui"
	log "github.com/sirupsen/logrus"

	"github.com/gdamore/tcell/v2"
)

// SetupKeyBindings configures keyboard input handling
func SetupKeyBindings(state *types.AppState, updateContentFunc func(*types.AppState, string)) {
	state.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter:
			if state.App.GetFocus() != state.Menu {
				return event
			}
			// Get current selection and update content
			currentItem := state.Menu.GetCurrentItem()
			menuItems := ui.MenuItems()
			if currentItem < len(menuItems) {
				log.Printf("Enter pressed - selecting %s", menuItems[currentItem])
				updateContentFunc(state, menuItems[currentItem])
				state.App.SetFocus(ContentFocus(state))
			}
			return nil
		case tcell.KeyTab:
			state.App.SetFocus(state.Menu)
			return nil
		case tcell.KeyRune:
			return handleRune(state, event)
		}
		return event
	})
}

func handleRune(state *types.AppState, event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case 'q':
		state.App.Stop()
		return nil
	case 'r':
		Reload(state)
		return nil
	case 'j':
		// Move down in menu
		if state.App.GetFocus() == state.Menu {
			currentIndex := state.Menu.GetCurrentItem()
			itemCount := state.Menu.GetItemCount()
			if currentIndex < itemCount-1 {
				state.Menu.SetCurrentItem(currentIndex + 1)
			}
			return nil
		}
	case 'k':
		// Move up in menu
		if state.App.GetFocus() == state.Menu {
			currentIndex := state.Menu.GetCurrentItem()
			if currentIndex > 0 {
				state.Menu.SetCurrentItem(currentIndex - 1)
			}
			return nil
		}
	}
	return event
}
