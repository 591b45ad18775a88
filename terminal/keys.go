package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/poly/event"
)

// keyEvent maps a key press to the event it requests
// Ctrl-C always quits since a terminal has no close button
func keyEvent(ev *tcell.EventKey, debug bool) (event.EventType, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return event.EventQuitRequest, true
	case tcell.KeyEscape:
		if debug {
			return event.EventQuitRequest, true
		}
		return 0, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case '`':
			return event.EventInspectorToggle, true
		case 'p', 'P':
			return event.EventPauseToggle, true
		case 'm', 'M':
			return event.EventMuteToggle, true
		}
	}
	return 0, false
}
