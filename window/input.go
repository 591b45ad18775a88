package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/poly/event"
)

// binding maps a key press to the event it requests
type binding struct {
	key       ebiten.Key
	event     event.EventType
	debugOnly bool
}

var bindings = []binding{
	{key: ebiten.KeyBackquote, event: event.EventInspectorToggle},
	{key: ebiten.KeyP, event: event.EventPauseToggle},
	{key: ebiten.KeyM, event: event.EventMuteToggle},
	{key: ebiten.KeyEscape, event: event.EventQuitRequest, debugOnly: true},
}

// pressedEvents returns the events requested by keys pressed this tick
func pressedEvents(justPressed func(ebiten.Key) bool, debug bool) []event.EventType {
	var events []event.EventType
	for _, b := range bindings {
		if b.debugOnly && !debug {
			continue
		}
		if justPressed(b.key) {
			events = append(events, b.event)
		}
	}
	return events
}
