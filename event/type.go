package event

// EventType represents the type of game event
type EventType int

const (
	// EventInspectorToggle shows or hides the world inspector
	// Trigger: backquote key | Consumer: ControlSystem | Payload: nil
	EventInspectorToggle EventType = iota

	// EventPauseToggle switches between InGame and Paused
	// Trigger: P key | Consumer: ControlSystem | Payload: nil
	EventPauseToggle

	// EventMuteToggle mutes or unmutes ambient audio
	// Trigger: M key | Consumer: ControlSystem | Payload: nil
	EventMuteToggle

	// EventQuitRequest asks the backend to close the window
	// Trigger: Escape in debug mode, window close | Consumer: ControlSystem | Payload: nil
	EventQuitRequest

	// EventCloudRecycled reports a cloud wrapped from the right edge to the left
	// Trigger: CloudSpawnSystem | Consumer: StatusSystem | Payload: *CloudRecycledPayload
	EventCloudRecycled

	// EventAssetReloaded reports a hot-reloaded image
	// Trigger: asset watcher | Consumer: StatusSystem | Payload: *AssetReloadedPayload
	EventAssetReloaded

	// EventStateChanged reports an AppState transition
	// Trigger: ControlSystem | Consumer: audio bridge | Payload: *StateChangedPayload
	EventStateChanged
)

var eventNames = map[EventType]string{
	EventInspectorToggle: "InspectorToggle",
	EventPauseToggle:     "PauseToggle",
	EventMuteToggle:      "MuteToggle",
	EventQuitRequest:     "QuitRequest",
	EventCloudRecycled:   "CloudRecycled",
	EventAssetReloaded:   "AssetReloaded",
	EventStateChanged:    "StateChanged",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
