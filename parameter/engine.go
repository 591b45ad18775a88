package parameter

import "time"

const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// System priorities, lower runs first
const (
	PriorityControl    = 10
	PriorityCloudMove  = 100
	PriorityCloudSpawn = 110
	PriorityStatus     = 900
	PriorityAudio      = 910
)

// Asset watcher
const (
	AssetWatchDelay = 1 * time.Second
)

// Audio
const (
	AudioSampleRate   = 44100
	AudioBufferPeriod = 100 * time.Millisecond
	AudioMasterVolume = 0.4
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "poly.log"
	MaxLogSize  = 10 * 1024 * 1024
)
