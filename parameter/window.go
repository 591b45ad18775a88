package parameter

import "time"

// Monitor size the window is derived from
const (
	MonitorWidth  = 2560
	MonitorHeight = 1440

	// WindowDivisor shrinks the monitor size to the window size
	WindowDivisor = 2
)

const (
	WindowTitle = "Poly"

	// ClearColorHex is the sky color behind every sprite
	ClearColorHex = "5fcde4"
)

// Camera scaling: at least this many world units stay visible on each axis
const (
	CameraMinWidth  = 160.0
	CameraMinHeight = 90.0
)

// TicksPerSecond is the fixed update rate of both backends
const TicksPerSecond = 60

// FrameUpdateInterval is the terminal backend frame period
const FrameUpdateInterval = time.Second / TicksPerSecond

// MaxFrameDelta caps a single tick's delta so a stalled frame cannot teleport sprites
const MaxFrameDelta = 250 * time.Millisecond
