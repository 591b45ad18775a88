package parameter

// HUD layout
const (
	HUDWidthPercent  = 100.0
	HUDHeightPercent = 10.0
	HUDPaddingPx     = 10.0
	HUDFontSize      = 32.0
	HUDText          = "Money!"
)

// HUD panel color, non-premultiplied
const (
	HUDPanelR = 0.0
	HUDPanelG = 0.0
	HUDPanelB = 0.0
	HUDPanelA = 0.5
)

// Inspector overlay
const (
	// InspectorMaxEntities caps the listed entities so the overlay fits a small window
	InspectorMaxEntities = 24
)
