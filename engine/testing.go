package engine

import "time"

// NewTestGameContext creates a GameContext on a mock clock with a 1280x720 viewport
// Advance the returned provider between Tick calls to control delta time
func NewTestGameContext() (*GameContext, *MockTimeProvider) {
	provider := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := NewGameContext(provider)
	ctx.SetViewport(1280, 720)
	return ctx, provider
}
