package core

import "io"

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and to find their YAML config.
type RuntimeConfig struct {
	ScreenW    int       // Screen width in characters
	ScreenH    int       // Screen height in characters
	TickRate   int       // Frames per second (default 60)
	ConfigPath string    // Custom scene config path, empty for the search order
	Diag       io.Writer // Diagnostic output stream (chat lines, history dumps)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Diag:     io.Discard,
	}
}

// SceneState represents the current state of a scene.
// Returned by Scene.State() to communicate status to the platform.
type SceneState struct {
	Mood    string // Current NPC mood name
	Talking bool   // Whether dialogue mode is active
	Lines   int    // Number of committed dialogue lines
	Quit    bool   // Whether the input source asked to quit
}

// Exchange is one committed dialogue line together with the NPC's answer.
type Exchange struct {
	Line  string
	Mood  string
	Reply string
}

// StepResult is returned by Scene.Update() after each frame.
// Contains the updated scene state and the exchanges committed this frame.
type StepResult struct {
	State     SceneState
	Exchanges []Exchange
}
