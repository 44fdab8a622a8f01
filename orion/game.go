package orion

import "time"

// Game is implemented by the application. Initialize is called once before
// the first Update, after the graphics device was created.
type Game interface {
	Initialize(loop *Loop) error
	Update(time GameTime) error
	Draw(time GameTime) error
}

// ContentLoader is an optional interface. LoadContent runs right after
// Initialize.
type ContentLoader interface {
	LoadContent() error
}

// UpdateGate is an optional interface. Returning false skips the next
// Update call without an error.
type UpdateGate interface {
	BeforeUpdate(time GameTime) bool
}

// DrawGate is an optional interface. Returning false skips the next Draw
// call without an error.
type DrawGate interface {
	BeforeDraw(time GameTime) bool
}

// ExitHandler is an optional interface. OnExiting runs once when the loop
// starts to shut down.
type ExitHandler interface {
	OnExiting()
}

// GameTime is passed to Update and Draw.
type GameTime struct {
	// TotalGameTime is the simulated time since the loop started.
	TotalGameTime time.Duration

	// ElapsedGameTime is the simulated time since the last call.
	ElapsedGameTime time.Duration

	// IsRunningSlowly is set when the fixed time step loop had to run more
	// than one Update in the current frame to catch up.
	IsRunningSlowly bool
}
