package orion

import (
	"github.com/oliverbestmann/xenon/glimpse"
	"github.com/oliverbestmann/xenon/glm"
)

type KeyCode = glimpse.Key
type MouseButton = glimpse.MouseButton

// Input holds the keyboard and mouse state of the current and the previous
// update, so that game code can ask for edges.
type Input struct {
	ctx *glimpse.InputContext

	keys, previousKeys   glimpse.KeyboardState
	mouse, previousMouse glimpse.MouseState
}

func newInput(ctx *glimpse.InputContext) *Input {
	return &Input{ctx: ctx}
}

// update takes a new snapshot. It runs once before every Update.
func (in *Input) update() {
	in.previousKeys = in.keys
	in.previousMouse = in.mouse

	in.keys = in.ctx.KeyboardState()
	in.mouse = in.ctx.MouseState()
}

func (in *Input) Keyboard() glimpse.KeyboardState {
	return in.keys
}

func (in *Input) Mouse() glimpse.MouseState {
	return in.mouse
}

func (in *Input) Touches() []glimpse.TouchLocation {
	return in.ctx.TouchState()
}

func (in *Input) MousePosition() glm.Vec2f {
	return in.mouse.Position()
}

func (in *Input) IsKeyPressed(key KeyCode) bool {
	return in.keys.IsKeyDown(key)
}

func (in *Input) IsKeyJustPressed(key KeyCode) bool {
	return in.keys.IsKeyDown(key) && !in.previousKeys.IsKeyDown(key)
}

func (in *Input) IsKeyJustReleased(key KeyCode) bool {
	return !in.keys.IsKeyDown(key) && in.previousKeys.IsKeyDown(key)
}

func (in *Input) IsMouseButtonPressed(button MouseButton) bool {
	return in.mouse.Button(button) == glimpse.Pressed
}

func (in *Input) IsMouseButtonJustPressed(button MouseButton) bool {
	return in.mouse.Button(button) == glimpse.Pressed && in.previousMouse.Button(button) != glimpse.Pressed
}

func (in *Input) IsMouseButtonJustReleased(button MouseButton) bool {
	return in.mouse.Button(button) != glimpse.Pressed && in.previousMouse.Button(button) == glimpse.Pressed
}

// ScrollDelta returns the wheel movement since the previous update in wheel
// units.
func (in *Input) ScrollDelta() (horizontal, vertical int) {
	horizontal = in.mouse.HorizontalScrollWheelValue - in.previousMouse.HorizontalScrollWheelValue
	vertical = in.mouse.ScrollWheelValue - in.previousMouse.ScrollWheelValue
	return
}
