package glimpse

// Event is a platform neutral window or input event. The concrete types
// below form a closed set; consumers dispatch with a type switch.
type Event interface {
	isEvent()
}

// Resized reports a new client area size in pixels.
type Resized struct {
	Width, Height int
}

// Moved reports a new client area origin in screen coordinates.
type Moved struct {
	X, Y int
}

type FocusGained struct{}

type FocusLost struct{}

// CloseRequested is emitted when the user asks to close the window,
// e.g. by clicking the close button.
type CloseRequested struct{}

type KeyPressed struct {
	Key Key

	// Native is the untranslated code reported by the windowing layer.
	Native int
}

type KeyReleased struct {
	Key    Key
	Native int
}

// TextInput carries one decoded character of text input. Characters outside
// the basic multilingual plane are never emitted.
type TextInput struct {
	Rune rune
}

// MouseMoved reports the cursor position in client coordinates.
type MouseMoved struct {
	X, Y float32
}

type MouseButtonDown struct {
	Button MouseButton
}

type MouseButtonUp struct {
	Button MouseButton
}

// MouseWheel carries scroll deltas already scaled to wheel units, where one
// notch of a classic mouse wheel equals WheelDelta.
type MouseWheel struct {
	DeltaX, DeltaY float64
}

type TouchPhase uint8

const (
	TouchPressed TouchPhase = iota
	TouchMoved
	TouchReleased
	TouchCancelled
)

type Touch struct {
	ID    int64
	Phase TouchPhase
	X, Y  float32
}

// ControllerAdded and ControllerRemoved report joystick or gamepad hot-plug.
type ControllerAdded struct {
	ID   int
	Name string
}

type ControllerRemoved struct {
	ID int
}

// DisplayOrientation follows the values of the XNA enumeration of the same
// name. Desktop windows always report OrientationDefault.
type DisplayOrientation uint8

const (
	OrientationDefault        DisplayOrientation = 0
	OrientationLandscapeLeft  DisplayOrientation = 1
	OrientationLandscapeRight DisplayOrientation = 2
	OrientationPortrait       DisplayOrientation = 4
	OrientationPortraitDown   DisplayOrientation = 8
)

// Rotated reports a new orientation of the display.
type Rotated struct {
	Orientation DisplayOrientation
}

func (Resized) isEvent()           {}
func (Moved) isEvent()             {}
func (FocusGained) isEvent()       {}
func (FocusLost) isEvent()         {}
func (CloseRequested) isEvent()    {}
func (KeyPressed) isEvent()        {}
func (KeyReleased) isEvent()       {}
func (TextInput) isEvent()         {}
func (MouseMoved) isEvent()        {}
func (MouseButtonDown) isEvent()   {}
func (MouseButtonUp) isEvent()     {}
func (MouseWheel) isEvent()        {}
func (Touch) isEvent()             {}
func (ControllerAdded) isEvent()   {}
func (ControllerRemoved) isEvent() {}
func (Rotated) isEvent()           {}

// textEvents appends a TextInput event for every rune in runes.
func textEvents(dst []Event, runes []rune) []Event {
	for _, r := range runes {
		dst = append(dst, TextInput{Rune: r})
	}

	return dst
}
