package glimpse

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var replayKeys = []Key{KeyA, KeyLeftShift, KeyRightShift, KeyF5}

// replayEvent decodes an integer into a key event on one of replayKeys.
// Even values press, odd values release.
func replayEvent(value int) Event {
	key := replayKeys[value/2]
	return keyEvent(key, 0, value%2 == 0)
}

func TestKeyReplayProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("pressed keys are the keys whose last event was a press", prop.ForAll(
		func(values []int) bool {
			input := NewInputContext(InputOptions{})

			lastDown := map[Key]bool{}
			for _, value := range values {
				ev := replayEvent(value)
				input.Apply(ev)

				_, down := ev.(KeyPressed)
				lastDown[replayKeys[value/2]] = down
			}

			var expected []Key
			for key, down := range lastDown {
				if down {
					expected = append(expected, key)
				}
			}

			slices.Sort(expected)

			return slices.Equal(expected, input.KeyboardState().PressedKeys())
		},
		gen.SliceOf(gen.IntRange(0, 2*len(replayKeys)-1)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestKeyReplayRepeatedPress(t *testing.T) {
	input := NewInputContext(InputOptions{})

	input.Apply(KeyPressed{Key: KeyA})
	input.Apply(KeyPressed{Key: KeyA})
	input.Apply(KeyReleased{Key: KeyA})

	if input.KeyboardState().IsKeyDown(KeyA) {
		t.Fatalf("expected A to be released after down, down, up")
	}

	// releasing a key that is not down does nothing
	input.Apply(KeyReleased{Key: KeyB})
	if keys := input.KeyboardState().PressedKeys(); len(keys) != 0 {
		t.Fatalf("expected no pressed keys, got %v", keys)
	}
}

func TestKeyboardStateIgnoresNone(t *testing.T) {
	input := NewInputContext(InputOptions{})

	input.Apply(KeyPressed{Key: KeyNone, Native: 1234})
	input.Apply(KeyPressed{Key: Key(7)})

	if keys := input.KeyboardState().PressedKeys(); len(keys) != 0 {
		t.Fatalf("expected no pressed keys, got %v", keys)
	}
}

func TestKeyboardStateHandedModifiers(t *testing.T) {
	input := NewInputContext(InputOptions{})

	input.Apply(KeyPressed{Key: KeyLeftShift})
	input.Apply(KeyPressed{Key: KeyRightShift})
	input.Apply(KeyReleased{Key: KeyLeftShift})

	state := input.KeyboardState()
	if state.IsKeyDown(KeyLeftShift) || !state.IsKeyDown(KeyRightShift) {
		t.Fatalf("expected only right shift down, got %v", state.PressedKeys())
	}
}

func TestKeyboardStateSnapshot(t *testing.T) {
	input := NewInputContext(InputOptions{})
	input.Apply(KeyPressed{Key: KeySpace})

	snapshot := input.KeyboardState()
	input.Apply(KeyReleased{Key: KeySpace})

	if !snapshot.IsKeyDown(KeySpace) {
		t.Fatalf("snapshot changed after a later event")
	}

	if input.KeyboardState().IsKeyDown(KeySpace) {
		t.Fatalf("expected space to be released")
	}
}

func TestKeyboardLocks(t *testing.T) {
	input := NewInputContext(InputOptions{})

	input.Apply(KeyPressed{Key: KeyCapsLock})
	input.Apply(KeyReleased{Key: KeyCapsLock})

	if !input.KeyboardState().CapsLock {
		t.Fatalf("expected caps lock to be on")
	}

	input.Apply(KeyPressed{Key: KeyCapsLock})
	input.Apply(KeyReleased{Key: KeyCapsLock})

	if input.KeyboardState().CapsLock {
		t.Fatalf("expected caps lock to be off")
	}
}

func TestScrollAccumulator(t *testing.T) {
	input := NewInputContext(InputOptions{})

	for _, notches := range []float64{1, -1, 2} {
		input.Apply(MouseWheel{DeltaY: notches * WheelDelta})
	}

	if value := input.MouseState().ScrollWheelValue; value != 2*WheelDelta {
		t.Fatalf("expected scroll wheel value %d, got %d", 2*WheelDelta, value)
	}
}

func TestScrollAccumulatorProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("running total is the sum of all deltas", prop.ForAll(
		func(initial int, notches []int) bool {
			input := NewInputContext(InputOptions{})
			input.Apply(MouseWheel{DeltaX: float64(initial), DeltaY: float64(initial)})

			sum := initial
			for _, notch := range notches {
				input.Apply(MouseWheel{DeltaX: float64(notch * WheelDelta), DeltaY: float64(notch * WheelDelta)})
				sum += notch * WheelDelta
			}

			state := input.MouseState()
			return state.ScrollWheelValue == sum && state.HorizontalScrollWheelValue == sum
		},
		gen.IntRange(-1000, 1000),
		gen.SliceOf(gen.IntRange(-10, 10)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestScrollAccumulatorKeepsFractions(t *testing.T) {
	input := NewInputContext(InputOptions{})

	// ten precise horizontal Cocoa deltas of one point each
	for range 10 {
		input.Apply(CocoaScroll(1, 0, true))
	}

	if value := input.MouseState().HorizontalScrollWheelValue; value != 108 {
		t.Fatalf("expected 108, got %d", value)
	}
}

func TestMouseState(t *testing.T) {
	input := NewInputContext(InputOptions{})

	input.Apply(MouseMoved{X: 10, Y: 20})
	input.Apply(MouseButtonDown{Button: MouseButtonRight})
	input.Apply(MouseButtonDown{Button: MouseButtonX2})
	input.Apply(MouseButtonUp{Button: MouseButtonX2})

	state := input.MouseState()
	if state.X != 10 || state.Y != 20 {
		t.Fatalf("expected position (10, 20), got (%v, %v)", state.X, state.Y)
	}

	if state.RightButton != Pressed || state.XButton2 != Released || state.LeftButton != Released {
		t.Fatalf("unexpected button state: %+v", state)
	}

	if state.Button(MouseButtonRight) != Pressed {
		t.Fatalf("expected right button to be pressed")
	}
}

func TestReleaseAll(t *testing.T) {
	input := NewInputContext(InputOptions{})

	input.Apply(KeyPressed{Key: KeyW})
	input.Apply(MouseButtonDown{Button: MouseButtonLeft})
	input.Apply(MouseWheel{DeltaY: 240})
	input.ReleaseAll()

	if keys := input.KeyboardState().PressedKeys(); len(keys) != 0 {
		t.Fatalf("expected no pressed keys, got %v", keys)
	}

	state := input.MouseState()
	if state.LeftButton != Released {
		t.Fatalf("expected left button to be released")
	}

	if state.ScrollWheelValue != 240 {
		t.Fatalf("scroll wheel value must survive ReleaseAll, got %d", state.ScrollWheelValue)
	}
}

func TestApplyIgnoresWindowEvents(t *testing.T) {
	input := NewInputContext(InputOptions{})

	if input.Apply(Resized{Width: 10, Height: 10}) {
		t.Fatalf("expected resize to be ignored")
	}

	if !input.Apply(KeyPressed{Key: KeyA}) {
		t.Fatalf("expected key down to be applied")
	}
}

func TestTextListeners(t *testing.T) {
	input := NewInputContext(InputOptions{})

	var first, second []rune
	removeFirst := input.OnTextInput(func(r rune) { first = append(first, r) })
	input.OnTextInput(func(r rune) { second = append(second, r) })

	input.Apply(TextInput{Rune: 'a'})
	removeFirst()
	input.Apply(TextInput{Rune: 'b'})

	if string(first) != "a" {
		t.Fatalf("expected first listener to see %q, got %q", "a", string(first))
	}

	if string(second) != "ab" {
		t.Fatalf("expected second listener to see %q, got %q", "ab", string(second))
	}
}

func TestTouchState(t *testing.T) {
	input := NewInputContext(InputOptions{})

	input.Apply(Touch{ID: 1, Phase: TouchPressed, X: 5, Y: 5})
	input.Apply(Touch{ID: 2, Phase: TouchPressed, X: 50, Y: 50})
	input.Apply(Touch{ID: 1, Phase: TouchMoved, X: 6, Y: 7})

	touches := input.TouchState()
	if len(touches) != 2 {
		t.Fatalf("expected two touches, got %d", len(touches))
	}

	// pressed wins over moved until the next frame
	if touches[0].Phase != TouchPressed || touches[0].Position[0] != 6 {
		t.Fatalf("unexpected first touch: %+v", touches[0])
	}

	input.NextFrame()
	input.Apply(Touch{ID: 2, Phase: TouchReleased, X: 50, Y: 50})

	touches = input.TouchState()
	if touches[0].Phase != TouchMoved || touches[1].Phase != TouchReleased {
		t.Fatalf("unexpected phases: %+v", touches)
	}

	input.NextFrame()
	if touches := input.TouchState(); len(touches) != 1 || touches[0].ID != 1 {
		t.Fatalf("expected only touch 1 to remain, got %+v", touches)
	}
}

func TestEmulateMouseWithTouch(t *testing.T) {
	input := NewInputContext(InputOptions{EmulateMouseWithTouch: true})

	input.Apply(Touch{ID: 7, Phase: TouchPressed, X: 30, Y: 40})
	input.Apply(Touch{ID: 8, Phase: TouchPressed, X: 90, Y: 90})

	state := input.MouseState()
	if state.LeftButton != Pressed || state.X != 30 || state.Y != 40 {
		t.Fatalf("expected the primary touch to drive the mouse, got %+v", state)
	}

	input.Apply(Touch{ID: 7, Phase: TouchReleased, X: 31, Y: 41})
	if state := input.MouseState(); state.LeftButton != Released || state.X != 31 {
		t.Fatalf("expected left button released at the end position, got %+v", state)
	}
}

func TestEmulateTouchWithMouse(t *testing.T) {
	input := NewInputContext(InputOptions{EmulateTouchWithMouse: true})

	input.Apply(MouseMoved{X: 3, Y: 4})
	input.Apply(MouseButtonDown{Button: MouseButtonLeft})
	input.Apply(MouseMoved{X: 5, Y: 6})

	touches := input.TouchState()
	if len(touches) != 1 || touches[0].ID != mouseTouchID || touches[0].Position[0] != 5 {
		t.Fatalf("expected one emulated touch, got %+v", touches)
	}

	input.Apply(MouseButtonUp{Button: MouseButtonLeft})
	if touches := input.TouchState(); touches[0].Phase != TouchReleased {
		t.Fatalf("expected the emulated touch to be released")
	}
}

func TestControllers(t *testing.T) {
	input := NewInputContext(InputOptions{})

	input.Apply(ControllerAdded{ID: 2, Name: "pad"})
	input.Apply(ControllerAdded{ID: 0, Name: "stick"})
	input.Apply(ControllerRemoved{ID: 2})

	if ids := input.Controllers(); !slices.Equal(ids, []int{0}) {
		t.Fatalf("expected controllers [0], got %v", ids)
	}
}
