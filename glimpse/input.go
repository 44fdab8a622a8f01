package glimpse

import (
	"log/slog"
	"maps"
	"math"
	"slices"
	"sync"

	"github.com/oliverbestmann/xenon/glm"
)

type MouseButton uint32

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonX1
	MouseButtonX2
)

type ButtonState uint8

const (
	Released ButtonState = iota
	Pressed
)

// KeyboardState is a snapshot of the keys that are held down. It is a plain
// value, copies never observe later changes.
type KeyboardState struct {
	bits [8]uint32

	CapsLock bool
	NumLock  bool
}

// NewKeyboardState returns a state with the given keys held down.
func NewKeyboardState(keys ...Key) KeyboardState {
	var state KeyboardState
	for _, key := range keys {
		state.set(key)
	}

	return state
}

func (s KeyboardState) IsKeyDown(key Key) bool {
	return s.bits[key>>5]&(1<<(key&31)) != 0
}

func (s KeyboardState) IsKeyUp(key Key) bool {
	return !s.IsKeyDown(key)
}

// PressedKeys returns the keys that are down in ascending order.
func (s KeyboardState) PressedKeys() []Key {
	var keys []Key
	for word, bits := range s.bits {
		for bit := 0; bits != 0; bit++ {
			if bits&1 != 0 {
				keys = append(keys, Key(word*32+bit))
			}

			bits >>= 1
		}
	}

	return keys
}

// set marks key as down. It reports whether the state changed. Keys that
// are not part of the enumeration are never stored.
func (s *KeyboardState) set(key Key) bool {
	if key == KeyNone || !key.IsValid() || s.IsKeyDown(key) {
		return false
	}

	s.bits[key>>5] |= 1 << (key & 31)
	return true
}

func (s *KeyboardState) unset(key Key) bool {
	if !s.IsKeyDown(key) {
		return false
	}

	s.bits[key>>5] &^= 1 << (key & 31)
	return true
}

type MouseState struct {
	// cursor position in client coordinates, origin top left, y grows downwards
	X, Y float32

	LeftButton   ButtonState
	MiddleButton ButtonState
	RightButton  ButtonState
	XButton1     ButtonState
	XButton2     ButtonState

	// ScrollWheelValue is the running total of all vertical wheel movement
	// in wheel units. Diff two snapshots to get a per frame delta.
	ScrollWheelValue int

	HorizontalScrollWheelValue int
}

func (m MouseState) Position() glm.Vec2f {
	return glm.Vec2f{m.X, m.Y}
}

func (m MouseState) Button(button MouseButton) ButtonState {
	switch button {
	case MouseButtonLeft:
		return m.LeftButton
	case MouseButtonRight:
		return m.RightButton
	case MouseButtonMiddle:
		return m.MiddleButton
	case MouseButtonX1:
		return m.XButton1
	case MouseButtonX2:
		return m.XButton2
	default:
		return Released
	}
}

func (m *MouseState) setButton(button MouseButton, state ButtonState) {
	switch button {
	case MouseButtonLeft:
		m.LeftButton = state
	case MouseButtonRight:
		m.RightButton = state
	case MouseButtonMiddle:
		m.MiddleButton = state
	case MouseButtonX1:
		m.XButton1 = state
	case MouseButtonX2:
		m.XButton2 = state
	}
}

type TouchLocation struct {
	ID       int64
	Phase    TouchPhase
	Position glm.Vec2f
}

// mouseTouchID identifies the touch point emulated from the left mouse button.
const mouseTouchID = -1

type InputOptions struct {
	// EmulateMouseWithTouch moves the cursor and the left mouse button with
	// the first active touch point.
	EmulateMouseWithTouch bool

	// EmulateTouchWithMouse reports the left mouse button as a touch point.
	EmulateTouchWithMouse bool
}

// InputContext aggregates translated events into keyboard, mouse and touch
// state. Each window owns its own context. All methods are safe to call from
// multiple goroutines; state getters always return copies.
type InputContext struct {
	opts InputOptions

	mu       sync.Mutex
	keyboard KeyboardState
	mouse    MouseState

	// full precision running totals behind the integer values in mouse
	wheelX, wheelY float64

	touches      []TouchLocation
	primaryTouch int64
	hasPrimary   bool

	controllers map[int]string

	listenersMu   sync.Mutex
	textListeners map[int]func(rune)
	nextListener  int
}

func NewInputContext(opts InputOptions) *InputContext {
	return &InputContext{
		opts:          opts,
		controllers:   map[int]string{},
		textListeners: map[int]func(rune){},
	}
}

func (c *InputContext) KeyboardState() KeyboardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.keyboard
}

func (c *InputContext) MouseState() MouseState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mouse
}

func (c *InputContext) TouchState() []TouchLocation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.touches)
}

// Controllers returns the ids of the connected controllers.
func (c *InputContext) Controllers() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Sorted(maps.Keys(c.controllers))
}

// OnTextInput registers fn to receive every character of text input. The
// returned function removes the listener again.
func (c *InputContext) OnTextInput(fn func(rune)) (remove func()) {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()

	id := c.nextListener
	c.nextListener++
	c.textListeners[id] = fn

	return func() {
		c.listenersMu.Lock()
		defer c.listenersMu.Unlock()
		delete(c.textListeners, id)
	}
}

// Apply updates the input state with ev. It reports whether ev was an input
// event. Window events are ignored.
func (c *InputContext) Apply(ev Event) bool {
	switch ev := ev.(type) {
	case KeyPressed:
		c.mu.Lock()
		c.keyboard.set(ev.Key)
		c.toggleLocks(ev.Key)
		c.mu.Unlock()

	case KeyReleased:
		c.mu.Lock()
		c.keyboard.unset(ev.Key)
		c.mu.Unlock()

	case TextInput:
		c.emitText(ev.Rune)

	case MouseMoved:
		c.mu.Lock()
		c.mouse.X = ev.X
		c.mouse.Y = ev.Y
		if c.opts.EmulateTouchWithMouse && c.mouse.LeftButton == Pressed {
			c.updateTouch(mouseTouchID, TouchMoved, ev.X, ev.Y)
		}
		c.mu.Unlock()

	case MouseButtonDown:
		c.mu.Lock()
		c.mouse.setButton(ev.Button, Pressed)
		if c.opts.EmulateTouchWithMouse && ev.Button == MouseButtonLeft {
			c.updateTouch(mouseTouchID, TouchPressed, c.mouse.X, c.mouse.Y)
		}
		c.mu.Unlock()

	case MouseButtonUp:
		c.mu.Lock()
		c.mouse.setButton(ev.Button, Released)
		if c.opts.EmulateTouchWithMouse && ev.Button == MouseButtonLeft {
			c.updateTouch(mouseTouchID, TouchReleased, c.mouse.X, c.mouse.Y)
		}
		c.mu.Unlock()

	case MouseWheel:
		c.mu.Lock()
		c.wheelX += ev.DeltaX
		c.wheelY += ev.DeltaY
		c.mouse.HorizontalScrollWheelValue = int(math.Round(c.wheelX))
		c.mouse.ScrollWheelValue = int(math.Round(c.wheelY))
		c.mu.Unlock()

	case Touch:
		c.mu.Lock()
		c.updateTouch(ev.ID, ev.Phase, ev.X, ev.Y)
		if c.opts.EmulateMouseWithTouch {
			c.emulateMouse(ev)
		}
		c.mu.Unlock()

	case ControllerAdded:
		c.mu.Lock()
		c.controllers[ev.ID] = ev.Name
		c.mu.Unlock()

		slog.Info("Controller connected", slog.Int("id", ev.ID), slog.String("name", ev.Name))

	case ControllerRemoved:
		c.mu.Lock()
		delete(c.controllers, ev.ID)
		c.mu.Unlock()

		slog.Info("Controller disconnected", slog.Int("id", ev.ID))

	default:
		return false
	}

	return true
}

// ReleaseAll marks every key and mouse button as released. Windows call this
// when they lose focus, as the matching release events are delivered to
// another window.
func (c *InputContext) ReleaseAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.keyboard.bits = [8]uint32{}
	c.mouse.LeftButton = Released
	c.mouse.MiddleButton = Released
	c.mouse.RightButton = Released
	c.mouse.XButton1 = Released
	c.mouse.XButton2 = Released
}

// NextFrame drops touch points that ended during the previous frame and
// marks new touch points as moved.
func (c *InputContext) NextFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.touches = slices.DeleteFunc(c.touches, func(t TouchLocation) bool {
		return t.Phase == TouchReleased || t.Phase == TouchCancelled
	})

	for idx := range c.touches {
		c.touches[idx].Phase = TouchMoved
	}
}

func (c *InputContext) toggleLocks(key Key) {
	switch key {
	case KeyCapsLock:
		c.keyboard.CapsLock = !c.keyboard.CapsLock
	case KeyNumLock:
		c.keyboard.NumLock = !c.keyboard.NumLock
	}
}

func (c *InputContext) updateTouch(id int64, phase TouchPhase, x, y float32) {
	pos := glm.Vec2f{x, y}

	idx := slices.IndexFunc(c.touches, func(t TouchLocation) bool { return t.ID == id })
	if idx < 0 {
		if phase != TouchPressed {
			return
		}

		c.touches = append(c.touches, TouchLocation{ID: id, Phase: phase, Position: pos})
		return
	}

	touch := &c.touches[idx]
	touch.Position = pos

	// a touch that starts and ends within one frame still reports as released
	if touch.Phase != TouchPressed || phase != TouchMoved {
		touch.Phase = phase
	}
}

func (c *InputContext) emulateMouse(ev Touch) {
	if !c.hasPrimary {
		if ev.Phase != TouchPressed {
			return
		}

		c.primaryTouch = ev.ID
		c.hasPrimary = true
	}

	if ev.ID != c.primaryTouch {
		return
	}

	c.mouse.X = ev.X
	c.mouse.Y = ev.Y

	switch ev.Phase {
	case TouchPressed, TouchMoved:
		c.mouse.LeftButton = Pressed

	case TouchReleased, TouchCancelled:
		c.mouse.LeftButton = Released
		c.hasPrimary = false
	}
}

func (c *InputContext) emitText(r rune) {
	c.listenersMu.Lock()
	var listeners []func(rune)
	for _, id := range slices.Sorted(maps.Keys(c.textListeners)) {
		listeners = append(listeners, c.textListeners[id])
	}
	c.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(r)
	}
}
