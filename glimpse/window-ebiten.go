//go:build ebiten

package glimpse

import (
	"errors"
	"fmt"
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/xenon/glm"
)

func init() {
	Register(ebitenBackend{})
}

type ebitenBackend struct{}

func (ebitenBackend) Name() string {
	return "ebiten"
}

// ebitenWindow adapts the single ebiten window. ebiten owns the frame loop
// and only exposes input as state, so events are derived by comparing the
// state of consecutive frames.
type ebitenWindow struct {
	queue []Event

	closed     bool
	fullscreen bool

	bounds  glm.Recti
	focused bool

	cursorX, cursorY int

	touches  map[ebiten.TouchID]glm.Vec2f
	gamepads map[ebiten.GamepadID]struct{}

	// scratch buffers reused across frames
	keys       []ebiten.Key
	chars      []rune
	touchIDs   []ebiten.TouchID
	gamepadIDs []ebiten.GamepadID
}

func (ebitenBackend) CreateWindow(cfg WindowConfig) (NativeWindow, error) {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowDecorated(!cfg.Borderless)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowResizingMode(ebitenResizingMode(cfg.Resizable))

	x, y := ebiten.WindowPosition()

	w := &ebitenWindow{
		bounds:   glm.Recti{X: x, Y: y, Width: cfg.Width, Height: cfg.Height},
		focused:  true,
		touches:  map[ebiten.TouchID]glm.Vec2f{},
		gamepads: map[ebiten.GamepadID]struct{}{},
	}

	return w, nil
}

func ebitenResizingMode(resizable bool) ebiten.WindowResizingModeType {
	if resizable {
		return ebiten.WindowResizingModeEnabled
	}

	return ebiten.WindowResizingModeDisabled
}

// collect derives the events of the current frame.
func (w *ebitenWindow) collect() {
	if ebiten.IsWindowBeingClosed() {
		w.queue = append(w.queue, CloseRequested{})
	}

	if focused := ebiten.IsFocused(); focused != w.focused {
		w.focused = focused

		if focused {
			w.queue = append(w.queue, FocusGained{})
		} else {
			w.queue = append(w.queue, FocusLost{})
		}
	}

	width, height := ebiten.WindowSize()
	if width != w.bounds.Width || height != w.bounds.Height {
		w.bounds.Width, w.bounds.Height = width, height
		w.queue = append(w.queue, Resized{Width: width, Height: height})
	}

	x, y := ebiten.WindowPosition()
	if x != w.bounds.X || y != w.bounds.Y {
		w.bounds.X, w.bounds.Y = x, y
		w.queue = append(w.queue, Moved{X: x, Y: y})
	}

	w.collectKeys()
	w.collectMouse()
	w.collectTouches()
	w.collectGamepads()
}

func (w *ebitenWindow) collectKeys() {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, key := range w.keys {
		w.queue = append(w.queue, KeyPressed{Key: keyOfEbiten(key), Native: int(key)})
	}

	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, key := range w.keys {
		w.queue = append(w.queue, KeyReleased{Key: keyOfEbiten(key), Native: int(key)})
	}

	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, char := range w.chars {
		if r, ok := filterTextRune(char); ok {
			w.queue = append(w.queue, TextInput{Rune: r})
		}
	}
}

func (w *ebitenWindow) collectMouse() {
	x, y := ebiten.CursorPosition()
	if x != w.cursorX || y != w.cursorY {
		w.cursorX, w.cursorY = x, y
		w.queue = append(w.queue, MouseMoved{X: float32(x), Y: float32(y)})
	}

	for native, button := range ebitenToMouseButton {
		if inpututil.IsMouseButtonJustPressed(native) {
			w.queue = append(w.queue, MouseButtonDown{Button: button})
		}

		if inpututil.IsMouseButtonJustReleased(native) {
			w.queue = append(w.queue, MouseButtonUp{Button: button})
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		w.queue = append(w.queue, MouseWheel{
			DeltaX: dx * ebitenWheelScale,
			DeltaY: dy * ebitenWheelScale,
		})
	}
}

func (w *ebitenWindow) collectTouches() {
	for id, pos := range w.touches {
		if inpututil.IsTouchJustReleased(id) {
			delete(w.touches, id)
			w.queue = append(w.queue, Touch{ID: int64(id), Phase: TouchReleased, X: pos[0], Y: pos[1]})
		}
	}

	w.touchIDs = inpututil.AppendJustPressedTouchIDs(w.touchIDs[:0])
	for _, id := range w.touchIDs {
		x, y := ebiten.TouchPosition(id)
		pos := glm.Vec2f{float32(x), float32(y)}

		w.touches[id] = pos
		w.queue = append(w.queue, Touch{ID: int64(id), Phase: TouchPressed, X: pos[0], Y: pos[1]})
	}

	w.touchIDs = ebiten.AppendTouchIDs(w.touchIDs[:0])
	for _, id := range w.touchIDs {
		previous, ok := w.touches[id]
		if !ok {
			continue
		}

		x, y := ebiten.TouchPosition(id)
		pos := glm.Vec2f{float32(x), float32(y)}
		if pos != previous {
			w.touches[id] = pos
			w.queue = append(w.queue, Touch{ID: int64(id), Phase: TouchMoved, X: pos[0], Y: pos[1]})
		}
	}
}

func (w *ebitenWindow) collectGamepads() {
	// disconnected gamepads are no longer listed by ebiten, check the ones
	// that were connected before
	for id := range w.gamepads {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(w.gamepads, id)
			w.queue = append(w.queue, ControllerRemoved{ID: int(id)})
		}
	}

	w.gamepadIDs = inpututil.AppendJustConnectedGamepadIDs(w.gamepadIDs[:0])
	for _, id := range w.gamepadIDs {
		w.gamepads[id] = struct{}{}
		w.queue = append(w.queue, ControllerAdded{ID: int(id), Name: ebiten.GamepadName(id)})
	}
}

func (w *ebitenWindow) PollEvents(dst []Event) []Event {
	dst = append(dst, w.queue...)
	w.queue = w.queue[:0]
	return dst
}

type ebitenGame struct {
	window *ebitenWindow
	step   func() error
	err    error
}

func (g *ebitenGame) Update() error {
	if g.window.closed {
		return ebiten.Termination
	}

	g.window.collect()

	if err := g.step(); err != nil {
		if !errors.Is(err, ErrStop) {
			g.err = err
		}

		return ebiten.Termination
	}

	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	// rendering happens in the step function
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (w *ebitenWindow) Run(step func() error) error {
	game := &ebitenGame{window: w, step: step}

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run ebiten: %w", err)
	}

	return game.err
}

func (w *ebitenWindow) Show() error {
	// ebiten shows the window when the game starts running
	return nil
}

func (w *ebitenWindow) ClientBounds() glm.Recti {
	return w.bounds
}

func (w *ebitenWindow) SetClientSize(width, height int) error {
	if w.closed {
		return ErrClosed
	}

	ebiten.SetWindowSize(width, height)
	return nil
}

func (w *ebitenWindow) SetPosition(x, y int) error {
	if w.closed {
		return ErrClosed
	}

	ebiten.SetWindowPosition(x, y)
	return nil
}

func (w *ebitenWindow) SetTitle(title string) error {
	if w.closed {
		return ErrClosed
	}

	ebiten.SetWindowTitle(title)
	return nil
}

func (w *ebitenWindow) SetBorderless(borderless bool) error {
	if w.closed {
		return ErrClosed
	}

	ebiten.SetWindowDecorated(!borderless)
	return nil
}

func (w *ebitenWindow) SetResizable(resizable bool) error {
	if w.closed {
		return ErrClosed
	}

	ebiten.SetWindowResizingMode(ebitenResizingMode(resizable))
	return nil
}

func (w *ebitenWindow) SetFloating(floating bool) error {
	if w.closed {
		return ErrClosed
	}

	ebiten.SetWindowFloating(floating)
	return nil
}

func (w *ebitenWindow) EnterFullscreen(monitor Monitor, mode *DisplayMode) error {
	if w.closed {
		return ErrClosed
	}

	if mode != nil {
		return unsupported("ebiten", "hardware display mode switch")
	}

	monitors := ebiten.AppendMonitors(nil)
	if monitor.Index >= 0 && monitor.Index < len(monitors) {
		ebiten.SetMonitor(monitors[monitor.Index])
	}

	ebiten.SetFullscreen(true)
	w.fullscreen = true
	return nil
}

func (w *ebitenWindow) ExitFullscreen() error {
	if w.closed {
		return ErrClosed
	}

	ebiten.SetFullscreen(false)
	w.fullscreen = false
	return nil
}

func (w *ebitenWindow) Monitors() ([]Monitor, error) {
	var monitors []Monitor
	for idx, monitor := range ebiten.AppendMonitors(nil) {
		monitors = append(monitors, ebitenMonitorInfo(idx, monitor))
	}

	if len(monitors) == 0 {
		return nil, errors.New("ebiten: no monitors")
	}

	return monitors, nil
}

// ebitenMonitorInfo describes a monitor. ebiten does not expose monitor
// positions, work areas or the list of video modes.
func ebitenMonitorInfo(idx int, monitor *ebiten.MonitorType) Monitor {
	width, height := monitor.Size()
	bounds := glm.Recti{Width: width, Height: height}
	current := DisplayMode{Width: width, Height: height, RefreshRate: 60}

	return Monitor{
		Index:    idx,
		Name:     monitor.Name(),
		Bounds:   bounds,
		WorkArea: bounds,
		Current:  current,
		Modes:    []DisplayMode{current},
	}
}

func (w *ebitenWindow) CurrentMonitor() (Monitor, error) {
	current := ebiten.Monitor()

	monitors := ebiten.AppendMonitors(nil)
	idx := slices.Index(monitors, current)
	if idx < 0 {
		return Monitor{}, errors.New("ebiten: window is not on any monitor")
	}

	return ebitenMonitorInfo(idx, current), nil
}

func (w *ebitenWindow) FrameInsets() Insets {
	// not exposed by ebiten
	return Insets{}
}

func (w *ebitenWindow) ResetCursor() error {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	return nil
}

func (w *ebitenWindow) SetIcon(icon image.Image) error {
	if w.closed {
		return ErrClosed
	}

	ebiten.SetWindowIcon([]image.Image{icon})
	return nil
}

func (w *ebitenWindow) Close() {
	// the next frame ends the ebiten loop
	w.closed = true
}
