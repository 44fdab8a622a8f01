package orion

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/oliverbestmann/xenon/glimpse"
	"github.com/oliverbestmann/xenon/glm"
)

type WindowOptions struct {
	Title      string
	Resizable  bool
	Borderless bool

	Input glimpse.InputOptions
}

// GameWindow wraps a native window and keeps it consistent with the back
// buffer of the graphics device. Native events are dispatched in
// ProcessEvents; the methods of a GameWindow must be called from the
// goroutine that runs the loop.
type GameWindow struct {
	native glimpse.NativeWindow
	input  *glimpse.InputContext
	lock   *ContextLock
	modes  *glimpse.DisplayModeSelector

	state       WindowState
	initialized bool

	bounds      glm.Recti
	title       string
	borderless  bool
	resizable   bool
	fullscreen  bool
	active      bool
	orientation glimpse.DisplayOrientation

	// moved is set once the window was moved by the user or by code and
	// disables automatic centering for the rest of its life.
	moved bool

	device *GraphicsDeviceManager

	// client size last reported through ClientSizeChanged when no device
	// manager is attached
	reportedSize glm.Vec2i

	drawing  bool
	drawGate bool

	// screen mode change requested while the window was busy, latest wins
	pending func() error

	events []glimpse.Event

	clientSizeChanged  handlers[glm.Recti]
	orientationChanged handlers[glimpse.DisplayOrientation]
	activated          handlers[struct{}]
	deactivated        handlers[struct{}]
	closing            handlers[struct{}]
}

// NewGameWindow wraps an already created native window.
func NewGameWindow(native glimpse.NativeWindow, opts WindowOptions) (*GameWindow, error) {
	if native == nil {
		return nil, ErrNilWindow
	}

	presenter, _ := native.(glimpse.Presenter)

	bounds := native.ClientBounds()

	w := &GameWindow{
		native:       native,
		input:        glimpse.NewInputContext(opts.Input),
		lock:         NewContextLock(presenter),
		modes:        glimpse.NewDisplayModeSelector(16),
		state:        WindowCreated,
		bounds:       bounds,
		title:        opts.Title,
		borderless:   opts.Borderless,
		resizable:    opts.Resizable,
		active:       true,
		drawGate:     true,
		reportedSize: bounds.Size(),
	}

	return w, nil
}

// CreateGameWindow creates a hidden native window using backend.
func CreateGameWindow(backend glimpse.Backend, cfg glimpse.WindowConfig, input glimpse.InputOptions) (*GameWindow, error) {
	native, err := backend.CreateWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("create %s window: %w", backend.Name(), err)
	}

	slog.Info("Created window",
		slog.String("backend", backend.Name()),
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
	)

	return NewGameWindow(native, WindowOptions{
		Title:      cfg.Title,
		Resizable:  cfg.Resizable,
		Borderless: cfg.Borderless,
		Input:      input,
	})
}

func (w *GameWindow) State() WindowState {
	return w.state
}

// Native returns the native window, or nil after Close.
func (w *GameWindow) Native() glimpse.NativeWindow {
	return w.native
}

func (w *GameWindow) Input() *glimpse.InputContext {
	return w.input
}

func (w *GameWindow) ContextLock() *ContextLock {
	return w.lock
}

// ClientBounds returns the client area in screen coordinates.
func (w *GameWindow) ClientBounds() glm.Recti {
	return w.bounds
}

func (w *GameWindow) Title() string {
	return w.title
}

func (w *GameWindow) SetTitle(title string) error {
	if w.native == nil {
		return glimpse.ErrClosed
	}

	if err := w.native.SetTitle(title); err != nil {
		return fmt.Errorf("set title: %w", err)
	}

	w.title = title
	return nil
}

// SetIcon sets the window icon. A nil icon is an error.
func (w *GameWindow) SetIcon(icon image.Image) error {
	if icon == nil {
		return errors.New("icon must not be nil")
	}

	if w.native == nil {
		return glimpse.ErrClosed
	}

	if err := w.native.SetIcon(icon); err != nil {
		return fmt.Errorf("set icon: %w", err)
	}

	return nil
}

func (w *GameWindow) IsBorderless() bool {
	return w.borderless
}

// SetBorderless changes the border style. Setting the current value does
// nothing, as native layers reset the window chrome on every change.
func (w *GameWindow) SetBorderless(borderless bool) error {
	if borderless == w.borderless {
		return nil
	}

	if w.native == nil {
		return glimpse.ErrClosed
	}

	w.borderless = borderless

	// the fullscreen window is always borderless, the style is applied
	// when leaving fullscreen
	if w.fullscreen {
		return nil
	}

	if err := w.native.SetBorderless(borderless); err != nil {
		return fmt.Errorf("set borderless: %w", err)
	}

	return w.restoreChrome(w.title, w.resizable)
}

func (w *GameWindow) AllowUserResizing() bool {
	return w.resizable
}

// SetAllowUserResizing changes the resizable flag. Setting the current value
// does nothing.
func (w *GameWindow) SetAllowUserResizing(resizable bool) error {
	if resizable == w.resizable {
		return nil
	}

	if w.native == nil {
		return glimpse.ErrClosed
	}

	if err := w.native.SetResizable(resizable); err != nil {
		return fmt.Errorf("set resizable: %w", err)
	}

	w.resizable = resizable
	return nil
}

// SetPosition moves the client area. Automatic centering is disabled from
// now on.
func (w *GameWindow) SetPosition(x, y int) error {
	if w.native == nil {
		return glimpse.ErrClosed
	}

	if err := w.native.SetPosition(x, y); err != nil {
		return fmt.Errorf("set position: %w", err)
	}

	w.moved = true
	w.bounds.X, w.bounds.Y = x, y
	return nil
}

// Moved reports whether the window was moved by the user or by code.
func (w *GameWindow) Moved() bool {
	return w.moved
}

func (w *GameWindow) IsFullScreen() bool {
	return w.fullscreen
}

// IsActive reports whether the window has the input focus.
func (w *GameWindow) IsActive() bool {
	return w.active
}

// CurrentOrientation is always OrientationDefault on desktop backends.
func (w *GameWindow) CurrentOrientation() glimpse.DisplayOrientation {
	return w.orientation
}

// IsDrawAllowed reports whether the loop may draw a frame. Drawing is
// suppressed during screen mode transitions.
func (w *GameWindow) IsDrawAllowed() bool {
	return w.drawGate && w.native != nil
}

// OnClientSizeChanged registers fn to be called with the new client bounds
// after the back buffer was resized.
func (w *GameWindow) OnClientSizeChanged(fn func(bounds glm.Recti)) (remove func()) {
	return w.clientSizeChanged.add(fn)
}

// OnOrientationChanged registers fn to be called when the display rotates.
func (w *GameWindow) OnOrientationChanged(fn func(orientation glimpse.DisplayOrientation)) (remove func()) {
	return w.orientationChanged.add(fn)
}

func (w *GameWindow) OnTextInput(fn func(r rune)) (remove func()) {
	return w.input.OnTextInput(fn)
}

func (w *GameWindow) OnActivated(fn func()) (remove func()) {
	return w.activated.add(func(struct{}) { fn() })
}

func (w *GameWindow) OnDeactivated(fn func()) (remove func()) {
	return w.deactivated.add(func(struct{}) { fn() })
}

// OnClosing registers fn to be called when the user asks to close the
// window.
func (w *GameWindow) OnClosing(fn func()) (remove func()) {
	return w.closing.add(func(struct{}) { fn() })
}

// Show makes the window visible and centers it on its monitor unless it
// was moved before.
func (w *GameWindow) Show() error {
	if w.native == nil {
		return glimpse.ErrClosed
	}

	if err := w.centerIfNotMoved(); err != nil {
		return err
	}

	if err := w.native.Show(); err != nil {
		return fmt.Errorf("show window: %w", err)
	}

	return nil
}

// markRunning ends the initialization phase. From now on resizes cascade
// into device resets.
func (w *GameWindow) markRunning() {
	if w.initialized || w.native == nil {
		return
	}

	w.initialized = true
	w.state = WindowRunning
	w.reportedSize = w.bounds.Size()

	if w.device != nil {
		w.device.params.BackBufferWidth = w.bounds.Width
		w.device.params.BackBufferHeight = w.bounds.Height
		w.device.viewport = glm.Recti{Width: w.bounds.Width, Height: w.bounds.Height}
	}
}

// ProcessEvents polls the native window and dispatches all pending events.
// Input events are applied in arrival order. Several resize or move events
// collapse to the last one.
func (w *GameWindow) ProcessEvents() error {
	if w.native == nil {
		return nil
	}

	w.events = w.native.PollEvents(w.events[:0])

	var resized glimpse.Resized
	var moved glimpse.Moved
	var hasResized, hasMoved bool

	for _, ev := range w.events {
		switch ev := ev.(type) {
		case glimpse.Resized:
			resized, hasResized = ev, true

		case glimpse.Moved:
			moved, hasMoved = ev, true

		case glimpse.FocusGained:
			w.setActive(true)

		case glimpse.FocusLost:
			w.setActive(false)

		case glimpse.CloseRequested:
			w.closing.emit(struct{}{})

		case glimpse.Rotated:
			w.setOrientation(ev.Orientation)

		default:
			w.input.Apply(ev)
		}
	}

	if hasMoved {
		w.handleMove(moved.X, moved.Y, true)
	}

	if hasResized {
		w.handleResize(resized.Width, resized.Height)
	}

	return w.flushPending()
}

func (w *GameWindow) setActive(active bool) {
	if active == w.active {
		return
	}

	w.active = active

	if active {
		w.activated.emit(struct{}{})
		return
	}

	// release events go to the window that has the focus now
	w.input.ReleaseAll()
	w.deactivated.emit(struct{}{})
}

func (w *GameWindow) setOrientation(orientation glimpse.DisplayOrientation) {
	if orientation == w.orientation {
		return
	}

	w.orientation = orientation
	w.orientationChanged.emit(orientation)
}

func (w *GameWindow) handleMove(x, y int, byUser bool) {
	if x == w.bounds.X && y == w.bounds.Y {
		return
	}

	w.bounds.X, w.bounds.Y = x, y

	if byUser && !w.fullscreen {
		w.moved = true
	}
}

// handleResize applies a new client size. Before the window runs only the
// bookkeeping is updated. Afterward a size different from the back buffer
// resets the device; repeated sizes are dropped.
func (w *GameWindow) handleResize(width, height int) {
	w.bounds.Width, w.bounds.Height = width, height

	if !w.initialized || w.native == nil {
		if w.device != nil {
			w.device.params.BackBufferWidth = width
			w.device.params.BackBufferHeight = height
		}

		return
	}

	if w.device == nil {
		size := glm.Vec2i{width, height}
		if size == w.reportedSize {
			return
		}

		w.reportedSize = size
		w.clientSizeChanged.emit(w.bounds)
		return
	}

	params := w.device.params
	if params.BackBufferWidth == width && params.BackBufferHeight == height {
		return
	}

	slog.Debug("Resize back buffer",
		slog.Int("width", width),
		slog.Int("height", height),
	)

	previous := w.state
	if previous == WindowRunning {
		w.state = WindowResizing
	}

	w.lock.Do(func() {
		w.device.reset(width, height, func() {
			w.clientSizeChanged.emit(w.bounds)
		})
	})

	w.state = previous
}

// syncBounds reads the client bounds back from the native window after a
// change made by code.
func (w *GameWindow) syncBounds() {
	bounds := w.native.ClientBounds()
	w.handleMove(bounds.X, bounds.Y, false)
	w.handleResize(bounds.Width, bounds.Height)
}

// busy reports whether screen mode changes must be deferred.
func (w *GameWindow) busy() bool {
	return w.drawing || w.state == WindowResizing || w.state == WindowFullscreenTransition
}

// requestChange runs change now, or queues it if the window is in the middle
// of a draw, a resize or a screen mode transition. Only the latest queued
// change is kept.
func (w *GameWindow) requestChange(change func() error) error {
	if w.busy() {
		slog.Debug("Queued screen mode change")
		w.pending = change
		return nil
	}

	if err := change(); err != nil {
		return err
	}

	return w.flushPending()
}

func (w *GameWindow) flushPending() error {
	for w.pending != nil && !w.busy() {
		change := w.pending
		w.pending = nil

		if err := change(); err != nil {
			return fmt.Errorf("apply queued change: %w", err)
		}
	}

	return nil
}

func (w *GameWindow) beginDraw() {
	w.drawing = true
}

func (w *GameWindow) endDraw() error {
	w.drawing = false
	return w.flushPending()
}

// resizeClient changes the client size of a windowed window.
func (w *GameWindow) resizeClient(width, height int) error {
	if w.native == nil {
		return glimpse.ErrClosed
	}

	if err := w.native.SetClientSize(width, height); err != nil {
		return fmt.Errorf("set client size: %w", err)
	}

	w.bounds.Width, w.bounds.Height = width, height

	if err := w.centerIfNotMoved(); err != nil {
		return err
	}

	w.syncBounds()
	return nil
}

// centerIfNotMoved centers the window frame on the work area of its monitor.
func (w *GameWindow) centerIfNotMoved() error {
	if w.moved || w.fullscreen {
		return nil
	}

	monitor, err := w.native.CurrentMonitor()
	if err != nil {
		return tolerate("query monitor", err)
	}

	client := centeredClient(monitor.WorkArea, w.native.FrameInsets(), w.bounds.Width, w.bounds.Height)
	if client.X == w.bounds.X && client.Y == w.bounds.Y {
		return nil
	}

	if err := w.native.SetPosition(client.X, client.Y); err != nil {
		return tolerate("center window", err)
	}

	w.bounds.X, w.bounds.Y = client.X, client.Y
	return nil
}

// centeredClient returns the client area of a window whose frame is centered
// in work. The client size is clamped so that the frame fits.
func centeredClient(work glm.Recti, insets glimpse.Insets, width, height int) glm.Recti {
	width = max(1, min(width, work.Width-insets.Left-insets.Right))
	height = max(1, min(height, work.Height-insets.Top-insets.Bottom))

	frame := work.CenterIn(glm.Vec2i{
		width + insets.Left + insets.Right,
		height + insets.Top + insets.Bottom,
	})

	return glm.Recti{
		X:      frame.X + insets.Left,
		Y:      frame.Y + insets.Top,
		Width:  width,
		Height: height,
	}
}

// tolerate drops errors of optional native operations the backend does not
// support.
func tolerate(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, glimpse.ErrUnsupported) {
		slog.Debug("Skipped unsupported operation", slog.String("op", op))
		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}

// restoreChrome applies title and resizable flag again, as changing the
// border style resets them on some native layers.
func (w *GameWindow) restoreChrome(title string, resizable bool) error {
	if err := w.native.SetTitle(title); err != nil {
		return fmt.Errorf("restore title: %w", err)
	}

	if err := w.native.SetResizable(resizable); err != nil {
		return tolerate("restore resizable", err)
	}

	return nil
}

// Close destroys the native window. It is safe to call Close more than once.
func (w *GameWindow) Close() {
	if w.native == nil {
		return
	}

	w.state = WindowClosed
	w.native.Close()
	w.native = nil
}
