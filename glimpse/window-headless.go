package glimpse

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"slices"
	"sync"

	"github.com/oliverbestmann/xenon/glm"
)

func init() {
	Register(HeadlessBackend{})
}

// DefaultHeadlessMonitor is the monitor simulated when no monitors are
// configured: a 1920x1080 display with a 25 pixel menu bar at the top.
var DefaultHeadlessMonitor = Monitor{
	Index:    0,
	Name:     "headless",
	Bounds:   glm.Recti{X: 0, Y: 0, Width: 1920, Height: 1080},
	WorkArea: glm.Recti{X: 0, Y: 25, Width: 1920, Height: 1055},
	Current:  DisplayMode{Width: 1920, Height: 1080, RefreshRate: 60},
	Modes: []DisplayMode{
		{Width: 640, Height: 480, RefreshRate: 60},
		{Width: 800, Height: 600, RefreshRate: 60},
		{Width: 1024, Height: 768, RefreshRate: 60},
		{Width: 1280, Height: 720, RefreshRate: 60},
		{Width: 1920, Height: 1080, RefreshRate: 30},
		{Width: 1920, Height: 1080, RefreshRate: 60},
	},
}

// DefaultHeadlessInsets are the decorations of a bordered headless window.
var DefaultHeadlessInsets = Insets{Left: 1, Top: 28, Right: 1, Bottom: 1}

// HeadlessBackend simulates windows without a display. It is used in tests
// and on machines without a windowing system.
type HeadlessBackend struct {
	Monitors []Monitor
}

func (HeadlessBackend) Name() string {
	return "headless"
}

func (b HeadlessBackend) CreateWindow(cfg WindowConfig) (NativeWindow, error) {
	return NewHeadlessWindow(cfg, b.Monitors...), nil
}

// HeadlessWindow is a simulated native window. Like real windowing layers it
// reports its own changes back as events and has side effects on style
// changes: changing the border style clears the title and the resizable flag.
// Every native operation is recorded in a call log.
type HeadlessWindow struct {
	mu sync.Mutex

	title      string
	bounds     glm.Recti
	visible    bool
	borderless bool
	resizable  bool
	floating   bool
	fullscreen bool
	closed     bool

	windowedBounds glm.Recti
	icon           image.Image

	monitors []Monitor
	insets   Insets

	// desktop mode of the monitor that was switched by a hardware fullscreen
	restoreMode *DisplayMode
	modeMonitor int

	queue []Event
	calls []string

	cocoaModifiers CocoaModifierTracker

	presented int
	current   bool
}

var _ NativeWindow = (*HeadlessWindow)(nil)
var _ Presenter = (*HeadlessWindow)(nil)

// NewHeadlessWindow creates a hidden window at the origin of the work area
// of the first monitor.
func NewHeadlessWindow(cfg WindowConfig, monitors ...Monitor) *HeadlessWindow {
	if len(monitors) == 0 {
		monitors = []Monitor{DefaultHeadlessMonitor}
	}

	work := monitors[0].WorkArea

	return &HeadlessWindow{
		title:      cfg.Title,
		bounds:     glm.Recti{X: work.X, Y: work.Y, Width: cfg.Width, Height: cfg.Height},
		borderless: cfg.Borderless,
		resizable:  cfg.Resizable,
		monitors:   slices.Clone(monitors),
		insets:     DefaultHeadlessInsets,
	}
}

func (w *HeadlessWindow) record(format string, args ...any) {
	w.calls = append(w.calls, fmt.Sprintf(format, args...))
}

// Calls returns the log of native operations in the order they happened.
func (w *HeadlessWindow) Calls() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.calls)
}

// ClearCalls empties the call log.
func (w *HeadlessWindow) ClearCalls() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = nil
}

// Inject queues events as if the native layer had reported them.
func (w *HeadlessWindow) Inject(events ...Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue = append(w.queue, events...)
}

// UserResize simulates the user dragging the window border.
func (w *HeadlessWindow) UserResize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.bounds.Width = width
	w.bounds.Height = height
	w.queue = append(w.queue, Resized{Width: width, Height: height})
}

// UserMove simulates the user dragging the window title bar.
func (w *HeadlessWindow) UserMove(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.bounds.X = x
	w.bounds.Y = y
	w.queue = append(w.queue, Moved{X: x, Y: y})
}

// ReplayCocoaKey feeds a Cocoa keyDown or keyUp record through the Cocoa
// key translator.
func (w *HeadlessWindow) ReplayCocoaKey(ev CocoaKeyEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue = CocoaKeyEvents(ev, w.queue)
}

// ReplayCocoaFlags feeds a Cocoa flagsChanged record.
func (w *HeadlessWindow) ReplayCocoaFlags(flags uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue = w.cocoaModifiers.FlagsChanged(flags, w.queue)
}

// ReplayCocoaScroll feeds a Cocoa scrollWheel record.
func (w *HeadlessWindow) ReplayCocoaScroll(deltaX, deltaY float64, precise bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue = append(w.queue, CocoaScroll(deltaX, deltaY, precise))
}

// ReplayWin32Key feeds a WM_KEYDOWN or WM_KEYUP record.
func (w *HeadlessWindow) ReplayWin32Key(msg Win32KeyMessage) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue = Win32KeyEvents(msg, w.queue)
}

// ReplayWin32Char feeds the UTF-16 code units of WM_CHAR records.
func (w *HeadlessWindow) ReplayWin32Char(units ...uint16) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, unit := range units {
		w.queue = Win32Char(unit, w.queue)
	}
}

// ReplayWin32Scroll feeds a WM_MOUSEWHEEL or WM_MOUSEHWHEEL record.
func (w *HeadlessWindow) ReplayWin32Scroll(delta int16, horizontal bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue = append(w.queue, Win32Scroll(delta, horizontal))
}

// ReplayText feeds the UTF-8 payload of a native text input event.
func (w *HeadlessWindow) ReplayText(payload []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.queue = textEvents(w.queue, DecodeText(payload))
}

func (w *HeadlessWindow) PollEvents(dst []Event) []Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	dst = append(dst, w.queue...)
	w.queue = w.queue[:0]
	return dst
}

func (w *HeadlessWindow) Run(step func() error) error {
	for {
		w.mu.Lock()
		closed := w.closed
		w.mu.Unlock()

		if closed {
			return nil
		}

		if err := step(); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}

			return err
		}
	}
}

func (w *HeadlessWindow) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	w.record("Show")
	w.visible = true
	return nil
}

// Visible reports whether Show was called.
func (w *HeadlessWindow) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

func (w *HeadlessWindow) ClientBounds() glm.Recti {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bounds
}

func (w *HeadlessWindow) SetClientSize(width, height int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	w.record("SetClientSize(%d, %d)", width, height)

	w.bounds.Width = width
	w.bounds.Height = height

	// reported even if the size did not change, like many real layers do
	w.queue = append(w.queue, Resized{Width: width, Height: height})
	return nil
}

func (w *HeadlessWindow) SetPosition(x, y int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	w.record("SetPosition(%d, %d)", x, y)

	if w.bounds.X != x || w.bounds.Y != y {
		w.bounds.X = x
		w.bounds.Y = y
		w.queue = append(w.queue, Moved{X: x, Y: y})
	}

	return nil
}

func (w *HeadlessWindow) SetTitle(title string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	w.record("SetTitle(%q)", title)
	w.title = title
	return nil
}

func (w *HeadlessWindow) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

func (w *HeadlessWindow) SetBorderless(borderless bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	w.record("SetBorderless(%t)", borderless)

	// a style change recreates the window chrome
	w.borderless = borderless
	w.title = ""
	w.resizable = false
	return nil
}

func (w *HeadlessWindow) Borderless() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.borderless
}

func (w *HeadlessWindow) SetResizable(resizable bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	w.record("SetResizable(%t)", resizable)
	w.resizable = resizable
	return nil
}

func (w *HeadlessWindow) Resizable() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.resizable
}

func (w *HeadlessWindow) SetFloating(floating bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	w.record("SetFloating(%t)", floating)
	w.floating = floating
	return nil
}

func (w *HeadlessWindow) Floating() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.floating
}

func (w *HeadlessWindow) EnterFullscreen(monitor Monitor, mode *DisplayMode) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	idx := slices.IndexFunc(w.monitors, func(m Monitor) bool { return m.Index == monitor.Index })
	if idx < 0 {
		return fmt.Errorf("headless: unknown monitor %d", monitor.Index)
	}

	target := &w.monitors[idx]

	if mode != nil {
		w.record("EnterFullscreen(%d, %s)", monitor.Index, mode)

		if !slices.Contains(target.Modes, *mode) {
			return fmt.Errorf("headless: monitor %q does not support mode %s", target.Name, mode)
		}

		if w.restoreMode == nil {
			previous := target.Current
			w.restoreMode = &previous
			w.modeMonitor = idx
		}

		target.Current = *mode
		target.Bounds.Width = mode.Width
		target.Bounds.Height = mode.Height
		target.WorkArea = target.Bounds
	} else {
		w.record("EnterFullscreen(%d, desktop)", monitor.Index)
	}

	if !w.fullscreen {
		w.windowedBounds = w.bounds
	}

	w.fullscreen = true
	w.setBoundsLocked(target.Bounds)
	return nil
}

func (w *HeadlessWindow) ExitFullscreen() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	w.record("ExitFullscreen")

	if !w.fullscreen {
		return nil
	}

	if w.restoreMode != nil {
		target := &w.monitors[w.modeMonitor]
		target.Current = *w.restoreMode
		target.Bounds.Width = w.restoreMode.Width
		target.Bounds.Height = w.restoreMode.Height

		// the menu bar is back
		target.WorkArea = glm.Recti{
			X:      target.Bounds.X,
			Y:      target.Bounds.Y + 25,
			Width:  target.Bounds.Width,
			Height: target.Bounds.Height - 25,
		}

		w.restoreMode = nil
	}

	w.fullscreen = false
	w.setBoundsLocked(w.windowedBounds)
	return nil
}

func (w *HeadlessWindow) Fullscreen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fullscreen
}

func (w *HeadlessWindow) setBoundsLocked(bounds glm.Recti) {
	if bounds.Width != w.bounds.Width || bounds.Height != w.bounds.Height {
		w.queue = append(w.queue, Resized{Width: bounds.Width, Height: bounds.Height})
	}

	if bounds.X != w.bounds.X || bounds.Y != w.bounds.Y {
		w.queue = append(w.queue, Moved{X: bounds.X, Y: bounds.Y})
	}

	w.bounds = bounds
}

func (w *HeadlessWindow) CurrentMonitor() (Monitor, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	monitor, ok := monitorShowing(w.monitors, w.bounds)
	if !ok {
		return Monitor{}, errors.New("headless: no monitors")
	}

	return monitor, nil
}

func (w *HeadlessWindow) Monitors() ([]Monitor, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.monitors), nil
}

func (w *HeadlessWindow) FrameInsets() Insets {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.borderless || w.fullscreen {
		return Insets{}
	}

	return w.insets
}

func (w *HeadlessWindow) ResetCursor() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.record("ResetCursor")
	return nil
}

func (w *HeadlessWindow) SetIcon(icon image.Image) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	w.record("SetIcon")
	w.icon = icon
	return nil
}

func (w *HeadlessWindow) Icon() image.Image {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.icon
}

func (w *HeadlessWindow) MakeCurrent() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current = true
}

func (w *HeadlessWindow) DetachCurrent() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current = false
}

func (w *HeadlessWindow) Present() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.current {
		slog.Warn("Present without a current context")
	}

	w.presented++
}

// Presented returns the number of presented frames.
func (w *HeadlessWindow) Presented() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.presented
}

func (w *HeadlessWindow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.record("Close")
	w.closed = true
	w.queue = nil
}

func (w *HeadlessWindow) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}
