//go:build sdl2

package glimpse

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"unsafe"

	"github.com/oliverbestmann/xenon/glm"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	Register(sdlBackend{})
}

type sdlBackend struct{}

func (sdlBackend) Name() string {
	return "sdl2"
}

// sdlWindows maps window ids to windows. SDL has one event queue for all
// windows, events are routed by their window id.
var sdlWindows = map[uint32]*sdlWindow{}

// sdlGlobal collects events that do not belong to a window, like
// controller hot-plug. They are delivered to every window.
var sdlGlobal []Event

func sdlVersion() sdl.Version {
	var version sdl.Version
	sdl.GetVersion(&version)
	return version
}

// sdlRequire returns a VersionError if the linked SDL is older than the
// given version.
func sdlRequire(capability string, major, minor, patch uint8) error {
	version := sdlVersion()

	found := [3]uint8{version.Major, version.Minor, version.Patch}
	required := [3]uint8{major, minor, patch}

	for idx := range found {
		if found[idx] != required[idx] {
			if found[idx] > required[idx] {
				return nil
			}

			return &VersionError{
				Library:    "SDL",
				Capability: capability,
				Required:   fmt.Sprintf("%d.%d.%d", major, minor, patch),
				Found:      fmt.Sprintf("%d.%d.%d", version.Major, version.Minor, version.Patch),
			}
		}
	}

	return nil
}

func initSDL() error {
	if len(sdlWindows) > 0 {
		return nil
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER); err != nil {
		return fmt.Errorf("initialize sdl: %w", err)
	}

	version := sdlVersion()
	slog.Info("Initialized SDL",
		slog.Int("major", int(version.Major)),
		slog.Int("minor", int(version.Minor)),
		slog.Int("patch", int(version.Patch)),
	)

	sdl.StartTextInput()
	return nil
}

type sdlWindow struct {
	win   *sdl.Window
	id    uint32
	glctx sdl.GLContext
	queue []Event

	fullscreen bool
	windowed   glm.Recti
}

func (sdlBackend) CreateWindow(cfg WindowConfig) (NativeWindow, error) {
	if err := initSDL(); err != nil {
		return nil, err
	}

	var flags uint32 = sdl.WINDOW_HIDDEN | sdl.WINDOW_ALLOW_HIGHDPI

	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if cfg.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if cfg.OpenGL {
		flags |= sdl.WINDOW_OPENGL
	}

	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height),
		flags,
	)

	if err != nil {
		if len(sdlWindows) == 0 {
			sdl.Quit()
		}

		return nil, fmt.Errorf("create window: %w", err)
	}

	id, err := window.GetID()
	if err != nil {
		_ = window.Destroy()
		return nil, fmt.Errorf("query window id: %w", err)
	}

	w := &sdlWindow{win: window, id: id}

	if cfg.OpenGL {
		w.glctx, err = window.GLCreateContext()
		if err != nil {
			_ = window.Destroy()
			return nil, fmt.Errorf("create gl context: %w", err)
		}
	}

	sdlWindows[id] = w

	return w.native(), nil
}

// native returns the window as handed out to callers. Only a window with a
// graphics context is a Presenter.
func (w *sdlWindow) native() NativeWindow {
	if w.glctx != nil {
		return &sdlContextWindow{sdlWindow: w}
	}

	return w
}

func pumpSDL() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			for _, w := range sdlWindows {
				w.queue = append(w.queue, CloseRequested{})
			}

		case *sdl.WindowEvent:
			if w := sdlWindows[ev.WindowID]; w != nil {
				w.handleWindowEvent(ev)
			}

		case *sdl.KeyboardEvent:
			w := sdlWindows[ev.WindowID]
			if w == nil || ev.Repeat != 0 {
				continue
			}

			key := keyOfSDL(ev.Keysym)
			w.queue = append(w.queue, keyEvent(key, int(ev.Keysym.Sym), ev.State == sdl.PRESSED))

		case *sdl.TextInputEvent:
			if w := sdlWindows[ev.WindowID]; w != nil {
				for _, r := range DecodeText(ev.Text[:]) {
					if r, ok := filterTextRune(r); ok {
						w.queue = append(w.queue, TextInput{Rune: r})
					}
				}
			}

		case *sdl.MouseMotionEvent:
			if w := sdlWindows[ev.WindowID]; w != nil {
				w.queue = append(w.queue, MouseMoved{X: float32(ev.X), Y: float32(ev.Y)})
			}

		case *sdl.MouseButtonEvent:
			w := sdlWindows[ev.WindowID]
			if w == nil {
				continue
			}

			button, ok := sdlToMouseButton[ev.Button]
			if !ok {
				continue
			}

			if ev.State == sdl.PRESSED {
				w.queue = append(w.queue, MouseButtonDown{Button: button})
			} else {
				w.queue = append(w.queue, MouseButtonUp{Button: button})
			}

		case *sdl.MouseWheelEvent:
			if w := sdlWindows[ev.WindowID]; w != nil {
				w.queue = append(w.queue, sdlWheel(ev))
			}

		case *sdl.JoyDeviceAddedEvent:
			sdlGlobal = append(sdlGlobal, ControllerAdded{
				ID:   int(ev.Which),
				Name: sdl.JoystickNameForIndex(int(ev.Which)),
			})

		case *sdl.JoyDeviceRemovedEvent:
			sdlGlobal = append(sdlGlobal, ControllerRemoved{ID: int(ev.Which)})
		}
	}

	if len(sdlGlobal) > 0 {
		for _, w := range sdlWindows {
			w.queue = append(w.queue, sdlGlobal...)
		}

		sdlGlobal = sdlGlobal[:0]
	}
}

func (w *sdlWindow) handleWindowEvent(ev *sdl.WindowEvent) {
	switch ev.Event {
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		w.queue = append(w.queue, Resized{Width: int(ev.Data1), Height: int(ev.Data2)})

	case sdl.WINDOWEVENT_MOVED:
		w.queue = append(w.queue, Moved{X: int(ev.Data1), Y: int(ev.Data2)})

	case sdl.WINDOWEVENT_FOCUS_GAINED:
		w.queue = append(w.queue, FocusGained{})

	case sdl.WINDOWEVENT_FOCUS_LOST:
		w.queue = append(w.queue, FocusLost{})

	case sdl.WINDOWEVENT_CLOSE:
		w.queue = append(w.queue, CloseRequested{})
	}
}

func (w *sdlWindow) PollEvents(dst []Event) []Event {
	if w.win == nil {
		return dst
	}

	pumpSDL()

	dst = append(dst, w.queue...)
	w.queue = w.queue[:0]
	return dst
}

func (w *sdlWindow) Run(step func() error) error {
	for w.win != nil {
		if err := step(); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}

			return err
		}
	}

	return nil
}

func (w *sdlWindow) Show() error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.Show()
	return nil
}

func (w *sdlWindow) ClientBounds() glm.Recti {
	if w.win == nil {
		return glm.Recti{}
	}

	x, y := w.win.GetPosition()
	width, height := w.win.GetSize()
	return glm.Recti{X: int(x), Y: int(y), Width: int(width), Height: int(height)}
}

func (w *sdlWindow) SetClientSize(width, height int) error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.SetSize(int32(width), int32(height))
	return nil
}

func (w *sdlWindow) SetPosition(x, y int) error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.SetPosition(int32(x), int32(y))
	return nil
}

func (w *sdlWindow) SetTitle(title string) error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.SetTitle(title)
	return nil
}

func (w *sdlWindow) SetBorderless(borderless bool) error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.SetBordered(!borderless)
	return nil
}

func (w *sdlWindow) SetResizable(resizable bool) error {
	if w.win == nil {
		return ErrClosed
	}

	if err := sdlRequire("changing the resizable flag", 2, 0, 5); err != nil {
		return err
	}

	w.win.SetResizable(resizable)
	return nil
}

func (w *sdlWindow) SetFloating(floating bool) error {
	if w.win == nil {
		return ErrClosed
	}

	if err := sdlRequire("keeping a window above others", 2, 0, 16); err != nil {
		return err
	}

	w.win.SetAlwaysOnTop(floating)
	return nil
}

func (w *sdlWindow) EnterFullscreen(monitor Monitor, mode *DisplayMode) error {
	if w.win == nil {
		return ErrClosed
	}

	if !w.fullscreen {
		w.windowed = w.ClientBounds()
	}

	// move the window onto the target display first, SDL goes fullscreen on
	// the display that shows the window
	w.win.SetPosition(int32(monitor.Bounds.X), int32(monitor.Bounds.Y))

	if mode == nil {
		if err := w.win.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP); err != nil {
			return fmt.Errorf("enter desktop fullscreen: %w", err)
		}
	} else {
		target := sdl.DisplayMode{W: int32(mode.Width), H: int32(mode.Height), RefreshRate: int32(mode.RefreshRate)}
		if err := w.win.SetDisplayMode(&target); err != nil {
			return fmt.Errorf("set display mode %s: %w", mode, err)
		}

		if err := w.win.SetFullscreen(sdl.WINDOW_FULLSCREEN); err != nil {
			return fmt.Errorf("enter fullscreen: %w", err)
		}
	}

	w.fullscreen = true
	return nil
}

func (w *sdlWindow) ExitFullscreen() error {
	if w.win == nil {
		return ErrClosed
	}

	if !w.fullscreen {
		return nil
	}

	if err := w.win.SetFullscreen(0); err != nil {
		return fmt.Errorf("exit fullscreen: %w", err)
	}

	x, y, width, height := w.windowed.XYWH()
	w.win.SetSize(int32(width), int32(height))
	w.win.SetPosition(int32(x), int32(y))

	w.fullscreen = false
	return nil
}

func (w *sdlWindow) Monitors() ([]Monitor, error) {
	count, err := sdl.GetNumVideoDisplays()
	if err != nil {
		return nil, fmt.Errorf("query displays: %w", err)
	}

	var monitors []Monitor
	for idx := range count {
		monitor, err := sdlMonitorInfo(idx)
		if err != nil {
			return nil, err
		}

		monitors = append(monitors, monitor)
	}

	return monitors, nil
}

func sdlMonitorInfo(idx int) (Monitor, error) {
	name, err := sdl.GetDisplayName(idx)
	if err != nil {
		return Monitor{}, fmt.Errorf("query display %d: %w", idx, err)
	}

	bounds, err := sdl.GetDisplayBounds(idx)
	if err != nil {
		return Monitor{}, fmt.Errorf("query bounds of display %d: %w", idx, err)
	}

	work := bounds
	if sdlRequire("querying the usable display area", 2, 0, 5) == nil {
		work, err = sdl.GetDisplayUsableBounds(idx)
		if err != nil {
			return Monitor{}, fmt.Errorf("query usable bounds of display %d: %w", idx, err)
		}
	}

	current, err := sdl.GetCurrentDisplayMode(idx)
	if err != nil {
		return Monitor{}, fmt.Errorf("query mode of display %d: %w", idx, err)
	}

	count, err := sdl.GetNumDisplayModes(idx)
	if err != nil {
		return Monitor{}, fmt.Errorf("query modes of display %d: %w", idx, err)
	}

	var modes []DisplayMode
	for modeIdx := range count {
		mode, err := sdl.GetDisplayMode(idx, modeIdx)
		if err != nil {
			continue
		}

		modes = append(modes, sdlDisplayMode(mode))
	}

	return Monitor{
		Index:    idx,
		Name:     name,
		Bounds:   sdlRect(bounds),
		WorkArea: sdlRect(work),
		Current:  sdlDisplayMode(current),
		Modes:    modes,
	}, nil
}

func sdlRect(rect sdl.Rect) glm.Recti {
	return glm.Recti{X: int(rect.X), Y: int(rect.Y), Width: int(rect.W), Height: int(rect.H)}
}

func sdlDisplayMode(mode sdl.DisplayMode) DisplayMode {
	return DisplayMode{Width: int(mode.W), Height: int(mode.H), RefreshRate: int(mode.RefreshRate)}
}

func (w *sdlWindow) CurrentMonitor() (Monitor, error) {
	if w.win == nil {
		return Monitor{}, ErrClosed
	}

	idx, err := w.win.GetDisplayIndex()
	if err != nil {
		return Monitor{}, fmt.Errorf("query display of window: %w", err)
	}

	return sdlMonitorInfo(idx)
}

func (w *sdlWindow) FrameInsets() Insets {
	if w.win == nil || sdlRequire("querying border sizes", 2, 0, 5) != nil {
		return Insets{}
	}

	top, left, bottom, right, err := w.win.GetBordersSize()
	if err != nil {
		return Insets{}
	}

	return Insets{Left: int(left), Top: int(top), Right: int(right), Bottom: int(bottom)}
}

func (w *sdlWindow) ResetCursor() error {
	if w.win == nil {
		return ErrClosed
	}

	sdl.SetCursor(sdl.GetDefaultCursor())

	if _, err := sdl.ShowCursor(sdl.ENABLE); err != nil {
		return fmt.Errorf("show cursor: %w", err)
	}

	return nil
}

func (w *sdlWindow) SetIcon(icon image.Image) error {
	if w.win == nil {
		return ErrClosed
	}

	bounds := icon.Bounds()

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), icon, bounds.Min, draw.Src)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(bounds.Dx()), int32(bounds.Dy()),
		32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)

	if err != nil {
		return fmt.Errorf("create icon surface: %w", err)
	}

	defer surface.Free()

	w.win.SetIcon(surface)
	return nil
}

// sdlContextWindow is an SDL window with an OpenGL context.
type sdlContextWindow struct {
	*sdlWindow
}

var _ NativeWindow = (*sdlWindow)(nil)
var _ Presenter = (*sdlContextWindow)(nil)

func (w *sdlContextWindow) MakeCurrent() {
	if w.win == nil || w.glctx == nil {
		return
	}

	if err := w.win.GLMakeCurrent(w.glctx); err != nil {
		slog.Debug("Failed to make gl context current", slog.String("err", err.Error()))
	}
}

func (w *sdlContextWindow) DetachCurrent() {
	if w.win == nil {
		return
	}

	if err := w.win.GLMakeCurrent(nil); err != nil {
		slog.Debug("Failed to detach gl context", slog.String("err", err.Error()))
	}
}

func (w *sdlContextWindow) Present() {
	if w.win != nil && w.glctx != nil {
		w.win.GLSwap()
	}
}

func (w *sdlWindow) Close() {
	if w.win == nil {
		return
	}

	if w.glctx != nil {
		sdl.GLDeleteContext(w.glctx)
		w.glctx = nil
	}

	_ = w.win.Destroy()
	w.win = nil

	delete(sdlWindows, w.id)
	if len(sdlWindows) == 0 {
		sdl.StopTextInput()
		sdl.Quit()
	}
}
