//go:build !js && !android && !ios

package glimpse

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"slices"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/xenon/glm"
)

func init() {
	// glfw must only be called from the main thread
	runtime.LockOSThread()

	Register(glfwBackend{})
}

type glfwBackend struct{}

func (glfwBackend) Name() string {
	return "glfw"
}

// glfwWindows are all open windows. Joystick events are global in glfw and
// are delivered to each of them.
var glfwWindows []*glfwWindow

func initGLFW() error {
	if len(glfwWindows) > 0 {
		return nil
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}

	major, minor, revision := glfw.GetVersion()
	if major < 3 || major == 3 && minor < 3 {
		glfw.Terminate()

		return &VersionError{
			Library:    "glfw",
			Capability: "changing window attributes",
			Required:   "3.3",
			Found:      fmt.Sprintf("%d.%d.%d", major, minor, revision),
		}
	}

	slog.Info("Initialized glfw", slog.String("version", glfw.GetVersionString()))

	glfw.SetJoystickCallback(func(joy glfw.Joystick, event glfw.PeripheralEvent) {
		var ev Event

		switch event {
		case glfw.Connected:
			ev = ControllerAdded{ID: int(joy), Name: joy.GetName()}
		case glfw.Disconnected:
			ev = ControllerRemoved{ID: int(joy)}
		default:
			return
		}

		for _, w := range glfwWindows {
			w.queue = append(w.queue, ev)
		}
	})

	return nil
}

func glfwBool(value bool) int {
	if value {
		return glfw.True
	}

	return glfw.False
}

type glfwWindow struct {
	win   *glfw.Window
	queue []Event

	// client bounds before entering fullscreen
	windowed   glm.Recti
	fullscreen bool
}

func (glfwBackend) CreateWindow(cfg WindowConfig) (NativeWindow, error) {
	if err := initGLFW(); err != nil {
		return nil, err
	}

	glfw.DefaultWindowHints()

	if cfg.OpenGL {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	} else {
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.Decorated, glfwBool(!cfg.Borderless))

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		if len(glfwWindows) == 0 {
			glfw.Terminate()
		}

		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{win: window}

	// controllers that were connected before the window existed
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() {
			w.queue = append(w.queue, ControllerAdded{ID: int(joy), Name: joy.GetName()})
		}
	}

	w.configureInput()

	glfwWindows = append(glfwWindows, w)

	return w.native(cfg.OpenGL), nil
}

// native returns the window as handed out to callers. Only a window with a
// graphics context is a Presenter; glfw raises an error when making a window
// without a context current.
func (w *glfwWindow) native(hasContext bool) NativeWindow {
	if hasContext {
		return &glfwContextWindow{glfwWindow: w}
	}

	return w
}

func (w *glfwWindow) configureInput() {
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		// closing is up to the game
		w.win.SetShouldClose(false)
		w.queue = append(w.queue, CloseRequested{})
	})

	w.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.queue = append(w.queue, Resized{Width: width, Height: height})
	})

	w.win.SetPosCallback(func(_ *glfw.Window, x, y int) {
		w.queue = append(w.queue, Moved{X: x, Y: y})
	})

	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			w.queue = append(w.queue, FocusGained{})
		} else {
			w.queue = append(w.queue, FocusLost{})
		}
	})

	w.win.SetKeyCallback(func(_ *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key := keyOfGLFW(glfwKey)
		w.queue = append(w.queue, keyEvent(key, scancode, action == glfw.Press))
	})

	w.win.SetCharCallback(func(_ *glfw.Window, char rune) {
		if r, ok := filterTextRune(char); ok {
			w.queue = append(w.queue, TextInput{Rune: r})
		}
	})

	w.win.SetMouseButtonCallback(func(_ *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button, ok := glfwToMouseButton[btn]
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			w.queue = append(w.queue, MouseButtonDown{Button: button})
		case glfw.Release:
			w.queue = append(w.queue, MouseButtonUp{Button: button})
		}
	})

	w.win.SetCursorPosCallback(func(_ *glfw.Window, xpos float64, ypos float64) {
		w.queue = append(w.queue, MouseMoved{X: float32(xpos), Y: float32(ypos)})
	})

	w.win.SetScrollCallback(func(_ *glfw.Window, xoff float64, yoff float64) {
		w.queue = append(w.queue, MouseWheel{
			DeltaX: xoff * glfwWheelScale,
			DeltaY: yoff * glfwWheelScale,
		})
	})
}

func (w *glfwWindow) PollEvents(dst []Event) []Event {
	if w.win == nil {
		return dst
	}

	glfw.PollEvents()

	dst = append(dst, w.queue...)
	w.queue = w.queue[:0]
	return dst
}

func (w *glfwWindow) Run(step func() error) error {
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

func (w *glfwWindow) Show() error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.Show()
	return nil
}

func (w *glfwWindow) ClientBounds() glm.Recti {
	if w.win == nil {
		return glm.Recti{}
	}

	x, y := w.win.GetPos()
	width, height := w.win.GetSize()
	return glm.Recti{X: x, Y: y, Width: width, Height: height}
}

func (w *glfwWindow) SetClientSize(width, height int) error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.SetSize(width, height)
	return nil
}

func (w *glfwWindow) SetPosition(x, y int) error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.SetPos(x, y)
	return nil
}

func (w *glfwWindow) SetTitle(title string) error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.SetTitle(title)
	return nil
}

func (w *glfwWindow) SetBorderless(borderless bool) error {
	return w.setAttrib(glfw.Decorated, !borderless)
}

func (w *glfwWindow) SetResizable(resizable bool) error {
	return w.setAttrib(glfw.Resizable, resizable)
}

func (w *glfwWindow) SetFloating(floating bool) error {
	return w.setAttrib(glfw.Floating, floating)
}

func (w *glfwWindow) setAttrib(attrib glfw.Hint, value bool) error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.SetAttrib(attrib, glfwBool(value))
	return nil
}

func (w *glfwWindow) EnterFullscreen(monitor Monitor, mode *DisplayMode) error {
	if w.win == nil {
		return ErrClosed
	}

	monitors := glfw.GetMonitors()
	if monitor.Index < 0 || monitor.Index >= len(monitors) {
		return fmt.Errorf("glfw: unknown monitor %d", monitor.Index)
	}

	target := monitors[monitor.Index]

	if !w.fullscreen {
		w.windowed = w.ClientBounds()
	}

	if mode == nil {
		// a fullscreen window with the current video mode keeps the desktop
		// resolution
		current := target.GetVideoMode()
		w.win.SetMonitor(target, 0, 0, current.Width, current.Height, current.RefreshRate)
	} else {
		w.win.SetMonitor(target, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	}

	w.fullscreen = true
	return nil
}

func (w *glfwWindow) ExitFullscreen() error {
	if w.win == nil {
		return ErrClosed
	}

	if !w.fullscreen {
		return nil
	}

	x, y, width, height := w.windowed.XYWH()
	w.win.SetMonitor(nil, x, y, width, height, glfw.DontCare)

	w.fullscreen = false
	return nil
}

func (w *glfwWindow) Monitors() ([]Monitor, error) {
	var monitors []Monitor
	for idx, monitor := range glfw.GetMonitors() {
		monitors = append(monitors, glfwMonitorInfo(idx, monitor))
	}

	if len(monitors) == 0 {
		return nil, errors.New("glfw: no monitors connected")
	}

	return monitors, nil
}

func (w *glfwWindow) CurrentMonitor() (Monitor, error) {
	if w.win == nil {
		return Monitor{}, ErrClosed
	}

	monitors, err := w.Monitors()
	if err != nil {
		return Monitor{}, err
	}

	if current := w.win.GetMonitor(); current != nil {
		idx := slices.Index(glfw.GetMonitors(), current)
		if idx >= 0 && idx < len(monitors) {
			return monitors[idx], nil
		}
	}

	monitor, _ := monitorShowing(monitors, w.ClientBounds())
	return monitor, nil
}

func glfwMonitorInfo(idx int, monitor *glfw.Monitor) Monitor {
	x, y := monitor.GetPos()
	workX, workY, workWidth, workHeight := monitor.GetWorkarea()

	current := monitor.GetVideoMode()

	var modes []DisplayMode
	for _, mode := range monitor.GetVideoModes() {
		modes = append(modes, DisplayMode{Width: mode.Width, Height: mode.Height, RefreshRate: mode.RefreshRate})
	}

	return Monitor{
		Index:    idx,
		Name:     monitor.GetName(),
		Bounds:   glm.Recti{X: x, Y: y, Width: current.Width, Height: current.Height},
		WorkArea: glm.Recti{X: workX, Y: workY, Width: workWidth, Height: workHeight},
		Current:  DisplayMode{Width: current.Width, Height: current.Height, RefreshRate: current.RefreshRate},
		Modes:    modes,
	}
}

func (w *glfwWindow) FrameInsets() Insets {
	if w.win == nil {
		return Insets{}
	}

	left, top, right, bottom := w.win.GetFrameSize()
	return Insets{Left: left, Top: top, Right: right, Bottom: bottom}
}

func (w *glfwWindow) ResetCursor() error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.SetCursor(nil)
	w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	return nil
}

func (w *glfwWindow) SetIcon(icon image.Image) error {
	if w.win == nil {
		return ErrClosed
	}

	w.win.SetIcon([]image.Image{icon})
	return nil
}

// glfwContextWindow is a glfw window created with an OpenGL context.
type glfwContextWindow struct {
	*glfwWindow
}

var _ NativeWindow = (*glfwWindow)(nil)
var _ Presenter = (*glfwContextWindow)(nil)

func (w *glfwContextWindow) MakeCurrent() {
	if w.win != nil {
		w.win.MakeContextCurrent()
	}
}

func (w *glfwContextWindow) DetachCurrent() {
	glfw.DetachCurrentContext()
}

func (w *glfwContextWindow) Present() {
	if w.win != nil {
		w.win.SwapBuffers()
	}
}

func (w *glfwWindow) Close() {
	if w.win == nil {
		return
	}

	w.win.Destroy()
	w.win = nil

	glfwWindows = slices.DeleteFunc(glfwWindows, func(other *glfwWindow) bool { return other == w })
	if len(glfwWindows) == 0 {
		glfw.Terminate()
	}
}
