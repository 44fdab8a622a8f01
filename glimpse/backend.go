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

var (
	// ErrUnsupported is wrapped by every error returned from an operation
	// the native layer cannot perform.
	ErrUnsupported = errors.New("operation not supported by backend")

	// ErrStop is returned by a step function to end NativeWindow.Run.
	ErrStop = errors.New("stop")

	// ErrClosed is returned by operations on a closed window.
	ErrClosed = errors.New("window is closed")
)

func unsupported(backend, op string) error {
	return fmt.Errorf("%s: %s: %w", backend, op, ErrUnsupported)
}

// VersionError reports that the native library is too old to provide a
// requested capability.
type VersionError struct {
	Library    string
	Capability string
	Required   string
	Found      string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf(
		"%s requires %s %s or newer (found %s); please update %s",
		e.Capability, e.Library, e.Required, e.Found, e.Library,
	)
}

type WindowConfig struct {
	Title         string
	Width, Height int

	Resizable  bool
	Borderless bool

	// OpenGL requests a native graphics context for the window. Native
	// windows implement Presenter only then. Headless windows always do.
	OpenGL bool
}

// DisplayMode is a video mode supported by a monitor.
type DisplayMode struct {
	Width, Height int
	RefreshRate   int
}

func (m DisplayMode) String() string {
	return fmt.Sprintf("%dx%d@%dHz", m.Width, m.Height, m.RefreshRate)
}

// Monitor describes a display as seen by the native layer. Index is only
// meaningful for the backend that produced the value.
type Monitor struct {
	Index int
	Name  string

	// Bounds covers the full monitor in screen coordinates.
	Bounds glm.Recti

	// WorkArea is the part of Bounds not covered by task bars, docks and
	// global menu bars.
	WorkArea glm.Recti

	Current DisplayMode
	Modes   []DisplayMode
}

// Insets are the sizes of the window decorations around the client area.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Backend creates native windows for one windowing layer.
type Backend interface {
	Name() string
	CreateWindow(cfg WindowConfig) (NativeWindow, error)
}

// NativeWindow is the capability set every windowing layer provides.
// Operations a layer cannot perform return an error wrapping ErrUnsupported.
type NativeWindow interface {
	// PollEvents appends all pending events to dst in arrival order.
	PollEvents(dst []Event) []Event

	// Run calls step once per native frame until step returns an error.
	// ErrStop ends the loop without an error.
	Run(step func() error) error

	// Show makes a window visible that was created hidden.
	Show() error

	ClientBounds() glm.Recti
	SetClientSize(width, height int) error
	SetPosition(x, y int) error
	SetTitle(title string) error
	SetBorderless(borderless bool) error
	SetResizable(resizable bool) error

	// SetFloating places the window above all normal windows.
	SetFloating(floating bool) error

	// EnterFullscreen covers the monitor with the window. With a nil mode the
	// desktop resolution is kept, otherwise the monitor switches to mode.
	EnterFullscreen(monitor Monitor, mode *DisplayMode) error
	ExitFullscreen() error

	// CurrentMonitor returns the monitor that shows most of the window.
	CurrentMonitor() (Monitor, error)
	Monitors() ([]Monitor, error)
	FrameInsets() Insets

	ResetCursor() error
	SetIcon(icon image.Image) error

	Close()
}

// Presenter is implemented by windows that own a native graphics context.
type Presenter interface {
	MakeCurrent()
	DetachCurrent()
	Present()
}

var registry = struct {
	sync.Mutex
	backends map[string]Backend
}{backends: map[string]Backend{}}

// preferredBackends lists the backends in the order they are picked when
// no backend is requested explicitly.
var preferredBackends = []string{"glfw", "sdl2", "ebiten", "mobile", "js", "headless"}

// Register makes a backend available by its name.
func Register(backend Backend) {
	registry.Lock()
	defer registry.Unlock()

	registry.backends[backend.Name()] = backend
}

// Lookup returns the backend with the given name. An empty name selects the
// preferred backend compiled into this binary.
func Lookup(name string) (Backend, error) {
	registry.Lock()
	defer registry.Unlock()

	if name != "" {
		backend, ok := registry.backends[name]
		if !ok {
			return nil, fmt.Errorf("backend %q is not available, compiled in: %v", name, registeredNames())
		}

		return backend, nil
	}

	for _, name := range preferredBackends {
		if backend, ok := registry.backends[name]; ok {
			slog.Debug("Selected default backend", slog.String("backend", name))
			return backend, nil
		}
	}

	return nil, errors.New("no backend available")
}

func registeredNames() []string {
	var names []string
	for name := range registry.backends {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}
