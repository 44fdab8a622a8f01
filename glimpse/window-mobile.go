//go:build android || ios

package glimpse

import (
	"errors"
	"image"

	"github.com/oliverbestmann/xenon/glm"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
)

func init() {
	Register(mobileBackend{})
}

type mobileBackend struct{}

func (mobileBackend) Name() string {
	return "mobile"
}

// mobileWindow is the single full screen surface of a mobile app. Its size
// and orientation are decided by the operating system.
type mobileWindow struct {
	queue []Event

	bounds      glm.Recti
	orientation size.Orientation
	visible     bool
	closed      bool
}

func (mobileBackend) CreateWindow(cfg WindowConfig) (NativeWindow, error) {
	w := &mobileWindow{
		bounds: glm.Recti{Width: cfg.Width, Height: cfg.Height},
	}

	return w, nil
}

func (w *mobileWindow) handle(event any) {
	switch ev := event.(type) {
	case lifecycle.Event:
		switch ev.Crosses(lifecycle.StageFocused) {
		case lifecycle.CrossOn:
			w.queue = append(w.queue, FocusGained{})
		case lifecycle.CrossOff:
			w.queue = append(w.queue, FocusLost{})
		}

		switch ev.Crosses(lifecycle.StageVisible) {
		case lifecycle.CrossOn:
			w.visible = true
		case lifecycle.CrossOff:
			w.visible = false
		}

		if ev.To == lifecycle.StageDead {
			w.queue = append(w.queue, CloseRequested{})
		}

	case size.Event:
		if ev.WidthPx != w.bounds.Width || ev.HeightPx != w.bounds.Height {
			w.bounds.Width, w.bounds.Height = ev.WidthPx, ev.HeightPx
			w.queue = append(w.queue, Resized{Width: ev.WidthPx, Height: ev.HeightPx})
		}

		if ev.Orientation != w.orientation {
			w.orientation = ev.Orientation
			w.queue = append(w.queue, Rotated{Orientation: orientationOfMobile(ev.Orientation)})
		}

	case touch.Event:
		var phase TouchPhase
		switch ev.Type {
		case touch.TypeBegin:
			phase = TouchPressed
		case touch.TypeMove:
			phase = TouchMoved
		case touch.TypeEnd:
			phase = TouchReleased
		}

		w.queue = append(w.queue, Touch{ID: int64(ev.Sequence), Phase: phase, X: ev.X, Y: ev.Y})

	case key.Event:
		switch ev.Direction {
		case key.DirPress:
			w.queue = append(w.queue, KeyPressed{Key: keyOfMobile(ev.Code), Native: int(ev.Code)})

			if r, ok := filterTextRune(ev.Rune); ok {
				w.queue = append(w.queue, TextInput{Rune: r})
			}

		case key.DirRelease:
			w.queue = append(w.queue, KeyReleased{Key: keyOfMobile(ev.Code), Native: int(ev.Code)})
		}
	}
}

func (w *mobileWindow) PollEvents(dst []Event) []Event {
	dst = append(dst, w.queue...)
	w.queue = w.queue[:0]
	return dst
}

// Run hands the main goroutine to the app event loop. step is called for
// every paint event while the app is visible.
func (w *mobileWindow) Run(step func() error) error {
	var err error

	app.Main(func(a app.App) {
		for event := range a.Events() {
			event = a.Filter(event)
			w.handle(event)

			if _, ok := event.(paint.Event); !ok || !w.visible || w.closed {
				continue
			}

			if stepErr := step(); stepErr != nil {
				if !errors.Is(stepErr, ErrStop) {
					err = stepErr
				}

				return
			}

			a.Publish()

			// keep the frames coming
			a.Send(paint.Event{})
		}
	})

	return err
}

func (w *mobileWindow) Show() error {
	return nil
}

func (w *mobileWindow) ClientBounds() glm.Recti {
	return w.bounds
}

func (w *mobileWindow) SetClientSize(width, height int) error {
	return unsupported("mobile", "set client size")
}

func (w *mobileWindow) SetPosition(x, y int) error {
	return unsupported("mobile", "set position")
}

func (w *mobileWindow) SetTitle(title string) error {
	// there is no title bar, the title is silently dropped
	return nil
}

func (w *mobileWindow) SetBorderless(borderless bool) error {
	return unsupported("mobile", "set borderless")
}

func (w *mobileWindow) SetResizable(resizable bool) error {
	return unsupported("mobile", "set resizable")
}

func (w *mobileWindow) SetFloating(floating bool) error {
	return unsupported("mobile", "set floating")
}

func (w *mobileWindow) EnterFullscreen(monitor Monitor, mode *DisplayMode) error {
	if mode != nil {
		return unsupported("mobile", "hardware display mode switch")
	}

	// apps always cover the whole screen
	return nil
}

func (w *mobileWindow) ExitFullscreen() error {
	return nil
}

func (w *mobileWindow) screen() Monitor {
	current := DisplayMode{Width: w.bounds.Width, Height: w.bounds.Height, RefreshRate: 60}

	return Monitor{
		Name:     "screen",
		Bounds:   w.bounds,
		WorkArea: w.bounds,
		Current:  current,
		Modes:    []DisplayMode{current},
	}
}

func (w *mobileWindow) CurrentMonitor() (Monitor, error) {
	return w.screen(), nil
}

func (w *mobileWindow) Monitors() ([]Monitor, error) {
	return []Monitor{w.screen()}, nil
}

func (w *mobileWindow) FrameInsets() Insets {
	return Insets{}
}

func (w *mobileWindow) ResetCursor() error {
	return nil
}

func (w *mobileWindow) SetIcon(icon image.Image) error {
	return unsupported("mobile", "set icon")
}

func (w *mobileWindow) Close() {
	w.closed = true
}
