//go:build js

package glimpse

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"syscall/js"

	"github.com/oliverbestmann/xenon/glm"
)

func init() {
	Register(jsBackend{})
}

type jsBackend struct{}

func (jsBackend) Name() string {
	return "js"
}

type jsListener struct {
	target js.Value
	event  string
	fn     js.Func
}

type jsWindow struct {
	canvas    js.Value
	listeners []jsListener
	queue     []Event

	width, height int
	closed        bool
}

func (jsBackend) CreateWindow(cfg WindowConfig) (NativeWindow, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", cfg.Title)

	canvas.Set("style", "width:100vw; height:100vh")

	// focusable, so that it receives key events
	canvas.Set("tabIndex", 0)

	win := &jsWindow{
		canvas: canvas,
	}

	win.configureInput()
	win.resizeCanvas()

	return win, nil
}

func (w *jsWindow) listen(target js.Value, event string, handler func(ev js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler(args[0])
		return nil
	})

	target.Call("addEventListener", event, fn)
	w.listeners = append(w.listeners, jsListener{target: target, event: event, fn: fn})
}

func (w *jsWindow) configureInput() {
	window := js.Global()

	w.listen(w.canvas, "keydown", func(ev js.Value) {
		if ev.Get("repeat").Bool() {
			return
		}

		code := ev.Get("code").String()
		w.queue = append(w.queue, KeyPressed{Key: TranslateDOMKey(code)})
		w.queue = DOMText(ev.Get("key").String(), w.queue)

		// keep the browser from scrolling or leaving the page
		ev.Call("preventDefault")
	})

	w.listen(w.canvas, "keyup", func(ev js.Value) {
		code := ev.Get("code").String()
		w.queue = append(w.queue, KeyReleased{Key: TranslateDOMKey(code)})
	})

	w.listen(w.canvas, "mousemove", func(ev js.Value) {
		ratio := window.Get("devicePixelRatio").Float()

		w.queue = append(w.queue, MouseMoved{
			X: float32(ev.Get("offsetX").Float() * ratio),
			Y: float32(ev.Get("offsetY").Float() * ratio),
		})
	})

	w.listen(w.canvas, "mousedown", func(ev js.Value) {
		if button, ok := domMouseButton(ev.Get("button").Int()); ok {
			w.queue = append(w.queue, MouseButtonDown{Button: button})
		}

		w.canvas.Call("focus")
	})

	w.listen(w.canvas, "mouseup", func(ev js.Value) {
		if button, ok := domMouseButton(ev.Get("button").Int()); ok {
			w.queue = append(w.queue, MouseButtonUp{Button: button})
		}
	})

	w.listen(w.canvas, "contextmenu", func(ev js.Value) {
		ev.Call("preventDefault")
	})

	w.listen(w.canvas, "wheel", func(ev js.Value) {
		ev.Call("preventDefault")

		w.queue = append(w.queue, DOMScroll(
			ev.Get("deltaX").Float(),
			ev.Get("deltaY").Float(),
			ev.Get("deltaMode").Int(),
		))
	})

	touchHandler := func(phase TouchPhase) func(ev js.Value) {
		return func(ev js.Value) {
			ev.Call("preventDefault")

			ratio := window.Get("devicePixelRatio").Float()
			rect := w.canvas.Call("getBoundingClientRect")
			left, top := rect.Get("left").Float(), rect.Get("top").Float()

			touches := ev.Get("changedTouches")
			for idx := range touches.Length() {
				touch := touches.Index(idx)

				w.queue = append(w.queue, Touch{
					ID:    int64(touch.Get("identifier").Int()),
					Phase: phase,
					X:     float32((touch.Get("clientX").Float() - left) * ratio),
					Y:     float32((touch.Get("clientY").Float() - top) * ratio),
				})
			}
		}
	}

	w.listen(w.canvas, "touchstart", touchHandler(TouchPressed))
	w.listen(w.canvas, "touchmove", touchHandler(TouchMoved))
	w.listen(w.canvas, "touchend", touchHandler(TouchReleased))
	w.listen(w.canvas, "touchcancel", touchHandler(TouchCancelled))

	w.listen(window, "focus", func(ev js.Value) {
		w.queue = append(w.queue, FocusGained{})
	})

	w.listen(window, "blur", func(ev js.Value) {
		w.queue = append(w.queue, FocusLost{})
	})

	w.listen(window, "gamepadconnected", func(ev js.Value) {
		gamepad := ev.Get("gamepad")
		w.queue = append(w.queue, ControllerAdded{
			ID:   gamepad.Get("index").Int(),
			Name: gamepad.Get("id").String(),
		})
	})

	w.listen(window, "gamepaddisconnected", func(ev js.Value) {
		w.queue = append(w.queue, ControllerRemoved{ID: ev.Get("gamepad").Get("index").Int()})
	})
}

func domMouseButton(button int) (MouseButton, bool) {
	switch button {
	case 0:
		return MouseButtonLeft, true
	case 1:
		return MouseButtonMiddle, true
	case 2:
		return MouseButtonRight, true
	case 3:
		return MouseButtonX1, true
	case 4:
		return MouseButtonX2, true
	default:
		return 0, false
	}
}

func (w *jsWindow) PollEvents(dst []Event) []Event {
	dst = append(dst, w.queue...)
	w.queue = w.queue[:0]
	return dst
}

// Run calls step from requestAnimationFrame until it returns an error. It
// blocks the calling goroutine for the lifetime of the page.
func (w *jsWindow) Run(step func() error) error {
	helper := js.Global().Call("eval", `({
        async run(runOnce) {
            while (true) {
                await new Promise(resolve => requestAnimationFrame(resolve))
                if (!runOnce()) {
                    break
                }
            }
        }
	})`)

	done := make(chan error, 1)

	stepWrapper := func(this js.Value, args []js.Value) any {
		if w.closed {
			done <- nil
			return false
		}

		w.resizeCanvas()

		if err := step(); err != nil {
			if errors.Is(err, ErrStop) {
				err = nil
			}

			done <- err
			return false
		}

		return true
	}

	fn := js.FuncOf(stepWrapper)
	defer fn.Release()

	helper.Call("run", fn)

	return <-done
}

// resizeCanvas matches the canvas backing store to its size on screen.
func (w *jsWindow) resizeCanvas() {
	vv := js.Global().Get("visualViewport")
	viewWidth := vv.Get("width").Float()
	viewHeight := vv.Get("height").Float()

	ratio := js.Global().Get("devicePixelRatio").Float()

	width := int(viewWidth * ratio)
	height := int(viewHeight * ratio)

	if width == w.width && height == w.height {
		return
	}

	w.width, w.height = width, height

	w.canvas.Set("width", width)
	w.canvas.Set("height", height)

	w.queue = append(w.queue, Resized{Width: width, Height: height})
}

func (w *jsWindow) Show() error {
	w.canvas.Call("focus")
	return nil
}

func (w *jsWindow) ClientBounds() glm.Recti {
	return glm.Recti{Width: w.width, Height: w.height}
}

func (w *jsWindow) SetClientSize(width, height int) error {
	// the canvas always fills the page
	return unsupported("js", "set client size")
}

func (w *jsWindow) SetPosition(x, y int) error {
	return unsupported("js", "set position")
}

func (w *jsWindow) SetTitle(title string) error {
	js.Global().Get("document").Set("title", title)
	return nil
}

func (w *jsWindow) SetBorderless(borderless bool) error {
	return unsupported("js", "set borderless")
}

func (w *jsWindow) SetResizable(resizable bool) error {
	return unsupported("js", "set resizable")
}

func (w *jsWindow) SetFloating(floating bool) error {
	return unsupported("js", "set floating")
}

func (w *jsWindow) EnterFullscreen(monitor Monitor, mode *DisplayMode) error {
	if mode != nil {
		return unsupported("js", "hardware display mode switch")
	}

	w.canvas.Call("requestFullscreen")
	return nil
}

func (w *jsWindow) ExitFullscreen() error {
	document := js.Global().Get("document")
	if !document.Get("fullscreenElement").IsNull() {
		document.Call("exitFullscreen")
	}

	return nil
}

func (w *jsWindow) screen() Monitor {
	screen := js.Global().Get("screen")
	ratio := js.Global().Get("devicePixelRatio").Float()

	width := int(screen.Get("width").Float() * ratio)
	height := int(screen.Get("height").Float() * ratio)
	availWidth := int(screen.Get("availWidth").Float() * ratio)
	availHeight := int(screen.Get("availHeight").Float() * ratio)

	current := DisplayMode{Width: width, Height: height, RefreshRate: 60}

	return Monitor{
		Name:     "screen",
		Bounds:   glm.Recti{Width: width, Height: height},
		WorkArea: glm.Recti{Width: availWidth, Height: availHeight},
		Current:  current,
		Modes:    []DisplayMode{current},
	}
}

func (w *jsWindow) CurrentMonitor() (Monitor, error) {
	return w.screen(), nil
}

func (w *jsWindow) Monitors() ([]Monitor, error) {
	return []Monitor{w.screen()}, nil
}

func (w *jsWindow) FrameInsets() Insets {
	return Insets{}
}

func (w *jsWindow) ResetCursor() error {
	w.canvas.Get("style").Set("cursor", "default")
	return nil
}

// SetIcon replaces the favicon of the page.
func (w *jsWindow) SetIcon(icon image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, icon); err != nil {
		return fmt.Errorf("encode icon: %w", err)
	}

	document := js.Global().Get("document")

	link := document.Call("querySelector", "link[rel~='icon']")
	if link.IsNull() {
		link = document.Call("createElement", "link")
		link.Set("rel", "icon")
		document.Get("head").Call("appendChild", link)
	}

	link.Set("href", "data:image/png;base64,"+base64.StdEncoding.EncodeToString(buf.Bytes()))
	return nil
}

func (w *jsWindow) Close() {
	if w.closed {
		return
	}

	w.closed = true

	for _, listener := range w.listeners {
		listener.target.Call("removeEventListener", listener.event, listener.fn)
		listener.fn.Release()
	}

	w.listeners = nil
	w.canvas.Call("remove")
}
