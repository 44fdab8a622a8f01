package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/xenon/glimpse"
)

// ScreenMode describes the requested fullscreen state of a window.
type ScreenMode struct {
	FullScreen bool

	// HardwareModeSwitch changes the video mode of the monitor to the mode
	// closest to the back buffer. Otherwise the window covers the monitor at
	// desktop resolution without borders.
	HardwareModeSwitch bool

	// Width and Height are the requested back buffer size.
	Width, Height int
}

// applyScreenMode enters or leaves fullscreen. Changing the size of a
// windowed window resizes it in place.
func (w *GameWindow) applyScreenMode(mode ScreenMode) error {
	if w.native == nil {
		return glimpse.ErrClosed
	}

	if mode.FullScreen || w.fullscreen {
		return w.transition(mode)
	}

	return w.resizeClient(mode.Width, mode.Height)
}

// transition switches between windowed and fullscreen. The order of the
// native calls matters: style changes reset title and resizable flag on
// some layers and the frame must be computed against the monitor as it is
// after the switch.
func (w *GameWindow) transition(mode ScreenMode) error {
	native := w.native

	// 1. snapshot what a style change may reset
	title, resizable := w.title, w.resizable

	// 2. no drawing while the window is in an intermediate state
	previousState := w.state
	drawGate := w.drawGate

	w.state = WindowFullscreenTransition
	w.drawGate = false

	defer func() {
		// 9. back to the prior state
		w.drawGate = drawGate
		w.state = previousState
	}()

	slog.Info("Switch screen mode",
		slog.Bool("fullscreen", mode.FullScreen),
		slog.Bool("hardware", mode.HardwareModeSwitch),
		slog.Int("width", mode.Width),
		slog.Int("height", mode.Height),
	)

	if mode.FullScreen {
		if err := w.enterFullscreen(native, mode, title); err != nil {
			return fmt.Errorf("enter fullscreen: %w", err)
		}
	} else {
		if err := w.exitFullscreen(native, mode, title, resizable); err != nil {
			return fmt.Errorf("exit fullscreen: %w", err)
		}
	}

	// 8. cursor state does not survive style changes on all layers
	return tolerate("reset cursor", native.ResetCursor())
}

func (w *GameWindow) enterFullscreen(native glimpse.NativeWindow, mode ScreenMode, title string) error {
	monitor, err := native.CurrentMonitor()
	if err != nil {
		return fmt.Errorf("query monitor: %w", err)
	}

	// 3. borderless style
	if !w.fullscreen {
		if err := tolerate("set borderless", native.SetBorderless(true)); err != nil {
			return err
		}
	}

	// 4. restore the title
	if err := native.SetTitle(title); err != nil {
		return fmt.Errorf("restore title: %w", err)
	}

	// 5. above all other windows
	if err := tolerate("set floating", native.SetFloating(true)); err != nil {
		return err
	}

	// 6. the target frame is the whole monitor, possibly in another mode
	var displayMode *glimpse.DisplayMode
	if mode.HardwareModeSwitch {
		selected, ok := w.modes.Select(monitor, mode.Width, mode.Height)
		if ok {
			displayMode = &selected
		} else {
			slog.Warn("No display mode available, using desktop fullscreen",
				slog.Int("monitor", monitor.Index),
				slog.String("name", monitor.Name),
			)
		}
	}

	// 7. apply
	if err := native.EnterFullscreen(monitor, displayMode); err != nil {
		return err
	}

	w.fullscreen = true
	w.syncBounds()
	return nil
}

func (w *GameWindow) exitFullscreen(native glimpse.NativeWindow, mode ScreenMode, title string, resizable bool) error {
	if err := native.ExitFullscreen(); err != nil {
		return err
	}

	w.fullscreen = false

	// 3. the windowed border style
	if err := tolerate("set borderless", native.SetBorderless(w.borderless)); err != nil {
		return err
	}

	// 4. title and resizable flag
	if err := w.restoreChrome(title, resizable); err != nil {
		return err
	}

	// 5. normal window level
	if err := tolerate("set floating", native.SetFloating(false)); err != nil {
		return err
	}

	// 6. center on the monitor that showed the fullscreen window. It is
	// queried again, as its resolution may have changed.
	monitor, err := native.CurrentMonitor()
	if err != nil {
		return fmt.Errorf("query monitor: %w", err)
	}

	client := centeredClient(monitor.WorkArea, native.FrameInsets(), mode.Width, mode.Height)

	// 7. apply
	if err := native.SetClientSize(client.Width, client.Height); err != nil {
		return fmt.Errorf("set client size: %w", err)
	}

	if err := tolerate("set position", native.SetPosition(client.X, client.Y)); err != nil {
		return err
	}

	w.syncBounds()
	return nil
}
