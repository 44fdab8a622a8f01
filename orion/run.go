package orion

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/oliverbestmann/xenon/glimpse"
	"github.com/pkg/profile"
)

type RunGameOptions struct {
	// game to run. This is the only field that is required
	Game Game

	// Backend names the windowing backend. Empty selects the preferred
	// backend compiled into the binary. Overridden by XENON_BACKEND.
	Backend string

	WindowWidth  int
	WindowHeight int
	WindowTitle  string
	WindowIcon   image.Image

	Resizable  bool
	Borderless bool
	FullScreen bool

	// BorderlessFullScreen keeps the desktop resolution in fullscreen
	// instead of switching the video mode of the monitor. Overridden by
	// XENON_HARDWARE_MODE_SWITCH.
	BorderlessFullScreen bool

	VariableTimeStep  bool
	TargetElapsedTime time.Duration

	// OpenGL requests a native graphics context for the window.
	OpenGL bool

	Input glimpse.InputOptions

	// LogLevel configures the default logger if not empty. Overridden by
	// XENON_LOG_LEVEL.
	LogLevel string

	// CPUProfile writes a CPU profile into this directory if not empty.
	// Overridden by XENON_CPU_PROFILE.
	CPUProfile string
}

func (opts RunGameOptions) withDefaults() RunGameOptions {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Xenon"
	}

	return opts
}

// withEnvironment applies the XENON_* environment variables.
func (opts RunGameOptions) withEnvironment(getenv func(string) string) (RunGameOptions, error) {
	if value := getenv("XENON_BACKEND"); value != "" {
		opts.Backend = value
	}

	if value := getenv("XENON_LOG_LEVEL"); value != "" {
		opts.LogLevel = value
	}

	if value := getenv("XENON_CPU_PROFILE"); value != "" {
		opts.CPUProfile = value
	}

	if value := getenv("XENON_HARDWARE_MODE_SWITCH"); value != "" {
		hardware, err := strconv.ParseBool(value)
		if err != nil {
			return opts, fmt.Errorf("parse XENON_HARDWARE_MODE_SWITCH: %w", err)
		}

		opts.BorderlessFullScreen = !hardware
	}

	return opts, nil
}

// RunGame creates a window for the game and runs it until it exits.
func RunGame(opts RunGameOptions) error {
	if opts.Game == nil {
		return ErrNilGame
	}

	opts, err := opts.withDefaults().withEnvironment(os.Getenv)
	if err != nil {
		return err
	}

	if opts.LogLevel != "" {
		if err := ConfigureLogging(opts.LogLevel); err != nil {
			return err
		}
	}

	if opts.CPUProfile != "" {
		prof := profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(opts.CPUProfile),
			profile.NoShutdownHook,
		)

		defer prof.Stop()
	}

	backend, err := glimpse.Lookup(opts.Backend)
	if err != nil {
		return fmt.Errorf("select backend: %w", err)
	}

	window, err := CreateGameWindow(backend, glimpse.WindowConfig{
		Title:      opts.WindowTitle,
		Width:      opts.WindowWidth,
		Height:     opts.WindowHeight,
		Resizable:  opts.Resizable,
		Borderless: opts.Borderless,
		OpenGL:     opts.OpenGL,
	}, opts.Input)
	if err != nil {
		return err
	}

	if opts.WindowIcon != nil {
		if err := window.SetIcon(opts.WindowIcon); err != nil {
			slog.Warn("Failed to set window icon", slog.String("err", err.Error()))
		}
	}

	loop, err := NewLoop(opts.Game, window, LoopOptions{
		VariableTimeStep:  opts.VariableTimeStep,
		TargetElapsedTime: opts.TargetElapsedTime,
	})
	if err != nil {
		window.Close()
		return err
	}

	device, err := NewGraphicsDeviceManager(loop)
	if err != nil {
		window.Close()
		return err
	}

	device.IsFullScreen = opts.FullScreen
	device.HardwareModeSwitch = !opts.BorderlessFullScreen

	return loop.Run()
}
