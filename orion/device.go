package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/xenon/glm"
)

// PresentationParameters is the part of the graphics device configuration
// that is kept consistent with the window.
type PresentationParameters struct {
	BackBufferWidth  int
	BackBufferHeight int

	IsFullScreen       bool
	HardwareModeSwitch bool
}

// DeviceListener receives the lifecycle notifications of the graphics
// device. A reset is always announced by OnDeviceResetting, followed by the
// change of the back buffer and then OnDeviceReset.
type DeviceListener interface {
	OnDeviceCreated()
	OnDeviceDisposing()
	OnDeviceResetting()
	OnDeviceReset()
}

// GraphicsDeviceManager owns the presentation parameters of a game. The
// Preferred fields are applied with ApplyChanges.
type GraphicsDeviceManager struct {
	window *GameWindow

	PreferredBackBufferWidth  int
	PreferredBackBufferHeight int
	IsFullScreen              bool
	HardwareModeSwitch        bool

	params   PresentationParameters
	viewport glm.Recti

	listeners handlers[func(DeviceListener)]

	created  bool
	disposed bool
}

// NewGraphicsDeviceManager registers a device manager with loop. Only one
// manager can be registered per loop.
func NewGraphicsDeviceManager(loop *Loop) (*GraphicsDeviceManager, error) {
	if loop == nil {
		return nil, ErrNilGame
	}

	if loop.device != nil {
		return nil, ErrDeviceManagerExists
	}

	if loop.window == nil {
		return nil, ErrNilWindow
	}

	bounds := loop.window.ClientBounds()

	m := &GraphicsDeviceManager{
		PreferredBackBufferWidth:  bounds.Width,
		PreferredBackBufferHeight: bounds.Height,
		HardwareModeSwitch:        true,
	}

	loop.device = m
	return m, nil
}

// AddListener registers a listener for device notifications.
func (m *GraphicsDeviceManager) AddListener(listener DeviceListener) (remove func()) {
	return m.listeners.add(func(call func(DeviceListener)) {
		call(listener)
	})
}

func (m *GraphicsDeviceManager) PresentationParameters() PresentationParameters {
	return m.params
}

// Viewport covers the full back buffer after every reset.
func (m *GraphicsDeviceManager) Viewport() glm.Recti {
	return m.viewport
}

// ApplyChanges applies the preferred settings to the window. Changes made
// while the window is drawing or switching modes are applied afterward.
func (m *GraphicsDeviceManager) ApplyChanges() error {
	if !m.created {
		// picked up when the device is created
		return nil
	}

	return m.window.requestChange(m.apply)
}

// ToggleFullScreen flips IsFullScreen and applies the change.
func (m *GraphicsDeviceManager) ToggleFullScreen() error {
	m.IsFullScreen = !m.IsFullScreen
	return m.ApplyChanges()
}

func (m *GraphicsDeviceManager) apply() error {
	mode := ScreenMode{
		FullScreen:         m.IsFullScreen,
		HardwareModeSwitch: m.HardwareModeSwitch,
		Width:              m.PreferredBackBufferWidth,
		Height:             m.PreferredBackBufferHeight,
	}

	if err := m.window.applyScreenMode(mode); err != nil {
		return fmt.Errorf("apply screen mode: %w", err)
	}

	m.params.IsFullScreen = mode.FullScreen
	m.params.HardwareModeSwitch = mode.HardwareModeSwitch
	return nil
}

// create attaches the manager to the window and applies the preferred
// settings. The window is not running yet, so no resets are sent.
func (m *GraphicsDeviceManager) create(window *GameWindow) error {
	if m.created {
		return nil
	}

	m.window = window
	window.device = m

	bounds := window.ClientBounds()
	m.params = PresentationParameters{
		BackBufferWidth:  bounds.Width,
		BackBufferHeight: bounds.Height,
	}

	if err := m.apply(); err != nil {
		return err
	}

	bounds = window.ClientBounds()
	m.params.BackBufferWidth = bounds.Width
	m.params.BackBufferHeight = bounds.Height
	m.viewport = glm.Recti{Width: bounds.Width, Height: bounds.Height}

	m.created = true

	slog.Info("Created graphics device",
		slog.Int("width", bounds.Width),
		slog.Int("height", bounds.Height),
		slog.Bool("fullscreen", m.params.IsFullScreen),
	)

	m.notify(DeviceListener.OnDeviceCreated)
	return nil
}

// reset resizes the back buffer. changed runs between the resetting and
// the reset notification.
func (m *GraphicsDeviceManager) reset(width, height int, changed func()) {
	m.notify(DeviceListener.OnDeviceResetting)

	m.params.BackBufferWidth = width
	m.params.BackBufferHeight = height
	m.viewport = glm.Recti{Width: width, Height: height}

	changed()

	m.notify(DeviceListener.OnDeviceReset)
}

func (m *GraphicsDeviceManager) dispose() {
	if !m.created || m.disposed {
		return
	}

	m.disposed = true
	m.notify(DeviceListener.OnDeviceDisposing)
}

func (m *GraphicsDeviceManager) notify(fn func(DeviceListener)) {
	m.listeners.emit(fn)
}
