package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oliverbestmann/xenon/glimpse"
)

const (
	DefaultTargetElapsedTime = time.Second / 60
	DefaultMaxElapsedTime    = 500 * time.Millisecond
	DefaultInactiveSleepTime = 20 * time.Millisecond
)

// Clock is the time source of a loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

type LoopOptions struct {
	// VariableTimeStep runs one Update per frame with the real elapsed
	// time instead of fixed steps of TargetElapsedTime.
	VariableTimeStep bool

	TargetElapsedTime time.Duration

	// MaxElapsedTime bounds the time a single frame can catch up on. Longer
	// pauses are dropped. It defaults to the larger of
	// DefaultMaxElapsedTime and TargetElapsedTime and must not be smaller
	// than TargetElapsedTime.
	MaxElapsedTime time.Duration

	// InactiveSleepTime is slept after every frame while the window does
	// not have the focus.
	InactiveSleepTime time.Duration

	Clock Clock
}

func (opts LoopOptions) withDefaults() LoopOptions {
	if opts.TargetElapsedTime <= 0 {
		opts.TargetElapsedTime = DefaultTargetElapsedTime
	}

	if opts.MaxElapsedTime <= 0 {
		opts.MaxElapsedTime = max(DefaultMaxElapsedTime, opts.TargetElapsedTime)
	}

	if opts.InactiveSleepTime < 0 {
		opts.InactiveSleepTime = 0
	} else if opts.InactiveSleepTime == 0 {
		opts.InactiveSleepTime = DefaultInactiveSleepTime
	}

	if opts.Clock == nil {
		opts.Clock = systemClock{}
	}

	return opts
}

// Loop drives a Game: it initializes it once, then calls Update and Draw
// for every frame of the native window until Exit is called.
type Loop struct {
	game   Game
	window *GameWindow
	input  *Input
	device *GraphicsDeviceManager
	clock  Clock
	opts   LoopOptions

	state LoopState

	// incremented by Exit from any goroutine
	exitRequests atomic.Int32
	exitingOnce  sync.Once

	previousTick time.Time
	accumulated  time.Duration
	gameTime     GameTime
	suppressDraw bool

	stats    FrameTimes
	profiler frameProfiler
}

func NewLoop(game Game, window *GameWindow, opts LoopOptions) (*Loop, error) {
	if game == nil {
		return nil, ErrNilGame
	}

	if window == nil {
		return nil, ErrNilWindow
	}

	opts = opts.withDefaults()

	if opts.MaxElapsedTime < opts.TargetElapsedTime {
		return nil, fmt.Errorf("max elapsed time %s below target %s: %w",
			opts.MaxElapsedTime, opts.TargetElapsedTime, ErrInvalidTimeStep)
	}

	l := &Loop{
		game:   game,
		window: window,
		input:  newInput(window.Input()),
		clock:  opts.Clock,
		opts:   opts,
	}

	window.OnClosing(l.Exit)

	return l, nil
}

func (l *Loop) Game() Game {
	return l.game
}

// Window returns the game window, or nil after Dispose.
func (l *Loop) Window() *GameWindow {
	return l.window
}

func (l *Loop) Input() *Input {
	return l.input
}

// DeviceManager returns the registered device manager. A default manager is
// created during initialization if none was registered.
func (l *Loop) DeviceManager() *GraphicsDeviceManager {
	return l.device
}

func (l *Loop) State() LoopState {
	return l.state
}

func (l *Loop) Stats() FrameTimes {
	return l.stats
}

func (l *Loop) Profile() FrameProfile {
	return l.profiler.profile()
}

func (l *Loop) IsFixedTimeStep() bool {
	return !l.opts.VariableTimeStep
}

func (l *Loop) TargetElapsedTime() time.Duration {
	return l.opts.TargetElapsedTime
}

// TargetFramesPerSecond is the update rate of the fixed time step loop.
func (l *Loop) TargetFramesPerSecond() float64 {
	return 1 / l.opts.TargetElapsedTime.Seconds()
}

// IsRunningSlowly reports whether the last frame had to catch up.
func (l *Loop) IsRunningSlowly() bool {
	return l.gameTime.IsRunningSlowly
}

// Exit asks the loop to stop. It is safe to call from any goroutine and
// more than once; the loop stops within one iteration.
func (l *Loop) Exit() {
	l.exitRequests.Add(1)
}

func (l *Loop) exitRequested() bool {
	return l.exitRequests.Load() > 0
}

// ResetElapsedTime drops the time accumulated since the last frame, e.g.
// after loading a level, so that the loop does not try to catch up.
func (l *Loop) ResetElapsedTime() {
	l.previousTick = l.clock.Now()
	l.accumulated = 0
	l.gameTime.ElapsedGameTime = 0
	l.gameTime.IsRunningSlowly = false
}

// SuppressDraw skips the Draw call of the current frame.
func (l *Loop) SuppressDraw() {
	l.suppressDraw = true
}

// Run initializes the game and hands control to the native window until
// the game exits. The loop is disposed when Run returns.
func (l *Loop) Run() error {
	if l.state != LoopNotStarted {
		return fmt.Errorf("loop cannot run in state %s", l.state)
	}

	defer l.Dispose()

	if err := l.initialize(); err != nil {
		return err
	}

	err := l.window.Native().Run(func() error {
		if err := l.Tick(); err != nil {
			return err
		}

		if l.state != LoopRunning {
			return glimpse.ErrStop
		}

		return nil
	})

	if err != nil && !errors.Is(err, glimpse.ErrStop) {
		return fmt.Errorf("run loop: %w", err)
	}

	return nil
}

// RunOneFrame initializes the game if needed and runs a single frame.
func (l *Loop) RunOneFrame() error {
	if l.state == LoopNotStarted {
		if err := l.initialize(); err != nil {
			return err
		}
	}

	return l.Tick()
}

func (l *Loop) initialize() error {
	l.state = LoopInitializing

	if l.device == nil {
		if _, err := NewGraphicsDeviceManager(l); err != nil {
			return fmt.Errorf("create device manager: %w", err)
		}
	}

	if err := l.device.create(l.window); err != nil {
		return fmt.Errorf("create graphics device: %w", err)
	}

	if err := l.game.Initialize(l); err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	if loader, ok := l.game.(ContentLoader); ok {
		if err := loader.LoadContent(); err != nil {
			return fmt.Errorf("load content: %w", err)
		}
	}

	l.window.markRunning()

	if err := l.window.Show(); err != nil {
		return err
	}

	l.previousTick = l.clock.Now()
	l.state = LoopRunning

	slog.Info("Game loop started",
		slog.Bool("fixedTimeStep", l.IsFixedTimeStep()),
		slog.Duration("targetElapsedTime", l.opts.TargetElapsedTime),
	)

	return nil
}

// Tick runs one frame: it dispatches the native events, runs the pending
// updates and draws once.
func (l *Loop) Tick() error {
	if l.state != LoopRunning {
		return nil
	}

	if l.exitRequested() {
		l.beginExit()
		return nil
	}

	if err := l.window.ProcessEvents(); err != nil {
		return err
	}

	l.advance()
	if l.stats.Tick(l.previousTick) {
		slog.Debug("Frame stats",
			slog.Float64("fps", l.stats.FPS()),
			slog.Duration("max", l.stats.MaxDuration),
			slog.Int("updates", l.stats.Updates),
		)
	}

	l.profiler.startFrame(l.previousTick)

	var err error
	if l.opts.VariableTimeStep {
		err = l.variableStep()
	} else {
		err = l.fixedStep()
	}

	if err != nil {
		return err
	}

	l.window.Input().NextFrame()
	l.profiler.endFrame(l.clock.Now())

	if !l.window.IsActive() && !l.exitRequested() {
		l.clock.Sleep(l.opts.InactiveSleepTime)
	}

	return nil
}

// advance adds the time since the previous tick, clamped to
// MaxElapsedTime.
func (l *Loop) advance() {
	now := l.clock.Now()

	l.accumulated += now.Sub(l.previousTick)
	l.previousTick = now

	l.accumulated = min(l.accumulated, l.opts.MaxElapsedTime)
}

func (l *Loop) fixedStep() error {
	target := l.opts.TargetElapsedTime

	if l.accumulated < target {
		// sleep for the rest of the step and measure once more
		l.clock.Sleep(target - l.accumulated)
		l.advance()

		if l.accumulated < target {
			return nil
		}
	}

	pending := int(l.accumulated / target)
	l.gameTime.IsRunningSlowly = pending > 1

	var steps int
	for l.accumulated >= target && !l.exitRequested() {
		l.accumulated -= target
		steps++

		l.gameTime.ElapsedGameTime = target
		l.gameTime.TotalGameTime += target

		if err := l.update(); err != nil {
			return err
		}
	}

	l.stats.Updates = steps

	if steps == 0 {
		return nil
	}

	l.gameTime.ElapsedGameTime = target * time.Duration(steps)
	return l.draw()
}

func (l *Loop) variableStep() error {
	elapsed := l.accumulated
	l.accumulated = 0

	l.gameTime.ElapsedGameTime = elapsed
	l.gameTime.TotalGameTime += elapsed
	l.gameTime.IsRunningSlowly = false
	l.stats.Updates = 1

	if err := l.update(); err != nil {
		return err
	}

	return l.draw()
}

func (l *Loop) update() error {
	l.input.update()

	if gate, ok := l.game.(UpdateGate); ok && !gate.BeforeUpdate(l.gameTime) {
		return nil
	}

	l.profiler.startUpdate(l.clock.Now())
	defer func() { l.profiler.endUpdate(l.clock.Now()) }()

	if err := l.game.Update(l.gameTime); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}

func (l *Loop) draw() error {
	if l.suppressDraw {
		l.suppressDraw = false
		return nil
	}

	if l.exitRequested() || !l.window.IsDrawAllowed() {
		return nil
	}

	if gate, ok := l.game.(DrawGate); ok && !gate.BeforeDraw(l.gameTime) {
		return nil
	}

	l.profiler.startDraw(l.clock.Now())

	l.window.beginDraw()

	err := l.window.ContextLock().Render(func() error {
		return l.game.Draw(l.gameTime)
	})

	// screen mode changes requested while drawing are applied now
	if flushErr := l.window.endDraw(); err == nil {
		err = flushErr
	}

	if err != nil {
		return fmt.Errorf("draw game: %w", err)
	}

	return nil
}

func (l *Loop) beginExit() {
	l.state = LoopExiting

	l.exitingOnce.Do(func() {
		slog.Info("Game loop exiting")

		if handler, ok := l.game.(ExitHandler); ok {
			handler.OnExiting()
		}
	})
}

// Dispose releases the graphics device and closes the window. It is safe to
// call Dispose more than once.
func (l *Loop) Dispose() {
	if l.window == nil {
		return
	}

	if l.state == LoopRunning || l.state == LoopExiting {
		l.beginExit()
	}

	if l.device != nil {
		l.device.dispose()
	}

	l.window.Close()
	l.window = nil

	l.state = LoopStopped
}
