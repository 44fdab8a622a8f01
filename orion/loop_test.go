package orion

import (
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/oliverbestmann/xenon/glimpse"
)

type manualClock struct {
	now   time.Time
	slept time.Duration
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Unix(1_000_000, 0)}
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Sleep(d time.Duration) {
	c.slept += d
	c.now = c.now.Add(d)
}

func (c *manualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type testGame struct {
	loop *Loop

	initialized int
	updates     []GameTime
	draws       int
	exiting     int

	onInitialize func(loop *Loop) error
	onUpdate     func(time GameTime) error
	onDraw       func() error
}

func (g *testGame) Initialize(loop *Loop) error {
	g.loop = loop
	g.initialized++

	if g.onInitialize != nil {
		return g.onInitialize(loop)
	}

	return nil
}

func (g *testGame) Update(time GameTime) error {
	g.updates = append(g.updates, time)

	if g.onUpdate != nil {
		return g.onUpdate(time)
	}

	return nil
}

func (g *testGame) Draw(time GameTime) error {
	g.draws++

	if g.onDraw != nil {
		return g.onDraw()
	}

	return nil
}

func (g *testGame) OnExiting() {
	g.exiting++
}

type testSetup struct {
	native *glimpse.HeadlessWindow
	window *GameWindow
	loop   *Loop
	device *GraphicsDeviceManager
	clock  *manualClock
	game   *testGame
}

func newTestSetup(t *testing.T, opts LoopOptions) *testSetup {
	t.Helper()
	return newTestSetupOn(t, opts)
}

// newTestSetupOn is newTestSetup with a custom set of headless monitors.
func newTestSetupOn(t *testing.T, opts LoopOptions, monitors ...glimpse.Monitor) *testSetup {
	t.Helper()

	native := glimpse.NewHeadlessWindow(glimpse.WindowConfig{
		Title:     "test",
		Width:     800,
		Height:    600,
		Resizable: true,
		OpenGL:    true,
	}, monitors...)

	window, err := NewGameWindow(native, WindowOptions{Title: "test", Resizable: true})
	if err != nil {
		t.Fatal(err)
	}

	clock := newManualClock()
	opts.Clock = clock

	game := &testGame{}

	loop, err := NewLoop(game, window, opts)
	if err != nil {
		t.Fatal(err)
	}

	device, err := NewGraphicsDeviceManager(loop)
	if err != nil {
		t.Fatal(err)
	}

	return &testSetup{
		native: native,
		window: window,
		loop:   loop,
		device: device,
		clock:  clock,
		game:   game,
	}
}

// start initializes the loop and runs its first frame.
func (s *testSetup) start(t *testing.T) {
	t.Helper()

	if err := s.loop.RunOneFrame(); err != nil {
		t.Fatal(err)
	}

	if s.loop.State() != LoopRunning {
		t.Fatalf("expected the loop to run, got %s", s.loop.State())
	}
}

func (s *testSetup) frame(t *testing.T) {
	t.Helper()

	if err := s.loop.RunOneFrame(); err != nil {
		t.Fatal(err)
	}
}

func TestLoopFirstFrame(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	if s.game.initialized != 1 || len(s.game.updates) != 1 || s.game.draws != 1 {
		t.Fatalf("expected one initialize, update and draw, got %d, %d, %d",
			s.game.initialized, len(s.game.updates), s.game.draws)
	}

	if s.clock.slept != DefaultTargetElapsedTime {
		t.Fatalf("expected the loop to sleep for one step, slept %s", s.clock.slept)
	}

	if !s.native.Visible() || s.window.State() != WindowRunning {
		t.Fatalf("expected a visible running window")
	}

	if s.native.Presented() != 1 {
		t.Fatalf("expected one presented frame, got %d", s.native.Presented())
	}
}

func TestCatchUpIsBounded(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("updates per frame are bounded by the clamp", prop.ForAll(
		func(spikeMillis int64) bool {
			s := newTestSetup(t, LoopOptions{})
			s.start(t)

			spike := time.Duration(spikeMillis) * time.Millisecond
			updatesBefore := len(s.game.updates)
			totalBefore := s.game.updates[updatesBefore-1].TotalGameTime
			sleptBefore := s.clock.slept

			s.clock.Advance(spike)
			s.frame(t)

			updates := s.game.updates[updatesBefore:]
			if len(updates) == 0 {
				return false
			}

			maxUpdates := int(DefaultMaxElapsedTime / DefaultTargetElapsedTime)
			if len(updates) > maxUpdates {
				return false
			}

			elapsed := spike + s.clock.slept - sleptBefore
			simulated := updates[len(updates)-1].TotalGameTime - totalBefore

			return simulated <= elapsed
		},
		gen.Int64Range(0, 10_000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCatchUpAfterSpike(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	s.clock.Advance(10 * DefaultTargetElapsedTime)
	s.frame(t)

	updates := s.game.updates[1:]
	if len(updates) != 10 {
		t.Fatalf("expected 10 updates, got %d", len(updates))
	}

	for _, update := range updates {
		if update.ElapsedGameTime != DefaultTargetElapsedTime || !update.IsRunningSlowly {
			t.Fatalf("unexpected game time %+v", update)
		}
	}

	if s.game.draws != 2 || !s.loop.IsRunningSlowly() {
		t.Fatalf("expected one draw per frame and a slow loop")
	}

	// a long pause is clamped
	s.clock.Advance(time.Hour)
	s.frame(t)

	if count := len(s.game.updates) - 11; count != 30 {
		t.Fatalf("expected 30 updates after the clamp, got %d", count)
	}
}

func TestLongTargetStepStillUpdates(t *testing.T) {
	s := newTestSetup(t, LoopOptions{TargetElapsedTime: time.Second})
	s.start(t)

	for range 5 {
		s.clock.Advance(2 * time.Second)
		s.frame(t)
	}

	if len(s.game.updates) != 6 {
		t.Fatalf("expected one update per frame, got %d", len(s.game.updates))
	}

	for _, update := range s.game.updates {
		if update.ElapsedGameTime != time.Second {
			t.Fatalf("unexpected game time %+v", update)
		}
	}
}

func TestVariableTimeStep(t *testing.T) {
	s := newTestSetup(t, LoopOptions{VariableTimeStep: true})
	s.start(t)

	s.clock.Advance(33 * time.Millisecond)
	s.frame(t)

	last := s.game.updates[len(s.game.updates)-1]
	if last.ElapsedGameTime != 33*time.Millisecond || last.IsRunningSlowly {
		t.Fatalf("unexpected game time %+v", last)
	}

	if s.loop.IsFixedTimeStep() {
		t.Fatalf("expected a variable time step loop")
	}
}

func TestExitCounter(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.loop.Exit()
		}()
	}

	wg.Wait()

	updates := len(s.game.updates)
	s.clock.Advance(time.Second)
	s.frame(t)

	if s.loop.State() != LoopExiting {
		t.Fatalf("expected the loop to exit, got %s", s.loop.State())
	}

	if len(s.game.updates) != updates {
		t.Fatalf("no update must run after exit was requested")
	}

	s.loop.Dispose()
	s.loop.Dispose()

	if s.game.exiting != 1 {
		t.Fatalf("expected OnExiting to run once, ran %d times", s.game.exiting)
	}

	if s.loop.State() != LoopStopped || s.loop.Window() != nil || !s.native.Closed() {
		t.Fatalf("expected a stopped loop with a closed window")
	}
}

func TestExitDuringCatchUp(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	s.game.onUpdate = func(GameTime) error {
		s.loop.Exit()
		return nil
	}

	draws := s.game.draws
	updates := len(s.game.updates)

	s.clock.Advance(10 * DefaultTargetElapsedTime)
	s.frame(t)

	if len(s.game.updates) != updates+1 || s.game.draws != draws {
		t.Fatalf("expected a single update and no draw after exit")
	}
}

func TestDisposeReleasesDevice(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})

	recorder := &deviceRecorder{}
	s.device.AddListener(recorder)

	s.start(t)
	s.loop.Dispose()
	s.loop.Dispose()

	expected := []string{"created", "disposing"}
	if !slices.Equal(recorder.events, expected) {
		t.Fatalf("expected %v, got %v", expected, recorder.events)
	}
}

type gatedGame struct {
	testGame
	allowUpdate, allowDraw bool
}

func (g *gatedGame) BeforeUpdate(GameTime) bool {
	return g.allowUpdate
}

func (g *gatedGame) BeforeDraw(GameTime) bool {
	return g.allowDraw
}

func TestGates(t *testing.T) {
	native := glimpse.NewHeadlessWindow(glimpse.WindowConfig{Width: 320, Height: 200})
	window, _ := NewGameWindow(native, WindowOptions{})

	game := &gatedGame{}
	clock := newManualClock()

	loop, err := NewLoop(game, window, LoopOptions{Clock: clock})
	if err != nil {
		t.Fatal(err)
	}

	if err := loop.RunOneFrame(); err != nil {
		t.Fatal(err)
	}

	if len(game.updates) != 0 || game.draws != 0 {
		t.Fatalf("closed gates must skip update and draw")
	}

	game.allowUpdate = true
	game.allowDraw = true

	clock.Advance(DefaultTargetElapsedTime)
	if err := loop.RunOneFrame(); err != nil {
		t.Fatal(err)
	}

	if len(game.updates) != 1 || game.draws != 1 {
		t.Fatalf("open gates must run update and draw")
	}

	if loop.DeviceManager() == nil {
		t.Fatalf("expected a default device manager")
	}
}

func TestSuppressDraw(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	s.loop.SuppressDraw()
	s.clock.Advance(DefaultTargetElapsedTime)
	s.frame(t)

	if s.game.draws != 1 {
		t.Fatalf("expected the draw to be suppressed, got %d draws", s.game.draws)
	}

	s.clock.Advance(DefaultTargetElapsedTime)
	s.frame(t)

	if s.game.draws != 2 {
		t.Fatalf("expected drawing to resume, got %d draws", s.game.draws)
	}
}

func TestResetElapsedTime(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	s.clock.Advance(200 * time.Millisecond)
	s.loop.ResetElapsedTime()

	updates := len(s.game.updates)
	s.frame(t)

	if len(s.game.updates) != updates+1 {
		t.Fatalf("expected a single update after reset, got %d", len(s.game.updates)-updates)
	}
}

func TestTargetFramesPerSecond(t *testing.T) {
	s := newTestSetup(t, LoopOptions{TargetElapsedTime: time.Second / 30})

	if fps := s.loop.TargetFramesPerSecond(); fps < 29.999 || fps > 30.001 {
		t.Fatalf("expected 30 fps, got %f", fps)
	}
}

func TestUpdateError(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	failure := errors.New("broken")
	s.game.onUpdate = func(GameTime) error { return failure }

	s.clock.Advance(DefaultTargetElapsedTime)
	if err := s.loop.RunOneFrame(); !errors.Is(err, failure) {
		t.Fatalf("expected the update error, got %v", err)
	}
}

func TestRun(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})

	s.game.onUpdate = func(GameTime) error {
		if len(s.game.updates) == 3 {
			s.loop.Exit()
		}

		return nil
	}

	if err := s.loop.Run(); err != nil {
		t.Fatal(err)
	}

	if len(s.game.updates) != 3 || s.game.exiting != 1 {
		t.Fatalf("expected three updates and one exit, got %d, %d", len(s.game.updates), s.game.exiting)
	}

	if s.loop.State() != LoopStopped || !s.native.Closed() {
		t.Fatalf("expected the loop to be stopped")
	}

	if err := s.loop.Run(); err == nil {
		t.Fatalf("expected an error when running a stopped loop")
	}
}

func TestCloseRequestExits(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	var closing int
	s.window.OnClosing(func() { closing++ })

	s.native.Inject(glimpse.CloseRequested{})
	s.frame(t)
	s.frame(t)

	if closing != 1 || s.loop.State() != LoopExiting {
		t.Fatalf("expected the close request to exit the loop")
	}
}

func TestInactiveWindowSleeps(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	s.native.Inject(glimpse.FocusLost{})

	slept := s.clock.slept
	s.clock.Advance(DefaultTargetElapsedTime)
	s.frame(t)

	if s.clock.slept-slept != DefaultInactiveSleepTime {
		t.Fatalf("expected an inactive sleep, slept %s", s.clock.slept-slept)
	}
}

func TestConstructorErrors(t *testing.T) {
	native := glimpse.NewHeadlessWindow(glimpse.WindowConfig{Width: 10, Height: 10})
	window, _ := NewGameWindow(native, WindowOptions{})

	if _, err := NewGameWindow(nil, WindowOptions{}); !errors.Is(err, ErrNilWindow) {
		t.Fatalf("expected ErrNilWindow, got %v", err)
	}

	if _, err := NewLoop(nil, window, LoopOptions{}); !errors.Is(err, ErrNilGame) {
		t.Fatalf("expected ErrNilGame, got %v", err)
	}

	if _, err := NewLoop(&testGame{}, nil, LoopOptions{}); !errors.Is(err, ErrNilWindow) {
		t.Fatalf("expected ErrNilWindow, got %v", err)
	}

	opts := LoopOptions{TargetElapsedTime: time.Second, MaxElapsedTime: 100 * time.Millisecond}
	if _, err := NewLoop(&testGame{}, window, opts); !errors.Is(err, ErrInvalidTimeStep) {
		t.Fatalf("expected ErrInvalidTimeStep, got %v", err)
	}

	if _, err := NewGraphicsDeviceManager(nil); !errors.Is(err, ErrNilGame) {
		t.Fatalf("expected ErrNilGame, got %v", err)
	}

	loop, _ := NewLoop(&testGame{}, window, LoopOptions{})

	if _, err := NewGraphicsDeviceManager(loop); err != nil {
		t.Fatal(err)
	}

	if _, err := NewGraphicsDeviceManager(loop); !errors.Is(err, ErrDeviceManagerExists) {
		t.Fatalf("expected ErrDeviceManagerExists, got %v", err)
	}
}

func TestStateNames(t *testing.T) {
	if LoopRunning.String() != "LoopRunning" || WindowFullscreenTransition.String() != "WindowFullscreenTransition" {
		t.Fatalf("unexpected names %s, %s", LoopRunning, WindowFullscreenTransition)
	}

	if LoopState(42).String() != "LoopState(42)" {
		t.Fatalf("unexpected name %s", LoopState(42))
	}
}
