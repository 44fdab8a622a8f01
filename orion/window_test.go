package orion

import (
	"image"
	"slices"
	"testing"

	"github.com/oliverbestmann/xenon/glimpse"
	"github.com/oliverbestmann/xenon/glm"
)

type deviceRecorder struct {
	events []string
}

func (r *deviceRecorder) OnDeviceCreated() {
	r.events = append(r.events, "created")
}

func (r *deviceRecorder) OnDeviceDisposing() {
	r.events = append(r.events, "disposing")
}

func (r *deviceRecorder) OnDeviceResetting() {
	r.events = append(r.events, "resetting")
}

func (r *deviceRecorder) OnDeviceReset() {
	r.events = append(r.events, "reset")
}

func TestUserResizeResetsDeviceOnce(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})

	recorder := &deviceRecorder{}
	s.device.AddListener(recorder)

	s.start(t)

	var changed []glm.Recti
	s.window.OnClientSizeChanged(func(bounds glm.Recti) {
		changed = append(changed, bounds)
		recorder.events = append(recorder.events, "changed")
	})

	// both collapse into one resize
	s.native.UserResize(900, 700)
	s.native.UserResize(900, 700)
	s.frame(t)

	// same size again
	s.native.UserResize(900, 700)
	s.frame(t)

	expected := []string{"created", "resetting", "changed", "reset"}
	if !slices.Equal(recorder.events, expected) {
		t.Fatalf("expected %v, got %v", expected, recorder.events)
	}

	if len(changed) != 1 || changed[0].Width != 900 || changed[0].Height != 700 {
		t.Fatalf("unexpected size changes %v", changed)
	}

	params := s.device.PresentationParameters()
	if params.BackBufferWidth != 900 || params.BackBufferHeight != 700 {
		t.Fatalf("unexpected back buffer %dx%d", params.BackBufferWidth, params.BackBufferHeight)
	}

	if viewport := s.device.Viewport(); viewport != (glm.Recti{Width: 900, Height: 700}) {
		t.Fatalf("unexpected viewport %v", viewport)
	}
}

func TestResizeBeforeRunningOnlyUpdatesBookkeeping(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})

	recorder := &deviceRecorder{}
	s.device.AddListener(recorder)

	s.game.onInitialize = func(*Loop) error {
		s.native.UserResize(640, 480)
		return s.window.ProcessEvents()
	}

	s.start(t)

	if !slices.Equal(recorder.events, []string{"created"}) {
		t.Fatalf("expected no reset, got %v", recorder.events)
	}

	params := s.device.PresentationParameters()
	if params.BackBufferWidth != 640 || params.BackBufferHeight != 480 {
		t.Fatalf("unexpected back buffer %dx%d", params.BackBufferWidth, params.BackBufferHeight)
	}
}

func TestApplyChangesResizesWindow(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	var changed int
	s.window.OnClientSizeChanged(func(glm.Recti) { changed++ })

	s.native.ClearCalls()

	s.device.PreferredBackBufferWidth = 1024
	s.device.PreferredBackBufferHeight = 768

	if err := s.device.ApplyChanges(); err != nil {
		t.Fatal(err)
	}

	expectedCalls := []string{"SetClientSize(1024, 768)", "SetPosition(448, 182)"}
	if calls := s.native.Calls(); !slices.Equal(calls, expectedCalls) {
		t.Fatalf("expected %v, got %v", expectedCalls, calls)
	}

	expected := glm.Recti{X: 448, Y: 182, Width: 1024, Height: 768}
	if bounds := s.window.ClientBounds(); bounds != expected {
		t.Fatalf("expected %v, got %v", expected, bounds)
	}

	// the echo of the native window is dropped
	s.frame(t)

	if changed != 1 {
		t.Fatalf("expected one size change, got %d", changed)
	}

	if s.window.Moved() {
		t.Fatalf("centering must not count as a move")
	}
}

func TestMovedWindowIsNotCentered(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	s.native.UserMove(100, 100)
	s.frame(t)

	if !s.window.Moved() {
		t.Fatalf("expected the window to be marked as moved")
	}

	s.device.PreferredBackBufferWidth = 640
	s.device.PreferredBackBufferHeight = 480

	if err := s.device.ApplyChanges(); err != nil {
		t.Fatal(err)
	}

	expected := glm.Recti{X: 100, Y: 100, Width: 640, Height: 480}
	if bounds := s.window.ClientBounds(); bounds != expected {
		t.Fatalf("expected %v, got %v", expected, bounds)
	}
}

func TestSetPositionDisablesCentering(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	if err := s.window.SetPosition(10, 40); err != nil {
		t.Fatal(err)
	}

	s.device.PreferredBackBufferWidth = 320
	s.device.PreferredBackBufferHeight = 200

	if err := s.device.ApplyChanges(); err != nil {
		t.Fatal(err)
	}

	if bounds := s.window.ClientBounds(); bounds.X != 10 || bounds.Y != 40 {
		t.Fatalf("expected the window to stay at 10,40, got %v", bounds)
	}
}

func TestStyleSettersSkipCurrentValue(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	s.native.ClearCalls()

	if err := s.window.SetBorderless(false); err != nil {
		t.Fatal(err)
	}

	if err := s.window.SetAllowUserResizing(true); err != nil {
		t.Fatal(err)
	}

	if calls := s.native.Calls(); len(calls) != 0 {
		t.Fatalf("expected no native calls, got %v", calls)
	}

	if err := s.window.SetBorderless(true); err != nil {
		t.Fatal(err)
	}

	expected := []string{"SetBorderless(true)", `SetTitle("test")`, "SetResizable(true)"}
	if calls := s.native.Calls(); !slices.Equal(calls, expected) {
		t.Fatalf("expected %v, got %v", expected, calls)
	}

	if s.native.Title() != "test" || !s.native.Resizable() || !s.window.IsBorderless() {
		t.Fatalf("expected the chrome to be restored")
	}
}

func TestSetIcon(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})

	if err := s.window.SetIcon(nil); err == nil {
		t.Fatalf("expected an error for a nil icon")
	}

	if err := s.window.SetIcon(image.NewRGBA(image.Rect(0, 0, 16, 16))); err != nil {
		t.Fatal(err)
	}

	if s.native.Icon() == nil {
		t.Fatalf("expected the icon to be set")
	}
}

func TestFocusLossReleasesInput(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	var activated, deactivated int
	s.window.OnActivated(func() { activated++ })
	s.window.OnDeactivated(func() { deactivated++ })

	s.native.Inject(glimpse.KeyPressed{Key: glimpse.KeyA})
	s.clock.Advance(DefaultTargetElapsedTime)
	s.frame(t)

	input := s.loop.Input()
	if !input.IsKeyPressed(glimpse.KeyA) || !input.IsKeyJustPressed(glimpse.KeyA) {
		t.Fatalf("expected A to be pressed")
	}

	s.native.Inject(glimpse.FocusLost{})
	s.clock.Advance(DefaultTargetElapsedTime)
	s.frame(t)

	if input.IsKeyPressed(glimpse.KeyA) || !input.IsKeyJustReleased(glimpse.KeyA) {
		t.Fatalf("expected A to be released on focus loss")
	}

	if deactivated != 1 || s.window.IsActive() {
		t.Fatalf("expected the window to be deactivated")
	}

	s.native.Inject(glimpse.FocusGained{})
	s.clock.Advance(DefaultTargetElapsedTime)
	s.frame(t)

	if activated != 1 || !s.window.IsActive() {
		t.Fatalf("expected the window to be activated")
	}
}

func TestMouseButtons(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	input := s.loop.Input()

	s.native.Inject(glimpse.MouseButtonDown{Button: glimpse.MouseButtonLeft})
	s.clock.Advance(DefaultTargetElapsedTime)
	s.frame(t)

	if !input.IsMouseButtonJustPressed(glimpse.MouseButtonLeft) {
		t.Fatalf("expected the left button to be just pressed")
	}

	s.clock.Advance(DefaultTargetElapsedTime)
	s.frame(t)

	if !input.IsMouseButtonPressed(glimpse.MouseButtonLeft) || input.IsMouseButtonJustPressed(glimpse.MouseButtonLeft) {
		t.Fatalf("expected the left button to be held")
	}

	s.native.Inject(glimpse.MouseButtonUp{Button: glimpse.MouseButtonLeft})
	s.clock.Advance(DefaultTargetElapsedTime)
	s.frame(t)

	if !input.IsMouseButtonJustReleased(glimpse.MouseButtonLeft) {
		t.Fatalf("expected the left button to be just released")
	}
}

func TestOrientationChanged(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	var orientations []glimpse.DisplayOrientation
	s.window.OnOrientationChanged(func(o glimpse.DisplayOrientation) {
		orientations = append(orientations, o)
	})

	s.native.Inject(
		glimpse.Rotated{Orientation: glimpse.OrientationPortrait},
		glimpse.Rotated{Orientation: glimpse.OrientationPortrait},
	)

	s.frame(t)

	if len(orientations) != 1 || s.window.CurrentOrientation() != glimpse.OrientationPortrait {
		t.Fatalf("unexpected orientation changes %v", orientations)
	}
}

func TestClientSizeChangedWithoutDevice(t *testing.T) {
	native := glimpse.NewHeadlessWindow(glimpse.WindowConfig{Width: 400, Height: 300})

	window, err := NewGameWindow(native, WindowOptions{})
	if err != nil {
		t.Fatal(err)
	}

	window.markRunning()

	var changed int
	window.OnClientSizeChanged(func(glm.Recti) { changed++ })

	native.UserResize(300, 200)
	native.UserResize(300, 200)

	if err := window.ProcessEvents(); err != nil {
		t.Fatal(err)
	}

	native.UserResize(300, 200)

	if err := window.ProcessEvents(); err != nil {
		t.Fatal(err)
	}

	if changed != 1 {
		t.Fatalf("expected one size change, got %d", changed)
	}
}

func TestRemoveHandler(t *testing.T) {
	var h handlers[int]

	var calls []int
	remove := h.add(func(v int) { calls = append(calls, v) })
	h.add(func(v int) { calls = append(calls, -v) })

	h.emit(1)
	remove()
	h.emit(2)

	if expected := []int{1, -1, -2}; !slices.Equal(calls, expected) {
		t.Fatalf("expected %v, got %v", expected, calls)
	}
}

func TestCenteredClient(t *testing.T) {
	work := glm.Recti{X: 0, Y: 25, Width: 1920, Height: 1055}
	insets := glimpse.Insets{Left: 1, Top: 28, Right: 1, Bottom: 1}

	cases := []struct {
		name          string
		insets        glimpse.Insets
		width, height int
		expected      glm.Recti
	}{
		{"fits", insets, 800, 600, glm.Recti{X: 560, Y: 266, Width: 800, Height: 600}},
		{"clamped", insets, 4000, 3000, glm.Recti{X: 1, Y: 53, Width: 1918, Height: 1026}},
		{"no decorations", glimpse.Insets{}, 1920, 1055, work},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := centeredClient(work, tc.insets, tc.width, tc.height); actual != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, actual)
			}
		})
	}
}

func TestCloseWindow(t *testing.T) {
	s := newTestSetup(t, LoopOptions{})
	s.start(t)

	s.window.Close()
	s.window.Close()

	if s.window.State() != WindowClosed || s.window.Native() != nil || !s.native.Closed() {
		t.Fatalf("expected a closed window")
	}

	if s.window.IsDrawAllowed() {
		t.Fatalf("a closed window must not draw")
	}

	if err := s.window.SetTitle("x"); err == nil {
		t.Fatalf("expected an error on a closed window")
	}
}

func TestContextLockRender(t *testing.T) {
	native := glimpse.NewHeadlessWindow(glimpse.WindowConfig{Width: 10, Height: 10})
	lock := NewContextLock(native)

	if err := lock.Render(func() error { return ErrNilGame }); err == nil {
		t.Fatalf("expected the draw error")
	}

	if err := lock.Render(func() error { return nil }); err != nil {
		t.Fatal(err)
	}

	if native.Presented() != 1 {
		t.Fatalf("expected only the successful frame to be presented, got %d", native.Presented())
	}

	if err := NewContextLock(nil).Render(func() error { return nil }); err != nil {
		t.Fatal(err)
	}
}
