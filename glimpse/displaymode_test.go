package glimpse

import (
	"testing"

	"github.com/oliverbestmann/xenon/glm"
)

func TestClosestDisplayMode(t *testing.T) {
	modes := DefaultHeadlessMonitor.Modes

	cases := []struct {
		name          string
		width, height int
		expected      DisplayMode
	}{
		{"exact", 800, 600, DisplayMode{Width: 800, Height: 600, RefreshRate: 60}},
		{"nearby", 1000, 700, DisplayMode{Width: 1024, Height: 768, RefreshRate: 60}},
		{"highest refresh rate wins", 1920, 1080, DisplayMode{Width: 1920, Height: 1080, RefreshRate: 60}},
		{"larger than every mode", 4000, 3000, DisplayMode{Width: 1920, Height: 1080, RefreshRate: 60}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, ok := ClosestDisplayMode(modes, tc.width, tc.height)
			if !ok || actual != tc.expected {
				t.Fatalf("expected %s, got %s (ok=%t)", tc.expected, actual, ok)
			}
		})
	}

	if _, ok := ClosestDisplayMode(nil, 800, 600); ok {
		t.Fatalf("expected no mode from an empty list")
	}
}

func TestDisplayModeSelectorCaches(t *testing.T) {
	selector := NewDisplayModeSelector(4)

	monitor := DefaultHeadlessMonitor
	first, ok := selector.Select(monitor, 800, 600)
	if !ok || first.Width != 800 {
		t.Fatalf("unexpected selection %s", first)
	}

	// a cached selection survives a change of the mode list
	monitor.Modes = []DisplayMode{{Width: 640, Height: 480, RefreshRate: 60}}
	if cached, _ := selector.Select(monitor, 800, 600); cached != first {
		t.Fatalf("expected cached %s, got %s", first, cached)
	}

	selector.Purge()

	if fresh, _ := selector.Select(monitor, 800, 600); fresh.Width != 640 {
		t.Fatalf("expected a fresh selection after purge, got %s", fresh)
	}

	if _, ok := selector.Select(Monitor{Name: "empty"}, 800, 600); ok {
		t.Fatalf("expected no selection for a monitor without modes")
	}
}

func TestMonitorShowing(t *testing.T) {
	left := Monitor{Index: 0, Name: "left", Bounds: glm.Recti{Width: 1000, Height: 1000}}
	right := Monitor{Index: 1, Name: "right", Bounds: glm.Recti{X: 1000, Width: 1000, Height: 1000}}
	monitors := []Monitor{left, right}

	cases := []struct {
		name     string
		bounds   glm.Recti
		expected string
	}{
		{"fully left", glm.Recti{X: 10, Y: 10, Width: 100, Height: 100}, "left"},
		{"mostly right", glm.Recti{X: 950, Y: 10, Width: 200, Height: 100}, "right"},
		{"off screen", glm.Recti{X: -5000, Y: -5000, Width: 10, Height: 10}, "left"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			monitor, ok := monitorShowing(monitors, tc.bounds)
			if !ok || monitor.Name != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, monitor.Name)
			}
		})
	}

	if _, ok := monitorShowing(nil, glm.Recti{}); ok {
		t.Fatalf("expected no monitor")
	}
}
