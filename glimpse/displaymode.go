package glimpse

import (
	"log/slog"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/xenon/glm"
)

// ClosestDisplayMode returns the mode of modes that is closest to the
// requested size. Among equally close modes the one with the highest refresh
// rate wins. It returns false if modes is empty.
func ClosestDisplayMode(modes []DisplayMode, width, height int) (DisplayMode, bool) {
	var best DisplayMode
	bestScore := -1

	for _, mode := range modes {
		score := abs(mode.Width-width) + abs(mode.Height-height)

		switch {
		case bestScore < 0, score < bestScore:
		case score == bestScore && mode.RefreshRate > best.RefreshRate:
		default:
			continue
		}

		best = mode
		bestScore = score
	}

	return best, bestScore >= 0
}

type displayModeKey struct {
	monitor       string
	width, height int
}

// DisplayModeSelector caches the display mode picked for a monitor and a
// requested size. Querying the mode list is slow on some native layers and
// happens on every fullscreen toggle.
type DisplayModeSelector struct {
	cache *lru.Cache[displayModeKey, DisplayMode]
}

func NewDisplayModeSelector(size int) *DisplayModeSelector {
	cache, err := lru.New[displayModeKey, DisplayMode](size)
	if err != nil {
		panic(err)
	}

	return &DisplayModeSelector{cache: cache}
}

// Select returns the display mode of monitor closest to the requested size.
func (s *DisplayModeSelector) Select(monitor Monitor, width, height int) (DisplayMode, bool) {
	key := displayModeKey{monitor: monitor.Name, width: width, height: height}

	if mode, ok := s.cache.Get(key); ok {
		return mode, true
	}

	mode, ok := ClosestDisplayMode(monitor.Modes, width, height)
	if !ok {
		return DisplayMode{}, false
	}

	slog.Debug("Selected display mode",
		slog.String("monitor", monitor.Name),
		slog.String("mode", mode.String()),
	)

	s.cache.Add(key, mode)
	return mode, true
}

// Purge drops all cached selections, e.g. after monitors were connected or
// disconnected.
func (s *DisplayModeSelector) Purge() {
	s.cache.Purge()
}

func abs(value int) int {
	if value < 0 {
		return -value
	}

	return value
}

// monitorShowing returns the monitor that shows the largest part of bounds.
// Without any overlap the first monitor is returned.
func monitorShowing(monitors []Monitor, bounds glm.Recti) (Monitor, bool) {
	if len(monitors) == 0 {
		return Monitor{}, false
	}

	best := monitors[0]
	bestArea := 0

	for _, monitor := range monitors {
		overlap := monitor.Bounds.Intersect(bounds)
		if area := overlap.Width * overlap.Height; area > bestArea {
			best = monitor
			bestArea = area
		}
	}

	return best, true
}
