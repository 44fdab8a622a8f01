package orion

import (
	"testing"
	"time"
)

func TestFrameTimes(t *testing.T) {
	var stats FrameTimes

	if stats.FPS() != 0 {
		t.Fatalf("expected no fps without frames")
	}

	now := time.Unix(0, 0)

	var reports int
	for range 120 {
		if stats.Tick(now) {
			reports++
		}

		now = now.Add(20 * time.Millisecond)
	}

	if reports != 2 {
		t.Fatalf("expected a report every 60 frames, got %d", reports)
	}

	if fps := stats.FPS(); stats.AverageDuration != 20*time.Millisecond || fps < 49.99 || fps > 50.01 {
		t.Fatalf("unexpected average %s", stats.AverageDuration)
	}
}

func TestFrameProfile(t *testing.T) {
	var profiler frameProfiler

	now := time.Unix(0, 0)
	for range 10 {
		profiler.startFrame(now)
		profiler.startUpdate(now)
		profiler.endUpdate(now.Add(2 * time.Millisecond))
		profiler.startDraw(now.Add(2 * time.Millisecond))
		profiler.endFrame(now.Add(5 * time.Millisecond))

		now = now.Add(10 * time.Millisecond)
	}

	profile := profiler.profile()

	if profile.Frames != 9 {
		t.Fatalf("expected 9 complete frames, got %d", profile.Frames)
	}

	if profile.AverageUpdate != 2*time.Millisecond || profile.AverageDraw != 3*time.Millisecond {
		t.Fatalf("unexpected averages %s, %s", profile.AverageUpdate, profile.AverageDraw)
	}

	if profile.FPS < 99.9 || profile.FPS > 100.1 {
		t.Fatalf("expected 100 fps, got %f", profile.FPS)
	}
}
