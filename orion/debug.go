package orion

import (
	"log/slog"
	"runtime"
	"time"
)

type frame struct {
	Total  time.Duration
	Update time.Duration
	Draw   time.Duration
}

// FrameProfile summarizes the recent frames of a loop.
type FrameProfile struct {
	Frames        int
	FPS           float64
	AverageUpdate time.Duration
	AverageDraw   time.Duration

	HeapObjects uint64
	HeapInUse   uint64
	NumGC       uint32
	LastGCPause time.Duration
}

// frameProfiler keeps the timings of the last ten seconds of frames and
// logs a summary whenever the ring buffer wrapped around.
type frameProfiler struct {
	frameCount int
	frames     [60 * 10]frame

	timeStartFrame  time.Time
	timeStartUpdate time.Time
	timeStartDraw   time.Time
	timeEndFrame    time.Time

	// sum of all updates of the current frame
	update time.Duration

	mem runtime.MemStats
}

func (d *frameProfiler) startFrame(now time.Time) {
	if !d.timeStartFrame.IsZero() {
		var draw time.Duration
		if !d.timeStartDraw.Before(d.timeStartFrame) {
			draw = d.timeEndFrame.Sub(d.timeStartDraw)
		}

		d.frames[d.frameCount%len(d.frames)] = frame{
			Total:  now.Sub(d.timeStartFrame),
			Update: d.update,
			Draw:   draw,
		}

		d.frameCount += 1

		if d.frameCount%len(d.frames) == 0 {
			d.report()
		}
	}

	d.timeStartFrame = now
	d.update = 0
}

func (d *frameProfiler) startUpdate(now time.Time) {
	d.timeStartUpdate = now
}

func (d *frameProfiler) endUpdate(now time.Time) {
	d.update += now.Sub(d.timeStartUpdate)
}

func (d *frameProfiler) startDraw(now time.Time) {
	d.timeStartDraw = now
}

func (d *frameProfiler) endFrame(now time.Time) {
	d.timeEndFrame = now
}

func (d *frameProfiler) report() {
	runtime.ReadMemStats(&d.mem)

	profile := d.profile()

	slog.Debug("Frame profile",
		slog.Float64("fps", profile.FPS),
		slog.Duration("update", profile.AverageUpdate),
		slog.Duration("draw", profile.AverageDraw),
		slog.Uint64("heapObjects", profile.HeapObjects),
		slog.Uint64("heapInUse", profile.HeapInUse),
		slog.Duration("gcPause", profile.LastGCPause),
	)
}

func (d *frameProfiler) profile() FrameProfile {
	var frameCount int
	var total, update, draw time.Duration

	for _, frame := range d.frames {
		if frame.Total > 0 {
			frameCount += 1
			total += frame.Total
			update += frame.Update
			draw += frame.Draw
		}
	}

	lastCycle := (d.mem.NumGC + 255) % 256

	profile := FrameProfile{
		Frames:      d.frameCount,
		HeapObjects: d.mem.HeapObjects,
		HeapInUse:   d.mem.HeapInuse,
		NumGC:       d.mem.NumGC,
		LastGCPause: time.Duration(d.mem.PauseNs[lastCycle]),
	}

	if frameCount == 0 {
		return profile
	}

	n := time.Duration(frameCount)

	profile.FPS = 1.0 / (total / n).Seconds()
	profile.AverageUpdate = update / n
	profile.AverageDraw = draw / n

	return profile
}
