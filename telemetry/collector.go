package telemetry

import (
	"math"

	"github.com/pthm-cable/pinchcam/camera"
)

// Collector accumulates frame samples within fixed windows and produces WindowStats.
type Collector struct {
	windowDurationSec    float64
	windowDurationFrames int64

	// Current window tracking
	windowStartFrame int64

	speeds            []float64
	fovRates          []float64
	maxOvershoot      float64
	maxFOVOvershoot   float64
	releases          int
	snapBacks         int
	interactingFrames int
	frames            int

	last           FrameSample
	hasLast        bool
	wasInteracting bool
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in seconds
// dt: nominal seconds per frame, used only to size the window in frames
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	framesPerWindow := int64(windowDurationSec / float64(dt))
	if framesPerWindow < 1 {
		framesPerWindow = 1
	}
	return &Collector{
		windowDurationSec:    windowDurationSec,
		windowDurationFrames: framesPerWindow,
	}
}

// Record adds a frame sample taken dt seconds after the previous one. hard is
// the swipe rect at the sample's zoom and fovRange the hard field of view
// range; overshoot is measured against them.
func (c *Collector) Record(s FrameSample, dt float32, hard camera.Rect, fovRange camera.ScalarRange) {
	c.frames++
	if s.Interacting {
		c.interactingFrames++
	}

	if c.hasLast && dt > 0 {
		dx := float64(s.X - c.last.X)
		dy := float64(s.Y - c.last.Y)
		c.speeds = append(c.speeds, math.Hypot(dx, dy)/float64(dt))
		c.fovRates = append(c.fovRates, math.Abs(float64(s.FOV-c.last.FOV))/float64(dt))
	}

	over := Overshoot(s.X, s.Y, hard)
	if over > c.maxOvershoot {
		c.maxOvershoot = over
	}
	fovOver := fovOvershoot(s.FOV, fovRange)
	if fovOver > c.maxFOVOvershoot {
		c.maxFOVOvershoot = fovOver
	}

	if c.wasInteracting && !s.Interacting {
		c.releases++
		if over > 0 || fovOver > 0 {
			c.snapBacks++
		}
	}
	c.wasInteracting = s.Interacting
	c.last = s
	c.hasLast = true
}

// ShouldFlush reports whether the window ending at frame is complete.
func (c *Collector) ShouldFlush(frame int64) bool {
	return frame-c.windowStartFrame >= c.windowDurationFrames
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(frame int64) WindowStats {
	speedMean, speedStd, speedP90 := Summarize(c.speeds)
	fovMean, _, _ := Summarize(c.fovRates)

	var frac float64
	if c.frames > 0 {
		frac = float64(c.interactingFrames) / float64(c.frames)
	}

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   frame,
		TimeSec:          c.last.Time,

		Frames:              c.frames,
		InteractingFraction: frac,
		Releases:            c.releases,
		SnapBacks:           c.snapBacks,

		SpeedMean:       speedMean,
		SpeedStd:        speedStd,
		SpeedP90:        speedP90,
		FOVRateMean:     fovMean,
		MaxOvershoot:    c.maxOvershoot,
		MaxFOVOvershoot: c.maxFOVOvershoot,

		EndX:   c.last.X,
		EndY:   c.last.Y,
		EndFOV: c.last.FOV,
	}

	// Reset for next window; the last sample carries over for speed continuity.
	c.windowStartFrame = frame
	c.speeds = c.speeds[:0]
	c.fovRates = c.fovRates[:0]
	c.maxOvershoot = 0
	c.maxFOVOvershoot = 0
	c.releases = 0
	c.snapBacks = 0
	c.interactingFrames = 0
	c.frames = 0

	return stats
}

// WindowDurationFrames returns the number of frames per window.
func (c *Collector) WindowDurationFrames() int64 {
	return c.windowDurationFrames
}

// Overshoot returns how far (x, y) lies outside r, or 0 inside it.
func Overshoot(x, y float32, r camera.Rect) float64 {
	dx := math.Max(0, math.Max(float64(r.XMin-x), float64(x-r.XMax)))
	dy := math.Max(0, math.Max(float64(r.YMin-y), float64(y-r.YMax)))
	return math.Hypot(dx, dy)
}

func fovOvershoot(fov float32, r camera.ScalarRange) float64 {
	return math.Max(0, math.Max(float64(r.Min-fov), float64(fov-r.Max)))
}
