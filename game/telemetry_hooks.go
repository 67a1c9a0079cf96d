package game

import (
	"log/slog"

	"github.com/pthm-cable/pinchcam/telemetry"
)

// recordFrame samples the filter after its update. dt is this frame's
// duration and has already been added to g.elapsed.
func (g *Game) recordFrame(dt float32) {
	sample := telemetry.Sample(g.frame, g.elapsed, g.tracker.FingerCount(), g.filter)
	g.collector.Record(sample, dt, g.filter.HardBounds(), g.filter.Settings().PinchRange)

	if g.recording {
		if err := g.outputManager.WriteFrame(sample); err != nil {
			slog.Error("failed to write frame", "error", err)
			g.recording = false
		}
	}
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.frame) {
		return
	}

	stats := g.collector.Flush(g.frame)
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteWindow(stats); err != nil {
			slog.Error("failed to write window stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
