package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated camera statistics for a window of frames.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	TimeSec          float64 `csv:"time"`

	// Input
	Frames              int     `csv:"frames"`
	InteractingFraction float64 `csv:"interacting_frac"`
	Releases            int     `csv:"releases"`
	SnapBacks           int     `csv:"snap_backs"` // Releases made outside the hard bounds

	// Motion (world units / second)
	SpeedMean   float64 `csv:"speed_mean"`
	SpeedStd    float64 `csv:"speed_std"`
	SpeedP90    float64 `csv:"speed_p90"`
	FOVRateMean float64 `csv:"fov_rate_mean"` // Degrees / second

	// Elastic overshoot past the hard limits
	MaxOvershoot    float64 `csv:"max_overshoot"`
	MaxFOVOvershoot float64 `csv:"max_fov_overshoot"`

	// Pose at window end
	EndX   float32 `csv:"end_x"`
	EndY   float32 `csv:"end_y"`
	EndFOV float32 `csv:"end_fov"`
}

// Summarize returns the mean, standard deviation and 90th percentile of values.
// All three are 0 for an empty slice.
func Summarize(values []float64) (mean, std, p90 float64) {
	switch len(values) {
	case 0:
		return 0, 0, 0
	case 1:
		return values[0], 0, values[0]
	}
	mean, std = stat.MeanStdDev(values, nil)

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, std, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartFrame),
		slog.Int64("window_end", s.WindowEndFrame),
		slog.Float64("time", s.TimeSec),
		slog.Int("frames", s.Frames),
		slog.Float64("interacting_frac", s.InteractingFraction),
		slog.Int("releases", s.Releases),
		slog.Int("snap_backs", s.SnapBacks),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("fov_rate_mean", s.FOVRateMean),
		slog.Float64("max_overshoot", s.MaxOvershoot),
		slog.Float64("max_fov_overshoot", s.MaxFOVOvershoot),
		slog.Float64("end_x", float64(s.EndX)),
		slog.Float64("end_y", float64(s.EndY)),
		slog.Float64("end_fov", float64(s.EndFOV)),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
