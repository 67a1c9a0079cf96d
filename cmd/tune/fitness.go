package main

import (
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/pinchcam/camera"
	"github.com/pthm-cable/pinchcam/config"
	"github.com/pthm-cable/pinchcam/gesture"
)

// Probe gestures, in screen pixels and frames.
const (
	probeFrames   = 20  // Length of the scripted gesture
	dragDistance  = 200 // Pixels moved by the drag probe
	pinchStartGap = 240 // Finger separation at the start of the pinch probe
	pinchEndGap   = 120
	settleEpsilon = 0.05 // World units (swipe) or degrees (pinch)
	maxSettleSec  = 10.0
)

// Targets are the desired settle times in seconds.
type Targets struct {
	Swipe float64
	Pinch float64
}

// SettleTimes are measured settle times in seconds.
type SettleTimes struct {
	Swipe float64
	Pinch float64
}

// FitnessEvaluator runs the filter against scripted gestures and scores how
// close the settle times land to the targets.
type FitnessEvaluator struct {
	params     *ParamVector
	baseConfig *config.Config
	targets    Targets
	log        *slog.Logger

	mu   sync.Mutex
	last SettleTimes
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, baseCfg *config.Config, targets Targets) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		baseConfig: baseCfg,
		targets:    targets,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// LastSettle returns the settle times from the most recent Evaluate call.
func (fe *FitnessEvaluator) LastSettle() SettleTimes {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.last
}

// Evaluate computes fitness for raw parameter values (lower = better):
// the squared error between measured and target settle times.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	st := fe.Measure(cfg)

	fe.mu.Lock()
	fe.last = st
	fe.mu.Unlock()

	ds := st.Swipe - fe.targets.Swipe
	dp := st.Pinch - fe.targets.Pinch
	return ds*ds + dp*dp
}

// Measure runs both probes against cfg in parallel.
func (fe *FitnessEvaluator) Measure(cfg *config.Config) SettleTimes {
	center := mgl32.Vec2{cfg.Derived.ScreenW32 / 2, cfg.Derived.ScreenH32 / 2}
	drag := gesture.DragEvents(0, 0, probeFrames, center, center.Add(mgl32.Vec2{dragDistance, 0}))
	pinch := gesture.PinchEvents(0, probeFrames, center, pinchStartGap, pinchEndGap)

	var st SettleTimes
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		st.Swipe = fe.settleTime(cfg, drag, func(f *camera.MotionFilter) float32 {
			d := f.Focus().Sub(f.Position())
			return mgl32.Vec2{d.X(), d.Y()}.Len()
		})
	}()
	go func() {
		defer wg.Done()
		st.Pinch = fe.settleTime(cfg, pinch, func(f *camera.MotionFilter) float32 {
			return float32(math.Abs(float64(f.FocusFOV() - f.FieldOfView())))
		})
	}()
	wg.Wait()
	return st
}

// settleTime plays events through a fresh filter and returns the seconds
// from the end of the gesture until residual drops below settleEpsilon.
// Runs that never settle score maxSettleSec.
func (fe *FitnessEvaluator) settleTime(cfg *config.Config, events []gesture.ScriptEvent, residual func(*camera.MotionFilter) float32) float64 {
	script, err := gesture.NewScript(events)
	if err != nil {
		return maxSettleSec
	}

	host := camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, cfg.Derived.StartPos, cfg.Camera.FOV)
	tracker := gesture.NewTracker()
	filter, err := camera.NewMotionFilter(host, tracker,
		camera.WithSettings(cfg.Settings()),
		camera.WithLogger(fe.log),
	)
	if err != nil {
		return maxSettleSec
	}
	defer filter.Close()

	dt := cfg.Derived.DT32
	player := gesture.NewPlayer(script)
	for !player.Done() {
		player.Step(tracker, dt)
		filter.Update(dt)
	}

	maxFrames := int(maxSettleSec / float64(dt))
	for frame := 1; frame <= maxFrames; frame++ {
		player.Step(tracker, dt)
		filter.Update(dt)
		if residual(filter) < settleEpsilon {
			return float64(frame) * float64(dt)
		}
	}
	return maxSettleSec
}

// copyConfig returns a shallow copy of the base config; every tuned field is a value.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
