package game

import (
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/pinchcam/camera"
	"github.com/pthm-cable/pinchcam/config"
	"github.com/pthm-cable/pinchcam/gesture"
	"github.com/pthm-cable/pinchcam/renderer"
	"github.com/pthm-cable/pinchcam/scene"
	"github.com/pthm-cable/pinchcam/telemetry"
	"github.com/pthm-cable/pinchcam/ui"
)

// Options configures a Game.
type Options struct {
	LogStats      bool                              // Log window and perf stats via slog
	OutputDir     string                            // CSV output directory (empty = disabled)
	Headless      bool                              // No window; input comes from Script
	Script        *gesture.Script                   // Scripted input (required in headless mode)
	RecordPath    string                            // Write live pointer input here as a gesture script on Unload
	StatsCallback func(stats telemetry.WindowStats) // Called after each stats window (optional)
}

// Game wires the gesture tracker, the camera motion filter and the demo scene.
type Game struct {
	cfg *config.Config

	tracker *gesture.Tracker
	filter  *camera.MotionFilter
	host    camera.Host
	rlHost  *raylibHost    // nil in headless mode
	view    *camera.Camera // Mirrors the filtered pose for culling and overlays

	input      *touchBackend
	player     *gesture.Player
	recordPath string

	scene    *scene.Scene
	renderer *renderer.SceneRenderer
	hud      *ui.HUD

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	statsCallback func(stats telemetry.WindowStats)
	logStats      bool

	// State
	frame      int64
	elapsed    float64 // Seconds of frame time run so far
	headless   bool
	showBounds bool
	recording  bool
	screenW    float32
	screenH    float32
}

// NewGameWithOptions creates a game from the global config.
// In graphical mode the raylib window must already be open.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()
	if opts.Headless && opts.Script == nil {
		return nil, fmt.Errorf("headless mode needs a gesture script")
	}

	g := &Game{
		cfg:           cfg,
		tracker:       gesture.NewTracker(),
		view:          camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, cfg.Derived.StartPos, cfg.Camera.FOV),
		scene:         scene.FromConfig(cfg),
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Derived.DT32),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		statsCallback: opts.StatsCallback,
		logStats:      opts.LogStats,
		headless:      opts.Headless,
		showBounds:    true,
		screenW:       cfg.Derived.ScreenW32,
		screenH:       cfg.Derived.ScreenH32,
	}

	if opts.Headless {
		g.host = g.view
		g.player = gesture.NewPlayer(opts.Script)
	} else {
		g.rlHost = newRaylibHost(cfg.Derived.StartPos, cfg.Camera.FOV)
		g.host = g.rlHost
		g.input = newTouchBackend(g.tracker, cfg.Input)
		if opts.RecordPath != "" {
			g.input.recorder = gesture.NewRecorder()
			g.recordPath = opts.RecordPath
		}
		g.renderer = renderer.NewSceneRenderer()
		g.hud = ui.NewHUD()
		if opts.Script != nil {
			g.player = gesture.NewPlayer(opts.Script)
		}
	}

	filter, err := camera.NewMotionFilter(g.host, g.tracker,
		camera.WithSettings(cfg.Settings()),
		camera.WithLogger(slog.Default().With("component", "camera")),
	)
	if err != nil {
		return nil, fmt.Errorf("creating motion filter: %w", err)
	}
	g.filter = filter

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		filter.Close()
		return nil, err
	}
	g.outputManager = om
	g.recording = om != nil
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	slog.Info("scene ready",
		"landmarks", g.scene.Count(),
		"headless", g.headless,
		"output_dir", om.Dir(),
		"stats_window_frames", g.collector.WindowDurationFrames(),
	)
	return g, nil
}

// Update advances one graphical frame: input, filter, telemetry. Draw closes
// the frame's perf sample.
func (g *Game) Update() {
	dt := rl.GetFrameTime()

	g.perfCollector.BeginFrame()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput()
	if g.player != nil && !g.player.Done() {
		g.player.Step(g.tracker, dt)
	} else {
		g.input.Poll(dt, g.screenH)
	}

	g.step(dt)
}

// UpdateHeadless advances one frame from the gesture script with a fixed dt.
func (g *Game) UpdateHeadless() {
	dt := g.cfg.Derived.DT32

	g.perfCollector.BeginFrame()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.player.Step(g.tracker, dt)

	g.step(dt)
	g.perfCollector.EndFrame()
}

// step runs the filter and telemetry for one frame. Input has already been fed to the tracker.
func (g *Game) step(dt float32) {
	g.perfCollector.StartPhase(telemetry.PhaseFilter)
	g.filter.Update(dt)
	g.syncView()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.frame++
	g.elapsed += float64(dt)
	g.recordFrame(dt)
	g.flushTelemetry()
}

// syncView copies the filtered pose into the software camera used for culling.
func (g *Game) syncView() {
	if g.host == g.view {
		return
	}
	g.view.SetPosition(g.filter.Position())
	g.view.SetFieldOfView(g.filter.FieldOfView())
}

// Recenter snaps the camera back to its configured start pose.
func (g *Game) Recenter() {
	start := g.cfg.Derived.StartPos
	g.filter.Recenter(mgl32.Vec2{start.X(), start.Y()}, g.cfg.Camera.FOV)
	g.syncView()
	slog.Info("camera recentered", "frame", g.frame)
}

// Frame returns the number of frames run so far.
func (g *Game) Frame() int64 { return g.frame }

// Done reports whether scripted input has run out.
func (g *Game) Done() bool { return g.player != nil && g.player.Done() }

// Filter returns the camera motion filter.
func (g *Game) Filter() *camera.MotionFilter { return g.filter }

// Unload releases the filter subscriptions, writes any recorded input and
// closes telemetry output.
func (g *Game) Unload() {
	g.filter.Close()
	if g.renderer != nil {
		g.renderer.Unload()
	}
	if g.recordPath != "" {
		if err := g.writeRecording(); err != nil {
			slog.Error("failed to write gesture recording", "path", g.recordPath, "error", err)
		}
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// writeRecording saves the live pointer input captured so far.
func (g *Game) writeRecording() error {
	script, err := g.input.recorder.Script()
	if err != nil {
		return err
	}
	f, err := os.Create(g.recordPath)
	if err != nil {
		return fmt.Errorf("creating recording: %w", err)
	}
	if err := gesture.WriteScript(f, script.Events()); err != nil {
		f.Close()
		return err
	}
	slog.Info("gesture recording written", "path", g.recordPath, "frames", script.Frames())
	return f.Close()
}
