package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pinchcam/config"
	"github.com/pthm-cable/pinchcam/game"
	"github.com/pthm-cable/pinchcam/gesture"
)

// settleSeconds is how long a headless run keeps going after its script ends,
// so the camera can finish snapping back.
const settleSeconds = 2

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics (requires -script)")
	scriptPath := flag.String("script", "", "Gesture script CSV (frame,finger,x,y) to play back")
	recordPath := flag.String("record", "", "Write live pointer input to this gesture script CSV on exit")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	var script *gesture.Script
	if *scriptPath != "" {
		var err error
		script, err = loadScript(*scriptPath)
		if err != nil {
			slog.Error("failed to load script", "path", *scriptPath, "error", err)
			os.Exit(1)
		}
	}

	opts := game.Options{
		LogStats:   *logStats,
		OutputDir:  *outputDir,
		Headless:   *headless,
		Script:     script,
		RecordPath: *recordPath,
	}

	if *headless {
		g, err := game.NewGameWithOptions(opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		settle := int64(settleSeconds * cfg.Screen.TargetFPS)
		slog.Info("starting headless run",
			"script_frames", script.Frames(),
			"max_frames", *maxFrames,
		)

		var doneAt int64 = -1
		for {
			g.UpdateHeadless()

			if *maxFrames > 0 && g.Frame() >= int64(*maxFrames) {
				slog.Info("max frames reached", "frame", g.Frame())
				break
			}
			if doneAt < 0 && g.Done() {
				doneAt = g.Frame()
			}
			if doneAt >= 0 && g.Frame()-doneAt >= settle {
				break
			}
		}

		f := g.Filter()
		pos := f.Position()
		slog.Info("headless run complete",
			"frames", g.Frame(),
			"x", pos.X(),
			"y", pos.Y(),
			"fov", f.FieldOfView(),
		)
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "pinchcam")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxFrames > 0 && g.Frame() >= int64(*maxFrames) {
			break
		}
	}
}

func loadScript(path string) (*gesture.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gesture.LoadScript(f)
}
