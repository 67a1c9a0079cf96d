package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/pinchcam/camera"
	"github.com/pthm-cable/pinchcam/gesture"
)

func TestDefaultsMatchFilterDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}
	if got, want := cfg.Settings(), camera.DefaultSettings(); got != want {
		t.Errorf("embedded defaults %+v differ from filter defaults %+v", got, want)
	}
	if cfg.Derived.DT32 <= 0 || cfg.Derived.StartPos.Z() != cfg.Camera.Z {
		t.Errorf("derived values not computed: %+v", cfg.Derived)
	}
}

func TestOverlayOnlyChangesGivenKeys(t *testing.T) {
	cfg, err := Parse([]byte("pinch:\n  sensitivity: 2\ninput:\n  hover: enabled\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pinch.Sensitivity != 2 {
		t.Errorf("expected sensitivity 2, got %v", cfg.Pinch.Sensitivity)
	}
	if cfg.Pinch.Range.Max != 50 || cfg.Pinch.Back != 10 {
		t.Errorf("untouched pinch keys changed: %+v", cfg.Pinch)
	}
	if cfg.Input.Hover != gesture.HoverEnabled {
		t.Errorf("expected hover enabled, got %v", cfg.Input.Hover)
	}
}

func TestParseRejectsDegenerateRange(t *testing.T) {
	_, err := Parse([]byte("pinch:\n  range: {min: 40, max: 40}\n"))
	if !errors.Is(err, camera.ErrInvalidSettings) {
		t.Errorf("expected camera.ErrInvalidSettings, got %v", err)
	}
}

func TestParseRejectsBadHost(t *testing.T) {
	cases := []string{
		"screen:\n  width: 0\n",
		"screen:\n  target_fps: 0\n",
		"camera:\n  fov: 190\n",
		"camera:\n  z: -1\n",
		"scene:\n  spacing: 0\n",
		"scene:\n  spacing: .inf\n",
		"camera:\n  fov: .nan\n",
		"camera:\n  x: .nan\n",
		"telemetry:\n  stats_window: .inf\n",
	}
	for _, doc := range cases {
		if _, err := Parse([]byte(doc)); !errors.Is(err, ErrInvalid) {
			t.Errorf("%q: expected ErrInvalid, got %v", doc, err)
		}
	}
}

func TestParseRejectsNonFiniteTuning(t *testing.T) {
	cases := []string{
		"swipe:\n  damping: .nan\n",
		"pinch:\n  damping: .inf\n",
		"pinch:\n  sensitivity: .nan\n",
		"swipe:\n  min_area: {x_min: -.inf}\n",
	}
	for _, doc := range cases {
		if _, err := Parse([]byte(doc)); !errors.Is(err, camera.ErrInvalidSettings) {
			t.Errorf("%q: expected camera.ErrInvalidSettings, got %v", doc, err)
		}
	}
}

func TestParseRejectsUnknownHover(t *testing.T) {
	if _, err := Parse([]byte("input:\n  hover: maybe\n")); err == nil {
		t.Error("expected error for unknown hover mode")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg, err := Parse([]byte("swipe:\n  back: 5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if back.Settings() != cfg.Settings() {
		t.Errorf("settings changed on roundtrip: %+v vs %+v", back.Settings(), cfg.Settings())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSceneBoundCoversSwipeAreas(t *testing.T) {
	cfg := Default()
	b := cfg.Derived.SceneBound
	if b.XMin > -40-cfg.Scene.Margin || b.YMax < 30+cfg.Scene.Margin {
		t.Errorf("scene bound %+v does not cover the swipe areas", b)
	}
}
