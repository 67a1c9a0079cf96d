package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_PhaseBreakdown(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 3; i++ {
		pc.BeginFrame()
		pc.StartPhase(PhaseInput)
		time.Sleep(time.Millisecond)
		pc.StartPhase(PhaseFilter)
		time.Sleep(2 * time.Millisecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.AvgWork < 3*time.Millisecond {
		t.Errorf("expected avg work >= 3ms, got %v", stats.AvgWork)
	}
	if stats.PhaseAvg[PhaseInput] <= 0 {
		t.Error("expected input phase to be recorded")
	}
	if stats.PhaseAvg[PhaseFilter] <= stats.PhaseAvg[PhaseInput] {
		t.Errorf("expected filter (%v) > input (%v)", stats.PhaseAvg[PhaseFilter], stats.PhaseAvg[PhaseInput])
	}
	if stats.MinWork > stats.MaxWork {
		t.Errorf("min %v > max %v", stats.MinWork, stats.MaxWork)
	}
	if stats.WorkFPS <= 0 {
		t.Error("expected positive work fps")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(2)

	for i := 0; i < 5; i++ {
		pc.BeginFrame()
		pc.StartPhase(PhaseRender)
		pc.EndFrame()
	}

	if pc.sampleCount != 2 {
		t.Errorf("expected sample count capped at 2, got %d", pc.sampleCount)
	}
	if pc.writeIndex != 1 {
		t.Errorf("expected write index 1, got %d", pc.writeIndex)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()
	if stats.AvgWork != 0 {
		t.Error("expected zero avg work for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_PresentTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.RecordPresent()
	time.Sleep(16 * time.Millisecond)
	pc.RecordPresent()

	stats := pc.Stats()
	if stats.PresentInterval < 15*time.Millisecond {
		t.Errorf("expected present interval >= 15ms, got %v", stats.PresentInterval)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("expected FPS in (0, 70], got %v", stats.FPS)
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	s := PerfStats{
		AvgWork:  2 * time.Millisecond,
		PhasePct: map[string]float64{PhaseFilter: 40, PhaseRender: 60},
	}
	row := s.ToCSV(600)
	if row.WindowEnd != 600 || row.AvgWorkUS != 2000 {
		t.Errorf("unexpected row %+v", row)
	}
	if row.FilterPct != 40 || row.RenderPct != 60 || row.InputPct != 0 {
		t.Errorf("unexpected phase pcts %+v", row)
	}
}
