package gesture

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTrackerDeltasAcrossFrames(t *testing.T) {
	tr := NewTracker()

	tr.BeginFrame(0.1)
	tr.Touch(7, mgl32.Vec2{10, 10})
	tr.EndFrame()

	f := tr.Pressed()[0]
	if f.ScreenDelta() != (mgl32.Vec2{}) {
		t.Errorf("new finger should have zero delta, got %v", f.ScreenDelta())
	}

	tr.BeginFrame(0.1)
	tr.Touch(7, mgl32.Vec2{15, 8})
	tr.EndFrame()

	f = tr.Pressed()[0]
	if f.ScreenDelta() != (mgl32.Vec2{5, -2}) {
		t.Errorf("expected delta (5, -2), got %v", f.ScreenDelta())
	}
	if f.StartScreenPosition != (mgl32.Vec2{10, 10}) {
		t.Errorf("expected start (10, 10), got %v", f.StartScreenPosition)
	}
	if f.Age < 0.099 || f.Age > 0.101 {
		t.Errorf("expected age 0.1, got %v", f.Age)
	}
}

func TestTrackerReleasesUnreportedFingers(t *testing.T) {
	tr := NewTracker()
	tr.BeginFrame(0.016)
	tr.Touch(1, mgl32.Vec2{})
	tr.Touch(2, mgl32.Vec2{})
	tr.EndFrame()
	if tr.FingerCount() != 2 {
		t.Fatalf("expected 2 fingers, got %d", tr.FingerCount())
	}

	tr.BeginFrame(0.016)
	tr.Touch(2, mgl32.Vec2{1, 1})
	tr.EndFrame()
	ids := tr.IDs()
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("expected only finger 2 left, got %v", ids)
	}

	tr.BeginFrame(0.016)
	tr.EndFrame()
	if tr.FingerCount() != 0 {
		t.Errorf("expected all fingers released, got %d", tr.FingerCount())
	}
}

func TestTrackerHoverCountsButIsNotDispatched(t *testing.T) {
	tr := NewTracker()
	var updates, gestures int
	tr.OnFingerUpdate(func(Finger) { updates++ })
	tr.OnGesture(func([]Finger) { gestures++ })

	tr.BeginFrame(0.016)
	tr.Hover(mgl32.Vec2{50, 50})
	tr.EndFrame()

	if tr.FingerCount() != 1 {
		t.Errorf("expected hover to count as a finger, got %d", tr.FingerCount())
	}
	if updates != 0 || gestures != 0 {
		t.Errorf("hover alone should not dispatch, got %d updates %d gestures", updates, gestures)
	}

	tr.BeginFrame(0.016)
	tr.Hover(mgl32.Vec2{60, 50})
	tr.Touch(0, mgl32.Vec2{60, 50})
	tr.EndFrame()

	if tr.FingerCount() != 2 {
		t.Errorf("expected hover plus touch, got %d", tr.FingerCount())
	}
	fingers := tr.Fingers()
	if !fingers[len(fingers)-1].Hover {
		t.Error("expected the hover finger last")
	}
	if updates != 1 || gestures != 1 {
		t.Errorf("expected one update and one gesture, got %d and %d", updates, gestures)
	}
}

func TestTrackerDispatchOrder(t *testing.T) {
	tr := NewTracker()
	var log []string
	tr.OnFingerUpdate(func(f Finger) {
		if f.ID == 0 {
			log = append(log, "finger0")
		} else {
			log = append(log, "finger1")
		}
	})
	tr.OnGesture(func(fs []Finger) {
		if len(fs) != 2 {
			t.Errorf("expected 2 fingers in gesture, got %d", len(fs))
		}
		log = append(log, "gesture")
	})

	tr.BeginFrame(0.016)
	tr.Touch(0, mgl32.Vec2{})
	tr.Touch(1, mgl32.Vec2{})
	tr.EndFrame()

	want := []string{"finger0", "finger1", "gesture"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
}

func TestTrackerRemove(t *testing.T) {
	tr := NewTracker()
	var a, b int
	ha := tr.OnFingerUpdate(func(Finger) { a++ })
	hb := tr.OnGesture(func([]Finger) { b++ })
	if ha == hb {
		t.Fatal("handles should be distinct")
	}

	step := func() {
		tr.BeginFrame(0.016)
		tr.Touch(0, mgl32.Vec2{})
		tr.EndFrame()
	}
	step()
	tr.Remove(ha)
	step()
	tr.Remove(hb)
	tr.Remove(hb)
	step()

	if a != 1 || b != 2 {
		t.Errorf("expected 1 finger update and 2 gestures, got %d and %d", a, b)
	}
}

func TestTrackerRemoveDuringDispatchTakesEffectNextFrame(t *testing.T) {
	tr := NewTracker()
	var calls int
	var h Handle
	h = tr.OnGesture(func([]Finger) {
		calls++
		tr.Remove(h)
	})
	var other int
	tr.OnGesture(func([]Finger) { other++ })

	for i := 0; i < 3; i++ {
		tr.BeginFrame(0.016)
		tr.Touch(0, mgl32.Vec2{})
		tr.EndFrame()
	}
	if calls != 1 {
		t.Errorf("expected self-removing handler to run once, got %d", calls)
	}
	if other != 3 {
		t.Errorf("expected other handler every frame, got %d", other)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.BeginFrame(0.016)
	tr.Touch(0, mgl32.Vec2{})
	tr.Hover(mgl32.Vec2{})
	tr.EndFrame()

	tr.Reset()
	if tr.FingerCount() != 0 {
		t.Errorf("expected no fingers after reset, got %d", tr.FingerCount())
	}
}
