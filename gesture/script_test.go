package gesture

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const pinchScript = `frame,finger,x,y
0,0,90,100
0,1,110,100
1,0,80,100
1,1,120,100
3,-1,5,5
`

func TestLoadScriptAndPlay(t *testing.T) {
	s, err := LoadScript(strings.NewReader(pinchScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if s.Frames() != 4 {
		t.Fatalf("expected 4 frames, got %d", s.Frames())
	}

	tr := NewTracker()
	var scales []float32
	tr.OnGesture(func(fs []Finger) { scales = append(scales, PinchScale(fs)) })

	p := NewPlayer(s)
	p.Step(tr, 1.0/60)
	p.Step(tr, 1.0/60)
	if len(scales) != 2 || scales[0] != 1 || scales[1] != 2 {
		t.Fatalf("expected pinch scales [1 2], got %v", scales)
	}

	// Frame 2 has no events: both fingers lift.
	p.Step(tr, 1.0/60)
	if tr.FingerCount() != 0 {
		t.Errorf("expected fingers released on an empty frame, got %d", tr.FingerCount())
	}

	// Frame 3 only hovers.
	p.Step(tr, 1.0/60)
	if tr.FingerCount() != 1 || !tr.Fingers()[0].Hover {
		t.Errorf("expected a single hover finger, got %+v", tr.Fingers())
	}
	if !p.Done() || p.Frame() != 4 {
		t.Errorf("expected player done at frame 4, got done=%v frame=%d", p.Done(), p.Frame())
	}
}

func TestLoadScriptRejectsNegativeFrames(t *testing.T) {
	_, err := LoadScript(strings.NewReader("frame,finger,x,y\n-1,0,0,0\n"))
	if err == nil {
		t.Fatal("expected error for negative frame")
	}
}

func TestLoadScriptRejectsGarbage(t *testing.T) {
	_, err := LoadScript(strings.NewReader("frame,finger,x,y\nzero,0,0,0\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNewScriptSortsByFrame(t *testing.T) {
	s, err := NewScript([]ScriptEvent{
		{Frame: 2, Finger: 0},
		{Frame: 0, Finger: 0},
		{Frame: 1, Finger: 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	events := s.Events()
	for i, ev := range events {
		if ev.Frame != i {
			t.Fatalf("events not sorted: %+v", events)
		}
	}
}

func TestDragAndPinchEvents(t *testing.T) {
	drag := DragEvents(3, 10, 4, mgl32.Vec2{0, 0}, mgl32.Vec2{40, 0})
	if len(drag) != 5 || drag[0].Frame != 10 || drag[4].Frame != 14 {
		t.Fatalf("unexpected drag frames %+v", drag)
	}
	if drag[2].X != 20 || drag[2].Finger != 3 {
		t.Errorf("expected midpoint x 20 for finger 3, got %+v", drag[2])
	}

	pinch := PinchEvents(0, 2, mgl32.Vec2{100, 100}, 20, 60)
	var buf bytes.Buffer
	if err := WriteScript(&buf, pinch); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(&buf)
	if err != nil {
		t.Fatal(err)
	}

	tr := NewTracker()
	var last float32
	tr.OnGesture(func(fs []Finger) { last = PinchScale(fs) })
	p := NewPlayer(s)
	p.Step(tr, 0.016)
	p.Step(tr, 0.016)
	// Gap grows 20 -> 40 on the first move.
	if last != 2 {
		t.Errorf("expected pinch scale 2, got %v", last)
	}
}

func TestRecorderReplaysThroughCSV(t *testing.T) {
	rec := NewRecorder()
	rec.Touch(4, mgl32.Vec2{10, 20})
	rec.Hover(mgl32.Vec2{1, 1})
	rec.EndFrame()
	rec.EndFrame() // a frame with nothing pressed
	rec.Touch(4, mgl32.Vec2{15, 20})
	rec.EndFrame()
	if rec.Frames() != 3 {
		t.Fatalf("expected 3 recorded frames, got %d", rec.Frames())
	}

	recorded, err := rec.Script()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteScript(&buf, recorded.Events()); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if s.Frames() != 3 || len(s.Events()) != 3 {
		t.Fatalf("expected 3 frames and 3 events, got %d frames %+v", s.Frames(), s.Events())
	}

	tr := NewTracker()
	p := NewPlayer(s)
	p.Step(tr, 0.016)
	if tr.FingerCount() != 2 {
		t.Errorf("frame 0: expected finger and hover, got %d", tr.FingerCount())
	}
	p.Step(tr, 0.016)
	if tr.FingerCount() != 0 {
		t.Errorf("frame 1: expected no fingers, got %d", tr.FingerCount())
	}
	p.Step(tr, 0.016)
	fs := tr.Pressed()
	if len(fs) != 1 || fs[0].ID != 4 || fs[0].ScreenPosition != (mgl32.Vec2{15, 20}) {
		t.Errorf("frame 2: expected finger 4 at (15,20), got %+v", fs)
	}
	if !p.Done() {
		t.Error("expected player done after 3 frames")
	}
}
