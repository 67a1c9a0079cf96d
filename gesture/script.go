package gesture

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gocarina/gocsv"
)

// ScriptEvent places one pointer at a screen position on one frame.
// Finger HoverFingerID reports the hover pointer.
type ScriptEvent struct {
	Frame  int     `csv:"frame"`
	Finger int     `csv:"finger"`
	X      float32 `csv:"x"`
	Y      float32 `csv:"y"`
}

// Script is a recorded sequence of pointer samples, ordered by frame.
type Script struct {
	events []ScriptEvent
	frames int
}

// NewScript builds a script from events in any order.
func NewScript(events []ScriptEvent) (*Script, error) {
	sorted := make([]ScriptEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Frame < sorted[j].Frame })

	s := &Script{events: sorted}
	for _, ev := range sorted {
		if ev.Frame < 0 {
			return nil, fmt.Errorf("script event for finger %d has negative frame %d", ev.Finger, ev.Frame)
		}
		if ev.Frame+1 > s.frames {
			s.frames = ev.Frame + 1
		}
	}
	return s, nil
}

// LoadScript parses a CSV script with a frame,finger,x,y header.
func LoadScript(r io.Reader) (*Script, error) {
	var events []ScriptEvent
	if err := gocsv.Unmarshal(r, &events); err != nil {
		return nil, fmt.Errorf("parsing gesture script: %w", err)
	}
	return NewScript(events)
}

// WriteScript writes events as CSV, header included.
func WriteScript(w io.Writer, events []ScriptEvent) error {
	if err := gocsv.Marshal(events, w); err != nil {
		return fmt.Errorf("writing gesture script: %w", err)
	}
	return nil
}

// Frames returns the number of frames the script spans.
func (s *Script) Frames() int { return s.frames }

// Events returns a copy of the script's events.
func (s *Script) Events() []ScriptEvent {
	out := make([]ScriptEvent, len(s.events))
	copy(out, s.events)
	return out
}

// Player replays a script into a Tracker, one frame per Step.
type Player struct {
	script *Script
	frame  int
	next   int
}

// NewPlayer creates a player positioned at frame 0.
func NewPlayer(s *Script) *Player {
	return &Player{script: s}
}

// Step reports the current frame's samples to t and advances.
// Once the script is done, Step reports empty frames so fingers release.
func (p *Player) Step(t *Tracker, dt float32) {
	t.BeginFrame(dt)
	events := p.script.events
	for p.next < len(events) && events[p.next].Frame == p.frame {
		ev := events[p.next]
		pos := mgl32.Vec2{ev.X, ev.Y}
		if ev.Finger == HoverFingerID {
			t.Hover(pos)
		} else {
			t.Touch(ev.Finger, pos)
		}
		p.next++
	}
	t.EndFrame()
	p.frame++
}

// Frame returns the index of the next frame to be played.
func (p *Player) Frame() int { return p.frame }

// Done reports whether every scripted frame has been played.
func (p *Player) Done() bool { return p.frame >= p.script.frames }

// DragEvents returns samples moving one finger in a straight line from
// `from` to `to` over frames frames, starting at frame start.
func DragEvents(finger, start, frames int, from, to mgl32.Vec2) []ScriptEvent {
	if frames < 1 {
		frames = 1
	}
	events := make([]ScriptEvent, 0, frames+1)
	for i := 0; i <= frames; i++ {
		t := float32(i) / float32(frames)
		p := from.Add(to.Sub(from).Mul(t))
		events = append(events, ScriptEvent{Frame: start + i, Finger: finger, X: p.X(), Y: p.Y()})
	}
	return events
}

// PinchEvents returns samples for two fingers placed symmetrically around
// center whose separation changes linearly from startGap to endGap.
func PinchEvents(start, frames int, center mgl32.Vec2, startGap, endGap float32) []ScriptEvent {
	half := func(gap float32) mgl32.Vec2 { return mgl32.Vec2{gap / 2, 0} }
	a := DragEvents(0, start, frames, center.Sub(half(startGap)), center.Sub(half(endGap)))
	b := DragEvents(1, start, frames, center.Add(half(startGap)), center.Add(half(endGap)))
	return append(a, b...)
}

// Recorder captures live pointer samples frame by frame so they can be
// written out with WriteScript and replayed with a Player.
type Recorder struct {
	events []ScriptEvent
	frame  int
}

// NewRecorder creates a recorder starting at frame 0.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Touch records a pressed pointer for the current frame.
func (r *Recorder) Touch(id int, pos mgl32.Vec2) {
	r.events = append(r.events, ScriptEvent{Frame: r.frame, Finger: id, X: pos.X(), Y: pos.Y()})
}

// Hover records the hover pointer for the current frame.
func (r *Recorder) Hover(pos mgl32.Vec2) {
	r.Touch(HoverFingerID, pos)
}

// EndFrame advances to the next frame.
func (r *Recorder) EndFrame() { r.frame++ }

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int { return r.frame }

// Script returns the samples recorded so far.
func (r *Recorder) Script() (*Script, error) {
	return NewScript(r.events)
}
