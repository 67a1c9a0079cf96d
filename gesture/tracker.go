package gesture

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

type fingerHandler struct {
	id Handle
	fn func(Finger)
}

type gestureHandler struct {
	id Handle
	fn func([]Finger)
}

// Tracker turns raw per-frame pointer samples into fingers with deltas and
// dispatches them to subscribers. It implements Source.
//
// A frame is reported as BeginFrame, then Touch for each pressed pointer
// (at most once per id) and optionally Hover, then EndFrame. Pointers not
// reported in a frame are released at EndFrame.
type Tracker struct {
	fingers []Finger
	hover   *Finger

	seen      map[int]bool
	hoverSeen bool
	dt        float32

	nextHandle      Handle
	fingerHandlers  []fingerHandler
	gestureHandlers []gestureHandler
}

var _ Source = (*Tracker)(nil)

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[int]bool)}
}

// BeginFrame starts collecting samples for a frame lasting dt seconds.
func (t *Tracker) BeginFrame(dt float32) {
	clear(t.seen)
	t.hoverSeen = false
	t.dt = dt
}

// Touch reports a pressed pointer at pos for the current frame.
func (t *Tracker) Touch(id int, pos mgl32.Vec2) {
	t.seen[id] = true
	for i := range t.fingers {
		if t.fingers[i].ID == id {
			advance(&t.fingers[i], pos, t.dt)
			return
		}
	}
	t.fingers = append(t.fingers, Finger{
		ID:                  id,
		ScreenPosition:      pos,
		LastScreenPosition:  pos,
		StartScreenPosition: pos,
		Down:                true,
	})
}

// Hover reports the hover pointer at pos for the current frame.
func (t *Tracker) Hover(pos mgl32.Vec2) {
	t.hoverSeen = true
	if t.hover != nil {
		advance(t.hover, pos, t.dt)
		return
	}
	t.hover = &Finger{
		ID:                  HoverFingerID,
		ScreenPosition:      pos,
		LastScreenPosition:  pos,
		StartScreenPosition: pos,
		Hover:               true,
	}
}

// EndFrame releases pointers that were not reported and dispatches callbacks.
// Callbacks added or removed while dispatching take effect next frame.
func (t *Tracker) EndFrame() {
	kept := t.fingers[:0]
	for _, f := range t.fingers {
		if t.seen[f.ID] {
			kept = append(kept, f)
		}
	}
	t.fingers = kept
	if !t.hoverSeen {
		t.hover = nil
	}

	if len(t.fingers) == 0 {
		return
	}

	fingerHandlers := append([]fingerHandler(nil), t.fingerHandlers...)
	gestureHandlers := append([]gestureHandler(nil), t.gestureHandlers...)

	for _, f := range t.fingers {
		for _, h := range fingerHandlers {
			h.fn(f)
		}
	}
	for _, h := range gestureHandlers {
		h.fn(t.Pressed())
	}
}

// Pressed returns a copy of the pressed fingers, ordered by when they first touched.
func (t *Tracker) Pressed() []Finger {
	out := make([]Finger, len(t.fingers))
	copy(out, t.fingers)
	return out
}

// FingerCount implements Source.
func (t *Tracker) FingerCount() int {
	n := len(t.fingers)
	if t.hover != nil {
		n++
	}
	return n
}

// Fingers implements Source.
func (t *Tracker) Fingers() []Finger {
	out := t.Pressed()
	if t.hover != nil {
		out = append(out, *t.hover)
	}
	return out
}

// IDs returns the ids of the pressed fingers in ascending order.
func (t *Tracker) IDs() []int {
	ids := make([]int, 0, len(t.fingers))
	for _, f := range t.fingers {
		ids = append(ids, f.ID)
	}
	sort.Ints(ids)
	return ids
}

// OnFingerUpdate implements Source.
func (t *Tracker) OnFingerUpdate(fn func(Finger)) Handle {
	t.nextHandle++
	t.fingerHandlers = append(t.fingerHandlers, fingerHandler{id: t.nextHandle, fn: fn})
	return t.nextHandle
}

// OnGesture implements Source.
func (t *Tracker) OnGesture(fn func([]Finger)) Handle {
	t.nextHandle++
	t.gestureHandlers = append(t.gestureHandlers, gestureHandler{id: t.nextHandle, fn: fn})
	return t.nextHandle
}

// Remove implements Source.
func (t *Tracker) Remove(h Handle) {
	for i, fh := range t.fingerHandlers {
		if fh.id == h {
			t.fingerHandlers = append(t.fingerHandlers[:i:i], t.fingerHandlers[i+1:]...)
			return
		}
	}
	for i, gh := range t.gestureHandlers {
		if gh.id == h {
			t.gestureHandlers = append(t.gestureHandlers[:i:i], t.gestureHandlers[i+1:]...)
			return
		}
	}
}

// Reset drops all fingers without dispatching. Subscriptions are kept.
func (t *Tracker) Reset() {
	t.fingers = t.fingers[:0]
	t.hover = nil
	clear(t.seen)
}

func advance(f *Finger, pos mgl32.Vec2, dt float32) {
	f.LastScreenPosition = f.ScreenPosition
	f.ScreenPosition = pos
	f.Age += dt
}
