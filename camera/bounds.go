package camera

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned region on the ground plane, in world units.
type Rect struct {
	XMin float32 `yaml:"x_min"`
	XMax float32 `yaml:"x_max"`
	YMin float32 `yaml:"y_min"`
	YMax float32 `yaml:"y_max"`
}

// Width returns XMax - XMin.
func (r Rect) Width() float32 { return r.XMax - r.XMin }

// Height returns YMax - YMin.
func (r Rect) Height() float32 { return r.YMax - r.YMin }

// Grow returns the rect expanded by margin on every side.
func (r Rect) Grow(margin float32) Rect {
	return Rect{
		XMin: r.XMin - margin,
		XMax: r.XMax + margin,
		YMin: r.YMin - margin,
		YMax: r.YMax + margin,
	}
}

// Contains reports whether (x, y) lies inside the rect, edges included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

// SwipeBounds holds the pannable area at both ends of the zoom range.
// Min applies at the smallest field of view, Max at the largest.
type SwipeBounds struct {
	Min Rect `yaml:"min_area"`
	Max Rect `yaml:"max_area"`
}

// At returns the bound interpolated at zoomT. zoomT is not clamped, so values
// outside [0,1] extrapolate past the configured rects.
func (b SwipeBounds) At(zoomT float32) Rect {
	return Rect{
		XMin: lerp(b.Min.XMin, b.Max.XMin, zoomT),
		XMax: lerp(b.Min.XMax, b.Max.XMax, zoomT),
		YMin: lerp(b.Min.YMin, b.Max.YMin, zoomT),
		YMax: lerp(b.Min.YMax, b.Max.YMax, zoomT),
	}
}

// Limit clamps the x and y of pos into the bound at zoomT, widened by elastic.
// Z is left alone.
func (b SwipeBounds) Limit(pos *mgl32.Vec3, zoomT, elastic float32) {
	r := b.At(zoomT)
	pos[0] = clampEdge(pos[0], r.XMin-elastic, r.XMax+elastic)
	pos[1] = clampEdge(pos[1], r.YMin-elastic, r.YMax+elastic)
}

// ScalarRange bounds the field of view directly.
type ScalarRange struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// Limit clamps value into [Min-elastic, Max+elastic].
func (r ScalarRange) Limit(value *float32, elastic float32) {
	*value = clampEdge(*value, r.Min-elastic, r.Max+elastic)
}

// Normalize maps v onto the range, 0 at Min and 1 at Max. The caller must
// guarantee Max > Min.
func (r ScalarRange) Normalize(v float32) float32 {
	return (v - r.Min) / (r.Max - r.Min)
}

// clampEdge tests the low edge first; an inverted interval resolves to lo.
func clampEdge(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
