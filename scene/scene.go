// Package scene holds the static landmark field the demo camera flies over.
package scene

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pinchcam/camera"
	"github.com/pthm-cable/pinchcam/components"
	"github.com/pthm-cable/pinchcam/config"
)

// Landmark kind mix for grid cells.
const (
	pillarChance = 0.3
	jitter       = 0.3 // Fraction of spacing a landmark may drift off its grid point
)

// Params describes a landmark field.
type Params struct {
	Bound   camera.Rect  // Area covered by the grid
	Spacing float32      // Grid spacing
	Radius  float32      // Base landmark radius
	Seed    int64        // Placement seed
	Beacons []mgl32.Vec2 // Extra points marked with a beacon
}

// Scene owns the ECS world of landmarks.
type Scene struct {
	world  *ecs.World
	mapper *ecs.Map2[components.Position, components.Landmark]
	filter *ecs.Filter2[components.Position, components.Landmark]
	bound  camera.Rect
	count  int
}

// New builds a landmark field from p.
func New(p Params) *Scene {
	world := ecs.NewWorld()
	s := &Scene{
		world:  world,
		mapper: ecs.NewMap2[components.Position, components.Landmark](world),
		filter: ecs.NewFilter2[components.Position, components.Landmark](world),
		bound:  p.Bound,
	}
	s.spawnGrid(p)
	for _, b := range p.Beacons {
		s.spawn(b.X(), b.Y(), components.Landmark{
			Kind:   components.KindBeacon,
			Radius: p.Radius * 1.5,
			Shade:  255,
		})
	}
	return s
}

// FromConfig builds the landmark field described by cfg's scene section,
// with beacons at the origin and the corners of both swipe areas.
func FromConfig(cfg *config.Config) *Scene {
	beacons := []mgl32.Vec2{{0, 0}}
	for _, r := range []camera.Rect{cfg.Swipe.MinArea, cfg.Swipe.MaxArea} {
		beacons = append(beacons,
			mgl32.Vec2{r.XMin, r.YMin},
			mgl32.Vec2{r.XMax, r.YMin},
			mgl32.Vec2{r.XMin, r.YMax},
			mgl32.Vec2{r.XMax, r.YMax},
		)
	}
	return New(Params{
		Bound:   cfg.Derived.SceneBound,
		Spacing: cfg.Scene.Spacing,
		Radius:  cfg.Scene.Radius,
		Seed:    cfg.Scene.Seed,
		Beacons: beacons,
	})
}

// spawnGrid places one marker or pillar per grid cell, jittered.
func (s *Scene) spawnGrid(p Params) {
	if p.Spacing <= 0 {
		return
	}
	rng := rand.New(rand.NewSource(p.Seed))
	for y := p.Bound.YMin; y <= p.Bound.YMax; y += p.Spacing {
		for x := p.Bound.XMin; x <= p.Bound.XMax; x += p.Spacing {
			jx := (rng.Float32()*2 - 1) * jitter * p.Spacing
			jy := (rng.Float32()*2 - 1) * jitter * p.Spacing

			lm := components.Landmark{
				Kind:   components.KindMarker,
				Radius: p.Radius * (0.6 + 0.8*rng.Float32()),
				Shade:  uint8(120 + rng.Intn(136)),
			}
			if rng.Float32() < pillarChance {
				lm.Kind = components.KindPillar
				lm.Height = lm.Radius * (2 + 4*rng.Float32())
			}
			s.spawn(x+jx, y+jy, lm)
		}
	}
}

func (s *Scene) spawn(x, y float32, lm components.Landmark) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	s.count++
	return s.mapper.NewEntity(&pos, &lm)
}

// Count returns the number of landmarks.
func (s *Scene) Count() int { return s.count }

// Bound returns the area the grid covers.
func (s *Scene) Bound() camera.Rect { return s.bound }

// Each calls fn for every landmark.
func (s *Scene) Each(fn func(pos components.Position, lm components.Landmark)) {
	query := s.filter.Query()
	for query.Next() {
		pos, lm := query.Get()
		fn(*pos, *lm)
	}
}

// EachVisible calls fn for every landmark inside view's frustum and returns how many there were.
func (s *Scene) EachVisible(view *camera.Camera, fn func(pos components.Position, lm components.Landmark)) int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		pos, lm := query.Get()
		if !view.IsVisible(pos.X, pos.Y, lm.Radius) {
			continue
		}
		n++
		fn(*pos, *lm)
	}
	return n
}
