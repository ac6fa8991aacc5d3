package lumen

import (
	"errors"
	"fmt"

	"github.com/gekko3d/lumen/lumenrt/rt/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

var (
	ErrLightSetFull  = errors.New("light set is full")
	ErrLightNotFound = errors.New("light not found")
)

type LightId string

func makeLightId() LightId {
	return LightId(uuid.NewString())
}

// LightSet is the ordered list of lights uploaded each frame. Insertion
// order is kept because ambient lights compound in list order.
type LightSet struct {
	capacity int
	order    []LightId
	lights   map[LightId]core.Light
}

func NewLightSet(capacity int) *LightSet {
	return &LightSet{
		capacity: capacity,
		lights:   make(map[LightId]core.Light),
	}
}

func (s *LightSet) Capacity() int { return s.capacity }
func (s *LightSet) Len() int      { return len(s.order) }

func (s *LightSet) Add(l core.Light) (LightId, error) {
	if l == nil {
		return "", fmt.Errorf("nil light")
	}
	if len(s.order) >= s.capacity {
		return "", fmt.Errorf("%w: capacity %d", ErrLightSetFull, s.capacity)
	}
	id := makeLightId()
	s.lights[id] = l
	s.order = append(s.order, id)
	return id, nil
}

func (s *LightSet) Get(id LightId) (core.Light, bool) {
	l, ok := s.lights[id]
	return l, ok
}

// Update replaces a light in place, keeping its position in the list.
func (s *LightSet) Update(id LightId, l core.Light) error {
	if _, ok := s.lights[id]; !ok {
		return fmt.Errorf("%w: %s", ErrLightNotFound, id)
	}
	if l == nil {
		return fmt.Errorf("nil light")
	}
	s.lights[id] = l
	return nil
}

func (s *LightSet) Remove(id LightId) error {
	if _, ok := s.lights[id]; !ok {
		return fmt.Errorf("%w: %s", ErrLightNotFound, id)
	}
	delete(s.lights, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Lights returns the live lights in insertion order.
func (s *LightSet) Lights() []core.Light {
	out := make([]core.Light, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.lights[id])
	}
	return out
}

// Records flattens the set into a fixed-capacity array; unfilled slots are unused.
func (s *LightSet) Records() []core.LightRecord {
	records := make([]core.LightRecord, s.capacity)
	for i, id := range s.order {
		records[i] = core.EncodeLight(s.lights[id])
	}
	return records
}

func (s *LightSet) Uniforms(tiling uint32, cameraPosition mgl32.Vec3) core.FragmentUniforms {
	return core.FragmentUniforms{
		Tiling:         tiling,
		CameraPosition: cameraPosition,
		LightCount:     uint32(len(s.order)),
	}
}
