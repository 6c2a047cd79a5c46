package sim

// hoverEase is the exponential smoothing factor applied each frame.
const hoverEase = 0.3

// Hover eases a scalar toward a moving target. The renderer reads the
// value as lift amount and tag opacity.
type Hover struct {
	Value float64
}

// Step moves the value one frame toward target and returns it.
func (h *Hover) Step(target float64) float64 {
	h.Value += (target - h.Value) * hoverEase
	return h.Value
}

// HoverSet eases one scalar per grid cell so a house keeps settling back
// down after the pointer leaves it.
type HoverSet struct {
	cells map[[2]int]float64
}

func NewHoverSet() *HoverSet {
	return &HoverSet{cells: make(map[[2]int]float64)}
}

// Advance runs one frame. At most one cell is hovered; every other
// tracked cell decays toward zero and is dropped once invisible.
func (s *HoverSet) Advance(gx, gy int, hovering bool) {
	active := [2]int{gx, gy}
	if hovering {
		if _, ok := s.cells[active]; !ok {
			s.cells[active] = 0
		}
	}
	for k, v := range s.cells {
		target := 0.0
		if hovering && k == active {
			target = 1
		}
		v += (target - v) * hoverEase
		if target == 0 && v < 0.01 {
			delete(s.cells, k)
			continue
		}
		s.cells[k] = v
	}
}

// At returns the eased hover amount for a cell, zero when untracked.
func (s *HoverSet) At(gx, gy int) float64 {
	return s.cells[[2]int{gx, gy}]
}
