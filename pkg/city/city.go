// Package city defines the persisted snapshot documents the renderer
// consumes: the inhabitant/house list, the road tile set, and the ambient
// world document. The renderer treats every render pass as a pure function
// of one Snapshot.
package city

import "github.com/ChicagoDave/gitville/pkg/style"

// Facing values. A house facing right is mirrored before projection;
// the other values keep the default orientation.
const (
	FacingDown  = "down"
	FacingLeft  = "left"
	FacingRight = "right"
)

// ObstacleTree marks a tile occupied by a decorative tree instead of a house.
const ObstacleTree = "tree"

// House is one persisted entity record. Style fields are optional; nil
// means the variant derives deterministically from the grid position.
type House struct {
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Color        string `json:"color"`
	RoofStyle    *int   `json:"roofStyle,omitempty"`
	DoorStyle    *int   `json:"doorStyle,omitempty"`
	WindowStyle  *int   `json:"windowStyle,omitempty"`
	ChimneyStyle *int   `json:"chimneyStyle,omitempty"`
	WallStyle    *int   `json:"wallStyle,omitempty"`
	Username     string `json:"username,omitempty"`
	Facing       string `json:"facing,omitempty"`
	HasTerrace   bool   `json:"has_terrace,omitempty"`
	Abandoned    bool   `json:"abandoned,omitempty"`
	Obstacle     string `json:"obstacle,omitempty"`
}

// Mirrored reports whether the house renders with its local axes swapped.
func (h House) Mirrored() bool {
	return h.Facing == FacingRight
}

// IsObstacle reports whether the record is a decorative occupant rather
// than a house.
func (h House) IsObstacle() bool {
	return h.Obstacle != ""
}

// Normalize clamps style indices to the closed variant enum, folds
// unknown facings to the default, and replaces a malformed color with the
// fallback hue. Bad values degrade, they never error.
func (h *House) Normalize() {
	clamp := func(p *int, allowDamaged bool) {
		if p != nil {
			*p = style.ClampVariant(*p, allowDamaged)
		}
	}
	clamp(h.RoofStyle, true)
	clamp(h.DoorStyle, true)
	clamp(h.WindowStyle, true)
	clamp(h.ChimneyStyle, false)
	clamp(h.WallStyle, false)

	switch h.Facing {
	case FacingDown, FacingLeft, FacingRight:
	default:
		h.Facing = FacingDown
	}

	if _, ok := style.ParseHex(h.Color); !ok {
		h.Color = style.DefaultBase
	}
}

// RoadTile is one occupied road cell.
type RoadTile struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RoadSet is the set of road tiles with O(1) adjacency lookups. Junction
// geometry is driven entirely by Has queries on the four neighbors.
type RoadSet struct {
	tiles map[RoadTile]struct{}
	order []RoadTile
}

// NewRoadSet builds a set from a tile list, dropping duplicates while
// preserving first-seen order.
func NewRoadSet(tiles []RoadTile) RoadSet {
	rs := RoadSet{tiles: make(map[RoadTile]struct{}, len(tiles))}
	for _, t := range tiles {
		if _, dup := rs.tiles[t]; dup {
			continue
		}
		rs.tiles[t] = struct{}{}
		rs.order = append(rs.order, t)
	}
	return rs
}

// Has reports whether the grid cell is a road tile.
func (r RoadSet) Has(gx, gy int) bool {
	_, ok := r.tiles[RoadTile{X: gx, Y: gy}]
	return ok
}

// Tiles returns the tiles in first-seen order.
func (r RoadSet) Tiles() []RoadTile {
	return r.order
}

// Len returns the number of road tiles.
func (r RoadSet) Len() int {
	return len(r.order)
}

// Weather and time-of-day values for the world document.
const (
	WeatherNone = "none"
	WeatherRain = "rain"
	TimeDay     = "day"
	TimeNight   = "night"
)

// World is the ambient config document. Both fields default to the calm
// daytime values when the document is absent.
type World struct {
	Weather   string `json:"weather"`
	TimeOfDay string `json:"timeOfDay"`
}

// IsRaining reports whether rain is active.
func (w World) IsRaining() bool {
	return w.Weather == WeatherRain
}

// IsNight reports whether night mode is active.
func (w World) IsNight() bool {
	return w.TimeOfDay == TimeNight
}

// Snapshot bundles the three input documents for one render pass.
type Snapshot struct {
	Houses []House
	Roads  RoadSet
	World  World
}

// Population counts inhabited houses (obstacles excluded).
func (s *Snapshot) Population() int {
	n := 0
	for _, h := range s.Houses {
		if !h.IsObstacle() {
			n++
		}
	}
	return n
}
