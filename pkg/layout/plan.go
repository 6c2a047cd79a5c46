// Package layout generates the Grand Cross town plan: the founder's house
// on the center cell inside a ring road, main avenues along both axes, and
// 4x4 house blocks filling the four quadrants layer by layer. Placement is
// a pure function of list order, so re-running the plan over a grown
// inhabitant list never moves an existing house.
package layout

import (
	"sort"

	"github.com/ChicagoDave/gitville/pkg/city"
	"github.com/ChicagoDave/gitville/pkg/style"
)

const (
	houseGap    = 2 // house-to-house spacing inside a block
	streetGap   = 2 // lane between adjacent blocks
	avenueHalf  = 3 // half width of the main axis avenues
	clusterCols = 4
	clusterRows = 4

	blockHouses = clusterCols * clusterRows
	blockWidth  = (clusterCols - 1) * houseGap // 6
	blockStride = blockWidth + streetGap       // 8

	// ringRadius is the plaza road around the founder's house.
	ringRadius = 2

	// treeOdds keeps street trees sparse; only cells clearing this noise
	// threshold get one.
	treeOdds = 0.82
)

// quadrants orders the four town quarters the block filler cycles
// through: NE, NW, SW, SE.
var quadrants = [4][2]int{{1, -1}, {-1, -1}, {-1, 1}, {1, 1}}

type slot struct {
	x, y   int
	facing string
}

// slots places n inhabitants. The first founds the town at the origin
// facing the camera; the rest pack into 4x4 blocks handed out one full
// block per quadrant before moving to the next diagonal layer outward.
func slots(n int) []slot {
	out := make([]slot, 0, n)
	out = append(out, slot{0, 0, "down"})
	remaining := n - 1
	if remaining <= 0 {
		return out
	}

	// Diagonal layers of abstract block positions: (0,0), then (1,0),(0,1),
	// then (2,0),(1,1),(0,2) and so on, mirrored into all four quadrants.
	blocks := (remaining + blockHouses - 1) / blockHouses
	var abstract [][2]int
	for layer := 0; len(abstract)*len(quadrants) < blocks+len(quadrants); layer++ {
		for x := 0; x <= layer; x++ {
			abstract = append(abstract, [2]int{x, layer - x})
		}
	}

	placed := 0
outer:
	for _, b := range abstract {
		for _, q := range quadrants {
			// Block origin: avenue setback plus the stride, pulled back by
			// the block span on negative axes so blocks grow away from the
			// avenues instead of across them.
			bx := avenueHalf*q[0] + b[0]*blockStride*q[0]
			by := avenueHalf*q[1] + b[1]*blockStride*q[1]
			if q[0] < 0 {
				bx -= blockWidth
			}
			if q[1] < 0 {
				by -= blockWidth
			}
			for i := 0; i < blockHouses; i++ {
				if placed >= remaining {
					break outer
				}
				x := bx + i%clusterCols*houseGap
				y := by + i/clusterCols*houseGap
				facing := "right"
				if x > 0 {
					facing = "left"
				}
				out = append(out, slot{x, y, facing})
				placed++
			}
		}
	}
	return out
}

// roadGrid lays the street network for a set of placements: both main
// avenues, a lane after every block stride, and the plaza ring replacing
// the avenues where they would run under the founder's house.
func roadGrid(sl []slot) []city.RoadTile {
	if len(sl) == 0 {
		return nil
	}
	minX, maxX := sl[0].x, sl[0].x
	minY, maxY := sl[0].y, sl[0].y
	for _, s := range sl[1:] {
		minX, maxX = min(minX, s.x), max(maxX, s.x)
		minY, maxY = min(minY, s.y), max(maxY, s.y)
	}

	// First lane past an avenue sits at setback 3 + block 6 + half lane 1
	// = 10, then one every stride.
	lines := func(lo, hi int) map[int]bool {
		m := map[int]bool{0: true}
		for v := 10; v <= hi+2; v += blockStride {
			m[v] = true
		}
		for v := -10; v >= lo-2; v -= blockStride {
			m[v] = true
		}
		return m
	}
	xLines := lines(minX, maxX)
	yLines := lines(minY, maxY)

	set := make(map[city.RoadTile]bool)
	for y := range yLines {
		for x := minX - 3; x <= maxX+3; x++ {
			set[city.RoadTile{X: x, Y: y}] = true
		}
	}
	for x := range xLines {
		for y := minY - 3; y <= maxY+3; y++ {
			set[city.RoadTile{X: x, Y: y}] = true
		}
	}

	// The avenues stop at the plaza ring instead of running under the
	// founder's house.
	for i := -ringRadius; i <= ringRadius; i++ {
		delete(set, city.RoadTile{X: 0, Y: i})
		delete(set, city.RoadTile{X: i, Y: 0})
	}
	for i := -ringRadius; i <= ringRadius; i++ {
		set[city.RoadTile{X: i, Y: -ringRadius}] = true
		set[city.RoadTile{X: i, Y: ringRadius}] = true
		set[city.RoadTile{X: -ringRadius, Y: i}] = true
		set[city.RoadTile{X: ringRadius, Y: i}] = true
	}

	tiles := make([]city.RoadTile, 0, len(set))
	for t := range set {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Y != tiles[j].Y {
			return tiles[i].Y < tiles[j].Y
		}
		return tiles[i].X < tiles[j].X
	})
	return tiles
}

// streetTrees plants trees on free cells bordering a lane. Selection is
// grid noise, so regenerating the town never shuffles them.
func streetTrees(houses []city.House, roads []city.RoadTile) []city.House {
	if len(roads) == 0 {
		return nil
	}
	occupied := make(map[[2]int]bool, len(houses)+len(roads))
	for _, h := range houses {
		occupied[[2]int{h.X, h.Y}] = true
	}
	road := make(map[[2]int]bool, len(roads))
	minX, maxX := roads[0].X, roads[0].X
	minY, maxY := roads[0].Y, roads[0].Y
	for _, t := range roads {
		road[[2]int{t.X, t.Y}] = true
		minX, maxX = min(minX, t.X), max(maxX, t.X)
		minY, maxY = min(minY, t.Y), max(maxY, t.Y)
	}

	var out []city.House
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if occupied[[2]int{x, y}] || road[[2]int{x, y}] {
				continue
			}
			if !road[[2]int{x + 1, y}] && !road[[2]int{x - 1, y}] &&
				!road[[2]int{x, y + 1}] && !road[[2]int{x, y - 1}] {
				continue
			}
			if style.Noise01(x, y, style.AspectTree) <= treeOdds {
				continue
			}
			out = append(out, city.House{X: x, Y: y, Obstacle: city.ObstacleTree})
		}
	}
	return out
}

// identityHouse derives the style fields a name hashes to.
func identityHouse(name string, terrace bool) city.House {
	st := style.StylesFor(name)
	roof, door, window := st.Roof, st.Door, st.Window
	chimney, wall := st.Chimney, st.Wall
	return city.House{
		Color:        style.ColorFor(name),
		RoofStyle:    &roof,
		DoorStyle:    &door,
		WindowStyle:  &window,
		ChimneyStyle: &chimney,
		WallStyle:    &wall,
		Username:     name,
		HasTerrace:   terrace,
	}
}

// Plan lays out a town for an ordered inhabitant list. Contributors get
// the terraced upgrade. Street trees are appended after the inhabitants.
func Plan(names []string, contributors map[string]bool) ([]city.House, []city.RoadTile) {
	if len(names) == 0 {
		return nil, nil
	}
	sl := slots(len(names))
	houses := make([]city.House, 0, len(names))
	for i, name := range names {
		h := identityHouse(name, contributors[name])
		h.X, h.Y = sl[i].x, sl[i].y
		h.Facing = sl[i].facing
		houses = append(houses, h)
	}
	roads := roadGrid(sl)
	houses = append(houses, streetTrees(houses, roads)...)
	return houses, roads
}

// Assign re-lays an existing population plus any new names. Known houses
// keep their styling and flags and, because placement depends only on
// list order, their cells; new names are appended and placed after them.
// Obstacle records carry no identity and are regenerated.
func Assign(existing []city.House, names []string) ([]city.House, []city.RoadTile) {
	kept := make([]city.House, 0, len(existing)+len(names))
	seen := make(map[string]bool, len(existing))
	for _, h := range existing {
		if h.IsObstacle() {
			continue
		}
		kept = append(kept, h)
		seen[h.Username] = true
	}
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		kept = append(kept, identityHouse(name, false))
	}
	if len(kept) == 0 {
		return nil, nil
	}

	sl := slots(len(kept))
	for i := range kept {
		kept[i].X, kept[i].Y = sl[i].x, sl[i].y
		kept[i].Facing = sl[i].facing
	}
	roads := roadGrid(sl)
	kept = append(kept, streetTrees(kept, roads)...)
	return kept, roads
}
