package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/gitville/pkg/city"
)

func nameList(n int) []string {
	names := []string{"octocat"}
	for i := 1; i < n; i++ {
		names = append(names, fmt.Sprintf("user%02d", i))
	}
	return names
}

func residents(houses []city.House) []city.House {
	var out []city.House
	for _, h := range houses {
		if !h.IsObstacle() {
			out = append(out, h)
		}
	}
	return out
}

func roadSet(tiles []city.RoadTile) map[[2]int]bool {
	m := make(map[[2]int]bool, len(tiles))
	for _, t := range tiles {
		m[[2]int{t.X, t.Y}] = true
	}
	return m
}

func TestPlanFoundsTownAtCenter(t *testing.T) {
	houses, roads := Plan([]string{"octocat"}, nil)
	res := residents(houses)
	require.Len(t, res, 1)

	founder := res[0]
	assert.Equal(t, 0, founder.X)
	assert.Equal(t, 0, founder.Y)
	assert.Equal(t, "down", founder.Facing)
	assert.Equal(t, "#554660", founder.Color)
	require.NotNil(t, founder.RoofStyle)
	assert.Equal(t, 1, *founder.RoofStyle)
	assert.Equal(t, 1, *founder.DoorStyle)
	assert.Equal(t, 0, *founder.WindowStyle)
	assert.Equal(t, 2, *founder.ChimneyStyle)
	assert.Equal(t, 2, *founder.WallStyle)

	rs := roadSet(roads)
	for i := -ringRadius; i <= ringRadius; i++ {
		assert.True(t, rs[[2]int{i, -ringRadius}], "ring north at x=%d", i)
		assert.True(t, rs[[2]int{i, ringRadius}], "ring south at x=%d", i)
		assert.True(t, rs[[2]int{-ringRadius, i}], "ring west at y=%d", i)
		assert.True(t, rs[[2]int{ringRadius, i}], "ring east at y=%d", i)
	}
	for _, c := range [][2]int{{0, 0}, {0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
		assert.False(t, rs[c], "plaza cell %v must stay clear", c)
	}
	assert.True(t, rs[[2]int{3, 0}], "east avenue stub")
	assert.True(t, rs[[2]int{0, -3}], "north avenue stub")
}

func TestPlanIdentityStyling(t *testing.T) {
	houses, _ := Plan([]string{"octocat", "ada", "grace"}, map[string]bool{"grace": true})
	res := residents(houses)
	require.Len(t, res, 3)

	assert.Equal(t, "#8c8d35", res[1].Color)
	assert.Equal(t, "ada", res[1].Username)
	assert.False(t, res[1].HasTerrace)

	grace := res[2]
	assert.Equal(t, "#15e5c8", grace.Color)
	assert.Equal(t, 1, *grace.RoofStyle)
	assert.Equal(t, 1, *grace.DoorStyle)
	assert.Equal(t, 2, *grace.WindowStyle)
	assert.Equal(t, 1, *grace.ChimneyStyle)
	assert.Equal(t, 0, *grace.WallStyle)
	assert.True(t, grace.HasTerrace, "contributors get the terrace")
}

func TestPlanFillsQuadrantBlocks(t *testing.T) {
	houses, _ := Plan(nameList(18), nil)
	res := residents(houses)
	require.Len(t, res, 18)

	// First block fills the NE quadrant: x in {3,5,7,9}, y in {-9..-3}.
	first := res[1]
	assert.Equal(t, 3, first.X)
	assert.Equal(t, -9, first.Y)
	assert.Equal(t, "left", first.Facing)
	for _, h := range res[1:17] {
		assert.GreaterOrEqual(t, h.X, 3)
		assert.LessOrEqual(t, h.X, 9)
		assert.GreaterOrEqual(t, h.Y, -9)
		assert.LessOrEqual(t, h.Y, -3)
	}

	// The 17th inhabitant opens the NW block.
	assert.Equal(t, -9, res[17].X)
	assert.Equal(t, -9, res[17].Y)
	assert.Equal(t, "right", res[17].Facing)
}

func TestPlanFacingTowardCenterAvenue(t *testing.T) {
	houses, _ := Plan(nameList(70), nil)
	for _, h := range residents(houses)[1:] {
		want := "right"
		if h.X > 0 {
			want = "left"
		}
		assert.Equalf(t, want, h.Facing, "house at (%d,%d)", h.X, h.Y)
	}
}

func TestPlanStableUnderGrowth(t *testing.T) {
	small, _ := Plan(nameList(5), nil)
	grown, _ := Plan(nameList(9), nil)
	require.Equal(t, residents(small), residents(grown)[:5],
		"existing houses must not move when the town grows")
}

func TestPlanDeterministic(t *testing.T) {
	h1, r1 := Plan(nameList(40), nil)
	h2, r2 := Plan(nameList(40), nil)
	require.Equal(t, h1, h2)
	require.Equal(t, r1, r2)
}

func TestRoadTilesSorted(t *testing.T) {
	_, roads := Plan(nameList(25), nil)
	for i := 1; i < len(roads); i++ {
		a, b := roads[i-1], roads[i]
		ok := a.Y < b.Y || (a.Y == b.Y && a.X < b.X)
		require.Truef(t, ok, "tiles %v and %v out of order", a, b)
	}
}

func TestStreetTreesOnFreeCellsOnly(t *testing.T) {
	houses, roads := Plan(nameList(30), nil)
	rs := roadSet(roads)
	lots := make(map[[2]int]bool)
	for _, h := range residents(houses) {
		lots[[2]int{h.X, h.Y}] = true
	}

	planted := 0
	for _, h := range houses {
		if !h.IsObstacle() {
			continue
		}
		planted++
		cell := [2]int{h.X, h.Y}
		assert.Equal(t, city.ObstacleTree, h.Obstacle)
		assert.False(t, rs[cell], "tree on road at %v", cell)
		assert.False(t, lots[cell], "tree on a lot at %v", cell)
		near := rs[[2]int{h.X + 1, h.Y}] || rs[[2]int{h.X - 1, h.Y}] ||
			rs[[2]int{h.X, h.Y + 1}] || rs[[2]int{h.X, h.Y - 1}]
		assert.True(t, near, "tree at %v not along a street", cell)
	}
	assert.Greater(t, planted, 0, "a 30-house town should have some greenery")
}

func TestAssignKeepsIdentityAndAppends(t *testing.T) {
	houses, _ := Plan([]string{"octocat", "ada"}, nil)
	existing := residents(houses)
	existing[1].Abandoned = true
	existing[1].HasTerrace = true

	updated, _ := Assign(existing, []string{"octocat", "ada", "grace"})
	res := residents(updated)
	require.Len(t, res, 3)

	ada := res[1]
	assert.True(t, ada.Abandoned, "flags survive re-layout")
	assert.True(t, ada.HasTerrace)
	assert.Equal(t, "#8c8d35", ada.Color)
	assert.Equal(t, 3, ada.X)
	assert.Equal(t, -9, ada.Y)

	grace := res[2]
	assert.Equal(t, "grace", grace.Username)
	assert.Equal(t, "#15e5c8", grace.Color)
	assert.Equal(t, 5, grace.X)
	assert.Equal(t, -9, grace.Y)
	assert.Equal(t, "left", grace.Facing)
}

func TestAssignRegeneratesTrees(t *testing.T) {
	houses, _ := Plan(nameList(30), nil)
	updated, _ := Assign(houses, nil)
	require.Equal(t, residents(houses), residents(updated))

	var before, after int
	for _, h := range houses {
		if h.IsObstacle() {
			before++
		}
	}
	for _, h := range updated {
		if h.IsObstacle() {
			after++
		}
	}
	assert.Equal(t, before, after, "same plan, same trees")
}

func TestPlanEmpty(t *testing.T) {
	houses, roads := Plan(nil, nil)
	assert.Empty(t, houses)
	assert.Empty(t, roads)
}
