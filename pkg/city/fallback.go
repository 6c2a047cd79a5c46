package city

// Fallback returns the built-in placeholder town the interactive backend
// renders when no snapshot can be loaded, so the viewport is never blank.
func Fallback() *Snapshot {
	v := func(n int) *int { return &n }

	houses := []House{
		{X: 0, Y: 0, Color: "#ff6b6b", Username: "mayor", Facing: FacingDown, HasTerrace: true},
		{X: 3, Y: 0, Color: "#45aaf2", Username: "sam", Facing: FacingLeft,
			RoofStyle: v(1), DoorStyle: v(2), WindowStyle: v(1)},
		{X: 0, Y: 3, Color: "#a55eea", Username: "jo", Facing: FacingRight,
			RoofStyle: v(2), ChimneyStyle: v(1)},
		{X: 3, Y: 3, Color: "#fd9644", Username: "old-mill", Facing: FacingLeft, Abandoned: true},
		{X: -3, Y: 0, Color: "#26de81", Username: "kit", Facing: FacingRight,
			RoofStyle: v(3), WindowStyle: v(3), WallStyle: v(1)},
		{X: -3, Y: 3, Color: "#2bcbba", Obstacle: ObstacleTree},
	}
	for i := range houses {
		houses[i].Normalize()
	}

	var tiles []RoadTile
	for i := -2; i <= 5; i++ {
		tiles = append(tiles, RoadTile{X: i, Y: 1}, RoadTile{X: 1, Y: i})
	}

	return &Snapshot{
		Houses: houses,
		Roads:  NewRoadSet(tiles),
		World:  World{Weather: WeatherNone, TimeOfDay: TimeDay},
	}
}
