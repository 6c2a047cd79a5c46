package main

import (
	"fmt"

	"github.com/ChicagoDave/gitville/pkg/city"
)

const newcomerListCap = 8

func printExportSummary(path string, snap *city.Snapshot) {
	fmt.Printf("Exported %s\n", path)
	fmt.Printf("  population %d, road tiles %d, weather %s, time of day %s\n",
		snap.Population(), snap.Roads.Len(), snap.World.Weather, snap.World.TimeOfDay)
}

// printTownSummary reports what the plan produced, newest residents last.
func printTownSummary(houses []city.House, roads []city.RoadTile, fresh []city.House) {
	residents, trees := 0, 0
	minX, minY := houses[0].X, houses[0].Y
	maxX, maxY := minX, minY
	for _, h := range houses {
		if h.IsObstacle() {
			trees++
		} else {
			residents++
		}
		minX = min(minX, h.X)
		minY = min(minY, h.Y)
		maxX = max(maxX, h.X)
		maxY = max(maxY, h.Y)
	}

	fmt.Printf("Town plan: %d residents, %d street trees, %d road tiles\n", residents, trees, len(roads))
	fmt.Printf("  cells (%d,%d) to (%d,%d)\n", minX, minY, maxX, maxY)

	if len(fresh) == 0 {
		return
	}
	fmt.Printf("New residents (%d):\n", len(fresh))
	shown := fresh
	if len(shown) > newcomerListCap {
		shown = shown[:newcomerListCap]
	}
	for _, h := range shown {
		note := ""
		if h.HasTerrace {
			note = " terrace"
		}
		fmt.Printf("  %-24s %s at (%d,%d) facing %s%s\n", h.Username, h.Color, h.X, h.Y, h.Facing, note)
	}
	if len(fresh) > len(shown) {
		fmt.Printf("  ... and %d more\n", len(fresh)-len(shown))
	}
}
