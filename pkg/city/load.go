package city

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoSnapshot marks a missing primary entity document. The interactive
// backend substitutes the built-in fallback on it; the exporter aborts.
var ErrNoSnapshot = errors.New("no entity snapshot")

// Snapshot document names inside a project directory. The legacy house
// file name from the stargazer sync script is accepted as a fallback.
const (
	HousesFile       = "houses.json"
	LegacyHousesFile = "stargazers_houses.json"
	RoadsFile        = "roads.json"
	WorldFile        = "world.json"
)

// LoadHouses reads and normalizes the entity list document.
func LoadHouses(path string) ([]House, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoSnapshot, path)
		}
		return nil, fmt.Errorf("reading houses: %w", err)
	}
	var houses []House
	if err := json.Unmarshal(data, &houses); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	for i := range houses {
		houses[i].Normalize()
	}
	return houses, nil
}

// LoadRoads reads the road tile document.
func LoadRoads(path string) (RoadSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RoadSet{}, fmt.Errorf("reading roads: %w", err)
	}
	var tiles []RoadTile
	if err := json.Unmarshal(data, &tiles); err != nil {
		return RoadSet{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return NewRoadSet(tiles), nil
}

// LoadWorld reads the ambient config document.
func LoadWorld(path string) (World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return World{}, fmt.Errorf("reading world: %w", err)
	}
	var w World
	if err := json.Unmarshal(data, &w); err != nil {
		return World{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return w, nil
}

// LoadSnapshot loads the three documents from a project directory. The
// house list is required. Roads and world are independently optional:
// an absent file defaults to empty/calm, but a present file that fails
// to parse is still an error.
func LoadSnapshot(dir string) (*Snapshot, error) {
	houses, err := LoadHouses(filepath.Join(dir, HousesFile))
	if errors.Is(err, ErrNoSnapshot) {
		houses, err = LoadHouses(filepath.Join(dir, LegacyHousesFile))
	}
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Houses: houses,
		World:  World{Weather: WeatherNone, TimeOfDay: TimeDay},
	}

	roadsPath := filepath.Join(dir, RoadsFile)
	if _, statErr := os.Stat(roadsPath); statErr == nil {
		roads, loadErr := LoadRoads(roadsPath)
		if loadErr != nil {
			return nil, loadErr
		}
		snap.Roads = roads
	}

	worldPath := filepath.Join(dir, WorldFile)
	if _, statErr := os.Stat(worldPath); statErr == nil {
		world, loadErr := LoadWorld(worldPath)
		if loadErr != nil {
			return nil, loadErr
		}
		if world.Weather == "" {
			world.Weather = WeatherNone
		}
		if world.TimeOfDay == "" {
			world.TimeOfDay = TimeDay
		}
		snap.World = world
	}

	return snap, nil
}
