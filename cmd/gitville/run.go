package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChicagoDave/gitville/internal/server"
	"github.com/ChicagoDave/gitville/internal/viewer"
	"github.com/ChicagoDave/gitville/pkg/city"
	"github.com/ChicagoDave/gitville/pkg/export"
	"github.com/ChicagoDave/gitville/pkg/layout"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func runExport(dir, out string) error {
	proj, err := city.LoadProject(dir)
	if err != nil {
		return err
	}
	snap, err := city.LoadSnapshot(dir)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	// An --out path is taken as given; the yaml default is relative to
	// the project directory.
	if out == "" {
		out = filepath.Join(dir, proj.Export.Out)
	}
	if err := export.Write(out, snap, proj); err != nil {
		return err
	}

	printExportSummary(out, snap)
	return nil
}

func runView(dir string) error {
	return viewer.Run(dir, newLogger())
}

func runServe(dir, addr string) error {
	proj, err := city.LoadProject(dir)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = proj.Serve.Addr
	}
	return server.New(dir, addr, newLogger()).Start()
}

// runLayout regenerates the town plan. Known residents keep their cells
// and newcomers are appended, so the town only ever grows.
func runLayout(dir, namesFile string, add, contributors []string) error {
	names := append([]string(nil), add...)
	if namesFile != "" {
		fromFile, err := readNames(namesFile)
		if err != nil {
			return err
		}
		names = append(fromFile, names...)
	}

	existing, err := loadExistingHouses(dir)
	if err != nil {
		return err
	}

	contrib := make(map[string]bool, len(contributors))
	for _, name := range contributors {
		contrib[name] = true
	}

	var houses []city.House
	var roads []city.RoadTile
	if len(existing) == 0 {
		houses, roads = layout.Plan(names, contrib)
	} else {
		houses, roads = layout.Assign(existing, names)
		for i := range houses {
			if contrib[houses[i].Username] {
				houses[i].HasTerrace = true
			}
		}
	}
	if len(houses) == 0 {
		return errors.New("no inhabitants: pass --names or --add")
	}

	if err := writeDocument(filepath.Join(dir, city.HousesFile), houses); err != nil {
		return err
	}
	if err := writeDocument(filepath.Join(dir, city.RoadsFile), roads); err != nil {
		return err
	}
	if err := seedWorld(dir); err != nil {
		return err
	}

	printTownSummary(houses, roads, newcomers(existing, houses))
	return nil
}

func runWorld(op, dir string) error {
	path := filepath.Join(dir, city.WorldFile)
	w := loadWorldOrDefault(path)

	switch op {
	case "weather":
		w = rollWeather(w, rand.Float64())
		fmt.Printf("Weather updated to: %s\n", w.Weather)
	case "daynight":
		w = toggleDayNight(w)
		fmt.Printf("Time of day updated to: %s\n", w.TimeOfDay)
	default:
		return fmt.Errorf("unknown world operation %q (want weather or daynight)", op)
	}

	return writeDocument(path, w)
}

// rollWeather turns a uniform roll into rain one time in three.
func rollWeather(w city.World, roll float64) city.World {
	w.Weather = city.WeatherNone
	if roll < 1.0/3.0 {
		w.Weather = city.WeatherRain
	}
	return w
}

func toggleDayNight(w city.World) city.World {
	if w.TimeOfDay == city.TimeNight {
		w.TimeOfDay = city.TimeDay
	} else {
		w.TimeOfDay = city.TimeNight
	}
	return w
}

func loadWorldOrDefault(path string) city.World {
	w, err := city.LoadWorld(path)
	if err != nil {
		return city.World{Weather: city.WeatherNone, TimeOfDay: city.TimeDay}
	}
	return w
}

// loadExistingHouses reads the current house document if there is one.
// A missing document is not an error here; it just means a fresh town.
func loadExistingHouses(dir string) ([]city.House, error) {
	houses, err := city.LoadHouses(filepath.Join(dir, city.HousesFile))
	if errors.Is(err, city.ErrNoSnapshot) {
		houses, err = city.LoadHouses(filepath.Join(dir, city.LegacyHousesFile))
	}
	if errors.Is(err, city.ErrNoSnapshot) {
		return nil, nil
	}
	return houses, err
}

func readNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading names: %w", err)
	}
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}

// newcomers lists the residents of the new plan that the old document
// did not have.
func newcomers(before, after []city.House) []city.House {
	known := make(map[string]bool, len(before))
	for _, h := range before {
		if !h.IsObstacle() {
			known[h.Username] = true
		}
	}
	var out []city.House
	for _, h := range after {
		if !h.IsObstacle() && !known[h.Username] {
			out = append(out, h)
		}
	}
	return out
}

// seedWorld writes a calm daytime world document unless one exists, so
// a freshly planned town has all three snapshot documents.
func seedWorld(dir string) error {
	path := filepath.Join(dir, city.WorldFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return writeDocument(path, city.World{Weather: city.WeatherNone, TimeOfDay: city.TimeDay})
}

func writeDocument(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
