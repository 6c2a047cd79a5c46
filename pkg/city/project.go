package city

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the optional presentation preset document.
const ProjectFile = "gitville.yaml"

// Project carries presentation presets for a town directory. Everything
// is optional; zero values fall back to the defaults below.
type Project struct {
	Title      string       `yaml:"title"`
	Background string       `yaml:"background"`
	Weather    string       `yaml:"weather"`
	TimeOfDay  string       `yaml:"timeOfDay"`
	Export     ExportPreset `yaml:"export"`
	Serve      ServePreset  `yaml:"serve"`
}

// ExportPreset tunes the static snapshot framing. These are presentation
// constants, not scene semantics.
type ExportPreset struct {
	Out    string  `yaml:"out"`
	Pad    float64 `yaml:"pad"`
	TopPad float64 `yaml:"topPad"`
}

// ServePreset configures the dev server.
type ServePreset struct {
	Addr string `yaml:"addr"`
}

// DefaultProject returns the presets used when gitville.yaml is absent.
func DefaultProject() Project {
	return Project{
		Title:      "GitVille",
		Background: "#81c784",
		Export: ExportPreset{
			Out:    "city_snapshot.svg",
			Pad:    120,
			TopPad: 50,
		},
		Serve: ServePreset{
			Addr: ":8420",
		},
	}
}

// LoadProject reads gitville.yaml from a project directory. A missing
// file is not an error; unknown keys in a present file are.
func LoadProject(dir string) (Project, error) {
	proj := DefaultProject()

	data, err := os.ReadFile(filepath.Join(dir, ProjectFile))
	if err != nil {
		if os.IsNotExist(err) {
			return proj, nil
		}
		return proj, fmt.Errorf("reading project: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var loaded Project
	if err := dec.Decode(&loaded); err != nil {
		return proj, fmt.Errorf("parsing %s: %w", ProjectFile, err)
	}

	if loaded.Title != "" {
		proj.Title = loaded.Title
	}
	if loaded.Background != "" {
		proj.Background = loaded.Background
	}
	proj.Weather = loaded.Weather
	proj.TimeOfDay = loaded.TimeOfDay
	if loaded.Export.Out != "" {
		proj.Export.Out = loaded.Export.Out
	}
	if loaded.Export.Pad != 0 {
		proj.Export.Pad = loaded.Export.Pad
	}
	if loaded.Export.TopPad != 0 {
		proj.Export.TopPad = loaded.Export.TopPad
	}
	if loaded.Serve.Addr != "" {
		proj.Serve.Addr = loaded.Serve.Addr
	}
	return proj, nil
}

// ApplyWorld overlays the project's weather and time-of-day overrides on
// a loaded world document. Empty override fields inherit the document.
func (p Project) ApplyWorld(w World) World {
	if p.Weather != "" {
		w.Weather = p.Weather
	}
	if p.TimeOfDay != "" {
		w.TimeOfDay = p.TimeOfDay
	}
	return w
}
