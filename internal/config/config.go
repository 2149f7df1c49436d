// Package config loads board presets from YAML. A handful of presets are
// built in; others can be read from a file.
package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/generation"
	"github.com/talgya/hexboard/internal/hexgrid"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// ErrUnknownPreset is returned by Builtin for a name with no built-in file.
var ErrUnknownPreset = errors.New("unknown preset")

// Footprint shapes.
const (
	ShapeHexagon   = "hexagon"
	ShapeElongated = "elongated"
	ShapeIsland    = "island"
	ShapeList      = "list"
)

// Preset is one board recipe as written in YAML.
type Preset struct {
	Name          string         `yaml:"name"`
	Terrain       map[string]int `yaml:"terrain"`
	AvoidAdjacent bool           `yaml:"avoid_adjacent"`
	Footprint     Footprint      `yaml:"footprint"`
	CornerScore   CornerScore    `yaml:"corner_score"`
	Tokens        []int          `yaml:"tokens"`
	MaxAttempts   int            `yaml:"max_attempts"`
	MaxSteps      int            `yaml:"max_steps"`
}

// Footprint describes the set of board positions.
type Footprint struct {
	Shape  string   `yaml:"shape"`
	Radius int      `yaml:"radius"`
	Seed   int64    `yaml:"seed"`   // island only
	Coords []string `yaml:"coords"` // list only, "x,y,Tile"
}

// CornerScore bounds the pip sum at each corner.
type CornerScore struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Load reads a preset from a YAML file.
func Load(filename string) (*Preset, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	return parse(data)
}

// Builtin returns the built-in preset with the given name.
func Builtin(name string) (*Preset, error) {
	data, err := presetFS.ReadFile(path.Join("presets", name+".yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preset %q: %w", name, err)
	}
	return parse(data)
}

// Presets lists the built-in preset names, sorted.
func Presets() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func parse(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}

	// Set defaults if not provided
	if p.Footprint.Shape == "" {
		p.Footprint.Shape = ShapeHexagon
	}
	if p.CornerScore.Max == 0 {
		// Three 6/8 tiles meeting at a corner score 15.
		p.CornerScore.Max = 15
	}
	if p.MaxAttempts == 0 {
		p.MaxAttempts = generation.DefaultMaxAttempts
	}
	if p.MaxSteps == 0 {
		p.MaxSteps = generation.DefaultMaxSteps
	}

	return &p, nil
}

// Settings converts the preset into generation settings. It fails on names
// and coordinates it cannot read; the settings themselves are checked by
// generation.Settings.Validate.
func (p *Preset) Settings() (generation.Settings, error) {
	terrain := make(map[board.Terrain]int, len(p.Terrain))
	total := 0
	for name, n := range p.Terrain {
		t, err := board.ParseTerrain(name)
		if err != nil {
			return generation.Settings{}, fmt.Errorf("preset %s: %w", p.Name, err)
		}
		terrain[t] += n
		total += n
	}

	coords, err := p.Footprint.coords(total)
	if err != nil {
		return generation.Settings{}, fmt.Errorf("preset %s: footprint: %w", p.Name, err)
	}

	return generation.Settings{
		Terrain:        terrain,
		AvoidAdjacent:  p.AvoidAdjacent,
		Coords:         coords,
		MinCornerScore: p.CornerScore.Min,
		MaxCornerScore: p.CornerScore.Max,
		Tokens:         slices.Clone(p.Tokens),
		MaxAttempts:    p.MaxAttempts,
		MaxSteps:       p.MaxSteps,
	}, nil
}

// coords expands the footprint. An island needs to know how many tiles the
// terrain counts call for.
func (f Footprint) coords(tiles int) ([]hexgrid.Tile, error) {
	if f.Shape != ShapeList && f.Radius < 0 {
		return nil, fmt.Errorf("negative radius %d", f.Radius)
	}

	switch f.Shape {
	case ShapeHexagon:
		return hexgrid.Hexagon(hexgrid.Tile{}, f.Radius), nil
	case ShapeElongated:
		return hexgrid.Elongated(hexgrid.Tile{}, f.Radius), nil
	case ShapeIsland:
		return board.Island(f.Radius, tiles, f.Seed)
	case ShapeList:
		res := make([]hexgrid.Tile, 0, len(f.Coords))
		for _, s := range f.Coords {
			t, err := hexgrid.ParseTile(s)
			if err != nil {
				return nil, err
			}
			res = append(res, t)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unknown shape %q", f.Shape)
	}
}
