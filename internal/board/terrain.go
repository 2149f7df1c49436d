// Package board defines what sits on a generated board: terrain tiles with
// their number tokens, and the edges and corners between them.
package board

import (
	"fmt"
	"strings"
)

// Terrain types for board tiles.
type Terrain uint8

const (
	TerrainWheat  Terrain = iota // Fields
	TerrainWood                  // Forest
	TerrainSheep                 // Pasture
	TerrainStone                 // Mountains
	TerrainClay                  // Hills
	TerrainGold                  // Gold field, seafarers only
	TerrainDesert                // No resource, never numbered
	TerrainOcean                 // Water, never numbered
)

// Terrains lists every terrain in declaration order. Code that needs a
// deterministic order over terrain counts iterates this instead of a map.
var Terrains = []Terrain{
	TerrainWheat, TerrainWood, TerrainSheep, TerrainStone,
	TerrainClay, TerrainGold, TerrainDesert, TerrainOcean,
}

// Resource enumerates what a resource terrain produces.
type Resource uint8

const (
	ResourceWheat Resource = iota
	ResourceWood
	ResourceSheep
	ResourceStone
	ResourceClay
	ResourceGold
)

// Resource returns the resource produced by t. Desert and ocean produce
// nothing.
func (t Terrain) Resource() (Resource, bool) {
	if t <= TerrainGold {
		return Resource(t), true
	}
	return 0, false
}

// IsResource reports whether tiles of this terrain carry a number token.
func (t Terrain) IsResource() bool {
	_, ok := t.Resource()
	return ok
}

var terrainNames = map[Terrain]string{
	TerrainWheat:  "wheat",
	TerrainWood:   "wood",
	TerrainSheep:  "sheep",
	TerrainStone:  "stone",
	TerrainClay:   "clay",
	TerrainGold:   "gold",
	TerrainDesert: "desert",
	TerrainOcean:  "ocean",
}

// String returns the lower-case terrain name used in presets and storage.
func (t Terrain) String() string {
	if name, ok := terrainNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTerrain is the inverse of Terrain.String. It is case-insensitive and
// also accepts "rocks" and "ore" for stone.
func ParseTerrain(s string) (Terrain, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "rocks", "ore":
		return TerrainStone, nil
	}
	for t, n := range terrainNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown terrain %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Terrain) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Terrain) UnmarshalText(b []byte) error {
	v, err := ParseTerrain(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Pips returns the probability weight of a number token: the number of
// two-dice rolls out of 36 that produce it. Any value outside 2..12, and 7,
// weighs 0.
func Pips(number int) int {
	switch number {
	case 2, 12:
		return 1
	case 3, 11:
		return 2
	case 4, 10:
		return 3
	case 5, 9:
		return 4
	case 6, 8:
		return 5
	default:
		return 0
	}
}
