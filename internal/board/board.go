package board

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/talgya/hexboard/internal/hexgrid"
)

// PlayerID identifies the owner of a road or building. Zero means unowned.
type PlayerID uint64

// Tile is the data stored on one hex of the board.
type Tile struct {
	Terrain Terrain `json:"terrain"`

	// Number token printed on the tile, nil until numbers are placed.
	// Only resource tiles are ever numbered.
	Number *int `json:"number,omitempty"`

	// Thief is the robber on land and the pirate on ocean tiles.
	Thief bool `json:"thief"`

	// FaceUp is false for tiles hidden until someone builds next to them.
	FaceUp bool `json:"face_up"`
}

// Pips returns the probability weight of the tile's number, 0 if unnumbered.
func (t *Tile) Pips() int {
	if t.Number == nil {
		return 0
	}
	return Pips(*t.Number)
}

// RoadKind says what, if anything, is built on an edge.
type RoadKind uint8

const (
	RoadNone RoadKind = iota
	RoadRoad
	RoadShip
)

// Port describes a harbor on a coastal edge. A nil Resource accepts any
// resource (the 3:1 harbor).
type Port struct {
	Resource *Resource `json:"resource,omitempty"`
	Cost     int       `json:"cost"`
	Reward   int       `json:"reward"`
}

// Edge is the data stored on one side of a hex.
type Edge struct {
	Road  RoadKind `json:"road"`
	Owner PlayerID `json:"owner,omitempty"`
	Port  *Port    `json:"port,omitempty"`
}

// Building says what, if anything, is built on a corner.
type Building uint8

const (
	BuildingNone Building = iota
	BuildingSettlement
	BuildingCity
)

// Corner is the data stored on one vertex of the board.
type Corner struct {
	Building Building `json:"building"`
	Owner    PlayerID `json:"owner,omitempty"`
}

// Board is the populated grid handed to game state and rendering.
type Board = hexgrid.Grid[*Tile, *Edge, *Corner]

// New creates an empty board.
func New() *Board {
	return hexgrid.New[*Tile, *Edge, *Corner]()
}

// Attach adds an empty edge and corner around every tile that does not
// already have one. Existing edges and corners are left untouched.
func Attach(b *Board) {
	for t := range b.Tiles {
		for _, e := range t.EdgeNeighbors() {
			if !b.HasEdge(e) {
				b.SetEdge(e, &Edge{})
			}
		}
		for _, c := range t.CornerNeighbors() {
			if !b.HasCorner(c) {
				b.SetCorner(c, &Corner{})
			}
		}
	}
}

// SortTiles orders tile coordinates by row, then column.
func SortTiles(tiles []hexgrid.Tile) {
	slices.SortFunc(tiles, func(a, b hexgrid.Tile) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
}

// ResourceTiles returns the coordinates of every resource tile, sorted.
func ResourceTiles(b *Board) []hexgrid.Tile {
	var res []hexgrid.Tile
	for c, t := range b.Tiles {
		if t.Terrain.IsResource() {
			res = append(res, c)
		}
	}
	SortTiles(res)
	return res
}

// TerrainCounts returns a summary of terrain type distribution.
func TerrainCounts(b *Board) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, t := range b.Tiles {
		counts[t.Terrain]++
	}
	return counts
}

// CornerScore returns the pip sum of the numbered tiles around c and how
// many numbered tiles contributed.
func CornerScore(b *Board, c hexgrid.Corner) (score, numbered int) {
	for _, n := range b.TileNeighbors(c) {
		if n.Data.Number != nil {
			score += n.Data.Pips()
			numbered++
		}
	}
	return score, numbered
}

// Summary returns a one-line description of the board.
func Summary(b *Board) string {
	counts := TerrainCounts(b)
	s := fmt.Sprintf("Board(tiles=%d", len(b.Tiles))
	for _, t := range Terrains {
		if counts[t] > 0 {
			s += fmt.Sprintf(", %s=%d", t, counts[t])
		}
	}
	return s + ")"
}
