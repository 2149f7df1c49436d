package board

import (
	"slices"
	"testing"

	"github.com/talgya/hexboard/internal/hexgrid"
)

func TestPips(t *testing.T) {
	want := map[int]int{
		0: 0, 1: 0, 2: 1, 3: 2, 4: 3, 5: 4, 6: 5,
		7: 0, 8: 5, 9: 4, 10: 3, 11: 2, 12: 1, 13: 0, -4: 0,
	}
	for n, w := range want {
		if got := Pips(n); got != w {
			t.Errorf("Pips(%d) = %d, want %d", n, got, w)
		}
	}
}

func TestParseTerrain(t *testing.T) {
	for _, terrain := range Terrains {
		got, err := ParseTerrain(terrain.String())
		if err != nil || got != terrain {
			t.Errorf("ParseTerrain(%q) = %v, %v", terrain.String(), got, err)
		}
	}
	if got, err := ParseTerrain(" Rocks "); err != nil || got != TerrainStone {
		t.Errorf("ParseTerrain(rocks) = %v, %v", got, err)
	}
	if _, err := ParseTerrain("lava"); err == nil {
		t.Error("expected error for unknown terrain")
	}
}

func TestTerrainResource(t *testing.T) {
	if r, ok := TerrainGold.Resource(); !ok || r != ResourceGold {
		t.Errorf("gold resource = %v, %v", r, ok)
	}
	if TerrainDesert.IsResource() || TerrainOcean.IsResource() {
		t.Error("desert and ocean must not be resource terrains")
	}
	if !TerrainWood.IsResource() {
		t.Error("wood must be a resource terrain")
	}
}

func intp(n int) *int { return &n }

func TestAttach(t *testing.T) {
	b := New()
	for _, c := range hexgrid.Hexagon(hexgrid.Tile{}, 1) {
		b.SetTile(c, &Tile{Terrain: TerrainWheat})
	}
	road := &Edge{Road: RoadRoad, Owner: 3}
	e := hexgrid.NewEdge(0, 0, hexgrid.EdgeEast)
	b.SetEdge(e, road)

	Attach(b)

	if len(b.Edges) != 30 || len(b.Corners) != 24 {
		t.Errorf("after Attach: %v", b)
	}
	if got, _ := b.Edge(e); got != road {
		t.Error("Attach replaced an existing edge")
	}
}

func TestResourceTilesAndScore(t *testing.T) {
	b := New()
	b.SetTile(hexgrid.Tile{X: 0, Y: 0}, &Tile{Terrain: TerrainWood, Number: intp(6)})
	b.SetTile(hexgrid.Tile{X: -1, Y: 1}, &Tile{Terrain: TerrainClay, Number: intp(3)})
	b.SetTile(hexgrid.Tile{X: 0, Y: 1}, &Tile{Terrain: TerrainDesert})
	b.SetTile(hexgrid.Tile{X: 1, Y: 0}, &Tile{Terrain: TerrainOcean})

	got := ResourceTiles(b)
	want := []hexgrid.Tile{{X: 0, Y: 0}, {X: -1, Y: 1}}
	if !slices.Equal(got, want) {
		t.Errorf("ResourceTiles = %v, want %v", got, want)
	}

	score, n := CornerScore(b, hexgrid.NewCorner(0, 0, hexgrid.CornerNorth))
	if score != 7 || n != 2 {
		t.Errorf("CornerScore = %d from %d tiles, want 7 from 2", score, n)
	}

	counts := TerrainCounts(b)
	if counts[TerrainWood] != 1 || counts[TerrainOcean] != 1 || counts[TerrainSheep] != 0 {
		t.Errorf("TerrainCounts = %v", counts)
	}
}

func TestIsland(t *testing.T) {
	a, err := Island(3, 19, 42)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 19 {
		t.Fatalf("island has %d tiles, want 19", len(a))
	}
	b, err := Island(3, 19, 42)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, b) {
		t.Error("same seed produced different islands")
	}
	for _, c := range a {
		if hexgrid.Distance(hexgrid.Tile{}, c) > 3 {
			t.Errorf("tile %v outside radius", c)
		}
	}
	if _, err := Island(1, 8, 1); err == nil {
		t.Error("expected error when the island does not fit")
	}
}
