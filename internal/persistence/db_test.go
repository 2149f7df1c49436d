package persistence

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/hexgrid"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "boards.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleBoard() *board.Board {
	b := board.New()
	six := 6
	b.SetTile(hexgrid.Tile{X: 0, Y: 0}, &board.Tile{Terrain: board.TerrainWood, Number: &six, FaceUp: true})
	b.SetTile(hexgrid.Tile{X: 1, Y: 0}, &board.Tile{Terrain: board.TerrainDesert, Thief: true, FaceUp: true})
	b.SetTile(hexgrid.Tile{X: -1, Y: 1}, &board.Tile{Terrain: board.TerrainOcean})
	board.Attach(b)

	sheep := board.ResourceSheep
	b.UpdateEdge(hexgrid.NewEdge(0, 0, hexgrid.EdgeEast), func(e **board.Edge) {
		(*e).Road = board.RoadRoad
		(*e).Owner = 2
	})
	b.UpdateEdge(hexgrid.NewEdge(0, 0, hexgrid.EdgeNorthwest), func(e **board.Edge) {
		(*e).Port = &board.Port{Resource: &sheep, Cost: 2, Reward: 1}
	})
	b.UpdateCorner(hexgrid.NewCorner(0, 0, hexgrid.CornerNorth), func(c **board.Corner) {
		(*c).Building = board.BuildingCity
		(*c).Owner = 2
	})
	return b
}

func TestBoardRoundTrip(t *testing.T) {
	db := openTest(t)
	orig := sampleBoard()

	id, err := db.SaveBoard(&Record{Preset: "custom", Seed: 42, Board: orig})
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("no id assigned")
	}

	rec, err := db.LoadBoard(id)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Preset != "custom" || rec.Seed != 42 {
		t.Errorf("record = %+v", rec)
	}
	got := rec.Board
	if len(got.Tiles) != len(orig.Tiles) || len(got.Edges) != len(orig.Edges) || len(got.Corners) != len(orig.Corners) {
		t.Fatalf("loaded %v, saved %v", got, orig)
	}

	for c, want := range orig.Tiles {
		tile, ok := got.Tile(c)
		if !ok {
			t.Fatalf("tile %v missing", c)
		}
		if tile.Terrain != want.Terrain || tile.Pips() != want.Pips() ||
			tile.Thief != want.Thief || tile.FaceUp != want.FaceUp {
			t.Errorf("tile %v = %+v, want %+v", c, tile, want)
		}
		if (tile.Number == nil) != (want.Number == nil) {
			t.Errorf("tile %v number = %v, want %v", c, tile.Number, want.Number)
		}
	}

	road, _ := got.Edge(hexgrid.NewEdge(1, 0, hexgrid.EdgeWest))
	if road.Road != board.RoadRoad || road.Owner != 2 {
		t.Errorf("road = %+v", road)
	}
	port, _ := got.Edge(hexgrid.NewEdge(0, 0, hexgrid.EdgeNorthwest))
	if port.Port == nil || port.Port.Resource == nil || *port.Port.Resource != board.ResourceSheep || port.Port.Cost != 2 {
		t.Errorf("port = %+v", port.Port)
	}
	city, _ := got.Corner(hexgrid.NewCorner(0, 0, hexgrid.CornerNorth))
	if city.Building != board.BuildingCity || city.Owner != 2 {
		t.Errorf("corner = %+v", city)
	}

	last, err := db.GetMeta(MetaLastBoard)
	if err != nil || last != id {
		t.Errorf("last board = %q, %v; want %q", last, err, id)
	}
}

func TestLoadBoardNotFound(t *testing.T) {
	db := openTest(t)
	if _, err := db.LoadBoard("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListBoards(t *testing.T) {
	db := openTest(t)
	base := time.Unix(1700000000, 0)
	for i, name := range []string{"a", "b", "c"} {
		_, err := db.SaveBoard(&Record{
			Preset:    name,
			Seed:      int64(i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Board:     sampleBoard(),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	recs, err := db.ListBoards(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[0].Preset != "c" || recs[1].Preset != "b" {
		t.Fatalf("ListBoards = %+v", recs)
	}
	if recs[0].Board != nil {
		t.Error("ListBoards should not load board contents")
	}
	if !recs[0].CreatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("created = %v", recs[0].CreatedAt)
	}
}

func TestLoadBoardCorruptCoord(t *testing.T) {
	db := openTest(t)
	id, err := db.SaveBoard(&Record{Preset: "x", Board: sampleBoard()})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.conn.Exec(
		"INSERT INTO board_tiles (board_id, coord, terrain, thief, face_up) VALUES (?, 'nonsense', 'wood', 0, 1)", id,
	); err != nil {
		t.Fatal(err)
	}
	if _, err := db.LoadBoard(id); err == nil {
		t.Error("expected an error for a corrupt coordinate")
	}
}
