package hexgrid

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		c    Coord
		want string
	}{
		{Tile{1, -2}, "1,-2,Tile"},
		{NewEdge(0, 0, EdgeWest), "-1,0,EdgeE"},
		{NewEdge(3, 4, EdgeNorthwest), "3,4,EdgeNW"},
		{NewEdge(0, 0, EdgeSouthwest), "0,-1,EdgeNE"},
		{NewCorner(0, 0, CornerSouth), "0,-1,CornerNE"},
		{NewCorner(2, 1, CornerNorth), "2,1,CornerN"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, tile := range sampleTiles() {
		coords := []Coord{tile}
		for _, e := range tile.EdgeNeighbors() {
			coords = append(coords, e)
		}
		for _, c := range tile.CornerNeighbors() {
			coords = append(coords, c)
		}
		for _, c := range coords {
			got, err := Parse(c.String())
			if err != nil {
				t.Fatalf("Parse(%q): %v", c.String(), err)
			}
			if got != c {
				t.Errorf("Parse(%q) = %v, want %v", c.String(), got, c)
			}
		}
	}
}

func TestParseAliases(t *testing.T) {
	e, err := ParseEdge("1,0,EdgeW")
	if err != nil {
		t.Fatal(err)
	}
	if e != NewEdge(0, 0, EdgeEast) {
		t.Errorf("EdgeW alias parsed to %v", e)
	}
	c, err := ParseCorner("-1,1,CornerSE")
	if err != nil {
		t.Fatal(err)
	}
	if c != NewCorner(0, 0, CornerNorth) {
		t.Errorf("CornerSE alias parsed to %v", c)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in    string
		field string
		want  error
	}{
		{"", "fields", ErrFieldCount},
		{"1,2", "fields", ErrFieldCount},
		{"1,2,Tile,extra", "fields", ErrFieldCount},
		{"a,2,Tile", "x", ErrInvalidInteger},
		{"1,2.5,Tile", "y", ErrInvalidInteger},
		{"99999999999999999999,0,Tile", "x", ErrInvalidInteger},
		{"1,2,EdgeN", "label", ErrUnknownLabel},
		{"1,2,tile", "label", ErrUnknownLabel},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tc.in, err, tc.want)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q) error is %T, want *ParseError", tc.in, err)
			continue
		}
		if pe.Field != tc.field || pe.Input != tc.in {
			t.Errorf("Parse(%q) error field=%q input=%q", tc.in, pe.Field, pe.Input)
		}
		if !strings.Contains(err.Error(), tc.field) {
			t.Errorf("error %q does not name field %q", err, tc.field)
		}
	}
}

func TestParseWrongKind(t *testing.T) {
	if _, err := ParseTile("0,0,EdgeE"); !errors.Is(err, ErrWrongKind) {
		t.Errorf("ParseTile on an edge: %v", err)
	}
	if _, err := ParseEdge("0,0,CornerN"); !errors.Is(err, ErrWrongKind) {
		t.Errorf("ParseEdge on a corner: %v", err)
	}
	if _, err := ParseCorner("0,0,Tile"); !errors.Is(err, ErrWrongKind) {
		t.Errorf("ParseCorner on a tile: %v", err)
	}
}

func TestJSONMapKeys(t *testing.T) {
	g := New[int, string, bool]()
	g.SetTile(Tile{1, 2}, 7)
	g.SetEdge(NewEdge(1, 2, EdgeWest), "road")
	g.SetCorner(NewCorner(1, 2, CornerSouth), true)

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"0,2,EdgeE"`) {
		t.Errorf("edge key not canonical in %s", data)
	}

	got := New[int, string, bool]()
	if err := json.Unmarshal(data, got); err != nil {
		t.Fatal(err)
	}
	if v, _ := got.Tile(Tile{1, 2}); v != 7 {
		t.Errorf("tile = %d, want 7", v)
	}
	if v, _ := got.Edge(NewEdge(0, 2, EdgeEast)); v != "road" {
		t.Errorf("edge = %q, want road", v)
	}
	if v, _ := got.Corner(NewCorner(1, 1, CornerNortheast)); !v {
		t.Error("corner lost in round trip")
	}
}
