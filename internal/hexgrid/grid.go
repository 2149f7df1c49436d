package hexgrid

import "fmt"

// Grid stores arbitrary data on tiles, edges and corners. The three maps are
// independent: deleting a tile leaves its edges and corners in place.
//
// A Grid is not safe for concurrent use.
type Grid[T, E, C any] struct {
	Tiles   map[Tile]T   `json:"tiles"`
	Edges   map[Edge]E   `json:"edges"`
	Corners map[Corner]C `json:"corners"`
}

// Entry pairs a coordinate with the data stored at it.
type Entry[K comparable, V any] struct {
	Coord K
	Data  V
}

// New creates an empty grid.
func New[T, E, C any]() *Grid[T, E, C] {
	return &Grid[T, E, C]{
		Tiles:   make(map[Tile]T),
		Edges:   make(map[Edge]E),
		Corners: make(map[Corner]C),
	}
}

// Tile returns the data at t.
func (g *Grid[T, E, C]) Tile(t Tile) (T, bool) {
	v, ok := g.Tiles[t]
	return v, ok
}

// SetTile stores data at t, replacing anything already there.
func (g *Grid[T, E, C]) SetTile(t Tile, data T) { g.Tiles[t] = data }

// DeleteTile removes t. Deleting a missing tile is a no-op.
func (g *Grid[T, E, C]) DeleteTile(t Tile) { delete(g.Tiles, t) }

// HasTile reports whether t is present.
func (g *Grid[T, E, C]) HasTile(t Tile) bool {
	_, ok := g.Tiles[t]
	return ok
}

// UpdateTile applies fn to the data at t in place. It returns false if t is
// not present.
func (g *Grid[T, E, C]) UpdateTile(t Tile, fn func(*T)) bool {
	v, ok := g.Tiles[t]
	if !ok {
		return false
	}
	fn(&v)
	g.Tiles[t] = v
	return true
}

// Edge returns the data at e.
func (g *Grid[T, E, C]) Edge(e Edge) (E, bool) {
	v, ok := g.Edges[e]
	return v, ok
}

// SetEdge stores data at e.
func (g *Grid[T, E, C]) SetEdge(e Edge, data E) { g.Edges[e] = data }

// DeleteEdge removes e.
func (g *Grid[T, E, C]) DeleteEdge(e Edge) { delete(g.Edges, e) }

// HasEdge reports whether e is present.
func (g *Grid[T, E, C]) HasEdge(e Edge) bool {
	_, ok := g.Edges[e]
	return ok
}

// UpdateEdge applies fn to the data at e in place.
func (g *Grid[T, E, C]) UpdateEdge(e Edge, fn func(*E)) bool {
	v, ok := g.Edges[e]
	if !ok {
		return false
	}
	fn(&v)
	g.Edges[e] = v
	return true
}

// Corner returns the data at c.
func (g *Grid[T, E, C]) Corner(c Corner) (C, bool) {
	v, ok := g.Corners[c]
	return v, ok
}

// SetCorner stores data at c.
func (g *Grid[T, E, C]) SetCorner(c Corner, data C) { g.Corners[c] = data }

// DeleteCorner removes c.
func (g *Grid[T, E, C]) DeleteCorner(c Corner) { delete(g.Corners, c) }

// HasCorner reports whether c is present.
func (g *Grid[T, E, C]) HasCorner(c Corner) bool {
	_, ok := g.Corners[c]
	return ok
}

// UpdateCorner applies fn to the data at c in place.
func (g *Grid[T, E, C]) UpdateCorner(c Corner, fn func(*C)) bool {
	v, ok := g.Corners[c]
	if !ok {
		return false
	}
	fn(&v)
	g.Corners[c] = v
	return true
}

// TileNeighbors returns the tiles adjacent to coord that are present in the
// grid. Missing neighbors are skipped.
func (g *Grid[T, E, C]) TileNeighbors(coord Coord) []Entry[Tile, T] {
	var res []Entry[Tile, T]
	for _, t := range coord.TileNeighbors() {
		if v, ok := g.Tiles[t]; ok {
			res = append(res, Entry[Tile, T]{Coord: t, Data: v})
		}
	}
	return res
}

// EdgeNeighbors returns the edges adjacent to coord that are present in the
// grid.
func (g *Grid[T, E, C]) EdgeNeighbors(coord Coord) []Entry[Edge, E] {
	var res []Entry[Edge, E]
	for _, e := range coord.EdgeNeighbors() {
		if v, ok := g.Edges[e]; ok {
			res = append(res, Entry[Edge, E]{Coord: e, Data: v})
		}
	}
	return res
}

// CornerNeighbors returns the corners adjacent to coord that are present in
// the grid.
func (g *Grid[T, E, C]) CornerNeighbors(coord Coord) []Entry[Corner, C] {
	var res []Entry[Corner, C]
	for _, c := range coord.CornerNeighbors() {
		if v, ok := g.Corners[c]; ok {
			res = append(res, Entry[Corner, C]{Coord: c, Data: v})
		}
	}
	return res
}

// Clear removes every tile, edge and corner.
func (g *Grid[T, E, C]) Clear() {
	clear(g.Tiles)
	clear(g.Edges)
	clear(g.Corners)
}

// String returns a summary of the grid.
func (g *Grid[T, E, C]) String() string {
	return fmt.Sprintf("Grid(tiles=%d, edges=%d, corners=%d)", len(g.Tiles), len(g.Edges), len(g.Corners))
}
