// Package hexgrid provides the canonical coordinate system for an unbounded
// pointy-top hex tiling: tiles, the edges between them, and the corners where
// they meet.
//
// Tiles use axial coordinates (x, y). The six neighbors of (x, y) are
// east (x+1, y), northeast (x, y+1), northwest (x-1, y+1), west (x-1, y),
// southwest (x, y-1) and southeast (x+1, y-1).
//
// Every edge is shared by two tiles and every corner by three, so each has
// several names. Constructors translate any name into a single canonical
// form (edges: NW, NE, E; corners: N, NE), which makes the coordinate types
// directly comparable and usable as map keys.
package hexgrid

// Coord is implemented by Tile, Edge and Corner.
type Coord interface {
	// String returns the "x,y,label" text form.
	String() string
	TileNeighbors() []Tile
	EdgeNeighbors() []Edge
	CornerNeighbors() []Corner
}

// Tile identifies one hexagon. Every (X, Y) pair is already canonical.
type Tile struct {
	X int
	Y int
}

// Edge identifies one side of a hexagon. The zero value is the northwest
// edge of tile (0, 0). Use NewEdge to build one.
type Edge struct {
	x, y int
	dir  EdgeDirection
}

// Corner identifies one vertex of a hexagon. The zero value is the north
// corner of tile (0, 0).
type Corner struct {
	x, y int
	dir  CornerDirection
}

// TileDirections defines the six neighbor offsets, counter-clockwise from
// east.
var TileDirections = [6]Tile{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
}

// NewTile returns the tile at (x, y).
func NewTile(x, y int) Tile { return Tile{X: x, Y: y} }

// NewEdge returns the canonical edge on side dir of tile (x, y).
func NewEdge(x, y int, dir EdgeDirection) Edge {
	cx, cy, d := canonicalEdge(x, y, dir)
	return Edge{x: cx, y: cy, dir: d}
}

// NewCorner returns the canonical corner at vertex dir of tile (x, y).
func NewCorner(x, y int, dir CornerDirection) Corner {
	cx, cy, d := canonicalCorner(x, y, dir)
	return Corner{x: cx, y: cy, dir: d}
}

// Add returns t+o in axial space.
func (t Tile) Add(o Tile) Tile { return Tile{X: t.X + o.X, Y: t.Y + o.Y} }

// Scale multiplies both components by k.
func (t Tile) Scale(k int) Tile { return Tile{X: t.X * k, Y: t.Y * k} }

// Edge returns the canonical edge on side dir of t.
func (t Tile) Edge(dir EdgeDirection) Edge { return NewEdge(t.X, t.Y, dir) }

// Corner returns the canonical corner at vertex dir of t.
func (t Tile) Corner(dir CornerDirection) Corner { return NewCorner(t.X, t.Y, dir) }

// X returns the x component of the tile the edge is anchored to.
func (e Edge) X() int { return e.x }

// Y returns the y component of the tile the edge is anchored to.
func (e Edge) Y() int { return e.y }

// Direction returns the canonical direction: EdgeNorthwest, EdgeNortheast or
// EdgeEast.
func (e Edge) Direction() EdgeDirection { return e.dir }

// Canonical re-derives the canonical form. Edges are canonicalized on
// construction, so this always equals e.
func (e Edge) Canonical() Edge { return NewEdge(e.x, e.y, e.dir) }

// X returns the x component of the tile the corner is anchored to.
func (c Corner) X() int { return c.x }

// Y returns the y component of the tile the corner is anchored to.
func (c Corner) Y() int { return c.y }

// Direction returns the canonical direction: CornerNorth or CornerNortheast.
func (c Corner) Direction() CornerDirection { return c.dir }

// Canonical re-derives the canonical form; always equal to c.
func (c Corner) Canonical() Corner { return NewCorner(c.x, c.y, c.dir) }

// Distance returns the hex distance between two tiles.
func Distance(a, b Tile) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := -dx - dy
	return max(abs(dx), abs(dy), abs(dz))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
