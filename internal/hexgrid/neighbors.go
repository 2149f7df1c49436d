package hexgrid

// TileNeighbors returns the six adjacent tiles, counter-clockwise from east.
func (t Tile) TileNeighbors() []Tile {
	res := make([]Tile, 0, 6)
	for _, d := range TileDirections {
		res = append(res, t.Add(d))
	}
	return res
}

// EdgeNeighbors returns the six sides of t.
func (t Tile) EdgeNeighbors() []Edge {
	res := make([]Edge, 0, 6)
	for _, d := range EdgeDirections {
		res = append(res, t.Edge(d))
	}
	return res
}

// CornerNeighbors returns the six vertices of t.
func (t Tile) CornerNeighbors() []Corner {
	res := make([]Corner, 0, 6)
	for _, d := range CornerDirections {
		res = append(res, t.Corner(d))
	}
	return res
}

// TileNeighbors returns the two tiles on either side of e.
func (e Edge) TileNeighbors() []Tile {
	switch e.dir {
	case EdgeNorthwest:
		return []Tile{{e.x, e.y}, {e.x - 1, e.y + 1}}
	case EdgeNortheast:
		return []Tile{{e.x, e.y}, {e.x, e.y + 1}}
	default:
		return []Tile{{e.x, e.y}, {e.x + 1, e.y}}
	}
}

// EdgeNeighbors returns the four edges sharing an endpoint with e.
func (e Edge) EdgeNeighbors() []Edge {
	x, y := e.x, e.y
	switch e.dir {
	case EdgeNorthwest:
		return []Edge{
			NewEdge(x, y, EdgeWest),
			NewEdge(x, y, EdgeNortheast),
			NewEdge(x-1, y+1, EdgeSouthwest),
			NewEdge(x-1, y+1, EdgeEast),
		}
	case EdgeNortheast:
		return []Edge{
			NewEdge(x, y, EdgeNorthwest),
			NewEdge(x, y, EdgeEast),
			NewEdge(x, y+1, EdgeWest),
			NewEdge(x, y+1, EdgeSoutheast),
		}
	default:
		return []Edge{
			NewEdge(x, y, EdgeNortheast),
			NewEdge(x, y, EdgeSoutheast),
			NewEdge(x+1, y, EdgeNorthwest),
			NewEdge(x+1, y, EdgeSouthwest),
		}
	}
}

// CornerNeighbors returns the two endpoints of e.
func (e Edge) CornerNeighbors() []Corner {
	x, y := e.x, e.y
	switch e.dir {
	case EdgeNorthwest:
		return []Corner{NewCorner(x, y, CornerNorthwest), NewCorner(x, y, CornerNorth)}
	case EdgeNortheast:
		return []Corner{NewCorner(x, y, CornerNorth), NewCorner(x, y, CornerNortheast)}
	default:
		return []Corner{NewCorner(x, y, CornerNortheast), NewCorner(x, y, CornerSoutheast)}
	}
}

// TileNeighbors returns the three tiles meeting at c.
func (c Corner) TileNeighbors() []Tile {
	if c.dir == CornerNortheast {
		return []Tile{{c.x, c.y}, {c.x, c.y + 1}, {c.x + 1, c.y}}
	}
	return []Tile{{c.x, c.y}, {c.x - 1, c.y + 1}, {c.x, c.y + 1}}
}

// EdgeNeighbors returns the three edges meeting at c.
func (c Corner) EdgeNeighbors() []Edge {
	x, y := c.x, c.y
	if c.dir == CornerNortheast {
		return []Edge{
			NewEdge(x, y, EdgeNortheast),
			NewEdge(x, y, EdgeEast),
			NewEdge(x+1, y, EdgeNorthwest),
		}
	}
	return []Edge{
		NewEdge(x, y, EdgeNorthwest),
		NewEdge(x, y, EdgeNortheast),
		NewEdge(x-1, y+1, EdgeEast),
	}
}

// CornerNeighbors returns the three corners one edge away from c.
func (c Corner) CornerNeighbors() []Corner {
	x, y := c.x, c.y
	if c.dir == CornerNortheast {
		return []Corner{
			NewCorner(x, y, CornerNorth),
			NewCorner(x, y, CornerSoutheast),
			NewCorner(x+1, y, CornerNorth),
		}
	}
	return []Corner{
		NewCorner(x, y, CornerNorthwest),
		NewCorner(x, y, CornerNortheast),
		NewCorner(x, y+1, CornerNorthwest),
	}
}
