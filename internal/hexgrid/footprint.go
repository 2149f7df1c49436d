package hexgrid

// Ring returns the tiles at exact distance k from center, starting at the
// southwest corner of the ring and proceeding counter-clockwise.
// If k==0, returns [center].
func Ring(center Tile, k int) []Tile {
	if k <= 0 {
		return []Tile{center}
	}
	res := make([]Tile, 0, 6*k)
	cur := center.Add(TileDirections[4].Scale(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(TileDirections[side])
		}
	}
	return res
}

// Hexagon returns every tile within distance radius of center, ordered as a
// spiral from the center outward (ring 0, ring 1, ...).
func Hexagon(center Tile, radius int) []Tile {
	res := make([]Tile, 0, 1+3*radius*(radius+1))
	for k := 0; k <= radius; k++ {
		res = append(res, Ring(center, k)...)
	}
	return res
}

// Elongated returns the hexagon of radius+1 with the easternmost tile of
// every row removed. For radius 2 this is the 30-tile board with rows of
// 3, 4, 5, 6, 5, 4, 3. Order follows Hexagon.
func Elongated(center Tile, radius int) []Tile {
	r := radius + 1
	all := Hexagon(center, r)
	res := make([]Tile, 0, len(all)-(2*r+1))
	for _, t := range all {
		dx, dy := t.X-center.X, t.Y-center.Y
		if dx == min(r, r-dy) {
			continue
		}
		res = append(res, t)
	}
	return res
}
