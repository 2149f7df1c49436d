package hexgrid

// EdgeDirection names one of the six edges of a pointy-top hexagon.
type EdgeDirection uint8

const (
	EdgeNorthwest EdgeDirection = iota
	EdgeNortheast
	EdgeEast
	EdgeSoutheast
	EdgeSouthwest
	EdgeWest
)

// EdgeDirections lists all six edge directions, canonical ones first.
var EdgeDirections = [6]EdgeDirection{
	EdgeNorthwest, EdgeNortheast, EdgeEast,
	EdgeSoutheast, EdgeSouthwest, EdgeWest,
}

// CornerDirection names one of the six corners of a pointy-top hexagon.
type CornerDirection uint8

const (
	CornerNorth CornerDirection = iota
	CornerNortheast
	CornerSoutheast
	CornerSouth
	CornerSouthwest
	CornerNorthwest
)

// CornerDirections lists all six corner directions, canonical ones first.
var CornerDirections = [6]CornerDirection{
	CornerNorth, CornerNortheast,
	CornerSoutheast, CornerSouth, CornerSouthwest, CornerNorthwest,
}

// canonicalEdge translates an edge named from tile (x, y) into the frame
// where its direction is Northwest, Northeast or East.
func canonicalEdge(x, y int, dir EdgeDirection) (int, int, EdgeDirection) {
	switch dir {
	case EdgeNorthwest:
		return x, y, EdgeNorthwest
	case EdgeNortheast:
		return x, y, EdgeNortheast
	case EdgeEast:
		return x, y, EdgeEast
	case EdgeSoutheast:
		return x + 1, y - 1, EdgeNorthwest
	case EdgeSouthwest:
		return x, y - 1, EdgeNortheast
	default: // EdgeWest
		return x - 1, y, EdgeEast
	}
}

// canonicalCorner translates a corner named from tile (x, y) into the frame
// where its direction is North or Northeast.
func canonicalCorner(x, y int, dir CornerDirection) (int, int, CornerDirection) {
	switch dir {
	case CornerNorth:
		return x, y, CornerNorth
	case CornerNortheast:
		return x, y, CornerNortheast
	case CornerSoutheast:
		return x + 1, y - 1, CornerNorth
	case CornerSouth:
		return x, y - 1, CornerNortheast
	case CornerSouthwest:
		return x, y - 1, CornerNorth
	default: // CornerNorthwest
		return x - 1, y, CornerNortheast
	}
}

// String returns the short compass name of the direction.
func (d EdgeDirection) String() string {
	switch d {
	case EdgeNorthwest:
		return "NW"
	case EdgeNortheast:
		return "NE"
	case EdgeEast:
		return "E"
	case EdgeSoutheast:
		return "SE"
	case EdgeSouthwest:
		return "SW"
	case EdgeWest:
		return "W"
	default:
		return "?"
	}
}

// String returns the short compass name of the direction.
func (d CornerDirection) String() string {
	switch d {
	case CornerNorth:
		return "N"
	case CornerNortheast:
		return "NE"
	case CornerSoutheast:
		return "SE"
	case CornerSouth:
		return "S"
	case CornerSouthwest:
		return "SW"
	case CornerNorthwest:
		return "NW"
	default:
		return "?"
	}
}
