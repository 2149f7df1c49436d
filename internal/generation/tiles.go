package generation

import (
	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/hexgrid"
)

// tileSearch is the state of one terrain placement attempt.
type tileSearch struct {
	board         *board.Board
	coords        []hexgrid.Tile
	avoidAdjacent bool

	// oceanStarted is true once any ocean tile is on the board. After that,
	// new ocean tiles must touch an existing one, which keeps the water in
	// one connected body.
	oceanStarted bool
}

func (ts *tileSearch) place(slot int, t board.Terrain) bool {
	c := ts.coords[slot]

	same := 0
	for _, n := range ts.board.TileNeighbors(c) {
		if n.Data.Terrain == t {
			same++
		}
	}

	if t == board.TerrainOcean {
		if ts.oceanStarted && same == 0 {
			return false
		}
	} else if ts.avoidAdjacent && same > 0 {
		return false
	}

	ts.board.SetTile(c, &board.Tile{Terrain: t, FaceUp: true})
	if t == board.TerrainOcean {
		ts.oceanStarted = true
	}
	return true
}

func (ts *tileSearch) undo(slot int, t board.Terrain) {
	ts.board.DeleteTile(ts.coords[slot])
	if t == board.TerrainOcean {
		ts.oceanStarted = ts.hasOcean()
	}
}

func (ts *tileSearch) hasOcean() bool {
	for _, tile := range ts.board.Tiles {
		if tile.Terrain == board.TerrainOcean {
			return true
		}
	}
	return false
}

// Tiles places the terrain counts from the settings onto the footprint.
// Each attempt reshuffles the terrain and searches from an empty board.
func (g *Generator) Tiles() (*board.Board, error) {
	if err := g.Settings.validateTiles(); err != nil {
		return nil, err
	}

	pool := g.Settings.terrainPool()
	b := board.New()
	attempts := g.Settings.maxAttempts()

	for attempt := 1; attempt <= attempts; attempt++ {
		b.Clear()
		g.Rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})

		ts := &tileSearch{
			board:         b,
			coords:        g.Settings.Coords,
			avoidAdjacent: g.Settings.AvoidAdjacent,
		}
		s := &search[board.Terrain]{
			pool:     pool,
			slots:    len(ts.coords),
			place:    ts.place,
			undo:     ts.undo,
			maxSteps: g.Settings.maxSteps(),
		}
		res := s.run()

		g.Stats.TileAttempts = attempt
		g.Stats.TileSteps += s.steps

		if res == solved {
			g.logger().Debug("tiles placed", "attempt", attempt, "steps", s.steps)
			return b, nil
		}
		g.logger().Debug("tile placement attempt failed",
			"attempt", attempt,
			"steps", s.steps,
			"reason", res.String(),
		)
	}

	return nil, &ExhaustedError{Phase: PhaseTiles, Attempts: attempts}
}
