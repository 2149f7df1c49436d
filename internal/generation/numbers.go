package generation

import (
	"slices"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/hexgrid"
)

// numberSearch is the state of one token placement attempt.
type numberSearch struct {
	board    *board.Board
	coords   []hexgrid.Tile
	minScore int
	maxScore int
}

// place rejects v at slot if it would push any corner of the tile over the
// maximum score, or leave a corner whose tiles are now all numbered under
// the minimum. Corners with fewer than two numbered tiles are not checked.
func (ns *numberSearch) place(slot int, v int) bool {
	c := ns.coords[slot]
	w := board.Pips(v)

	for _, k := range c.CornerNeighbors() {
		score, numbered, open := 0, 0, 0
		for _, n := range ns.board.TileNeighbors(k) {
			if n.Coord == c || !n.Data.Terrain.IsResource() {
				continue
			}
			if n.Data.Number != nil {
				score += n.Data.Pips()
				numbered++
			} else {
				open++
			}
		}
		if numbered == 0 {
			continue
		}
		score += w
		if score > ns.maxScore {
			return false
		}
		if open == 0 && score < ns.minScore {
			return false
		}
	}

	tile := ns.board.Tiles[c]
	n := v
	tile.Number = &n
	return true
}

func (ns *numberSearch) undo(slot int, _ int) {
	ns.board.Tiles[ns.coords[slot]].Number = nil
}

// Numbers places the settings' tokens on the resource tiles of b. On
// failure every number placed so far is cleared again.
func (g *Generator) Numbers(b *board.Board) error {
	coords := board.ResourceTiles(b)
	if err := g.Settings.validateNumbers(len(coords)); err != nil {
		return err
	}

	pool := slices.Clone(g.Settings.Tokens)
	attempts := g.Settings.maxAttempts()

	for attempt := 1; attempt <= attempts; attempt++ {
		for _, c := range coords {
			b.Tiles[c].Number = nil
		}
		g.Rand.Shuffle(len(coords), func(i, j int) {
			coords[i], coords[j] = coords[j], coords[i]
		})
		g.Rand.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})

		ns := &numberSearch{
			board:    b,
			coords:   coords,
			minScore: g.Settings.MinCornerScore,
			maxScore: g.Settings.MaxCornerScore,
		}
		s := &search[int]{
			pool:     pool,
			slots:    len(coords),
			place:    ns.place,
			undo:     ns.undo,
			maxSteps: g.Settings.maxSteps(),
		}
		res := s.run()

		g.Stats.NumberAttempts = attempt
		g.Stats.NumberSteps += s.steps

		if res == solved {
			g.logger().Debug("numbers placed", "attempt", attempt, "steps", s.steps)
			return nil
		}
		g.logger().Debug("number placement attempt failed",
			"attempt", attempt,
			"steps", s.steps,
			"reason", res.String(),
		)
	}

	for _, c := range coords {
		b.Tiles[c].Number = nil
	}
	return &ExhaustedError{Phase: PhaseNumbers, Attempts: attempts}
}
