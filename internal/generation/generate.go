package generation

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/hexgrid"
)

// Phase names a generation step.
type Phase string

const (
	PhaseTiles   Phase = "tiles"
	PhaseNumbers Phase = "numbers"
)

// ErrExhausted is matched by every *ExhaustedError.
var ErrExhausted = errors.New("generation exhausted")

// ExhaustedError reports that no attempt found a legal placement. The
// settings may be satisfiable; relaxing the constraints or raising the
// limits can help.
type ExhaustedError struct {
	Phase    Phase
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%v: no %s placement found in %d attempts", ErrExhausted, e.Phase, e.Attempts)
}

func (e *ExhaustedError) Is(target error) bool { return target == ErrExhausted }

// Stats counts the work done by a Generator.
type Stats struct {
	TileAttempts   int
	TileSteps      int
	NumberAttempts int
	NumberSteps    int
}

// Generator runs the two placement phases. It is used for one board at a
// time and owns the board until Generate returns.
type Generator struct {
	Settings Settings
	Rand     *rand.Rand
	Logger   *slog.Logger // nil means slog.Default()
	Stats    Stats
}

// NewGenerator creates a generator drawing randomness from rng.
func NewGenerator(s Settings, rng *rand.Rand) *Generator {
	return &Generator{Settings: s, Rand: rng}
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// Generate validates the settings, places terrain, then numbers, then adds
// empty edges and corners around every tile and puts the thief on a desert.
// On any error the returned board is nil.
func (g *Generator) Generate() (*board.Board, error) {
	if err := g.Settings.Validate(); err != nil {
		return nil, err
	}

	b, err := g.Tiles()
	if err != nil {
		return nil, fmt.Errorf("place tiles: %w", err)
	}
	if err := g.Numbers(b); err != nil {
		return nil, fmt.Errorf("place numbers: %w", err)
	}

	board.Attach(b)
	g.placeThief(b)

	g.logger().Info("board generated",
		"tiles", len(b.Tiles),
		"tile_attempts", g.Stats.TileAttempts,
		"number_attempts", g.Stats.NumberAttempts,
		"steps", g.Stats.TileSteps+g.Stats.NumberSteps,
	)
	return b, nil
}

// placeThief puts the thief on a random desert tile, if there is one.
func (g *Generator) placeThief(b *board.Board) {
	var deserts []hexgrid.Tile
	for c, t := range b.Tiles {
		if t.Terrain == board.TerrainDesert {
			deserts = append(deserts, c)
		}
	}
	if len(deserts) == 0 {
		return
	}
	board.SortTiles(deserts)
	b.Tiles[deserts[g.Rand.Intn(len(deserts))]].Thief = true
}

// Generate builds one board from s using rng.
func Generate(s Settings, rng *rand.Rand) (*board.Board, error) {
	return NewGenerator(s, rng).Generate()
}
