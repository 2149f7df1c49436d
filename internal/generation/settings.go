// Package generation builds random boards: it places terrain tiles on a
// footprint and then number tokens on the resource tiles, backtracking
// whenever a placement breaks the adjacency or corner balance rules.
package generation

import (
	"errors"
	"fmt"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/hexgrid"
)

const (
	DefaultMaxAttempts = 100
	DefaultMaxSteps    = 10000
)

// Settings holds board generation parameters. They are only needed while a
// board is being generated.
type Settings struct {
	// Terrain maps each terrain to the number of tiles of it. The counts
	// must add up to len(Coords).
	Terrain map[board.Terrain]int

	// AvoidAdjacent forbids two neighboring tiles of the same terrain,
	// except ocean.
	AvoidAdjacent bool

	// Coords is the board footprint, in placement order.
	Coords []hexgrid.Tile

	// Inclusive bounds on the pip sum at every corner touching two or more
	// numbered tiles. If they are too tight no board exists and generation
	// fails after MaxAttempts.
	MinCornerScore int
	MaxCornerScore int

	// Tokens are the numbers to place, one per resource tile.
	Tokens []int

	MaxAttempts int // 0 means DefaultMaxAttempts
	MaxSteps    int // search nodes per attempt, 0 means DefaultMaxSteps
}

// ErrInvalidSettings is matched by every *ConfigError.
var ErrInvalidSettings = errors.New("invalid generation settings")

// ConfigError reports settings that can never produce a board. It is
// returned before any search starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidSettings, e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidSettings }

// Validate checks the settings for both generation phases.
func (s Settings) Validate() error {
	if err := s.validateTiles(); err != nil {
		return err
	}
	return s.validateNumbers(s.resourceCount())
}

func (s Settings) validateTiles() error {
	if len(s.Coords) == 0 {
		return &ConfigError{Field: "coords", Reason: "empty footprint"}
	}
	seen := make(map[hexgrid.Tile]bool, len(s.Coords))
	for _, c := range s.Coords {
		if seen[c] {
			return &ConfigError{Field: "coords", Reason: fmt.Sprintf("duplicate coordinate %v", c)}
		}
		seen[c] = true
	}

	total := 0
	for t, n := range s.Terrain {
		if n < 0 {
			return &ConfigError{Field: "terrain." + t.String(), Reason: fmt.Sprintf("negative count %d", n)}
		}
		total += n
	}
	if total != len(s.Coords) {
		return &ConfigError{
			Field:  "terrain",
			Reason: fmt.Sprintf("%d tiles for %d coordinates", total, len(s.Coords)),
		}
	}

	if s.MaxAttempts < 0 {
		return &ConfigError{Field: "max_attempts", Reason: "must not be negative"}
	}
	if s.MaxSteps < 0 {
		return &ConfigError{Field: "max_steps", Reason: "must not be negative"}
	}
	return nil
}

func (s Settings) validateNumbers(resourceTiles int) error {
	if len(s.Tokens) != resourceTiles {
		return &ConfigError{
			Field:  "tokens",
			Reason: fmt.Sprintf("%d tokens for %d resource tiles", len(s.Tokens), resourceTiles),
		}
	}
	if s.MinCornerScore > s.MaxCornerScore {
		return &ConfigError{
			Field:  "corner_score",
			Reason: fmt.Sprintf("min %d is greater than max %d", s.MinCornerScore, s.MaxCornerScore),
		}
	}
	return nil
}

// resourceCount returns how many tiles will need a number token.
func (s Settings) resourceCount() int {
	n := 0
	for t, c := range s.Terrain {
		if t.IsResource() {
			n += c
		}
	}
	return n
}

// terrainPool expands the terrain counts into one entry per tile, in
// board.Terrains order so a seeded shuffle is reproducible.
func (s Settings) terrainPool() []board.Terrain {
	pool := make([]board.Terrain, 0, len(s.Coords))
	for _, t := range board.Terrains {
		for i := 0; i < s.Terrain[t]; i++ {
			pool = append(pool, t)
		}
	}
	return pool
}

func (s Settings) maxAttempts() int {
	if s.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	return s.MaxAttempts
}

func (s Settings) maxSteps() int {
	if s.MaxSteps == 0 {
		return DefaultMaxSteps
	}
	return s.MaxSteps
}
