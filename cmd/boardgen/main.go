// Command boardgen generates a random hex board from a preset, prints it and
// optionally stores it in SQLite.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/config"
	"github.com/talgya/hexboard/internal/entropy"
	"github.com/talgya/hexboard/internal/generation"
	"github.com/talgya/hexboard/internal/hexgrid"
	"github.com/talgya/hexboard/internal/persistence"
)

func main() {
	var (
		presetName = flag.String("preset", "vanilla", "built-in preset name")
		configPath = flag.String("config", "", "path to a YAML preset (overrides -preset)")
		seed       = flag.Int64("seed", 0, "random seed (0 for random)")
		dbPath     = flag.String("db", envOrDefault("BOARDGEN_DB", ""), "SQLite file to save boards in")
		loadID     = flag.String("load", "", "print a stored board instead of generating (\"last\" for the newest)")
		asJSON     = flag.Bool("json", false, "print the board as JSON")
		list       = flag.Bool("list", false, "list presets, and stored boards when -db is set")
		verbose    = flag.Bool("v", false, "log every generation attempt")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// ── Database ──────────────────────────────────────────────────────
	var db *persistence.DB
	if *dbPath != "" {
		var err error
		db, err = persistence.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Debug("database opened", "path", *dbPath)
	}

	if *list {
		if err := listAll(os.Stdout, db); err != nil {
			slog.Error("list failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if *loadID != "" {
		if err := printStored(db, *loadID, *asJSON); err != nil {
			slog.Error("load failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// ── Preset ───────────────────────────────────────────────────────
	var (
		preset *config.Preset
		err    error
	)
	if *configPath != "" {
		preset, err = config.Load(*configPath)
	} else {
		preset, err = config.Builtin(*presetName)
	}
	if err != nil {
		slog.Error("failed to load preset", "error", err)
		os.Exit(1)
	}
	settings, err := preset.Settings()
	if err != nil {
		slog.Error("invalid preset", "error", err)
		os.Exit(1)
	}

	// ── Generate ─────────────────────────────────────────────────────
	rng, usedSeed := entropy.NewRand(*seed, entropy.NewClient(os.Getenv("RANDOM_ORG_API_KEY")))
	slog.Info("generating board", "preset", preset.Name, "seed", usedSeed, "tiles", len(settings.Coords))

	gen := generation.NewGenerator(settings, rng)
	b, err := gen.Generate()
	if err != nil {
		var ee *generation.ExhaustedError
		switch {
		case errors.As(err, &ee):
			slog.Error("no board found; loosen the corner score bounds or raise max_attempts",
				"phase", ee.Phase,
				"attempts", ee.Attempts,
				"seed", usedSeed,
			)
		default:
			slog.Error("generation failed", "error", err)
		}
		os.Exit(1)
	}

	slog.Info("search finished",
		"tile_attempts", gen.Stats.TileAttempts,
		"number_attempts", gen.Stats.NumberAttempts,
		"steps", humanize.Comma(int64(gen.Stats.TileSteps+gen.Stats.NumberSteps)),
	)
	counts := board.TerrainCounts(b)
	for _, t := range board.Terrains {
		if counts[t] > 0 {
			slog.Debug("terrain", "type", t.String(), "count", counts[t])
		}
	}

	if db != nil {
		id, err := db.SaveBoard(&persistence.Record{Preset: preset.Name, Seed: usedSeed, Board: b})
		if err != nil {
			slog.Error("failed to save board", "error", err)
			os.Exit(1)
		}
		slog.Info("board stored", "id", id)
	}

	if err := printBoard(os.Stdout, b, *asJSON); err != nil {
		slog.Error("print failed", "error", err)
		os.Exit(1)
	}
}

func listAll(w io.Writer, db *persistence.DB) error {
	fmt.Fprintln(w, "presets:")
	for _, name := range config.Presets() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	if db == nil {
		return nil
	}

	recs, err := db.ListBoards(20)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "boards:")
	for _, r := range recs {
		fmt.Fprintf(w, "  %s  %-10s seed=%d  %s\n", r.ID, r.Preset, r.Seed, humanize.Time(r.CreatedAt))
	}
	return nil
}

func printStored(db *persistence.DB, id string, asJSON bool) error {
	if db == nil {
		return errors.New("-load needs -db")
	}
	if id == "last" {
		var err error
		if id, err = db.GetMeta(persistence.MetaLastBoard); err != nil {
			return fmt.Errorf("no board stored yet: %w", err)
		}
	}
	rec, err := db.LoadBoard(id)
	if err != nil {
		return err
	}
	slog.Info("board loaded",
		"id", rec.ID,
		"preset", rec.Preset,
		"seed", rec.Seed,
		"created", humanize.Time(rec.CreatedAt),
	)
	return printBoard(os.Stdout, rec.Board, asJSON)
}

func printBoard(w io.Writer, b *board.Board, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	}
	_, err := io.WriteString(w, render(b))
	return err
}

// render draws the tiles row by row, northmost first. Each row is shifted
// half a cell per step so neighbors line up diagonally.
func render(b *board.Board) string {
	if len(b.Tiles) == 0 {
		return board.Summary(b) + "\n"
	}

	minX, maxX, minY, maxY := 0, 0, 0, 0
	first := true
	for c := range b.Tiles {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	const cell = 10
	var sb strings.Builder
	for y := maxY; y >= minY; y-- {
		sb.WriteString(strings.Repeat(" ", (y-minY)*cell/2))
		for x := minX; x <= maxX; x++ {
			t, ok := b.Tiles[hexgrid.Tile{X: x, Y: y}]
			if !ok {
				sb.WriteString(strings.Repeat(" ", cell))
				continue
			}
			sb.WriteString(fmt.Sprintf("%-*s", cell, label(t)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(board.Summary(b) + "\n")
	return sb.String()
}

func label(t *board.Tile) string {
	s := t.Terrain.String()
	if len(s) > 5 {
		s = s[:5]
	}
	if t.Number != nil {
		s += fmt.Sprintf(" %d", *t.Number)
	}
	if t.Thief {
		s += "*"
	}
	return s
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
