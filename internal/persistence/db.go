// Package persistence provides SQLite-based board storage. Coordinates are
// stored in their text form and parsed back on load.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexboard/internal/board"
	"github.com/talgya/hexboard/internal/hexgrid"
)

// ErrNotFound is returned when no board has the requested id.
var ErrNotFound = errors.New("board not found")

// MetaLastBoard holds the id of the most recently saved board.
const MetaLastBoard = "last_board"

// DB wraps a SQLite connection for board persistence.
type DB struct {
	conn *sqlx.DB
}

// Record is a stored board with the inputs that produced it.
type Record struct {
	ID        string
	Preset    string
	Seed      int64
	CreatedAt time.Time
	Board     *board.Board
}

type boardRow struct {
	ID        string `db:"id"`
	Preset    string `db:"preset"`
	Seed      int64  `db:"seed"`
	CreatedAt int64  `db:"created_at"`
}

type tileRow struct {
	Coord   string        `db:"coord"`
	Terrain string        `db:"terrain"`
	Number  sql.NullInt64 `db:"number"`
	Thief   bool          `db:"thief"`
	FaceUp  bool          `db:"face_up"`
}

type edgeRow struct {
	Coord    string         `db:"coord"`
	Road     int            `db:"road"`
	Owner    int64          `db:"owner"`
	PortJSON sql.NullString `db:"port_json"`
}

type cornerRow struct {
	Coord    string `db:"coord"`
	Building int    `db:"building"`
	Owner    int64  `db:"owner"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS boards (
		id TEXT PRIMARY KEY,
		preset TEXT NOT NULL,
		seed INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS board_tiles (
		board_id TEXT NOT NULL REFERENCES boards(id),
		coord TEXT NOT NULL,
		terrain TEXT NOT NULL,
		number INTEGER,
		thief INTEGER NOT NULL,
		face_up INTEGER NOT NULL,
		PRIMARY KEY (board_id, coord)
	);

	CREATE TABLE IF NOT EXISTS board_edges (
		board_id TEXT NOT NULL REFERENCES boards(id),
		coord TEXT NOT NULL,
		road INTEGER NOT NULL,
		owner INTEGER NOT NULL,
		port_json TEXT,
		PRIMARY KEY (board_id, coord)
	);

	CREATE TABLE IF NOT EXISTS board_corners (
		board_id TEXT NOT NULL REFERENCES boards(id),
		coord TEXT NOT NULL,
		building INTEGER NOT NULL,
		owner INTEGER NOT NULL,
		PRIMARY KEY (board_id, coord)
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_boards_created ON boards(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SaveBoard writes a board and its tiles, edges and corners in one
// transaction. A new id is assigned when rec.ID is empty; the id used is
// returned and also recorded as the last saved board.
func (db *DB) SaveBoard(rec *Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO boards (id, preset, seed, created_at) VALUES (?, ?, ?, ?)",
		rec.ID, rec.Preset, rec.Seed, rec.CreatedAt.Unix(),
	); err != nil {
		return "", fmt.Errorf("insert board %s: %w", rec.ID, err)
	}

	tileStmt, err := tx.Preparex(`INSERT INTO board_tiles
		(board_id, coord, terrain, number, thief, face_up)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer tileStmt.Close()

	for c, t := range rec.Board.Tiles {
		var number sql.NullInt64
		if t.Number != nil {
			number = sql.NullInt64{Int64: int64(*t.Number), Valid: true}
		}
		if _, err := tileStmt.Exec(rec.ID, c.String(), t.Terrain.String(), number,
			boolInt(t.Thief), boolInt(t.FaceUp)); err != nil {
			return "", fmt.Errorf("insert tile %v: %w", c, err)
		}
	}

	edgeStmt, err := tx.Preparex(`INSERT INTO board_edges
		(board_id, coord, road, owner, port_json)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer edgeStmt.Close()

	for c, e := range rec.Board.Edges {
		var port sql.NullString
		if e.Port != nil {
			portJSON, _ := json.Marshal(e.Port)
			port = sql.NullString{String: string(portJSON), Valid: true}
		}
		if _, err := edgeStmt.Exec(rec.ID, c.String(), int(e.Road), int64(e.Owner), port); err != nil {
			return "", fmt.Errorf("insert edge %v: %w", c, err)
		}
	}

	cornerStmt, err := tx.Preparex(`INSERT INTO board_corners
		(board_id, coord, building, owner)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer cornerStmt.Close()

	for c, k := range rec.Board.Corners {
		if _, err := cornerStmt.Exec(rec.ID, c.String(), int(k.Building), int64(k.Owner)); err != nil {
			return "", fmt.Errorf("insert corner %v: %w", c, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		MetaLastBoard, rec.ID,
	); err != nil {
		return "", fmt.Errorf("save meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("board saved",
		"id", rec.ID,
		"tiles", len(rec.Board.Tiles),
		"edges", len(rec.Board.Edges),
		"corners", len(rec.Board.Corners),
	)
	return rec.ID, nil
}

// LoadBoard reads a board back. A row whose coordinate or terrain cannot
// be parsed fails the whole load.
func (db *DB) LoadBoard(id string) (*Record, error) {
	var row boardRow
	err := db.conn.Get(&row, "SELECT id, preset, seed, created_at FROM boards WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load board %s: %w", id, err)
	}

	b := board.New()

	var tiles []tileRow
	if err := db.conn.Select(&tiles,
		"SELECT coord, terrain, number, thief, face_up FROM board_tiles WHERE board_id = ?", id,
	); err != nil {
		return nil, fmt.Errorf("load tiles: %w", err)
	}
	for _, r := range tiles {
		c, err := hexgrid.ParseTile(r.Coord)
		if err != nil {
			return nil, fmt.Errorf("load tiles: %w", err)
		}
		terrain, err := board.ParseTerrain(r.Terrain)
		if err != nil {
			return nil, fmt.Errorf("load tile %v: %w", c, err)
		}
		t := &board.Tile{Terrain: terrain, Thief: r.Thief, FaceUp: r.FaceUp}
		if r.Number.Valid {
			n := int(r.Number.Int64)
			t.Number = &n
		}
		b.SetTile(c, t)
	}

	var edges []edgeRow
	if err := db.conn.Select(&edges,
		"SELECT coord, road, owner, port_json FROM board_edges WHERE board_id = ?", id,
	); err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}
	for _, r := range edges {
		c, err := hexgrid.ParseEdge(r.Coord)
		if err != nil {
			return nil, fmt.Errorf("load edges: %w", err)
		}
		e := &board.Edge{Road: board.RoadKind(r.Road), Owner: board.PlayerID(r.Owner)}
		if r.PortJSON.Valid {
			e.Port = &board.Port{}
			if err := json.Unmarshal([]byte(r.PortJSON.String), e.Port); err != nil {
				return nil, fmt.Errorf("load edge %v port: %w", c, err)
			}
		}
		b.SetEdge(c, e)
	}

	var corners []cornerRow
	if err := db.conn.Select(&corners,
		"SELECT coord, building, owner FROM board_corners WHERE board_id = ?", id,
	); err != nil {
		return nil, fmt.Errorf("load corners: %w", err)
	}
	for _, r := range corners {
		c, err := hexgrid.ParseCorner(r.Coord)
		if err != nil {
			return nil, fmt.Errorf("load corners: %w", err)
		}
		b.SetCorner(c, &board.Corner{Building: board.Building(r.Building), Owner: board.PlayerID(r.Owner)})
	}

	return &Record{
		ID:        row.ID,
		Preset:    row.Preset,
		Seed:      row.Seed,
		CreatedAt: time.Unix(row.CreatedAt, 0),
		Board:     b,
	}, nil
}

// ListBoards returns the most recent N boards, newest first, without their
// contents.
func (db *DB) ListBoards(limit int) ([]Record, error) {
	var rows []boardRow
	err := db.conn.Select(&rows,
		"SELECT id, preset, seed, created_at FROM boards ORDER BY created_at DESC, rowid DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	res := make([]Record, len(rows))
	for i, r := range rows {
		res[i] = Record{ID: r.ID, Preset: r.Preset, Seed: r.Seed, CreatedAt: time.Unix(r.CreatedAt, 0)}
	}
	return res, nil
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}
