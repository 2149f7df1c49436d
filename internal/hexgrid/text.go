package hexgrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Text labels. Only the canonical ones are produced by String; Parse also
// accepts the aliases and canonicalizes them.
const (
	LabelTile     = "Tile"
	LabelEdgeNW   = "EdgeNW"
	LabelEdgeNE   = "EdgeNE"
	LabelEdgeE    = "EdgeE"
	LabelCornerN  = "CornerN"
	LabelCornerNE = "CornerNE"
)

var edgeLabels = map[string]EdgeDirection{
	LabelEdgeNW: EdgeNorthwest,
	LabelEdgeNE: EdgeNortheast,
	LabelEdgeE:  EdgeEast,
	"EdgeSE":    EdgeSoutheast,
	"EdgeSW":    EdgeSouthwest,
	"EdgeW":     EdgeWest,
}

var cornerLabels = map[string]CornerDirection{
	LabelCornerN:  CornerNorth,
	LabelCornerNE: CornerNortheast,
	"CornerSE":    CornerSoutheast,
	"CornerS":     CornerSouth,
	"CornerSW":    CornerSouthwest,
	"CornerNW":    CornerNorthwest,
}

var (
	ErrFieldCount     = errors.New("expected 3 comma-separated fields")
	ErrInvalidInteger = errors.New("invalid integer")
	ErrUnknownLabel   = errors.New("unknown label")
	ErrWrongKind      = errors.New("wrong coordinate kind")
)

// ParseError reports a malformed coordinate string.
type ParseError struct {
	Input string // the string being parsed
	Field string // "fields", "x", "y" or "label"
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse coordinate %q: %s: %v", e.Input, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// String returns "x,y,Tile".
func (t Tile) String() string {
	return fmt.Sprintf("%d,%d,%s", t.X, t.Y, LabelTile)
}

// String returns "x,y,EdgeNW", "x,y,EdgeNE" or "x,y,EdgeE".
func (e Edge) String() string {
	l := LabelEdgeNW
	switch e.dir {
	case EdgeNortheast:
		l = LabelEdgeNE
	case EdgeEast:
		l = LabelEdgeE
	}
	return fmt.Sprintf("%d,%d,%s", e.x, e.y, l)
}

// String returns "x,y,CornerN" or "x,y,CornerNE".
func (c Corner) String() string {
	l := LabelCornerN
	if c.dir == CornerNortheast {
		l = LabelCornerNE
	}
	return fmt.Sprintf("%d,%d,%s", c.x, c.y, l)
}

// Parse reads any coordinate from its text form. The result is a Tile, Edge
// or Corner value.
func Parse(s string) (Coord, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return nil, &ParseError{Input: s, Field: "fields", Err: ErrFieldCount}
	}
	x, err := parseInt(s, "x", fields[0])
	if err != nil {
		return nil, err
	}
	y, err := parseInt(s, "y", fields[1])
	if err != nil {
		return nil, err
	}

	l := strings.TrimSpace(fields[2])
	if l == LabelTile {
		return Tile{X: x, Y: y}, nil
	}
	if dir, ok := edgeLabels[l]; ok {
		return NewEdge(x, y, dir), nil
	}
	if dir, ok := cornerLabels[l]; ok {
		return NewCorner(x, y, dir), nil
	}
	return nil, &ParseError{Input: s, Field: "label", Err: fmt.Errorf("%w %q", ErrUnknownLabel, l)}
}

// ParseTile is Parse restricted to tiles.
func ParseTile(s string) (Tile, error) {
	c, err := Parse(s)
	if err != nil {
		return Tile{}, err
	}
	t, ok := c.(Tile)
	if !ok {
		return Tile{}, &ParseError{Input: s, Field: "label", Err: fmt.Errorf("%w: want tile", ErrWrongKind)}
	}
	return t, nil
}

// ParseEdge is Parse restricted to edges.
func ParseEdge(s string) (Edge, error) {
	c, err := Parse(s)
	if err != nil {
		return Edge{}, err
	}
	e, ok := c.(Edge)
	if !ok {
		return Edge{}, &ParseError{Input: s, Field: "label", Err: fmt.Errorf("%w: want edge", ErrWrongKind)}
	}
	return e, nil
}

// ParseCorner is Parse restricted to corners.
func ParseCorner(s string) (Corner, error) {
	c, err := Parse(s)
	if err != nil {
		return Corner{}, err
	}
	k, ok := c.(Corner)
	if !ok {
		return Corner{}, &ParseError{Input: s, Field: "label", Err: fmt.Errorf("%w: want corner", ErrWrongKind)}
	}
	return k, nil
}

func parseInt(input, field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// strconv errors repeat the input; keep only the reason.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Input: input, Field: field, Err: fmt.Errorf("%w: %v", ErrInvalidInteger, err)}
	}
	return n, nil
}

// MarshalText implements encoding.TextMarshaler, so tiles work as JSON map
// keys.
func (t Tile) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tile) UnmarshalText(b []byte) error {
	v, err := ParseTile(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Edge) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edge) UnmarshalText(b []byte) error {
	v, err := ParseEdge(string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Corner) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Corner) UnmarshalText(b []byte) error {
	v, err := ParseCorner(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
