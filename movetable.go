package cubecoord

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// MoveIndex returns the position of (coord, m) in a flattened move table.
// Rows are coordinates and columns are the 18 face turns.
func MoveIndex(coord int, m FaceTurn) int {
	return coord*NumFaceTurns + int(m)
}

// MoveTable maps every (coordinate, face turn) pair to the coordinate
// reached by that turn. A MoveTable is immutable once built and may be
// shared between goroutines.
type MoveTable struct {
	name    string
	size    int
	entries []uint16
}

// Name returns the name of the coordinate the table was built over.
func (t *MoveTable) Name() string { return t.name }

// Size returns the number of coordinate values.
func (t *MoveTable) Size() int { return t.size }

// Len returns the number of table entries, Size()*NumFaceTurns.
func (t *MoveTable) Len() int { return len(t.entries) }

// Apply returns the coordinate reached from coord by turn m.
func (t *MoveTable) Apply(coord int, m FaceTurn) int {
	return int(t.entries[MoveIndex(coord, m)])
}

// ApplySequence applies turns in order starting from coord.
func (t *MoveTable) ApplySequence(coord int, moves []FaceTurn) int {
	for _, m := range moves {
		coord = t.Apply(coord, m)
	}
	return coord
}

// Equal reports whether both tables hold the same entries.
func (t *MoveTable) Equal(o *MoveTable) bool {
	if t.name != o.name || t.size != o.size || len(t.entries) != len(o.entries) {
		return false
	}
	for i := range t.entries {
		if t.entries[i] != o.entries[i] {
			return false
		}
	}
	return true
}

// MarshalText encodes the table as comma-separated decimal entries in
// row-major (coordinate, face turn) order.
func (t *MoveTable) MarshalText() ([]byte, error) {
	buf := make([]byte, 0, len(t.entries)*5)
	for i, v := range t.entries {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(v), 10)
	}
	return buf, nil
}

// ParseMoveTable decodes data written by MarshalText for a coordinate of
// the given size. Any entry count mismatch, non-numeric entry, or entry
// outside [0, size) yields an error wrapping ErrCorruptCache.
func ParseMoveTable(name string, size int, data []byte) (*MoveTable, error) {
	want := size * NumFaceTurns
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s: empty, want %d entries", ErrCorruptCache, name, want)
	}

	fields := bytes.Split(data, []byte{','})
	if len(fields) != want {
		return nil, fmt.Errorf("%w: %s: %d entries, want %d", ErrCorruptCache, name, len(fields), want)
	}

	entries := make([]uint16, want)
	for i, f := range fields {
		v, err := strconv.ParseUint(string(bytes.TrimSpace(f)), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: entry %d: %v", ErrCorruptCache, name, i, err)
		}
		if int(v) >= size {
			return nil, fmt.Errorf("%w: %s: entry %d is %d, want < %d", ErrCorruptCache, name, i, v, size)
		}
		entries[i] = uint16(v)
	}
	return &MoveTable{name: name, size: size, entries: entries}, nil
}

// BuildMoveTable computes the move table of coord.
//
// The coordinate space is split into contiguous ranges, one per worker.
// Each worker owns a private Algebra and writes only its own rows.
func BuildMoveTable(ctx context.Context, coord Coordinate, opts ...Option) (*MoveTable, error) {
	cfg := newConfig(opts)
	size := coord.Size()
	if size <= 0 || size > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: %s has size %d", ErrCoordRange, coord.Name(), size)
	}

	start := time.Now()
	entries := make([]uint16, size*NumFaceTurns)

	workers := min(cfg.workers, size)
	per := (size + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < size; lo += per {
		hi := min(lo+per, size)
		g.Go(func() error {
			return sweep(ctx, coord, coord.NewAlgebra(), lo, hi, entries)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg.logger.Debug().
		Str("table", coord.Name()).
		Int("entries", len(entries)).
		Int("workers", workers).
		Dur("duration", time.Since(start)).
		Msg("move table built")

	return &MoveTable{name: coord.Name(), size: size, entries: entries}, nil
}

// sweep fills the rows [lo, hi) of entries.
func sweep(ctx context.Context, coord Coordinate, alg Algebra, lo, hi int, entries []uint16) error {
	size := coord.Size()
	for i := lo; i < hi; i++ {
		if (i-lo)%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		alg.SetCoord(i)
		for face := Color(0); face < NumColors; face++ {
			for turn := TurnCW; turn <= TurnCCW; turn++ {
				alg.ApplyBasicMove(face)
				v := alg.Coord()
				if v < 0 || v >= size {
					return fmt.Errorf("%w: %s: %d after %v from %d", ErrCoordRange, coord.Name(), v, NewFaceTurn(face, turn), i)
				}
				entries[MoveIndex(i, NewFaceTurn(face, turn))] = uint16(v)
			}
			// Fourth quarter turn restores the state before this face.
			alg.ApplyBasicMove(face)
		}
	}
	return nil
}
