package cubecoord

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// TableStore persists encoded move tables under a stable key.
type TableStore interface {
	// Load returns the stored bytes for key, or an error wrapping
	// ErrCacheMiss if nothing is stored.
	Load(key string) ([]byte, error)
	// Save stores data under key. Readers never observe a partial write.
	Save(key string, data []byte) error
}

// CacheKey returns the store key of the move table for coord.
func CacheKey(coord Coordinate) string {
	return "move_" + coord.Name()
}

// LoadOrBuild returns the move table for coord, reading it from store when
// present and building and saving it otherwise. A stored table that fails
// to parse is reported with ErrCorruptCache and is never rebuilt here.
func LoadOrBuild(ctx context.Context, coord Coordinate, store TableStore, opts ...Option) (*MoveTable, error) {
	cfg := newConfig(opts)
	key := CacheKey(coord)
	log := cfg.logger.With().Str("table", key).Logger()

	data, err := store.Load(key)
	switch {
	case err == nil:
		start := time.Now()
		log.Info().Msg("loading table")
		t, err := ParseMoveTable(coord.Name(), coord.Size(), data)
		if err != nil {
			return nil, err
		}
		log.Debug().Int("entries", t.Len()).Dur("duration", time.Since(start)).Msg("table loaded")
		return t, nil
	case !errors.Is(err, ErrCacheMiss):
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	log.Info().Msg("creating table")
	t, err := BuildMoveTable(ctx, coord, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", key, err)
	}
	text, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	if err := store.Save(key, text); err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", key, err)
	}
	log.Debug().Int("entries", t.Len()).Int("bytes", len(text)).Msg("table saved")
	return t, nil
}

// FileStore keeps each table in its own file inside a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create table directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory holding the table files.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file path used for key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+".tbl")
}

// Load reads the table file for key.
func (s *FileStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCacheMiss, s.Path(key))
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save writes data to a temporary file in the same directory and renames
// it over the final path, so concurrent readers see the old file, the new
// file, or nothing.
func (s *FileStore) Save(key string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	// CreateTemp uses 0600; published tables are readable by everyone.
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		return fmt.Errorf("failed to publish %s: %w", key, err)
	}
	return nil
}

// Delete removes the table file for key. Deleting a missing key is not an
// error.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.Path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Tables bundles the move tables a search needs. It is an ordinary value
// owned by the caller and is safe to share once loaded.
type Tables struct {
	Twist      *MoveTable
	Flip       *MoveTable
	CornerPerm *MoveTable
}

// LoadTables loads or builds every built-in move table.
func LoadTables(ctx context.Context, store TableStore, opts ...Option) (*Tables, error) {
	twist, err := LoadOrBuild(ctx, TwistCoord, store, opts...)
	if err != nil {
		return nil, err
	}
	flip, err := LoadOrBuild(ctx, FlipCoord, store, opts...)
	if err != nil {
		return nil, err
	}
	cornerPerm, err := LoadOrBuild(ctx, CornerPermCoord, store, opts...)
	if err != nil {
		return nil, err
	}
	return &Tables{Twist: twist, Flip: flip, CornerPerm: cornerPerm}, nil
}

// All returns the tables in a fixed order.
func (t *Tables) All() []*MoveTable {
	return []*MoveTable{t.Twist, t.Flip, t.CornerPerm}
}
