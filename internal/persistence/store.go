// Package persistence stores full simulation snapshots in SQLite. Each
// save is a single compressed JSON document; writing replaces the
// previous one wholesale.
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"labtycoon/internal/game"
)

const saveKey = "labtycoon"

// Store wraps a SQLite connection and a zstd codec pair.
type Store struct {
	conn *sqlx.DB
	enc  *zstd.Encoder
	dec  *zstd.Decoder
}

var _ game.SaveStore = (*Store)(nil)

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		conn.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		conn.Close()
		return nil, err
	}

	s := &Store{conn: conn, enc: enc, dec: dec}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	s.enc.Close()
	s.dec.Close()
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save overwrites the stored snapshot.
func (s *Store) Save(ctx context.Context, st game.SaveState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	payload := s.enc.EncodeAll(raw, nil)

	_, err = s.conn.ExecContext(ctx,
		"INSERT OR REPLACE INTO saves (key, payload, updated_at) VALUES (?, ?, ?)",
		saveKey, payload, st.SavedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// SnapshotTo writes a consistent copy of the whole database to path.
// VACUUM INTO reads one committed transaction, so it is safe while the
// connection pool is live and the journal is in WAL mode; the copy
// needs no -wal or -shm companions.
func (s *Store) SnapshotTo(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear snapshot target: %w", err)
	}
	if _, err := s.conn.ExecContext(ctx, "VACUUM INTO ?", path); err != nil {
		return fmt.Errorf("snapshot db: %w", err)
	}
	return nil
}

// Load returns the stored snapshot, reporting false when none exists.
func (s *Store) Load(ctx context.Context) (game.SaveState, bool, error) {
	var payload []byte
	err := s.conn.GetContext(ctx, &payload,
		"SELECT payload FROM saves WHERE key = ?", saveKey)
	if errors.Is(err, sql.ErrNoRows) {
		return game.SaveState{}, false, nil
	}
	if err != nil {
		return game.SaveState{}, false, fmt.Errorf("read save: %w", err)
	}

	raw, err := s.dec.DecodeAll(payload, nil)
	if err != nil {
		return game.SaveState{}, false, fmt.Errorf("decompress save: %w", err)
	}
	var st game.SaveState
	if err := json.Unmarshal(raw, &st); err != nil {
		return game.SaveState{}, false, fmt.Errorf("decode save: %w", err)
	}
	return st, true, nil
}
