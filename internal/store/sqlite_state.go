package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"roadmap-cli/internal/model"

	_ "modernc.org/sqlite"
)

// The whole document lives as one JSON blob under a single fixed key, the way
// the original kept it under one browser-storage key. SQLite gives us atomic
// whole-row replacement without inventing a file format.
const stateKey = "roadmap-state"

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// loadState returns (state, found, error). A missing row or an unparsable
// blob reports found=false so the caller can reseed.
func (s Store) loadState() (*model.State, bool, error) {
	ctx := context.Background()
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, false, err
	}
	defer db.Close()

	var raw string
	err = db.QueryRowContext(ctx, `SELECT v FROM state WHERE k = ?`, stateKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var st model.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		// Structurally invalid document: recover by reseeding.
		return nil, false, nil
	}
	return &st, true, nil
}

func (s Store) saveState(st *model.State) error {
	if st == nil {
		return errors.New("nil state")
	}
	ctx := context.Background()
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO state(k, v) VALUES(?, ?)`, stateKey, string(raw))
	return err
}
