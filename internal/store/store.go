package store

import (
	"os"
	"path/filepath"

	"roadmap-cli/internal/model"
)

const dbFileName = "roadmap.sqlite"

// Store locates and persists the roadmap document. The document is written
// wholesale after every committed mutation: last write wins, single writer,
// no partial writes.
type Store struct {
	Dir string
}

// DefaultDir resolves the state directory: ROADMAP_DIR if set, else ~/.roadmap.
func DefaultDir() (string, error) {
	if v := os.Getenv("ROADMAP_DIR"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".roadmap"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, dbFileName)
}

// Load reads the persisted document. A missing database, a missing state row,
// or a document missing the people collection is a recovered condition, not an
// error: the seed dataset replaces it and is persisted immediately.
func (s Store) Load() (*model.State, error) {
	st, ok, err := s.loadState()
	if err != nil {
		return nil, err
	}
	if !ok || st.People == nil || len(st.People) == 0 {
		st = SeedState()
		if err := s.Save(st); err != nil {
			return nil, err
		}
	}
	if st.Groups == nil {
		st.Groups = []model.Group{}
	}
	if st.Items == nil {
		st.Items = []model.Item{}
	}
	return st, nil
}

// Save persists the full document synchronously.
func (s Store) Save(st *model.State) error {
	return s.saveState(st)
}
