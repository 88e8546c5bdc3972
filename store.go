package club

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultDataFile is the historical location of the club document.
const DefaultDataFile = "data/club.json"

// Store is the single persistence boundary: one JSON document on disk,
// read and written whole. The model is single-process, single-writer;
// concurrent writers would lose updates last-writer-wins.
type Store struct {
	path string
}

// NewStore returns a store bound to the given document path.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultDataFile
	}
	return &Store{path: path}
}

// Path returns the document path.
func (s *Store) Path() string { return s.path }

// Load reads the document. A missing file is created with the default empty
// structure first, so Load never fails on first use. Missing top-level
// collections become empty lists, and legacy record fields are migrated.
func (s *Store) Load() (*Document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := NewDocument()
		if err := s.Save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read club data file %q: %w", s.path, err)
	}

	raw, migrated := migrateLegacyFields(raw)

	doc := &Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("cannot decode club data file %q: %w", s.path, err)
	}
	doc.normalize()
	doc.dirty = doc.dirty || migrated
	return doc, nil
}

// Save serializes the whole document back, replacing the file. A crash
// mid-write loses only the in-flight operation; prior persisted state is
// recovered from the previous complete write under the single-writer model.
func (s *Store) Save(doc *Document) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create data directory %q: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode club data: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("cannot write club data file %q: %w", s.path, err)
	}
	doc.dirty = false
	return nil
}

// migrateLegacyFields renames historical record keys at the raw JSON level,
// before the typed decode drops unknown fields. Currently: players persisted
// before the AF Porto rename carry "federation_id" instead of "af_porto_id".
func migrateLegacyFields(raw []byte) ([]byte, bool) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return raw, false // let the typed decode report the error
	}
	playersRaw, ok := top["players"]
	if !ok {
		return raw, false
	}
	var players []map[string]json.RawMessage
	if err := json.Unmarshal(playersRaw, &players); err != nil {
		return raw, false
	}
	changed := false
	for _, p := range players {
		legacy, hasLegacy := p["federation_id"]
		if _, hasNew := p["af_porto_id"]; hasLegacy && !hasNew {
			p["af_porto_id"] = legacy
			delete(p, "federation_id")
			changed = true
		}
	}
	if !changed {
		return raw, false
	}
	patched, err := json.Marshal(players)
	if err != nil {
		return raw, false
	}
	top["players"] = patched
	out, err := json.Marshal(top)
	if err != nil {
		return raw, false
	}
	return out, true
}
