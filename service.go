package club

// Service is the facade every collaborator (CLI, web handlers) talks to. It
// owns the in-memory document and the store, and persists the whole document
// on every mutating call before returning.
type Service struct {
	store *Store
	doc   *Document
}

// Open loads the document from the store and runs the bootstrap: season setup
// (auto-create a default season on first use, repair the active pointer,
// stamp missing season references) and legacy migrations. Bootstrap is an
// explicit step here rather than hidden in accessors, so initialization order
// is deterministic.
func Open(store *Store) (*Service, error) {
	doc, err := store.Load()
	if err != nil {
		return nil, err
	}
	s := &Service{store: store, doc: doc}
	if s.ensureSeasonSetup() || doc.dirty {
		if err := s.persist(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Document exposes the in-memory document read-only. Intended for
// inspection tooling; mutations must go through the service operations.
func (s *Service) Document() *Document { return s.doc }

// Refresh reloads the document from disk to reflect external changes.
func (s *Service) Refresh() error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	s.doc = doc
	if s.ensureSeasonSetup() || doc.dirty {
		return s.persist()
	}
	return nil
}

// Format rewrites the data file in canonical form even when nothing changed.
func (s *Service) Format() error { return s.persist() }

// persist writes the whole document back. Every mutating operation runs all
// its validation first and calls persist exactly once.
func (s *Service) persist() error {
	return s.store.Save(s.doc)
}
