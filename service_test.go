package club

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newTestService opens a service on a fresh data file in a temp dir.
func newTestService(t *testing.T) *Service {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "club.json"))
	s, err := Open(store)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func ptr[T any](v T) *T { return &v }

func TestOpenCreatesDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "club.json")
	s, err := Open(NewStore(path))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("data file not created: %v", err)
	}
	if len(s.ListSeasons()) != 1 {
		t.Fatalf("want 1 bootstrap season, got %d", len(s.ListSeasons()))
	}
}

func TestOpenMigratesLegacyFederationID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "club.json")
	legacy := `{
  "seasons": [{"id": 1, "name": "Época 2024/2025", "start_date": "2024-07-01", "end_date": "2025-06-30", "notes": null}],
  "active_season_id": 1,
  "players": [{"id": 1, "name": "Rui Costa", "position": "GR", "squad": "senior", "federation_id": "AFP-123", "season_id": 1}]
}`
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(NewStore(path))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	player, err := s.GetPlayer(1)
	if err != nil {
		t.Fatalf("GetPlayer: %v", err)
	}
	if player.AFPortoID == nil || *player.AFPortoID != "AFP-123" {
		t.Errorf("federation_id not migrated, got %v", player.AFPortoID)
	}

	// the migrated form must be written back
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "federation_id") {
		t.Error("file still contains federation_id after migration")
	}
	if !strings.Contains(string(raw), "af_porto_id") {
		t.Error("file does not contain af_porto_id after migration")
	}
}

func TestRefreshSeesExternalChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "club.json")
	s, err := Open(NewStore(path))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	// a second service instance writes a player
	s2, err := Open(NewStore(path))
	if err != nil {
		t.Fatalf("Open second: %v", err)
	}
	if _, err := s2.AddPlayer(NewPlayer{Name: "Rui Costa", Position: "GR"}); err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}

	if got := len(s.ListPlayers(false)); got != 0 {
		t.Fatalf("stale view should have 0 players, got %d", got)
	}
	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := len(s.ListPlayers(false)); got != 1 {
		t.Errorf("after Refresh want 1 player, got %d", got)
	}
}

func TestPersistedFileIsCanonical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "club.json")
	s, err := Open(NewStore(path))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.AddPlayer(NewPlayer{Name: "Rui Costa", Position: "GR"}); err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(raw)
	if !strings.HasPrefix(text, "{\n  ") {
		t.Error("data file is not two-space indented")
	}
	if !strings.HasSuffix(text, "}\n") {
		t.Error("data file does not end with a newline")
	}
}
