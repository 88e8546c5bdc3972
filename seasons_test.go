package club

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestBootstrapSeason(t *testing.T) {
	s := newTestService(t)

	seasons := s.ListSeasons()
	if len(seasons) != 1 {
		t.Fatalf("want 1 bootstrap season, got %d", len(seasons))
	}
	season := seasons[0]

	startYear := time.Now().Year()
	if time.Now().Month() < time.July {
		startYear--
	}
	wantName := fmt.Sprintf("Época %d/%d", startYear, startYear+1)
	if season.Name != wantName {
		t.Errorf("bootstrap season name = %q, want %q", season.Name, wantName)
	}
	if season.StartDate != NewDate(startYear, 7, 1) {
		t.Errorf("start date = %s, want %d-07-01", season.StartDate, startYear)
	}
	if season.EndDate != NewDate(startYear+1, 6, 30) {
		t.Errorf("end date = %s, want %d-06-30", season.EndDate, startYear+1)
	}
	if s.ActiveSeasonID() != season.ID {
		t.Errorf("bootstrap season is not active")
	}
}

func TestCreateSeasonRejectsInvertedRange(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateSeason("Época X", NewDate(2026, 7, 1), NewDate(2026, 6, 30), nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestSetActiveSeasonScopesListings(t *testing.T) {
	s := newTestService(t)

	if _, err := s.AddPlayer(NewPlayer{Name: "Rui Costa", Position: "GR"}); err != nil {
		t.Fatal(err)
	}

	next, err := s.CreateSeason("Época 2026/2027", NewDate(2026, 7, 1), NewDate(2027, 6, 30), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetActiveSeason(next.ID); err != nil {
		t.Fatal(err)
	}

	if got := len(s.ListPlayers(false)); got != 0 {
		t.Errorf("new season should list 0 players, got %d", got)
	}
	if got := len(s.ListPlayers(true)); got != 1 {
		t.Errorf("all seasons should list 1 player, got %d", got)
	}

	// new records land in the new season
	if _, err := s.AddPlayer(NewPlayer{Name: "Tiago Sousa", Position: "AV"}); err != nil {
		t.Fatal(err)
	}
	players := s.ListPlayers(false)
	if len(players) != 1 || players[0].SeasonID != next.ID {
		t.Errorf("new player not stamped with the active season")
	}
}

func TestSetActiveSeasonUnknown(t *testing.T) {
	s := newTestService(t)

	_, err := s.SetActiveSeason(99)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestRemoveSeasonCascades(t *testing.T) {
	s := newTestService(t)
	first := s.ActiveSeasonID()

	if _, err := s.AddPlayer(NewPlayer{Name: "Rui Costa", Position: "GR"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddRevenue("Bar", A(100), "Bar", Today(), nil); err != nil {
		t.Fatal(err)
	}

	next, err := s.CreateSeason("Época 2026/2027", NewDate(2026, 7, 1), NewDate(2027, 6, 30), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetActiveSeason(next.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveSeason(first); err != nil {
		t.Fatal(err)
	}

	if got := len(s.ListPlayers(true)); got != 0 {
		t.Errorf("players of the removed season survive: %d", got)
	}
	if got := len(s.ListRevenues(true)); got != 0 {
		t.Errorf("revenues of the removed season survive: %d", got)
	}
}

func TestRemoveActiveSeasonRejected(t *testing.T) {
	s := newTestService(t)

	err := s.RemoveSeason(s.ActiveSeasonID())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestUpdateSeasonClearsNotes(t *testing.T) {
	s := newTestService(t)
	id := s.ActiveSeasonID()

	if _, err := s.UpdateSeason(id, SeasonPatch{Notes: Set("provisional")}); err != nil {
		t.Fatal(err)
	}
	season, err := s.UpdateSeason(id, SeasonPatch{Notes: Null[string]()})
	if err != nil {
		t.Fatal(err)
	}
	if season.Notes != nil {
		t.Errorf("notes not cleared: %v", *season.Notes)
	}
}
