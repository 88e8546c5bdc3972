package club

import (
	"errors"
	"testing"
)

func TestAssignPlayerToTeam(t *testing.T) {
	s := newTestService(t)

	coach, err := s.AddCoach(NewCoach{Name: "Carlos Pinto"})
	if err != nil {
		t.Fatal(err)
	}
	team, err := s.AddYouthTeam(NewYouthTeam{Name: "Juvenis A", AgeGroup: "juvenis", CoachID: &coach.ID})
	if err != nil {
		t.Fatal(err)
	}

	var ids []int
	for _, name := range []string{"Rui Costa", "Tiago Sousa"} {
		p, err := s.AddPlayer(NewPlayer{Name: name, Position: "MC", Squad: "juvenis"})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, p.ID)
	}

	// assign in reverse order, roster comes back sorted
	if _, err := s.AssignPlayerToTeam(team.ID, ids[1]); err != nil {
		t.Fatal(err)
	}
	team, err = s.AssignPlayerToTeam(team.ID, ids[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(team.PlayerIDs) != 2 || team.PlayerIDs[0] != ids[0] || team.PlayerIDs[1] != ids[1] {
		t.Errorf("roster = %v, want sorted %v", team.PlayerIDs, ids)
	}

	// re-assigning is a no-op
	team, err = s.AssignPlayerToTeam(team.ID, ids[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(team.PlayerIDs) != 2 {
		t.Errorf("re-assignment duplicated the roster: %v", team.PlayerIDs)
	}

	// unknown player
	_, err = s.AssignPlayerToTeam(team.ID, 99)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Errorf("want NotFoundError, got %v", err)
	}
}

func TestAssignRejectsInactiveSeasonTeam(t *testing.T) {
	s := newTestService(t)

	team, err := s.AddYouthTeam(NewYouthTeam{Name: "Juvenis A", AgeGroup: "juvenis"})
	if err != nil {
		t.Fatal(err)
	}
	player, err := s.AddPlayer(NewPlayer{Name: "Rui Costa", Position: "MC", Squad: "juvenis"})
	if err != nil {
		t.Fatal(err)
	}

	next, err := s.CreateSeason("Época 2026/2027", NewDate(2026, 7, 1), NewDate(2027, 6, 30), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetActiveSeason(next.ID); err != nil {
		t.Fatal(err)
	}

	_, err = s.AssignPlayerToTeam(team.ID, player.ID)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestAddYouthTeamValidation(t *testing.T) {
	s := newTestService(t)

	_, err := s.AddYouthTeam(NewYouthTeam{Name: "", AgeGroup: "juvenis"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("blank name: want ValidationError, got %v", err)
	}

	_, err = s.AddYouthTeam(NewYouthTeam{Name: "Juvenis A", AgeGroup: "juvenis", CoachID: ptr(99)})
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Errorf("unknown coach: want NotFoundError, got %v", err)
	}
}

func TestRemoveCoachClearsTeamReference(t *testing.T) {
	s := newTestService(t)

	coach, err := s.AddCoach(NewCoach{Name: "Carlos Pinto"})
	if err != nil {
		t.Fatal(err)
	}
	if coach.Role != "Head Coach" {
		t.Errorf("default role = %q, want Head Coach", coach.Role)
	}
	team, err := s.AddYouthTeam(NewYouthTeam{Name: "Juvenis A", AgeGroup: "juvenis", CoachID: &coach.ID})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.RemoveCoach(coach.ID); err != nil {
		t.Fatal(err)
	}
	teams := s.ListYouthTeams(false)
	if len(teams) != 1 || teams[0].ID != team.ID {
		t.Fatalf("team removed with its coach")
	}
	if teams[0].CoachID != nil {
		t.Errorf("coach reference not cleared: %v", *teams[0].CoachID)
	}
}
