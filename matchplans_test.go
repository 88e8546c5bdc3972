package club

import (
	"errors"
	"testing"
)

func rosterSetup(t *testing.T) (*Service, []Player) {
	t.Helper()
	s := newTestService(t)
	var players []Player
	for _, name := range []string{"Rui Costa", "Tiago Sousa", "Bruno Alves"} {
		p, err := s.AddPlayer(NewPlayer{Name: name, Position: "MC"})
		if err != nil {
			t.Fatal(err)
		}
		players = append(players, p)
	}
	return s, players
}

func TestCreateMatchPlanNormalizesRosters(t *testing.T) {
	s, players := rosterSetup(t)

	plan, err := s.CreateMatchPlan(NewMatchPlan{
		MatchDate:   NewDate(2025, 9, 14),
		KickoffTime: "15:00",
		Venue:       "Campo da Bela Vista",
		Opponent:    "SC Rio Tinto",
		Starters:    []int{players[0].ID, players[0].ID, 99, players[1].ID},
		Substitutes: []int{players[1].ID, players[2].ID},
	})
	if err != nil {
		t.Fatalf("CreateMatchPlan: %v", err)
	}
	if plan.Squad != "senior" {
		t.Errorf("squad = %q, want senior", plan.Squad)
	}

	wantStarters := []int{players[0].ID, players[1].ID}
	if len(plan.Starters) != 2 || plan.Starters[0] != wantStarters[0] || plan.Starters[1] != wantStarters[1] {
		t.Errorf("starters = %v, want %v (dedup, drop unknown)", plan.Starters, wantStarters)
	}
	// a starter is never kept as a substitute
	if len(plan.Substitutes) != 1 || plan.Substitutes[0] != players[2].ID {
		t.Errorf("substitutes = %v, want only %d", plan.Substitutes, players[2].ID)
	}
}

func TestCreateMatchPlanValidation(t *testing.T) {
	s, _ := rosterSetup(t)

	cases := []struct {
		name string
		in   NewMatchPlan
	}{
		{"missing kickoff", NewMatchPlan{MatchDate: NewDate(2025, 9, 14), Venue: "v", Opponent: "o"}},
		{"missing venue", NewMatchPlan{MatchDate: NewDate(2025, 9, 14), KickoffTime: "15:00", Opponent: "o"}},
		{"missing opponent", NewMatchPlan{MatchDate: NewDate(2025, 9, 14), KickoffTime: "15:00", Venue: "v"}},
		{"missing date", NewMatchPlan{KickoffTime: "15:00", Venue: "v", Opponent: "o"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateMatchPlan(tc.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("want ValidationError, got %v", err)
			}
		})
	}

	_, err := s.CreateMatchPlan(NewMatchPlan{
		MatchDate: NewDate(2025, 9, 14), KickoffTime: "15:00", Venue: "v", Opponent: "o",
		CoachID: ptr(99),
	})
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Errorf("want NotFoundError for unknown coach, got %v", err)
	}
}

func TestListMatchPlansCalendarOrder(t *testing.T) {
	s, _ := rosterSetup(t)

	add := func(date Date, kickoff string) MatchPlan {
		t.Helper()
		plan, err := s.CreateMatchPlan(NewMatchPlan{
			MatchDate: date, KickoffTime: kickoff, Venue: "v", Opponent: "o",
		})
		if err != nil {
			t.Fatal(err)
		}
		return plan
	}

	late := add(NewDate(2025, 10, 5), "15:00")
	earlySecond := add(NewDate(2025, 9, 14), "17:00")
	earlyFirst := add(NewDate(2025, 9, 14), "11:00")

	plans := s.ListMatchPlans(false)
	want := []int{earlyFirst.ID, earlySecond.ID, late.ID}
	for i, id := range want {
		if plans[i].ID != id {
			t.Fatalf("calendar order = [%d %d %d], want %v", plans[0].ID, plans[1].ID, plans[2].ID, want)
		}
	}
}

func TestUpdateMatchPlanRenormalizesSubstitutes(t *testing.T) {
	s, players := rosterSetup(t)

	plan, err := s.CreateMatchPlan(NewMatchPlan{
		MatchDate: NewDate(2025, 9, 14), KickoffTime: "15:00", Venue: "v", Opponent: "o",
		Starters:    []int{players[0].ID},
		Substitutes: []int{players[1].ID},
	})
	if err != nil {
		t.Fatal(err)
	}

	// promoting the substitute to starter drops them from the bench
	plan, err = s.UpdateMatchPlan(plan.ID, MatchPlanPatch{
		Starters: Set([]int{players[0].ID, players[1].ID}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Substitutes) != 0 {
		t.Errorf("substitutes = %v, want empty after promotion", plan.Substitutes)
	}
}

func TestRemoveMatchPlan(t *testing.T) {
	s, _ := rosterSetup(t)

	plan, err := s.CreateMatchPlan(NewMatchPlan{
		MatchDate: NewDate(2025, 9, 14), KickoffTime: "15:00", Venue: "v", Opponent: "o",
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveMatchPlan(plan.ID); err != nil {
		t.Fatal(err)
	}
	_, err = s.GetMatchPlan(plan.ID)
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("want NotFoundError after removal, got %v", err)
	}
}
