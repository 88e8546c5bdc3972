package renderer

import (
	"strings"
	"testing"

	"github.com/vilacaiz/club"
)

func strp(s string) *string { return &s }

func TestPlayersShowsYouthFees(t *testing.T) {
	fee := club.A(25)
	players := []club.Player{
		{ID: 1, Name: "Rui Costa", Position: "Guarda-Redes", Squad: "juniores", YouthMonthlyFee: &fee, YouthMonthlyPaid: true},
		{ID: 2, Name: "Tiago Sousa", Position: "Avançado", Squad: "senior"},
	}

	got := Players(players)
	for _, want := range []string{"Rui Costa", "Tiago Sousa", "Monthly Fee", "paid"} {
		if !strings.Contains(got, want) {
			t.Errorf("Players() missing %q in:\n%s", want, got)
		}
	}
}

func TestPlayersHidesYouthFeesForSeniorRoster(t *testing.T) {
	players := []club.Player{{ID: 1, Name: "Tiago Sousa", Position: "Avançado", Squad: "senior"}}

	got := Players(players)
	if strings.Contains(got, "Monthly Fee") {
		t.Errorf("Players() shows fee columns for a senior roster:\n%s", got)
	}
}

func TestMatchSheet(t *testing.T) {
	coach := 3
	plan := club.MatchPlan{
		ID:          1,
		Squad:       "senior",
		MatchDate:   club.NewDate(2025, 9, 14),
		KickoffTime: "15:00",
		Venue:       "Campo da Bela Vista",
		Opponent:    "SC Rio Tinto",
		CoachID:     &coach,
		Starters:    []int{1, 2},
		Substitutes: []int{5},
	}
	names := map[int]string{1: "Rui Costa", 2: "Tiago Sousa", 5: "Bruno Alves"}
	playerName := func(id int) string { return names[id] }
	coachName := func(id int) string { return "Carlos Pinto" }

	got := MatchSheet(plan, playerName, coachName)
	for _, want := range []string{"SC Rio Tinto", "15:00", "Carlos Pinto", "Rui Costa", "Bruno Alves", "Starters", "Substitutes"} {
		if !strings.Contains(got, want) {
			t.Errorf("MatchSheet() missing %q in:\n%s", want, got)
		}
	}
}

func TestFinancialSummary(t *testing.T) {
	s := club.FinancialSummary{
		TotalRevenue: club.A(1500),
		TotalExpense: club.A(400),
		Balance:      club.A(1100),
		Revenue:      map[string]club.Amount{"Quotas de Sócios": club.A(1500)},
		Expense:      map[string]club.Amount{"Equipamento": club.A(400)},
	}

	got := FinancialSummary("Época 2025/2026", s)
	for _, want := range []string{"Época 2025/2026", "Total Revenue", "Quotas de Sócios", "Equipamento", "Balance"} {
		if !strings.Contains(got, want) {
			t.Errorf("FinancialSummary() missing %q in:\n%s", want, got)
		}
	}
}

func TestMembersMarksUnpaidDues(t *testing.T) {
	members := []club.Member{
		{ID: 1, Name: "Ana Ferreira", MemberNumber: 10, MembershipType: "standard", DuesPaid: true, DuesPaidUntil: strp("2025-09")},
		{ID: 2, Name: "José Melo", MemberNumber: 11, MembershipType: "standard"},
	}

	got := Members(members)
	for _, want := range []string{"Ana Ferreira", "2025-09", "José Melo", "no"} {
		if !strings.Contains(got, want) {
			t.Errorf("Members() missing %q in:\n%s", want, got)
		}
	}
}
