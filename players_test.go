package club

import (
	"errors"
	"strings"
	"testing"
)

func TestAddYouthPlayerCreatesFeeRevenue(t *testing.T) {
	s := newTestService(t)

	fee := A(25)
	player, err := s.AddPlayer(NewPlayer{
		Name:             "Rui Costa",
		Position:         "GR",
		Squad:            "juniores",
		YouthMonthlyFee:  &fee,
		YouthMonthlyPaid: true,
	})
	if err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}
	if player.YouthMonthlyRevenueID == nil {
		t.Fatal("paid monthly fee did not link a revenue")
	}

	revenues := s.ListRevenues(false)
	if len(revenues) != 1 {
		t.Fatalf("want 1 revenue, got %d", len(revenues))
	}
	rev := revenues[0]
	if rev.ID != *player.YouthMonthlyRevenueID {
		t.Errorf("revenue link mismatch: %d != %d", rev.ID, *player.YouthMonthlyRevenueID)
	}
	if rev.Category != YouthRevenueCategory {
		t.Errorf("category = %q, want %q", rev.Category, YouthRevenueCategory)
	}
	if rev.Source == nil || *rev.Source != YouthMonthlySource {
		t.Errorf("source = %v, want %q", rev.Source, YouthMonthlySource)
	}
	if !rev.Amount.Equal(fee) {
		t.Errorf("amount = %s, want %s", rev.Amount, fee)
	}
	if !strings.Contains(rev.Description, "Rui Costa") || !strings.Contains(rev.Description, "Juniores") {
		t.Errorf("description %q misses player or squad", rev.Description)
	}
}

func TestPaidFeeWithoutAmountRejected(t *testing.T) {
	s := newTestService(t)

	_, err := s.AddPlayer(NewPlayer{
		Name:             "Rui Costa",
		Position:         "GR",
		Squad:            "juvenis",
		YouthMonthlyPaid: true,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestSeniorPlayerFeesIgnored(t *testing.T) {
	s := newTestService(t)

	fee := A(25)
	player, err := s.AddPlayer(NewPlayer{
		Name:             "Tiago Sousa",
		Position:         "AV",
		YouthMonthlyFee:  &fee,
		YouthMonthlyPaid: true,
	})
	if err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}
	if player.Squad != "senior" {
		t.Errorf("squad = %q, want senior", player.Squad)
	}
	if player.YouthMonthlyFee != nil || player.YouthMonthlyPaid {
		t.Error("fee fields survive outside youth squads")
	}
	if len(s.ListRevenues(false)) != 0 {
		t.Error("senior player produced a fee revenue")
	}
}

func TestUnpaidFeeTearsDownRevenue(t *testing.T) {
	s := newTestService(t)

	fee := A(25)
	player, err := s.AddPlayer(NewPlayer{
		Name: "Rui Costa", Position: "GR", Squad: "juniores",
		YouthMonthlyFee: &fee, YouthMonthlyPaid: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	player, err = s.UpdatePlayer(player.ID, PlayerPatch{YouthMonthlyPaid: Set(false)})
	if err != nil {
		t.Fatal(err)
	}
	if player.YouthMonthlyRevenueID != nil {
		t.Error("revenue link survives an unpaid fee")
	}
	if len(s.ListRevenues(false)) != 0 {
		t.Error("revenue survives an unpaid fee")
	}
}

func TestFeeChangeUpdatesRevenueInPlace(t *testing.T) {
	s := newTestService(t)

	fee := A(25)
	player, err := s.AddPlayer(NewPlayer{
		Name: "Rui Costa", Position: "GR", Squad: "juniores",
		YouthMonthlyFee: &fee, YouthMonthlyPaid: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	linked := *player.YouthMonthlyRevenueID

	player, err = s.UpdatePlayer(player.ID, PlayerPatch{YouthMonthlyFee: Set(A(30))})
	if err != nil {
		t.Fatal(err)
	}
	if *player.YouthMonthlyRevenueID != linked {
		t.Errorf("fee change rewired the link: %d -> %d", linked, *player.YouthMonthlyRevenueID)
	}
	revenues := s.ListRevenues(false)
	if len(revenues) != 1 {
		t.Fatalf("want 1 revenue, got %d", len(revenues))
	}
	if !revenues[0].Amount.Equal(A(30)) {
		t.Errorf("revenue amount = %s, want %s", revenues[0].Amount, A(30))
	}
}

func TestMoveToSeniorClearsFeesAndRevenues(t *testing.T) {
	s := newTestService(t)

	monthly, kit := A(25), A(40)
	player, err := s.AddPlayer(NewPlayer{
		Name: "Rui Costa", Position: "GR", Squad: "juniores",
		YouthMonthlyFee: &monthly, YouthMonthlyPaid: true,
		YouthKitFee: &kit, YouthKitPaid: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(s.ListRevenues(false)) != 2 {
		t.Fatalf("want 2 fee revenues, got %d", len(s.ListRevenues(false)))
	}

	player, err = s.UpdatePlayer(player.ID, PlayerPatch{Squad: Set("senior")})
	if err != nil {
		t.Fatal(err)
	}
	if player.YouthMonthlyFee != nil || player.YouthKitFee != nil {
		t.Error("fees survive the move to senior")
	}
	if player.YouthMonthlyRevenueID != nil || player.YouthKitRevenueID != nil {
		t.Error("revenue links survive the move to senior")
	}
	if len(s.ListRevenues(false)) != 0 {
		t.Error("fee revenues survive the move to senior")
	}
}

func TestIsYouthSquadCaseInsensitive(t *testing.T) {
	for _, squad := range []string{"juniores", "Juvenis", "INICIADOS", "Infantis"} {
		if !IsYouthSquad(squad) {
			t.Errorf("IsYouthSquad(%q) = false", squad)
		}
	}
	for _, squad := range []string{"senior", "veteranos", ""} {
		if IsYouthSquad(squad) {
			t.Errorf("IsYouthSquad(%q) = true", squad)
		}
	}
}

func TestRemovePlayerCascades(t *testing.T) {
	s := newTestService(t)

	fee := A(25)
	player, err := s.AddPlayer(NewPlayer{
		Name: "Rui Costa", Position: "GR", Squad: "juniores",
		YouthMonthlyFee: &fee, YouthMonthlyPaid: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	other, err := s.AddPlayer(NewPlayer{Name: "Tiago Sousa", Position: "AV", Squad: "juniores"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.AddTreatment(NewTreatment{
		PlayerID: player.ID, Diagnosis: "entorse", TreatmentPlan: "gelo", StartDate: Today(),
	}); err != nil {
		t.Fatal(err)
	}
	plan, err := s.CreateMatchPlan(NewMatchPlan{
		MatchDate: NewDate(2025, 9, 14), KickoffTime: "15:00",
		Venue: "Campo da Bela Vista", Opponent: "SC Rio Tinto",
		Starters: []int{player.ID, other.ID},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.RemovePlayer(player.ID); err != nil {
		t.Fatal(err)
	}

	if len(s.ListRevenues(false)) != 0 {
		t.Error("linked revenue survives player removal")
	}
	if len(s.ListTreatments(false)) != 0 {
		t.Error("treatments survive player removal")
	}
	plan, err = s.GetMatchPlan(plan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Starters) != 1 || plan.Starters[0] != other.ID {
		t.Errorf("roster not pruned: %v", plan.Starters)
	}
}
