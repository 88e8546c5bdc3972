package club

import (
	"errors"
	"testing"
)

func treatmentSetup(t *testing.T) (*Service, Player, Physiotherapist) {
	t.Helper()
	s := newTestService(t)
	player, err := s.AddPlayer(NewPlayer{Name: "Rui Costa", Position: "GR"})
	if err != nil {
		t.Fatal(err)
	}
	physio, err := s.AddPhysiotherapist(NewPhysiotherapist{Name: "Marta Lopes"})
	if err != nil {
		t.Fatal(err)
	}
	return s, player, physio
}

func TestAddTreatmentValidation(t *testing.T) {
	s, player, _ := treatmentSetup(t)

	_, err := s.AddTreatment(NewTreatment{PlayerID: 99, Diagnosis: "entorse", TreatmentPlan: "gelo", StartDate: Today()})
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Errorf("unknown player: want NotFoundError, got %v", err)
	}

	_, err = s.AddTreatment(NewTreatment{PlayerID: player.ID, Diagnosis: "  ", TreatmentPlan: "gelo", StartDate: Today()})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("blank diagnosis: want ValidationError, got %v", err)
	}

	_, err = s.AddTreatment(NewTreatment{PlayerID: player.ID, Diagnosis: "entorse", TreatmentPlan: "gelo"})
	if !errors.As(err, &verr) {
		t.Errorf("missing start date: want ValidationError, got %v", err)
	}

	_, err = s.AddTreatment(NewTreatment{
		PlayerID: player.ID, PhysioID: ptr(99),
		Diagnosis: "entorse", TreatmentPlan: "gelo", StartDate: Today(),
	})
	if !errors.As(err, &nerr) {
		t.Errorf("unknown physio: want NotFoundError, got %v", err)
	}
}

func TestListTreatmentsMostRecentFirst(t *testing.T) {
	s, player, _ := treatmentSetup(t)

	add := func(start Date) Treatment {
		t.Helper()
		tr, err := s.AddTreatment(NewTreatment{
			PlayerID: player.ID, Diagnosis: "entorse", TreatmentPlan: "gelo", StartDate: start,
		})
		if err != nil {
			t.Fatal(err)
		}
		return tr
	}

	old := add(NewDate(2025, 8, 1))
	recent := add(NewDate(2025, 9, 10))
	sameDay := add(NewDate(2025, 9, 10))

	treatments := s.ListTreatments(false)
	// same start date ranks by id, newest id first
	want := []int{sameDay.ID, recent.ID, old.ID}
	for i, id := range want {
		if treatments[i].ID != id {
			t.Fatalf("order = [%d %d %d], want %v", treatments[0].ID, treatments[1].ID, treatments[2].ID, want)
		}
	}
}

func TestActiveTreatments(t *testing.T) {
	s, player, _ := treatmentSetup(t)

	if _, err := s.AddTreatment(NewTreatment{
		PlayerID: player.ID, Diagnosis: "entorse", TreatmentPlan: "gelo",
		StartDate: Today(), Unavailable: true,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddTreatment(NewTreatment{
		PlayerID: player.ID, Diagnosis: "contratura", TreatmentPlan: "repouso",
		StartDate: Today(),
	}); err != nil {
		t.Fatal(err)
	}

	active := s.ActiveTreatments()
	if len(active) != 1 || !active[0].Unavailable {
		t.Errorf("ActiveTreatments = %v, want only the unavailable one", active)
	}

	byPlayer := s.TreatmentsByPlayer(true)
	if len(byPlayer[player.ID]) != 1 {
		t.Errorf("TreatmentsByPlayer(active) has %d records, want 1", len(byPlayer[player.ID]))
	}
}

func TestRemovePhysioClearsReference(t *testing.T) {
	s, player, physio := treatmentSetup(t)

	tr, err := s.AddTreatment(NewTreatment{
		PlayerID: player.ID, PhysioID: &physio.ID,
		Diagnosis: "entorse", TreatmentPlan: "gelo", StartDate: Today(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.RemovePhysiotherapist(physio.ID); err != nil {
		t.Fatal(err)
	}
	treatments := s.ListTreatments(false)
	if len(treatments) != 1 {
		t.Fatalf("treatment removed with its physio")
	}
	if treatments[0].ID == tr.ID && treatments[0].PhysioID != nil {
		t.Errorf("physio reference not cleared: %v", *treatments[0].PhysioID)
	}
}

func TestUpdateTreatmentReturnToPlay(t *testing.T) {
	s, player, _ := treatmentSetup(t)

	tr, err := s.AddTreatment(NewTreatment{
		PlayerID: player.ID, Diagnosis: "entorse", TreatmentPlan: "gelo",
		StartDate: Today(), Unavailable: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	tr, err = s.UpdateTreatment(tr.ID, TreatmentPatch{
		Unavailable:    Set(false),
		ExpectedReturn: Null[Date](),
		Notes:          Set("recuperado"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Unavailable {
		t.Error("player still unavailable")
	}
	if tr.Notes == nil || *tr.Notes != "recuperado" {
		t.Errorf("notes = %v", tr.Notes)
	}
	if len(s.ActiveTreatments()) != 0 {
		t.Error("treatment still listed as active")
	}
}
