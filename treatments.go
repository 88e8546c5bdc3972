package club

import (
	"sort"
	"strings"
)

// NewTreatment carries the input of AddTreatment.
type NewTreatment struct {
	PlayerID       int
	PhysioID       *int
	Diagnosis      string
	TreatmentPlan  string
	StartDate      Date
	ExpectedReturn *Date
	Unavailable    bool
	Notes          *string
}

// AddTreatment opens a clinical record for a player in the active season.
func (s *Service) AddTreatment(in NewTreatment) (Treatment, error) {
	if findIndex(s.doc.Players, in.PlayerID) < 0 {
		return Treatment{}, notFound("player", in.PlayerID)
	}
	if in.PhysioID != nil && findIndex(s.doc.Physiotherapists, *in.PhysioID) < 0 {
		return Treatment{}, notFound("physiotherapist", *in.PhysioID)
	}
	diagnosis := strings.TrimSpace(in.Diagnosis)
	if diagnosis == "" {
		return Treatment{}, validationf("treatment diagnosis is empty")
	}
	plan := strings.TrimSpace(in.TreatmentPlan)
	if plan == "" {
		return Treatment{}, validationf("treatment plan is empty")
	}
	if in.StartDate.IsZero() {
		return Treatment{}, validationf("treatment start date is missing")
	}

	treatment := Treatment{
		ID:             nextID(s.doc.Treatments),
		PlayerID:       in.PlayerID,
		PhysioID:       in.PhysioID,
		Diagnosis:      diagnosis,
		TreatmentPlan:  plan,
		StartDate:      in.StartDate,
		ExpectedReturn: in.ExpectedReturn,
		Unavailable:    in.Unavailable,
		Notes:          trimPtr(in.Notes),
		SeasonID:       s.ActiveSeasonID(),
	}
	s.doc.Treatments = append(s.doc.Treatments, treatment)
	if err := s.persist(); err != nil {
		return Treatment{}, err
	}
	return treatment, nil
}

// trimPtr trims a nullable text field, turning blank text into null.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// ListTreatments returns the active season's treatments, most recent first
// (start date, then id, descending). With all true, it spans every season.
func (s *Service) ListTreatments(all bool) []Treatment {
	var treatments []Treatment
	if all {
		treatments = make([]Treatment, len(s.doc.Treatments))
		copy(treatments, s.doc.Treatments)
	} else {
		treatments = filterSeason(s.doc.Treatments, func(t Treatment) int { return t.SeasonID }, s.ActiveSeasonID())
	}
	sort.SliceStable(treatments, func(i, j int) bool {
		if treatments[i].StartDate != treatments[j].StartDate {
			return treatments[j].StartDate.Before(treatments[i].StartDate)
		}
		return treatments[j].ID < treatments[i].ID
	})
	return treatments
}

// ActiveTreatments returns the active season's treatments that currently
// make the player unavailable.
func (s *Service) ActiveTreatments() []Treatment {
	var out []Treatment
	for _, t := range s.ListTreatments(false) {
		if t.Unavailable {
			out = append(out, t)
		}
	}
	return out
}

// TreatmentsByPlayer groups the active season's treatments by player id,
// most recent first within each group. With activeOnly, only treatments that
// make the player unavailable are included.
func (s *Service) TreatmentsByPlayer(activeOnly bool) map[int][]Treatment {
	mapping := make(map[int][]Treatment)
	for _, t := range s.ListTreatments(false) {
		if activeOnly && !t.Unavailable {
			continue
		}
		mapping[t.PlayerID] = append(mapping[t.PlayerID], t)
	}
	return mapping
}

// TreatmentPatch describes a partial treatment update.
type TreatmentPatch struct {
	PhysioID       Opt[int]
	Diagnosis      Opt[string]
	TreatmentPlan  Opt[string]
	StartDate      Opt[Date]
	ExpectedReturn Opt[Date]
	Unavailable    Opt[bool]
	Notes          Opt[string]
}

// UpdateTreatment merges the provided fields into the treatment. Setting the
// physiotherapist requires it to exist; clearing it is always allowed.
func (s *Service) UpdateTreatment(id int, patch TreatmentPatch) (Treatment, error) {
	i := findIndex(s.doc.Treatments, id)
	if i < 0 {
		return Treatment{}, notFound("treatment", id)
	}
	treatment := s.doc.Treatments[i]

	if patch.PhysioID.IsSet() && !patch.PhysioID.IsNull() {
		physioID := patch.PhysioID.Value()
		if findIndex(s.doc.Physiotherapists, physioID) < 0 {
			return Treatment{}, notFound("physiotherapist", physioID)
		}
	}
	patch.PhysioID.applyPtr(&treatment.PhysioID)

	if patch.Diagnosis.IsSet() {
		diagnosis := strings.TrimSpace(patch.Diagnosis.Value())
		if diagnosis == "" {
			return Treatment{}, validationf("treatment diagnosis is empty")
		}
		treatment.Diagnosis = diagnosis
	}
	if patch.TreatmentPlan.IsSet() {
		plan := strings.TrimSpace(patch.TreatmentPlan.Value())
		if plan == "" {
			return Treatment{}, validationf("treatment plan is empty")
		}
		treatment.TreatmentPlan = plan
	}
	patch.StartDate.apply(&treatment.StartDate)
	patch.ExpectedReturn.applyPtr(&treatment.ExpectedReturn)
	patch.Unavailable.apply(&treatment.Unavailable)
	if patch.Notes.IsSet() {
		treatment.Notes = trimPtr(patch.Notes.Ptr())
	}

	s.doc.Treatments[i] = treatment
	if err := s.persist(); err != nil {
		return Treatment{}, err
	}
	return treatment, nil
}

// RemoveTreatment deletes a treatment.
func (s *Service) RemoveTreatment(id int) error {
	i := findIndex(s.doc.Treatments, id)
	if i < 0 {
		return notFound("treatment", id)
	}
	s.doc.Treatments = removeAt(s.doc.Treatments, i)
	return s.persist()
}
