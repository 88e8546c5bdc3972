package club

import "strings"

// Coaches ---------------------------------------------------------------

// NewCoach carries the input of AddCoach.
type NewCoach struct {
	Name         string
	Role         string // defaults to "Head Coach"
	LicenseLevel *string
	Birthdate    *Date
	Contact      *string
}

// AddCoach registers a coach in the active season.
func (s *Service) AddCoach(in NewCoach) (Coach, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Coach{}, validationf("coach name is empty")
	}
	role := in.Role
	if strings.TrimSpace(role) == "" {
		role = "Head Coach"
	}
	coach := Coach{
		ID:           nextID(s.doc.Coaches),
		Name:         in.Name,
		Role:         role,
		LicenseLevel: in.LicenseLevel,
		Birthdate:    in.Birthdate,
		Contact:      in.Contact,
		SeasonID:     s.ActiveSeasonID(),
	}
	s.doc.Coaches = append(s.doc.Coaches, coach)
	if err := s.persist(); err != nil {
		return Coach{}, err
	}
	return coach, nil
}

// ListCoaches returns the active season's coaches in insertion order. With
// all true, it returns every season's.
func (s *Service) ListCoaches(all bool) []Coach {
	if all {
		out := make([]Coach, len(s.doc.Coaches))
		copy(out, s.doc.Coaches)
		return out
	}
	return filterSeason(s.doc.Coaches, func(c Coach) int { return c.SeasonID }, s.ActiveSeasonID())
}

// CoachPatch describes a partial coach update.
type CoachPatch struct {
	Name         Opt[string]
	Role         Opt[string]
	LicenseLevel Opt[string]
	Birthdate    Opt[Date]
	Contact      Opt[string]
}

// UpdateCoach merges the provided fields into the coach.
func (s *Service) UpdateCoach(id int, patch CoachPatch) (Coach, error) {
	i := findIndex(s.doc.Coaches, id)
	if i < 0 {
		return Coach{}, notFound("coach", id)
	}
	coach := s.doc.Coaches[i]
	patch.Name.apply(&coach.Name)
	patch.Role.apply(&coach.Role)
	patch.LicenseLevel.applyPtr(&coach.LicenseLevel)
	patch.Birthdate.applyPtr(&coach.Birthdate)
	patch.Contact.applyPtr(&coach.Contact)
	s.doc.Coaches[i] = coach
	if err := s.persist(); err != nil {
		return Coach{}, err
	}
	return coach, nil
}

// RemoveCoach deletes a coach. Youth teams and match plans referencing the
// coach keep working with the reference cleared.
func (s *Service) RemoveCoach(id int) error {
	i := findIndex(s.doc.Coaches, id)
	if i < 0 {
		return notFound("coach", id)
	}
	for ti := range s.doc.YouthTeams {
		team := &s.doc.YouthTeams[ti]
		if team.CoachID != nil && *team.CoachID == id {
			team.CoachID = nil
		}
	}
	for pi := range s.doc.MatchPlans {
		plan := &s.doc.MatchPlans[pi]
		if plan.CoachID != nil && *plan.CoachID == id {
			plan.CoachID = nil
		}
	}
	s.doc.Coaches = removeAt(s.doc.Coaches, i)
	return s.persist()
}

// Physiotherapists -------------------------------------------------------

// NewPhysiotherapist carries the input of AddPhysiotherapist.
type NewPhysiotherapist struct {
	Name           string
	Specialization *string
	Birthdate      *Date
	Contact        *string
}

// AddPhysiotherapist registers a physiotherapist in the active season.
func (s *Service) AddPhysiotherapist(in NewPhysiotherapist) (Physiotherapist, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Physiotherapist{}, validationf("physiotherapist name is empty")
	}
	physio := Physiotherapist{
		ID:             nextID(s.doc.Physiotherapists),
		Name:           in.Name,
		Specialization: in.Specialization,
		Birthdate:      in.Birthdate,
		Contact:        in.Contact,
		SeasonID:       s.ActiveSeasonID(),
	}
	s.doc.Physiotherapists = append(s.doc.Physiotherapists, physio)
	if err := s.persist(); err != nil {
		return Physiotherapist{}, err
	}
	return physio, nil
}

// ListPhysiotherapists returns the active season's physiotherapists in
// insertion order. With all true, it returns every season's.
func (s *Service) ListPhysiotherapists(all bool) []Physiotherapist {
	if all {
		out := make([]Physiotherapist, len(s.doc.Physiotherapists))
		copy(out, s.doc.Physiotherapists)
		return out
	}
	return filterSeason(s.doc.Physiotherapists, func(p Physiotherapist) int { return p.SeasonID }, s.ActiveSeasonID())
}

// PhysiotherapistPatch describes a partial physiotherapist update.
type PhysiotherapistPatch struct {
	Name           Opt[string]
	Specialization Opt[string]
	Birthdate      Opt[Date]
	Contact        Opt[string]
}

// UpdatePhysiotherapist merges the provided fields into the physiotherapist.
func (s *Service) UpdatePhysiotherapist(id int, patch PhysiotherapistPatch) (Physiotherapist, error) {
	i := findIndex(s.doc.Physiotherapists, id)
	if i < 0 {
		return Physiotherapist{}, notFound("physiotherapist", id)
	}
	physio := s.doc.Physiotherapists[i]
	patch.Name.apply(&physio.Name)
	patch.Specialization.applyPtr(&physio.Specialization)
	patch.Birthdate.applyPtr(&physio.Birthdate)
	patch.Contact.applyPtr(&physio.Contact)
	s.doc.Physiotherapists[i] = physio
	if err := s.persist(); err != nil {
		return Physiotherapist{}, err
	}
	return physio, nil
}

// RemovePhysiotherapist deletes a physiotherapist. Treatments referencing it
// are kept, with their physio reference nulled.
func (s *Service) RemovePhysiotherapist(id int) error {
	i := findIndex(s.doc.Physiotherapists, id)
	if i < 0 {
		return notFound("physiotherapist", id)
	}
	s.doc.Physiotherapists = removeAt(s.doc.Physiotherapists, i)
	for ti := range s.doc.Treatments {
		t := &s.doc.Treatments[ti]
		if t.PhysioID != nil && *t.PhysioID == id {
			t.PhysioID = nil
		}
	}
	return s.persist()
}
