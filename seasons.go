package club

import (
	"fmt"
	"time"
)

// ensureSeasonSetup guarantees that exactly one valid active season exists.
// Idempotent. It reports whether it changed the document:
//
//   - no seasons at all: synthesize a default season spanning Jul 1 - Jun 30
//     straddling today, and make it active;
//   - active pointer unset or referencing a missing season: fall back to the
//     first season in insertion order;
//   - any season-scoped record with a zero season reference: stamp it with
//     the resolved active season id.
func (s *Service) ensureSeasonSetup() bool {
	changed := false

	if len(s.doc.Seasons) == 0 {
		today := Today()
		startYear := today.Year()
		if today.Month() < time.July {
			startYear--
		}
		season := Season{
			ID:        nextID(s.doc.Seasons),
			Name:      fmt.Sprintf("Época %d/%d", startYear, startYear+1),
			StartDate: NewDate(startYear, time.July, 1),
			EndDate:   NewDate(startYear+1, time.June, 30),
		}
		s.doc.Seasons = append(s.doc.Seasons, season)
		s.doc.ActiveSeasonID = &season.ID
		changed = true
	}

	active := s.doc.ActiveSeasonID
	if active == nil || findIndex(s.doc.Seasons, *active) < 0 {
		first := s.doc.Seasons[0].ID
		s.doc.ActiveSeasonID = &first
		active = &first
		changed = true
	}

	if s.stampMissingSeasonIDs(*active) {
		changed = true
	}
	return changed
}

// stampMissingSeasonIDs repairs orphaned records (season reference 0) by
// assigning them to the given season.
func (s *Service) stampMissingSeasonIDs(seasonID int) bool {
	changed := false
	d := s.doc
	for i := range d.Players {
		if d.Players[i].SeasonID == 0 {
			d.Players[i].SeasonID = seasonID
			changed = true
		}
	}
	for i := range d.Coaches {
		if d.Coaches[i].SeasonID == 0 {
			d.Coaches[i].SeasonID = seasonID
			changed = true
		}
	}
	for i := range d.Physiotherapists {
		if d.Physiotherapists[i].SeasonID == 0 {
			d.Physiotherapists[i].SeasonID = seasonID
			changed = true
		}
	}
	for i := range d.Treatments {
		if d.Treatments[i].SeasonID == 0 {
			d.Treatments[i].SeasonID = seasonID
			changed = true
		}
	}
	for i := range d.YouthTeams {
		if d.YouthTeams[i].SeasonID == 0 {
			d.YouthTeams[i].SeasonID = seasonID
			changed = true
		}
	}
	for i := range d.Members {
		if d.Members[i].SeasonID == 0 {
			d.Members[i].SeasonID = seasonID
			changed = true
		}
	}
	for i := range d.MembershipTypes {
		if d.MembershipTypes[i].SeasonID == 0 {
			d.MembershipTypes[i].SeasonID = seasonID
			changed = true
		}
	}
	for i := range d.MembershipPayments {
		if d.MembershipPayments[i].SeasonID == 0 {
			d.MembershipPayments[i].SeasonID = seasonID
			changed = true
		}
	}
	for i := range d.MatchPlans {
		if d.MatchPlans[i].SeasonID == 0 {
			d.MatchPlans[i].SeasonID = seasonID
			changed = true
		}
	}
	for i := range d.Revenues {
		if d.Revenues[i].SeasonID == 0 {
			d.Revenues[i].SeasonID = seasonID
			changed = true
		}
	}
	for i := range d.Expenses {
		if d.Expenses[i].SeasonID == 0 {
			d.Expenses[i].SeasonID = seasonID
			changed = true
		}
	}
	return changed
}

// ActiveSeasonID returns the id of the active season. Open guarantees one
// exists.
func (s *Service) ActiveSeasonID() int {
	return *s.doc.ActiveSeasonID
}

// ActiveSeason returns the active season.
func (s *Service) ActiveSeason() Season {
	i := findIndex(s.doc.Seasons, s.ActiveSeasonID())
	return s.doc.Seasons[i]
}

// ListSeasons returns all seasons in insertion order.
func (s *Service) ListSeasons() []Season {
	out := make([]Season, len(s.doc.Seasons))
	copy(out, s.doc.Seasons)
	return out
}

// CreateSeason appends a new season. The end date must not precede the start
// date.
func (s *Service) CreateSeason(name string, start, end Date, notes *string) (Season, error) {
	if end.Before(start) {
		return Season{}, validationf("season end date %s is before its start date %s", end, start)
	}
	season := Season{
		ID:        nextID(s.doc.Seasons),
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Notes:     notes,
	}
	s.doc.Seasons = append(s.doc.Seasons, season)
	if err := s.persist(); err != nil {
		return Season{}, err
	}
	return season, nil
}

// SeasonPatch describes a partial season update.
type SeasonPatch struct {
	Name      Opt[string]
	StartDate Opt[Date]
	EndDate   Opt[Date]
	Notes     Opt[string]
}

// UpdateSeason merges the provided fields into the season. The date ordering
// is validated against the merged values.
func (s *Service) UpdateSeason(id int, patch SeasonPatch) (Season, error) {
	i := findIndex(s.doc.Seasons, id)
	if i < 0 {
		return Season{}, notFound("season", id)
	}
	season := s.doc.Seasons[i]
	patch.Name.apply(&season.Name)
	patch.StartDate.apply(&season.StartDate)
	patch.EndDate.apply(&season.EndDate)
	patch.Notes.applyPtr(&season.Notes)
	if season.EndDate.Before(season.StartDate) {
		return Season{}, validationf("season end date %s is before its start date %s", season.EndDate, season.StartDate)
	}
	s.doc.Seasons[i] = season
	if err := s.persist(); err != nil {
		return Season{}, err
	}
	return season, nil
}

// SetActiveSeason switches the active season pointer.
func (s *Service) SetActiveSeason(id int) (Season, error) {
	i := findIndex(s.doc.Seasons, id)
	if i < 0 {
		return Season{}, notFound("season", id)
	}
	s.doc.ActiveSeasonID = &s.doc.Seasons[i].ID
	if err := s.persist(); err != nil {
		return Season{}, err
	}
	return s.doc.Seasons[i], nil
}

// RemoveSeason deletes a season and cascades deletion of every season-scoped
// record stamped with it. The active season cannot be removed.
func (s *Service) RemoveSeason(id int) error {
	if id == s.ActiveSeasonID() {
		return validationf("cannot remove the active season")
	}
	i := findIndex(s.doc.Seasons, id)
	if i < 0 {
		return notFound("season", id)
	}
	s.doc.Seasons = removeAt(s.doc.Seasons, i)

	d := s.doc
	d.Players = dropSeason(d.Players, func(e Player) int { return e.SeasonID }, id)
	d.Coaches = dropSeason(d.Coaches, func(e Coach) int { return e.SeasonID }, id)
	d.Physiotherapists = dropSeason(d.Physiotherapists, func(e Physiotherapist) int { return e.SeasonID }, id)
	d.Treatments = dropSeason(d.Treatments, func(e Treatment) int { return e.SeasonID }, id)
	d.YouthTeams = dropSeason(d.YouthTeams, func(e YouthTeam) int { return e.SeasonID }, id)
	d.Members = dropSeason(d.Members, func(e Member) int { return e.SeasonID }, id)
	d.MembershipTypes = dropSeason(d.MembershipTypes, func(e MembershipType) int { return e.SeasonID }, id)
	d.MembershipPayments = dropSeason(d.MembershipPayments, func(e MembershipPayment) int { return e.SeasonID }, id)
	d.MatchPlans = dropSeason(d.MatchPlans, func(e MatchPlan) int { return e.SeasonID }, id)
	d.Revenues = dropSeason(d.Revenues, func(e Revenue) int { return e.SeasonID }, id)
	d.Expenses = dropSeason(d.Expenses, func(e Expense) int { return e.SeasonID }, id)

	return s.persist()
}
