package club

import (
	"sort"
	"strings"
)

// NewMatchPlan carries the input of CreateMatchPlan.
type NewMatchPlan struct {
	Squad       string // defaults to "senior"
	MatchDate   Date
	KickoffTime string
	Venue       string
	Opponent    string
	Competition *string
	CoachID     *int
	Starters    []int
	Substitutes []int
	Notes       *string
}

// CreateMatchPlan registers a match sheet in the active season. Roster inputs
// are normalized: duplicates and unknown player ids are dropped, and a player
// picked as a starter is removed from the substitutes (starters win).
func (s *Service) CreateMatchPlan(in NewMatchPlan) (MatchPlan, error) {
	squad := strings.TrimSpace(in.Squad)
	if squad == "" {
		squad = "senior"
	}
	kickoff := strings.TrimSpace(in.KickoffTime)
	if kickoff == "" {
		return MatchPlan{}, validationf("match plan kickoff time is empty")
	}
	venue := strings.TrimSpace(in.Venue)
	if venue == "" {
		return MatchPlan{}, validationf("match plan venue is empty")
	}
	opponent := strings.TrimSpace(in.Opponent)
	if opponent == "" {
		return MatchPlan{}, validationf("match plan opponent is empty")
	}
	if in.MatchDate.IsZero() {
		return MatchPlan{}, validationf("match plan date is missing")
	}
	if in.CoachID != nil && findIndex(s.doc.Coaches, *in.CoachID) < 0 {
		return MatchPlan{}, notFound("coach", *in.CoachID)
	}

	starters := s.normalizeRoster(in.Starters, nil)
	substitutes := s.normalizeRoster(in.Substitutes, starters)

	plan := MatchPlan{
		ID:          nextID(s.doc.MatchPlans),
		Squad:       squad,
		MatchDate:   in.MatchDate,
		KickoffTime: kickoff,
		Venue:       venue,
		Opponent:    opponent,
		Competition: trimPtr(in.Competition),
		CoachID:     in.CoachID,
		Starters:    starters,
		Substitutes: substitutes,
		Notes:       trimPtr(in.Notes),
		SeasonID:    s.ActiveSeasonID(),
	}
	s.doc.MatchPlans = append(s.doc.MatchPlans, plan)
	if err := s.persist(); err != nil {
		return MatchPlan{}, err
	}
	return plan, nil
}

// normalizeRoster deduplicates a roster selection, keeps only ids of players
// listed in the active season, and drops ids present in exclude.
func (s *Service) normalizeRoster(ids []int, exclude []int) []int {
	valid := make(map[int]bool)
	for _, p := range s.ListPlayers(false) {
		valid[p.ID] = true
	}
	excluded := make(map[int]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	normalized := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] || excluded[id] || !valid[id] {
			continue
		}
		normalized = append(normalized, id)
		seen[id] = true
	}
	return normalized
}

// ListMatchPlans returns the active season's match plans sorted by match
// date, kickoff time and id ascending. With all true, it spans every season.
func (s *Service) ListMatchPlans(all bool) []MatchPlan {
	var plans []MatchPlan
	if all {
		plans = make([]MatchPlan, len(s.doc.MatchPlans))
		copy(plans, s.doc.MatchPlans)
	} else {
		plans = filterSeason(s.doc.MatchPlans, func(p MatchPlan) int { return p.SeasonID }, s.ActiveSeasonID())
	}
	sort.SliceStable(plans, func(i, j int) bool {
		if plans[i].MatchDate != plans[j].MatchDate {
			return plans[i].MatchDate.Before(plans[j].MatchDate)
		}
		if plans[i].KickoffTime != plans[j].KickoffTime {
			return plans[i].KickoffTime < plans[j].KickoffTime
		}
		return plans[i].ID < plans[j].ID
	})
	return plans
}

// GetMatchPlan returns the match plan with the given id.
func (s *Service) GetMatchPlan(id int) (MatchPlan, error) {
	i := findIndex(s.doc.MatchPlans, id)
	if i < 0 {
		return MatchPlan{}, notFound("match plan", id)
	}
	return s.doc.MatchPlans[i], nil
}

// MatchPlanPatch describes a partial match plan update. Starters and
// Substitutes replace the whole list when set.
type MatchPlanPatch struct {
	Squad       Opt[string]
	MatchDate   Opt[Date]
	KickoffTime Opt[string]
	Venue       Opt[string]
	Opponent    Opt[string]
	Competition Opt[string]
	CoachID     Opt[int]
	Starters    Opt[[]int]
	Substitutes Opt[[]int]
	Notes       Opt[string]
}

// UpdateMatchPlan merges the provided fields into the match plan. When the
// starters change, the substitutes are re-normalized against them even if not
// provided, so the lists stay disjoint.
func (s *Service) UpdateMatchPlan(id int, patch MatchPlanPatch) (MatchPlan, error) {
	i := findIndex(s.doc.MatchPlans, id)
	if i < 0 {
		return MatchPlan{}, notFound("match plan", id)
	}
	plan := s.doc.MatchPlans[i]

	if patch.Squad.IsSet() {
		squad := strings.TrimSpace(patch.Squad.Value())
		if squad == "" {
			squad = "senior"
		}
		plan.Squad = squad
	}
	patch.MatchDate.apply(&plan.MatchDate)
	if patch.KickoffTime.IsSet() {
		kickoff := strings.TrimSpace(patch.KickoffTime.Value())
		if kickoff == "" {
			return MatchPlan{}, validationf("match plan kickoff time is empty")
		}
		plan.KickoffTime = kickoff
	}
	if patch.Venue.IsSet() {
		venue := strings.TrimSpace(patch.Venue.Value())
		if venue == "" {
			return MatchPlan{}, validationf("match plan venue is empty")
		}
		plan.Venue = venue
	}
	if patch.Opponent.IsSet() {
		opponent := strings.TrimSpace(patch.Opponent.Value())
		if opponent == "" {
			return MatchPlan{}, validationf("match plan opponent is empty")
		}
		plan.Opponent = opponent
	}
	if patch.Competition.IsSet() {
		plan.Competition = trimPtr(patch.Competition.Ptr())
	}
	if patch.CoachID.IsSet() && !patch.CoachID.IsNull() {
		coachID := patch.CoachID.Value()
		if findIndex(s.doc.Coaches, coachID) < 0 {
			return MatchPlan{}, notFound("coach", coachID)
		}
	}
	patch.CoachID.applyPtr(&plan.CoachID)
	if patch.Notes.IsSet() {
		plan.Notes = trimPtr(patch.Notes.Ptr())
	}

	rosterChanged := patch.Starters.IsSet() || patch.Substitutes.IsSet()
	if patch.Starters.IsSet() {
		plan.Starters = s.normalizeRoster(patch.Starters.Value(), nil)
	}
	if rosterChanged {
		substitutes := plan.Substitutes
		if patch.Substitutes.IsSet() {
			substitutes = patch.Substitutes.Value()
		}
		plan.Substitutes = s.normalizeRoster(substitutes, plan.Starters)
	}

	s.doc.MatchPlans[i] = plan
	if err := s.persist(); err != nil {
		return MatchPlan{}, err
	}
	return plan, nil
}

// RemoveMatchPlan deletes a match plan.
func (s *Service) RemoveMatchPlan(id int) error {
	i := findIndex(s.doc.MatchPlans, id)
	if i < 0 {
		return notFound("match plan", id)
	}
	s.doc.MatchPlans = removeAt(s.doc.MatchPlans, i)
	return s.persist()
}
