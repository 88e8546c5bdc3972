package club

import (
	"sort"
	"strings"
)

// NewYouthTeam carries the input of AddYouthTeam.
type NewYouthTeam struct {
	Name     string
	AgeGroup string
	CoachID  *int
}

// AddYouthTeam registers a youth team in the active season.
func (s *Service) AddYouthTeam(in NewYouthTeam) (YouthTeam, error) {
	if strings.TrimSpace(in.Name) == "" {
		return YouthTeam{}, validationf("youth team name is empty")
	}
	if strings.TrimSpace(in.AgeGroup) == "" {
		return YouthTeam{}, validationf("youth team age group is empty")
	}
	if in.CoachID != nil && findIndex(s.doc.Coaches, *in.CoachID) < 0 {
		return YouthTeam{}, notFound("coach", *in.CoachID)
	}
	team := YouthTeam{
		ID:        nextID(s.doc.YouthTeams),
		Name:      in.Name,
		AgeGroup:  in.AgeGroup,
		CoachID:   in.CoachID,
		PlayerIDs: []int{},
		SeasonID:  s.ActiveSeasonID(),
	}
	s.doc.YouthTeams = append(s.doc.YouthTeams, team)
	if err := s.persist(); err != nil {
		return YouthTeam{}, err
	}
	return team, nil
}

// ListYouthTeams returns the active season's youth teams in insertion order.
// With all true, it returns every season's.
func (s *Service) ListYouthTeams(all bool) []YouthTeam {
	if all {
		out := make([]YouthTeam, len(s.doc.YouthTeams))
		copy(out, s.doc.YouthTeams)
		return out
	}
	return filterSeason(s.doc.YouthTeams, func(t YouthTeam) int { return t.SeasonID }, s.ActiveSeasonID())
}

// AssignPlayerToTeam adds a player to a youth team roster. Rosters can only
// be managed for teams of the active season; the roster is kept sorted and
// deduplicated.
func (s *Service) AssignPlayerToTeam(teamID, playerID int) (YouthTeam, error) {
	i := findIndex(s.doc.YouthTeams, teamID)
	if i < 0 {
		return YouthTeam{}, notFound("youth team", teamID)
	}
	team := s.doc.YouthTeams[i]
	if team.SeasonID != s.ActiveSeasonID() {
		return YouthTeam{}, validationf("only teams of the active season can be managed")
	}
	if findIndex(s.doc.Players, playerID) < 0 {
		return YouthTeam{}, notFound("player", playerID)
	}
	for _, id := range team.PlayerIDs {
		if id == playerID {
			return team, nil // already on the roster
		}
	}
	team.PlayerIDs = append(append([]int{}, team.PlayerIDs...), playerID)
	sort.Ints(team.PlayerIDs)
	s.doc.YouthTeams[i] = team
	if err := s.persist(); err != nil {
		return YouthTeam{}, err
	}
	return team, nil
}

// YouthTeamPatch describes a partial youth team update.
type YouthTeamPatch struct {
	Name     Opt[string]
	AgeGroup Opt[string]
	CoachID  Opt[int]
}

// UpdateYouthTeam merges the provided fields into the youth team.
func (s *Service) UpdateYouthTeam(id int, patch YouthTeamPatch) (YouthTeam, error) {
	i := findIndex(s.doc.YouthTeams, id)
	if i < 0 {
		return YouthTeam{}, notFound("youth team", id)
	}
	team := s.doc.YouthTeams[i]
	patch.Name.apply(&team.Name)
	patch.AgeGroup.apply(&team.AgeGroup)
	if patch.CoachID.IsSet() && !patch.CoachID.IsNull() {
		coachID := patch.CoachID.Value()
		if findIndex(s.doc.Coaches, coachID) < 0 {
			return YouthTeam{}, notFound("coach", coachID)
		}
	}
	patch.CoachID.applyPtr(&team.CoachID)
	s.doc.YouthTeams[i] = team
	if err := s.persist(); err != nil {
		return YouthTeam{}, err
	}
	return team, nil
}

// RemoveYouthTeam deletes a youth team.
func (s *Service) RemoveYouthTeam(id int) error {
	i := findIndex(s.doc.YouthTeams, id)
	if i < 0 {
		return notFound("youth team", id)
	}
	s.doc.YouthTeams = removeAt(s.doc.YouthTeams, i)
	return s.persist()
}
