package club

import (
	"fmt"
	"strings"
	"unicode"
)

// Youth squads are the squad labels for which per-player fee tracking is
// meaningful. Each paid fee mirrors exactly one revenue ledger entry under
// the fixed category below.
var youthSquads = map[string]bool{
	"juniores":  true,
	"juvenis":   true,
	"iniciados": true,
	"infantis":  true,
}

const (
	// YouthRevenueCategory is the ledger category of youth fee revenues.
	YouthRevenueCategory = "Camadas Jovens"
	// YouthMonthlySource labels monthly training fee revenues.
	YouthMonthlySource = "Mensalidade Formação"
	// YouthKitSource labels training kit fee revenues.
	YouthKitSource = "Kit de Treino Formação"
)

// IsYouthSquad reports whether the squad label belongs to the youth ranks.
func IsYouthSquad(squad string) bool {
	return youthSquads[strings.ToLower(squad)]
}

// NewPlayer carries the input of AddPlayer.
type NewPlayer struct {
	Name        string
	Position    string
	Squad       string // defaults to "senior"
	Birthdate   *Date
	Contact     *string
	ShirtNumber *int
	AFPortoID   *string

	YouthMonthlyFee  *Amount
	YouthMonthlyPaid bool
	YouthKitFee      *Amount
	YouthKitPaid     bool
}

// AddPlayer registers a player in the active season. For youth squads, a fee
// marked as paid requires a positive amount and creates a matching revenue
// ledger entry; outside youth squads the fee fields are forced empty.
func (s *Service) AddPlayer(in NewPlayer) (Player, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Player{}, validationf("player name is empty")
	}
	squad := in.Squad
	if strings.TrimSpace(squad) == "" {
		squad = "senior"
	}
	isYouth := IsYouthSquad(squad)

	monthlyFee, kitFee := in.YouthMonthlyFee, in.YouthKitFee
	monthlyPaid, kitPaid := in.YouthMonthlyPaid, in.YouthKitPaid
	if !isYouth {
		monthlyFee, kitFee = nil, nil
		monthlyPaid, kitPaid = false, false
	}
	if err := checkYouthFee(isYouth, monthlyPaid, monthlyFee, "monthly fee"); err != nil {
		return Player{}, err
	}
	if err := checkYouthFee(isYouth, kitPaid, kitFee, "kit fee"); err != nil {
		return Player{}, err
	}

	player := Player{
		ID:               nextID(s.doc.Players),
		Name:             in.Name,
		Position:         in.Position,
		Squad:            squad,
		Birthdate:        in.Birthdate,
		Contact:          in.Contact,
		ShirtNumber:      in.ShirtNumber,
		AFPortoID:        in.AFPortoID,
		SeasonID:         s.ActiveSeasonID(),
		YouthMonthlyFee:  monthlyFee,
		YouthMonthlyPaid: monthlyPaid,
		YouthKitFee:      kitFee,
		YouthKitPaid:     kitPaid,
	}
	s.doc.Players = append(s.doc.Players, player)

	i := len(s.doc.Players) - 1
	player.YouthMonthlyRevenueID = s.syncYouthRevenue(player, monthlyFee, monthlyPaid, nil, YouthMonthlySource)
	player.YouthKitRevenueID = s.syncYouthRevenue(player, kitFee, kitPaid, nil, YouthKitSource)
	s.doc.Players[i] = player

	if err := s.persist(); err != nil {
		return Player{}, err
	}
	return player, nil
}

func checkYouthFee(isYouth, paid bool, fee *Amount, label string) error {
	if isYouth && paid && (fee == nil || !fee.IsPositive()) {
		return validationf("set an amount for the %s before marking it as paid", label)
	}
	return nil
}

// ListPlayers returns the active season's players in insertion order. With
// all true, it returns every season's.
func (s *Service) ListPlayers(all bool) []Player {
	if all {
		out := make([]Player, len(s.doc.Players))
		copy(out, s.doc.Players)
		return out
	}
	return filterSeason(s.doc.Players, func(p Player) int { return p.SeasonID }, s.ActiveSeasonID())
}

// GetPlayer returns the player with the given id.
func (s *Service) GetPlayer(id int) (Player, error) {
	i := findIndex(s.doc.Players, id)
	if i < 0 {
		return Player{}, notFound("player", id)
	}
	return s.doc.Players[i], nil
}

// PlayerPatch describes a partial player update.
type PlayerPatch struct {
	Name        Opt[string]
	Position    Opt[string]
	Squad       Opt[string]
	Birthdate   Opt[Date]
	Contact     Opt[string]
	ShirtNumber Opt[int]
	AFPortoID   Opt[string]

	YouthMonthlyFee  Opt[Amount]
	YouthMonthlyPaid Opt[bool]
	YouthKitFee      Opt[Amount]
	YouthKitPaid     Opt[bool]
}

// UpdatePlayer merges the provided fields into the player and re-runs the
// youth fee synchronization against the merged state. Moving a player out of
// a youth squad clears the fees and tears down the linked revenues.
func (s *Service) UpdatePlayer(id int, patch PlayerPatch) (Player, error) {
	i := findIndex(s.doc.Players, id)
	if i < 0 {
		return Player{}, notFound("player", id)
	}
	player := s.doc.Players[i]
	patch.Name.apply(&player.Name)
	patch.Position.apply(&player.Position)
	patch.Squad.apply(&player.Squad)
	patch.Birthdate.applyPtr(&player.Birthdate)
	patch.Contact.applyPtr(&player.Contact)
	patch.ShirtNumber.applyPtr(&player.ShirtNumber)
	patch.AFPortoID.applyPtr(&player.AFPortoID)
	if strings.TrimSpace(player.Squad) == "" {
		player.Squad = "senior"
	}

	patch.YouthMonthlyFee.applyPtr(&player.YouthMonthlyFee)
	patch.YouthMonthlyPaid.apply(&player.YouthMonthlyPaid)
	patch.YouthKitFee.applyPtr(&player.YouthKitFee)
	patch.YouthKitPaid.apply(&player.YouthKitPaid)

	isYouth := IsYouthSquad(player.Squad)
	if !isYouth {
		player.YouthMonthlyFee, player.YouthKitFee = nil, nil
		player.YouthMonthlyPaid, player.YouthKitPaid = false, false
	}
	if err := checkYouthFee(isYouth, player.YouthMonthlyPaid, player.YouthMonthlyFee, "monthly fee"); err != nil {
		return Player{}, err
	}
	if err := checkYouthFee(isYouth, player.YouthKitPaid, player.YouthKitFee, "kit fee"); err != nil {
		return Player{}, err
	}

	player.YouthMonthlyRevenueID = s.syncYouthRevenue(player, player.YouthMonthlyFee, player.YouthMonthlyPaid, player.YouthMonthlyRevenueID, YouthMonthlySource)
	player.YouthKitRevenueID = s.syncYouthRevenue(player, player.YouthKitFee, player.YouthKitPaid, player.YouthKitRevenueID, YouthKitSource)

	s.doc.Players[i] = player
	if err := s.persist(); err != nil {
		return Player{}, err
	}
	return player, nil
}

// RemovePlayer deletes a player and cascades: the linked youth fee revenues
// are deleted, the player is pruned from every match plan roster, and all of
// the player's treatments are deleted.
func (s *Service) RemovePlayer(id int) error {
	i := findIndex(s.doc.Players, id)
	if i < 0 {
		return notFound("player", id)
	}
	player := s.doc.Players[i]
	if player.YouthMonthlyRevenueID != nil {
		s.removeRevenue(*player.YouthMonthlyRevenueID)
	}
	if player.YouthKitRevenueID != nil {
		s.removeRevenue(*player.YouthKitRevenueID)
	}
	for pi := range s.doc.MatchPlans {
		plan := &s.doc.MatchPlans[pi]
		plan.Starters = removeID(plan.Starters, id)
		plan.Substitutes = removeID(plan.Substitutes, id)
	}
	kept := s.doc.Treatments[:0]
	for _, t := range s.doc.Treatments {
		if t.PlayerID != id {
			kept = append(kept, t)
		}
	}
	s.doc.Treatments = kept
	s.doc.Players = removeAt(s.doc.Players, i)
	return s.persist()
}

func removeID(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// syncYouthRevenue keeps a player's fee flags mirrored by exactly one revenue
// entry per fee kind. Paid with a positive amount creates or refreshes the
// linked entry; anything else tears it down. Returns the new link.
func (s *Service) syncYouthRevenue(player Player, fee *Amount, paid bool, existingID *int, sourceLabel string) *int {
	if !paid || fee == nil || !fee.IsPositive() {
		if existingID != nil {
			s.removeRevenue(*existingID)
		}
		return nil
	}

	name := strings.TrimSpace(player.Name)
	if name == "" {
		name = fmt.Sprintf("Jogador #%d", player.ID)
	}
	description := fmt.Sprintf("%s - %s (%s)", sourceLabel, name, titleCase(player.Squad))
	source := sourceLabel

	if existingID != nil {
		if i := findIndex(s.doc.Revenues, *existingID); i >= 0 {
			rev := &s.doc.Revenues[i]
			rev.Description = description
			rev.Amount = *fee
			rev.Category = YouthRevenueCategory
			rev.RecordDate = Today()
			rev.Source = &source
			return existingID
		}
		// stale link, fall through and recreate
	}
	rev := s.addRevenue(description, *fee, YouthRevenueCategory, Today(), &source)
	return &rev.ID
}

// titleCase upcases the first letter of each word, for squad display labels.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
