package club

// Document is the whole persisted state of the club: the season list, the
// active season pointer, and one collection per entity kind. It maps one to
// one onto the JSON data file; collections keep their insertion order.
type Document struct {
	Seasons        []Season `json:"seasons"`
	ActiveSeasonID *int     `json:"active_season_id"`

	Players            []Player            `json:"players"`
	Coaches            []Coach             `json:"coaches"`
	Physiotherapists   []Physiotherapist   `json:"physiotherapists"`
	Treatments         []Treatment         `json:"treatments"`
	YouthTeams         []YouthTeam         `json:"youth_teams"`
	Members            []Member            `json:"members"`
	MembershipTypes    []MembershipType    `json:"membership_types"`
	MembershipPayments []MembershipPayment `json:"membership_payments"`
	MatchPlans         []MatchPlan         `json:"match_plans"`
	Revenues           []Revenue           `json:"revenues"`
	Expenses           []Expense           `json:"expenses"`

	// dirty marks in-memory changes made during load (legacy migration) that
	// have not reached disk yet.
	dirty bool
}

// NewDocument returns an empty document with every collection present.
func NewDocument() *Document {
	d := &Document{}
	d.normalize()
	return d
}

// normalize makes sure every collection key exists, so that a missing key in
// the data file becomes an empty list rather than null.
func (d *Document) normalize() {
	if d.Seasons == nil {
		d.Seasons = []Season{}
	}
	if d.Players == nil {
		d.Players = []Player{}
	}
	if d.Coaches == nil {
		d.Coaches = []Coach{}
	}
	if d.Physiotherapists == nil {
		d.Physiotherapists = []Physiotherapist{}
	}
	if d.Treatments == nil {
		d.Treatments = []Treatment{}
	}
	if d.YouthTeams == nil {
		d.YouthTeams = []YouthTeam{}
	}
	if d.Members == nil {
		d.Members = []Member{}
	}
	if d.MembershipTypes == nil {
		d.MembershipTypes = []MembershipType{}
	}
	if d.MembershipPayments == nil {
		d.MembershipPayments = []MembershipPayment{}
	}
	if d.MatchPlans == nil {
		d.MatchPlans = []MatchPlan{}
	}
	if d.Revenues == nil {
		d.Revenues = []Revenue{}
	}
	if d.Expenses == nil {
		d.Expenses = []Expense{}
	}
}

// entity is any record addressable by its integer id.
type entity interface{ key() int }

// nextID returns the next id for a collection: the maximum existing id plus
// one. Ids are never reused. The scan is O(n), which is fine for the expected
// record counts (hundreds, not millions).
func nextID[E entity](items []E) int {
	max := 0
	for _, it := range items {
		if id := it.key(); id > max {
			max = id
		}
	}
	return max + 1
}

// findIndex returns the index of the record with the given id, or -1.
func findIndex[E entity](items []E, id int) int {
	for i, it := range items {
		if it.key() == id {
			return i
		}
	}
	return -1
}

// removeAt deletes the record at index i preserving order.
func removeAt[E any](items []E, i int) []E {
	return append(items[:i], items[i+1:]...)
}

// filterSeason returns the records stamped with the given season id, in
// insertion order.
func filterSeason[E any](items []E, seasonOf func(E) int, seasonID int) []E {
	out := make([]E, 0, len(items))
	for _, it := range items {
		if seasonOf(it) == seasonID {
			out = append(out, it)
		}
	}
	return out
}

// dropSeason returns the records NOT stamped with the given season id.
func dropSeason[E any](items []E, seasonOf func(E) int, seasonID int) []E {
	out := make([]E, 0, len(items))
	for _, it := range items {
		if seasonOf(it) != seasonID {
			out = append(out, it)
		}
	}
	return out
}
