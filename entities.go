package club

// The entity kinds managed by the club. All of them are flat records with an
// integer id unique within their collection. Every kind except Season carries
// a season reference and is partitioned by it.

// Season delimits a sporting year. Exactly one season is active at any time;
// new season-scoped records are stamped with the active season id.
type Season struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	StartDate Date    `json:"start_date"`
	EndDate   Date    `json:"end_date"`
	Notes     *string `json:"notes"`
}

// Player is a squad member. The youth fee fields are meaningful only when the
// squad is one of the youth squads; each paid fee mirrors exactly one Revenue
// record whose id is kept in the corresponding revenue link.
type Player struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Squad       string  `json:"squad"`
	Birthdate   *Date   `json:"birthdate"`
	Contact     *string `json:"contact"`
	ShirtNumber *int    `json:"shirt_number"`
	AFPortoID   *string `json:"af_porto_id"`
	SeasonID    int     `json:"season_id"`

	YouthMonthlyFee       *Amount `json:"youth_monthly_fee"`
	YouthMonthlyPaid      bool    `json:"youth_monthly_paid"`
	YouthKitFee           *Amount `json:"youth_kit_fee"`
	YouthKitPaid          bool    `json:"youth_kit_paid"`
	YouthMonthlyRevenueID *int    `json:"youth_monthly_revenue_id"`
	YouthKitRevenueID     *int    `json:"youth_kit_revenue_id"`
}

type Coach struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	LicenseLevel *string `json:"license_level"`
	Birthdate    *Date   `json:"birthdate"`
	Contact      *string `json:"contact"`
	SeasonID     int     `json:"season_id"`
}

type Physiotherapist struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Specialization *string `json:"specialization"`
	Birthdate      *Date   `json:"birthdate"`
	Contact        *string `json:"contact"`
	SeasonID       int     `json:"season_id"`
}

// Treatment records a player's clinical follow-up. The physiotherapist
// reference is weak: removing the physio nulls it, the treatment stays.
type Treatment struct {
	ID             int     `json:"id"`
	PlayerID       int     `json:"player_id"`
	PhysioID       *int    `json:"physio_id"`
	Diagnosis      string  `json:"diagnosis"`
	TreatmentPlan  string  `json:"treatment_plan"`
	StartDate      Date    `json:"start_date"`
	ExpectedReturn *Date   `json:"expected_return"`
	Unavailable    bool    `json:"unavailable"`
	Notes          *string `json:"notes"`
	SeasonID       int     `json:"season_id"`
}

// YouthTeam groups youth players. PlayerIDs is stored sorted and deduplicated.
type YouthTeam struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AgeGroup  string `json:"age_group"`
	CoachID   *int   `json:"coach_id"`
	PlayerIDs []int  `json:"player_ids"`
	SeasonID  int    `json:"season_id"`
}

type MembershipType struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Amount      Amount  `json:"amount"`
	Frequency   string  `json:"frequency"`
	Description *string `json:"description"`
	SeasonID    int     `json:"season_id"`
}

// Member is a dues-paying club member. DuesPaid and DuesPaidUntil are a
// derived projection of the member's payment history within its season; they
// are recomputed whenever a payment is registered or removed.
type Member struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	MemberNumber     int     `json:"member_number"`
	MembershipType   string  `json:"membership_type"`
	MembershipTypeID *int    `json:"membership_type_id"`
	DuesPaid         bool    `json:"dues_paid"`
	DuesPaidUntil    *string `json:"dues_paid_until"`
	Birthdate        *Date   `json:"birthdate"`
	Contact          *string `json:"contact"`
	MembershipSince  *Date   `json:"membership_since"`
	SeasonID         int     `json:"season_id"`
}

type MembershipPayment struct {
	ID               int     `json:"id"`
	MemberID         int     `json:"member_id"`
	MembershipTypeID *int    `json:"membership_type_id"`
	Amount           Amount  `json:"amount"`
	Period           string  `json:"period"`
	PaidOn           Date    `json:"paid_on"`
	Notes            *string `json:"notes"`
	SeasonID         int     `json:"season_id"`
}

// MatchPlan is a match sheet: starters and substitutes are disjoint lists of
// existing player ids.
type MatchPlan struct {
	ID          int     `json:"id"`
	Squad       string  `json:"squad"`
	MatchDate   Date    `json:"match_date"`
	KickoffTime string  `json:"kickoff_time"`
	Venue       string  `json:"venue"`
	Opponent    string  `json:"opponent"`
	Competition *string `json:"competition"`
	CoachID     *int    `json:"coach_id"`
	Starters    []int   `json:"starters"`
	Substitutes []int   `json:"substitutes"`
	Notes       *string `json:"notes"`
	SeasonID    int     `json:"season_id"`
}

type Revenue struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Amount      Amount  `json:"amount"`
	Category    string  `json:"category"`
	RecordDate  Date    `json:"record_date"`
	Source      *string `json:"source"`
	SeasonID    int     `json:"season_id"`
}

type Expense struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Amount      Amount  `json:"amount"`
	Category    string  `json:"category"`
	RecordDate  Date    `json:"record_date"`
	Vendor      *string `json:"vendor"`
	SeasonID    int     `json:"season_id"`
}

// key implementations let the generic collection helpers address any kind.

func (s Season) key() int            { return s.ID }
func (p Player) key() int            { return p.ID }
func (c Coach) key() int             { return c.ID }
func (p Physiotherapist) key() int   { return p.ID }
func (t Treatment) key() int         { return t.ID }
func (t YouthTeam) key() int         { return t.ID }
func (m MembershipType) key() int    { return m.ID }
func (m Member) key() int            { return m.ID }
func (p MembershipPayment) key() int { return p.ID }
func (p MatchPlan) key() int         { return p.ID }
func (r Revenue) key() int           { return r.ID }
func (e Expense) key() int           { return e.ID }
