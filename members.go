package club

import (
	"fmt"
	"strings"
)

const (
	// DuesRevenueCategory is the ledger category of membership dues revenues.
	DuesRevenueCategory = "Quotas de Sócios"
	// DuesRevenueSource labels membership dues revenues.
	DuesRevenueSource = "Sócios"
)

// Membership types --------------------------------------------------------

// NewMembershipType carries the input of AddMembershipType.
type NewMembershipType struct {
	Name        string
	Amount      Amount
	Frequency   string // defaults to "Mensal"
	Description *string
}

// AddMembershipType registers a membership type in the active season.
func (s *Service) AddMembershipType(in NewMembershipType) (MembershipType, error) {
	if strings.TrimSpace(in.Name) == "" {
		return MembershipType{}, validationf("membership type name is empty")
	}
	frequency := in.Frequency
	if strings.TrimSpace(frequency) == "" {
		frequency = "Mensal"
	}
	mt := MembershipType{
		ID:          nextID(s.doc.MembershipTypes),
		Name:        in.Name,
		Amount:      in.Amount,
		Frequency:   frequency,
		Description: in.Description,
		SeasonID:    s.ActiveSeasonID(),
	}
	s.doc.MembershipTypes = append(s.doc.MembershipTypes, mt)
	if err := s.persist(); err != nil {
		return MembershipType{}, err
	}
	return mt, nil
}

// ListMembershipTypes returns the active season's membership types in
// insertion order. With all true, it returns every season's.
func (s *Service) ListMembershipTypes(all bool) []MembershipType {
	if all {
		out := make([]MembershipType, len(s.doc.MembershipTypes))
		copy(out, s.doc.MembershipTypes)
		return out
	}
	return filterSeason(s.doc.MembershipTypes, func(m MembershipType) int { return m.SeasonID }, s.ActiveSeasonID())
}

// GetMembershipType returns the membership type with the given id.
func (s *Service) GetMembershipType(id int) (MembershipType, error) {
	i := findIndex(s.doc.MembershipTypes, id)
	if i < 0 {
		return MembershipType{}, notFound("membership type", id)
	}
	return s.doc.MembershipTypes[i], nil
}

// MembershipTypePatch describes a partial membership type update.
type MembershipTypePatch struct {
	Name        Opt[string]
	Amount      Opt[Amount]
	Frequency   Opt[string]
	Description Opt[string]
}

// UpdateMembershipType merges the provided fields into the membership type.
func (s *Service) UpdateMembershipType(id int, patch MembershipTypePatch) (MembershipType, error) {
	i := findIndex(s.doc.MembershipTypes, id)
	if i < 0 {
		return MembershipType{}, notFound("membership type", id)
	}
	mt := s.doc.MembershipTypes[i]
	patch.Name.apply(&mt.Name)
	patch.Amount.apply(&mt.Amount)
	patch.Frequency.apply(&mt.Frequency)
	patch.Description.applyPtr(&mt.Description)
	s.doc.MembershipTypes[i] = mt
	if err := s.persist(); err != nil {
		return MembershipType{}, err
	}
	return mt, nil
}

// RemoveMembershipType deletes a membership type.
func (s *Service) RemoveMembershipType(id int) error {
	i := findIndex(s.doc.MembershipTypes, id)
	if i < 0 {
		return notFound("membership type", id)
	}
	s.doc.MembershipTypes = removeAt(s.doc.MembershipTypes, i)
	return s.persist()
}

// Members ------------------------------------------------------------------

// nextMemberNumber returns the next free member number: one above the
// highest member number in use, across all seasons so numbers stay unique
// for the lifetime of the club.
func (s *Service) nextMemberNumber() int {
	highest := 0
	for _, m := range s.doc.Members {
		n := m.MemberNumber
		if n == 0 {
			n = m.ID
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1
}

// NewMember carries the input of AddMember.
type NewMember struct {
	Name             string
	MembershipType   string
	MembershipTypeID *int
	MemberNumber     *int // assigned automatically when nil
	DuesPaid         bool
	DuesPaidUntil    *string
	Birthdate        *Date
	Contact          *string
	MembershipSince  *Date
}

// AddMember registers a member in the active season. When a membership type
// id is given, it must exist and its name overrides the free-text type.
func (s *Service) AddMember(in NewMember) (Member, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Member{}, validationf("member name is empty")
	}
	typeName := in.MembershipType
	if in.MembershipTypeID != nil {
		mt, err := s.GetMembershipType(*in.MembershipTypeID)
		if err != nil {
			return Member{}, err
		}
		typeName = mt.Name
	}
	if strings.TrimSpace(typeName) == "" {
		typeName = "standard"
	}
	number := s.nextMemberNumber()
	if in.MemberNumber != nil {
		number = *in.MemberNumber
	}
	member := Member{
		ID:               nextID(s.doc.Members),
		Name:             in.Name,
		MemberNumber:     number,
		MembershipType:   typeName,
		MembershipTypeID: in.MembershipTypeID,
		DuesPaid:         in.DuesPaid,
		DuesPaidUntil:    in.DuesPaidUntil,
		Birthdate:        in.Birthdate,
		Contact:          in.Contact,
		MembershipSince:  in.MembershipSince,
		SeasonID:         s.ActiveSeasonID(),
	}
	s.doc.Members = append(s.doc.Members, member)
	if err := s.persist(); err != nil {
		return Member{}, err
	}
	return member, nil
}

// ListMembers returns the active season's members in insertion order. With
// all true, it returns every season's.
func (s *Service) ListMembers(all bool) []Member {
	if all {
		out := make([]Member, len(s.doc.Members))
		copy(out, s.doc.Members)
		return out
	}
	return filterSeason(s.doc.Members, func(m Member) int { return m.SeasonID }, s.ActiveSeasonID())
}

// GetMember returns the member with the given id.
func (s *Service) GetMember(id int) (Member, error) {
	i := findIndex(s.doc.Members, id)
	if i < 0 {
		return Member{}, notFound("member", id)
	}
	return s.doc.Members[i], nil
}

// MemberPatch describes a partial member update.
type MemberPatch struct {
	Name             Opt[string]
	MembershipType   Opt[string]
	MembershipTypeID Opt[int]
	MemberNumber     Opt[int]
	DuesPaid         Opt[bool]
	DuesPaidUntil    Opt[string]
	Birthdate        Opt[Date]
	Contact          Opt[string]
	MembershipSince  Opt[Date]
}

// UpdateMember merges the provided fields into the member.
func (s *Service) UpdateMember(id int, patch MemberPatch) (Member, error) {
	i := findIndex(s.doc.Members, id)
	if i < 0 {
		return Member{}, notFound("member", id)
	}
	member := s.doc.Members[i]
	patch.Name.apply(&member.Name)
	patch.MembershipType.apply(&member.MembershipType)
	if patch.MembershipTypeID.IsSet() && !patch.MembershipTypeID.IsNull() {
		mt, err := s.GetMembershipType(patch.MembershipTypeID.Value())
		if err != nil {
			return Member{}, err
		}
		member.MembershipType = mt.Name
	}
	patch.MembershipTypeID.applyPtr(&member.MembershipTypeID)
	patch.MemberNumber.apply(&member.MemberNumber)
	patch.DuesPaid.apply(&member.DuesPaid)
	patch.DuesPaidUntil.applyPtr(&member.DuesPaidUntil)
	patch.Birthdate.applyPtr(&member.Birthdate)
	patch.Contact.applyPtr(&member.Contact)
	patch.MembershipSince.applyPtr(&member.MembershipSince)
	s.doc.Members[i] = member
	if err := s.persist(); err != nil {
		return Member{}, err
	}
	return member, nil
}

// RemoveMember deletes a member and cascades deletion of the member's
// payments.
func (s *Service) RemoveMember(id int) error {
	i := findIndex(s.doc.Members, id)
	if i < 0 {
		return notFound("member", id)
	}
	kept := s.doc.MembershipPayments[:0]
	for _, p := range s.doc.MembershipPayments {
		if p.MemberID != id {
			kept = append(kept, p)
		}
	}
	s.doc.MembershipPayments = kept
	s.doc.Members = removeAt(s.doc.Members, i)
	return s.persist()
}

// Payments ------------------------------------------------------------------

// NewMembershipPayment carries the input of RegisterMembershipPayment.
type NewMembershipPayment struct {
	MemberID         int
	MembershipTypeID *int
	Amount           Amount
	Period           string // e.g. "2024-01"
	PaidOn           Date
	Notes            *string
}

// RegisterMembershipPayment records a dues payment for a member of the
// active season. It updates the member's dues projection (dues paid, paid
// until the payment period, membership since on a first payment) and appends
// the matching revenue ledger entry.
func (s *Service) RegisterMembershipPayment(in NewMembershipPayment) (MembershipPayment, error) {
	mi := findIndex(s.doc.Members, in.MemberID)
	if mi < 0 {
		return MembershipPayment{}, notFound("member", in.MemberID)
	}
	member := s.doc.Members[mi]
	if member.SeasonID != s.ActiveSeasonID() {
		return MembershipPayment{}, validationf("payments can only be registered for members of the active season")
	}
	if !in.Amount.IsPositive() {
		return MembershipPayment{}, validationf("payment amount must be positive")
	}
	if strings.TrimSpace(in.Period) == "" {
		return MembershipPayment{}, validationf("payment period is empty")
	}
	if in.PaidOn.IsZero() {
		return MembershipPayment{}, validationf("payment date is missing")
	}
	typeName := member.MembershipType
	if in.MembershipTypeID != nil {
		mt, err := s.GetMembershipType(*in.MembershipTypeID)
		if err != nil {
			return MembershipPayment{}, err
		}
		typeName = mt.Name
	}

	payment := MembershipPayment{
		ID:               nextID(s.doc.MembershipPayments),
		MemberID:         in.MemberID,
		MembershipTypeID: in.MembershipTypeID,
		Amount:           in.Amount,
		Period:           in.Period,
		PaidOn:           in.PaidOn,
		Notes:            in.Notes,
		SeasonID:         s.ActiveSeasonID(),
	}
	s.doc.MembershipPayments = append(s.doc.MembershipPayments, payment)

	member.DuesPaid = true
	period := in.Period
	member.DuesPaidUntil = &period
	if in.MembershipTypeID != nil && typeName != "" {
		member.MembershipTypeID = in.MembershipTypeID
		member.MembershipType = typeName
	}
	if member.MembershipSince == nil {
		paidOn := in.PaidOn
		member.MembershipSince = &paidOn
	}
	s.doc.Members[mi] = member

	description := "Quota"
	if typeName != "" {
		description += " " + typeName
	}
	descriptor := fmt.Sprintf("%s - %s (#%d)", description, member.Name, member.MemberNumber)
	source := DuesRevenueSource
	s.addRevenue(descriptor, in.Amount, DuesRevenueCategory, in.PaidOn, &source)

	if err := s.persist(); err != nil {
		return MembershipPayment{}, err
	}
	return payment, nil
}

// ListMembershipPayments returns the active season's payments in insertion
// order. With all true, it returns every season's.
func (s *Service) ListMembershipPayments(all bool) []MembershipPayment {
	if all {
		out := make([]MembershipPayment, len(s.doc.MembershipPayments))
		copy(out, s.doc.MembershipPayments)
		return out
	}
	return filterSeason(s.doc.MembershipPayments, func(p MembershipPayment) int { return p.SeasonID }, s.ActiveSeasonID())
}

// MemberPayments returns the active season's payments of one member.
func (s *Service) MemberPayments(memberID int) []MembershipPayment {
	var out []MembershipPayment
	for _, p := range s.ListMembershipPayments(false) {
		if p.MemberID == memberID {
			out = append(out, p)
		}
	}
	return out
}

// RemoveMembershipPayment deletes a payment and recomputes the member's dues
// projection from the remaining payments of the member's season: the latest
// payment by date wins, none at all clears the dues. The revenue entry
// appended at registration time is kept; correcting the ledger is a
// deliberate manual finance edit.
func (s *Service) RemoveMembershipPayment(id int) error {
	i := findIndex(s.doc.MembershipPayments, id)
	if i < 0 {
		return notFound("membership payment", id)
	}
	memberID := s.doc.MembershipPayments[i].MemberID
	s.doc.MembershipPayments = removeAt(s.doc.MembershipPayments, i)

	if mi := findIndex(s.doc.Members, memberID); mi >= 0 {
		member := s.doc.Members[mi]
		var latest *MembershipPayment
		for pi, p := range s.doc.MembershipPayments {
			if p.MemberID != memberID || p.SeasonID != member.SeasonID {
				continue
			}
			if latest == nil || p.PaidOn.After(latest.PaidOn) {
				latest = &s.doc.MembershipPayments[pi]
			}
		}
		if latest != nil {
			member.DuesPaid = true
			period := latest.Period
			member.DuesPaidUntil = &period
		} else {
			member.DuesPaid = false
			member.DuesPaidUntil = nil
		}
		s.doc.Members[mi] = member
	}
	return s.persist()
}
