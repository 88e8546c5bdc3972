package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/vilacaiz/club"
)

// Members renders the membership roll.
func Members(members []club.Member) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Members")
	if len(members) == 0 {
		doc.PlainText("No members registered.")
		return doc.String()
	}

	var rows [][]string
	for _, m := range members {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.MemberNumber),
			m.Name,
			m.MembershipType,
			yesNo(m.DuesPaid),
			orDash(m.DuesPaidUntil),
			dateOrDash(m.MembershipSince),
			orDash(m.Contact),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"Number", "Name", "Type", "Dues Paid", "Paid Until", "Member Since", "Contact"},
		Rows:   rows,
	})
	return doc.String()
}

// MembershipTypes renders the membership type catalog.
func MembershipTypes(types []club.MembershipType) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Membership Types")
	if len(types) == 0 {
		doc.PlainText("No membership types defined.")
		return doc.String()
	}

	var rows [][]string
	for _, t := range types {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			t.Name,
			t.Amount.String(),
			t.Frequency,
			orDash(t.Description),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Amount", "Frequency", "Description"},
		Rows:   rows,
	})
	return doc.String()
}

// MembershipPayments renders a payment history. Member names are resolved
// through the lookup function.
func MembershipPayments(payments []club.MembershipPayment, memberName NameFunc) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Membership Payments")
	if len(payments) == 0 {
		doc.PlainText("No payments recorded.")
		return doc.String()
	}

	var rows [][]string
	for _, p := range payments {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			memberName(p.MemberID),
			p.Period,
			p.Amount.String(),
			p.PaidOn.String(),
			orDash(p.Notes),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"ID", "Member", "Period", "Amount", "Paid On", "Notes"},
		Rows:   rows,
	})
	return doc.String()
}
