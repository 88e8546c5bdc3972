// Package renderer turns club records into markdown reports.
//
// Every renderer is a pure function from records to a markdown string. Name
// resolution is injected as lookup functions so that the package never touches
// the store.
package renderer

import (
	"fmt"

	"github.com/vilacaiz/club"
)

// NameFunc resolves an entity id to a display name.
type NameFunc func(id int) string

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func dateOrDash(d *club.Date) string {
	if d == nil || d.IsZero() {
		return "-"
	}
	return d.String()
}

func intOrDash(i *int) string {
	if i == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *i)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func feeCell(fee *club.Amount, paid bool) string {
	if fee == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", fee, paidLabel(paid))
}

func paidLabel(paid bool) string {
	if paid {
		return "paid"
	}
	return "due"
}
