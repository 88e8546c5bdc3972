package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vilacaiz/club"
	"github.com/vilacaiz/club/renderer"
)

type payCmd struct {
	member int
	typeID int
	amount string
	period string
	paidOn string
	notes  string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "register a membership dues payment" }
func (*payCmd) Usage() string {
	return `vcc pay -member <member_id> -amount <amount> -period <YYYY-MM> [-on <date>] [options]

  Registers a dues payment for a member of the active season, marks the
  member's dues as paid up to the period, and records the matching revenue
  under Quotas de Sócios.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.member, "member", 0, "Member id.")
	f.IntVar(&c.typeID, "type-id", 0, "Membership type id for this payment.")
	f.StringVar(&c.amount, "amount", "", "Amount paid.")
	f.StringVar(&c.period, "period", "", "Period covered, e.g. 2025-09.")
	f.StringVar(&c.paidOn, "on", "0d", "Payment date (defaults to today).")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	amount, err := club.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	paidOn, err := club.ParseDate(c.paidOn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing payment date: %v\n", err)
		return subcommands.ExitUsageError
	}

	in := club.NewMembershipPayment{
		MemberID: c.member,
		Amount:   amount,
		Period:   c.period,
		PaidOn:   paidOn,
	}
	if seen["type-id"] {
		in.MembershipTypeID = &c.typeID
	}
	if c.notes != "" {
		in.Notes = &c.notes
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	payment, err := service.RegisterMembershipPayment(in)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Registered payment %d: %s for period %s\n", payment.ID, payment.Amount, payment.Period)
	return subcommands.ExitSuccess
}

type paymentListCmd struct {
	all    bool
	member int
}

func (*paymentListCmd) Name() string     { return "payment-list" }
func (*paymentListCmd) Synopsis() string { return "list membership payments" }
func (*paymentListCmd) Usage() string {
	return `vcc payment-list [-all] [-member <member_id>]

  Lists dues payments of the active season, optionally for one member.
`
}

func (c *paymentListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List payments of all seasons.")
	f.IntVar(&c.member, "member", 0, "List only payments of this member.")
}

func (c *paymentListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}

	var payments []club.MembershipPayment
	if c.member != 0 {
		payments = service.MemberPayments(c.member)
	} else {
		payments = service.ListMembershipPayments(c.all)
	}
	printMarkdown(renderer.MembershipPayments(payments, memberNames(service)))
	return subcommands.ExitSuccess
}

type paymentRmCmd struct {
	id int
}

func (*paymentRmCmd) Name() string     { return "payment-rm" }
func (*paymentRmCmd) Synopsis() string { return "remove a membership payment" }
func (*paymentRmCmd) Usage() string {
	return `vcc payment-rm -id <payment_id>

  Removes a dues payment and recomputes the member's dues status from the
  remaining payments. The revenue entry recorded at payment time is kept;
  correct it with revenue-rm if needed.
`
}

func (c *paymentRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Payment id to remove.")
}

func (c *paymentRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemoveMembershipPayment(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed payment %d\n", c.id)
	return subcommands.ExitSuccess
}
