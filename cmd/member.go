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

type memberAddCmd struct {
	name      string
	typeName  string
	typeID    int
	number    int
	birthdate string
	contact   string
	since     string
}

func (*memberAddCmd) Name() string     { return "member-add" }
func (*memberAddCmd) Synopsis() string { return "register a club member in the active season" }
func (*memberAddCmd) Usage() string {
	return `vcc member-add -name <name> [-type <name> | -type-id <id>] [options]

  Registers a member. The member number is assigned automatically unless
  -number is given.
`
}

func (c *memberAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Member name.")
	f.StringVar(&c.typeName, "type", "", "Membership type name (defaults to standard).")
	f.IntVar(&c.typeID, "type-id", 0, "Membership type id. Overrides -type.")
	f.IntVar(&c.number, "number", 0, "Member number. Assigned automatically when omitted.")
	f.StringVar(&c.birthdate, "birthdate", "", "Birthdate.")
	f.StringVar(&c.contact, "contact", "", "Contact information.")
	f.StringVar(&c.since, "since", "", "Member since date.")
}

func (c *memberAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	in := club.NewMember{Name: c.name, MembershipType: c.typeName}
	if seen["type-id"] {
		in.MembershipTypeID = &c.typeID
	}
	if seen["number"] {
		in.MemberNumber = &c.number
	}
	if c.birthdate != "" {
		d, err := club.ParseDate(c.birthdate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing birthdate: %v\n", err)
			return subcommands.ExitUsageError
		}
		in.Birthdate = &d
	}
	if c.contact != "" {
		in.Contact = &c.contact
	}
	if c.since != "" {
		d, err := club.ParseDate(c.since)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing since date: %v\n", err)
			return subcommands.ExitUsageError
		}
		in.MembershipSince = &d
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	member, err := service.AddMember(in)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added member %q with number %d\n", member.Name, member.MemberNumber)
	return subcommands.ExitSuccess
}

type memberListCmd struct {
	all bool
}

func (*memberListCmd) Name() string     { return "member-list" }
func (*memberListCmd) Synopsis() string { return "list club members" }
func (*memberListCmd) Usage() string {
	return `vcc member-list [-all]

  Lists members of the active season with their dues status.
`
}

func (c *memberListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List members of all seasons.")
}

func (c *memberListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Members(service.ListMembers(c.all)))
	return subcommands.ExitSuccess
}

type memberEditCmd struct {
	id       int
	name     string
	typeName string
	typeID   int
	number   int
	contact  string
}

func (*memberEditCmd) Name() string     { return "member-edit" }
func (*memberEditCmd) Synopsis() string { return "edit a member" }
func (*memberEditCmd) Usage() string {
	return `vcc member-edit -id <member_id> [options]

  Updates the given fields of a member. Omitted flags keep their value.
`
}

func (c *memberEditCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Member id to edit.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.typeName, "type", "", "New membership type name.")
	f.IntVar(&c.typeID, "type-id", 0, "New membership type id. Zero clears it.")
	f.IntVar(&c.number, "number", 0, "New member number.")
	f.StringVar(&c.contact, "contact", "", "New contact. An empty value clears it.")
}

func (c *memberEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	var patch club.MemberPatch
	if seen["name"] {
		patch.Name = club.Set(c.name)
	}
	if seen["type"] {
		patch.MembershipType = club.Set(c.typeName)
	}
	if seen["type-id"] {
		if c.typeID == 0 {
			patch.MembershipTypeID = club.Null[int]()
		} else {
			patch.MembershipTypeID = club.Set(c.typeID)
		}
	}
	if seen["number"] {
		patch.MemberNumber = club.Set(c.number)
	}
	if seen["contact"] {
		if c.contact == "" {
			patch.Contact = club.Null[string]()
		} else {
			patch.Contact = club.Set(c.contact)
		}
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	member, err := service.UpdateMember(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated member %q\n", member.Name)
	return subcommands.ExitSuccess
}

type memberRmCmd struct {
	id int
}

func (*memberRmCmd) Name() string     { return "member-rm" }
func (*memberRmCmd) Synopsis() string { return "remove a member" }
func (*memberRmCmd) Usage() string {
	return `vcc member-rm -id <member_id>

  Removes a member together with their payment history.
`
}

func (c *memberRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Member id to remove.")
}

func (c *memberRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemoveMember(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed member %d\n", c.id)
	return subcommands.ExitSuccess
}

type typeAddCmd struct {
	name        string
	amount      string
	frequency   string
	description string
}

func (*typeAddCmd) Name() string     { return "type-add" }
func (*typeAddCmd) Synopsis() string { return "define a membership type" }
func (*typeAddCmd) Usage() string {
	return `vcc type-add -name <name> -amount <amount> [-frequency <text>] [-description <text>]

  Defines a membership type in the active season. The frequency defaults
  to Mensal.
`
}

func (c *typeAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Type name.")
	f.StringVar(&c.amount, "amount", "", "Dues amount.")
	f.StringVar(&c.frequency, "frequency", "", "Payment frequency (defaults to Mensal).")
	f.StringVar(&c.description, "description", "", "Description.")
}

func (c *typeAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := club.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	in := club.NewMembershipType{Name: c.name, Amount: amount, Frequency: c.frequency}
	if c.description != "" {
		in.Description = &c.description
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	mt, err := service.AddMembershipType(in)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added membership type %q with id %d\n", mt.Name, mt.ID)
	return subcommands.ExitSuccess
}

type typeListCmd struct {
	all bool
}

func (*typeListCmd) Name() string     { return "type-list" }
func (*typeListCmd) Synopsis() string { return "list membership types" }
func (*typeListCmd) Usage() string {
	return `vcc type-list [-all]

  Lists membership types of the active season.
`
}

func (c *typeListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List types of all seasons.")
}

func (c *typeListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.MembershipTypes(service.ListMembershipTypes(c.all)))
	return subcommands.ExitSuccess
}

type typeEditCmd struct {
	id          int
	name        string
	amount      string
	frequency   string
	description string
}

func (*typeEditCmd) Name() string     { return "type-edit" }
func (*typeEditCmd) Synopsis() string { return "edit a membership type" }
func (*typeEditCmd) Usage() string {
	return `vcc type-edit -id <type_id> [-name <name>] [-amount <amount>] [-frequency <text>] [-description <text>]

  Updates the given fields of a membership type.
`
}

func (c *typeEditCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Type id to edit.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.amount, "amount", "", "New dues amount.")
	f.StringVar(&c.frequency, "frequency", "", "New frequency.")
	f.StringVar(&c.description, "description", "", "New description. An empty value clears it.")
}

func (c *typeEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	var patch club.MembershipTypePatch
	if seen["name"] {
		patch.Name = club.Set(c.name)
	}
	if seen["amount"] {
		amount, err := club.ParseAmount(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.Amount = club.Set(amount)
	}
	if seen["frequency"] {
		patch.Frequency = club.Set(c.frequency)
	}
	if seen["description"] {
		if c.description == "" {
			patch.Description = club.Null[string]()
		} else {
			patch.Description = club.Set(c.description)
		}
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	mt, err := service.UpdateMembershipType(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated membership type %q\n", mt.Name)
	return subcommands.ExitSuccess
}

type typeRmCmd struct {
	id int
}

func (*typeRmCmd) Name() string     { return "type-rm" }
func (*typeRmCmd) Synopsis() string { return "remove a membership type" }
func (*typeRmCmd) Usage() string {
	return `vcc type-rm -id <type_id>

  Removes a membership type. Members keep the type name as free text.
`
}

func (c *typeRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Type id to remove.")
}

func (c *typeRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemoveMembershipType(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed membership type %d\n", c.id)
	return subcommands.ExitSuccess
}
