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

type staffCmd struct {
	all bool
}

func (*staffCmd) Name() string     { return "staff" }
func (*staffCmd) Synopsis() string { return "list coaches and physiotherapists" }
func (*staffCmd) Usage() string {
	return `vcc staff [-all]

  Lists coaching and medical staff of the active season.
`
}

func (c *staffCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List staff of all seasons.")
}

func (c *staffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Staff(service.ListCoaches(c.all), service.ListPhysiotherapists(c.all)))
	return subcommands.ExitSuccess
}

type coachAddCmd struct {
	name      string
	role      string
	license   string
	birthdate string
	contact   string
}

func (*coachAddCmd) Name() string     { return "coach-add" }
func (*coachAddCmd) Synopsis() string { return "register a coach in the active season" }
func (*coachAddCmd) Usage() string {
	return `vcc coach-add -name <name> [-role <role>] [-license <level>] [options]

  Registers a coach. The role defaults to Head Coach.
`
}

func (c *coachAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Coach name.")
	f.StringVar(&c.role, "role", "", "Role (defaults to Head Coach).")
	f.StringVar(&c.license, "license", "", "License level.")
	f.StringVar(&c.birthdate, "birthdate", "", "Birthdate.")
	f.StringVar(&c.contact, "contact", "", "Contact information.")
}

func (c *coachAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := club.NewCoach{Name: c.name, Role: c.role}
	if c.license != "" {
		in.LicenseLevel = &c.license
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

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	coach, err := service.AddCoach(in)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added coach %q with id %d\n", coach.Name, coach.ID)
	return subcommands.ExitSuccess
}

type coachEditCmd struct {
	id      int
	name    string
	role    string
	license string
	contact string
}

func (*coachEditCmd) Name() string     { return "coach-edit" }
func (*coachEditCmd) Synopsis() string { return "edit a coach" }
func (*coachEditCmd) Usage() string {
	return `vcc coach-edit -id <coach_id> [-name <name>] [-role <role>] [-license <level>] [-contact <contact>]

  Updates the given fields of a coach. Omitted flags keep their value.
`
}

func (c *coachEditCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Coach id to edit.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.role, "role", "", "New role.")
	f.StringVar(&c.license, "license", "", "New license level. An empty value clears it.")
	f.StringVar(&c.contact, "contact", "", "New contact. An empty value clears it.")
}

func (c *coachEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	var patch club.CoachPatch
	if seen["name"] {
		patch.Name = club.Set(c.name)
	}
	if seen["role"] {
		patch.Role = club.Set(c.role)
	}
	if seen["license"] {
		if c.license == "" {
			patch.LicenseLevel = club.Null[string]()
		} else {
			patch.LicenseLevel = club.Set(c.license)
		}
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
	coach, err := service.UpdateCoach(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated coach %q\n", coach.Name)
	return subcommands.ExitSuccess
}

type coachRmCmd struct {
	id int
}

func (*coachRmCmd) Name() string     { return "coach-rm" }
func (*coachRmCmd) Synopsis() string { return "remove a coach" }
func (*coachRmCmd) Usage() string {
	return `vcc coach-rm -id <coach_id>

  Removes a coach. Youth teams and match plans referencing the coach keep
  working with the reference cleared.
`
}

func (c *coachRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Coach id to remove.")
}

func (c *coachRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemoveCoach(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed coach %d\n", c.id)
	return subcommands.ExitSuccess
}

type physioAddCmd struct {
	name           string
	specialization string
	birthdate      string
	contact        string
}

func (*physioAddCmd) Name() string     { return "physio-add" }
func (*physioAddCmd) Synopsis() string { return "register a physiotherapist in the active season" }
func (*physioAddCmd) Usage() string {
	return `vcc physio-add -name <name> [-specialization <text>] [options]

  Registers a physiotherapist.
`
}

func (c *physioAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Physiotherapist name.")
	f.StringVar(&c.specialization, "specialization", "", "Specialization.")
	f.StringVar(&c.birthdate, "birthdate", "", "Birthdate.")
	f.StringVar(&c.contact, "contact", "", "Contact information.")
}

func (c *physioAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := club.NewPhysiotherapist{Name: c.name}
	if c.specialization != "" {
		in.Specialization = &c.specialization
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

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	physio, err := service.AddPhysiotherapist(in)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added physiotherapist %q with id %d\n", physio.Name, physio.ID)
	return subcommands.ExitSuccess
}

type physioEditCmd struct {
	id             int
	name           string
	specialization string
	contact        string
}

func (*physioEditCmd) Name() string     { return "physio-edit" }
func (*physioEditCmd) Synopsis() string { return "edit a physiotherapist" }
func (*physioEditCmd) Usage() string {
	return `vcc physio-edit -id <physio_id> [-name <name>] [-specialization <text>] [-contact <contact>]

  Updates the given fields of a physiotherapist. Omitted flags keep their value.
`
}

func (c *physioEditCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Physiotherapist id to edit.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.specialization, "specialization", "", "New specialization. An empty value clears it.")
	f.StringVar(&c.contact, "contact", "", "New contact. An empty value clears it.")
}

func (c *physioEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	var patch club.PhysiotherapistPatch
	if seen["name"] {
		patch.Name = club.Set(c.name)
	}
	if seen["specialization"] {
		if c.specialization == "" {
			patch.Specialization = club.Null[string]()
		} else {
			patch.Specialization = club.Set(c.specialization)
		}
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
	physio, err := service.UpdatePhysiotherapist(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated physiotherapist %q\n", physio.Name)
	return subcommands.ExitSuccess
}

type physioRmCmd struct {
	id int
}

func (*physioRmCmd) Name() string     { return "physio-rm" }
func (*physioRmCmd) Synopsis() string { return "remove a physiotherapist" }
func (*physioRmCmd) Usage() string {
	return `vcc physio-rm -id <physio_id>

  Removes a physiotherapist. Treatments referencing them are kept with the
  reference cleared.
`
}

func (c *physioRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Physiotherapist id to remove.")
}

func (c *physioRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemovePhysiotherapist(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed physiotherapist %d\n", c.id)
	return subcommands.ExitSuccess
}
