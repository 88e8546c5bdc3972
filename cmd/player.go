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

type playerAddCmd struct {
	name        string
	position    string
	squad       string
	birthdate   string
	contact     string
	shirt       int
	afPortoID   string
	monthlyFee  string
	monthlyPaid bool
	kitFee      string
	kitPaid     bool
}

func (*playerAddCmd) Name() string     { return "player-add" }
func (*playerAddCmd) Synopsis() string { return "register a player in the active season" }
func (*playerAddCmd) Usage() string {
	return `vcc player-add -name <name> -position <position> [-squad <squad>] [options]

  Registers a player. For youth squads (juniores, juvenis, iniciados,
  infantis) the -monthly-fee and -kit-fee flags record the formation fees;
  a fee marked as paid creates the matching revenue entry.
`
}

func (c *playerAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Player name.")
	f.StringVar(&c.position, "position", "", "Playing position.")
	f.StringVar(&c.squad, "squad", "", "Squad (defaults to senior).")
	f.StringVar(&c.birthdate, "birthdate", "", "Birthdate. See the user manual for supported date formats.")
	f.StringVar(&c.contact, "contact", "", "Contact information.")
	f.IntVar(&c.shirt, "shirt", 0, "Shirt number.")
	f.StringVar(&c.afPortoID, "af-porto-id", "", "AF Porto federation id.")
	f.StringVar(&c.monthlyFee, "monthly-fee", "", "Monthly formation fee (youth squads only).")
	f.BoolVar(&c.monthlyPaid, "monthly-paid", false, "Mark the monthly fee as paid.")
	f.StringVar(&c.kitFee, "kit-fee", "", "Training kit fee (youth squads only).")
	f.BoolVar(&c.kitPaid, "kit-paid", false, "Mark the kit fee as paid.")
}

func (c *playerAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	in := club.NewPlayer{
		Name:             c.name,
		Position:         c.position,
		Squad:            c.squad,
		YouthMonthlyPaid: c.monthlyPaid,
		YouthKitPaid:     c.kitPaid,
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
	if seen["shirt"] {
		in.ShirtNumber = &c.shirt
	}
	if c.afPortoID != "" {
		in.AFPortoID = &c.afPortoID
	}
	if c.monthlyFee != "" {
		fee, err := club.ParseAmount(c.monthlyFee)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing monthly fee: %v\n", err)
			return subcommands.ExitUsageError
		}
		in.YouthMonthlyFee = &fee
	}
	if c.kitFee != "" {
		fee, err := club.ParseAmount(c.kitFee)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing kit fee: %v\n", err)
			return subcommands.ExitUsageError
		}
		in.YouthKitFee = &fee
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	player, err := service.AddPlayer(in)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added player %q with id %d\n", player.Name, player.ID)
	return subcommands.ExitSuccess
}

type playerListCmd struct {
	all bool
}

func (*playerListCmd) Name() string     { return "player-list" }
func (*playerListCmd) Synopsis() string { return "list players of the active season" }
func (*playerListCmd) Usage() string {
	return `vcc player-list [-all]

  Lists the roster of the active season, or of all seasons with -all.
`
}

func (c *playerListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List players of all seasons.")
}

func (c *playerListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Players(service.ListPlayers(c.all)))
	return subcommands.ExitSuccess
}

type playerEditCmd struct {
	id          int
	name        string
	position    string
	squad       string
	birthdate   string
	contact     string
	shirt       int
	afPortoID   string
	monthlyFee  string
	monthlyPaid bool
	kitFee      string
	kitPaid     bool
}

func (*playerEditCmd) Name() string     { return "player-edit" }
func (*playerEditCmd) Synopsis() string { return "edit a player" }
func (*playerEditCmd) Usage() string {
	return `vcc player-edit -id <player_id> [options]

  Updates the given fields of a player. Omitted flags keep their value; an
  empty string clears an optional field. Moving a player out of a youth
  squad clears the formation fees and removes their linked revenues.
`
}

func (c *playerEditCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Player id to edit.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.position, "position", "", "New position.")
	f.StringVar(&c.squad, "squad", "", "New squad.")
	f.StringVar(&c.birthdate, "birthdate", "", "New birthdate. An empty value clears it.")
	f.StringVar(&c.contact, "contact", "", "New contact. An empty value clears it.")
	f.IntVar(&c.shirt, "shirt", 0, "New shirt number.")
	f.StringVar(&c.afPortoID, "af-porto-id", "", "New AF Porto id. An empty value clears it.")
	f.StringVar(&c.monthlyFee, "monthly-fee", "", "New monthly fee. An empty value clears it.")
	f.BoolVar(&c.monthlyPaid, "monthly-paid", false, "Mark the monthly fee as paid (or unpaid with =false).")
	f.StringVar(&c.kitFee, "kit-fee", "", "New kit fee. An empty value clears it.")
	f.BoolVar(&c.kitPaid, "kit-paid", false, "Mark the kit fee as paid (or unpaid with =false).")
}

func (c *playerEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	var patch club.PlayerPatch
	if seen["name"] {
		patch.Name = club.Set(c.name)
	}
	if seen["position"] {
		patch.Position = club.Set(c.position)
	}
	if seen["squad"] {
		patch.Squad = club.Set(c.squad)
	}
	if seen["birthdate"] {
		if c.birthdate == "" {
			patch.Birthdate = club.Null[club.Date]()
		} else {
			d, err := club.ParseDate(c.birthdate)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing birthdate: %v\n", err)
				return subcommands.ExitUsageError
			}
			patch.Birthdate = club.Set(d)
		}
	}
	if seen["contact"] {
		if c.contact == "" {
			patch.Contact = club.Null[string]()
		} else {
			patch.Contact = club.Set(c.contact)
		}
	}
	if seen["shirt"] {
		patch.ShirtNumber = club.Set(c.shirt)
	}
	if seen["af-porto-id"] {
		if c.afPortoID == "" {
			patch.AFPortoID = club.Null[string]()
		} else {
			patch.AFPortoID = club.Set(c.afPortoID)
		}
	}
	if seen["monthly-fee"] {
		if c.monthlyFee == "" {
			patch.YouthMonthlyFee = club.Null[club.Amount]()
		} else {
			fee, err := club.ParseAmount(c.monthlyFee)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing monthly fee: %v\n", err)
				return subcommands.ExitUsageError
			}
			patch.YouthMonthlyFee = club.Set(fee)
		}
	}
	if seen["monthly-paid"] {
		patch.YouthMonthlyPaid = club.Set(c.monthlyPaid)
	}
	if seen["kit-fee"] {
		if c.kitFee == "" {
			patch.YouthKitFee = club.Null[club.Amount]()
		} else {
			fee, err := club.ParseAmount(c.kitFee)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing kit fee: %v\n", err)
				return subcommands.ExitUsageError
			}
			patch.YouthKitFee = club.Set(fee)
		}
	}
	if seen["kit-paid"] {
		patch.YouthKitPaid = club.Set(c.kitPaid)
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	player, err := service.UpdatePlayer(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated player %q\n", player.Name)
	return subcommands.ExitSuccess
}

type playerRmCmd struct {
	id int
}

func (*playerRmCmd) Name() string     { return "player-rm" }
func (*playerRmCmd) Synopsis() string { return "remove a player" }
func (*playerRmCmd) Usage() string {
	return `vcc player-rm -id <player_id>

  Removes a player together with their treatments, match sheet entries and
  linked fee revenues.
`
}

func (c *playerRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Player id to remove.")
}

func (c *playerRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemovePlayer(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed player %d\n", c.id)
	return subcommands.ExitSuccess
}
