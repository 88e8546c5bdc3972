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

type seasonNewCmd struct {
	name  string
	start string
	end   string
	notes string
}

func (*seasonNewCmd) Name() string     { return "season-new" }
func (*seasonNewCmd) Synopsis() string { return "create a new season" }
func (*seasonNewCmd) Usage() string {
	return `vcc season-new -name <name> -start <date> -end <date> [-notes <text>]

  Creates a new season. The new season is not made active; use season-set.
`
}

func (c *seasonNewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Season name, e.g. \"Época 2025/2026\".")
	f.StringVar(&c.start, "start", "", "First day of the season.")
	f.StringVar(&c.end, "end", "", "Last day of the season.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *seasonNewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := club.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := club.ParseDate(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}

	var notes *string
	if c.notes != "" {
		notes = &c.notes
	}
	season, err := service.CreateSeason(c.name, start, end, notes)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created season %q with id %d\n", season.Name, season.ID)
	return subcommands.ExitSuccess
}

type seasonListCmd struct{}

func (*seasonListCmd) Name() string     { return "season-list" }
func (*seasonListCmd) Synopsis() string { return "list all seasons" }
func (*seasonListCmd) Usage() string {
	return `vcc season-list

  Lists all seasons, marking the active one.
`
}

func (c *seasonListCmd) SetFlags(f *flag.FlagSet) {}

func (c *seasonListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Seasons(service.ListSeasons(), service.ActiveSeasonID()))
	return subcommands.ExitSuccess
}

type seasonSetCmd struct {
	id int
}

func (*seasonSetCmd) Name() string     { return "season-set" }
func (*seasonSetCmd) Synopsis() string { return "switch the active season" }
func (*seasonSetCmd) Usage() string {
	return `vcc season-set -id <season_id>

  Makes the given season the active one. All listing and recording commands
  operate on the active season.
`
}

func (c *seasonSetCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Season id to activate.")
}

func (c *seasonSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	season, err := service.SetActiveSeason(c.id)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Active season is now %q\n", season.Name)
	return subcommands.ExitSuccess
}

type seasonEditCmd struct {
	id    int
	name  string
	start string
	end   string
	notes string
}

func (*seasonEditCmd) Name() string     { return "season-edit" }
func (*seasonEditCmd) Synopsis() string { return "edit a season" }
func (*seasonEditCmd) Usage() string {
	return `vcc season-edit -id <season_id> [-name <name>] [-start <date>] [-end <date>] [-notes <text>]

  Updates the given fields of a season. Omitted flags keep their value.
`
}

func (c *seasonEditCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Season id to edit.")
	f.StringVar(&c.name, "name", "", "New season name.")
	f.StringVar(&c.start, "start", "", "New first day.")
	f.StringVar(&c.end, "end", "", "New last day.")
	f.StringVar(&c.notes, "notes", "", "New notes. An empty value clears them.")
}

func (c *seasonEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	var patch club.SeasonPatch
	if seen["name"] {
		patch.Name = club.Set(c.name)
	}
	if seen["start"] {
		start, err := club.ParseDate(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.StartDate = club.Set(start)
	}
	if seen["end"] {
		end, err := club.ParseDate(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.EndDate = club.Set(end)
	}
	if seen["notes"] {
		if c.notes == "" {
			patch.Notes = club.Null[string]()
		} else {
			patch.Notes = club.Set(c.notes)
		}
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	season, err := service.UpdateSeason(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated season %q\n", season.Name)
	return subcommands.ExitSuccess
}

type seasonRmCmd struct {
	id int
}

func (*seasonRmCmd) Name() string     { return "season-rm" }
func (*seasonRmCmd) Synopsis() string { return "remove a season and all its records" }
func (*seasonRmCmd) Usage() string {
	return `vcc season-rm -id <season_id>

  Removes a season together with every record scoped to it. The active
  season cannot be removed.
`
}

func (c *seasonRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Season id to remove.")
}

func (c *seasonRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemoveSeason(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed season %d\n", c.id)
	return subcommands.ExitSuccess
}
