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

type treatmentAddCmd struct {
	player         int
	physio         int
	diagnosis      string
	plan           string
	start          string
	expectedReturn string
	unavailable    bool
	notes          string
}

func (*treatmentAddCmd) Name() string     { return "treatment-add" }
func (*treatmentAddCmd) Synopsis() string { return "open a treatment record for a player" }
func (*treatmentAddCmd) Usage() string {
	return `vcc treatment-add -player <player_id> -diagnosis <text> -plan <text> -start <date> [options]

  Opens a clinical record for a player of the active season.
`
}

func (c *treatmentAddCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.player, "player", 0, "Player id.")
	f.IntVar(&c.physio, "physio", 0, "Physiotherapist id in charge.")
	f.StringVar(&c.diagnosis, "diagnosis", "", "Diagnosis.")
	f.StringVar(&c.plan, "plan", "", "Treatment plan.")
	f.StringVar(&c.start, "start", "0d", "Start date (defaults to today).")
	f.StringVar(&c.expectedReturn, "return", "", "Expected return date.")
	f.BoolVar(&c.unavailable, "unavailable", false, "Mark the player as unavailable for matches.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *treatmentAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	start, err := club.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	in := club.NewTreatment{
		PlayerID:      c.player,
		Diagnosis:     c.diagnosis,
		TreatmentPlan: c.plan,
		StartDate:     start,
		Unavailable:   c.unavailable,
	}
	if seen["physio"] {
		in.PhysioID = &c.physio
	}
	if c.expectedReturn != "" {
		d, err := club.ParseDate(c.expectedReturn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing return date: %v\n", err)
			return subcommands.ExitUsageError
		}
		in.ExpectedReturn = &d
	}
	if c.notes != "" {
		in.Notes = &c.notes
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	treatment, err := service.AddTreatment(in)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Opened treatment %d for player %d\n", treatment.ID, treatment.PlayerID)
	return subcommands.ExitSuccess
}

type treatmentListCmd struct {
	all    bool
	active bool
	player int
}

func (*treatmentListCmd) Name() string     { return "treatment-list" }
func (*treatmentListCmd) Synopsis() string { return "list treatments" }
func (*treatmentListCmd) Usage() string {
	return `vcc treatment-list [-all | -active] [-player <player_id>]

  Lists treatments of the active season, most recent first. With -active,
  only treatments of players currently unavailable are shown.
`
}

func (c *treatmentListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List treatments of all seasons.")
	f.BoolVar(&c.active, "active", false, "List only active (unavailable) treatments.")
	f.IntVar(&c.player, "player", 0, "List only treatments of this player.")
}

func (c *treatmentListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}

	var treatments []club.Treatment
	if c.active {
		treatments = service.ActiveTreatments()
	} else {
		treatments = service.ListTreatments(c.all)
	}
	if c.player != 0 {
		var filtered []club.Treatment
		for _, t := range treatments {
			if t.PlayerID == c.player {
				filtered = append(filtered, t)
			}
		}
		treatments = filtered
	}

	printMarkdown(renderer.Treatments(treatments, playerNames(service), physioNames(service)))
	return subcommands.ExitSuccess
}

type treatmentEditCmd struct {
	id             int
	physio         int
	diagnosis      string
	plan           string
	expectedReturn string
	unavailable    bool
	notes          string
}

func (*treatmentEditCmd) Name() string     { return "treatment-edit" }
func (*treatmentEditCmd) Synopsis() string { return "edit a treatment record" }
func (*treatmentEditCmd) Usage() string {
	return `vcc treatment-edit -id <treatment_id> [options]

  Updates the given fields of a treatment. Use -unavailable=false to mark
  the player as available again.
`
}

func (c *treatmentEditCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Treatment id to edit.")
	f.IntVar(&c.physio, "physio", 0, "New physiotherapist id. Zero clears it.")
	f.StringVar(&c.diagnosis, "diagnosis", "", "New diagnosis.")
	f.StringVar(&c.plan, "plan", "", "New treatment plan.")
	f.StringVar(&c.expectedReturn, "return", "", "New expected return date. An empty value clears it.")
	f.BoolVar(&c.unavailable, "unavailable", false, "Player availability for matches.")
	f.StringVar(&c.notes, "notes", "", "New notes. An empty value clears them.")
}

func (c *treatmentEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	var patch club.TreatmentPatch
	if seen["physio"] {
		if c.physio == 0 {
			patch.PhysioID = club.Null[int]()
		} else {
			patch.PhysioID = club.Set(c.physio)
		}
	}
	if seen["diagnosis"] {
		patch.Diagnosis = club.Set(c.diagnosis)
	}
	if seen["plan"] {
		patch.TreatmentPlan = club.Set(c.plan)
	}
	if seen["return"] {
		if c.expectedReturn == "" {
			patch.ExpectedReturn = club.Null[club.Date]()
		} else {
			d, err := club.ParseDate(c.expectedReturn)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing return date: %v\n", err)
				return subcommands.ExitUsageError
			}
			patch.ExpectedReturn = club.Set(d)
		}
	}
	if seen["unavailable"] {
		patch.Unavailable = club.Set(c.unavailable)
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
	treatment, err := service.UpdateTreatment(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated treatment %d\n", treatment.ID)
	return subcommands.ExitSuccess
}

type treatmentRmCmd struct {
	id int
}

func (*treatmentRmCmd) Name() string     { return "treatment-rm" }
func (*treatmentRmCmd) Synopsis() string { return "remove a treatment record" }
func (*treatmentRmCmd) Usage() string {
	return `vcc treatment-rm -id <treatment_id>

  Removes a treatment record.
`
}

func (c *treatmentRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Treatment id to remove.")
}

func (c *treatmentRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemoveTreatment(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed treatment %d\n", c.id)
	return subcommands.ExitSuccess
}
