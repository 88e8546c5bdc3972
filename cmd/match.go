package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/vilacaiz/club"
	"github.com/vilacaiz/club/renderer"
)

// parseIDList parses a comma-separated list of player ids.
func parseIDList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var ids []int
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid player id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type matchAddCmd struct {
	squad       string
	date        string
	kickoff     string
	venue       string
	opponent    string
	competition string
	coach       int
	starters    string
	substitutes string
	notes       string
}

func (*matchAddCmd) Name() string     { return "match-add" }
func (*matchAddCmd) Synopsis() string { return "plan a match in the active season" }
func (*matchAddCmd) Usage() string {
	return `vcc match-add -date <date> -kickoff <HH:MM> -venue <venue> -opponent <name> [options]

  Plans a match. Rosters are comma-separated player ids; unknown ids are
  dropped and a starter is never kept as a substitute.
`
}

func (c *matchAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.squad, "squad", "", "Squad (defaults to senior).")
	f.StringVar(&c.date, "date", "", "Match date.")
	f.StringVar(&c.kickoff, "kickoff", "", "Kickoff time, e.g. 15:00.")
	f.StringVar(&c.venue, "venue", "", "Venue.")
	f.StringVar(&c.opponent, "opponent", "", "Opponent name.")
	f.StringVar(&c.competition, "competition", "", "Competition name.")
	f.IntVar(&c.coach, "coach", 0, "Coach id in charge.")
	f.StringVar(&c.starters, "starters", "", "Comma-separated starter player ids.")
	f.StringVar(&c.substitutes, "substitutes", "", "Comma-separated substitute player ids.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *matchAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	date, err := club.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing match date: %v\n", err)
		return subcommands.ExitUsageError
	}
	starters, err := parseIDList(c.starters)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	substitutes, err := parseIDList(c.substitutes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	in := club.NewMatchPlan{
		Squad:       c.squad,
		MatchDate:   date,
		KickoffTime: c.kickoff,
		Venue:       c.venue,
		Opponent:    c.opponent,
		Starters:    starters,
		Substitutes: substitutes,
	}
	if c.competition != "" {
		in.Competition = &c.competition
	}
	if seen["coach"] {
		in.CoachID = &c.coach
	}
	if c.notes != "" {
		in.Notes = &c.notes
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	plan, err := service.CreateMatchPlan(in)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Planned match %d vs %s on %s\n", plan.ID, plan.Opponent, plan.MatchDate)
	return subcommands.ExitSuccess
}

type matchListCmd struct {
	all bool
}

func (*matchListCmd) Name() string     { return "match-list" }
func (*matchListCmd) Synopsis() string { return "list planned matches" }
func (*matchListCmd) Usage() string {
	return `vcc match-list [-all]

  Lists planned matches of the active season in calendar order.
`
}

func (c *matchListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List matches of all seasons.")
}

func (c *matchListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.MatchPlans(service.ListMatchPlans(c.all)))
	return subcommands.ExitSuccess
}

type matchSheetCmd struct {
	id int
}

func (*matchSheetCmd) Name() string     { return "match-sheet" }
func (*matchSheetCmd) Synopsis() string { return "print a match sheet" }
func (*matchSheetCmd) Usage() string {
	return `vcc match-sheet -id <match_id>

  Prints the full sheet of one match: details, starters and substitutes.
`
}

func (c *matchSheetCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Match id.")
}

func (c *matchSheetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	plan, err := service.GetMatchPlan(c.id)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.MatchSheet(plan, playerNames(service), coachNames(service)))
	return subcommands.ExitSuccess
}

type matchEditCmd struct {
	id          int
	squad       string
	date        string
	kickoff     string
	venue       string
	opponent    string
	competition string
	coach       int
	starters    string
	substitutes string
	notes       string
}

func (*matchEditCmd) Name() string     { return "match-edit" }
func (*matchEditCmd) Synopsis() string { return "edit a match plan" }
func (*matchEditCmd) Usage() string {
	return `vcc match-edit -id <match_id> [options]

  Updates the given fields of a match plan. Roster flags replace the whole
  list; an empty value clears it.
`
}

func (c *matchEditCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Match id to edit.")
	f.StringVar(&c.squad, "squad", "", "New squad.")
	f.StringVar(&c.date, "date", "", "New match date.")
	f.StringVar(&c.kickoff, "kickoff", "", "New kickoff time.")
	f.StringVar(&c.venue, "venue", "", "New venue.")
	f.StringVar(&c.opponent, "opponent", "", "New opponent.")
	f.StringVar(&c.competition, "competition", "", "New competition. An empty value clears it.")
	f.IntVar(&c.coach, "coach", 0, "New coach id. Zero clears it.")
	f.StringVar(&c.starters, "starters", "", "New comma-separated starter ids.")
	f.StringVar(&c.substitutes, "substitutes", "", "New comma-separated substitute ids.")
	f.StringVar(&c.notes, "notes", "", "New notes. An empty value clears them.")
}

func (c *matchEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	var patch club.MatchPlanPatch
	if seen["squad"] {
		patch.Squad = club.Set(c.squad)
	}
	if seen["date"] {
		d, err := club.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing match date: %v\n", err)
			return subcommands.ExitUsageError
		}
		patch.MatchDate = club.Set(d)
	}
	if seen["kickoff"] {
		patch.KickoffTime = club.Set(c.kickoff)
	}
	if seen["venue"] {
		patch.Venue = club.Set(c.venue)
	}
	if seen["opponent"] {
		patch.Opponent = club.Set(c.opponent)
	}
	if seen["competition"] {
		if c.competition == "" {
			patch.Competition = club.Null[string]()
		} else {
			patch.Competition = club.Set(c.competition)
		}
	}
	if seen["coach"] {
		if c.coach == 0 {
			patch.CoachID = club.Null[int]()
		} else {
			patch.CoachID = club.Set(c.coach)
		}
	}
	if seen["starters"] {
		ids, err := parseIDList(c.starters)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		patch.Starters = club.Set(ids)
	}
	if seen["substitutes"] {
		ids, err := parseIDList(c.substitutes)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		patch.Substitutes = club.Set(ids)
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
	plan, err := service.UpdateMatchPlan(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated match %d vs %s\n", plan.ID, plan.Opponent)
	return subcommands.ExitSuccess
}

type matchRmCmd struct {
	id int
}

func (*matchRmCmd) Name() string     { return "match-rm" }
func (*matchRmCmd) Synopsis() string { return "remove a match plan" }
func (*matchRmCmd) Usage() string {
	return `vcc match-rm -id <match_id>

  Removes a match plan.
`
}

func (c *matchRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Match id to remove.")
}

func (c *matchRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemoveMatchPlan(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed match %d\n", c.id)
	return subcommands.ExitSuccess
}
