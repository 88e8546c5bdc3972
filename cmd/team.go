package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/vilacaiz/club"
	"github.com/vilacaiz/club/renderer"
)

type teamAddCmd struct {
	name     string
	ageGroup string
	coach    int
}

func (*teamAddCmd) Name() string     { return "team-add" }
func (*teamAddCmd) Synopsis() string { return "register a youth team in the active season" }
func (*teamAddCmd) Usage() string {
	return `vcc team-add -name <name> -age-group <group> [-coach <coach_id>]

  Registers a youth team. Players are assigned with team-assign.
`
}

func (c *teamAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Team name.")
	f.StringVar(&c.ageGroup, "age-group", "", "Age group, e.g. juvenis.")
	f.IntVar(&c.coach, "coach", 0, "Coach id.")
}

func (c *teamAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	in := club.NewYouthTeam{Name: c.name, AgeGroup: c.ageGroup}
	if seen["coach"] {
		in.CoachID = &c.coach
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	team, err := service.AddYouthTeam(in)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Added team %q with id %d\n", team.Name, team.ID)
	return subcommands.ExitSuccess
}

type teamListCmd struct {
	all bool
}

func (*teamListCmd) Name() string     { return "team-list" }
func (*teamListCmd) Synopsis() string { return "list youth teams" }
func (*teamListCmd) Usage() string {
	return `vcc team-list [-all]

  Lists youth teams of the active season with their rosters.
`
}

func (c *teamListCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List teams of all seasons.")
}

func (c *teamListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.YouthTeams(service.ListYouthTeams(c.all), coachNames(service), playerNames(service)))
	return subcommands.ExitSuccess
}

type teamAssignCmd struct {
	team   int
	player int
}

func (*teamAssignCmd) Name() string     { return "team-assign" }
func (*teamAssignCmd) Synopsis() string { return "assign a player to a youth team" }
func (*teamAssignCmd) Usage() string {
	return `vcc team-assign -team <team_id> -player <player_id>

  Adds a player to a youth team roster. Assigning an already rostered
  player is a no-op. Only teams of the active season can be managed.
`
}

func (c *teamAssignCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.team, "team", 0, "Team id.")
	f.IntVar(&c.player, "player", 0, "Player id.")
}

func (c *teamAssignCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	team, err := service.AssignPlayerToTeam(c.team, c.player)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Assigned player %d to team %q\n", c.player, team.Name)
	return subcommands.ExitSuccess
}

type teamEditCmd struct {
	id       int
	name     string
	ageGroup string
	coach    int
}

func (*teamEditCmd) Name() string     { return "team-edit" }
func (*teamEditCmd) Synopsis() string { return "edit a youth team" }
func (*teamEditCmd) Usage() string {
	return `vcc team-edit -id <team_id> [-name <name>] [-age-group <group>] [-coach <coach_id>]

  Updates the given fields of a youth team. A coach id of zero clears the
  coach.
`
}

func (c *teamEditCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Team id to edit.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.ageGroup, "age-group", "", "New age group.")
	f.IntVar(&c.coach, "coach", 0, "New coach id. Zero clears it.")
}

func (c *teamEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	seen := visited(f)

	var patch club.YouthTeamPatch
	if seen["name"] {
		patch.Name = club.Set(c.name)
	}
	if seen["age-group"] {
		patch.AgeGroup = club.Set(c.ageGroup)
	}
	if seen["coach"] {
		if c.coach == 0 {
			patch.CoachID = club.Null[int]()
		} else {
			patch.CoachID = club.Set(c.coach)
		}
	}

	service, err := openService()
	if err != nil {
		return fail(err)
	}
	team, err := service.UpdateYouthTeam(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated team %q\n", team.Name)
	return subcommands.ExitSuccess
}

type teamRmCmd struct {
	id int
}

func (*teamRmCmd) Name() string     { return "team-rm" }
func (*teamRmCmd) Synopsis() string { return "remove a youth team" }
func (*teamRmCmd) Usage() string {
	return `vcc team-rm -id <team_id>

  Removes a youth team. Its players are kept.
`
}

func (c *teamRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Team id to remove.")
}

func (c *teamRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	service, err := openService()
	if err != nil {
		return fail(err)
	}
	if err := service.RemoveYouthTeam(c.id); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed team %d\n", c.id)
	return subcommands.ExitSuccess
}
