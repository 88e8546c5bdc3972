// vcc is the command line tool of Vila Caiz Clube: seasons, squads, staff,
// treatments, members, dues and finances, all in one JSON data file.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/vilacaiz/club/cmd"
)

func main() {
	// Shell completion runs first: when invoked by the completion hook, it
	// prints candidates and exits.
	completion().Complete("vcc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := make(map[string]*complete.Command)
	for _, name := range []string{
		"season-new", "season-list", "season-set", "season-edit", "season-rm",
		"player-add", "player-list", "player-edit", "player-rm",
		"staff", "coach-add", "coach-edit", "coach-rm",
		"physio-add", "physio-edit", "physio-rm",
		"treatment-add", "treatment-list", "treatment-edit", "treatment-rm",
		"team-add", "team-list", "team-assign", "team-edit", "team-rm",
		"member-add", "member-list", "member-edit", "member-rm",
		"type-add", "type-list", "type-edit", "type-rm",
		"pay", "payment-list", "payment-rm",
		"match-add", "match-list", "match-sheet", "match-edit", "match-rm",
		"revenue-add", "revenue-list", "revenue-edit", "revenue-rm",
		"expense-add", "expense-list", "expense-edit", "expense-rm",
		"summary", "inspect", "fmt", "topic",
	} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-file": predict.Files("*.json"),
		},
	}
}
