// Package cmd implements the CLI application to manage the club.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/vilacaiz/club"
	"github.com/vilacaiz/club/renderer"
)

// Register registers all subcommands on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&seasonNewCmd{}, "seasons")
	c.Register(&seasonListCmd{}, "seasons")
	c.Register(&seasonSetCmd{}, "seasons")
	c.Register(&seasonEditCmd{}, "seasons")
	c.Register(&seasonRmCmd{}, "seasons")

	c.Register(&playerAddCmd{}, "roster")
	c.Register(&playerListCmd{}, "roster")
	c.Register(&playerEditCmd{}, "roster")
	c.Register(&playerRmCmd{}, "roster")
	c.Register(&staffCmd{}, "roster")
	c.Register(&coachAddCmd{}, "roster")
	c.Register(&coachEditCmd{}, "roster")
	c.Register(&coachRmCmd{}, "roster")
	c.Register(&physioAddCmd{}, "roster")
	c.Register(&physioEditCmd{}, "roster")
	c.Register(&physioRmCmd{}, "roster")

	c.Register(&treatmentAddCmd{}, "medical")
	c.Register(&treatmentListCmd{}, "medical")
	c.Register(&treatmentEditCmd{}, "medical")
	c.Register(&treatmentRmCmd{}, "medical")

	c.Register(&teamAddCmd{}, "youth teams")
	c.Register(&teamListCmd{}, "youth teams")
	c.Register(&teamAssignCmd{}, "youth teams")
	c.Register(&teamEditCmd{}, "youth teams")
	c.Register(&teamRmCmd{}, "youth teams")

	c.Register(&memberAddCmd{}, "membership")
	c.Register(&memberListCmd{}, "membership")
	c.Register(&memberEditCmd{}, "membership")
	c.Register(&memberRmCmd{}, "membership")
	c.Register(&typeAddCmd{}, "membership")
	c.Register(&typeListCmd{}, "membership")
	c.Register(&typeEditCmd{}, "membership")
	c.Register(&typeRmCmd{}, "membership")
	c.Register(&payCmd{}, "membership")
	c.Register(&paymentListCmd{}, "membership")
	c.Register(&paymentRmCmd{}, "membership")

	c.Register(&matchAddCmd{}, "matches")
	c.Register(&matchListCmd{}, "matches")
	c.Register(&matchSheetCmd{}, "matches")
	c.Register(&matchEditCmd{}, "matches")
	c.Register(&matchRmCmd{}, "matches")

	c.Register(&revenueAddCmd{}, "finances")
	c.Register(&revenueListCmd{}, "finances")
	c.Register(&revenueEditCmd{}, "finances")
	c.Register(&revenueRmCmd{}, "finances")
	c.Register(&expenseAddCmd{}, "finances")
	c.Register(&expenseListCmd{}, "finances")
	c.Register(&expenseEditCmd{}, "finances")
	c.Register(&expenseRmCmd{}, "finances")
	c.Register(&summaryCmd{}, "finances")

	c.Register(&inspectCmd{}, "tooling")
	c.Register(&fmtCmd{}, "tooling")
	c.Register(&topicCmd{}, "tooling")
}

// As a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataFile = flag.String("data-file", club.DefaultDataFile, "Path to the club data file (JSON format)")

// openService opens the club data file, bootstrapping it when missing.
func openService() (*club.Service, error) {
	return club.Open(club.NewStore(*dataFile))
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(text string) {
	out, err := glamour.Render(text, "auto")
	if err != nil {
		fmt.Print(text)
		return
	}
	fmt.Print(out)
}

// visited returns the set of flag names explicitly given on the command line.
// Edit commands use it to tell an omitted flag from one set to its zero value.
func visited(f *flag.FlagSet) map[string]bool {
	seen := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { seen[fl.Name] = true })
	return seen
}

// Name lookups for the renderers. They span all seasons so that reports on
// old seasons still resolve names.

func playerNames(s *club.Service) renderer.NameFunc {
	byID := make(map[int]string)
	for _, p := range s.ListPlayers(true) {
		byID[p.ID] = p.Name
	}
	return lookup(byID)
}

func coachNames(s *club.Service) renderer.NameFunc {
	byID := make(map[int]string)
	for _, c := range s.ListCoaches(true) {
		byID[c.ID] = c.Name
	}
	return lookup(byID)
}

func physioNames(s *club.Service) renderer.NameFunc {
	byID := make(map[int]string)
	for _, p := range s.ListPhysiotherapists(true) {
		byID[p.ID] = p.Name
	}
	return lookup(byID)
}

func memberNames(s *club.Service) renderer.NameFunc {
	byID := make(map[int]string)
	for _, m := range s.ListMembers(true) {
		byID[m.ID] = m.Name
	}
	return lookup(byID)
}

func lookup(byID map[int]string) renderer.NameFunc {
	return func(id int) string {
		if name, ok := byID[id]; ok {
			return name
		}
		return fmt.Sprintf("#%d", id)
	}
}

// fail prints the error and maps it to the exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	var verr *club.ValidationError
	if errors.As(err, &verr) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
