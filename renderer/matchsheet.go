package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/vilacaiz/club"
)

// MatchSheet renders a single match plan as a printable sheet.
func MatchSheet(plan club.MatchPlan, playerName, coachName NameFunc) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Match Sheet: vs %s", plan.Opponent))

	details := [][]string{
		{"Date", plan.MatchDate.String()},
		{"Kickoff", plan.KickoffTime},
		{"Venue", plan.Venue},
		{"Squad", plan.Squad},
	}
	if plan.Competition != nil {
		details = append(details, []string{"Competition", *plan.Competition})
	}
	if plan.CoachID != nil {
		details = append(details, []string{"Coach", coachName(*plan.CoachID)})
	}
	doc.Table(md.TableSet{Header: []string{"", ""}, Rows: details})

	doc.H2("Starters")
	if len(plan.Starters) == 0 {
		doc.PlainText("No starters listed.")
	} else {
		doc.BulletList(playerLines(plan.Starters, playerName)...)
	}

	doc.H2("Substitutes")
	if len(plan.Substitutes) == 0 {
		doc.PlainText("No substitutes listed.")
	} else {
		doc.BulletList(playerLines(plan.Substitutes, playerName)...)
	}

	if plan.Notes != nil && *plan.Notes != "" {
		doc.H2("Notes")
		doc.PlainText(*plan.Notes)
	}

	return doc.String()
}

// MatchPlans renders the season's match calendar.
func MatchPlans(plans []club.MatchPlan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Match Plans")
	if len(plans) == 0 {
		doc.PlainText("No matches planned.")
		return doc.String()
	}

	var rows [][]string
	for _, p := range plans {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.MatchDate.String(),
			p.KickoffTime,
			p.Opponent,
			p.Venue,
			p.Squad,
			orDash(p.Competition),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Kickoff", "Opponent", "Venue", "Squad", "Competition"},
		Rows:   rows,
	})
	return doc.String()
}

func playerLines(ids []int, playerName NameFunc) []string {
	var lines []string
	for _, id := range ids {
		lines = append(lines, playerName(id))
	}
	return lines
}
