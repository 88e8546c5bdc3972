package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/vilacaiz/club"
)

// Seasons renders the season list, marking the active one.
func Seasons(seasons []club.Season, activeID int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Seasons")

	var rows [][]string
	for _, s := range seasons {
		active := ""
		if s.ID == activeID {
			active = "active"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.ID),
			s.Name,
			s.StartDate.String(),
			s.EndDate.String(),
			active,
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Start", "End", ""},
		Rows:   rows,
	})
	return doc.String()
}

// YouthTeams renders the youth team list with resolved coach and roster names.
func YouthTeams(teams []club.YouthTeam, coachName, playerName NameFunc) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Youth Teams")
	if len(teams) == 0 {
		doc.PlainText("No youth teams registered.")
		return doc.String()
	}

	for _, t := range teams {
		doc.H2(fmt.Sprintf("%s (%s)", t.Name, t.AgeGroup))
		if t.CoachID != nil {
			doc.PlainText("Coach: " + coachName(*t.CoachID))
		}
		if len(t.PlayerIDs) == 0 {
			doc.PlainText("No players assigned.")
			continue
		}
		doc.BulletList(playerLines(t.PlayerIDs, playerName)...)
	}

	return doc.String()
}
