package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/vilacaiz/club"
)

// Treatments renders the treatment log. Player and physiotherapist names are
// resolved through the lookup functions.
func Treatments(treatments []club.Treatment, playerName, physioName NameFunc) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Treatments")
	if len(treatments) == 0 {
		doc.PlainText("No treatments recorded.")
		return doc.String()
	}

	var rows [][]string
	for _, t := range treatments {
		physio := "-"
		if t.PhysioID != nil {
			physio = physioName(*t.PhysioID)
		}
		available := "available"
		if t.Unavailable {
			available = "unavailable"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			playerName(t.PlayerID),
			t.Diagnosis,
			t.StartDate.String(),
			dateOrDash(t.ExpectedReturn),
			physio,
			available,
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"ID", "Player", "Diagnosis", "Start", "Expected Return", "Physio", "Status"},
		Rows:   rows,
	})
	return doc.String()
}
