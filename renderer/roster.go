package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/vilacaiz/club"
)

// Players renders the squad roster as a markdown table. Youth fee columns are
// only shown when at least one listed player belongs to a youth squad.
func Players(players []club.Player) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Players")
	if len(players) == 0 {
		doc.PlainText("No players registered.")
		return doc.String()
	}

	youth := false
	for _, p := range players {
		if club.IsYouthSquad(p.Squad) {
			youth = true
			break
		}
	}

	header := []string{"ID", "Name", "Position", "Squad", "Shirt", "Birthdate", "AF Porto ID"}
	if youth {
		header = append(header, "Monthly Fee", "Kit Fee")
	}

	var rows [][]string
	for _, p := range players {
		row := []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			p.Position,
			p.Squad,
			intOrDash(p.ShirtNumber),
			dateOrDash(p.Birthdate),
			orDash(p.AFPortoID),
		}
		if youth {
			row = append(row, feeCell(p.YouthMonthlyFee, p.YouthMonthlyPaid), feeCell(p.YouthKitFee, p.YouthKitPaid))
		}
		rows = append(rows, row)
	}

	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}
