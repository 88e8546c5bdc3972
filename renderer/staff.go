package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/vilacaiz/club"
)

// Staff renders the coaching and medical staff in a single report.
func Staff(coaches []club.Coach, physios []club.Physiotherapist) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Staff")

	doc.H2("Coaches")
	if len(coaches) == 0 {
		doc.PlainText("No coaches registered.")
	} else {
		var rows [][]string
		for _, c := range coaches {
			rows = append(rows, []string{
				fmt.Sprintf("%d", c.ID),
				c.Name,
				c.Role,
				orDash(c.LicenseLevel),
				orDash(c.Contact),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"ID", "Name", "Role", "License", "Contact"},
			Rows:   rows,
		})
	}

	doc.H2("Physiotherapists")
	if len(physios) == 0 {
		doc.PlainText("No physiotherapists registered.")
	} else {
		var rows [][]string
		for _, p := range physios {
			rows = append(rows, []string{
				fmt.Sprintf("%d", p.ID),
				p.Name,
				orDash(p.Specialization),
				orDash(p.Contact),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"ID", "Name", "Specialization", "Contact"},
			Rows:   rows,
		})
	}

	return doc.String()
}
